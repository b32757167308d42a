package domain

import "time"

type User struct {
	ID        int64     `json:"id"` // Telegram user id
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}
