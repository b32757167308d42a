package dto

import (
	"time"

	"github.com/mkorchagin/ConsultBooker/internal/domain"
)

type SlotResponse struct {
	ID        int64  `json:"id"`
	StartAt   string `json:"start_at"`
	Label     string `json:"label"`
	Status    string `json:"status"`
	UserID    *int64 `json:"user_id,omitempty"`
	CreatedAt string `json:"created_at"`
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToSlotResponse(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:        s.ID,
		StartAt:   s.StartTime.Format(time.RFC3339),
		Label:     s.FormatStart(),
		Status:    string(s.Status),
		UserID:    s.UserID,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

func ToSlotResponses(slots []*domain.Slot) []SlotResponse {
	res := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		res = append(res, ToSlotResponse(s))
	}
	return res
}

func ToUserResponses(users []*domain.User) []UserResponse {
	res := make([]UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			FullName:  u.FullName,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
		})
	}
	return res
}
