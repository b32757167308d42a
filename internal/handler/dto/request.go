package dto

type CreateSlotRequest struct {
	StartAt string `json:"start_at" binding:"required"`
}

type BookSlotRequest struct {
	UserID  int64  `json:"user_id" binding:"required"`
	StartAt string `json:"start_at" binding:"required"`
}
