package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mkorchagin/ConsultBooker/internal/domain"
	"github.com/mkorchagin/ConsultBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	ListFree(ctx context.Context) ([]*domain.Slot, error)
	Schedule(ctx context.Context) ([]*domain.Slot, error)
	CreateSlotAt(ctx context.Context, startTime time.Time) (*domain.Slot, error)
	ClaimAt(ctx context.Context, userID int64, startTime time.Time) (*domain.Slot, error)
}

type UserSvc interface {
	List(ctx context.Context) ([]*domain.User, error)
}

// Handler is the HTTP surface used by the web calendar picker. Bookings made
// here go through the same claim path as direct slot picks in the bot.
type Handler struct {
	bookingService BookingSvc
	userService    UserSvc
}

func NewHandler(bookingService BookingSvc, userService UserSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
		userService:    userService,
	}
}

func (h *Handler) ListSlots(c *ginext.Context) {
	slots, err := h.bookingService.ListFree(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponses(slots))
}

func (h *Handler) GetSchedule(c *ginext.Context) {
	slots, err := h.bookingService.Schedule(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponses(slots))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

func (h *Handler) CreateSlot(c *ginext.Context) {
	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_at format, expected RFC3339",
		})
		return
	}

	slot, err := h.bookingService.CreateSlotAt(c.Request.Context(), startAt)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSlotResponse(slot))
}

func (h *Handler) BookSlot(c *ginext.Context) {
	var req dto.BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_at format, expected RFC3339",
		})
		return
	}

	slot, err := h.bookingService.ClaimAt(c.Request.Context(), req.UserID, startAt)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSlotResponse(slot))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotUnavailable),
		errors.Is(err, domain.ErrSlotNotPending):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
