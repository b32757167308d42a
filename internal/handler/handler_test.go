package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mkorchagin/ConsultBooker/internal/domain"
	"github.com/mkorchagin/ConsultBooker/internal/handler/dto"
	hmocks "github.com/mkorchagin/ConsultBooker/internal/handler/mocks"
	"github.com/mkorchagin/ConsultBooker/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testAdminToken = "secret-token"

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(bookingSvc, userSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/slots", h.ListSlots)
		api.POST("/slots", middleware.AdminToken(testAdminToken), h.CreateSlot)
		api.POST("/bookings", h.BookSlot)
		api.GET("/schedule", h.GetSchedule)
		api.GET("/users", middleware.AdminToken(testAdminToken), h.ListUsers)
	}

	return bookingSvc, userSvc, r
}

func freeSlot(id int64, start time.Time) *domain.Slot {
	return &domain.Slot{
		ID:        id,
		StartTime: start,
		Status:    domain.SlotStatusFree,
		CreatedAt: start.Add(-time.Hour),
		UpdatedAt: start.Add(-time.Hour),
	}
}

// --- Slots ---

func TestHandler_ListSlots_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	start := time.Date(2026, 12, 25, 14, 0, 0, 0, time.UTC)
	slots := []*domain.Slot{
		freeSlot(1, start),
		freeSlot(2, start.Add(time.Hour)),
	}
	bookingSvc.EXPECT().ListFree(mock.Anything).Return(slots, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "free", resp[0].Status)
	assert.Equal(t, "25.12 14:00", resp[0].Label)
}

func TestHandler_ListSlots_Empty(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().ListFree(mock.Anything).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestHandler_GetSchedule_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	start := time.Date(2026, 12, 25, 14, 0, 0, 0, time.UTC)
	userID := int64(100)
	slots := []*domain.Slot{
		freeSlot(1, start),
		{ID: 2, StartTime: start.Add(time.Hour), Status: domain.SlotStatusBooked, UserID: &userID},
	}
	bookingSvc.EXPECT().Schedule(mock.Anything).Return(slots, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "booked", resp[1].Status)
	require.NotNil(t, resp[1].UserID)
	assert.Equal(t, int64(100), *resp[1].UserID)
}

func TestHandler_CreateSlot_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	start := time.Date(2026, 12, 25, 14, 0, 0, 0, time.UTC)
	bookingSvc.EXPECT().CreateSlotAt(mock.Anything, start).Return(freeSlot(1, start), nil)

	body, _ := json.Marshal(dto.CreateSlotRequest{StartAt: start.Format(time.RFC3339)})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AdminTokenHeader, testAdminToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
}

func TestHandler_CreateSlot_MissingToken(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"start_at":"2026-12-25T14:00:00Z"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateSlot_WrongToken(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"start_at":"2026-12-25T14:00:00Z"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AdminTokenHeader, "wrong")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateSlot_DisabledWithoutConfiguredToken(t *testing.T) {
	bookingSvc := hmocks.NewMockBookingSvc(t)
	h := NewHandler(bookingSvc, hmocks.NewMockUserSvc(t))

	r := ginext.New("test")
	r.POST("/api/slots", middleware.AdminToken(""), h.CreateSlot)

	body := []byte(`{"start_at":"2026-12-25T14:00:00Z"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateSlot_InvalidDate(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"start_at":"25.12 14:00"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AdminTokenHeader, testAdminToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_BookSlot_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	start := time.Date(2026, 12, 25, 14, 0, 0, 0, time.UTC)
	userID := int64(100)
	claimed := &domain.Slot{
		ID:        1,
		StartTime: start,
		Status:    domain.SlotStatusPendingReview,
		UserID:    &userID,
	}

	bookingSvc.EXPECT().ClaimAt(mock.Anything, userID, start).Return(claimed, nil)

	body, _ := json.Marshal(dto.BookSlotRequest{UserID: userID, StartAt: start.Format(time.RFC3339)})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending_review", resp.Status)
}

func TestHandler_BookSlot_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"start_at":"2026-12-25T14:00:00Z"}`) // user_id missing

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BookSlot_InvalidDate(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"user_id":100,"start_at":"not-a-date"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BookSlot_AlreadyTaken(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	start := time.Date(2026, 12, 25, 14, 0, 0, 0, time.UTC)
	bookingSvc.EXPECT().ClaimAt(mock.Anything, int64(100), start).Return(nil, domain.ErrSlotUnavailable)

	body, _ := json.Marshal(dto.BookSlotRequest{UserID: 100, StartAt: start.Format(time.RFC3339)})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Users ---

func TestHandler_ListUsers_Success(t *testing.T) {
	_, userSvc, r := setupRouter(t)

	users := []*domain.User{
		{ID: 100, Username: "alice", FullName: "Alice Liddell", CreatedAt: time.Now()},
		{ID: 200, Username: "bob", CreatedAt: time.Now()},
	}
	userSvc.EXPECT().List(mock.Anything).Return(users, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set(middleware.AdminTokenHeader, testAdminToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "alice", resp[0].Username)
}

func TestHandler_ListUsers_MissingToken(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().ListFree(mock.Anything).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
