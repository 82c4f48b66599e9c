package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sapateam/roombooker/internal/auth"
	"github.com/sapateam/roombooker/internal/domain"
	"github.com/sapateam/roombooker/internal/handler/dto"
	hmocks "github.com/sapateam/roombooker/internal/handler/mocks"
	"github.com/sapateam/roombooker/internal/middleware"
	"github.com/sapateam/roombooker/internal/router"
	"github.com/sapateam/roombooker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	booking      *hmocks.MockBookingSvc
	room         *hmocks.MockRoomSvc
	user         *hmocks.MockUserSvc
	notification *hmocks.MockNotificationSvc
	admin        *hmocks.MockAdminSvc
	membership   *hmocks.MockMembershipChecker
	tokens       *auth.Service
	router       http.Handler
}

func setupRouter(t *testing.T) *handlerFixture {
	t.Helper()
	f := &handlerFixture{
		booking:      hmocks.NewMockBookingSvc(t),
		room:         hmocks.NewMockRoomSvc(t),
		user:         hmocks.NewMockUserSvc(t),
		notification: hmocks.NewMockNotificationSvc(t),
		admin:        hmocks.NewMockAdminSvc(t),
		membership:   hmocks.NewMockMembershipChecker(t),
		tokens:       auth.NewService("test-secret", time.Hour),
	}

	h := NewHandler(f.booking, f.room, f.user, f.notification, f.admin, f.membership, f.tokens)
	authMW := middleware.NewAuthMiddleware(f.tokens, f.admin)
	f.router = router.InitRouter("test", h, authMW)
	return f
}

func (f *handlerFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return f.serve(t, method, path, body, "")
}

// doAs sends an authenticated request: a real token is minted for telegramID
// and the admin level lookup the auth middleware performs is stubbed.
func (f *handlerFixture) doAs(t *testing.T, telegramID int64, level int, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	f.admin.EXPECT().Level(mock.Anything, telegramID).Return(level, nil).Once()
	token, err := f.tokens.GenerateToken(telegramID)
	require.NoError(t, err)
	return f.serve(t, method, path, body, "Bearer "+token)
}

func (f *handlerFixture) serve(t *testing.T, method, path string, body any, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case []byte:
		reader = bytes.NewReader(v)
	default:
		data, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	f.router.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestHandler_AuthTelegram_Success(t *testing.T) {
	f := setupRouter(t)

	f.membership.EXPECT().IsGroupMember(mock.Anything, int64(100)).Return(true, nil)
	f.user.EXPECT().IsRegistered(mock.Anything, int64(100)).Return(true, nil)
	f.admin.EXPECT().Level(mock.Anything, int64(100)).Return(domain.AdminLevelNone, nil)

	w := f.do(t, http.MethodPost, "/api/auth/telegram", dto.AuthRequest{TelegramID: 100})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.Registered)
	assert.Equal(t, 0, resp.AdminLevel)
}

func TestHandler_AuthTelegram_NotGroupMember(t *testing.T) {
	f := setupRouter(t)

	f.membership.EXPECT().IsGroupMember(mock.Anything, int64(100)).Return(false, nil)

	w := f.do(t, http.MethodPost, "/api/auth/telegram", dto.AuthRequest{TelegramID: 100})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_AuthTelegram_BadRequest(t *testing.T) {
	f := setupRouter(t)

	w := f.do(t, http.MethodPost, "/api/auth/telegram", []byte(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_MissingToken(t *testing.T) {
	f := setupRouter(t)

	w := f.do(t, http.MethodGet, "/api/bookings/my", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_InvalidToken(t *testing.T) {
	f := setupRouter(t)

	w := f.serve(t, http.MethodGet, "/api/bookings/my", nil, "Bearer not-a-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Users ---

func TestHandler_RegisterUser_Success(t *testing.T) {
	f := setupRouter(t)

	user := &domain.User{TelegramID: 100, Name: "Alice", Company: "Sapa", RegisteredAt: time.Now()}
	f.user.EXPECT().Register(mock.Anything, domain.RegisterUserInput{
		TelegramID: 100,
		Name:       "Alice",
		Company:    "Sapa",
	}).Return(user, nil)

	w := f.doAs(t, 100, 0, http.MethodPost, "/api/users", dto.RegisterUserRequest{Name: "Alice", Company: "Sapa"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.Name)
}

func TestHandler_RegisterUser_BadRequest(t *testing.T) {
	f := setupRouter(t)

	w := f.doAs(t, 100, 0, http.MethodPost, "/api/users", []byte(`{"name":"Alice"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetMe_NotFound(t *testing.T) {
	f := setupRouter(t)

	f.user.EXPECT().Get(mock.Anything, int64(100)).Return(nil, domain.ErrUserNotFound)

	w := f.doAs(t, 100, 0, http.MethodGet, "/api/users/me", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Rooms ---

func TestHandler_ListRooms_Success(t *testing.T) {
	f := setupRouter(t)

	rooms := []domain.RoomWithStatus{
		{
			Room:          domain.Room{ID: 1, Name: "Алматы", NameTranslations: map[string]string{"en": "Almaty"}},
			CurrentStatus: domain.RoomStatusAvailable,
		},
	}
	f.room.EXPECT().List(mock.Anything).Return(rooms, nil)

	w := f.doAs(t, 100, 0, http.MethodGet, "/api/rooms?lang=en", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Almaty", resp[0].Name)
	assert.Equal(t, "available", resp[0].CurrentStatus)
}

func TestHandler_RoomSchedule_MissingDate(t *testing.T) {
	f := setupRouter(t)

	w := f.doAs(t, 100, 0, http.MethodGet, "/api/rooms/1/schedule", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RoomAvailability_Success(t *testing.T) {
	f := setupRouter(t)

	slots := []service.OccupiedSlot{
		{Start: "10:00", End: "11:00", User: "Alice", Purpose: "standup"},
	}
	f.booking.EXPECT().Availability(mock.Anything, 1, "2025-06-02").Return(slots, nil)

	w := f.doAs(t, 100, 0, http.MethodGet, "/api/rooms/1/availability?date=2025-06-02", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		RoomID   int                    `json:"room_id"`
		Date     string                 `json:"date"`
		Occupied []service.OccupiedSlot `json:"occupied"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.RoomID)
	require.Len(t, resp.Occupied, 1)
	assert.Equal(t, "10:00", resp.Occupied[0].Start)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	f := setupRouter(t)

	booking := &domain.Booking{
		ID:         "b1",
		RoomID:     1,
		RoomName:   "Алматы",
		TelegramID: 100,
		UserName:   "Alice",
		Date:       "2025-06-02",
		StartTime:  "10:00",
		EndTime:    "11:00",
		Status:     domain.BookingStatusConfirmed,
		CreatedAt:  time.Now(),
	}
	f.booking.EXPECT().Create(mock.Anything, domain.CreateBookingInput{
		RoomID:     1,
		Date:       "2025-06-02",
		StartTime:  "10:00",
		EndTime:    "11:00",
		TelegramID: 100,
	}, service.Actor{TelegramID: 100}).Return(booking, nil)

	w := f.doAs(t, 100, 0, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		RoomID:    1,
		Date:      "2025-06-02",
		StartTime: "10:00",
		EndTime:   "11:00",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "b1", resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_CreateBooking_Conflict(t *testing.T) {
	f := setupRouter(t)

	f.booking.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrRoomUnavailable)

	w := f.doAs(t, 100, 0, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		RoomID:    1,
		Date:      "2025-06-02",
		StartTime: "10:00",
		EndTime:   "11:00",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_OutsideWorkingHours(t *testing.T) {
	f := setupRouter(t)

	f.booking.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrOutsideWorkingHours)

	w := f.doAs(t, 100, 0, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		RoomID:    1,
		Date:      "2025-06-02",
		StartTime: "08:00",
		EndTime:   "09:00",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "outside_working_hours", resp.Error)
}

func TestHandler_CreateBooking_BadRequest(t *testing.T) {
	f := setupRouter(t)

	w := f.doAs(t, 100, 0, http.MethodPost, "/api/bookings", []byte(`{"room_id":1}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateBooking_ForeignWithoutReason(t *testing.T) {
	f := setupRouter(t)

	f.booking.EXPECT().Update(mock.Anything, "b1", mock.Anything, service.Actor{TelegramID: 100, Level: domain.AdminLevelBasic}).
		Return(nil, domain.ErrReasonRequired)

	w := f.doAs(t, 100, domain.AdminLevelBasic, http.MethodPut, "/api/bookings/b1", dto.UpdateBookingRequest{
		Date:      "2025-06-02",
		StartTime: "10:00",
		EndTime:   "11:00",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteBooking_Success(t *testing.T) {
	f := setupRouter(t)

	f.booking.EXPECT().Delete(mock.Anything, "b1", "", service.Actor{TelegramID: 100}).Return(nil)

	w := f.doAs(t, 100, 0, http.MethodDelete, "/api/bookings/b1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CreateRecurring_Forbidden(t *testing.T) {
	f := setupRouter(t)

	f.booking.EXPECT().CreateRecurring(mock.Anything, mock.Anything, service.Actor{TelegramID: 100}).
		Return(nil, domain.ErrForbidden)

	w := f.doAs(t, 100, 0, http.MethodPost, "/api/rooms/1/recurring", dto.CreateRecurringRequest{
		StartDate:  "2025-06-02",
		StartTime:  "10:00",
		EndTime:    "11:00",
		DaysOfWeek: []string{"monday"},
		WeeksCount: 2,
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateRecurring_Success(t *testing.T) {
	f := setupRouter(t)

	created := []domain.Booking{
		{ID: "r1", RoomID: 1, Date: "2025-06-02", StartTime: "10:00", EndTime: "11:00", IsRecurring: true, CreatedAt: time.Now()},
		{ID: "r2", RoomID: 1, Date: "2025-06-09", StartTime: "10:00", EndTime: "11:00", IsRecurring: true, CreatedAt: time.Now()},
	}
	f.booking.EXPECT().CreateRecurring(mock.Anything, service.CreateRecurringInput{
		RoomID:     1,
		StartDate:  "2025-06-02",
		StartTime:  "10:00",
		EndTime:    "11:00",
		DaysOfWeek: []string{"monday"},
		WeeksCount: 2,
	}, service.Actor{TelegramID: 100, Level: domain.AdminLevelModerator}).Return(created, nil)

	w := f.doAs(t, 100, domain.AdminLevelModerator, http.MethodPost, "/api/rooms/1/recurring", dto.CreateRecurringRequest{
		StartDate:  "2025-06-02",
		StartTime:  "10:00",
		EndTime:    "11:00",
		DaysOfWeek: []string{"monday"},
		WeeksCount: 2,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Created  int                   `json:"created"`
		Bookings []dto.BookingResponse `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Created)
	assert.Len(t, resp.Bookings, 2)
}

// --- Notifications ---

func TestHandler_CreateNotification_Success(t *testing.T) {
	f := setupRouter(t)

	notification := &domain.Notification{
		ID:          1,
		UserID:      100,
		MessageText: "standup",
		SendTime:    "10:00",
		DaysOfWeek:  []int{1, 3},
		WeeksCount:  2,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	f.notification.EXPECT().Create(mock.Anything, domain.CreateNotificationInput{
		UserID:      100,
		MessageText: "standup",
		SendTime:    "10:00",
		DaysOfWeek:  []int{1, 3},
		WeeksCount:  2,
	}).Return(notification, nil)

	w := f.doAs(t, 100, 0, http.MethodPost, "/api/notifications", dto.CreateNotificationRequest{
		MessageText: "standup",
		SendTime:    "10:00",
		DaysOfWeek:  []int{1, 3},
		WeeksCount:  2,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.NotificationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ID)
}

func TestHandler_DeleteNotification_InvalidID(t *testing.T) {
	f := setupRouter(t)

	w := f.doAs(t, 100, 0, http.MethodDelete, "/api/notifications/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteNotification_NotFound(t *testing.T) {
	f := setupRouter(t)

	f.notification.EXPECT().Deactivate(mock.Anything, 5, int64(100)).
		Return(domain.ErrNotificationNotFound)

	w := f.doAs(t, 100, 0, http.MethodDelete, "/api/notifications/5", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Admin ---

func TestHandler_ClearSystem_RequiresRoot(t *testing.T) {
	f := setupRouter(t)

	w := f.doAs(t, 100, domain.AdminLevelModerator, http.MethodPost, "/api/admin/clear", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ClearSystem_Success(t *testing.T) {
	f := setupRouter(t)

	f.admin.EXPECT().ClearSystem(mock.Anything, int64(1)).Return(nil)

	w := f.doAs(t, 1, domain.AdminLevelRoot, http.MethodPost, "/api/admin/clear", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	f := setupRouter(t)

	f.booking.EXPECT().ListByUser(mock.Anything, int64(100)).Return(nil, assert.AnError)

	w := f.doAs(t, 100, 0, http.MethodGet, "/api/bookings/my", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
