package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/sapateam/roombooker/internal/auth"
	"github.com/sapateam/roombooker/internal/domain"
	"github.com/sapateam/roombooker/internal/handler/dto"
	"github.com/sapateam/roombooker/internal/middleware"
	"github.com/sapateam/roombooker/internal/service"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput, actor service.Actor) (*domain.Booking, error)
	Update(ctx context.Context, id string, input domain.UpdateBookingInput, actor service.Actor) (*domain.Booking, error)
	Delete(ctx context.Context, id, reason string, actor service.Actor) error
	ListByUser(ctx context.Context, telegramID int64) ([]domain.Booking, error)
	ListForRoomDate(ctx context.Context, roomID int, date string) ([]domain.Booking, error)
	Availability(ctx context.Context, roomID int, date string) ([]service.OccupiedSlot, error)
	CreateRecurring(ctx context.Context, input service.CreateRecurringInput, actor service.Actor) ([]domain.Booking, error)
}

type RoomSvc interface {
	List(ctx context.Context) ([]domain.RoomWithStatus, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error)
	Get(ctx context.Context, telegramID int64) (*domain.User, error)
	IsRegistered(ctx context.Context, telegramID int64) (bool, error)
	UpdateProfile(ctx context.Context, telegramID int64, name, company string) (*domain.User, error)
}

type NotificationSvc interface {
	Create(ctx context.Context, input domain.CreateNotificationInput) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	Deactivate(ctx context.Context, id int, userID int64) error
}

type AdminSvc interface {
	Level(ctx context.Context, telegramID int64) (int, error)
	ClearSystem(ctx context.Context, actorID int64) error
}

type MembershipChecker interface {
	IsGroupMember(ctx context.Context, userID int64) (bool, error)
}

type Handler struct {
	bookingService      BookingSvc
	roomService         RoomSvc
	userService         UserSvc
	notificationService NotificationSvc
	adminService        AdminSvc
	membership          MembershipChecker
	tokens              *auth.Service
}

func NewHandler(
	bookingService BookingSvc,
	roomService RoomSvc,
	userService UserSvc,
	notificationService NotificationSvc,
	adminService AdminSvc,
	membership MembershipChecker,
	tokens *auth.Service,
) *Handler {
	return &Handler{
		bookingService:      bookingService,
		roomService:         roomService,
		userService:         userService,
		notificationService: notificationService,
		adminService:        adminService,
		membership:          membership,
		tokens:              tokens,
	}
}

// Auth

func (h *Handler) AuthTelegram(c *ginext.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.membership.IsGroupMember(c.Request.Context(), req.TelegramID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !member {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: domain.ErrNotGroupMember.Error()})
		return
	}

	token, err := h.tokens.GenerateToken(req.TelegramID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	registered, err := h.userService.IsRegistered(c.Request.Context(), req.TelegramID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	level, err := h.adminService.Level(c.Request.Context(), req.TelegramID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token:      token,
		Registered: registered,
		AdminLevel: level,
	})
}

// Users

func (h *Handler) RegisterUser(c *ginext.Context) {
	telegramID, _ := middleware.TelegramID(c)

	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.RegisterUserInput{
		TelegramID: telegramID,
		Name:       req.Name,
		Company:    req.Company,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetMe(c *ginext.Context) {
	telegramID, _ := middleware.TelegramID(c)

	user, err := h.userService.Get(c.Request.Context(), telegramID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) UpdateMe(c *ginext.Context) {
	telegramID, _ := middleware.TelegramID(c)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), telegramID, req.Name, req.Company)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Rooms

func (h *Handler) ListRooms(c *ginext.Context) {
	rooms, err := h.roomService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	lang := c.Query("lang")
	resp := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		resp = append(resp, dto.ToRoomResponse(&rooms[i], lang))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RoomSchedule(c *ginext.Context) {
	roomID, date, ok := h.roomDateParams(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListForRoomDate(c.Request.Context(), roomID, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, dto.ToBookingResponse(&bookings[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RoomAvailability(c *ginext.Context) {
	roomID, date, ok := h.roomDateParams(c)
	if !ok {
		return
	}

	slots, err := h.bookingService.Availability(c.Request.Context(), roomID, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"room_id":  roomID,
		"date":     date,
		"occupied": slots,
	})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	actor := h.actor(c)
	booking, err := h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		RoomID:     req.RoomID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Purpose:    req.Purpose,
		TelegramID: actor.TelegramID,
	}, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) MyBookings(c *ginext.Context) {
	telegramID, _ := middleware.TelegramID(c)

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), telegramID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, dto.ToBookingResponse(&bookings[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Update(c.Request.Context(), c.Param("id"), domain.UpdateBookingInput{
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Purpose:     req.Purpose,
		AdminReason: req.AdminReason,
	}, h.actor(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	var req dto.DeleteBookingRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.bookingService.Delete(c.Request.Context(), c.Param("id"), req.Reason, h.actor(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) CreateRecurring(c *ginext.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
		return
	}

	var req dto.CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.bookingService.CreateRecurring(c.Request.Context(), service.CreateRecurringInput{
		RoomID:     roomID,
		StartDate:  req.StartDate,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Purpose:    req.Purpose,
		DaysOfWeek: req.DaysOfWeek,
		WeeksCount: req.WeeksCount,
	}, h.actor(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(created))
	for i := range created {
		resp = append(resp, dto.ToBookingResponse(&created[i]))
	}

	c.JSON(http.StatusCreated, ginext.H{
		"created":  len(created),
		"bookings": resp,
	})
}

// Notifications

func (h *Handler) ListNotifications(c *ginext.Context) {
	telegramID, _ := middleware.TelegramID(c)

	notifications, err := h.notificationService.ListByUser(c.Request.Context(), telegramID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		resp = append(resp, dto.ToNotificationResponse(&notifications[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateNotification(c *ginext.Context) {
	telegramID, _ := middleware.TelegramID(c)

	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	notification, err := h.notificationService.Create(c.Request.Context(), domain.CreateNotificationInput{
		UserID:      telegramID,
		MessageText: req.MessageText,
		SendTime:    req.SendTime,
		DaysOfWeek:  req.DaysOfWeek,
		WeeksCount:  req.WeeksCount,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToNotificationResponse(notification))
}

func (h *Handler) DeleteNotification(c *ginext.Context) {
	telegramID, _ := middleware.TelegramID(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid notification id"})
		return
	}

	if err := h.notificationService.Deactivate(c.Request.Context(), id, telegramID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Admin

func (h *Handler) ClearSystem(c *ginext.Context) {
	telegramID, _ := middleware.TelegramID(c)

	if err := h.adminService.ClearSystem(c.Request.Context(), telegramID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cleared"})
}

func (h *Handler) actor(c *ginext.Context) service.Actor {
	telegramID, _ := middleware.TelegramID(c)
	level, _ := middleware.AdminLevel(c)
	return service.Actor{TelegramID: telegramID, Level: level}
}

func (h *Handler) roomDateParams(c *ginext.Context) (int, string, bool) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
		return 0, "", false
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date query parameter is required"})
		return 0, "", false
	}

	return roomID, date, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrNotificationNotFound),
		errors.Is(err, domain.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRoomUnavailable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTime),
		errors.Is(err, domain.ErrPastTime),
		errors.Is(err, domain.ErrOutsideWorkingHours),
		errors.Is(err, domain.ErrReasonRequired),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrNotGroupMember),
		errors.Is(err, domain.ErrNotRegistered):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
