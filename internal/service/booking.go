package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/sapateam/roombooker/internal/domain"
	"github.com/sapateam/roombooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Actor identifies who performs a booking operation. Level is the admin tier,
// 0 for regular users.
type Actor struct {
	TelegramID int64
	Level      int
}

var weekdayOffsets = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
	"saturday":  5,
	"sunday":    6,
}

type CreateRecurringInput struct {
	RoomID     int
	StartDate  string
	StartTime  string
	EndTime    string
	Purpose    string
	DaysOfWeek []string
	WeeksCount int
}

// OccupiedSlot is one taken interval on a room's day timeline.
type OccupiedSlot struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	User    string `json:"user"`
	Purpose string `json:"purpose"`
}

type BookingService struct {
	bookingRepo ports.BookingRepo
	roomRepo    ports.RoomRepo
	userRepo    ports.UserRepo
	messenger   ports.Messenger
	clock       ports.Clock
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	roomRepo ports.RoomRepo,
	userRepo ports.UserRepo,
	messenger ports.Messenger,
	clock ports.Clock,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		messenger:   messenger,
		clock:       clock,
		logger:      logger,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput, actor Actor) (*domain.Booking, error) {
	room, err := s.findRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	user, err := s.findUser(ctx, actor.TelegramID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if err = ValidateSlot(input.Date, input.StartTime, input.EndTime, now); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	if Conflicts(bookings, input.RoomID, input.Date, input.StartTime, input.EndTime, "") {
		return nil, domain.ErrRoomUnavailable
	}

	booking := domain.Booking{
		ID:             uuid.New().String(),
		RoomID:         room.ID,
		RoomName:       room.Name,
		Date:           input.Date,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		TelegramID:     actor.TelegramID,
		UserName:       user.Name,
		UserCompany:    user.Company,
		Purpose:        input.Purpose,
		Status:         domain.BookingStatusConfirmed,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedByAdmin: actor.Level,
	}

	bookings = append(bookings, booking)
	if err = s.bookingRepo.SaveAll(ctx, bookings); err != nil {
		return nil, fmt.Errorf("save bookings: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.Int("room_id", booking.RoomID),
		logger.Int64("telegram_id", booking.TelegramID),
		logger.String("date", booking.Date),
	)

	return &booking, nil
}

func (s *BookingService) Update(ctx context.Context, id string, input domain.UpdateBookingInput, actor Actor) (*domain.Booking, error) {
	bookings, err := s.bookingRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	idx := s.findEditable(bookings, id, actor)
	if idx < 0 {
		return nil, domain.ErrBookingNotFound
	}
	original := bookings[idx]
	foreign := actor.Level > domain.AdminLevelNone && original.TelegramID != actor.TelegramID

	if foreign && input.AdminReason == "" {
		return nil, domain.ErrReasonRequired
	}

	now := s.clock.Now()
	if err = ValidateSlot(input.Date, input.StartTime, input.EndTime, now); err != nil {
		return nil, err
	}

	if Conflicts(bookings, original.RoomID, input.Date, input.StartTime, input.EndTime, id) {
		return nil, domain.ErrRoomUnavailable
	}

	bookings[idx].Date = input.Date
	bookings[idx].StartTime = input.StartTime
	bookings[idx].EndTime = input.EndTime
	bookings[idx].Purpose = input.Purpose
	bookings[idx].UpdatedAt = now
	if actor.Level > domain.AdminLevelNone {
		bookings[idx].AdminReason = input.AdminReason
	}

	if err = s.bookingRepo.SaveAll(ctx, bookings); err != nil {
		return nil, fmt.Errorf("save bookings: %w", err)
	}

	s.logger.Info("booking updated",
		logger.String("booking_id", id),
		logger.Int64("actor", actor.TelegramID),
	)

	if foreign {
		go s.notifyEdited(context.WithoutCancel(ctx), original, bookings[idx], actor, input.AdminReason)
	}

	updated := bookings[idx]
	return &updated, nil
}

func (s *BookingService) Delete(ctx context.Context, id, reason string, actor Actor) error {
	bookings, err := s.bookingRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load bookings: %w", err)
	}

	idx := s.findEditable(bookings, id, actor)
	if idx < 0 {
		return domain.ErrBookingNotFound
	}
	deleted := bookings[idx]
	foreign := actor.Level > domain.AdminLevelNone && deleted.TelegramID != actor.TelegramID

	if foreign && reason == "" {
		return domain.ErrReasonRequired
	}

	bookings = append(bookings[:idx], bookings[idx+1:]...)
	if err = s.bookingRepo.SaveAll(ctx, bookings); err != nil {
		return fmt.Errorf("save bookings: %w", err)
	}

	s.logger.Info("booking deleted",
		logger.String("booking_id", id),
		logger.Int64("actor", actor.TelegramID),
	)

	if foreign {
		go s.notifyDeleted(context.WithoutCancel(ctx), deleted, actor, reason)
	}

	return nil
}

func (s *BookingService) ListByUser(ctx context.Context, telegramID int64) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	res := make([]domain.Booking, 0)
	for _, b := range bookings {
		if b.TelegramID == telegramID {
			res = append(res, b)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Date != res[j].Date {
			return res[i].Date < res[j].Date
		}
		return res[i].StartTime < res[j].StartTime
	})
	return res, nil
}

// ListForRoomDate returns the confirmed bookings of one room on one date,
// ordered by start time.
func (s *BookingService) ListForRoomDate(ctx context.Context, roomID int, date string) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	res := make([]domain.Booking, 0)
	for _, b := range bookings {
		if b.RoomID == roomID && b.Date == date && b.Status == domain.BookingStatusConfirmed {
			res = append(res, b)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].StartTime < res[j].StartTime })
	return res, nil
}

func (s *BookingService) Availability(ctx context.Context, roomID int, date string) ([]OccupiedSlot, error) {
	bookings, err := s.ListForRoomDate(ctx, roomID, date)
	if err != nil {
		return nil, err
	}

	slots := make([]OccupiedSlot, 0, len(bookings))
	for _, b := range bookings {
		slots = append(slots, OccupiedSlot{
			Start:   b.StartTime,
			End:     b.EndTime,
			User:    b.UserName,
			Purpose: b.Purpose,
		})
	}
	return slots, nil
}

// CreateRecurring expands a weekly template into dated bookings and appends
// them all. Unlike Create, occurrences are not checked against existing
// bookings: the recurring path has always trusted the admin, and the
// asymmetry is preserved on purpose.
func (s *BookingService) CreateRecurring(ctx context.Context, input CreateRecurringInput, actor Actor) ([]domain.Booking, error) {
	if actor.Level == domain.AdminLevelNone {
		return nil, domain.ErrForbidden
	}

	room, err := s.findRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	user, err := s.findUser(ctx, actor.TelegramID)
	if err != nil {
		return nil, err
	}

	offsets := make([]int, 0, len(input.DaysOfWeek))
	for _, day := range input.DaysOfWeek {
		if offset, ok := weekdayOffsets[day]; ok {
			offsets = append(offsets, offset)
		}
	}
	if len(offsets) == 0 || input.WeeksCount < 1 {
		return nil, fmt.Errorf("%w: no valid days selected", domain.ErrValidation)
	}

	req := domain.RecurringRequest{
		Base: domain.Booking{
			RoomID:         room.ID,
			RoomName:       room.Name,
			Date:           input.StartDate,
			StartTime:      input.StartTime,
			EndTime:        input.EndTime,
			TelegramID:     actor.TelegramID,
			UserName:       user.Name,
			UserCompany:    user.Company,
			Purpose:        input.Purpose,
			Status:         domain.BookingStatusConfirmed,
			IsRecurring:    true,
			CreatedByAdmin: actor.Level,
		},
		Offsets: offsets,
		Weeks:   input.WeeksCount,
	}

	created, err := ExpandRecurring(req, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("%w: all occurrences are in the past", domain.ErrValidation)
	}

	bookings, err := s.bookingRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	bookings = append(bookings, created...)
	if err = s.bookingRepo.SaveAll(ctx, bookings); err != nil {
		return nil, fmt.Errorf("save bookings: %w", err)
	}

	s.logger.Info("recurring bookings created",
		logger.Int("count", len(created)),
		logger.Int("room_id", room.ID),
		logger.Int64("actor", actor.TelegramID),
	)

	return created, nil
}

func (s *BookingService) findEditable(bookings []domain.Booking, id string, actor Actor) int {
	for i := range bookings {
		if bookings[i].ID != id {
			continue
		}
		if bookings[i].TelegramID == actor.TelegramID || actor.Level > domain.AdminLevelNone {
			return i
		}
	}
	return -1
}

func (s *BookingService) findRoom(ctx context.Context, roomID int) (*domain.Room, error) {
	rooms, err := s.roomRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}
	for i := range rooms {
		if rooms[i].ID == roomID {
			return &rooms[i], nil
		}
	}
	return nil, domain.ErrRoomNotFound
}

func (s *BookingService) findUser(ctx context.Context, telegramID int64) (*domain.User, error) {
	users, err := s.userRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	user, ok := users[strconv.FormatInt(telegramID, 10)]
	if !ok {
		return nil, domain.ErrNotRegistered
	}
	return &user, nil
}

func (s *BookingService) actorName(ctx context.Context, actor Actor) string {
	user, err := s.findUser(ctx, actor.TelegramID)
	if err != nil {
		return "Администратор"
	}
	return user.Name
}

func (s *BookingService) notifyDeleted(ctx context.Context, b domain.Booking, actor Actor, reason string) {
	text := fmt.Sprintf(
		"🗑 <b>Ваше бронирование было удалено</b>\n\n"+
			"📅 Дата: %s\n"+
			"🕐 Время: %s - %s\n"+
			"🏢 Комната: %s\n"+
			"👤 Удалил: %s\n"+
			"📝 Причина: %s\n\n"+
			"По вопросам обращайтесь к администратору.",
		b.Date, b.StartTime, b.EndTime, b.RoomName, s.actorName(ctx, actor), reason,
	)
	if _, err := s.messenger.Send(ctx, b.TelegramID, text); err != nil {
		s.logger.Error("failed to notify booking owner about deletion",
			logger.Int64("telegram_id", b.TelegramID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *BookingService) notifyEdited(ctx context.Context, old, updated domain.Booking, actor Actor, reason string) {
	if reason == "" {
		reason = "Причина не указана"
	}
	text := fmt.Sprintf(
		"✏️ <b>Ваше бронирование было изменено</b>\n\n"+
			"🏢 Комната: %s\n\n"+
			"📅 Старая дата: %s\n"+
			"🕐 Старое время: %s - %s\n\n"+
			"📅 Новая дата: %s\n"+
			"🕐 Новое время: %s - %s\n\n"+
			"👤 Изменил: %s\n"+
			"📝 Причина: %s\n\n"+
			"По вопросам обращайтесь к администратору.",
		old.RoomName,
		old.Date, old.StartTime, old.EndTime,
		updated.Date, updated.StartTime, updated.EndTime,
		s.actorName(ctx, actor), reason,
	)
	if _, err := s.messenger.Send(ctx, old.TelegramID, text); err != nil {
		s.logger.Error("failed to notify booking owner about edit",
			logger.Int64("telegram_id", old.TelegramID),
			logger.String("error", err.Error()),
		)
	}
}
