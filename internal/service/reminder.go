package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sapateam/roombooker/internal/domain"
	"github.com/sapateam/roombooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ReminderService sends the "your booking starts soon" message once per
// booking, driven by the scheduler.
type ReminderService struct {
	bookingRepo  ports.BookingRepo
	reminderRepo ports.ReminderRepo
	messenger    ports.Messenger
	clock        ports.Clock
	lead         time.Duration
	logger       logger.Logger
}

func NewReminderService(
	bookingRepo ports.BookingRepo,
	reminderRepo ports.ReminderRepo,
	messenger ports.Messenger,
	clock ports.Clock,
	lead time.Duration,
	logger logger.Logger,
) *ReminderService {
	return &ReminderService{
		bookingRepo:  bookingRepo,
		reminderRepo: reminderRepo,
		messenger:    messenger,
		clock:        clock,
		lead:         lead,
		logger:       logger,
	}
}

// CheckAndSend is one scheduler pass over all bookings. A reminder is
// recorded only after a successful send, so a delivery failure is retried
// naturally on the next tick while the window is still open.
func (s *ReminderService) CheckAndSend(ctx context.Context) error {
	bookings, err := s.bookingRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load bookings: %w", err)
	}
	reminders, err := s.reminderRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load reminders: %w", err)
	}

	now := s.clock.Now()
	sent := false
	for _, b := range bookings {
		if !ReminderDue(b, reminders, now, s.lead) {
			continue
		}

		if _, err := s.messenger.Send(ctx, b.TelegramID, s.reminderText(b)); err != nil {
			s.logger.Error("failed to send booking reminder",
				logger.String("booking_id", b.Key()),
				logger.Int64("telegram_id", b.TelegramID),
				logger.String("error", err.Error()),
			)
			continue
		}

		reminders = append(reminders, domain.ReminderRecord{
			BookingID:   b.Key(),
			UserID:      b.TelegramID,
			SentAt:      now,
			BookingDate: b.Date,
			BookingTime: b.StartTime,
			RoomName:    b.RoomName,
		})
		sent = true

		s.logger.Info("booking reminder sent",
			logger.String("booking_id", b.Key()),
			logger.Int64("telegram_id", b.TelegramID),
		)
	}

	if sent {
		if err = s.reminderRepo.SaveAll(ctx, reminders); err != nil {
			return fmt.Errorf("save reminders: %w", err)
		}
	}
	return nil
}

func (s *ReminderService) reminderText(b domain.Booking) string {
	name := b.UserName
	if name == "" {
		name = "Пользователь"
	}
	room := b.RoomName
	if room == "" {
		room = "Переговорная"
	}

	text := fmt.Sprintf(
		"🔔 <b>Напоминание о бронировании</b>\n\n"+
			"👋 Здравствуйте, %s!\n\n"+
			"⏰ Через 15 минут начинается ваша бронь:\n"+
			"🏢 Комната: <b>%s</b>\n"+
			"📅 Дата: <b>%s</b>\n"+
			"🕐 Время: <b>%s - %s</b>\n",
		name, room, b.Date, b.StartTime, b.EndTime,
	)
	if b.Purpose != "" {
		text += fmt.Sprintf("📝 Цель: <b>%s</b>\n", b.Purpose)
	}
	text += "\n💡 Не забудьте подготовиться к встрече!"
	return text
}
