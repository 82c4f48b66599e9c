package notification

import (
	"context"
	"sync"
	"time"

	"github.com/sapateam/roombooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Sequence delivers a recurring notification as three messages: the first
// immediately, a repeat after repeatDelay, a final one after twice that.
// The first two are deleted deleteAfter later; the final one stays. Every
// wait is a tracked timer so Stop can cancel all outstanding work, instead
// of the detached fire-and-forget tasks this logic used to run on.
type Sequence struct {
	messenger   ports.Messenger
	repeatDelay time.Duration
	deleteAfter time.Duration
	logger      logger.Logger

	mu      sync.Mutex
	timers  map[int]*time.Timer
	nextID  int
	stopped bool
}

func NewSequence(messenger ports.Messenger, repeatDelay, deleteAfter time.Duration, logger logger.Logger) *Sequence {
	return &Sequence{
		messenger:   messenger,
		repeatDelay: repeatDelay,
		deleteAfter: deleteAfter,
		logger:      logger,
		timers:      make(map[int]*time.Timer),
	}
}

// Start schedules the whole sequence and returns immediately.
func (s *Sequence) Start(chatID int64, messageText string) {
	s.after(0, func() {
		s.sendAndExpire(chatID, "🔔 "+messageText)
	})
	s.after(s.repeatDelay, func() {
		s.sendAndExpire(chatID, "🔔 "+messageText+"\n\n⚠️ Повторное напоминание")
	})
	s.after(2*s.repeatDelay, func() {
		if _, err := s.messenger.Send(context.Background(), chatID, "🔔 "+messageText+"\n\n🚨 Финальное напоминание"); err != nil {
			s.logger.Error("failed to send final notification",
				logger.Int64("chat_id", chatID),
				logger.String("error", err.Error()),
			)
		}
	})
}

// ScheduleDelete removes a message after delay on a tracked, cancellable
// timer. Also used by the bot front door for its self-cleaning replies.
func (s *Sequence) ScheduleDelete(chatID int64, messageID int, delay time.Duration) {
	s.after(delay, func() {
		if err := s.messenger.Delete(context.Background(), chatID, messageID); err != nil {
			s.logger.Warn("failed to delete message",
				logger.Int64("chat_id", chatID),
				logger.Int("message_id", messageID),
				logger.String("error", err.Error()),
			)
		}
	})
}

// Stop cancels every outstanding timer. In-flight sends finish; nothing new
// fires afterwards.
func (s *Sequence) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

func (s *Sequence) sendAndExpire(chatID int64, text string) {
	messageID, err := s.messenger.Send(context.Background(), chatID, text)
	if err != nil {
		s.logger.Error("failed to send notification",
			logger.Int64("chat_id", chatID),
			logger.String("error", err.Error()),
		)
		return
	}
	if messageID != 0 {
		s.ScheduleDelete(chatID, messageID, s.deleteAfter)
	}
}

func (s *Sequence) after(delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	id := s.nextID
	s.nextID++

	s.timers[id] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, id)
		stopped := s.stopped
		s.mu.Unlock()

		if !stopped {
			fn()
		}
	})
}
