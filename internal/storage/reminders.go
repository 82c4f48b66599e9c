package storage

import (
	"context"
	"fmt"

	"github.com/sapateam/roombooker/internal/domain"
)

// ReminderStore is the append-only sent-reminder log.
type ReminderStore struct {
	file *jsonFile
}

func NewReminderStore(dataDir string) *ReminderStore {
	return &ReminderStore{file: newJSONFile(dataDir, "booking_reminders.json")}
}

func (s *ReminderStore) LoadAll(ctx context.Context) ([]domain.ReminderRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var reminders []domain.ReminderRecord
	if err := s.file.load(&reminders); err != nil {
		return nil, fmt.Errorf("load reminders: %w", err)
	}
	return reminders, nil
}

func (s *ReminderStore) SaveAll(ctx context.Context, reminders []domain.ReminderRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if reminders == nil {
		reminders = []domain.ReminderRecord{}
	}
	if err := s.file.save(reminders); err != nil {
		return fmt.Errorf("save reminders: %w", err)
	}
	return nil
}
