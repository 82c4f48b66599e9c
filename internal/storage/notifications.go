package storage

import (
	"context"
	"fmt"

	"github.com/sapateam/roombooker/internal/domain"
)

type NotificationStore struct {
	file *jsonFile
}

func NewNotificationStore(dataDir string) *NotificationStore {
	return &NotificationStore{file: newJSONFile(dataDir, "notifications.json")}
}

func (s *NotificationStore) LoadAll(ctx context.Context) ([]domain.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var notifications []domain.Notification
	if err := s.file.load(&notifications); err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationStore) SaveAll(ctx context.Context, notifications []domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	if err := s.file.save(notifications); err != nil {
		return fmt.Errorf("save notifications: %w", err)
	}
	return nil
}
