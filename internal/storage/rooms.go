package storage

import (
	"context"
	"fmt"

	"github.com/sapateam/roombooker/internal/domain"
)

// RoomStore is read-only reference data: rooms are provisioned by hand.
type RoomStore struct {
	file *jsonFile
}

func NewRoomStore(dataDir string) *RoomStore {
	return &RoomStore{file: newJSONFile(dataDir, "rooms.json")}
}

func (s *RoomStore) LoadAll(ctx context.Context) ([]domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rooms []domain.Room
	if err := s.file.load(&rooms); err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}
	return rooms, nil
}
