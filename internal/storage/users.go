package storage

import (
	"context"
	"fmt"

	"github.com/sapateam/roombooker/internal/domain"
)

// UserStore keeps registered users keyed by telegram id string, the shape the
// original data files used.
type UserStore struct {
	file *jsonFile
}

func NewUserStore(dataDir string) *UserStore {
	return &UserStore{file: newJSONFile(dataDir, "users.json")}
}

func (s *UserStore) LoadAll(ctx context.Context) (map[string]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	users := make(map[string]domain.User)
	if err := s.file.load(&users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}

func (s *UserStore) SaveAll(ctx context.Context, users map[string]domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.file.save(users); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}
