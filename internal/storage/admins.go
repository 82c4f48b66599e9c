package storage

import (
	"context"
	"fmt"

	"github.com/sapateam/roombooker/internal/domain"
)

type AdminStore struct {
	file *jsonFile
}

func NewAdminStore(dataDir string) *AdminStore {
	return &AdminStore{file: newJSONFile(dataDir, "admins.json")}
}

func (s *AdminStore) LoadAll(ctx context.Context) (map[string]domain.Admin, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	admins := make(map[string]domain.Admin)
	if err := s.file.load(&admins); err != nil {
		return nil, fmt.Errorf("load admins: %w", err)
	}
	return admins, nil
}

func (s *AdminStore) SaveAll(ctx context.Context, admins map[string]domain.Admin) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.file.save(admins); err != nil {
		return fmt.Errorf("save admins: %w", err)
	}
	return nil
}
