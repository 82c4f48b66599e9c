package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/sapateam/roombooker/internal/domain"
	"github.com/sapateam/roombooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

var adminLevelTitles = map[int]string{
	domain.AdminLevelRoot:      "Главный админ",
	domain.AdminLevelModerator: "Админ-модератор",
	domain.AdminLevelBasic:     "Админ",
}

type AdminService struct {
	repo        ports.AdminRepo
	bookingRepo ports.BookingRepo
	clock       ports.Clock
	rootAdminID int64
	logger      logger.Logger
}

func NewAdminService(
	repo ports.AdminRepo,
	bookingRepo ports.BookingRepo,
	clock ports.Clock,
	rootAdminID int64,
	logger logger.Logger,
) *AdminService {
	return &AdminService{
		repo:        repo,
		bookingRepo: bookingRepo,
		clock:       clock,
		rootAdminID: rootAdminID,
		logger:      logger,
	}
}

// Level returns the admin tier of a telegram id, 0 for regular users.
func (s *AdminService) Level(ctx context.Context, telegramID int64) (int, error) {
	admins, err := s.loadSeeded(ctx)
	if err != nil {
		return 0, err
	}
	admin, ok := admins[strconv.FormatInt(telegramID, 10)]
	if !ok {
		return domain.AdminLevelNone, nil
	}
	return admin.Level, nil
}

func (s *AdminService) Add(ctx context.Context, telegramID int64, level int, addedBy int64) error {
	if level < domain.AdminLevelBasic || level > domain.AdminLevelRoot {
		return fmt.Errorf("%w: invalid admin level", domain.ErrValidation)
	}

	actorLevel, err := s.Level(ctx, addedBy)
	if err != nil {
		return err
	}
	if !domain.CanManageAdmin(actorLevel, level) {
		return domain.ErrForbidden
	}

	admins, err := s.loadSeeded(ctx)
	if err != nil {
		return err
	}
	admins[strconv.FormatInt(telegramID, 10)] = domain.Admin{
		TelegramID: telegramID,
		Level:      level,
		AddedBy:    strconv.FormatInt(addedBy, 10),
		AddedAt:    s.clock.Now(),
	}

	if err = s.repo.SaveAll(ctx, admins); err != nil {
		return fmt.Errorf("save admins: %w", err)
	}

	s.logger.Info("admin added",
		logger.Int64("telegram_id", telegramID),
		logger.Int("level", level),
		logger.Int64("added_by", addedBy),
	)
	return nil
}

func (s *AdminService) Remove(ctx context.Context, telegramID, removedBy int64) error {
	admins, err := s.loadSeeded(ctx)
	if err != nil {
		return err
	}

	key := strconv.FormatInt(telegramID, 10)
	target, ok := admins[key]
	if !ok {
		return domain.ErrAdminNotFound
	}

	actorLevel, err := s.Level(ctx, removedBy)
	if err != nil {
		return err
	}
	if !domain.CanManageAdmin(actorLevel, target.Level) {
		return domain.ErrForbidden
	}

	delete(admins, key)
	if err = s.repo.SaveAll(ctx, admins); err != nil {
		return fmt.Errorf("save admins: %w", err)
	}

	s.logger.Info("admin removed",
		logger.Int64("telegram_id", telegramID),
		logger.Int64("removed_by", removedBy),
	)
	return nil
}

// FormatList renders the admin roster the way the bot shows it.
func (s *AdminService) FormatList(ctx context.Context) (string, error) {
	admins, err := s.loadSeeded(ctx)
	if err != nil {
		return "", err
	}
	if len(admins) == 0 {
		return "Список админов пуст", nil
	}

	ids := make([]string, 0, len(admins))
	for id := range admins {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := ""
	for i, id := range ids {
		title, ok := adminLevelTitles[admins[id].Level]
		if !ok {
			title = "Неизвестно"
		}
		if i > 0 {
			out += "\n\n"
		}
		out += fmt.Sprintf("👤 ID: %s\n🔹 Уровень: %s", id, title)
	}
	return out, nil
}

// ClearSystem wipes all bookings. Only the root tier may do this.
func (s *AdminService) ClearSystem(ctx context.Context, actorID int64) error {
	level, err := s.Level(ctx, actorID)
	if err != nil {
		return err
	}
	if level < domain.AdminLevelRoot {
		return domain.ErrForbidden
	}

	if err = s.bookingRepo.SaveAll(ctx, []domain.Booking{}); err != nil {
		return fmt.Errorf("clear bookings: %w", err)
	}

	s.logger.Info("system cleared", logger.Int64("actor", actorID))
	return nil
}

// loadSeeded loads the roster, seeding the configured root admin the first
// time so a fresh deployment always has a level-3 account.
func (s *AdminService) loadSeeded(ctx context.Context) (map[string]domain.Admin, error) {
	admins, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load admins: %w", err)
	}

	if len(admins) == 0 && s.rootAdminID != 0 {
		admins[strconv.FormatInt(s.rootAdminID, 10)] = domain.Admin{
			TelegramID: s.rootAdminID,
			Level:      domain.AdminLevelRoot,
			AddedBy:    "system",
			AddedAt:    s.clock.Now(),
		}
		if err = s.repo.SaveAll(ctx, admins); err != nil {
			return nil, fmt.Errorf("seed root admin: %w", err)
		}
	}

	return admins, nil
}
