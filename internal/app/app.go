package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/sapateam/roombooker/internal/auth"
	"github.com/sapateam/roombooker/internal/bot"
	"github.com/sapateam/roombooker/internal/clock"
	"github.com/sapateam/roombooker/internal/config"
	"github.com/sapateam/roombooker/internal/handler"
	"github.com/sapateam/roombooker/internal/middleware"
	"github.com/sapateam/roombooker/internal/notification"
	"github.com/sapateam/roombooker/internal/router"
	"github.com/sapateam/roombooker/internal/scheduler"
	"github.com/sapateam/roombooker/internal/service"
	"github.com/sapateam/roombooker/internal/storage"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	httpServer *http.Server
	bot        *bot.Bot
	sequence   *notification.Sequence
	schedulers []*scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"RoomBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	dataDir := a.cfg.Storage.DataDir
	bookingRepo := storage.NewBookingStore(dataDir)
	roomRepo := storage.NewRoomStore(dataDir)
	userRepo := storage.NewUserStore(dataDir)
	adminRepo := storage.NewAdminStore(dataDir)
	notificationRepo := storage.NewNotificationStore(dataDir)
	reminderRepo := storage.NewReminderStore(dataDir)

	clk := clock.New(a.cfg.Booking.Location())

	messenger, err := notification.NewTelegramMessenger(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.GroupID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init messenger: %w", err)
	}

	a.sequence = notification.NewSequence(
		messenger,
		a.cfg.Sequence.RepeatDelay,
		a.cfg.Sequence.DeleteAfter,
		a.log,
	)

	bookingService := service.NewBookingService(bookingRepo, roomRepo, userRepo, messenger, clk, a.log)
	roomService := service.NewRoomService(roomRepo, bookingRepo, clk)
	userService := service.NewUserService(userRepo, clk)
	adminService := service.NewAdminService(adminRepo, bookingRepo, clk, a.cfg.Telegram.RootAdminID, a.log)
	notificationService := service.NewNotificationService(notificationRepo, a.sequence, clk, a.log)
	reminderService := service.NewReminderService(
		bookingRepo, reminderRepo, messenger, clk, a.cfg.Booking.ReminderLead, a.log,
	)

	a.schedulers = []*scheduler.Scheduler{
		scheduler.New("notifications", notificationService, a.cfg.Scheduler.Interval, a.log),
		scheduler.New("reminders", reminderService, a.cfg.Scheduler.Interval, a.log),
	}

	a.bot = bot.New(
		messenger.Bot(),
		adminService,
		messenger,
		a.sequence,
		a.cfg.Telegram.WebAppURL,
		a.log,
	)

	tokens := auth.NewService(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)
	authMW := middleware.NewAuthMiddleware(tokens, adminService)

	h := handler.NewHandler(
		bookingService,
		roomService,
		userService,
		notificationService,
		adminService,
		messenger,
		tokens,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		authMW,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		cors.Default(),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for _, s := range a.schedulers {
		go s.Start(ctx)
	}
	go a.bot.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.sequence.Stop()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "notification timers cancelled")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
