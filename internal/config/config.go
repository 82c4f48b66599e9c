package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Storage   StorageConfig   `yaml:"storage"   validate:"required"`
	Auth      AuthConfig      `yaml:"auth"      validate:"required"`
	Booking   BookingConfig   `yaml:"booking"   validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Sequence  SequenceConfig  `yaml:"sequence"  validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type StorageConfig struct {
	DataDir string `yaml:"data_dir" env:"DATA_DIR" env-default:"data" validate:"required"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET" env-default:"dev-secret-change-in-production" validate:"required"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL" env-default:"24h" validate:"gt=0"`
}

type BookingConfig struct {
	// Civil timezone offset for all due-time comparisons (UTC+5 by default).
	UTCOffsetHours int           `yaml:"utc_offset_hours" env:"BOOKING_UTC_OFFSET" env-default:"5"   validate:"min=-12,max=14"`
	ReminderLead   time.Duration `yaml:"reminder_lead"    env:"REMINDER_LEAD"      env-default:"15m" validate:"gt=0"`
}

// Location builds the fixed civil timezone from the configured offset.
func (b BookingConfig) Location() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC+%d", b.UTCOffsetHours), b.UTCOffsetHours*3600)
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"60s" validate:"required,gt=0"`
}

// SequenceConfig controls the three-message notification sequence timings.
// Shortened in tests; production values match the original product behavior.
type SequenceConfig struct {
	RepeatDelay time.Duration `yaml:"repeat_delay" env:"SEQUENCE_REPEAT_DELAY" env-default:"10m" validate:"gt=0"`
	DeleteAfter time.Duration `yaml:"delete_after" env:"SEQUENCE_DELETE_AFTER" env-default:"9m"  validate:"gt=0"`
}

type TelegramConfig struct {
	BotToken    string `yaml:"bot_token"     env:"TELEGRAM_BOT_TOKEN"     env-default:""`
	GroupID     int64  `yaml:"group_id"      env:"TELEGRAM_GROUP_ID"      env-default:"0"`
	WebAppURL   string `yaml:"webapp_url"    env:"TELEGRAM_WEBAPP_URL"    env-default:""`
	RootAdminID int64  `yaml:"root_admin_id" env:"TELEGRAM_ROOT_ADMIN_ID" env-default:"0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
