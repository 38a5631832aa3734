package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Reminder ReminderConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	MigrationsPath string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// ReminderConfig tunes the service-reminder projection engine.
type ReminderConfig struct {
	// DefaultLookaheadDays bounds time-axis expansion when a schedule
	// has no time buffer configured.
	DefaultLookaheadDays int
	// DefaultMileageLookahead bounds mileage-axis expansion when a
	// schedule has no mileage buffer configured.
	DefaultMileageLookahead float64
	// MaxOccurrencesPerSeries caps a single recurrence series as a
	// guard against misconfigured schedules.
	MaxOccurrencesPerSeries int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	viper.SetDefault("DB_MIGRATIONS_PATH", "db/migrations")
	viper.SetDefault("REMINDER_DEFAULT_LOOKAHEAD_DAYS", 30)
	viper.SetDefault("REMINDER_DEFAULT_MILEAGE_LOOKAHEAD", 1000.0)
	viper.SetDefault("REMINDER_MAX_OCCURRENCES", 100)

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:           viper.GetString("DB_HOST"),
			Port:           viper.GetString("DB_PORT"),
			User:           viper.GetString("DB_USER"),
			Password:       viper.GetString("DB_PASSWORD"),
			Name:           viper.GetString("DB_NAME"),
			MigrationsPath: viper.GetString("DB_MIGRATIONS_PATH"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Reminder: ReminderConfig{
			DefaultLookaheadDays:    viper.GetInt("REMINDER_DEFAULT_LOOKAHEAD_DAYS"),
			DefaultMileageLookahead: viper.GetFloat64("REMINDER_DEFAULT_MILEAGE_LOOKAHEAD"),
			MaxOccurrencesPerSeries: viper.GetInt("REMINDER_MAX_OCCURRENCES"),
		},
	}

	return config, nil
}
