// Package config loads all runtime settings from the environment with
// typed defaults. godotenv populates the environment beforehand when a
// .env file is present.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"roundbot/internal/i18n"
)

type Config struct {
	BotToken string

	TempDir     string
	FFmpegPath  string
	FFprobePath string
	YtDlpPath   string

	// Policy ceilings checked before expensive work starts.
	MaxSourceDuration time.Duration
	MaxUploadBytes    int64

	// Pending-token retention.
	PendingTTL    time.Duration
	SweepInterval time.Duration

	// Ceiling for each external-process invocation and upload fetch.
	ExternalTimeout time.Duration

	DefaultLanguage i18n.Lang
}

func Load() (*Config, error) {
	cfg := &Config{
		BotToken:          os.Getenv("TELEGRAM_BOT_TOKEN"),
		TempDir:           getEnv("TEMP_DIR", "temp"),
		FFmpegPath:        getEnv("FFMPEG_PATH", "ffmpeg"),
		FFprobePath:       getEnv("FFPROBE_PATH", "ffprobe"),
		YtDlpPath:         getEnv("YTDLP_PATH", "yt-dlp"),
		MaxSourceDuration: time.Duration(getEnvAsInt("MAX_SOURCE_DURATION_SEC", 600)) * time.Second,
		MaxUploadBytes:    int64(getEnvAsInt("MAX_UPLOAD_BYTES", 52428800)),
		PendingTTL:        time.Duration(getEnvAsInt("PENDING_TTL_MINUTES", 60)) * time.Minute,
		SweepInterval:     time.Duration(getEnvAsInt("PENDING_SWEEP_MINUTES", 10)) * time.Minute,
		ExternalTimeout:   time.Duration(getEnvAsInt("EXTERNAL_TIMEOUT_MINUTES", 10)) * time.Minute,
		DefaultLanguage:   i18n.Lang(getEnv("DEFAULT_LANGUAGE", "ru")),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.BotToken == "" {
		return errors.New("TELEGRAM_BOT_TOKEN is required (set it in .env)")
	}
	if c.MaxSourceDuration <= 0 {
		return fmt.Errorf("max source duration must be > 0")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload size must be > 0")
	}
	if c.PendingTTL <= 0 || c.SweepInterval <= 0 {
		return fmt.Errorf("pending ttl and sweep interval must be > 0")
	}
	if c.ExternalTimeout <= 0 {
		return fmt.Errorf("external timeout must be > 0")
	}
	if !i18n.IsValid(string(c.DefaultLanguage)) {
		return fmt.Errorf("unsupported default language %q", c.DefaultLanguage)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}
