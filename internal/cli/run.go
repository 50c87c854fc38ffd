package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"roundbot/internal/bot"
	"roundbot/internal/config"
	"roundbot/internal/i18n"
	"roundbot/internal/ports"
	"roundbot/internal/ports/adapters/ffmpeg"
	"roundbot/internal/ports/adapters/telegram"
	"roundbot/internal/ports/adapters/ytdlp"
	"roundbot/internal/usecase"
)

func run(cmd *cobra.Command, log zerolog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if dir, _ := cmd.Flags().GetString("temp-dir"); dir != "" {
		cfg.TempDir = dir
	}
	if err := os.MkdirAll(cfg.TempDir, 0o755); err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return fmt.Errorf("telegram auth: %w", err)
	}
	log.Info().Str("bot", api.Self.UserName).Msg("authorized")

	// adapters
	video := ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath)
	extractor := ytdlp.New(cfg.YtDlpPath)
	transport := telegram.New(api, log)

	engine := usecase.New(usecase.Deps{
		Video:     video,
		Extractor: extractor,
		Uploads:   transport,
		Sink:      transport,
		Notifier:  transport,
	}, usecase.Policy{
		TempDir:           cfg.TempDir,
		MaxSourceDuration: cfg.MaxSourceDuration,
		ExternalTimeout:   cfg.ExternalTimeout,
	}, log)

	prefs := i18n.NewPrefs(cfg.DefaultLanguage)
	b := bot.New(api, engine, prefs, cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info().Msg("shut down")
	return nil
}

// ensure adapters implement ports
var _ ports.VideoTool = (*ffmpeg.Adapter)(nil)
var _ ports.Extractor = (*ytdlp.Adapter)(nil)
var _ ports.UploadFetcher = (*telegram.Adapter)(nil)
var _ ports.Sink = (*telegram.Adapter)(nil)
var _ ports.Notifier = (*telegram.Adapter)(nil)
