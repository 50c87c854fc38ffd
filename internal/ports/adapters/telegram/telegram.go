// Package telegram adapts the Bot API to the delivery and file-fetch
// ports. It is the only package besides bot that talks to the wire.
package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// noteSideHint is the side length reported to the Bot API for a video
// note; it must match what the encoder produces.
const noteSideHint = 384

type Adapter struct {
	bot  *tgbotapi.BotAPI
	http *http.Client
	log  zerolog.Logger
}

func New(bot *tgbotapi.BotAPI, log zerolog.Logger) *Adapter {
	return &Adapter{
		bot: bot,
		// Upload payloads can be tens of megabytes.
		http: &http.Client{Timeout: 30 * time.Minute},
		log:  log,
	}
}

func (a *Adapter) SendVideo(_ context.Context, chatID int64, path string) error {
	msg := tgbotapi.NewVideo(chatID, tgbotapi.FilePath(path))
	if _, err := a.bot.Send(msg); err != nil {
		return fmt.Errorf("send video: %w", err)
	}
	return nil
}

func (a *Adapter) SendVideoNote(_ context.Context, chatID int64, name string, data []byte) error {
	msg := tgbotapi.NewVideoNote(chatID, noteSideHint, tgbotapi.FileBytes{Name: name, Bytes: data})
	if _, err := a.bot.Send(msg); err != nil {
		return fmt.Errorf("send video note: %w", err)
	}
	return nil
}

// FetchUpload resolves the file's download URL through getFile and
// streams the bytes to out.
func (a *Adapter) FetchUpload(ctx context.Context, fileID, out string) error {
	file, err := a.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return fmt.Errorf("resolve file link: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(a.bot.Token), nil)
	if err != nil {
		return fmt.Errorf("build fetch request: %w", err)
	}
	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch upload: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch upload: unexpected status %d", resp.StatusCode)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create input file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("write input file: %w", err)
	}
	return nil
}

// Notify sends progress text. Failures are logged and swallowed: a lost
// notice must not abort a running job.
func (a *Adapter) Notify(_ context.Context, chatID int64, text string) {
	if _, err := a.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		a.log.Warn().Err(err).Int64("chat", chatID).Msg("notice not delivered")
	}
}
