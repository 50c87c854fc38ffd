// Package bot is the interaction surface: it reads Telegram updates,
// renders choices, and hands consumed selections to the engine. All
// per-user state lives in the pending stores and language prefs.
package bot

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"roundbot/internal/classify"
	"roundbot/internal/config"
	"roundbot/internal/i18n"
	"roundbot/internal/pending"
	"roundbot/internal/types"
	"roundbot/internal/usecase"
)

type Bot struct {
	api    *tgbotapi.BotAPI
	engine usecase.Engine
	// links and uploads are separate stores so the two token namespaces
	// can never collide.
	links   *pending.Store
	uploads *pending.Store
	prefs   *i18n.Prefs
	cfg     *config.Config
	log     zerolog.Logger
}

func New(api *tgbotapi.BotAPI, engine usecase.Engine, prefs *i18n.Prefs, cfg *config.Config, log zerolog.Logger) *Bot {
	return &Bot{
		api:     api,
		engine:  engine,
		links:   pending.New(),
		uploads: pending.New(),
		prefs:   prefs,
		cfg:     cfg,
		log:     log,
	}
}

// Run polls for updates until ctx is cancelled. Each update is handled
// in its own goroutine; one user's job never blocks another's.
func (b *Bot) Run(ctx context.Context) error {
	go pending.RunSweeper(ctx, b.cfg.SweepInterval, b.cfg.PendingTTL, func(n int) {
		b.log.Info().Int("swept", n).Msg("expired pending selections dropped")
	}, b.links, b.uploads)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)
	b.log.Info().Str("bot", b.api.Self.UserName).Msg("long polling started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handle(ctx, upd)
		}
	}
}

func (b *Bot) handle(ctx context.Context, upd tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().Interface("panic", r).Msg("update handler panicked")
		}
	}()

	switch {
	case upd.CallbackQuery != nil:
		b.handleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil && upd.Message.IsCommand():
		b.handleCommand(upd.Message)
	case upd.Message != nil && upd.Message.Video != nil:
		b.handleVideo(upd.Message)
	case upd.Message != nil && upd.Message.Text != "":
		b.handleText(upd.Message)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	lang := b.prefs.Get(msg.From.ID)
	switch msg.Command() {
	case "start":
		b.reply(msg.Chat.ID, i18n.T("welcome", lang))
	case "language":
		prompt := tgbotapi.NewMessage(msg.Chat.ID, i18n.T("chooseLanguage", lang))
		prompt.ReplyMarkup = languageKeyboard()
		b.send(prompt)
	}
}

func (b *Bot) handleText(msg *tgbotapi.Message) {
	lang := b.prefs.Get(msg.From.ID)

	ref, err := classify.Classify(msg.Text)
	if err != nil {
		b.reply(msg.Chat.ID, i18n.T("invalidUrl", lang))
		return
	}

	token := b.links.Register(ref)
	prompt := tgbotapi.NewMessage(msg.Chat.ID, i18n.T("choosingFormat", lang))
	prompt.ReplyMarkup = formatKeyboard(lang, token, false)
	b.send(prompt)
}

func (b *Bot) handleVideo(msg *tgbotapi.Message) {
	lang := b.prefs.Get(msg.From.ID)
	video := msg.Video

	if key, ok := acceptUpload(video, b.cfg.MaxUploadBytes); !ok {
		b.reply(msg.Chat.ID, i18n.T(key, lang))
		return
	}

	token := b.uploads.Register(types.ContentReference{FileID: video.FileID})
	prompt := tgbotapi.NewMessage(msg.Chat.ID, i18n.T("choosingFormat", lang))
	prompt.ReplyMarkup = formatKeyboard(lang, token, true)
	b.send(prompt)
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		b.log.Warn().Err(err).Msg("callback ack failed")
	}
	if cq.Message == nil {
		return
	}

	lang := b.prefs.Get(cq.From.ID)
	chatID := cq.Message.Chat.ID

	if code, found := languageFromCallback(cq.Data); found {
		b.prefs.Set(cq.From.ID, code)
		b.editText(chatID, cq.Message.MessageID, i18n.T("languageChanged", code))
		return
	}

	mode, token, isFile, ok := parseCallback(cq.Data)
	if !ok {
		return
	}

	b.editText(chatID, cq.Message.MessageID, i18n.T("processingVideo", lang))

	store := b.links
	if isFile {
		store = b.uploads
	}
	ref, ok := store.Consume(token)
	if !ok {
		// Already consumed or swept: an ordinary double-tap race.
		b.reply(chatID, i18n.T(noticeKey(types.ErrStaleSelection, ref), lang))
		b.log.Info().Str("token", token).Msg("stale selection tapped")
		return
	}

	req := usecase.Request{ChatID: chatID, Lang: lang, Mode: mode, Ref: ref}
	if err := b.engine.Process(ctx, req); err != nil {
		// The engine already tells the user about a failed note send.
		var df *types.DeliveryFailure
		if !(mode == types.ModeRound && errors.As(err, &df)) {
			b.reply(chatID, i18n.T(noticeKey(err, ref), lang))
		}
		b.log.Error().Err(err).Int64("chat", chatID).Msg("job failed")
	}
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) editText(chatID int64, messageID int, text string) {
	if _, err := b.api.Send(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		b.log.Warn().Err(err).Msg("message edit failed")
	}
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.log.Warn().Err(err).Msg("send failed")
	}
}

// acceptUpload decides whether an uploaded video may become a pending
// selection. The size gate runs before any pending entry exists; an
// oversized upload never becomes a job. Refusals carry the message key
// to show the user.
func acceptUpload(video *tgbotapi.Video, maxBytes int64) (key string, ok bool) {
	if int64(video.FileSize) > maxBytes {
		return "videoTooLarge", false
	}
	if video.FileID == "" {
		return "videoIdNotFound", false
	}
	return "", true
}

func formatKeyboard(lang i18n.Lang, token string, isFile bool) tgbotapi.InlineKeyboardMarkup {
	round, regular := "round_", "regular_"
	if isFile {
		round, regular = "round_file_", "regular_file_"
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(i18n.T("roundVideo", lang), round+token),
			tgbotapi.NewInlineKeyboardButtonData(i18n.T("regularVideo", lang), regular+token),
		),
	)
}

func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("O'zbekcha", "lang_uz"),
			tgbotapi.NewInlineKeyboardButtonData("Русский", "lang_ru"),
			tgbotapi.NewInlineKeyboardButtonData("English", "lang_en"),
		),
	)
}

func languageFromCallback(data string) (i18n.Lang, bool) {
	const prefix = "lang_"
	if len(data) <= len(prefix) || data[:len(prefix)] != prefix {
		return "", false
	}
	code := data[len(prefix):]
	if !i18n.IsValid(code) {
		return "", false
	}
	return i18n.Lang(code), true
}
