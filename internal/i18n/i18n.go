// Package i18n holds the user-facing message catalog (Uzbek, Russian,
// English) and per-user language preferences.
package i18n

import (
	"strings"
	"sync"
)

type Lang string

const (
	Uzbek   Lang = "uz"
	Russian Lang = "ru"
	English Lang = "en"
)

// IsValid reports whether s is a supported language code.
func IsValid(s string) bool {
	switch Lang(s) {
	case Uzbek, Russian, English:
		return true
	}
	return false
}

// T renders the message key in lang, substituting args for %s
// placeholders in order. Missing translations fall back to English,
// then to the key itself.
func T(key string, lang Lang, args ...string) string {
	msg, ok := catalog[key]
	if !ok {
		return key
	}
	text, ok := msg[lang]
	if !ok {
		text = msg[English]
	}
	for _, a := range args {
		text = strings.Replace(text, "%s", a, 1)
	}
	return text
}

// Prefs stores each user's display language. Lost on restart by design;
// users fall back to the default language.
type Prefs struct {
	mu    sync.Mutex
	langs map[int64]Lang
	def   Lang
}

func NewPrefs(def Lang) *Prefs {
	if !IsValid(string(def)) {
		def = Russian
	}
	return &Prefs{langs: make(map[int64]Lang), def: def}
}

func (p *Prefs) Get(userID int64) Lang {
	p.mu.Lock()
	defer p.mu.Unlock()
	if l, ok := p.langs[userID]; ok {
		return l
	}
	return p.def
}

func (p *Prefs) Set(userID int64, lang Lang) {
	p.mu.Lock()
	p.langs[userID] = lang
	p.mu.Unlock()
}
