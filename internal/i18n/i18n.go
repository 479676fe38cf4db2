// Package i18n holds the active interface language and translates message
// IDs through a go-i18n bundle built from the embedded locale files.
package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/abhisek/bilim/internal/store"
)

//go:embed locales/*.json
var localeFS embed.FS

// Key is the store key of the persisted language code.
const Key = "language"

// Language is a supported interface language code.
type Language string

const (
	Kazakh  Language = "kk"
	Russian Language = "ru"
	English Language = "en"

	Default = Kazakh
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

var names = map[Language]string{
	Kazakh:  "Қазақша",
	Russian: "Русский",
	English: "English",
}

// Languages returns the supported languages in switcher order.
func Languages() []Language {
	return []Language{Kazakh, Russian, English}
}

func (l Language) Valid() bool {
	_, ok := names[l]
	return ok
}

// Name returns the language's own name for itself.
func (l Language) Name() string {
	if n, ok := names[l]; ok {
		return n
	}
	return string(l)
}

// Next returns the language after l in switcher order, wrapping around.
func (l Language) Next() Language {
	all := Languages()
	for i, x := range all {
		if x == l {
			return all[(i+1)%len(all)]
		}
	}
	return Default
}

// Parse validates a language code.
func Parse(s string) (Language, error) {
	l := Language(s)
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
	return l, nil
}

// Store owns the active language and its localizer.
type Store struct {
	kv     store.KV
	bundle *i18n.Bundle

	mu   sync.RWMutex
	lang Language
	loc  *i18n.Localizer
}

// New loads the embedded locale files and starts in the default language.
func New(kv store.KV) (*Store, error) {
	bundle := i18n.NewBundle(language.Kazakh)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale file %s: %w", e.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, e.Name()); err != nil {
			return nil, fmt.Errorf("parse locale file %s: %w", e.Name(), err)
		}
		slog.Debug("loaded locale file", "file", e.Name())
	}

	s := &Store{kv: kv, bundle: bundle}
	s.use(Default)
	return s, nil
}

// Language returns the active language.
func (s *Store) Language() Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// SetLanguage persists lang and makes it active.
func (s *Store) SetLanguage(ctx context.Context, lang Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	if err := s.kv.Set(ctx, Key, string(lang)); err != nil {
		return fmt.Errorf("save language: %w", err)
	}
	s.use(lang)
	return nil
}

// Use makes lang active for this process without persisting it.
func (s *Store) Use(lang Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	s.use(lang)
	return nil
}

// Load applies the persisted language. Missing or unsupported values are
// ignored and the active language is kept.
func (s *Store) Load(ctx context.Context) error {
	v, ok, err := s.kv.Get(ctx, Key)
	if err != nil {
		return fmt.Errorf("load language: %w", err)
	}
	if !ok {
		return nil
	}
	lang := Language(v)
	if !lang.Valid() {
		slog.Warn("ignoring stored language", "value", v)
		return nil
	}
	s.use(lang)
	return nil
}

// Reset forgets the persisted language and returns to the default.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.kv.Delete(ctx, Key); err != nil {
		return fmt.Errorf("delete language: %w", err)
	}
	s.use(Default)
	return nil
}

func (s *Store) use(lang Language) {
	loc := i18n.NewLocalizer(s.bundle, string(lang))
	s.mu.Lock()
	s.lang = lang
	s.loc = loc
	s.mu.Unlock()
}

func (s *Store) localizer() *i18n.Localizer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loc
}

// T translates a message by ID.
func (s *Store) T(msgID string) string {
	return s.localize(&i18n.LocalizeConfig{MessageID: msgID})
}

// Td translates a message by ID with template data.
func (s *Store) Td(msgID string, data map[string]any) string {
	return s.localize(&i18n.LocalizeConfig{
		MessageID:    msgID,
		TemplateData: data,
	})
}

// Tp translates a pluralized message by ID.
func (s *Store) Tp(msgID string, count int) string {
	return s.localize(&i18n.LocalizeConfig{
		MessageID:    msgID,
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	})
}

func (s *Store) localize(cfg *i18n.LocalizeConfig) string {
	out, err := s.localizer().Localize(cfg)
	if err != nil {
		slog.Warn("missing translation", "id", cfg.MessageID, "error", err)
		return cfg.MessageID
	}
	return out
}
