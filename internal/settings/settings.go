// Package settings holds the persisted display preferences.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/verte-zerg/runcals/internal/store"
)

// Storage keys.
const (
	LanguageKey = "language"
	ThemeKey    = "theme"
)

var (
	// ErrInvalidLanguage reports an unsupported language code.
	ErrInvalidLanguage = errors.New("invalid language, use en or zh")
	// ErrInvalidTheme reports an unsupported theme name.
	ErrInvalidTheme = errors.New("invalid theme, use light, dark or automatic")
)

// Language is a supported UI language.
type Language string

// Supported languages.
const (
	English Language = "en"
	Chinese Language = "zh"
)

// Theme is a colour scheme choice.
type Theme string

// Themes. Automatic follows the terminal.
const (
	ThemeLight     Theme = "light"
	ThemeDark      Theme = "dark"
	ThemeAutomatic Theme = "automatic"
)

// Settings is the full preference set.
type Settings struct {
	Language Language `json:"language" yaml:"language"`
	Theme    Theme    `json:"theme" yaml:"theme"`
}

// Default returns the preferences used before anything is saved.
func Default() Settings {
	return Settings{Language: Chinese, Theme: ThemeAutomatic}
}

// ParseLanguage validates a language code.
func ParseLanguage(s string) (Language, error) {
	switch l := Language(strings.ToLower(strings.TrimSpace(s))); l {
	case English, Chinese:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, s)
}

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeLight, ThemeDark, ThemeAutomatic:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

// Next cycles light, dark, automatic.
func (t Theme) Next() Theme {
	switch t {
	case ThemeLight:
		return ThemeDark
	case ThemeDark:
		return ThemeAutomatic
	default:
		return ThemeLight
	}
}

// IsDark resolves the theme against the terminal's background.
func (t Theme) IsDark(terminalDark bool) bool {
	if t == ThemeAutomatic {
		return terminalDark
	}
	return t == ThemeDark
}

var (
	supportedTags = []language.Tag{language.English, language.Chinese, language.TraditionalChinese}
	supportedLang = []Language{English, Chinese, Chinese}
	matcher       = language.NewMatcher(supportedTags)
)

// ResolveLanguage maps a locale such as "zh-TW" or "en_US.UTF-8" to the
// closest supported language. It reports false when nothing matches.
func ResolveLanguage(locale string) (Language, bool) {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return "", false
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "", false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return "", false
	}
	return supportedLang[index], true
}

// Initial picks the language for a first run: the saved one, else the
// locale's when supported, else the default.
func Initial(saved Settings, hasSaved bool, locale string) Language {
	if hasSaved {
		return saved.Language
	}
	if l, ok := ResolveLanguage(locale); ok {
		return l
	}
	return Default().Language
}

// Load reads the saved preferences. Missing or unknown values keep their
// defaults.
func Load(ctx context.Context, kv store.KV, logger *zap.Logger) Settings {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := Default()
	if raw, ok := readString(ctx, kv, LanguageKey, logger); ok {
		if l, err := ParseLanguage(raw); err == nil {
			s.Language = l
		} else {
			logger.Debug("ignoring saved language", zap.String("value", raw))
		}
	}
	if raw, ok := readString(ctx, kv, ThemeKey, logger); ok {
		if t, err := ParseTheme(raw); err == nil {
			s.Theme = t
		} else {
			logger.Debug("ignoring saved theme", zap.String("value", raw))
		}
	}
	return s
}

// HasLanguage reports whether a language was ever saved.
func HasLanguage(ctx context.Context, kv store.KV) bool {
	_, err := kv.Get(ctx, LanguageKey)
	return err == nil
}

// HasTheme reports whether a theme was ever saved.
func HasTheme(ctx context.Context, kv store.KV) bool {
	_, err := kv.Get(ctx, ThemeKey)
	return err == nil
}

func readString(ctx context.Context, kv store.KV, key string, logger *zap.Logger) (string, bool) {
	data, err := kv.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return "", false
	}
	if err != nil {
		logger.Warn("settings read failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return string(data), true
}

// SaveLanguage persists a language.
func SaveLanguage(ctx context.Context, kv store.KV, l Language) error {
	if _, err := ParseLanguage(string(l)); err != nil {
		return err
	}
	if err := kv.Set(ctx, LanguageKey, []byte(l)); err != nil {
		return fmt.Errorf("failed to save language: %w", err)
	}
	return nil
}

// SaveTheme persists a theme.
func SaveTheme(ctx context.Context, kv store.KV, t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	if err := kv.Set(ctx, ThemeKey, []byte(t)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}
