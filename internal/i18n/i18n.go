// Package i18n provides internationalization support for drill.
//
// Usage:
//
//	i18n.Init("en")                                     // at startup
//	i18n.T("watch.hint_title", "Hint")                  // simple string
//	i18n.Tf("watch.checking", "Checking `%s`…", name)   // with fmt args
package i18n

import (
	"embed"
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	mu        sync.RWMutex
)

// Init initializes the i18n system with the given language tag.
// Falls back to English if the language is not available.
// Safe to call multiple times.
func Init(lang string) {
	mu.Lock()
	defer mu.Unlock()

	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, _ := localeFS.ReadDir("locales")
	for _, e := range entries {
		_, _ = bundle.LoadMessageFileFS(localeFS, "locales/"+e.Name())
	}

	localizer = i18n.NewLocalizer(bundle, lang, "en")
}

// T returns the localized string for the given message ID.
// The defaultMsg is used as the English fallback.
func T(id string, defaultMsg string) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()

	if l == nil {
		return defaultMsg
	}

	s, err := l.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    id,
			Other: defaultMsg,
		},
	})
	if err != nil {
		return defaultMsg
	}
	return s
}

// Tf returns the localized string with fmt.Sprintf-style formatting.
func Tf(id string, defaultMsg string, args ...any) string {
	return fmt.Sprintf(T(id, defaultMsg), args...)
}

// ResolveLocale determines the active locale from the environment.
// Priority: DRILL_LANG > LC_ALL > LANG > "en"
func ResolveLocale() string {
	if v := os.Getenv("DRILL_LANG"); v != "" {
		return v
	}
	if v := os.Getenv("LC_ALL"); v != "" {
		return normalizeLocale(v)
	}
	if v := os.Getenv("LANG"); v != "" {
		return normalizeLocale(v)
	}
	return "en"
}

// normalizeLocale converts POSIX locale format to BCP 47.
// e.g., "es_ES.UTF-8" -> "es-ES", "en_US" -> "en-US"
func normalizeLocale(posix string) string {
	for i, c := range posix {
		if c == '.' {
			posix = posix[:i]
			break
		}
	}
	result := make([]byte, len(posix))
	for i := range posix {
		if posix[i] == '_' {
			result[i] = '-'
		} else {
			result[i] = posix[i]
		}
	}
	return string(result)
}
