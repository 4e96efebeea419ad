package web

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
)

// loadLocales loads every <dir>/<lang>/default.po, the configured default
// locale comes first so it is the fallback of the matcher.
func (s *Server) loadLocales(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	def := s.config.DefaultLocale
	names := []string{def}
	var foundDefault bool
	for _, v := range entries {
		switch {
		case !v.IsDir():
		case v.Name() == def:
			foundDefault = true
		default:
			names = append(names, v.Name())
		}
	}

	if !foundDefault {
		return fmt.Errorf("default locale %q not found in %s", def, dir)
	}

	s.locales = make(map[string]*gotext.Locale, len(names))
	tags := make([]language.Tag, 0, len(names))
	for _, name := range names {
		tag, err := language.Parse(name)
		if err != nil {
			return fmt.Errorf("invalid locale directory %q: %w", name, err)
		}

		locale := gotext.NewLocale(dir, name)
		locale.AddDomain("default")
		s.locales[name] = locale
		tags = append(tags, tag)
	}

	s.localeNames = names
	s.matcher = language.NewMatcher(tags)

	return nil
}

func (s *Server) translate(locale, str string) string {
	l, ok := s.locales[locale]
	if !ok {
		return str
	}

	return l.Get(str)
}

// localize picks the best locale from Accept-Language and stores it in the
// request context.
func (s *Server) localize(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, idx := language.MatchStrings(s.matcher, r.Header.Get("Accept-Language"))
		ctx := context.WithValue(r.Context(), ctxKeyLocale, s.localeNames[idx])
		h.ServeHTTP(w, r.WithContext(ctx))
	})
}

func localeFromRequest(r *http.Request) string {
	locale, _ := r.Context().Value(ctxKeyLocale).(string)
	return locale
}
