package web

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/hlog"
)

const (
	flashCookieName     = "flash"
	flashCookieLifetime = 5 * time.Minute
)

func (s *Server) newSecureCookie() (*securecookie.SecureCookie, error) {
	key := []byte(s.config.CookieHashKey)
	if len(key) < 32 {
		s.log.Warn().Msg("no CookieHashKey configured or shorter than 32 bytes, using a random one")
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, errors.New("unable to generate a cookie hash key")
		}
	}

	sc := securecookie.New(key, nil)
	sc.MaxAge(int(flashCookieLifetime / time.Second))

	return sc, nil
}

// setFlash stores a one-shot message displayed by the next rendered page.
// msg is a translation key.
func (s *Server) setFlash(w http.ResponseWriter, r *http.Request, msg string) {
	encoded, err := s.sc.Encode(flashCookieName, msg)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("unable to encode flash cookie")
		return
	}

	http.SetCookie(w, s.flashCookie(encoded, int(flashCookieLifetime/time.Second)))
}

// popFlash returns the pending flash message, if any, and clears it.
func (s *Server) popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, s.flashCookie("", -1))

	var msg string
	if err := s.sc.Decode(flashCookieName, cookie.Value, &msg); err != nil {
		hlog.FromRequest(r).Info().Err(err).Msg("discarding invalid flash cookie")
		return ""
	}

	return msg
}

func (s *Server) flashCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   !s.config.DevMode,
		SameSite: http.SameSiteLaxMode,
	}
}
