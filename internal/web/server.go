package web

import (
	"bytes"
	"clubhouse/internal/back"
	"clubhouse/internal/config"
	"context"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/gorilla/securecookie"
	"github.com/leonelquinteros/gotext"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"
)

// PlayerStore is the read-only roster the web frontend displays.
type PlayerStore interface {
	GetPlayers(ctx context.Context) ([]back.Player, error)
	GetPlayerByID(ctx context.Context, id int64) (back.Player, error)
}

// MemoStore is the memo persistence the web frontend lists, creates and
// deletes from.
type MemoStore interface {
	GetMemos(ctx context.Context) ([]back.Memo, error)
	GetMemoByID(ctx context.Context, id int64) (back.Memo, error)
	CreateMemo(ctx context.Context, form *back.MemoForm) (back.Memo, error)
	DeleteMemo(ctx context.Context, id int64) error
}

type ctxKey int

const (
	ctxKeyLocale ctxKey = iota
)

type Server struct {
	http    *http.Server
	players PlayerStore
	memos   MemoStore
	config  *config.Config
	log     zerolog.Logger

	tpl         map[string]*template.Template
	locales     map[string]*gotext.Locale
	localeNames []string // same order as the matcher tags
	matcher     language.Matcher

	sc      *securecookie.SecureCookie
	limiter *rate.Limiter
	metrics *metrics
}

func NewServer(
	players PlayerStore,
	memos MemoStore,
	conf *config.Config,
	log zerolog.Logger,
) (*Server, error) {
	s := &Server{
		players: players,
		memos:   memos,
		config:  conf,
		log:     log,
		limiter: newPostLimiter(conf.PostRate, conf.PostBurst),
		metrics: newMetrics(),
	}

	var err error
	if err = s.loadLocales(filepath.Join(conf.ResourcesDir, "locales")); err != nil {
		return nil, errors.Wrap(err, "unable to load locales")
	}

	if s.tpl, err = s.loadTemplates(conf.ResourcesDir); err != nil {
		return nil, errors.Wrap(err, "unable to load templates")
	}

	if s.sc, err = s.newSecureCookie(); err != nil {
		return nil, err
	}

	s.http = &http.Server{
		Addr:         conf.HTTPAddress,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  10 * time.Second,
		Handler:      s.setupRouter(),
	}

	return s, nil
}

func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(hlog.NewHandler(s.log))
	r.Use(hlog.RequestIDHandler("req_id", "X-Request-Id"))
	r.Use(hlog.AccessHandler(logAccess))
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.instrument)
	r.Use(s.localize)

	// Must be set before any Route() so the sub-routers inherit them.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.error(w, r, nil, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.error(w, r, nil, http.StatusMethodNotAllowed)
	})

	r.Get("/", s.index)
	r.Get("/_/*", s.static())
	r.Get("/metrics", s.metrics.handler().ServeHTTP)

	r.Route("/players", func(r chi.Router) {
		r.Get("/", s.getAllPlayers)
		r.Get("/detail/{id}/", s.getOnePlayer)
	})

	r.Route("/memo", func(r chi.Router) {
		r.Get("/", s.getAllMemos)
		r.Get("/detail/{id}/", s.getOneMemo)
		r.Get("/new/", s.newMemo)
		r.With(s.throttle).Post("/new/", s.createMemo)
		r.With(s.throttle).Post("/delete/{id}/", s.deleteMemo)
	})

	return r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.http.Handler.ServeHTTP(w, r)
}

// Serve listens until done is closed, then gracefully shuts the server down.
// The caller must have done wg.Add(1) before starting Serve.
func (s *Server) Serve(wg *sync.WaitGroup, done <-chan struct{}) {
	s.log.Info().Str("addr", s.http.Addr).Msg("starting HTTP server")
	defer wg.Done()

	go func() {
		err := s.http.ListenAndServe()
		if err == http.ErrServerClosed {
			s.log.Info().Msg("HTTP server closed")
			return
		}

		s.log.Fatal().Err(err).Msg("webserver crashed")
	}()

	<-done
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		s.log.Warn().Err(err).Msg("unable to close webserver")
	}
}

// templateData is what every layout receives, the handler-specific values
// are in Payload.
type templateData struct {
	Locale  string
	Flash   string
	Payload interface{}
}

func (s *Server) response(
	w http.ResponseWriter,
	r *http.Request,
	code int,
	template string,
	payload interface{},
) {
	tpl, ok := s.tpl[template]
	if !ok {
		s.error(w, r, fmt.Errorf("template not found: %s", template), http.StatusInternalServerError)
		return
	}

	data := templateData{
		Locale:  localeFromRequest(r),
		Flash:   s.popFlash(w, r),
		Payload: payload,
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "base", data); err != nil {
		s.error(w, r, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write(buf.Bytes()); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("unable to send response")
	}
}

// error renders the error page for code, err is only logged and never shown.
func (s *Server) error(w http.ResponseWriter, r *http.Request, err error, code int) {
	logger := hlog.FromRequest(r)
	switch {
	case code >= http.StatusInternalServerError:
		logger.Error().Err(err).Int("code", code).Msg("request failed")
	case err != nil:
		logger.Info().Err(err).Int("code", code).Msg("request rejected")
	}

	tpl, ok := s.tpl["error.html"]
	if !ok {
		http.Error(w, http.StatusText(code), code)
		return
	}

	payload := struct {
		Code   int
		Status string
	}{code, http.StatusText(code)}

	var buf bytes.Buffer
	data := templateData{Locale: localeFromRequest(r), Payload: payload}
	if err := tpl.ExecuteTemplate(&buf, "base", data); err != nil {
		logger.Error().Err(err).Msg("unable to render error page")
		http.Error(w, http.StatusText(code), code)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Warn().Err(err).Msg("unable to send response")
	}
}

// storeError maps a back error to the matching HTTP error page.
func (s *Server) storeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, back.ErrNotFound) {
		s.error(w, r, err, http.StatusNotFound)
		return
	}

	s.error(w, r, err, http.StatusInternalServerError)
}

func urlID(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, key), 10, 64)
}

func logAccess(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("url", r.URL.String()).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("")
}
