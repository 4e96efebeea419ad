package web_test

import (
	"clubhouse/internal/back"
	"clubhouse/internal/config"
	"clubhouse/internal/web"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	conf := config.Default()
	conf.ResourcesDir = "../../resources"
	conf.DevMode = true
	conf.PostRate = 0

	return conf
}

func createTestBack(t *testing.T) *back.Back {
	path := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, back.Migrate("../../resources/migrations", path))

	b, err := back.New("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })

	return b
}

func createTestServer(t *testing.T, conf config.Config) (*web.Server, *back.Back) {
	b := createTestBack(t)
	s, err := web.NewServer(b, b, &conf, zerolog.Nop())
	require.NoError(t, err)

	return s, b
}

func get(h http.Handler, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, v := range cookies {
		req.AddCookie(v)
	}

	return serve(h, req)
}

func newPostRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func post(h http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	return serve(h, newPostRequest(target, form))
}

func TestIndex(t *testing.T) {
	s, _ := createTestServer(t, testConfig())

	rec := get(s, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `href="/players/"`)
	assert.Contains(t, rec.Body.String(), `href="/memo/"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestUnknownPath(t *testing.T) {
	s, _ := createTestServer(t, testConfig())

	for _, v := range []string{"/nope", "/players/nope/", "/memo/detail/"} {
		rec := get(s, v)
		assert.Equal(t, http.StatusNotFound, rec.Code, v)
	}
}

func TestStaticAsset(t *testing.T) {
	s, _ := createTestServer(t, testConfig())

	rec := get(s, "/_/style.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "font-family")
}

func TestLocaleNegotiation(t *testing.T) {
	s, _ := createTestServer(t, testConfig())

	type entry struct {
		header, expected string
	}

	cases := []entry{
		{"", "Players"},
		{"fr-FR,fr;q=0.9,en;q=0.8", "Joueurs"},
		{"de-DE", "Players"},
		{"en-GB,fr;q=0.5", "Players"},
	}

	for _, v := range cases {
		req := httptest.NewRequest(http.MethodGet, "/players/", nil)
		req.Header.Set("Accept-Language", v.header)
		rec := serve(s, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<h1>"+v.expected+"</h1>", "Accept-Language: %q", v.header)
	}
}

func TestMetrics(t *testing.T) {
	s, _ := createTestServer(t, testConfig())

	get(s, "/players/")
	rec := get(s, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "clubhouse_http_requests_total")
	assert.Contains(t, rec.Body.String(), `method="GET"`)
}

func TestNewServerBadResources(t *testing.T) {
	conf := testConfig()
	conf.ResourcesDir = t.TempDir()
	b := createTestBack(t)

	_, err := web.NewServer(b, b, &conf, zerolog.Nop())
	assert.Error(t, err)

	conf = testConfig()
	conf.DefaultLocale = "xx"
	_, err = web.NewServer(b, b, &conf, zerolog.Nop())
	assert.Error(t, err)
}

// brokenStore fails every call with an unexpected error.
type brokenStore struct{}

var errBroken = errors.New("database is on fire")

func (brokenStore) GetPlayers(context.Context) ([]back.Player, error) { return nil, errBroken }
func (brokenStore) GetPlayerByID(context.Context, int64) (back.Player, error) {
	return back.Player{}, errBroken
}
func (brokenStore) GetMemos(context.Context) ([]back.Memo, error) { return nil, errBroken }
func (brokenStore) GetMemoByID(context.Context, int64) (back.Memo, error) {
	return back.Memo{}, errBroken
}
func (brokenStore) CreateMemo(context.Context, *back.MemoForm) (back.Memo, error) {
	return back.Memo{}, errBroken
}
func (brokenStore) DeleteMemo(context.Context, int64) error { return errBroken }

func TestStoreFailures(t *testing.T) {
	conf := testConfig()
	s, err := web.NewServer(brokenStore{}, brokenStore{}, &conf, zerolog.Nop())
	require.NoError(t, err)

	for _, v := range []string{"/players/", "/players/detail/1/", "/memo/", "/memo/detail/1/"} {
		rec := get(s, v)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, v)
		assert.NotContains(t, rec.Body.String(), errBroken.Error())
	}

	rec := post(s, "/memo/new/", url.Values{"content": {"buy milk"}})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = post(s, "/memo/delete/1/", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
