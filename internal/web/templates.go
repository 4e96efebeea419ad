package web

import (
	"clubhouse/internal/util"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/russross/blackfriday/v2"
)

func (s *Server) loadTemplates(baseDir string) (map[string]*template.Template, error) {
	layouts, err := filepath.Glob(filepath.Join(baseDir, "templates/layouts/*.html"))
	if err != nil {
		return nil, err
	}
	if len(layouts) == 0 {
		return nil, fmt.Errorf("no layout found in %s", baseDir)
	}

	includes, err := filepath.Glob(filepath.Join(baseDir, "templates/includes/*.html"))
	if err != nil {
		return nil, err
	}

	funcs := s.getTemplateFuncMap(baseDir)
	ret := make(map[string]*template.Template, len(layouts))
	for _, layout := range layouts {
		tpl, err := template.New("").
			Funcs(funcs).
			ParseFiles(append(includes, layout)...)
		if err != nil {
			return nil, err
		}

		ret[filepath.Base(layout)] = tpl
	}

	return ret, nil
}

func (s *Server) getTemplateFuncMap(baseDir string) template.FuncMap {
	return template.FuncMap{
		"t": func(locale string, str string) string {
			return s.translate(locale, str)
		},

		"tf": func(locale string, str string, args ...interface{}) string {
			return fmt.Sprintf(s.translate(locale, str), args...)
		},

		"md":             tplMarkdown,
		"date":           util.Date,
		"datetime":       util.Datetime,
		"assetURL":       tplAssetURL,
		"assetIntegrity": tplAssetIntegrity(baseDir),
	}
}

// tplMarkdown renders user-provided markdown, raw HTML is dropped and only
// safe links are kept.
func tplMarkdown(str string) template.HTML {
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.CommonHTMLFlags | blackfriday.SkipHTML | blackfriday.Safelink,
	})

	return template.HTML(blackfriday.Run( // nolint:gosec
		[]byte(strings.ReplaceAll(str, "\r\n", "\n")),
		blackfriday.WithRenderer(renderer),
	))
}

func tplAssetURL(name string) string {
	return "/_/" + name
}

func tplAssetIntegrity(baseDir string) func(name string) (string, error) {
	var mu sync.Mutex
	hashCache := map[string]string{}

	return func(name string) (string, error) {
		mu.Lock()
		defer mu.Unlock()

		if hash, ok := hashCache[name]; ok {
			return hash, nil
		}

		f, err := os.Open(filepath.Join(baseDir, "static", name))
		if err != nil {
			return "", err
		}
		defer f.Close() // nolint:gosec

		h := sha512.New()
		if _, err := io.Copy(h, f); err != nil {
			return "", err
		}

		hashCache[name] = "sha512-" + base64.StdEncoding.EncodeToString(h.Sum(nil))
		return hashCache[name], nil
	}
}

func (s *Server) static() http.HandlerFunc {
	fs := http.StripPrefix("/_/", http.FileServer(
		http.Dir(filepath.Join(s.config.ResourcesDir, "static")),
	))

	return fs.ServeHTTP
}
