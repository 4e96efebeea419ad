package web

import (
	"net/http"
)

// index serves the homepage linking to both applications.
func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	s.response(w, r, http.StatusOK, "index.html", nil)
}
