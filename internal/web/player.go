package web

import (
	"clubhouse/internal/back"
	"net/http"
)

func (s *Server) getAllPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := s.players.GetPlayers(r.Context())
	if err != nil {
		s.error(w, r, err, http.StatusInternalServerError)
		return
	}

	s.response(w, r, http.StatusOK, "players.html", struct {
		Players []back.Player
	}{players})
}

func (s *Server) getOnePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		s.error(w, r, err, http.StatusNotFound)
		return
	}

	player, err := s.players.GetPlayerByID(r.Context(), id)
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	s.response(w, r, http.StatusOK, "one_player.html", struct {
		Player back.Player
	}{player})
}
