package web

import (
	"clubhouse/internal/back"
	"net/http"

	"github.com/pkg/errors"
)

const memoIndexURL = "/memo/"

func (s *Server) getAllMemos(w http.ResponseWriter, r *http.Request) {
	memos, err := s.memos.GetMemos(r.Context())
	if err != nil {
		s.error(w, r, err, http.StatusInternalServerError)
		return
	}

	s.response(w, r, http.StatusOK, "memos.html", struct {
		Memos []back.Memo
	}{memos})
}

func (s *Server) getOneMemo(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		s.error(w, r, err, http.StatusNotFound)
		return
	}

	memo, err := s.memos.GetMemoByID(r.Context(), id)
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	s.response(w, r, http.StatusOK, "one_memo.html", struct {
		Memo back.Memo
	}{memo})
}

type memoFormTemplateData struct {
	Form back.MemoForm
}

// newMemo displays an empty creation form.
func (s *Server) newMemo(w http.ResponseWriter, r *http.Request) {
	s.response(w, r, http.StatusOK, "new_memo.html", memoFormTemplateData{})
}

// createMemo saves the submitted form and redirects to the list, or displays
// the form again with its errors.
func (s *Server) createMemo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.error(w, r, err, http.StatusBadRequest)
		return
	}

	form := back.NewMemoForm(r.PostForm)
	if _, err := s.memos.CreateMemo(r.Context(), &form); err != nil {
		var fields back.FieldErrors
		if errors.As(err, &fields) {
			s.response(w, r, http.StatusOK, "new_memo.html", memoFormTemplateData{form})
			return
		}

		s.error(w, r, err, http.StatusInternalServerError)
		return
	}

	s.setFlash(w, r, "Memo created.")
	http.Redirect(w, r, memoIndexURL, http.StatusFound)
}

func (s *Server) deleteMemo(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		s.error(w, r, err, http.StatusNotFound)
		return
	}

	if err := s.memos.DeleteMemo(r.Context(), id); err != nil {
		s.storeError(w, r, err)
		return
	}

	s.setFlash(w, r, "Memo deleted.")
	http.Redirect(w, r, memoIndexURL, http.StatusFound)
}
