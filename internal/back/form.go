package back

import (
	"clubhouse/internal/util"
	"net/url"
	"strings"
	"unicode/utf8"

	"gopkg.in/guregu/null.v4"
)

// MemoForm holds the user-submitted fields of a Memo. Errors is filled by
// Validate and stays nil on a pristine form.
type MemoForm struct {
	Content string
	Errors  FieldErrors
}

func NewMemoForm(values url.Values) MemoForm {
	return MemoForm{
		Content: values.Get("content"),
	}
}

// Validate normalizes the fields and reports whether the form can be saved.
func (f *MemoForm) Validate() bool {
	f.Errors = FieldErrors{}
	f.Content = strings.TrimSpace(f.Content)

	if f.Content == "" {
		f.Errors.Add("content", msgRequired)
	}

	return len(f.Errors) == 0
}

// PlayerInput is the administrative input used to create or edit a Player.
type PlayerInput struct {
	Name         string
	BirthDate    string // YYYY-MM-DD or empty
	Introduction string
}

const PlayerNameMaxLength = 100

// apply validates the input and copies it to p, p is left untouched on error.
func (in PlayerInput) apply(p *Player) error {
	errs := FieldErrors{}

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		errs.Add("name", msgRequired)
	case utf8.RuneCountInString(name) > PlayerNameMaxLength:
		errs.Add("name", msgNameTooLong)
	}

	birthDate, err := util.ParseNullDate(strings.TrimSpace(in.BirthDate))
	if err != nil {
		errs.Add("birth_date", msgInvalidDate)
	}

	if len(errs) > 0 {
		return errs
	}

	intro := strings.TrimSpace(in.Introduction)
	p.Name = name
	p.BirthDate = birthDate
	p.Introduction = null.NewString(intro, intro != "")

	return nil
}
