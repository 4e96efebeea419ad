package back

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("not found")

// Validation messages, they double as translation keys.
const (
	msgRequired    = "This field is required."
	msgNameTooLong = "Ensure this value has at most 100 characters."
	msgInvalidDate = "Enter a valid date (YYYY-MM-DD)."
)

// FieldErrors maps a form field name to its validation messages.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for k := range e {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, k := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e[k], " ")))
	}

	return "invalid input: " + strings.Join(parts, "; ")
}

// orNotFound converts a missing row into ErrNotFound.
func orNotFound(err error, what string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errors.Wrapf(ErrNotFound, "%s #%d", what, id)
	}

	return errors.Wrapf(err, "unable to fetch %s #%d", what, id)
}
