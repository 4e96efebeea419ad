package util

import (
	"errors"
	"strings"
)

// ConcatErrors merges the non-nil errors into one, nil if there are none.
func ConcatErrors(errs ...error) error {
	filtered := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err.Error())
		}
	}

	if len(filtered) == 0 {
		return nil
	}

	return errors.New(strings.Join(filtered, "; "))
}
