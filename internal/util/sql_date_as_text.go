package util

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateLayout is the storage and input format of calendar dates.
const DateLayout = "2006-01-02"

// NullDateAsText is a calendar date stored as YYYY-MM-DD TEXT, NULL when not
// Valid. It carries no time of day nor time zone.
type NullDateAsText struct {
	Time  time.Time
	Valid bool // Valid is true if the date is not NULL
}

// ParseNullDate parses a YYYY-MM-DD string, an empty string yields a NULL date.
func ParseNullDate(str string) (NullDateAsText, error) {
	if str == "" {
		return NullDateAsText{}, nil
	}

	t, err := time.Parse(DateLayout, str)
	if err != nil {
		return NullDateAsText{}, err
	}

	return NullDateAsText{Time: t, Valid: true}, nil
}

func (d NullDateAsText) String() string {
	if !d.Valid {
		return ""
	}

	return d.Time.Format(DateLayout)
}

// Scan implements the Scanner interface.
func (d *NullDateAsText) Scan(src interface{}) error {
	var str string
	switch src := src.(type) {
	case nil:
		*d = NullDateAsText{}
		return nil
	case []byte:
		str = string(src)
	case string:
		str = src
	default:
		return fmt.Errorf("expected []byte or string, got %T", src)
	}

	tmp, err := ParseNullDate(str)
	if err != nil {
		return err
	}

	*d = tmp
	return nil
}

// Value implements the driver Valuer interface.
func (d NullDateAsText) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}

	return d.String(), nil
}
