package util

import (
	"fmt"
	"time"
)

// Datetime is the format to use anywhere we need to output a date+time to an user.
func Datetime(iface interface{}) string {
	var t time.Time
	switch iface := iface.(type) {
	case time.Time:
		t = iface
	case TimeAsTimestamp:
		t = iface.Time()
	default:
		panic(fmt.Errorf("unexpected type %T", iface))
	}

	return t.Format("2006-01-02 15h04 MST")
}

// Date is the format to use anywhere we need to output a date to an user.
// NULL dates are rendered as an empty string.
func Date(iface interface{}) string {
	var t time.Time
	switch iface := iface.(type) {
	case time.Time:
		t = iface
	case TimeAsTimestamp:
		t = iface.Time()
	case NullDateAsText:
		if !iface.Valid {
			return ""
		}
		t = iface.Time
	default:
		panic(fmt.Errorf("unexpected type %T", iface))
	}

	return t.Format(DateLayout)
}
