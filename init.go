package main

import (
	"time"

	"github.com/rs/zerolog"
)

func init() { // nolint:gochecknoinits
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.DurationFieldUnit = time.Millisecond
}
