package main

import (
	"clubhouse/internal/back"
	"clubhouse/internal/config"
	"context"
)

func loadFixtures(conf *config.Config) error {
	return withBack(conf, func(b *back.Back) error {
		return b.LoadFixtures(context.Background())
	})
}
