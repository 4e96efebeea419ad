package main

import (
	"clubhouse/internal/back"
	"clubhouse/internal/config"
	"clubhouse/internal/web"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
)

func serve(conf *config.Config, logger zerolog.Logger) error {
	return withBack(conf, func(b *back.Back) error {
		server, err := web.NewServer(b, b, conf, logger)
		if err != nil {
			return err
		}

		signaled := make(chan os.Signal, 1)
		signal.Notify(signaled, syscall.SIGINT, syscall.SIGTERM)

		var wg sync.WaitGroup
		done := make(chan struct{})
		wg.Add(1)
		go server.Serve(&wg, done)

		sig := <-signaled
		logger.Info().Str("signal", sig.String()).Msg("received signal")
		close(done)
		wg.Wait()

		logger.Info().Msg("shutdown complete")
		return nil
	})
}
