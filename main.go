package main

import (
	"clubhouse/internal/config"
	"flag"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

// Version holds the build-time version string.
var Version = "unknown" // nolint:gochecknoglobals

func main() {
	flag.Parse()

	switch flag.Arg(0) {
	case "version":
		fmt.Fprintf(os.Stdout, "Clubhouse %s\n", Version)
		return
	case "help":
		fmt.Fprint(os.Stdout, help())
		return
	case "":
		fmt.Fprint(os.Stderr, help())
		os.Exit(1)
	}

	conf, err := config.NewFromUserConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to load configuration: %s\n", err)
		os.Exit(1)
	}

	logger := newLogger(conf.DevMode)
	if err := run(conf, logger, flag.Arg(0), flag.Args()[1:]); err != nil {
		logger.Fatal().Err(err).Str("command", flag.Arg(0)).Msg("command failed")
	}
}

func run(conf *config.Config, logger zerolog.Logger, command string, args []string) error {
	switch command {
	case "serve":
		return serve(conf, logger)
	case "migrate":
		return migrateDatabase(conf, logger)
	case "player:add":
		return addPlayer(conf, args)
	case "player:update":
		return updatePlayer(conf, args)
	case "config:init":
		path, err := conf.Write()
		if err != nil {
			return err
		}
		logger.Info().Str("path", path).Msg("configuration written")
		return nil
	case "dev:fixtures":
		return loadFixtures(conf)
	default:
		fmt.Fprint(os.Stderr, help())
		os.Exit(1)
	}

	return nil
}

func newLogger(devMode bool) zerolog.Logger {
	if devMode {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger().
			Level(zerolog.DebugLevel)
	}

	return zerolog.New(os.Stderr).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)
}

func help() string {
	return fmt.Sprintf(`
Clubhouse serves the club roster and a small memo board.

Usage: %[1]s COMMAND [ARGS…]

COMMANDS
    serve          migrate the database and start the web server
    migrate        apply pending database migrations
    player:add     add a player: -name NAME [-birth YYYY-MM-DD] [-intro TEXT]
    player:update  replace a player: -id ID -name NAME [-birth …] [-intro …]
    config:init    write the current configuration to the user config file
    dev:fixtures   create default data for quick testing during development
    help           display this help
    version        display the current version

Configuration is read from the user config dir (clubhouse/config.json) and
overridden by %[2]s_* environment variables, eg. %[2]s_HTTP_ADDRESS.
`,
		os.Args[0], config.EnvPrefix,
	)
}
