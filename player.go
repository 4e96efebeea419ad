package main

import (
	"clubhouse/internal/back"
	"clubhouse/internal/config"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// playerFlags binds the PlayerInput fields to fs.
func playerFlags(fs *flag.FlagSet, in *back.PlayerInput) {
	fs.StringVar(&in.Name, "name", "", "player name, required")
	fs.StringVar(&in.BirthDate, "birth", "", "birth date as YYYY-MM-DD")
	fs.StringVar(&in.Introduction, "intro", "", "free-text introduction, markdown allowed")
}

func addPlayer(conf *config.Config, args []string) error {
	var in back.PlayerInput
	fs := flag.NewFlagSet("player:add", flag.ContinueOnError)
	playerFlags(fs, &in)
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withBack(conf, func(b *back.Back) error {
		player, err := b.CreatePlayer(context.Background(), in)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "created Player #%d %q\n", player.ID, player.Name)
		return nil
	})
}

func updatePlayer(conf *config.Config, args []string) error {
	var (
		in back.PlayerInput
		id int64
	)
	fs := flag.NewFlagSet("player:update", flag.ContinueOnError)
	fs.Int64Var(&id, "id", 0, "ID of the player to update, required")
	playerFlags(fs, &in)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if id <= 0 {
		return errors.New("a positive -id is required")
	}

	return withBack(conf, func(b *back.Back) error {
		player, err := b.UpdatePlayer(context.Background(), id, in)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "updated Player #%d %q\n", player.ID, player.Name)
		return nil
	})
}
