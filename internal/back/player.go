package back

import (
	"clubhouse/internal/util"
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"gopkg.in/guregu/null.v4"
)

// A Player is a roster entry. Players are only ever written by
// administrators, the web frontend only reads them.
type Player struct {
	ID           int64
	Name         string
	BirthDate    util.NullDateAsText
	Introduction null.String
	CreatedAt    util.TimeAsTimestamp
	UpdatedAt    util.TimeAsTimestamp
}

func (p *Player) insert(tx *sqlx.Tx) error {
	query, args, err := squirrel.Insert("Player").SetMap(squirrel.Eq{
		"Name":         p.Name,
		"BirthDate":    p.BirthDate,
		"Introduction": p.Introduction,
		"CreatedAt":    p.CreatedAt,
		"UpdatedAt":    p.UpdatedAt,
	}).ToSql()
	if err != nil {
		return err
	}

	res, err := tx.Exec(query, args...)
	if err != nil {
		return err
	}

	p.ID, err = res.LastInsertId()
	return err
}

func (p *Player) update(tx *sqlx.Tx) error {
	query, args, err := squirrel.Update("Player").SetMap(squirrel.Eq{
		"Name":         p.Name,
		"BirthDate":    p.BirthDate,
		"Introduction": p.Introduction,
		"UpdatedAt":    p.UpdatedAt,
	}).Where("Player.ID = ?", p.ID).ToSql()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return err
	}

	return nil
}

func getPlayerByID(tx *sqlx.Tx, id int64) (Player, error) {
	var ret Player
	query := `SELECT * FROM Player WHERE Player.ID = ? LIMIT 1`
	if err := tx.Get(&ret, query, id); err != nil {
		return Player{}, orNotFound(err, "Player", id)
	}

	return ret, nil
}

// GetPlayers returns every Player in storage order.
func (b *Back) GetPlayers(ctx context.Context) (ret []Player, _ error) {
	if err := b.transaction(ctx, func(tx *sqlx.Tx) error {
		return tx.Select(&ret, `SELECT * FROM Player ORDER BY Player.ID ASC`)
	}); err != nil {
		return nil, errors.Wrap(err, "unable to list players")
	}

	return ret, nil
}

func (b *Back) GetPlayerByID(ctx context.Context, id int64) (player Player, _ error) {
	if err := b.transaction(ctx, func(tx *sqlx.Tx) (err error) {
		player, err = getPlayerByID(tx, id)
		return err
	}); err != nil {
		return Player{}, err
	}

	return player, nil
}

// CreatePlayer validates the input and stores a new Player, validation
// failures are returned as FieldErrors.
func (b *Back) CreatePlayer(ctx context.Context, in PlayerInput) (Player, error) {
	var player Player
	if err := in.apply(&player); err != nil {
		return Player{}, err
	}

	player.CreatedAt = b.timestamp()
	player.UpdatedAt = player.CreatedAt

	if err := b.transaction(ctx, player.insert); err != nil {
		return Player{}, errors.Wrap(err, "unable to insert Player")
	}

	return player, nil
}

// UpdatePlayer replaces the editable fields of an existing Player and bumps
// its UpdatedAt.
func (b *Back) UpdatePlayer(ctx context.Context, id int64, in PlayerInput) (player Player, _ error) {
	if err := b.transaction(ctx, func(tx *sqlx.Tx) (err error) {
		player, err = getPlayerByID(tx, id)
		if err != nil {
			return err
		}

		if err := in.apply(&player); err != nil {
			return err
		}

		player.UpdatedAt = b.timestamp()
		return player.update(tx)
	}); err != nil {
		return Player{}, err
	}

	return player, nil
}
