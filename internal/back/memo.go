package back

import (
	"clubhouse/internal/util"
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type Memo struct {
	ID        int64
	Content   string
	CreatedAt util.TimeAsTimestamp
	UpdatedAt util.TimeAsTimestamp
}

func (m *Memo) insert(tx *sqlx.Tx) error {
	query, args, err := squirrel.Insert("Memo").SetMap(squirrel.Eq{
		"Content":   m.Content,
		"CreatedAt": m.CreatedAt,
		"UpdatedAt": m.UpdatedAt,
	}).ToSql()
	if err != nil {
		return err
	}

	res, err := tx.Exec(query, args...)
	if err != nil {
		return err
	}

	m.ID, err = res.LastInsertId()
	return err
}

func getMemoByID(tx *sqlx.Tx, id int64) (Memo, error) {
	var ret Memo
	query := `SELECT * FROM Memo WHERE Memo.ID = ? LIMIT 1`
	if err := tx.Get(&ret, query, id); err != nil {
		return Memo{}, orNotFound(err, "Memo", id)
	}

	return ret, nil
}

// GetMemos returns every Memo, most recently updated first.
func (b *Back) GetMemos(ctx context.Context) (ret []Memo, _ error) {
	if err := b.transaction(ctx, func(tx *sqlx.Tx) error {
		return tx.Select(&ret, `SELECT * FROM Memo ORDER BY Memo.UpdatedAt DESC, Memo.ID DESC`)
	}); err != nil {
		return nil, errors.Wrap(err, "unable to list memos")
	}

	return ret, nil
}

func (b *Back) GetMemoByID(ctx context.Context, id int64) (memo Memo, _ error) {
	if err := b.transaction(ctx, func(tx *sqlx.Tx) (err error) {
		memo, err = getMemoByID(tx, id)
		return err
	}); err != nil {
		return Memo{}, err
	}

	return memo, nil
}

// CreateMemo validates the form and stores a new Memo. On validation failure
// nothing is written, form.Errors is filled and returned.
func (b *Back) CreateMemo(ctx context.Context, form *MemoForm) (Memo, error) {
	if !form.Validate() {
		return Memo{}, form.Errors
	}

	memo := Memo{
		Content:   form.Content,
		CreatedAt: b.timestamp(),
	}
	memo.UpdatedAt = memo.CreatedAt

	if err := b.transaction(ctx, memo.insert); err != nil {
		return Memo{}, errors.Wrap(err, "unable to insert Memo")
	}

	return memo, nil
}

// DeleteMemo permanently removes a Memo.
func (b *Back) DeleteMemo(ctx context.Context, id int64) error {
	return b.transaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := squirrel.Delete("Memo").Where(squirrel.Eq{"ID": id}).ToSql()
		if err != nil {
			return err
		}

		res, err := tx.Exec(query, args...)
		if err != nil {
			return errors.Wrapf(err, "unable to delete Memo #%d", id)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return errors.Wrapf(ErrNotFound, "Memo #%d", id)
		}

		return nil
	})
}
