package back

import (
	"clubhouse/internal/util"
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// Back owns the database and every read or write made to it.
type Back struct {
	db *sqlx.DB

	// now is the clock used for every CreatedAt/UpdatedAt.
	now func() time.Time
}

func New(sqlDriver string, sqlDSN string) (*Back, error) {
	// Columns are named exactly like the struct fields, no conversion.
	// HACK: global, but only the Back touches the DB.
	sqlx.NameMapper = func(v string) string { return v }

	db, err := sqlx.Connect(sqlDriver, sqlDSN)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s database", sqlDriver)
	}

	// SQLite allows a single writer, serialize everything instead of getting
	// SQLITE_BUSY under load.
	db.SetMaxOpenConns(1)

	return &Back{
		db:  db,
		now: time.Now,
	}, nil
}

func (b *Back) Close() error {
	return b.db.Close()
}

func (b *Back) transaction(ctx context.Context, cb util.TransactionCallback) error {
	return util.Transaction(ctx, b.db, cb)
}

func (b *Back) timestamp() util.TimeAsTimestamp {
	return util.NewTimeAsTimestamp(b.now())
}
