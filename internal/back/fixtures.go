package back

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
)

// LoadFixtures fills an empty database with enough data to click around
// during development.
func (b *Back) LoadFixtures(ctx context.Context) error {
	players := []PlayerInput{
		{"Bukayo Saka", "2001-09-05", "Right winger, academy graduate."},
		{"Martin Ødegaard", "1998-12-17", "Captain and **playmaker**."},
		{"Declan Rice", "1999-01-14", "Holding midfielder."},
		{"William Saliba", "2001-03-24", ""},
		{"Gabriel Martinelli", "", "Left winger."},
	}

	for _, v := range players {
		if _, err := b.CreatePlayer(ctx, v); err != nil {
			return errors.Wrapf(err, "unable to create fixture Player %q", v.Name)
		}
	}

	memos := []string{
		"buy milk",
		"Renew the *season ticket* before the end of the month.",
		"Call Ruto back",
	}

	for _, v := range memos {
		form := NewMemoForm(url.Values{"content": {v}})
		if _, err := b.CreateMemo(ctx, &form); err != nil {
			return errors.Wrapf(err, "unable to create fixture Memo %q", v)
		}
	}

	return nil
}
