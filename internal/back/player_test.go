package back // nolint:testpackage

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerRoundTrip(t *testing.T) {
	back := createTestBack(t)
	ctx := context.Background()

	created, err := back.CreatePlayer(ctx, PlayerInput{
		Name:         "  Bukayo Saka ",
		BirthDate:    "2001-09-05",
		Introduction: "Right winger.",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Bukayo Saka", created.Name)

	found, err := back.GetPlayerByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, created.Name, found.Name)
	assert.Equal(t, "2001-09-05", found.BirthDate.String())
	assert.Equal(t, "Right winger.", found.Introduction.String)
	assert.Equal(t, created.CreatedAt.Time().Unix(), found.CreatedAt.Time().Unix())
	assert.Equal(t, created.UpdatedAt.Time().Unix(), found.UpdatedAt.Time().Unix())

	players, err := back.GetPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, created.ID, players[0].ID)
}

func TestPlayerOptionalFields(t *testing.T) {
	back := createTestBack(t)
	ctx := context.Background()

	created, err := back.CreatePlayer(ctx, PlayerInput{Name: "William Saliba"})
	require.NoError(t, err)

	found, err := back.GetPlayerByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, found.BirthDate.Valid)
	assert.False(t, found.Introduction.Valid)
}

func TestGetPlayersOrder(t *testing.T) {
	back := createTestBack(t)
	ctx := context.Background()

	names := []string{"Ruto", "Darunia", "Saria"}
	for _, v := range names {
		_, err := back.CreatePlayer(ctx, PlayerInput{Name: v})
		require.NoError(t, err)
	}

	players, err := back.GetPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, len(names))
	for k := range names {
		assert.Equal(t, names[k], players[k].Name)
	}
}

func TestGetPlayerNotFound(t *testing.T) {
	back := createTestBack(t)

	for _, id := range []int64{0, 1, 42, -1} {
		_, err := back.GetPlayerByID(context.Background(), id)
		assert.True(t, errors.Is(err, ErrNotFound), "id %d: %v", id, err)
	}
}

func TestCreatePlayerValidation(t *testing.T) {
	back := createTestBack(t)
	ctx := context.Background()

	type entry struct {
		input PlayerInput
		field string
	}

	cases := []entry{
		{PlayerInput{Name: ""}, "name"},
		{PlayerInput{Name: "   "}, "name"},
		{PlayerInput{Name: strings.Repeat("a", PlayerNameMaxLength+1)}, "name"},
		{PlayerInput{Name: "Impa", BirthDate: "05/09/2001"}, "birth_date"},
		{PlayerInput{Name: "Impa", BirthDate: "2001-02-30"}, "birth_date"},
	}

	for k, v := range cases {
		_, err := back.CreatePlayer(ctx, v.input)
		var fields FieldErrors
		if !errors.As(err, &fields) {
			t.Fatalf("case #%d: expected FieldErrors, got %v", k, err)
		}
		assert.True(t, fields.Has(v.field), "case #%d: %v", k, fields)
	}

	players, err := back.GetPlayers(ctx)
	require.NoError(t, err)
	assert.Empty(t, players)

	// Multi-byte names are counted in characters, not bytes.
	_, err = back.CreatePlayer(ctx, PlayerInput{Name: strings.Repeat("ø", PlayerNameMaxLength)})
	assert.NoError(t, err)
}

func TestUpdatePlayer(t *testing.T) {
	back := createTestBack(t)
	ctx := context.Background()

	created, err := back.CreatePlayer(ctx, PlayerInput{Name: "Martin", Introduction: "Midfielder."})
	require.NoError(t, err)

	updated, err := back.UpdatePlayer(ctx, created.ID, PlayerInput{
		Name:      "Martin Ødegaard",
		BirthDate: "1998-12-17",
	})
	require.NoError(t, err)

	found, err := back.GetPlayerByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Martin Ødegaard", found.Name)
	assert.Equal(t, "1998-12-17", found.BirthDate.String())
	assert.False(t, found.Introduction.Valid)
	assert.Equal(t, created.CreatedAt.Time().Unix(), found.CreatedAt.Time().Unix())
	assert.True(t, found.UpdatedAt.Time().After(created.UpdatedAt.Time()))
	assert.Equal(t, updated.UpdatedAt.Time().Unix(), found.UpdatedAt.Time().Unix())

	_, err = back.UpdatePlayer(ctx, created.ID, PlayerInput{Name: ""})
	var fields FieldErrors
	require.True(t, errors.As(err, &fields))

	found, err = back.GetPlayerByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Martin Ødegaard", found.Name)

	_, err = back.UpdatePlayer(ctx, created.ID+1, PlayerInput{Name: "Nobody"})
	assert.True(t, errors.Is(err, ErrNotFound))
}
