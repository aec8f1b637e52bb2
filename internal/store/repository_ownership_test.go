package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-card-portfolio/internal/config"
	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
	"github.com/MKhiriev/go-card-portfolio/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allocate(t *testing.T, s *Storages, username string) (int, string) {
	t.Helper()
	col, label, err := s.Allocator.Allocate(context.Background(), username)
	require.NoError(t, err)
	return col, label
}

func TestOwnershipRepository_ColumnAndLabel(t *testing.T) {
	ctx := context.Background()
	_, s := newTestStorages(t, config.Allocation{})

	allocate(t, s, "trainer1")
	allocate(t, s, "misty_w")

	col, err := s.Ownership.ColumnForUsername(ctx, "misty_w")
	require.NoError(t, err)
	assert.Equal(t, 7, col)

	label, err := s.Ownership.LabelForColumn(ctx, col)
	require.NoError(t, err)
	assert.Equal(t, "G", label)

	_, err = s.Ownership.ColumnForUsername(ctx, "brock")
	assert.ErrorIs(t, err, ErrColumnNotFound)

	// reference header cells never match a username
	_, err = s.Ownership.ColumnForUsername(ctx, "card_name")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestOwnershipRepository_ColumnForUsernameMatchingReferenceHeader(t *testing.T) {
	ctx := context.Background()
	_, s := newTestStorages(t, config.Allocation{})

	allocate(t, s, "trainer1")
	allocate(t, s, "card_name")

	col, err := s.Ownership.ColumnForUsername(ctx, "card_name")
	require.NoError(t, err)
	assert.Equal(t, 7, col)
}

func TestOwnershipRepository_LabelMissingFallsBack(t *testing.T) {
	ctx := context.Background()
	book, s := newTestStorages(t, config.Allocation{})

	col, _ := allocate(t, s, "trainer1")
	require.NoError(t, worksheet(t, book, "portfolio").UpdateCell(ctx, labelRow, col, ""))

	label, err := s.Ownership.LabelForColumn(ctx, col)
	assert.ErrorIs(t, err, ErrLabelMissing)
	assert.Equal(t, "F", label)
}

func TestOwnershipRepository_SetGetEveryCard(t *testing.T) {
	ctx := context.Background()
	_, s := newTestStorages(t, config.Allocation{})
	col, label := allocate(t, s, "trainer1")

	for card := 1; card <= models.SetSize; card++ {
		owned, err := s.Ownership.GetOwned(ctx, col, card)
		require.NoError(t, err)
		require.False(t, owned, "card %d", card)

		require.NoError(t, s.Ownership.SetOwned(ctx, col, card, true))

		owned, err = s.Ownership.GetOwned(ctx, col, card)
		require.NoError(t, err)
		require.True(t, owned, "card %d", card)
	}

	require.NoError(t, s.Ownership.ResetAll(ctx, label))

	for card := 1; card <= models.SetSize; card++ {
		owned, err := s.Ownership.GetOwned(ctx, col, card)
		require.NoError(t, err)
		require.False(t, owned, "card %d", card)
	}
}

func TestOwnershipRepository_SetOwnedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	_, s := newTestStorages(t, config.Allocation{})
	col, _ := allocate(t, s, "trainer1")

	require.NoError(t, s.Ownership.SetOwned(ctx, col, 4, true))
	require.NoError(t, s.Ownership.SetOwned(ctx, col, 4, true))

	owned, err := s.Ownership.GetOwned(ctx, col, 4)
	require.NoError(t, err)
	assert.True(t, owned)
}

func TestOwnershipRepository_ColumnsAreIndependent(t *testing.T) {
	ctx := context.Background()
	_, s := newTestStorages(t, config.Allocation{})
	ash, _ := allocate(t, s, "trainer1")
	misty, mistyLabel := allocate(t, s, "misty_w")

	require.NoError(t, s.Ownership.SetOwned(ctx, ash, 10, true))
	require.NoError(t, s.Ownership.SetOwned(ctx, misty, 11, true))
	require.NoError(t, s.Ownership.ResetAll(ctx, mistyLabel))

	owned, err := s.Ownership.GetOwned(ctx, ash, 10)
	require.NoError(t, err)
	assert.True(t, owned)

	owned, err = s.Ownership.GetOwned(ctx, misty, 11)
	require.NoError(t, err)
	assert.False(t, owned)
}

func TestOwnershipRepository_OutOfRange(t *testing.T) {
	ctx := context.Background()
	_, s := newTestStorages(t, config.Allocation{})
	col, _ := allocate(t, s, "trainer1")

	for _, card := range []int{0, -1, models.SetSize + 1} {
		_, err := s.Ownership.GetOwned(ctx, col, card)
		assert.ErrorIs(t, err, ErrCardOutOfRange)
		assert.ErrorIs(t, s.Ownership.SetOwned(ctx, col, card, true), ErrCardOutOfRange)
	}

	// reference columns are never user columns
	assert.ErrorIs(t, s.Ownership.SetOwned(ctx, cardNameCol, 1, true), ErrColumnNotFound)
	assert.ErrorIs(t, s.Ownership.ResetAll(ctx, "B"), ErrColumnNotFound)
	assert.ErrorIs(t, s.Ownership.ResetAll(ctx, "f"), sheet.ErrInvalidLabel)
}

func TestOwnershipRepository_Snapshot(t *testing.T) {
	ctx := context.Background()
	_, s := newTestStorages(t, config.Allocation{})
	col, _ := allocate(t, s, "trainer1")

	require.NoError(t, s.Ownership.SetOwned(ctx, col, 4, true))
	require.NoError(t, s.Ownership.SetOwned(ctx, col, 102, true))

	entries, err := s.Ownership.Snapshot(ctx, col)
	require.NoError(t, err)
	require.Len(t, entries, models.SetSize)

	for i, e := range entries {
		assert.Equal(t, i+1, e.Card.Number)
		assert.Equal(t, e.Card.Number == 4 || e.Card.Number == 102, e.Owned, "card %d", e.Card.Number)
	}

	charizard := entries[3].Card
	assert.Equal(t, "Charizard", charizard.Name)
	assert.Equal(t, "4/102", charizard.SetCardNumber)
	assert.True(t, decimal.RequireFromString("389.99").Equal(charizard.MarketValue))
}

func TestOwnershipRepository_SnapshotBadMarketValue(t *testing.T) {
	ctx := context.Background()
	book, s := newTestStorages(t, config.Allocation{})
	col, _ := allocate(t, s, "trainer1")

	require.NoError(t, worksheet(t, book, "portfolio").UpdateCell(ctx, cardRow(7), marketValueCol, "n/a"))

	_, err := s.Ownership.Snapshot(ctx, col)
	assert.ErrorIs(t, err, ErrLayoutInvalid)
}
