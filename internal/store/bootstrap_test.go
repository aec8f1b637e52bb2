package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-card-portfolio/internal/catalog"
	"github.com/MKhiriev/go-card-portfolio/internal/config"
	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
	"github.com/MKhiriev/go-card-portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLayout = LayoutFromConfig(testWorksheets)

func TestBootstrap_SeedsLayout(t *testing.T) {
	ctx := context.Background()
	book := sheet.NewMemory()
	cards, err := catalog.BaseSet()
	require.NoError(t, err)

	require.NoError(t, Bootstrap(ctx, book, testLayout, cards, logger.Nop()))

	login := worksheet(t, book, "login")
	header, err := login.Row(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"username", "password", "phone"}, header)

	portfolio := worksheet(t, book, "portfolio")
	rows, cols, err := portfolio.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, 104, rows)
	assert.Equal(t, 6, cols)

	top, err := portfolio.Values(ctx, "A1:E2")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"next_free_column", "card_name", "set_card_number", "card_number", "market_value"},
		{"F", "Alakazam", "1/102", "1", cards[0].MarketValue.StringFixed(2)},
	}, top)

	last, err := portfolio.Values(ctx, "B103:E103")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Water Energy", "102/102", "102", "0.25"}}, last)

	issues, err := Verify(ctx, book, testLayout)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestBootstrap_KeepsExistingWorksheets(t *testing.T) {
	ctx := context.Background()
	book, s := newTestStorages(t, config.Allocation{})
	require.NoError(t, s.Credentials.Append(ctx, models.Credential{Username: "trainer1", PasswordHash: "h", Phone: "5551234567"}))
	allocate(t, s, "trainer1")

	cards, err := catalog.BaseSet()
	require.NoError(t, err)
	require.NoError(t, Bootstrap(ctx, book, testLayout, cards, logger.Nop()))

	_, _, err = s.Credentials.FindByUsername(ctx, "trainer1")
	assert.NoError(t, err)

	pointer, err := worksheet(t, book, "portfolio").Cell(ctx, pointerRow, pointerCol)
	require.NoError(t, err)
	assert.Equal(t, "G", pointer)
}

func TestBootstrap_RejectsShortCatalog(t *testing.T) {
	cards, err := catalog.BaseSet()
	require.NoError(t, err)

	err = Bootstrap(context.Background(), sheet.NewMemory(), testLayout, cards[:10], logger.Nop())
	assert.ErrorIs(t, err, ErrLayoutInvalid)
}
