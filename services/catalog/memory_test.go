package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MemoryCatalog_ListMenus(t *testing.T) {
	c := NewMemoryCatalog()

	menus, err := c.ListMenus(context.Background())

	require.NoError(t, err)
	require.Len(t, menus, 4)
	assert.Equal(t, "sunday-lunch", menus[0].ID)
	assert.Equal(t, "Sunday Lunch Menu", menus[0].Name)
}

func Test_MemoryCatalog_ListMenuItems_KnownMenu(t *testing.T) {
	c := NewMemoryCatalog()

	items, err := c.ListMenuItems(context.Background(), "sunday-lunch")

	require.NoError(t, err)
	require.Len(t, items, 5)
	assert.Equal(t, "Roast Beef", items[0].Name)
	assert.Equal(t, float64(25), items[0].Price)
	assert.Equal(t, "main", items[0].SectionKey)
}

func Test_MemoryCatalog_ListMenuItems_UnknownMenuIsEmptyNotError(t *testing.T) {
	c := NewMemoryCatalog()

	items, err := c.ListMenuItems(context.Background(), "midnight-feast")

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func Test_MemoryCatalog_ReadsAreIdempotent(t *testing.T) {
	c := NewMemoryCatalog()
	ctx := context.Background()

	first, err := c.ListMenuItems(ctx, "weekend-evening")
	require.NoError(t, err)
	second, err := c.ListMenuItems(ctx, "weekend-evening")
	require.NoError(t, err)

	assert.Equal(t, first, second)

	menusFirst, err := c.ListMenus(ctx)
	require.NoError(t, err)
	menusSecond, err := c.ListMenus(ctx)
	require.NoError(t, err)

	assert.Equal(t, menusFirst, menusSecond)
}
