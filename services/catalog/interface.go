package catalog

import (
	"context"

	"scenicinn/models"
)

// Reader provides read-only access to the venue's menu catalog. Reads are
// side-effect free and idempotent; an unknown menu id yields an empty item
// list, not an error.
type Reader interface {
	ListMenus(ctx context.Context) ([]models.Menu, error)
	ListMenuItems(ctx context.Context, menuID string) ([]models.MenuItem, error)
}
