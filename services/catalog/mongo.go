package catalog

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"scenicinn/models"
)

// MongoCatalog implements Reader backed by MongoDB, for deployments where the
// menu tables are managed outside the service.
type MongoCatalog struct {
	menus *mongo.Collection
	items *mongo.Collection
}

// NewMongoCatalog creates a Reader over the "menus" and "menu_items"
// collections of the given database.
func NewMongoCatalog(client *mongo.Client, dbName string) *MongoCatalog {
	db := client.Database(dbName)
	return &MongoCatalog{
		menus: db.Collection("menus"),
		items: db.Collection("menu_items"),
	}
}

func (c *MongoCatalog) ListMenus(ctx context.Context) ([]models.Menu, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := c.menus.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve menus: %w", err)
	}
	defer cursor.Close(ctx)

	menus := []models.Menu{}
	if err := cursor.All(ctx, &menus); err != nil {
		return nil, fmt.Errorf("failed to decode menus: %w", err)
	}
	return menus, nil
}

// ListMenuItems returns the items of one menu ordered by section then name.
// An unknown menu id yields an empty list.
func (c *MongoCatalog) ListMenuItems(ctx context.Context, menuID string) ([]models.MenuItem, error) {
	filter := bson.M{"menu_id": menuID}
	opts := options.Find().SetSort(bson.D{{Key: "section_key", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := c.items.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve items for menu %s: %w", menuID, err)
	}
	defer cursor.Close(ctx)

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items for menu %s: %w", menuID, err)
	}
	return items, nil
}
