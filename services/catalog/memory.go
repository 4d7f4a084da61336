package catalog

import (
	"context"

	"scenicinn/models"
)

// MemoryCatalog serves the venue's standing menus from process memory. It is
// the default catalog backend for deployments without a database.
type MemoryCatalog struct {
	menus []models.Menu
	items map[string][]models.MenuItem
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		menus: []models.Menu{
			{ID: "sunday-lunch", Name: "Sunday Lunch Menu", Schedule: "Sunday 12pm-5pm", Pricing: "£25 per person"},
			{ID: "weekend-evening", Name: "Weekend Evening Menu", Schedule: "Friday-Sunday 5pm-9pm", Pricing: "£35 per person"},
			{ID: "tea-time", Name: "Tea Time Menu", Schedule: "Daily 2pm-4pm", Pricing: "£15 per person"},
			{ID: "lunch", Name: "Lunch Menu", Schedule: "Monday-Friday 12pm-4:45pm", Pricing: "£20 per person"},
		},
		items: map[string][]models.MenuItem{
			"sunday-lunch": {
				{ID: "1", MenuID: "sunday-lunch", Name: "Roast Beef", Description: "Traditional Sunday roast", Price: 25, SectionKey: "main"},
				{ID: "2", MenuID: "sunday-lunch", Name: "Roast Chicken", Description: "Herb-crusted chicken", Price: 22, SectionKey: "main"},
				{ID: "3", MenuID: "sunday-lunch", Name: "Vegetable Wellington", Description: "Seasonal vegetables in pastry", Price: 20, SectionKey: "main"},
				{ID: "4", MenuID: "sunday-lunch", Name: "Sticky Toffee Pudding", Description: "Classic dessert with custard", Price: 8, SectionKey: "dessert"},
				{ID: "5", MenuID: "sunday-lunch", Name: "Apple Crumble", Description: "Homemade with vanilla ice cream", Price: 7, SectionKey: "dessert"},
			},
			"weekend-evening": {
				{ID: "6", MenuID: "weekend-evening", Name: "Beef Fillet", Description: "8oz fillet with red wine jus", Price: 35, SectionKey: "main"},
				{ID: "7", MenuID: "weekend-evening", Name: "Salmon", Description: "Pan-seared with lemon butter", Price: 28, SectionKey: "main"},
				{ID: "8", MenuID: "weekend-evening", Name: "Chocolate Lava Cake", Description: "Warm chocolate cake with ice cream", Price: 9, SectionKey: "dessert"},
			},
			"tea-time": {
				{ID: "9", MenuID: "tea-time", Name: "Afternoon Tea", Description: "Sandwiches, scones, and cakes", Price: 15, SectionKey: "main"},
				{ID: "10", MenuID: "tea-time", Name: "Cream Tea", Description: "Scones with jam and cream", Price: 8, SectionKey: "main"},
			},
			"lunch": {
				{ID: "11", MenuID: "lunch", Name: "Fish and Chips", Description: "Beer-battered cod with chips", Price: 18, SectionKey: "main"},
				{ID: "12", MenuID: "lunch", Name: "Chicken Caesar Salad", Description: "Fresh salad with grilled chicken", Price: 16, SectionKey: "main"},
				{ID: "13", MenuID: "lunch", Name: "Beef Burger", Description: "8oz burger with fries", Price: 17, SectionKey: "main"},
			},
		},
	}
}

func (c *MemoryCatalog) ListMenus(ctx context.Context) ([]models.Menu, error) {
	return c.menus, nil
}

func (c *MemoryCatalog) ListMenuItems(ctx context.Context, menuID string) ([]models.MenuItem, error) {
	items, ok := c.items[menuID]
	if !ok {
		return []models.MenuItem{}, nil
	}
	return items, nil
}
