package models

// Menu represents one bookable menu offered by the venue.
type Menu struct {
	ID       string `bson:"id" json:"id"`             // Stable menu identifier (e.g., "sunday-lunch")
	Name     string `bson:"name" json:"name"`         // Display name
	Schedule string `bson:"schedule" json:"schedule"` // When the menu is served (e.g., "Sunday 12pm-5pm")
	Pricing  string `bson:"pricing" json:"pricing"`   // Headline pricing (e.g., "£25 per person")
}

// MenuItem represents a single dish on a menu.
type MenuItem struct {
	ID          string  `bson:"id" json:"id"`
	MenuID      string  `bson:"menu_id" json:"-"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	SectionKey  string  `bson:"section_key" json:"section_key"` // Menu section (e.g., "main", "dessert")
}
