package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a browsable entry in the shared recipe library. Recipes are not
// user-owned; the library is read-only for regular users.
type Recipe struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"` // e.g. "breakfast", "lunch", "dinner", "snack".
	Description string    `json:"description"`
	Calories    int       `json:"calories"`
	PrepTime    string    `json:"prep_time"`
	Servings    string    `json:"servings"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	SourceURL   string    `json:"source_url,omitempty"` // Set when the recipe was imported from the web.
	CreatedAt   time.Time `json:"created_at"`
}
