package entities

import (
	"time"

	"github.com/google/uuid"
)

type RecipeBook struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"is_public"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

// RecipeBookEntry is one membership row; the unique index gives the
// membership list set semantics at the storage level.
type RecipeBookEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	BookID    uuid.UUID `gorm:"uniqueIndex:idx_book_recipe" json:"book_id"`
	RecipeID  uuid.UUID `gorm:"uniqueIndex:idx_book_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	Book   *RecipeBook `gorm:"foreignKey:BookID"`
	Recipe *Recipe     `gorm:"foreignKey:RecipeID"`
}
