package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	OriginalRecipeID *uuid.UUID `gorm:"type:uuid" json:"original_recipe_id,omitempty"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Ingredients      string     `json:"ingredients" gorm:"type:text"`
	Instructions     string     `json:"instructions" gorm:"type:text"`
	Tags             string     `json:"tags" gorm:"type:text"`
	ImageURL         string     `json:"image_url,omitempty"`
	IsPublic         bool       `json:"is_public"`
	Cooked           bool       `json:"cooked"`
	Favourite        bool       `json:"favourite"`
	LikeCount        int        `json:"like_count"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
