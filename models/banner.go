package models

import (
	"gorm.io/gorm"
)

// Banner is a promotional banner shown in the storefront layout
type Banner struct {
	gorm.Model
	Title     string `json:"title"`
	ImageURL  string `json:"image_url"`
	LinkURL   string `json:"link_url"`
	Position  string `json:"position" gorm:"default:'top'"`
	SortOrder int    `json:"sort_order" gorm:"default:0"`
	Active    bool   `json:"active" gorm:"default:true"`
}
