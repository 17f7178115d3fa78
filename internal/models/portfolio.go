package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PortfolioItem is a displayable gallery entry. OrderIndex is the display
// rank; ties are broken by CreatedAt descending. Items with Visible=false
// are excluded from every non-privileged listing. Portfolio items have no
// owner; the gallery is an admin-global resource.
type PortfolioItem struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	ImageURL    string    `gorm:"not null" json:"image_url"`
	Description *string   `json:"description"`
	OrderIndex  int       `gorm:"default:0" json:"order_index"`
	Visible     bool      `gorm:"default:true" json:"visible"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
}

func (PortfolioItem) TableName() string {
	return "portfolio"
}

func (p *PortfolioItem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
