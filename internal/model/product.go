package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	CostPrice    float64   `gorm:"not null" json:"cost_price" validate:"required"`
	SellingPrice float64   `gorm:"not null" json:"selling_price" validate:"required"`

	// Stock counters. InitialQty is the stock baseline at creation;
	// IncomingQty records only the size of the most recent restock.
	InitialQty    int `gorm:"not null;default:10" json:"initial_qty"`
	CurrentQty    int `gorm:"not null;default:0" json:"current_qty"`
	IncomingQty   int `gorm:"not null;default:0" json:"incoming_qty"`
	SoldQty       int `gorm:"not null;default:0" json:"sold_qty"`
	PerishableQty int `gorm:"not null;default:0" json:"perishable_qty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Hook Before Create untuk generate UUID otomatis
func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

// Expired reports whether the product has been marked as perished.
// Once PerishableQty is nonzero the product rejects restock and sell.
func (p *Product) Expired() bool {
	return p.PerishableQty != 0
}
