// Package view turns raw rows into display-ready records: timestamps become
// locale-style strings, every other field passes through unchanged.
package view

import (
	"fmt"
	"time"

	"go-stockledger/internal/model"

	"github.com/google/uuid"
)

type ProductView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	CostPrice     float64   `json:"cost_price"`
	SellingPrice  float64   `json:"selling_price"`
	InitialQty    int       `json:"initial_qty"`
	CurrentQty    int       `json:"current_qty"`
	IncomingQty   int       `json:"incoming_qty"`
	SoldQty       int       `json:"sold_qty"`
	PerishableQty int       `json:"perishable_qty"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
}

type TransactionView struct {
	TransactionID string    `json:"transaction_id"`
	Quantity      int       `json:"quantity"`
	ProductID     uuid.UUID `json:"product_id"`
	Timestamp     string    `json:"timestamp"`
}

func NewProduct(p model.Product) ProductView {
	return ProductView{
		ID:            p.ID,
		Name:          p.Name,
		CostPrice:     p.CostPrice,
		SellingPrice:  p.SellingPrice,
		InitialQty:    p.InitialQty,
		CurrentQty:    p.CurrentQty,
		IncomingQty:   p.IncomingQty,
		SoldQty:       p.SoldQty,
		PerishableQty: p.PerishableQty,
		CreatedAt:     FormatTime(p.CreatedAt),
		UpdatedAt:     FormatTime(p.UpdatedAt),
	}
}

func NewProducts(products []model.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProduct(p))
	}
	return views
}

func NewTransaction(t model.Transaction) TransactionView {
	return TransactionView{
		TransactionID: t.TransactionID,
		Quantity:      t.Quantity,
		ProductID:     t.ProductID,
		Timestamp:     FormatTime(t.Timestamp),
	}
}

func NewTransactions(transactions []model.Transaction) []TransactionView {
	views := make([]TransactionView, 0, len(transactions))
	for _, t := range transactions {
		views = append(views, NewTransaction(t))
	}
	return views
}

// FormatTime renders a timestamp like "Friday, April 5th, 2024 at 3:04:05 PM".
func FormatTime(t time.Time) string {
	return fmt.Sprintf("%s, %s %s, %d at %s",
		t.Weekday(), t.Month(), ordinal(t.Day()), t.Year(), t.Format("3:04:05 PM"))
}

func ordinal(day int) string {
	suffix := "th"
	switch day % 10 {
	case 1:
		if day%100 != 11 {
			suffix = "st"
		}
	case 2:
		if day%100 != 12 {
			suffix = "nd"
		}
	case 3:
		if day%100 != 13 {
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}
