package service

import (
	"errors"
	"fmt"
	"math"

	"go-stockledger/internal/repository"
	"go-stockledger/internal/view"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductStats is the per-product analytics object. Monetary figures are
// fixed two-decimal strings with a currency prefix.
type ProductStats struct {
	Name                  string  `json:"name"`
	QuantitySold          int     `json:"quantity_sold"`
	CurrentQuantity       int     `json:"current_quantity"`
	SalePrice             float64 `json:"sale_price"`
	CostPrice             float64 `json:"cost_price"`
	Lost                  string  `json:"lost"`
	Profit                string  `json:"profit"`
	TotalSales            string  `json:"total_sales"`
	TotalExpenses         string  `json:"total_expenses"`
	TotalQuantity         int     `json:"total_quantity"`
	TotalTransactions     int     `json:"total_transactions"`
	AverageTransactionQty int     `json:"average_transactions_qty"`
	TotalQuantityPerished int     `json:"total_quantity_perished"`
	DateCreated           string  `json:"date_created"`
	LastModifiedDate      string  `json:"last_modified_date"`
}

type StatsService interface {
	GetProductStats(id uuid.UUID) (*ProductStats, error)
}

type statsService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	currency        string
}

func NewStatsService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository, currency string) StatsService {
	return &statsService{
		productRepo:     pRepo,
		transactionRepo: tRepo,
		currency:        currency,
	}
}

func (s *statsService) GetProductStats(id uuid.UUID) (*ProductStats, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	transactions, err := s.transactionRepo.FindByProduct(id)
	if err != nil {
		return nil, err
	}

	// Total quantity ever restocked, across the transaction history.
	restocked := 0
	for _, t := range transactions {
		restocked += t.Quantity
	}

	totalQuantity := restocked + product.InitialQty
	expenses := float64(totalQuantity) * product.CostPrice
	revenue := float64(product.SoldQty) * product.SellingPrice

	// At most one of lost/profit is nonzero.
	lost := math.Max(expenses-revenue, 0)
	profit := math.Max(revenue-expenses, 0)

	// Average restock size, rounded. Zero when there is no history so the
	// figure never degenerates to a division by zero.
	average := 0
	if len(transactions) > 0 {
		average = int(math.Round(float64(restocked) / float64(len(transactions))))
	}

	return &ProductStats{
		Name:                  product.Name,
		QuantitySold:          product.SoldQty,
		CurrentQuantity:       product.CurrentQty,
		SalePrice:             product.SellingPrice,
		CostPrice:             product.CostPrice,
		Lost:                  fmt.Sprintf("%s%.2f", s.currency, lost),
		Profit:                fmt.Sprintf("%s%.2f", s.currency, profit),
		TotalSales:            fmt.Sprintf("%s%.2f GMD", s.currency, revenue),
		TotalExpenses:         fmt.Sprintf("%s%.2f GMD", s.currency, expenses),
		TotalQuantity:         totalQuantity,
		TotalTransactions:     len(transactions),
		AverageTransactionQty: average,
		TotalQuantityPerished: product.PerishableQty,
		DateCreated:           view.FormatTime(product.CreatedAt),
		LastModifiedDate:      view.FormatTime(product.UpdatedAt),
	}, nil
}
