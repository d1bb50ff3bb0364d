package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction records a single successful restock of a product. Rows are
// immutable: nothing ever updates a transaction after insert.
type Transaction struct {
	TransactionID string    `gorm:"type:varchar(18);primary_key" json:"transaction_id"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null" json:"product_id"` // logical reference, no FK
	Timestamp     time.Time `gorm:"autoCreateTime" json:"timestamp"`
}
