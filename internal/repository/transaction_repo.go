package repository

import (
	"go-stockledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(tx *gorm.DB, transaction *model.Transaction) error
	FindAll() ([]model.Transaction, error)
	FindByProduct(productID uuid.UUID) ([]model.Transaction, error)
	Clear() error
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

// Create menerima *gorm.DB (tx) agar bisa berjalan dalam transaksi
func (r *transactionRepo) Create(tx *gorm.DB, transaction *model.Transaction) error {
	return tx.Create(transaction).Error
}

func (r *transactionRepo) FindAll() ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Order("timestamp DESC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByProduct(productID uuid.UUID) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Where("product_id = ?", productID).Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) Clear() error {
	return r.db.Exec("DELETE FROM transactions").Error
}
