package repository

import (
	"go-stockledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	UpdateName(id uuid.UUID, name string) (int64, error)
	Delete(id uuid.UUID) (int64, error)
	MarkExpired(id uuid.UUID) (int64, error)
	RestockBaseline(tx *gorm.DB, id uuid.UUID, quantity int) (int64, error)
	Restock(tx *gorm.DB, id uuid.UUID, quantity int) (int64, error)
	SellBaseline(id uuid.UUID, quantity int) (int64, error)
	Sell(id uuid.UUID, quantity int) (int64, error)
	Clear() error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) UpdateName(id uuid.UUID, name string) (int64, error) {
	res := r.db.Model(&model.Product{}).
		Where("id = ?", id).
		Update("name", name)
	return res.RowsAffected, res.Error
}

func (r *productRepo) Delete(id uuid.UUID) (int64, error) {
	res := r.db.Delete(&model.Product{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// MarkExpired moves the whole current stock into perishable_qty in a single
// conditional update. The perishable_qty guard keeps a concurrent second call
// from matching.
func (r *productRepo) MarkExpired(id uuid.UUID) (int64, error) {
	res := r.db.Model(&model.Product{}).
		Where("id = ? AND perishable_qty = 0", id).
		Updates(map[string]interface{}{
			"perishable_qty": gorm.Expr("current_qty"),
			"current_qty":    0,
		})
	return res.RowsAffected, res.Error
}

// RestockBaseline handles the never-sold, zero-stock case: current_qty is
// recomputed from initial_qty and incoming_qty overwritten with the new
// quantity. The guards re-check the state the caller observed.
func (r *productRepo) RestockBaseline(tx *gorm.DB, id uuid.UUID, quantity int) (int64, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND perishable_qty = 0 AND sold_qty = 0 AND current_qty = 0", id).
		Updates(map[string]interface{}{
			"incoming_qty": quantity,
			"current_qty":  gorm.Expr("initial_qty + ?", quantity),
		})
	return res.RowsAffected, res.Error
}

func (r *productRepo) Restock(tx *gorm.DB, id uuid.UUID, quantity int) (int64, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND perishable_qty = 0", id).
		Updates(map[string]interface{}{
			"incoming_qty": quantity,
			"current_qty":  gorm.Expr("current_qty + ?", quantity),
		})
	return res.RowsAffected, res.Error
}

// SellBaseline handles the first sale: current_qty is recomputed from
// initial_qty with no floor check, so it may go negative.
func (r *productRepo) SellBaseline(id uuid.UUID, quantity int) (int64, error) {
	res := r.db.Model(&model.Product{}).
		Where("id = ? AND perishable_qty = 0 AND sold_qty = 0", id).
		Updates(map[string]interface{}{
			"sold_qty":    gorm.Expr("sold_qty + ?", quantity),
			"current_qty": gorm.Expr("initial_qty - ?", quantity),
		})
	return res.RowsAffected, res.Error
}

// Sell decrements stock only while the result stays non-negative; the guard
// makes the check-and-decrement a single statement.
func (r *productRepo) Sell(id uuid.UUID, quantity int) (int64, error) {
	res := r.db.Model(&model.Product{}).
		Where("id = ? AND perishable_qty = 0 AND current_qty - ? >= 0", id, quantity).
		Updates(map[string]interface{}{
			"sold_qty":    gorm.Expr("sold_qty + ?", quantity),
			"current_qty": gorm.Expr("current_qty - ?", quantity),
		})
	return res.RowsAffected, res.Error
}

func (r *productRepo) Clear() error {
	return r.db.Exec("DELETE FROM products").Error
}
