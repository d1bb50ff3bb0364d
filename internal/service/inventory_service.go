package service

import (
	"errors"
	"fmt"

	"go-stockledger/internal/model"
	"go-stockledger/internal/repository"
	"go-stockledger/internal/ws"
	"go-stockledger/pkg/token"
	"go-stockledger/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryService interface {
	CreateProduct(req *model.Product) (uuid.UUID, error)
	UpdateProductName(id uuid.UUID, name string) error
	DeleteProduct(id uuid.UUID) error
	GetProduct(id uuid.UUID) (*model.Product, error)
	GetAllProducts() ([]model.Product, error)
	SetExpired(id uuid.UUID) error
	AddQuantity(id uuid.UUID, quantity int) error
	Sell(id uuid.UUID, quantity int) error
	GetAllTransactions() ([]model.Transaction, error)
	GetTransactionsByProduct(productID uuid.UUID) ([]model.Transaction, error)
	ClearTables(table string) error
}

type inventoryService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	db              *gorm.DB
	wsHub           *ws.Hub
}

func NewInventoryService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository, db *gorm.DB, hub *ws.Hub) InventoryService {
	return &inventoryService{
		productRepo:     pRepo,
		transactionRepo: tRepo,
		db:              db,
		wsHub:           hub,
	}
}

func (s *inventoryService) CreateProduct(req *model.Product) (uuid.UUID, error) {
	// Name, cost_price and selling_price are all required; a zero price
	// counts as missing, matching the required tag semantics.
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return uuid.Nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}

	if err := s.productRepo.Create(req); err != nil {
		return uuid.Nil, err
	}

	s.broadcast("product_created", map[string]interface{}{
		"id":            req.ID,
		"name":          req.Name,
		"cost_price":    req.CostPrice,
		"selling_price": req.SellingPrice,
	})

	return req.ID, nil
}

func (s *inventoryService) UpdateProductName(id uuid.UUID, name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	affected, err := s.productRepo.UpdateName(id, name)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *inventoryService) DeleteProduct(id uuid.UUID) error {
	// No cascade: transactions referencing the product stay behind.
	affected, err := s.productRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *inventoryService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *inventoryService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *inventoryService) SetExpired(id uuid.UUID) error {
	product, err := s.GetProduct(id)
	if err != nil {
		return err
	}
	if product.Expired() {
		return ErrExpired
	}

	// The conditional update re-checks perishable_qty, so a racing call
	// that got here first leaves nothing for this one to match.
	affected, err := s.productRepo.MarkExpired(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrConflict
	}

	s.broadcast("product_expired", map[string]interface{}{
		"id":           id,
		"perished_qty": product.CurrentQty,
		"name":         product.Name,
	})

	return nil
}

func (s *inventoryService) AddQuantity(id uuid.UUID, quantity int) error {
	if quantity == 0 {
		return fmt.Errorf("%w: quantity is required", ErrValidation)
	}

	product, err := s.GetProduct(id)
	if err != nil {
		return err
	}
	if product.Expired() {
		return ErrExpired
	}

	// Stock update and transaction insert commit or roll back together.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var affected int64
		var err error

		if product.SoldQty == 0 && product.CurrentQty == 0 {
			// Never sold, nothing on hand: restock resets the baseline
			// to initial_qty + quantity.
			affected, err = s.productRepo.RestockBaseline(tx, id, quantity)
		} else {
			affected, err = s.productRepo.Restock(tx, id, quantity)
		}
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}

		return s.transactionRepo.Create(tx, &model.Transaction{
			TransactionID: token.New(),
			ProductID:     id,
			Quantity:      quantity,
		})
	})
	if err != nil {
		return err
	}

	s.broadcast("stock_added", map[string]interface{}{
		"id":       id,
		"name":     product.Name,
		"quantity": quantity,
	})

	return nil
}

func (s *inventoryService) Sell(id uuid.UUID, quantity int) error {
	if quantity == 0 {
		return fmt.Errorf("%w: quantity is required", ErrValidation)
	}

	product, err := s.GetProduct(id)
	if err != nil {
		return err
	}
	if product.Expired() {
		return ErrExpired
	}

	var affected int64
	if product.SoldQty == 0 {
		// First sale recomputes current_qty from initial_qty with no
		// floor check, so the result may go negative.
		affected, err = s.productRepo.SellBaseline(id, quantity)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
	} else {
		affected, err = s.productRepo.Sell(id, quantity)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInsufficientStock
		}
	}

	s.broadcast("product_sold", map[string]interface{}{
		"id":       id,
		"name":     product.Name,
		"quantity": quantity,
	})

	return nil
}

func (s *inventoryService) GetAllTransactions() ([]model.Transaction, error) {
	return s.transactionRepo.FindAll()
}

func (s *inventoryService) GetTransactionsByProduct(productID uuid.UUID) ([]model.Transaction, error) {
	return s.transactionRepo.FindByProduct(productID)
}

func (s *inventoryService) ClearTables(table string) error {
	switch table {
	case "products":
		return s.productRepo.Clear()
	case "transactions":
		return s.transactionRepo.Clear()
	case "":
		if err := s.productRepo.Clear(); err != nil {
			return err
		}
		return s.transactionRepo.Clear()
	default:
		return fmt.Errorf("%w: unknown table %q", ErrValidation, table)
	}
}

func (s *inventoryService) broadcast(action string, payload map[string]interface{}) {
	if s.wsHub == nil {
		return
	}
	s.wsHub.Publish(action, payload)
}
