package repository

import (
	"gorm.io/gorm"

	"github.com/Rushikesh1Avachat/food-ordering-mains/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) ListByUser(userID uint) ([]entity.Order, error) {
	var rows []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *OrderRepository) GetByID(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items").
		Preload("Items.Selections").
		First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}
