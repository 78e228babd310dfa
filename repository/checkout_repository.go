package repository

import (
	"gorm.io/gorm"

	"github.com/Rushikesh1Avachat/food-ordering-mains/entity"
)

type CheckoutRepository struct{ DB *gorm.DB }

func NewCheckoutRepository(db *gorm.DB) *CheckoutRepository {
	return &CheckoutRepository{DB: db}
}

func (r *CheckoutRepository) Create(session *entity.CheckoutSession) error {
	return r.DB.Create(session).Error
}

func (r *CheckoutRepository) GetByID(id uint) (*entity.CheckoutSession, error) {
	var s entity.CheckoutSession
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CheckoutRepository) GetForUser(id, userID uint) (*entity.CheckoutSession, error) {
	var s entity.CheckoutSession
	if err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateStateGuard flips the session state only when it still holds the
// expected source state; 0 rows affected means a stale or concurrent caller.
func (r *CheckoutRepository) UpdateStateGuard(tx *gorm.DB, id uint, from, to string) (int64, error) {
	res := tx.Model(&entity.CheckoutSession{}).
		Where("id = ? AND state = ?", id, from).
		Update("state", to)
	return res.RowsAffected, res.Error
}

// SetProviderRefs stores the tokens issued by the payment provider when the
// sheet bundle is created.
func (r *CheckoutRepository) SetProviderRefs(id uint, customerID, intentID, clientSecret, ephemeralKey string) error {
	return r.DB.Model(&entity.CheckoutSession{}).Where("id = ?", id).
		Updates(map[string]any{
			"customer_id":       customerID,
			"payment_intent_id": intentID,
			"client_secret":     clientSecret,
			"ephemeral_key":     ephemeralKey,
		}).Error
}

func (r *CheckoutRepository) SetOrder(tx *gorm.DB, id, orderID uint) error {
	return tx.Model(&entity.CheckoutSession{}).Where("id = ?", id).
		Update("order_id", orderID).Error
}
