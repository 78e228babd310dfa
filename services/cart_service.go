package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/Rushikesh1Avachat/food-ordering-mains/entity"
	"github.com/Rushikesh1Avachat/food-ordering-mains/repository"
)

// Fixed checkout constants, minor units. The payable total is always
// subtotal + DeliveryFee - Discount.
const (
	DeliveryFee int64 = 500
	Discount    int64 = 50
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID       uint   `json:"menuItemId" binding:"required"`
	Qty              int    `json:"qty" binding:"min=0"`
	CustomizationIDs []uint `json:"customizationIds"`
}

// CartSummary is the payment summary block of the cart screen.
type CartSummary struct {
	TotalItems  int   `json:"totalItems"`
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Discount    int64 `json:"discount"`
	Total       int64 `json:"total"`
}

func (s *CartService) Get(userID uint) (*entity.Cart, *CartSummary, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, nil, err
	}
	return c, summarize(c), nil
}

// TotalItems returns the sum of quantities across all cart lines.
func (s *CartService) TotalItems(userID uint) (int, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return 0, err
	}
	return summarize(c).TotalItems, nil
}

// Add inserts a line or bumps the quantity of an equivalent one (same menu
// item, same customization set).
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	m, err := s.MenuRepo.GetItemBasics(in.MenuItemID)
	if err != nil {
		return err
	}

	if len(in.CustomizationIDs) > 0 {
		cnt, err := s.MenuRepo.CountCustomizationsBelongToItem(m.ID, in.CustomizationIDs)
		if err != nil {
			return err
		}
		if cnt != int64(len(in.CustomizationIDs)) {
			return errors.New("invalid customizations")
		}
	}
	cus, err := s.MenuRepo.GetCustomizationsByIDs(in.CustomizationIDs)
	if err != nil {
		return err
	}

	unit := m.Price
	selRows := make([]entity.CartItemSelection, 0, len(cus))
	for _, cu := range cus {
		unit += cu.PriceDelta
		selRows = append(selRows, entity.CartItemSelection{
			CustomizationID: cu.ID, PriceDelta: cu.PriceDelta,
		})
	}

	line := &entity.CartItem{
		MenuItemID:    m.ID,
		Qty:           in.Qty,
		UnitPrice:     unit,
		Total:         unit * int64(in.Qty),
		SelectionsKey: selectionsKey(in.CustomizationIDs),
		Selections:    selRows,
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}

func summarize(c *entity.Cart) *CartSummary {
	sum := &CartSummary{DeliveryFee: DeliveryFee, Discount: Discount}
	for _, it := range c.Items {
		sum.TotalItems += it.Qty
		sum.Subtotal += it.Total
	}
	sum.Total = sum.Subtotal + sum.DeliveryFee - sum.Discount
	return sum
}

// selectionsKey canonicalizes a customization set so equivalent lines merge
// regardless of selection order.
func selectionsKey(ids []uint) string {
	if len(ids) == 0 {
		return ""
	}
	sorted := append([]uint(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ",")
}
