package repository

import (
	"gorm.io/gorm"

	"github.com/Rushikesh1Avachat/food-ordering-mains/entity"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) Categories() ([]entity.Category, error) {
	var rows []entity.Category
	err := r.DB.Order("name").Find(&rows).Error
	return rows, err
}

// Find lists menu items, optionally narrowed by category and a name search.
func (r *MenuRepository) Find(categoryID uint, query string) ([]entity.MenuItem, error) {
	q := r.DB.Model(&entity.MenuItem{})
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if query != "" {
		q = q.Where("name LIKE ?", "%"+query+"%")
	}
	var rows []entity.MenuItem
	err := q.Order("name").Find(&rows).Error
	return rows, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Preload("Customizations").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetItemBasics loads just enough of a menu item to price a cart line.
func (r *MenuRepository) GetItemBasics(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Select("id, name, price").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// CountCustomizationsBelongToItem verifies every requested customization is
// offered for the given menu item.
func (r *MenuRepository) CountCustomizationsBelongToItem(menuItemID uint, ids []uint) (int64, error) {
	var cnt int64
	err := r.DB.Table("menu_customizations").
		Where("menu_item_id = ? AND customization_id IN ?", menuItemID, ids).
		Count(&cnt).Error
	return cnt, err
}

func (r *MenuRepository) GetCustomizationsByIDs(ids []uint) ([]entity.Customization, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []entity.Customization
	err := r.DB.Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}
