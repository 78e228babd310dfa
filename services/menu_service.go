package services

import (
	"github.com/Rushikesh1Avachat/food-ordering-mains/entity"
	"github.com/Rushikesh1Avachat/food-ordering-mains/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) Categories() ([]entity.Category, error) {
	return s.Repo.Categories()
}

// List filters by category and/or a name search, both optional.
func (s *MenuService) List(categoryID uint, query string) ([]entity.MenuItem, error) {
	return s.Repo.Find(categoryID, query)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}
