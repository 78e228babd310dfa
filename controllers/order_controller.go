package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Rushikesh1Avachat/food-ordering-mains/pkg/resp"
	"github.com/Rushikesh1Avachat/food-ordering-mains/repository"
	"github.com/Rushikesh1Avachat/food-ordering-mains/utils"
)

type OrderController struct{ Repo *repository.OrderRepository }

func NewOrderController(repo *repository.OrderRepository) *OrderController {
	return &OrderController{Repo: repo}
}

// GET /orders
func (h *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	rows, err := h.Repo.ListByUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	order, err := h.Repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	if order.UserID != uid {
		resp.Forbidden(c, "forbidden")
		return
	}
	resp.OK(c, order)
}
