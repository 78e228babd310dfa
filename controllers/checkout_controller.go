package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Rushikesh1Avachat/food-ordering-mains/pkg/resp"
	"github.com/Rushikesh1Avachat/food-ordering-mains/services"
	"github.com/Rushikesh1Avachat/food-ordering-mains/utils"
)

type CheckoutController struct{ Svc *services.CheckoutService }

func NewCheckoutController(svc *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Svc: svc}
}

// POST /checkout
func (h *CheckoutController) Start(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	out, err := h.Svc.Start(uid)
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, out)
}

// POST /checkout/:id/present
func (h *CheckoutController) Present(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.Svc.Present(uid, id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "checkout session not found")
		case errors.Is(err, services.ErrInvalidTransition):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"state": services.StatePresenting})
}

type completeReq struct {
	PaymentMethodID string `json:"payment_method_id" binding:"required"`
}

// POST /checkout/:id/complete
func (h *CheckoutController) Complete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req completeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "payment_method_id is required")
		return
	}

	session, err := h.Svc.Confirm(uid, id, req.PaymentMethodID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "checkout session not found")
		case errors.Is(err, services.ErrPaymentNotSucceeded):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrInvalidTransition):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, session)
}

// GET /checkout/:id
func (h *CheckoutController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, ok := sessionID(c)
	if !ok {
		return
	}

	session, err := h.Svc.Get(uid, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "checkout session not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, session)
}

func sessionID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
