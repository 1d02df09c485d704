package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haamee/haamee-api/internal/api/handler/v1/response"
	"github.com/haamee/haamee-api/internal/domain"
	"github.com/haamee/haamee-api/internal/service"
)

type PaymentService interface {
	List(ctx context.Context) ([]domain.Payment, error)
	Get(ctx context.Context, id uint) (domain.Payment, error)
	Create(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	Update(ctx context.Context, id uint, payment domain.Payment) error
	Delete(ctx context.Context, id uint) error
}

type PaymentHandler struct {
	svc PaymentService
}

func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		svc: svc,
	}
}

// HandleListPayments godoc
// @Summary      List all payments
// @Tags         payments
// @Produce      json
// @Success      200  {array}   domain.Payment
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /payments [get]
// @Security BearerAuth
func (h *PaymentHandler) HandleListPayments(ctx *gin.Context) {
	payments, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPayments -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, payments)
}

// HandleGetPayment godoc
// @Summary      Get a payment by ID
// @Tags         payments
// @Produce      json
// @Param        paymentID  path      int  true  "payment ID"
// @Success      200        {object}  domain.Payment
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /payments/{paymentID} [get]
// @Security BearerAuth
func (h *PaymentHandler) HandleGetPayment(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "paymentID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	payment, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("payment", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetPayment -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, payment)
}

// HandleCreatePayment godoc
// @Summary      Create a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      domain.Payment  true  "payment"
// @Success      200      {object}  response.CreatedResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /payments [post]
// @Security BearerAuth
func (h *PaymentHandler) HandleCreatePayment(ctx *gin.Context) {
	var payment domain.Payment
	if err := ctx.ShouldBindJSON(&payment); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	payment.ID = 0
	created, err := h.svc.Create(ctx.Request.Context(), payment)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreatePayment -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.CreatedResponse{
		ID:      created.ID,
		Message: "Payment created",
	})
}

// HandleUpdatePayment godoc
// @Summary      Update a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        paymentID  path      int             true  "payment ID"
// @Param        request    body      domain.Payment  true  "payment"
// @Success      200        {object}  response.MessageResponse
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /payments/{paymentID} [put]
// @Security BearerAuth
func (h *PaymentHandler) HandleUpdatePayment(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "paymentID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var payment domain.Payment
	if err = ctx.ShouldBindJSON(&payment); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.Update(ctx.Request.Context(), id, payment); err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("payment", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdatePayment -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Payment updated"})
}

// HandleDeletePayment godoc
// @Summary      Delete a payment
// @Tags         payments
// @Produce      json
// @Param        paymentID  path      int  true  "payment ID"
// @Success      200        {object}  response.MessageResponse
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /payments/{paymentID} [delete]
// @Security BearerAuth
func (h *PaymentHandler) HandleDeletePayment(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "paymentID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("payment", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeletePayment -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Payment deleted"})
}
