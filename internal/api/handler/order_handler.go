package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// OrderHandler handles order and payment endpoints.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type paymentIntentResponse struct {
	OrderID      string `json:"orderId"`
	ClientSecret string `json:"clientSecret"`
}

type confirmOrderRequest struct {
	PaymentIntent string `json:"payment_intent" validate:"required"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=delivered completed cancelled"`
}

type orderResponse struct {
	ID            string `json:"id"`
	GigID         string `json:"gig_id"`
	Img           string `json:"img"`
	Title         string `json:"title"`
	Price         int    `json:"price"`
	SellerID      string `json:"seller_id"`
	BuyerID       string `json:"buyer_id"`
	Status        string `json:"status"`
	PaymentIntent string `json:"payment_intent,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:            o.ID,
		GigID:         o.GigID,
		Img:           o.Img,
		Title:         o.Title,
		Price:         o.Price,
		SellerID:      o.SellerID,
		BuyerID:       o.BuyerID,
		Status:        string(o.Status),
		PaymentIntent: o.PaymentIntent,
		CreatedAt:     o.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt:     o.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// List handles GET /orders: purchases for buyers, received orders for
// sellers, every order for admins.
//
// @Summary      List the caller's orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   orderResponse
// @Failure      401  {object}  errorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListForUser(c.Request().Context(), userID, role)
	if err != nil {
		return err
	}

	out := make([]orderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return c.JSON(http.StatusOK, out)
}

// CreatePaymentIntent handles POST /orders/create-payment-intent/:gigID.
// It opens a pending order and returns the payment widget's client secret.
//
// @Summary      Open an order for payment
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        gigID  path      string  true  "Gig id"
// @Success      200    {object}  paymentIntentResponse
// @Failure      403    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /orders/create-payment-intent/{gigID} [post]
func (h *OrderHandler) CreatePaymentIntent(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	result, err := h.service.CreatePaymentIntent(c.Request().Context(), c.Param("gigID"), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, paymentIntentResponse{
		OrderID:      result.OrderID,
		ClientSecret: result.ClientSecret,
	})
}

// Confirm handles PUT /orders/confirm: the post-payment callback. Failure to
// verify the charge is reported as 502 so the client can tell "your card was
// declined" apart from "we could not finalise the order".
//
// @Summary      Confirm a paid order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      confirmOrderRequest  true  "Payment reference"
// @Success      200   {object}  orderResponse
// @Failure      404   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /orders/confirm [put]
func (h *OrderHandler) Confirm(c echo.Context) error {
	var req confirmOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	order, err := h.service.Confirm(c.Request().Context(), req.PaymentIntent)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// UpdateStatus handles PUT /orders/status/:id. The state machine and the
// actor rules (seller delivers, buyer completes, either cancels) live in the
// service layer.
//
// @Summary      Apply an order status transition
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Order id"
// @Param        body  body      updateOrderStatusRequest  true  "Target status"
// @Success      200   {object}  orderResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /orders/status/{id} [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), userID, domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}
