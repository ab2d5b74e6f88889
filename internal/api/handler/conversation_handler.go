package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// ConversationHandler handles chat thread endpoints.
type ConversationHandler struct {
	service ports.ChatService
}

func NewConversationHandler(service ports.ChatService) *ConversationHandler {
	return &ConversationHandler{service: service}
}

type openConversationRequest struct {
	To string `json:"to" validate:"required"`
}

type conversationResponse struct {
	ID           string `json:"id"`
	SellerID     string `json:"sellerId"`
	BuyerID      string `json:"buyerId"`
	ReadBySeller bool   `json:"readBySeller"`
	ReadByBuyer  bool   `json:"readByBuyer"`
	LastMessage  string `json:"lastMessage,omitempty"`
	UpdatedAt    string `json:"updatedAt"`
}

func toConversationResponse(conv *domain.Conversation) conversationResponse {
	return conversationResponse{
		ID:           conv.ID,
		SellerID:     conv.SellerID,
		BuyerID:      conv.BuyerID,
		ReadBySeller: conv.ReadBySeller,
		ReadByBuyer:  conv.ReadByBuyer,
		LastMessage:  conv.LastMessage,
		UpdatedAt:    conv.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// List handles GET /conversations: the caller's threads, most recent first.
//
// @Summary      List the caller's conversations
// @Tags         conversations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   conversationResponse
// @Router       /conversations [get]
func (h *ConversationHandler) List(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	convs, err := h.service.ListConversations(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	out := make([]conversationResponse, len(convs))
	for i, conv := range convs {
		out[i] = toConversationResponse(conv)
	}
	return c.JSON(http.StatusOK, out)
}

// Open handles POST /conversations: creates (or returns) the thread between
// the caller and the target user.
//
// @Summary      Open a conversation
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      openConversationRequest  true  "Target user id"
// @Success      201   {object}  conversationResponse
// @Failure      400   {object}  errorResponse
// @Router       /conversations [post]
func (h *ConversationHandler) Open(c echo.Context) error {
	var req openConversationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	conv, err := h.service.OpenConversation(c.Request().Context(), userID, role, req.To)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toConversationResponse(conv))
}

// Get handles GET /conversations/single/:id; participants only.
//
// @Summary      Get a conversation
// @Tags         conversations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Conversation id"
// @Success      200  {object}  conversationResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /conversations/single/{id} [get]
func (h *ConversationHandler) Get(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	conv, err := h.service.GetConversation(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toConversationResponse(conv))
}

// MarkRead handles PUT /conversations/:id: flips the caller's read flag.
//
// @Summary      Mark a conversation as read
// @Tags         conversations
// @Security     BearerAuth
// @Param        id  path  string  true  "Conversation id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /conversations/{id} [put]
func (h *ConversationHandler) MarkRead(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkRead(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
