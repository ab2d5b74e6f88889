package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// MessageHandler handles the persisted chat transcript endpoints. Realtime
// delivery is a separate, best-effort path over the websocket relay.
type MessageHandler struct {
	service ports.ChatService
}

func NewMessageHandler(service ports.ChatService) *MessageHandler {
	return &MessageHandler{service: service}
}

type sendMessageRequest struct {
	ConversationID string `json:"conversationId" validate:"required"`
	Desc           string `json:"desc"           validate:"required"`
}

type messageResponse struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversationId"`
	UserID         string `json:"userId"`
	Desc           string `json:"desc"`
	CreatedAt      string `json:"createdAt"`
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		UserID:         m.UserID,
		Desc:           m.Desc,
		CreatedAt:      m.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// List handles GET /messages/:conversationID: the full transcript, oldest
// first; participants only.
//
// @Summary      List a conversation's messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        conversationID  path      string  true  "Conversation id"
// @Success      200             {array}   messageResponse
// @Failure      403             {object}  errorResponse
// @Failure      404             {object}  errorResponse
// @Router       /messages/{conversationID} [get]
func (h *MessageHandler) List(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	msgs, err := h.service.ListMessages(c.Request().Context(), c.Param("conversationID"), userID)
	if err != nil {
		return err
	}

	out := make([]messageResponse, len(msgs))
	for i, m := range msgs {
		out[i] = toMessageResponse(m)
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /messages: persists a message and updates the thread's
// last-message denormalisation.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Message"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /messages [post]
func (h *MessageHandler) Create(c echo.Context) error {
	var req sendMessageRequest
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

	msg, err := h.service.SendMessage(c.Request().Context(), req.ConversationID, userID, req.Desc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toMessageResponse(msg))
}
