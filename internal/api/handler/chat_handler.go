package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/entarch/systems-catalog/internal/core/ports"
)

// ChatHandler serves the demo chat page's backend: canned answers about the
// catalog, no model integration.
type ChatHandler struct {
	service ports.ChatService
}

func NewChatHandler(service ports.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Respond handles POST /api/chat.
//
// @Summary      Ask the mock catalog assistant
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Prompt"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/chat [post]
func (h *ChatHandler) Respond(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reply, err := h.service.Respond(c.Request().Context(), req.Prompt)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatResponse{
		Response:  reply.Response,
		ModelUsed: reply.ModelUsed,
	})
}
