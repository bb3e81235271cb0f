package handlers

import (
	"net/http"

	"agrioptimize.backend/internal/domain/entities"
	domainerrors "agrioptimize.backend/internal/domain/errors"
	"agrioptimize.backend/internal/interfaces/http/middleware"
	"agrioptimize.backend/internal/interfaces/http/response"
	"agrioptimize.backend/internal/usecases"
	"github.com/gin-gonic/gin"
)

// AssistantHandler handles assistant chat endpoints
type AssistantHandler struct {
	assistantUsecase *usecases.AssistantUsecase
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistantUsecase *usecases.AssistantUsecase) *AssistantHandler {
	return &AssistantHandler{assistantUsecase: assistantUsecase}
}

// Chat handles POST /api/assistant
func (h *AssistantHandler) Chat(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized. Token missing."))
		return
	}

	var input entities.AssistantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Message is required"))
		return
	}

	resp, err := h.assistantUsecase.Chat(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
