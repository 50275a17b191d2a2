package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/advisor"
	apperrors "fintrack/internal/errors"
)

// AdvisorHandler relays questions to the AI financial advisor.
type AdvisorHandler struct {
	advisorService advisor.Servicer
}

// NewAdvisorHandler creates a new AdvisorHandler.
func NewAdvisorHandler(advisorService advisor.Servicer) *AdvisorHandler {
	return &AdvisorHandler{advisorService: advisorService}
}

// AdvisorRequest is one user turn.
type AdvisorRequest struct {
	Message        string `json:"message" example:"How can I cut my dining spending?"`
	ConversationID string `json:"conversation_id" example:"conv_123"`
}

// AdvisorResponse is the advisor's answer. ConversationID is null when the
// provider issued none.
type AdvisorResponse struct {
	Message        string  `json:"message"`
	ConversationID *string `json:"conversation_id"`
}

// Ask handles an advisor question
// @Summary     Ask the AI advisor
// @Description Forward a message under a fixed financial-advisor instruction. Resend the returned conversation_id to continue the conversation.
// @Tags        advisor
// @Accept      json
// @Produce     json
// @Param       request body AdvisorRequest true "Message and optional conversation"
// @Success     200 {object} AdvisorResponse "Advisor reply"
// @Failure     400 {object} ErrorResponse "Message is required"
// @Failure     500 {object} ErrorResponse "Server error"
// @Failure     503 {object} ErrorResponse "Advisor not configured"
// @Router      /ai-advisor [post]
func (h *AdvisorHandler) Ask(c *gin.Context) {
	var req AdvisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	reply, err := h.advisorService.Ask(c.Request.Context(), advisor.Prompt{
		Message:        req.Message,
		ConversationID: req.ConversationID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := AdvisorResponse{Message: reply.Message}
	if reply.ConversationID != "" {
		resp.ConversationID = &reply.ConversationID
	}
	c.JSON(http.StatusOK, resp)
}
