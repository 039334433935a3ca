package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// ChatbotHandlers proxies chat messages to the intent service
type ChatbotHandlers struct {
	intents domain.IntentClient
	logger  *zap.Logger
}

// NewChatbotHandlers creates new chatbot handlers
func NewChatbotHandlers(intents domain.IntentClient, logger *zap.Logger) *ChatbotHandlers {
	return &ChatbotHandlers{intents: intents, logger: logger}
}

// DetectIntent forwards the message and returns the agent's reply. The
// error text is embedded in the body so the chat widget can display it.
func (h *ChatbotHandlers) DetectIntent(c *gin.Context) {
	sessionID := c.Query("sessionId")
	message := c.Query("message")
	if sessionID == "" || message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"response": "sessionId and message are required"})
		return
	}

	reply, err := h.intents.DetectIntent(c.Request.Context(), sessionID, message)
	if err != nil {
		h.logger.Error("intent detection failed", zap.String("session", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"response": "chatbot error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}
