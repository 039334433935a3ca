package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JGS-JAVA/albaing-personalpart/internal/mocks"
)

func newChatbotRouter(intents *mocks.MockIntentClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewChatbotHandlers(intents, zap.NewNop())
	r := gin.New()
	r.POST("/chatbot/dialogflow", h.DetectIntent)
	return r
}

func TestDetectIntentSuccess(t *testing.T) {
	intents := mocks.NewMockIntentClient()
	intents.DetectIntentFunc = func(ctx context.Context, sessionID, message string) (string, error) {
		assert.Equal(t, "visitor-1", sessionID)
		return "일자리를 찾아드릴게요", nil
	}
	r := newChatbotRouter(intents)

	req := httptest.NewRequest(http.MethodPost, "/chatbot/dialogflow?sessionId=visitor-1&message=hello", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "일자리를 찾아드릴게요")
}

func TestDetectIntentErrorEmbedsMessage(t *testing.T) {
	intents := mocks.NewMockIntentClient()
	intents.DetectIntentFunc = func(ctx context.Context, sessionID, message string) (string, error) {
		return "", assert.AnError
	}
	r := newChatbotRouter(intents)

	req := httptest.NewRequest(http.MethodPost, "/chatbot/dialogflow?sessionId=visitor-1&message=hello", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "chatbot error")
}

func TestDetectIntentMissingParams(t *testing.T) {
	r := newChatbotRouter(mocks.NewMockIntentClient())

	req := httptest.NewRequest(http.MethodPost, "/chatbot/dialogflow?sessionId=visitor-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
