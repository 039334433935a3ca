package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// OAuthHandlers handles the social login redirects and callbacks
type OAuthHandlers struct {
	socialSvc   domain.SocialService
	logger      *zap.Logger
	frontendURL string
	cookieName  string
	sessionTTL  time.Duration
}

// NewOAuthHandlers creates new oauth handlers
func NewOAuthHandlers(
	socialSvc domain.SocialService,
	logger *zap.Logger,
	frontendURL string,
	cookieName string,
	sessionTTL time.Duration,
) *OAuthHandlers {
	return &OAuthHandlers{
		socialSvc:   socialSvc,
		logger:      logger,
		frontendURL: frontendURL,
		cookieName:  cookieName,
		sessionTTL:  sessionTTL,
	}
}

// Login sends the browser to the provider consent screen.
func (h *OAuthHandlers) Login(c *gin.Context) {
	provider := c.Param("provider")
	state := uuid.NewString()

	authURL, err := h.socialSvc.AuthCodeURL(provider, state)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "fail", "message": "unknown provider"})
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// Callback completes the code exchange. Provider failures send the browser
// to the frontend error page instead of rendering a JSON body.
func (h *OAuthHandlers) Callback(c *gin.Context) {
	provider := c.Param("provider")
	code := c.Query("code")
	if code == "" {
		h.redirectError(c, "authorization code missing")
		return
	}

	sessionID, err := c.Cookie(h.cookieName)
	if err != nil || sessionID == "" {
		sessionID = uuid.NewString()
	}

	target, err := h.socialSvc.HandleCallback(c.Request.Context(), provider, code, sessionID)
	if err != nil {
		var provErr *domain.ProviderError
		if errors.As(err, &provErr) {
			h.logger.Warn("social login failed",
				zap.String("provider", provErr.Provider),
				zap.String("stage", string(provErr.Stage)),
				zap.String("detail", provErr.Message))
			h.redirectError(c, "social login failed, please try again")
			return
		}
		h.logger.Error("social callback failed", zap.String("provider", provider), zap.Error(err))
		h.redirectError(c, "social login failed, please try again")
		return
	}

	c.SetCookie(h.cookieName, sessionID, int(h.sessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, target)
}

func (h *OAuthHandlers) redirectError(c *gin.Context, message string) {
	c.Redirect(http.StatusFound, h.frontendURL+"/error?message="+url.QueryEscape(message))
}
