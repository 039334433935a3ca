package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// Context keys populated by the session middleware.
const (
	CtxUserID    = "user_id"
	CtxCompanyID = "company_id"
	CtxUserRole  = "user_role"
)

// SessionMW resolves the session cookie to an identity for downstream
// handlers and the authorization middleware.
type SessionMW struct {
	sessions   domain.SessionGateway
	userRepo   domain.UserRepository
	cookieName string
}

// NewSessionMW creates new session middleware wrapper
func NewSessionMW(sessions domain.SessionGateway, userRepo domain.UserRepository, cookieName string) *SessionMW {
	return &SessionMW{sessions: sessions, userRepo: userRepo, cookieName: cookieName}
}

// Require rejects requests without a live session. The role is resolved
// person-first: an admin person yields "admin", any other person "person",
// else a bound company yields "company".
func (mw *SessionMW) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(mw.cookieName)
		if err != nil || sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "not logged in"})
			c.Abort()
			return
		}

		session, err := mw.sessions.Current(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, domain.ErrSessionNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "not logged in"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
			}
			c.Abort()
			return
		}

		switch {
		case session.UserID != 0:
			user, err := mw.userRepo.FindByID(c.Request.Context(), session.UserID)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "not logged in"})
				c.Abort()
				return
			}
			c.Set(CtxUserID, session.UserID)
			if user.IsAdmin {
				c.Set(CtxUserRole, "admin")
			} else {
				c.Set(CtxUserRole, "person")
			}
		case session.CompanyID != 0:
			c.Set(CtxCompanyID, session.CompanyID)
			c.Set(CtxUserRole, "company")
		default:
			c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "not logged in"})
			c.Abort()
			return
		}

		c.Next()
	}
}
