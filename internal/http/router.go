package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/JGS-JAVA/albaing-personalpart/internal/http/handlers"
	"github.com/JGS-JAVA/albaing-personalpart/internal/http/middleware"
)

// BuildRouter wires every route group. uploadDir, when non-empty, is
// mounted so stored profile images and logos are directly servable.
func BuildRouter(
	ah *handlers.AuthHandlers,
	fh *handlers.FindHandlers,
	oh *handlers.OAuthHandlers,
	ch *handlers.ChatbotHandlers,
	adh *handlers.AdminHandlers,
	sess *middleware.SessionMW,
	cb *middleware.CasbinMW,
	uploadDir string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	if uploadDir != "" {
		r.Static("/uploads", uploadDir)
	}

	auth := r.Group("/api/auth")
	auth.POST("/register/person", ah.RegisterPerson)
	auth.POST("/register/company", ah.RegisterCompany)
	auth.POST("/login/person", ah.LoginPerson)
	auth.POST("/login/company", ah.LoginCompany)
	auth.POST("/logout", ah.Logout)
	auth.GET("/checkLogin", ah.CheckLogin)
	auth.POST("/sendCode", ah.SendCode)
	auth.POST("/checkCode", ah.CheckCode)
	auth.GET("/find/user/id", fh.FindUserEmail)
	auth.GET("/find/company/id", fh.FindCompanyEmail)
	auth.POST("/verify/user", fh.VerifyUser)
	auth.POST("/verify/company", fh.VerifyCompany)
	auth.POST("/update/user/password", fh.UpdateUserPassword)
	auth.POST("/update/company/password", fh.UpdateCompanyPassword)

	oauth := r.Group("/oauth")
	oauth.GET("/:provider/login", oh.Login)
	oauth.GET("/:provider/callback", oh.Callback)

	r.POST("/chatbot/dialogflow", ch.DetectIntent)

	adm := r.Group("/api/admin").Use(sess.Require(), cb.Enforce())
	adm.PUT("/companies/:id/approval", adh.UpdateApproval)

	return r
}
