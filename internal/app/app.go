package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JGS-JAVA/albaing-personalpart/internal/config"
	httpx "github.com/JGS-JAVA/albaing-personalpart/internal/http"
	"github.com/JGS-JAVA/albaing-personalpart/internal/http/handlers"
	"github.com/JGS-JAVA/albaing-personalpart/internal/http/middleware"
	"github.com/JGS-JAVA/albaing-personalpart/internal/infrastructure/auth"
	"github.com/JGS-JAVA/albaing-personalpart/internal/infrastructure/chatbot"
	"github.com/JGS-JAVA/albaing-personalpart/internal/infrastructure/database"
	"github.com/JGS-JAVA/albaing-personalpart/internal/infrastructure/notifications"
	"github.com/JGS-JAVA/albaing-personalpart/internal/infrastructure/oauth"
	"github.com/JGS-JAVA/albaing-personalpart/internal/infrastructure/repositories"
	"github.com/JGS-JAVA/albaing-personalpart/internal/infrastructure/storage"
	"github.com/JGS-JAVA/albaing-personalpart/internal/services"
	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// Run wires every collaborator and serves until the listener fails.
func Run(cfg *config.Config) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}
	if err := cas.EnsureBaselinePolicies(); err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Infrastructure
	passwordSvc := auth.NewPasswordService(cfg.BcryptCost)
	mailSvc := notifications.NewSMTPService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	fileStore := storage.NewLocalStore(cfg.UploadDir, cfg.UploadBasePath)
	intentClient := chatbot.NewDialogflowClient(cfg.DialogflowProject, cfg.DialogflowCredsFile, cfg.DialogflowLanguage)

	// Repositories and stores
	userRepo := repositories.NewUserRepository(gdb)
	companyRepo := repositories.NewCompanyRepository(gdb)
	verificationStore := repositories.NewVerificationStore(rdb, cfg.VerificationLength, cfg.VerificationTTL, cfg.VerificationRecTTL)
	sessions := repositories.NewSessionGateway(rdb, cfg.SessionTTL, cfg.SessionExclusive)

	// Services
	verificationSvc := services.NewVerificationService(verificationStore, mailSvc)
	authSvc := services.NewAuthService(userRepo, companyRepo, passwordSvc, verificationSvc)
	findSvc := services.NewFindService(userRepo, companyRepo, passwordSvc)
	socialSvc := services.NewSocialService(
		[]domain.OAuthProvider{
			oauth.NewKakaoProvider(cfg.Kakao, nil),
			oauth.NewNaverProvider(cfg.Naver, nil),
		},
		userRepo, sessions, cfg.FrontendURL,
	)

	// Handlers
	authH := handlers.NewAuthHandlers(authSvc, verificationSvc, sessions, userRepo, companyRepo,
		fileStore, logger, cfg.SessionCookie, cfg.SessionTTL)
	findH := handlers.NewFindHandlers(findSvc, logger)
	oauthH := handlers.NewOAuthHandlers(socialSvc, logger, cfg.FrontendURL, cfg.SessionCookie, cfg.SessionTTL)
	chatbotH := handlers.NewChatbotHandlers(intentClient, logger)
	adminH := handlers.NewAdminHandlers(companyRepo, logger)

	// Middleware
	sessionMW := middleware.NewSessionMW(sessions, userRepo, cfg.SessionCookie)
	casbinMW := middleware.NewCasbinMW(cas.E)

	r := httpx.BuildRouter(authH, findH, oauthH, chatbotH, adminH, sessionMW, casbinMW, fileStore.Dir())

	logger.Info("listening", zap.String("port", cfg.Port))
	return http.ListenAndServe(":"+cfg.Port, r)
}
