package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/token"
)

// RouterDeps carries everything the HTTP layer needs, wired in main.
type RouterDeps struct {
	Config *config.Config
	Tokens *token.Manager

	AuthUC        domain.AuthUsecase
	UserUC        domain.UserUsecase
	SkillUC       domain.SkillUsecase
	LanguageUC    domain.LanguageUsecase
	EducationUC   domain.EducationUsecase
	ExperienceUC  domain.ExperienceUsecase
	CertificateUC domain.CertificateUsecase
	DashboardUC   domain.DashboardUsecase
}

// NewRouter builds the gin engine with the full middleware chain and all
// v1 routes. Read endpoints for portfolio entities are public; everything
// that mutates state sits behind the auth middleware.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	router.Use(middleware.CORSMiddleware())
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	public := router.Group("/v1")

	public.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "OK", gin.H{"status": "up"})
	})

	public.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimiter := middleware.RateLimitMiddleware(
		middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))
	NewAuthHandler(public, deps.AuthUC, loginLimiter)

	protected := public.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))

	NewUserHandler(protected, deps.UserUC)
	NewSkillHandler(public, protected, deps.SkillUC)
	NewLanguageHandler(public, protected, deps.LanguageUC)
	NewEducationHandler(public, protected, deps.EducationUC)
	NewExperienceHandler(public, protected, deps.ExperienceUC)
	NewCertificateHandler(public, protected, deps.CertificateUC)
	NewDashboardHandler(protected, deps.DashboardUC)

	return router
}
