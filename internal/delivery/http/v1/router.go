package v1

import (
	"hirewise-backend/config"
	"hirewise-backend/internal/delivery/http/middleware"
	"hirewise-backend/internal/delivery/http/response"
	"hirewise-backend/internal/domain"
	"hirewise-backend/internal/usecase"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	SessionUC     domain.SessionUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	CandidateUC   domain.CandidateUsecase
	RecruiterUC   domain.RecruiterUsecase
	AnalyticsUC   domain.AnalyticsUsecase
	HealthUC      usecase.HealthUsecase
	Config        *config.Config
	Redis         *goredis.Client // optional, shares rate limit counters across instances
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		if deps.HealthUC == nil {
			response.Success(c, http.StatusOK, "System operational", nil)
			return
		}
		report, ok := deps.HealthUC.Check(c)
		if !ok {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", report)
			return
		}
		response.Success(c, http.StatusOK, "System operational", report)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimit := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
		deps.Redis,
	))

	api := v1.Group("")
	api.Use(middleware.SessionMiddleware(deps.SessionUC))
	{
		NewSessionHandler(api, loginLimit, deps.SessionUC, deps.CandidateUC, deps.RecruiterUC)
		NewJobHandler(api, deps.JobUC, deps.ApplicationUC, deps.SessionUC)
		NewApplicationHandler(api, deps.ApplicationUC)
		NewCandidateHandler(api, deps.CandidateUC, deps.ApplicationUC, deps.SessionUC)
		NewRecruiterHandler(api, deps.RecruiterUC)
		NewAnalyticsHandler(api, deps.AnalyticsUC)
	}

	return r
}
