package routes

import (
	"time"

	"lexconnect/handlers"
	"lexconnect/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterLawyerRoutes registers the directory endpoints.
func RegisterLawyerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/lawyers")
	{
		api.GET("", hb.SearchLawyersHandler)
		api.GET("/search/text", hb.TextSearchHandler)
		api.GET("/specializations/list", hb.SpecializationsHandler)
		api.GET("/languages/list", hb.LanguagesHandler)

		api.GET("/:id", hb.GetLawyerHandler)
	}
}

// RegisterReviewRoutes registers the review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("/lawyer/:lawyerId", hb.ListLawyerReviewsHandler)
		api.GET("/lawyer/:lawyerId/stats", hb.GetRatingStatsHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTIdentityMiddleware(false))
		protected.POST("", hb.SubmitReviewHandler)
		protected.PUT("/:reviewId", hb.EditReviewHandler)
		protected.DELETE("/:reviewId", hb.DeleteReviewHandler)
		protected.GET("/user/me", hb.ListMyReviewsHandler)
		protected.POST("/:reviewId/report", hb.ReportReviewHandler)
	}
}

// RegisterOpsRoutes registers the health-check and metrics endpoints.
func RegisterOpsRoutes(r *gin.Engine, hb *handlers.HandlerBundle, gatherer prometheus.Gatherer) {
	r.GET("/health", hb.HealthHandler)
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, gatherer prometheus.Gatherer) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterLawyerRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterOpsRoutes(r, hb, gatherer)
}
