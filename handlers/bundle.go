package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Directory endpoints
	SearchLawyersHandler   gin.HandlerFunc
	TextSearchHandler      gin.HandlerFunc
	GetLawyerHandler       gin.HandlerFunc
	SpecializationsHandler gin.HandlerFunc
	LanguagesHandler       gin.HandlerFunc

	// Review endpoints
	ListLawyerReviewsHandler gin.HandlerFunc
	GetRatingStatsHandler    gin.HandlerFunc
	SubmitReviewHandler      gin.HandlerFunc
	EditReviewHandler        gin.HandlerFunc
	DeleteReviewHandler      gin.HandlerFunc
	ListMyReviewsHandler     gin.HandlerFunc
	ReportReviewHandler      gin.HandlerFunc

	// Operational endpoints
	HealthHandler gin.HandlerFunc
}
