package handlers

import (
	"net/http"
	"strconv"

	"lexconnect/middleware"
	"lexconnect/models"
	"lexconnect/services/rating"
	"lexconnect/services/review"
	"lexconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler serves the review endpoints.
type ReviewHandler struct {
	Service review.ReviewService
}

func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

type reportRequest struct {
	Reason string `json:"reason"`
}

// ListLawyerReviewsHandler handles GET /api/reviews/lawyer/:lawyerId.
func (h *ReviewHandler) ListLawyerReviewsHandler(c *gin.Context) {
	lawyerID := c.Param("lawyerId")
	page, pageSize, err := pageParams(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	result, err := h.Service.ListLawyerReviews(c.Request.Context(), lawyerID, page, pageSize)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetRatingStatsHandler handles GET /api/reviews/lawyer/:lawyerId/stats.
func (h *ReviewHandler) GetRatingStatsHandler(c *gin.Context) {
	stats, err := h.Service.GetRatingStats(c.Request.Context(), c.Param("lawyerId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"totalReviews":       stats.Count,
		"averageRating":      rating.Round1(stats.Average),
		"exactAverage":       stats.Average,
		"ratingDistribution": stats.Distribution,
	})
}

// SubmitReviewHandler handles POST /api/reviews.
func (h *ReviewHandler) SubmitReviewHandler(c *gin.Context) {
	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	created, err := h.Service.SubmitReview(c.Request.Context(), middleware.GetIdentity(c), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Info("Review submitted", zap.String("reviewId", created.ID), zap.String("lawyerId", created.LawyerID))
	c.JSON(http.StatusCreated, gin.H{"message": "Review submitted successfully", "review": created})
}

// EditReviewHandler handles PUT /api/reviews/:reviewId.
func (h *ReviewHandler) EditReviewHandler(c *gin.Context) {
	var patch models.ReviewPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	updated, err := h.Service.EditReview(c.Request.Context(), middleware.GetIdentity(c), c.Param("reviewId"), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully", "review": updated})
}

// DeleteReviewHandler handles DELETE /api/reviews/:reviewId.
func (h *ReviewHandler) DeleteReviewHandler(c *gin.Context) {
	reviewID := c.Param("reviewId")
	identity := middleware.GetIdentity(c)
	if err := h.Service.DeleteReview(c.Request.Context(), identity, reviewID); err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Info("Review deleted", zap.String("reviewId", reviewID), zap.String("by", identity.UserID))
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

// ListMyReviewsHandler handles GET /api/reviews/user/me.
func (h *ReviewHandler) ListMyReviewsHandler(c *gin.Context) {
	reviews, err := h.Service.ListMyReviews(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// ReportReviewHandler handles POST /api/reviews/:reviewId/report.
func (h *ReviewHandler) ReportReviewHandler(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Reason is required", err.Error())
		return
	}
	report, err := h.Service.ReportReview(c.Request.Context(), middleware.GetIdentity(c), c.Param("reviewId"), req.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Review reported successfully. Our team will review it.",
		"report":  report,
	})
}

// pageParams reads page and limit, defaulting to 1 and 10. Range checks are left to the service.
func pageParams(c *gin.Context) (page, pageSize int, err error) {
	page, pageSize = 1, 10
	if raw := c.Query("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			return 0, 0, utils.InvalidQuery("page must be a positive integer")
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if pageSize, err = strconv.Atoi(raw); err != nil {
			return 0, 0, utils.InvalidQuery("limit must be a positive integer")
		}
	}
	return page, pageSize, nil
}
