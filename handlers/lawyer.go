package handlers

import (
	"net/http"

	"lexconnect/services/lawyer"
	"lexconnect/services/search"
	"lexconnect/utils"

	"github.com/gin-gonic/gin"
)

// LawyerHandler serves the directory endpoints.
type LawyerHandler struct {
	Service lawyer.LawyerService
	Search  search.SearchService
}

func NewLawyerHandler(svc lawyer.LawyerService, searchSvc search.SearchService) *LawyerHandler {
	return &LawyerHandler{Service: svc, Search: searchSvc}
}

// SearchLawyersHandler handles GET /api/lawyers.
func (h *LawyerHandler) SearchLawyersHandler(c *gin.Context) {
	var req search.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, utils.InvalidQuery(err.Error()))
		return
	}
	result, err := h.Search.Search(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// TextSearchHandler handles GET /api/lawyers/search/text.
func (h *LawyerHandler) TextSearchHandler(c *gin.Context) {
	var req search.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, utils.InvalidQuery(err.Error()))
		return
	}
	result, err := h.Search.SearchText(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetLawyerHandler handles GET /api/lawyers/:id.
func (h *LawyerHandler) GetLawyerHandler(c *gin.Context) {
	profile, err := h.Service.GetLawyer(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lawyer": profile})
}

// SpecializationsHandler handles GET /api/lawyers/specializations/list.
func (h *LawyerHandler) SpecializationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"specializations": h.Service.Specializations()})
}

// LanguagesHandler handles GET /api/lawyers/languages/list.
func (h *LawyerHandler) LanguagesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": h.Service.Languages()})
}
