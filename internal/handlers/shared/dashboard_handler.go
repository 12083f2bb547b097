package handlers

import (
	"campusride/internal/models"
	"campusride/internal/services"
	"campusride/internal/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	analyticsService services.AnalyticsService
}

func NewDashboardHandler(analyticsService services.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{analyticsService: analyticsService}
}

// GetDashboard returns placeholder figures for the user's dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	role := models.UserRole(c.DefaultQuery("role", string(models.RoleRider)))
	if role != models.RoleRider && role != models.RoleDriver {
		utils.ValidationErrorResponse(c, map[string]string{"role": "role must be one of: rider driver"})
		return
	}

	summary, err := h.analyticsService.Summary(c.Request.Context(), c.Param("user"), role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Dashboard retrieved successfully", summary)
}
