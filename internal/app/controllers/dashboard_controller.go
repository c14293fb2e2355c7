package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/courseadmin/internal/app/services"
	"github.com/yigit/courseadmin/internal/middleware"
)

// DashboardController serves the landing page counters
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Stats fetches every collection and summarizes it.
func (dc *DashboardController) Stats(ctx *gin.Context) {
	stats, err := dc.dashboardService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, stats, "")
}
