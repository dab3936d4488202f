package controller

import (
	"net/http"
	"strconv"
	"time"

	"scholarship/app_error"
	"scholarship/repository"
	"scholarship/service"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const reportCacheDuration = 60 * time.Second

type ReportController struct {
	reportService *service.ReportService
	cacheStore    persistence.CacheStore
}

func NewReportController(db *gorm.DB, cacheStore persistence.CacheStore) *ReportController {
	return &ReportController{
		reportService: service.NewReportService(db),
		cacheStore:    cacheStore,
	}
}

func setupReportController(db *gorm.DB, cacheStore persistence.CacheStore) []RouteInfo {
	r := NewReportController(db, cacheStore)
	basePath := "/reports"
	routes := []RouteInfo{
		{Method: "GET", Path: "/overview", HandlerFunc: r.getOverviewHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetReportOverview
// @Description Counts scholarships, applications by status and reviews. Results may be up to a minute old.
// @Tags report
// @Produce json
// @Param scholarship_id query int false "Restrict to one scholarship"
// @Success 200 {object} report.Overview
// @Security BearerAuth
// @Router /reports/overview [get]
func (r *ReportController) getOverviewHandler() gin.HandlerFunc {
	return cache.CachePage(r.cacheStore, reportCacheDuration, func(c *gin.Context) {
		var scholarshipId *int
		if raw := c.Query("scholarship_id"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scholarship_id"})
				return
			}
			scholarshipId = &id
		}
		overview, err := r.reportService.Overview(c.Request.Context(), scholarshipId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, overview)
	})
}
