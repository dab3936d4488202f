package controller

import (
	"net/http"

	"scholarship/app_error"
	"scholarship/repository"
	"scholarship/service"
	"scholarship/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewerController struct {
	reviewerService *service.ReviewerService
}

func NewReviewerController(db *gorm.DB) *ReviewerController {
	return &ReviewerController{
		reviewerService: service.NewReviewerService(db),
	}
}

func setupReviewerController(db *gorm.DB) []RouteInfo {
	r := NewReviewerController(db)
	basePath := "/reviewers/self"
	routes := []RouteInfo{
		{Method: "GET", Path: "/dashboard", HandlerFunc: r.getDashboardHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionReviewer}},
		{Method: "GET", Path: "/ranking", HandlerFunc: r.getRankingHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionReviewer}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetReviewerDashboard
// @Description Counts and lists the reviews assigned to the authenticated reviewer
// @Tags reviewer
// @Produce json
// @Success 200 {object} ReviewerDashboard
// @Security BearerAuth
// @Router /reviewers/self/dashboard [get]
func (r *ReviewerController) getDashboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		dashboard, err := r.reviewerService.Dashboard(actorId(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, ReviewerDashboard{
			Assigned:  dashboard.Assigned,
			Pending:   dashboard.Pending,
			Submitted: dashboard.Submitted,
			Reviews:   utils.Map(dashboard.Reviews, toReviewResponse),
		})
	}
}

// @id GetReviewerRanking
// @Description Lists the applications scored by the authenticated reviewer, highest score first
// @Tags reviewer
// @Produce json
// @Success 200 {array} Review
// @Security BearerAuth
// @Router /reviewers/self/ranking [get]
func (r *ReviewerController) getRankingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := r.reviewerService.Ranking(actorId(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, utils.Map(reviews, toReviewResponse))
	}
}

type ReviewerDashboard struct {
	Assigned  int       `json:"assigned" binding:"required"`
	Pending   int       `json:"pending" binding:"required"`
	Submitted int       `json:"submitted" binding:"required"`
	Reviews   []*Review `json:"reviews" binding:"required"`
}
