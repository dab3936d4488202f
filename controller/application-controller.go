package controller

import (
	"net/http"
	"time"

	"scholarship/app_error"
	"scholarship/engine"
	"scholarship/repository"
	"scholarship/service"
	"scholarship/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ApplicationController struct {
	applicationService *service.ApplicationService
}

func NewApplicationController(db *gorm.DB, e *engine.Engine) *ApplicationController {
	return &ApplicationController{
		applicationService: service.NewApplicationService(db, e),
	}
}

func setupApplicationController(db *gorm.DB, e *engine.Engine) []RouteInfo {
	a := NewApplicationController(db, e)
	basePath := "/applications"
	routes := []RouteInfo{
		{Method: "GET", Path: "/self", HandlerFunc: a.getOwnApplicationsHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionStudent}},
		{Method: "GET", Path: "/:application_id", HandlerFunc: a.getApplicationHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionAdmin, repository.PermissionCommittee}},
		{Method: "PUT", Path: "/:application_id/reviewers", HandlerFunc: a.assignReviewersHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionAdmin}},
		{Method: "PUT", Path: "/:application_id/review", HandlerFunc: a.submitReviewHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionReviewer}},
		{Method: "GET", Path: "/:application_id/summary", HandlerFunc: a.getSummaryHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionAdmin, repository.PermissionCommittee, repository.PermissionReviewer}},
		{Method: "PUT", Path: "/:application_id/decision", HandlerFunc: a.decideHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionCommittee}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetOwnApplications
// @Description Fetches the applications of the authenticated student
// @Tags application
// @Produce json
// @Success 200 {array} Application
// @Security BearerAuth
// @Router /applications/self [get]
func (a *ApplicationController) getOwnApplicationsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		applications, err := a.applicationService.GetApplicationsForStudent(actorId(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, utils.Map(applications, toApplicationResponse))
	}
}

// @id GetApplication
// @Description Fetches an application with its reviews and review summary
// @Tags application
// @Produce json
// @Param application_id path int true "Application Id"
// @Success 200 {object} ApplicationDetail
// @Security BearerAuth
// @Router /applications/{application_id} [get]
func (a *ApplicationController) getApplicationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		applicationId, ok := pathId(c, "application_id")
		if !ok {
			return
		}
		application, err := a.applicationService.GetApplication(applicationId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		reviews, err := a.applicationService.GetReviews(applicationId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		summary, err := a.applicationService.Summary(c.Request.Context(), applicationId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, ApplicationDetail{
			Application: toApplicationResponse(application),
			Reviews:     utils.Map(reviews, toReviewResponse),
			Summary:     summary,
		})
	}
}

// @id AssignReviewers
// @Description Assigns reviewers to an application. Reviewers that are already assigned are skipped.
// @Tags application
// @Accept json
// @Produce json
// @Param application_id path int true "Application Id"
// @Param body body ReviewerAssignment true "Reviewers to assign"
// @Success 200 {object} engine.AssignmentResult
// @Security BearerAuth
// @Router /applications/{application_id}/reviewers [put]
func (a *ApplicationController) assignReviewersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		applicationId, ok := pathId(c, "application_id")
		if !ok {
			return
		}
		var assignment ReviewerAssignment
		if err := c.BindJSON(&assignment); err != nil {
			return
		}
		result, err := a.applicationService.AssignReviewers(c.Request.Context(), applicationId, assignment.ReviewerIds, actorId(c))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// @id SubmitReview
// @Description Submits the authenticated reviewer's score and decision. A review can only be submitted once.
// @Tags application
// @Accept json
// @Produce json
// @Param application_id path int true "Application Id"
// @Param body body ReviewCreate true "Review"
// @Success 200 {object} engine.Summary
// @Security BearerAuth
// @Router /applications/{application_id}/review [put]
func (a *ApplicationController) submitReviewHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		applicationId, ok := pathId(c, "application_id")
		if !ok {
			return
		}
		var reviewCreate ReviewCreate
		if err := c.BindJSON(&reviewCreate); err != nil {
			return
		}
		summary, err := a.applicationService.SubmitReview(c.Request.Context(), reviewCreate.toSubmission(applicationId, actorId(c)))
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// @id GetApplicationSummary
// @Description Aggregates the submitted reviews of an application
// @Tags application
// @Produce json
// @Param application_id path int true "Application Id"
// @Success 200 {object} engine.Summary
// @Security BearerAuth
// @Router /applications/{application_id}/summary [get]
func (a *ApplicationController) getSummaryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		applicationId, ok := pathId(c, "application_id")
		if !ok {
			return
		}
		summary, err := a.applicationService.Summary(c.Request.Context(), applicationId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// @id DecideApplication
// @Description Records the committee's final verdict on an application
// @Tags application
// @Accept json
// @Produce json
// @Param application_id path int true "Application Id"
// @Param body body DecisionCreate true "Verdict"
// @Success 200 {object} engine.Outcome
// @Security BearerAuth
// @Router /applications/{application_id}/decision [put]
func (a *ApplicationController) decideHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		applicationId, ok := pathId(c, "application_id")
		if !ok {
			return
		}
		var decisionCreate DecisionCreate
		if err := c.BindJSON(&decisionCreate); err != nil {
			return
		}
		outcome, err := a.applicationService.Decide(c.Request.Context(), applicationId, actorId(c), decisionCreate.Verdict)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, outcome)
	}
}

type Application struct {
	Id              int              `json:"id" binding:"required"`
	StudentId       int              `json:"student_id" binding:"required"`
	ScholarshipId   int              `json:"scholarship_id" binding:"required"`
	Status          engine.Status    `json:"status" binding:"required"`
	Cgpa            *decimal.Decimal `json:"cgpa" swaggertype:"string"`
	HouseholdIncome *decimal.Decimal `json:"household_income" swaggertype:"string"`
	Programme       string           `json:"programme"`
	Statement       string           `json:"statement"`
	Documents       []string         `json:"documents"`
	SubmittedAt     time.Time        `json:"submitted_at" binding:"required"`
	Scholarship     *Scholarship     `json:"scholarship,omitempty"`
}

func toApplicationResponse(application *repository.Application) *Application {
	if application == nil {
		return nil
	}
	profile := application.Profile()
	return &Application{
		Id:              application.ID,
		StudentId:       application.StudentID,
		ScholarshipId:   application.ScholarshipID,
		Status:          application.Status,
		Cgpa:            profile.Cgpa,
		HouseholdIncome: profile.HouseholdIncome,
		Programme:       application.Programme,
		Statement:       application.Statement,
		Documents:       application.Documents,
		SubmittedAt:     application.SubmittedAt,
		Scholarship:     toScholarshipResponse(application.Scholarship),
	}
}

type Review struct {
	ApplicationId int              `json:"application_id" binding:"required"`
	ReviewerId    int              `json:"reviewer_id" binding:"required"`
	ReviewerName  string           `json:"reviewer_name"`
	Score         *int             `json:"score"`
	Decision      *engine.Decision `json:"decision"`
	Comment       *string          `json:"comment"`
	SubmittedAt   *time.Time       `json:"submitted_at"`
	Application   *Application     `json:"application,omitempty"`
}

func toReviewResponse(review *repository.Review) *Review {
	response := &Review{
		ApplicationId: review.ApplicationID,
		ReviewerId:    review.ReviewerID,
		Score:         review.Score,
		Decision:      review.Decision,
		Comment:       review.Comment,
		SubmittedAt:   review.SubmittedAt,
		Application:   toApplicationResponse(review.Application),
	}
	if review.Reviewer != nil {
		response.ReviewerName = review.Reviewer.Username
	}
	return response
}

type ApplicationDetail struct {
	Application *Application   `json:"application" binding:"required"`
	Reviews     []*Review      `json:"reviews" binding:"required"`
	Summary     engine.Summary `json:"summary" binding:"required"`
}

type ReviewerAssignment struct {
	ReviewerIds []int `json:"reviewer_ids" binding:"required,min=1"`
}

type ReviewCreate struct {
	Score    *int            `json:"score" binding:"required"`
	Decision engine.Decision `json:"decision" binding:"required"`
	Comment  string          `json:"comment"`
}

func (r ReviewCreate) toSubmission(applicationId int, reviewerId int) engine.ReviewSubmission {
	return engine.ReviewSubmission{
		ApplicationID: applicationId,
		ReviewerID:    reviewerId,
		Score:         *r.Score,
		Decision:      r.Decision,
		Comment:       r.Comment,
	}
}

type DecisionCreate struct {
	Verdict engine.Event `json:"verdict" binding:"required" enums:"ACCEPT,REJECT"`
}
