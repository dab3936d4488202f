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

type ScholarshipController struct {
	scholarshipService *service.ScholarshipService
	applicationService *service.ApplicationService
}

func NewScholarshipController(db *gorm.DB, e *engine.Engine) *ScholarshipController {
	return &ScholarshipController{
		scholarshipService: service.NewScholarshipService(db),
		applicationService: service.NewApplicationService(db, e),
	}
}

func setupScholarshipController(db *gorm.DB, e *engine.Engine) []RouteInfo {
	s := NewScholarshipController(db, e)
	basePath := "/scholarships"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: s.getScholarshipsHandler()},
		{Method: "GET", Path: "/:scholarship_id", HandlerFunc: s.getScholarshipHandler()},
		{Method: "PUT", Path: "", HandlerFunc: s.saveScholarshipHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionAdmin}},
		{Method: "POST", Path: "/:scholarship_id/eligibility", HandlerFunc: s.checkEligibilityHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionStudent}},
		{Method: "POST", Path: "/:scholarship_id/applications", HandlerFunc: s.submitApplicationHandler(), Authenticated: true, RequiredRoles: []repository.Permission{repository.PermissionStudent}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetScholarships
// @Description Fetches all scholarships
// @Tags scholarship
// @Produce json
// @Success 200 {array} Scholarship
// @Router /scholarships [get]
func (s *ScholarshipController) getScholarshipsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		scholarships, err := s.scholarshipService.GetScholarships()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, utils.Map(scholarships, toScholarshipResponse))
	}
}

// @id GetScholarship
// @Description Fetches a scholarship by id
// @Tags scholarship
// @Produce json
// @Param scholarship_id path int true "Scholarship Id"
// @Success 200 {object} Scholarship
// @Router /scholarships/{scholarship_id} [get]
func (s *ScholarshipController) getScholarshipHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		scholarshipId, ok := pathId(c, "scholarship_id")
		if !ok {
			return
		}
		scholarship, err := s.scholarshipService.GetScholarship(scholarshipId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, toScholarshipResponse(scholarship))
	}
}

// @id SaveScholarship
// @Description Creates or updates a scholarship. Criteria may be a YAML or JSON document or free text.
// @Tags scholarship
// @Accept json
// @Produce json
// @Param body body ScholarshipCreate true "Scholarship to save"
// @Success 201 {object} Scholarship
// @Security BearerAuth
// @Router /scholarships [put]
func (s *ScholarshipController) saveScholarshipHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var scholarshipCreate ScholarshipCreate
		if err := c.BindJSON(&scholarshipCreate); err != nil {
			return
		}
		scholarship, err := s.scholarshipService.SaveScholarship(scholarshipCreate.toModel(), scholarshipCreate.Criteria)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, toScholarshipResponse(scholarship))
	}
}

// @id CheckEligibility
// @Description Evaluates a profile against the scholarship's eligibility criteria without applying
// @Tags scholarship
// @Accept json
// @Produce json
// @Param scholarship_id path int true "Scholarship Id"
// @Param body body ProfileInput true "Applicant profile"
// @Success 200 {object} engine.EligibilityResult
// @Security BearerAuth
// @Router /scholarships/{scholarship_id}/eligibility [post]
func (s *ScholarshipController) checkEligibilityHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		scholarshipId, ok := pathId(c, "scholarship_id")
		if !ok {
			return
		}
		var profile ProfileInput
		if err := c.BindJSON(&profile); err != nil {
			return
		}
		result, err := s.applicationService.CheckEligibility(scholarshipId, profile.toProfile())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// @id SubmitApplication
// @Description Submits an application for the authenticated student. The eligibility result is informational.
// @Tags application
// @Accept json
// @Produce json
// @Param scholarship_id path int true "Scholarship Id"
// @Param body body ApplicationCreate true "Application"
// @Success 201 {object} ApplicationSubmitted
// @Security BearerAuth
// @Router /scholarships/{scholarship_id}/applications [post]
func (s *ScholarshipController) submitApplicationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		scholarshipId, ok := pathId(c, "scholarship_id")
		if !ok {
			return
		}
		var applicationCreate ApplicationCreate
		if err := c.BindJSON(&applicationCreate); err != nil {
			return
		}
		application, eligibility, err := s.applicationService.Submit(actorId(c), scholarshipId, applicationCreate.toServiceInput())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, ApplicationSubmitted{
			Application: toApplicationResponse(application),
			Eligibility: eligibility,
		})
	}
}

type Scholarship struct {
	Id                  int              `json:"id" binding:"required"`
	Title               string           `json:"title" binding:"required"`
	Description         string           `json:"description"`
	MinCgpa             *decimal.Decimal `json:"min_cgpa" swaggertype:"string"`
	MaxIncome           *int64           `json:"max_income"`
	RequiredCriteria    []string         `json:"required_criteria"`
	ExcludedProgrammes  []string         `json:"excluded_programmes"`
	DocumentsRequired   []string         `json:"documents_required"`
	ApplicationDeadline *time.Time       `json:"application_deadline"`
}

type ScholarshipCreate struct {
	Id                  *int       `json:"id"`
	Title               string     `json:"title" binding:"required"`
	Description         string     `json:"description"`
	Criteria            string     `json:"criteria"`
	DocumentsRequired   []string   `json:"documents_required"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
}

func (s *ScholarshipCreate) toModel() *repository.Scholarship {
	scholarship := &repository.Scholarship{
		Title:               s.Title,
		Description:         s.Description,
		DocumentsRequired:   s.DocumentsRequired,
		ApplicationDeadline: s.ApplicationDeadline,
	}
	if s.Id != nil {
		scholarship.ID = *s.Id
	}
	return scholarship
}

func toScholarshipResponse(scholarship *repository.Scholarship) *Scholarship {
	if scholarship == nil {
		return nil
	}
	criteria := scholarship.Criteria()
	return &Scholarship{
		Id:                  scholarship.ID,
		Title:               scholarship.Title,
		Description:         scholarship.Description,
		MinCgpa:             criteria.MinCgpa,
		MaxIncome:           criteria.MaxIncome,
		RequiredCriteria:    criteria.RequiredCriteria,
		ExcludedProgrammes:  criteria.ExcludedProgrammes,
		DocumentsRequired:   scholarship.DocumentsRequired,
		ApplicationDeadline: scholarship.ApplicationDeadline,
	}
}

type ProfileInput struct {
	Cgpa            *decimal.Decimal `json:"cgpa" swaggertype:"string"`
	HouseholdIncome *decimal.Decimal `json:"household_income" swaggertype:"string"`
	Programme       string           `json:"programme"`
	Statement       string           `json:"statement"`
}

func (p ProfileInput) toProfile() engine.Profile {
	return engine.Profile{
		Cgpa:            p.Cgpa,
		HouseholdIncome: p.HouseholdIncome,
		Programme:       p.Programme,
		Statement:       p.Statement,
	}
}

type ApplicationCreate struct {
	ProfileInput
	Documents []string `json:"documents"`
}

func (a ApplicationCreate) toServiceInput() service.ApplicationCreate {
	return service.ApplicationCreate{
		Cgpa:            a.Cgpa,
		HouseholdIncome: a.HouseholdIncome,
		Programme:       a.Programme,
		Statement:       a.Statement,
		Documents:       a.Documents,
	}
}

type ApplicationSubmitted struct {
	Application *Application             `json:"application" binding:"required"`
	Eligibility engine.EligibilityResult `json:"eligibility" binding:"required"`
}
