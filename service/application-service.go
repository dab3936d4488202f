package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"scholarship/app_error"
	"scholarship/engine"
	"scholarship/metrics"
	"scholarship/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrDeadlinePassed = fmt.Errorf("%w: application deadline has passed", engine.ErrValidation)
var ErrDuplicateApplication = app_error.New(errors.New("student already applied to this scholarship"), http.StatusConflict)

type ApplicationCreate struct {
	Cgpa            *decimal.Decimal
	HouseholdIncome *decimal.Decimal
	Programme       string
	Statement       string
	Documents       []string
}

func (a ApplicationCreate) Profile() engine.Profile {
	return engine.Profile{
		Cgpa:            a.Cgpa,
		HouseholdIncome: a.HouseholdIncome,
		Programme:       a.Programme,
		Statement:       a.Statement,
	}
}

var (
	maxCgpa            = decimal.NewFromInt(100)
	maxHouseholdIncome = decimal.New(1, 12)
)

// validateProfile keeps profile numbers within the precision of the
// applications table so that a stored profile evaluates like the submitted one.
func validateProfile(profile engine.Profile) error {
	if err := validateAmount("cgpa", profile.Cgpa, maxCgpa); err != nil {
		return err
	}
	return validateAmount("household_income", profile.HouseholdIncome, maxHouseholdIncome)
}

func validateAmount(field string, value *decimal.Decimal, max decimal.Decimal) error {
	if value == nil {
		return nil
	}
	if value.IsNegative() || value.GreaterThanOrEqual(max) {
		return fmt.Errorf("%w: %s must be between 0 and %s", engine.ErrValidation, field, max)
	}
	if !value.Equal(value.Round(2)) {
		return fmt.Errorf("%w: %s allows at most two decimal places", engine.ErrValidation, field)
	}
	return nil
}

type ApplicationService struct {
	applicationRepository *repository.ApplicationRepository
	scholarshipRepository *repository.ScholarshipRepository
	reviewRepository      *repository.ReviewRepository
	engine                *engine.Engine
	now                   func() time.Time
}

func NewApplicationService(db *gorm.DB, e *engine.Engine) *ApplicationService {
	return &ApplicationService{
		applicationRepository: repository.NewApplicationRepository(db),
		scholarshipRepository: repository.NewScholarshipRepository(db),
		reviewRepository:      repository.NewReviewRepository(db),
		engine:                e,
		now:                   time.Now,
	}
}

// Submit stores a new application in SUBMITTED. The eligibility result is
// returned for display and does not block the submission.
func (s *ApplicationService) Submit(studentId int, scholarshipId int, input ApplicationCreate) (*repository.Application, engine.EligibilityResult, error) {
	if err := validateProfile(input.Profile()); err != nil {
		return nil, engine.EligibilityResult{}, err
	}
	scholarship, err := s.scholarshipRepository.GetScholarshipById(scholarshipId)
	if err != nil {
		return nil, engine.EligibilityResult{}, err
	}
	now := s.now()
	if scholarship.Closed(now) {
		return nil, engine.EligibilityResult{}, ErrDeadlinePassed
	}
	applied, err := s.applicationRepository.HasApplied(studentId, scholarshipId)
	if err != nil {
		return nil, engine.EligibilityResult{}, err
	}
	if applied {
		return nil, engine.EligibilityResult{}, ErrDuplicateApplication
	}

	application := &repository.Application{
		StudentID:     studentId,
		ScholarshipID: scholarshipId,
		Status:        engine.StatusSubmitted,
		Programme:     input.Programme,
		Statement:     input.Statement,
		Documents:     input.Documents,
		SubmittedAt:   now,
	}
	if input.Cgpa != nil {
		application.Cgpa = decimal.NewNullDecimal(*input.Cgpa)
	}
	if input.HouseholdIncome != nil {
		application.HouseholdIncome = decimal.NewNullDecimal(*input.HouseholdIncome)
	}
	application, err = s.applicationRepository.CreateApplication(application)
	if err != nil {
		return nil, engine.EligibilityResult{}, err
	}
	return application, evaluate(scholarship.Criteria(), application.Profile()), nil
}

func (s *ApplicationService) CheckEligibility(scholarshipId int, profile engine.Profile) (engine.EligibilityResult, error) {
	if err := validateProfile(profile); err != nil {
		return engine.EligibilityResult{}, err
	}
	scholarship, err := s.scholarshipRepository.GetScholarshipById(scholarshipId)
	if err != nil {
		return engine.EligibilityResult{}, err
	}
	return evaluate(scholarship.Criteria(), profile), nil
}

func evaluate(criteria engine.Criteria, profile engine.Profile) engine.EligibilityResult {
	result := engine.Evaluate(criteria, profile)
	if result.Eligible {
		metrics.EligibilityCheckCounter.WithLabelValues("eligible").Inc()
	} else {
		metrics.EligibilityCheckCounter.WithLabelValues("ineligible").Inc()
	}
	return result
}

func (s *ApplicationService) GetApplication(id int) (*repository.Application, error) {
	return s.applicationRepository.GetApplicationById(id, "Student", "Scholarship")
}

func (s *ApplicationService) GetReviews(applicationId int) ([]*repository.Review, error) {
	return s.reviewRepository.GetReviewsForApplication(applicationId)
}

func (s *ApplicationService) GetApplicationsForStudent(studentId int) ([]*repository.Application, error) {
	return s.applicationRepository.GetApplicationsForStudent(studentId)
}

func (s *ApplicationService) AssignReviewers(ctx context.Context, applicationId int, reviewerIds []int, actorId int) (engine.AssignmentResult, error) {
	return s.engine.AssignReviewers(ctx, applicationId, reviewerIds, actorId)
}

func (s *ApplicationService) SubmitReview(ctx context.Context, submission engine.ReviewSubmission) (engine.Summary, error) {
	return s.engine.SubmitReview(ctx, submission)
}

func (s *ApplicationService) Summary(ctx context.Context, applicationId int) (engine.Summary, error) {
	return s.engine.Summary(ctx, applicationId)
}

func (s *ApplicationService) Decide(ctx context.Context, applicationId int, committeeId int, verdict engine.Event) (engine.Outcome, error) {
	return s.engine.Decide(ctx, applicationId, committeeId, verdict)
}

func (s *ApplicationService) Scale() engine.Scale {
	return s.engine.Policy().Scale
}
