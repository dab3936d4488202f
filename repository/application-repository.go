package repository

import (
	"errors"
	"fmt"
	"time"

	"scholarship/engine"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Application struct {
	ID              int                 `gorm:"primaryKey;autoIncrement"`
	StudentID       int                 `gorm:"not null;index"`
	ScholarshipID   int                 `gorm:"not null;index"`
	Status          engine.Status       `gorm:"type:varchar(20);not null;default:'SUBMITTED';index"`
	Cgpa            decimal.NullDecimal `gorm:"type:numeric(4,2)"`
	HouseholdIncome decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	Programme       string              `gorm:"not null;default:''"`
	Statement       string              `gorm:"type:text"`
	Documents       []string            `gorm:"serializer:json;type:text"`
	SubmittedAt     time.Time           `gorm:"not null"`

	Student     *User        `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE;"`
	Scholarship *Scholarship `gorm:"foreignKey:ScholarshipID;constraint:OnDelete:CASCADE;"`
}

func (a *Application) Profile() engine.Profile {
	profile := engine.Profile{Programme: a.Programme, Statement: a.Statement}
	if a.Cgpa.Valid {
		cgpa := a.Cgpa.Decimal
		profile.Cgpa = &cgpa
	}
	if a.HouseholdIncome.Valid {
		householdIncome := a.HouseholdIncome.Decimal
		profile.HouseholdIncome = &householdIncome
	}
	return profile
}

func (a *Application) toEngine() *engine.Application {
	return &engine.Application{
		ID:            a.ID,
		StudentID:     a.StudentID,
		ScholarshipID: a.ScholarshipID,
		Status:        a.Status,
		SubmittedAt:   a.SubmittedAt,
	}
}

type ApplicationRepository struct {
	DB *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

func (r *ApplicationRepository) CreateApplication(application *Application) (*Application, error) {
	if application.Status == "" {
		application.Status = engine.StatusSubmitted
	}
	result := r.DB.Create(application)
	if result.Error != nil {
		return nil, result.Error
	}
	return application, nil
}

func (r *ApplicationRepository) GetApplicationById(id int, preloads ...string) (*Application, error) {
	var application Application
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&application, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("application %d: %w", id, engine.ErrNotFound)
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &application, nil
}

func (r *ApplicationRepository) GetApplicationsForStudent(studentId int) ([]*Application, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetApplicationsForStudent"))
	defer timer.ObserveDuration()
	applications := make([]*Application, 0)
	result := r.DB.Preload("Scholarship").Where("student_id = ?", studentId).Order("submitted_at DESC").Find(&applications)
	if result.Error != nil {
		return nil, result.Error
	}
	return applications, nil
}

func (r *ApplicationRepository) HasApplied(studentId int, scholarshipId int) (bool, error) {
	var count int64
	result := r.DB.Model(&Application{}).Where("student_id = ? AND scholarship_id = ?", studentId, scholarshipId).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
