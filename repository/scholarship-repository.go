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

type Scholarship struct {
	ID                  int                 `gorm:"primaryKey;autoIncrement"`
	Title               string              `gorm:"not null"`
	Description         string              `gorm:"type:text"`
	MinCgpa             decimal.NullDecimal `gorm:"type:numeric(4,2)"`
	MaxIncome           *int64              `gorm:"null"`
	RequiredCriteria    []string            `gorm:"serializer:json;type:text"`
	ExcludedProgrammes  []string            `gorm:"serializer:json;type:text"`
	DocumentsRequired   []string            `gorm:"serializer:json;type:text"`
	ApplicationDeadline *time.Time          `gorm:"null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (s *Scholarship) Criteria() engine.Criteria {
	criteria := engine.Criteria{
		MaxIncome:          s.MaxIncome,
		RequiredCriteria:   s.RequiredCriteria,
		ExcludedProgrammes: s.ExcludedProgrammes,
	}
	if s.MinCgpa.Valid {
		minCgpa := s.MinCgpa.Decimal
		criteria.MinCgpa = &minCgpa
	}
	return criteria
}

func (s *Scholarship) SetCriteria(criteria engine.Criteria) {
	s.MinCgpa = decimal.NullDecimal{}
	if criteria.MinCgpa != nil {
		s.MinCgpa = decimal.NewNullDecimal(*criteria.MinCgpa)
	}
	s.MaxIncome = criteria.MaxIncome
	s.RequiredCriteria = criteria.RequiredCriteria
	s.ExcludedProgrammes = criteria.ExcludedProgrammes
}

// Closed reports whether the application deadline lies before t.
func (s *Scholarship) Closed(t time.Time) bool {
	return s.ApplicationDeadline != nil && s.ApplicationDeadline.Before(t)
}

type ScholarshipRepository struct {
	DB *gorm.DB
}

func NewScholarshipRepository(db *gorm.DB) *ScholarshipRepository {
	return &ScholarshipRepository{DB: db}
}

func (r *ScholarshipRepository) GetScholarships() ([]*Scholarship, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetScholarships"))
	defer timer.ObserveDuration()
	scholarships := make([]*Scholarship, 0)
	result := r.DB.Order("id").Find(&scholarships)
	if result.Error != nil {
		return nil, result.Error
	}
	return scholarships, nil
}

func (r *ScholarshipRepository) GetScholarshipById(id int) (*Scholarship, error) {
	var scholarship Scholarship
	result := r.DB.First(&scholarship, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("scholarship %d: %w", id, engine.ErrNotFound)
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &scholarship, nil
}

func (r *ScholarshipRepository) SaveScholarship(scholarship *Scholarship) (*Scholarship, error) {
	result := r.DB.Save(scholarship)
	if result.Error != nil {
		return nil, result.Error
	}
	return scholarship, nil
}
