package repository

import (
	"time"

	"scholarship/engine"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type Review struct {
	ID            int              `gorm:"primaryKey;autoIncrement"`
	ApplicationID int              `gorm:"not null;uniqueIndex:idx_reviews_application_reviewer,priority:1"`
	ReviewerID    int              `gorm:"not null;uniqueIndex:idx_reviews_application_reviewer,priority:2;index"`
	Score         *int             `gorm:"null"`
	Decision      *engine.Decision `gorm:"type:varchar(10);null"`
	Comment       *string          `gorm:"type:text;null"`
	SubmittedAt   *time.Time       `gorm:"null"`
	CreatedAt     time.Time

	Application *Application `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE;"`
	Reviewer    *User        `gorm:"foreignKey:ReviewerID;constraint:OnDelete:RESTRICT;"`
}

func (r *Review) toEngine() *engine.ReviewRecord {
	return &engine.ReviewRecord{
		ID:            r.ID,
		ApplicationID: r.ApplicationID,
		ReviewerID:    r.ReviewerID,
		Score:         r.Score,
		Decision:      r.Decision,
		Comment:       r.Comment,
		SubmittedAt:   r.SubmittedAt,
	}
}

func reviewFromEngine(record *engine.ReviewRecord) *Review {
	return &Review{
		ID:            record.ID,
		ApplicationID: record.ApplicationID,
		ReviewerID:    record.ReviewerID,
		Score:         record.Score,
		Decision:      record.Decision,
		Comment:       record.Comment,
		SubmittedAt:   record.SubmittedAt,
	}
}

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) GetReviewsForApplication(applicationId int) ([]*Review, error) {
	reviews := make([]*Review, 0)
	result := r.DB.Preload("Reviewer").Where("application_id = ?", applicationId).Order("reviewer_id").Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}
	return reviews, nil
}

func (r *ReviewRepository) GetReviewsForReviewer(reviewerId int) ([]*Review, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetReviewsForReviewer"))
	defer timer.ObserveDuration()
	reviews := make([]*Review, 0)
	result := r.DB.Preload("Application").Preload("Application.Scholarship").
		Where("reviewer_id = ?", reviewerId).
		Order("created_at DESC, id DESC").
		Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}
	return reviews, nil
}

// GetRankingForReviewer returns the reviewer's scored reviews, best first.
func (r *ReviewRepository) GetRankingForReviewer(reviewerId int) ([]*Review, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetRankingForReviewer"))
	defer timer.ObserveDuration()
	reviews := make([]*Review, 0)
	result := r.DB.Preload("Application").Preload("Application.Scholarship").
		Where("reviewer_id = ? AND score IS NOT NULL", reviewerId).
		Order("score DESC, application_id").
		Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}
	return reviews, nil
}
