package repository

import (
	"context"
	"errors"
	"fmt"

	"scholarship/engine"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewStore is the engine's view of the database. Inside InTx every call
// runs on the transaction holding the application row lock.
type ReviewStore struct {
	DB *gorm.DB
}

var _ engine.TxStore = (*ReviewStore)(nil)

func NewReviewStore(db *gorm.DB) *ReviewStore {
	return &ReviewStore{DB: db}
}

func (s *ReviewStore) InTx(ctx context.Context, applicationId int, fn func(engine.Store) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked Application
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&locked, applicationId).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("application %d: %w", applicationId, engine.ErrNotFound)
		}
		if err != nil {
			return err
		}
		return fn(&ReviewStore{DB: tx})
	})
}

func (s *ReviewStore) LoadApplication(ctx context.Context, id int) (*engine.Application, error) {
	var application Application
	err := s.DB.WithContext(ctx).First(&application, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("application %d: %w", id, engine.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return application.toEngine(), nil
}

func (s *ReviewStore) LoadReviewRecords(ctx context.Context, applicationId int) ([]*engine.ReviewRecord, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("LoadReviewRecords"))
	defer timer.ObserveDuration()
	reviews := make([]*Review, 0)
	err := s.DB.WithContext(ctx).Where("application_id = ?", applicationId).Order("reviewer_id").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	records := make([]*engine.ReviewRecord, len(reviews))
	for i, review := range reviews {
		records[i] = review.toEngine()
	}
	return records, nil
}

func (s *ReviewStore) SaveReviewRecord(ctx context.Context, record *engine.ReviewRecord) error {
	review := reviewFromEngine(record)
	if review.ID == 0 {
		if err := s.DB.WithContext(ctx).Create(review).Error; err != nil {
			return err
		}
		record.ID = review.ID
		return nil
	}
	return s.DB.WithContext(ctx).Model(&Review{}).
		Where("id = ?", review.ID).
		Select("score", "decision", "comment", "submitted_at").
		Updates(review).Error
}

func (s *ReviewStore) SaveApplicationStatus(ctx context.Context, id int, status engine.Status) error {
	result := s.DB.WithContext(ctx).Model(&Application{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("application %d: %w", id, engine.ErrNotFound)
	}
	return nil
}
