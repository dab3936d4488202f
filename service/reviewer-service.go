package service

import (
	"scholarship/repository"
	"scholarship/utils"

	"gorm.io/gorm"
)

type ReviewerDashboard struct {
	Assigned  int
	Pending   int
	Submitted int
	Reviews   []*repository.Review
}

type ReviewerService struct {
	reviewRepository *repository.ReviewRepository
}

func NewReviewerService(db *gorm.DB) *ReviewerService {
	return &ReviewerService{
		reviewRepository: repository.NewReviewRepository(db),
	}
}

func (s *ReviewerService) Dashboard(reviewerId int) (*ReviewerDashboard, error) {
	reviews, err := s.reviewRepository.GetReviewsForReviewer(reviewerId)
	if err != nil {
		return nil, err
	}
	return dashboard(reviews), nil
}

func dashboard(reviews []*repository.Review) *ReviewerDashboard {
	submitted := utils.Filter(reviews, func(review *repository.Review) bool {
		return review.Score != nil && review.Decision != nil
	})
	return &ReviewerDashboard{
		Assigned:  len(reviews),
		Pending:   len(reviews) - len(submitted),
		Submitted: len(submitted),
		Reviews:   reviews,
	}
}

// Ranking lists the applications the reviewer scored, highest score first.
func (s *ReviewerService) Ranking(reviewerId int) ([]*repository.Review, error) {
	return s.reviewRepository.GetRankingForReviewer(reviewerId)
}
