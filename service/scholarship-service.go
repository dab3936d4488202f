package service

import (
	"scholarship/criteria"
	"scholarship/repository"

	"gorm.io/gorm"
)

type ScholarshipService struct {
	scholarshipRepository *repository.ScholarshipRepository
}

func NewScholarshipService(db *gorm.DB) *ScholarshipService {
	return &ScholarshipService{
		scholarshipRepository: repository.NewScholarshipRepository(db),
	}
}

func (s *ScholarshipService) GetScholarships() ([]*repository.Scholarship, error) {
	return s.scholarshipRepository.GetScholarships()
}

func (s *ScholarshipService) GetScholarship(id int) (*repository.Scholarship, error) {
	return s.scholarshipRepository.GetScholarshipById(id)
}

// SaveScholarship stores the scholarship with its eligibility criteria parsed
// from the raw document the administrator entered.
func (s *ScholarshipService) SaveScholarship(scholarship *repository.Scholarship, rawCriteria string) (*repository.Scholarship, error) {
	c, err := criteria.Normalize([]byte(rawCriteria))
	if err != nil {
		return nil, err
	}
	if scholarship.ID != 0 {
		existing, err := s.scholarshipRepository.GetScholarshipById(scholarship.ID)
		if err != nil {
			return nil, err
		}
		scholarship.CreatedAt = existing.CreatedAt
	}
	scholarship.SetCriteria(c)
	return s.scholarshipRepository.SaveScholarship(scholarship)
}
