package service

import (
	"context"

	"scholarship/report"

	"gorm.io/gorm"
)

type ReportService struct {
	reporter *report.Reporter
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{reporter: report.NewReporter(db)}
}

func (s *ReportService) Overview(ctx context.Context, scholarshipId *int) (*report.Overview, error) {
	return s.reporter.Overview(ctx, report.Filter{ScholarshipID: scholarshipId})
}
