package engine

import "github.com/shopspring/decimal"

type Summary struct {
	// AverageScore is nil until at least one score exists. It is never zero
	// as a stand-in for "no reviews yet".
	AverageScore  *decimal.Decimal `json:"average_score"`
	FailCount     int              `json:"fail_count"`
	ReviewedCount int              `json:"reviewed_count"`
	AssignedCount int              `json:"assigned_count"`
	IsComplete    bool             `json:"is_complete"`
}

// Summarize aggregates the review records of one application. An application
// without assigned reviewers is never complete.
func Summarize(records []*ReviewRecord, scale Scale) Summary {
	summary := Summary{AssignedCount: len(records)}
	total := decimal.Zero
	scored := 0
	for _, record := range records {
		if record.Score != nil {
			total = total.Add(decimal.NewFromInt(int64(*record.Score)))
			scored++
		}
		if record.Submitted() {
			summary.ReviewedCount++
		}
		if record.Failing(scale) {
			summary.FailCount++
		}
	}
	if scored > 0 {
		average := total.Div(decimal.NewFromInt(int64(scored)))
		summary.AverageScore = &average
	}
	summary.IsComplete = summary.AssignedCount > 0 && summary.ReviewedCount == summary.AssignedCount
	return summary
}
