package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitted(reviewerID, score int, decision Decision) *ReviewRecord {
	return &ReviewRecord{ApplicationID: 1, ReviewerID: reviewerID, Score: &score, Decision: &decision}
}

func pending(reviewerID int) *ReviewRecord {
	return &ReviewRecord{ApplicationID: 1, ReviewerID: reviewerID}
}

func TestSummarizeWithoutAssignments(t *testing.T) {
	summary := Summarize(nil, DefaultScale())

	assert.Nil(t, summary.AverageScore)
	assert.Equal(t, 0, summary.FailCount)
	assert.Equal(t, 0, summary.AssignedCount)
	assert.Equal(t, 0, summary.ReviewedCount)
	assert.False(t, summary.IsComplete)
}

func TestSummarizeWithoutSubmissions(t *testing.T) {
	summary := Summarize([]*ReviewRecord{pending(7), pending(8)}, DefaultScale())

	assert.Nil(t, summary.AverageScore, "no reviews must not read as a score of 0")
	assert.Equal(t, 0, summary.FailCount)
	assert.Equal(t, 2, summary.AssignedCount)
	assert.Equal(t, 0, summary.ReviewedCount)
	assert.False(t, summary.IsComplete)
}

func TestSummarizePartial(t *testing.T) {
	summary := Summarize([]*ReviewRecord{submitted(7, 80, DecisionPass), pending(8)}, DefaultScale())

	require.NotNil(t, summary.AverageScore)
	assert.True(t, decimal.NewFromInt(80).Equal(*summary.AverageScore))
	assert.Equal(t, 1, summary.ReviewedCount)
	assert.Equal(t, 2, summary.AssignedCount)
	assert.False(t, summary.IsComplete)
}

func TestSummarizeComplete(t *testing.T) {
	summary := Summarize([]*ReviewRecord{submitted(7, 80, DecisionPass), submitted(8, 40, DecisionFail)}, DefaultScale())

	require.NotNil(t, summary.AverageScore)
	assert.Equal(t, "60", summary.AverageScore.String())
	assert.Equal(t, 1, summary.FailCount)
	assert.Equal(t, 2, summary.ReviewedCount)
	assert.True(t, summary.IsComplete)
}

func TestSummarizeFailCount(t *testing.T) {
	records := []*ReviewRecord{
		// decision fail, score passes
		submitted(1, 90, DecisionFail),
		// decision pass, score below threshold
		submitted(2, 49, DecisionPass),
		// both fail, counted once
		submitted(3, 10, DecisionFail),
		// score exactly at threshold passes
		submitted(4, 50, DecisionPass),
	}

	summary := Summarize(records, DefaultScale())

	assert.Equal(t, 3, summary.FailCount)
	assert.Equal(t, "49.75", summary.AverageScore.String())
}

func TestSummarizeUsesConfiguredScale(t *testing.T) {
	scale := Scale{Min: 0, Max: 5, PassThreshold: 3}
	records := []*ReviewRecord{submitted(1, 2, DecisionPass), submitted(2, 5, DecisionPass), submitted(3, 4, DecisionPass)}

	summary := Summarize(records, scale)

	assert.Equal(t, 1, summary.FailCount)
	assert.Equal(t, "3.6666666666666667", summary.AverageScore.String())
}

func TestSummarizeHalfWrittenRecordIsNotReviewed(t *testing.T) {
	decision := DecisionFail
	records := []*ReviewRecord{{ApplicationID: 1, ReviewerID: 1, Decision: &decision}}

	summary := Summarize(records, DefaultScale())

	assert.Nil(t, summary.AverageScore)
	assert.Equal(t, 0, summary.ReviewedCount)
	assert.Equal(t, 1, summary.FailCount)
	assert.False(t, summary.IsComplete)
}

func TestScaleValidate(t *testing.T) {
	assert.NoError(t, DefaultScale().Validate())
	assert.NoError(t, Scale{Min: 0, Max: 5, PassThreshold: 5}.Validate())
	assert.ErrorIs(t, Scale{Min: 5, Max: 5, PassThreshold: 5}.Validate(), ErrValidation)
	assert.ErrorIs(t, Scale{Min: 0, Max: 5, PassThreshold: 6}.Validate(), ErrValidation)
	assert.ErrorIs(t, Scale{Min: 1, Max: 5, PassThreshold: 0}.Validate(), ErrValidation)
}
