package service

import (
	"testing"

	"scholarship/engine"
	"scholarship/repository"

	"github.com/stretchr/testify/assert"
)

func TestDashboardCounts(t *testing.T) {
	score := 70
	pass := engine.DecisionPass
	reviews := []*repository.Review{
		{ApplicationID: 1, ReviewerID: 7, Score: &score, Decision: &pass},
		{ApplicationID: 2, ReviewerID: 7},
		{ApplicationID: 3, ReviewerID: 7, Score: &score},
	}

	d := dashboard(reviews)
	assert.Equal(t, 3, d.Assigned)
	assert.Equal(t, 1, d.Submitted)
	assert.Equal(t, 2, d.Pending)
	assert.Len(t, d.Reviews, 3)
}

func TestDashboardEmpty(t *testing.T) {
	d := dashboard(nil)
	assert.Equal(t, 0, d.Assigned)
	assert.Equal(t, 0, d.Pending)
	assert.Equal(t, 0, d.Submitted)
}
