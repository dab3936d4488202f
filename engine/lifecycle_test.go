package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var strict = Policy{Scale: DefaultScale()}
var permissive = Policy{Scale: DefaultScale(), AllowPrematureDecision: true}

func TestTransitionLegalPaths(t *testing.T) {
	cases := []struct {
		from  Status
		event Event
		to    Status
	}{
		{StatusSubmitted, EventAssign, StatusAssigned},
		{StatusAssigned, EventAssign, StatusAssigned},
		{StatusAssigned, EventReviewsComplete, StatusReviewed},
		{StatusReviewed, EventAccept, StatusAccepted},
		{StatusReviewed, EventReject, StatusRejected},
	}
	for _, c := range cases {
		outcome, err := Transition(c.from, c.event, strict)
		assert.NoError(t, err, "%s on %s", c.event, c.from)
		assert.Equal(t, Outcome{From: c.from, To: c.to}, outcome)
	}
}

func TestTransitionIllegalPaths(t *testing.T) {
	cases := []struct {
		from  Status
		event Event
	}{
		{StatusSubmitted, EventReviewsComplete},
		{StatusReviewed, EventAssign},
		{StatusReviewed, EventReviewsComplete},
		{Status(""), EventAssign},
		{StatusAssigned, Event("UNKNOWN")},
	}
	for _, c := range cases {
		outcome, err := Transition(c.from, c.event, permissive)
		assert.ErrorIs(t, err, ErrIllegalTransition, "%s on %s", c.event, c.from)
		assert.Equal(t, c.from, outcome.To)
		assert.False(t, outcome.Changed())
	}
}

func TestTransitionOutOfTerminalState(t *testing.T) {
	for _, from := range []Status{StatusAccepted, StatusRejected} {
		for _, event := range []Event{EventAssign, EventReviewsComplete, EventAccept, EventReject} {
			outcome, err := Transition(from, event, permissive)
			assert.ErrorIs(t, err, ErrAlreadyDecided)
			assert.ErrorIs(t, err, ErrIllegalTransition)
			assert.Equal(t, from, outcome.To)
		}
	}
}

func TestTransitionPrematureDecisionStrict(t *testing.T) {
	for _, from := range []Status{StatusSubmitted, StatusAssigned} {
		for _, event := range []Event{EventAccept, EventReject} {
			outcome, err := Transition(from, event, strict)
			assert.ErrorIs(t, err, ErrPrematureDecision)
			assert.Equal(t, from, outcome.To)
		}
	}
}

func TestTransitionPrematureDecisionPermissive(t *testing.T) {
	outcome, err := Transition(StatusAssigned, EventAccept, permissive)
	assert.NoError(t, err)
	assert.Equal(t, Outcome{From: StatusAssigned, To: StatusAccepted, Premature: true}, outcome)

	outcome, err = Transition(StatusSubmitted, EventReject, permissive)
	assert.NoError(t, err)
	assert.Equal(t, Outcome{From: StatusSubmitted, To: StatusRejected, Premature: true}, outcome)

	outcome, err = Transition(StatusReviewed, EventAccept, permissive)
	assert.NoError(t, err)
	assert.False(t, outcome.Premature)
}

func TestStatusHelpers(t *testing.T) {
	assert.True(t, StatusAccepted.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.False(t, StatusReviewed.Terminal())
	assert.True(t, StatusSubmitted.Valid())
	assert.False(t, Status("None").Valid())
	assert.True(t, DecisionPass.Valid())
	assert.False(t, Decision("Maybe").Valid())
}
