package engine

import "fmt"

type Event string

const (
	EventAssign          Event = "ASSIGN"
	EventReviewsComplete Event = "REVIEWS_COMPLETE"
	EventAccept          Event = "ACCEPT"
	EventReject          Event = "REJECT"
)

func (e Event) IsDecision() bool {
	return e == EventAccept || e == EventReject
}

type Outcome struct {
	From Status `json:"from"`
	To   Status `json:"to"`
	// Premature is set when a decision was taken before the application
	// reached REVIEWED. Only possible when the policy allows it.
	Premature bool `json:"premature"`
}

func (o Outcome) Changed() bool {
	return o.From != o.To
}

var decisionTargets = map[Event]Status{
	EventAccept: StatusAccepted,
	EventReject: StatusRejected,
}

// Transition computes the status reached by applying event to from. On error
// the returned outcome keeps the current status.
func Transition(from Status, event Event, policy Policy) (Outcome, error) {
	unchanged := Outcome{From: from, To: from}
	if from.Terminal() {
		return unchanged, fmt.Errorf("%w: %w: %s on %s", ErrAlreadyDecided, ErrIllegalTransition, event, from)
	}
	switch event {
	case EventAssign:
		if from == StatusSubmitted || from == StatusAssigned {
			return Outcome{From: from, To: StatusAssigned}, nil
		}
	case EventReviewsComplete:
		if from == StatusAssigned {
			return Outcome{From: from, To: StatusReviewed}, nil
		}
	case EventAccept, EventReject:
		to := decisionTargets[event]
		switch from {
		case StatusReviewed:
			return Outcome{From: from, To: to}, nil
		case StatusSubmitted, StatusAssigned:
			if !policy.AllowPrematureDecision {
				return unchanged, fmt.Errorf("%w: application is %s", ErrPrematureDecision, from)
			}
			return Outcome{From: from, To: to, Premature: true}, nil
		}
	}
	return unchanged, fmt.Errorf("%w: %s on %s", ErrIllegalTransition, event, from)
}
