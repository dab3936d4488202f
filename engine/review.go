package engine

import (
	"context"
	"fmt"
	"strings"

	"scholarship/metrics"
)

type ReviewSubmission struct {
	ApplicationID int
	ReviewerID    int
	Score         int
	Decision      Decision
	Comment       string
}

func (s ReviewSubmission) validate(scale Scale) error {
	if !scale.Contains(s.Score) {
		return fmt.Errorf("%w: score %d outside [%d, %d]", ErrValidation, s.Score, scale.Min, scale.Max)
	}
	if !s.Decision.Valid() {
		return fmt.Errorf("%w: decision must be %s or %s", ErrValidation, DecisionPass, DecisionFail)
	}
	return nil
}

// SubmitReview writes the reviewer's score, decision and comment into their
// slot. A slot can only be written once. When the last assigned review comes
// in the application moves to REVIEWED.
func (e *Engine) SubmitReview(ctx context.Context, submission ReviewSubmission) (Summary, error) {
	if err := submission.validate(e.policy.Scale); err != nil {
		return Summary{}, err
	}

	var summary Summary
	j := &journal{}
	err := e.withApplication(ctx, "submit_review", submission.ApplicationID, func(store Store) error {
		app, err := loadApplication(ctx, store, submission.ApplicationID)
		if err != nil {
			return err
		}
		if app.Status.Terminal() {
			return fmt.Errorf("%w: application %d is %s", ErrAlreadyDecided, app.ID, app.Status)
		}
		records, err := store.LoadReviewRecords(ctx, app.ID)
		if err != nil {
			return err
		}
		var record *ReviewRecord
		for _, r := range records {
			if r.ReviewerID == submission.ReviewerID {
				record = r
				break
			}
		}
		if record == nil {
			return fmt.Errorf("%w: reviewer %d, application %d", ErrNotAssigned, submission.ReviewerID, app.ID)
		}
		if record.Touched() {
			return fmt.Errorf("%w: reviewer %d, application %d", ErrAlreadySubmitted, submission.ReviewerID, app.ID)
		}

		updated := *record
		score := submission.Score
		decision := submission.Decision
		now := e.now()
		updated.Score = &score
		updated.Decision = &decision
		updated.SubmittedAt = &now
		if comment := strings.TrimSpace(submission.Comment); comment != "" {
			updated.Comment = &comment
		}
		if err := store.SaveReviewRecord(ctx, &updated); err != nil {
			return err
		}
		*record = updated

		summary = Summarize(records, e.policy.Scale)
		j.audit(AuditEntry{
			Action:        "submit_review",
			Message:       fmt.Sprintf("reviewer %d scored application %d with %d (%s)", submission.ReviewerID, app.ID, score, decision),
			ActorID:       submission.ReviewerID,
			ApplicationID: app.ID,
		})
		if !summary.IsComplete {
			return nil
		}
		events := []Event{EventReviewsComplete}
		switch app.Status {
		case StatusAssigned:
		case StatusSubmitted:
			// Slots exist but the ASSIGN status write never landed.
			events = []Event{EventAssign, EventReviewsComplete}
		default:
			return nil
		}
		status := app.Status
		outcomes := make([]Outcome, 0, len(events))
		for _, event := range events {
			outcome, err := Transition(status, event, e.policy)
			if err != nil {
				return err
			}
			outcomes = append(outcomes, outcome)
			status = outcome.To
		}
		if err := store.SaveApplicationStatus(ctx, app.ID, status); err != nil {
			return err
		}
		for _, outcome := range outcomes {
			j.transition(app.ID, submission.ReviewerID, outcome, now)
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	metrics.ReviewsSubmittedCounter.WithLabelValues(string(submission.Decision)).Inc()
	e.flush(ctx, j)
	return summary, nil
}

// Summary aggregates the current review state of an application. It reads
// without taking the application lock.
func (e *Engine) Summary(ctx context.Context, applicationID int) (Summary, error) {
	app, err := loadApplication(ctx, e.store, applicationID)
	if err != nil {
		return Summary{}, err
	}
	records, err := e.store.LoadReviewRecords(ctx, app.ID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(records, e.policy.Scale), nil
}
