package engine

import (
	"context"
	"fmt"
)

// Decide records the committee's final verdict. Whether an application that
// is not yet REVIEWED may be decided depends on Policy.AllowPrematureDecision.
func (e *Engine) Decide(ctx context.Context, applicationID int, committeeID int, verdict Event) (Outcome, error) {
	if !verdict.IsDecision() {
		return Outcome{}, fmt.Errorf("%w: verdict must be %s or %s", ErrValidation, EventAccept, EventReject)
	}

	var outcome Outcome
	j := &journal{}
	err := e.withApplication(ctx, "decide", applicationID, func(store Store) error {
		app, err := loadApplication(ctx, store, applicationID)
		if err != nil {
			return err
		}
		outcome, err = Transition(app.Status, verdict, e.policy)
		if err != nil {
			return err
		}
		if err := store.SaveApplicationStatus(ctx, app.ID, outcome.To); err != nil {
			return err
		}
		j.transition(app.ID, committeeID, outcome, e.now())
		message := fmt.Sprintf("committee member %d set application %d to %s", committeeID, app.ID, outcome.To)
		if outcome.Premature {
			message += fmt.Sprintf(" while still %s", outcome.From)
		}
		j.audit(AuditEntry{
			Action:        "decide",
			Message:       message,
			ActorID:       committeeID,
			ApplicationID: app.ID,
			Warning:       outcome.Premature,
		})
		return nil
	})
	if err != nil {
		return Outcome{}, err
	}
	if outcome.Premature {
		e.logger.Warn().Int("application_id", applicationID).Str("from", string(outcome.From)).Msg("decision taken before review completion")
	}
	e.flush(ctx, j)
	return outcome, nil
}
