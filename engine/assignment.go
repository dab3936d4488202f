package engine

import (
	"context"
	"fmt"
	"sort"

	"scholarship/metrics"
	"scholarship/utils"
)

type AssignmentResult struct {
	Added           int    `json:"added"`
	AlreadyAssigned []int  `json:"already_assigned"`
	Status          Status `json:"status"`
}

// AssignReviewers creates an empty review slot for every requested reviewer
// that does not have one yet. Existing slots are left untouched, so repeating
// a request is harmless. The first assignment moves the application to
// ASSIGNED.
func (e *Engine) AssignReviewers(ctx context.Context, applicationID int, reviewerIDs []int, actorID int) (AssignmentResult, error) {
	requested := uniqueIds(reviewerIDs)
	if len(requested) == 0 {
		return AssignmentResult{}, fmt.Errorf("%w: no reviewers given", ErrValidation)
	}

	var result AssignmentResult
	j := &journal{}
	err := e.withApplication(ctx, "assign", applicationID, func(store Store) error {
		app, err := loadApplication(ctx, store, applicationID)
		if err != nil {
			return err
		}
		for _, reviewerID := range requested {
			ok, err := e.reviewers.IsReviewer(ctx, reviewerID)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: user %d", ErrInvalidReviewer, reviewerID)
			}
		}

		records, err := store.LoadReviewRecords(ctx, applicationID)
		if err != nil {
			return err
		}
		existing := make(map[int]bool, len(records))
		for _, record := range records {
			existing[record.ReviewerID] = true
		}

		result = AssignmentResult{AlreadyAssigned: make([]int, 0), Status: app.Status}
		added := make([]int, 0, len(requested))
		for _, reviewerID := range requested {
			if existing[reviewerID] {
				result.AlreadyAssigned = append(result.AlreadyAssigned, reviewerID)
			} else {
				added = append(added, reviewerID)
			}
		}
		// Slots on a SUBMITTED application are left over from an assignment
		// whose status write failed; the ASSIGN step is still owed.
		stranded := app.Status == StatusSubmitted && len(records) > 0
		if len(added) == 0 && !stranded {
			return nil
		}

		outcome, err := Transition(app.Status, EventAssign, e.policy)
		if err != nil {
			return err
		}
		if outcome.Changed() {
			if err := store.SaveApplicationStatus(ctx, applicationID, outcome.To); err != nil {
				return err
			}
			j.transition(applicationID, actorID, outcome, e.now())
		}
		for _, reviewerID := range added {
			if err := store.SaveReviewRecord(ctx, &ReviewRecord{ApplicationID: applicationID, ReviewerID: reviewerID}); err != nil {
				return err
			}
		}
		result.Status = outcome.To
		if len(added) == 0 {
			return nil
		}
		result.Added = len(added)
		j.audit(AuditEntry{
			Action:        "assign_reviewers",
			Message:       fmt.Sprintf("assigned reviewers %v to application %d", added, applicationID),
			ActorID:       actorID,
			ApplicationID: applicationID,
		})
		return nil
	})
	if err != nil {
		return AssignmentResult{}, err
	}
	metrics.ReviewersAssignedCounter.Add(float64(result.Added))
	e.flush(ctx, j)
	return result, nil
}

func uniqueIds(ids []int) []int {
	unique := utils.Uniques(ids)
	sort.Ints(unique)
	return unique
}
