package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusSubmitted Status = "SUBMITTED"
	StatusAssigned  Status = "ASSIGNED"
	StatusReviewed  Status = "REVIEWED"
	StatusAccepted  Status = "ACCEPTED"
	StatusRejected  Status = "REJECTED"
)

var Statuses = []Status{StatusSubmitted, StatusAssigned, StatusReviewed, StatusAccepted, StatusRejected}

// Terminal reports whether no further transition is permitted out of s.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

func (s Status) Valid() bool {
	for _, status := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

type Decision string

const (
	DecisionPass Decision = "PASS"
	DecisionFail Decision = "FAIL"
)

func (d Decision) Valid() bool {
	return d == DecisionPass || d == DecisionFail
}

// Criteria is the structured eligibility snapshot of a scholarship. A nil
// threshold means the scholarship places no constraint on that attribute.
type Criteria struct {
	MinCgpa            *decimal.Decimal `json:"min_cgpa,omitempty"`
	MaxIncome          *int64           `json:"max_income,omitempty"`
	RequiredCriteria   []string         `json:"required_criteria,omitempty"`
	ExcludedProgrammes []string         `json:"excluded_programmes,omitempty"`
}

// Profile is the part of an application the eligibility rules look at.
type Profile struct {
	Cgpa            *decimal.Decimal
	HouseholdIncome *decimal.Decimal
	Programme       string
	Statement       string
}

type Application struct {
	ID            int
	StudentID     int
	ScholarshipID int
	Status        Status
	SubmittedAt   time.Time
}

// ReviewRecord is one reviewer's slot on one application. It is created empty
// on assignment and written exactly once when the reviewer submits.
type ReviewRecord struct {
	ID            int
	ApplicationID int
	ReviewerID    int
	Score         *int
	Decision      *Decision
	Comment       *string
	SubmittedAt   *time.Time
}

// Submitted reports whether both score and decision have been recorded.
func (r *ReviewRecord) Submitted() bool {
	return r.Score != nil && r.Decision != nil
}

// Touched reports whether any part of the review has been written.
func (r *ReviewRecord) Touched() bool {
	return r.Score != nil || r.Decision != nil
}

// Failing is true when the reviewer decided FAIL or scored under the pass
// threshold. A record failing for both reasons still counts once.
func (r *ReviewRecord) Failing(scale Scale) bool {
	if r.Decision != nil && *r.Decision == DecisionFail {
		return true
	}
	return r.Score != nil && *r.Score < scale.PassThreshold
}

// Scale is the canonical score range used by every reviewer.
type Scale struct {
	Min           int `json:"min" yaml:"min"`
	Max           int `json:"max" yaml:"max"`
	PassThreshold int `json:"pass_threshold" yaml:"pass_threshold"`
}

func DefaultScale() Scale {
	return Scale{Min: 0, Max: 100, PassThreshold: 50}
}

func (s Scale) Validate() error {
	if s.Min >= s.Max {
		return fmt.Errorf("%w: scale min %d must be below max %d", ErrValidation, s.Min, s.Max)
	}
	if s.PassThreshold < s.Min || s.PassThreshold > s.Max {
		return fmt.Errorf("%w: pass threshold %d outside scale [%d, %d]", ErrValidation, s.PassThreshold, s.Min, s.Max)
	}
	return nil
}

func (s Scale) Contains(score int) bool {
	return score >= s.Min && score <= s.Max
}

// Policy configures the review process. AllowPrematureDecision lets the
// committee decide an application before every assigned review is in.
type Policy struct {
	Scale                  Scale `json:"scale" yaml:"scale"`
	AllowPrematureDecision bool  `json:"allow_premature_decision" yaml:"allow_premature_decision"`
}

func DefaultPolicy() Policy {
	return Policy{Scale: DefaultScale()}
}
