package engine

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	ReasonCgpaBelowMinimum  = "CGPA below minimum"
	ReasonIncomeExceedsMax  = "Household income exceeds maximum"
	ReasonProgrammeExcluded = "Programme excluded"
)

type EligibilityResult struct {
	Eligible      bool     `json:"eligible"`
	FailedReasons []string `json:"failed_reasons"`
	// Advisories are the free text requirements of the scholarship. They are
	// shown to the applicant and never fail the match.
	Advisories []string `json:"advisories"`
}

// Evaluate checks the hard numeric and programme rules of criteria against
// profile. Every failing rule is reported.
func Evaluate(criteria Criteria, profile Profile) EligibilityResult {
	result := EligibilityResult{
		FailedReasons: make([]string, 0),
		Advisories:    make([]string, 0, len(criteria.RequiredCriteria)),
	}
	if criteria.MinCgpa != nil {
		if profile.Cgpa == nil || profile.Cgpa.LessThan(*criteria.MinCgpa) {
			result.FailedReasons = append(result.FailedReasons, ReasonCgpaBelowMinimum)
		}
	}
	if criteria.MaxIncome != nil {
		maxIncome := decimal.NewFromInt(*criteria.MaxIncome)
		if profile.HouseholdIncome == nil || profile.HouseholdIncome.GreaterThan(maxIncome) {
			result.FailedReasons = append(result.FailedReasons, ReasonIncomeExceedsMax)
		}
	}
	if programmeExcluded(criteria.ExcludedProgrammes, profile.Programme) {
		result.FailedReasons = append(result.FailedReasons, ReasonProgrammeExcluded)
	}
	for _, line := range criteria.RequiredCriteria {
		if line = strings.TrimSpace(line); line != "" {
			result.Advisories = append(result.Advisories, line)
		}
	}
	result.Eligible = len(result.FailedReasons) == 0
	return result
}

func programmeExcluded(excluded []string, programme string) bool {
	programme = strings.TrimSpace(programme)
	if programme == "" {
		return false
	}
	for _, candidate := range excluded {
		if strings.EqualFold(strings.TrimSpace(candidate), programme) {
			return true
		}
	}
	return false
}
