// Package criteria turns the eligibility text an administrator enters for a
// scholarship into engine.Criteria. Both structured documents (YAML or JSON,
// which YAML accepts) and legacy free text are understood.
package criteria

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"scholarship/engine"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var ErrInvalidCriteria = fmt.Errorf("%w: invalid criteria", engine.ErrValidation)

type document struct {
	MinCgpa            yaml.Node `yaml:"min_cgpa"`
	MaxIncome          yaml.Node `yaml:"max_income"`
	RequiredCriteria   []string  `yaml:"required_criteria"`
	ExcludedProgrammes []string  `yaml:"excluded_programmes"`
}

func (d document) empty() bool {
	return d.MinCgpa.IsZero() && d.MaxIncome.IsZero() && d.RequiredCriteria == nil && d.ExcludedProgrammes == nil
}

// Normalize parses raw criteria. A mapping with at least one known key is
// read as a structured document, a list of strings becomes the advisory
// requirements and anything else is treated as free text, one requirement
// per line.
func Normalize(raw []byte) (engine.Criteria, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return engine.Criteria{}, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil || len(root.Content) == 0 {
		return FromText(string(raw)), nil
	}
	node := root.Content[0]

	switch node.Kind {
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return engine.Criteria{}, fmt.Errorf("%w: %v", ErrInvalidCriteria, err)
		}
		if doc.empty() {
			return FromText(string(raw)), nil
		}
		return doc.criteria()
	case yaml.SequenceNode:
		var lines []string
		if err := node.Decode(&lines); err != nil {
			return FromText(string(raw)), nil
		}
		return engine.Criteria{RequiredCriteria: cleanLines(lines)}, nil
	default:
		return FromText(string(raw)), nil
	}
}

// FromText splits legacy free text into advisory requirements. Leading
// bullet markers are dropped.
func FromText(text string) engine.Criteria {
	return engine.Criteria{RequiredCriteria: cleanLines(strings.Split(text, "\n"))}
}

func (d document) criteria() (engine.Criteria, error) {
	c := engine.Criteria{
		RequiredCriteria:   cleanLines(d.RequiredCriteria),
		ExcludedProgrammes: cleanLines(d.ExcludedProgrammes),
	}
	if !d.MinCgpa.IsZero() && d.MinCgpa.ShortTag() != "!!null" {
		minCgpa, err := scalarDecimal(&d.MinCgpa)
		if err != nil {
			return engine.Criteria{}, fmt.Errorf("%w: min_cgpa: %v", ErrInvalidCriteria, err)
		}
		if minCgpa.IsNegative() {
			return engine.Criteria{}, fmt.Errorf("%w: min_cgpa must not be negative", ErrInvalidCriteria)
		}
		if !minCgpa.Equal(minCgpa.Round(2)) || minCgpa.GreaterThanOrEqual(decimal.NewFromInt(100)) {
			return engine.Criteria{}, fmt.Errorf("%w: min_cgpa must be below 100 with at most two decimal places", ErrInvalidCriteria)
		}
		c.MinCgpa = &minCgpa
	}
	if !d.MaxIncome.IsZero() && d.MaxIncome.ShortTag() != "!!null" {
		maxIncome, err := scalarDecimal(&d.MaxIncome)
		if err != nil {
			return engine.Criteria{}, fmt.Errorf("%w: max_income: %v", ErrInvalidCriteria, err)
		}
		if !maxIncome.IsInteger() || maxIncome.IsNegative() {
			return engine.Criteria{}, fmt.Errorf("%w: max_income must be a whole non-negative amount", ErrInvalidCriteria)
		}
		income := maxIncome.IntPart()
		c.MaxIncome = &income
	}
	return c, nil
}

func scalarDecimal(node *yaml.Node) (decimal.Decimal, error) {
	if node.Kind != yaml.ScalarNode {
		return decimal.Decimal{}, errors.New("expected a number")
	}
	return decimal.NewFromString(strings.TrimSpace(node.Value))
}

var bullets = []string{"- ", "* ", "• "}

func cleanLines(lines []string) []string {
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		for _, bullet := range bullets {
			if strings.HasPrefix(line, bullet) {
				line = strings.TrimSpace(strings.TrimPrefix(line, bullet))
				break
			}
		}
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return cleaned
}
