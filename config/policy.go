package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"scholarship/engine"

	"gopkg.in/yaml.v3"
)

type reviewPolicyFile struct {
	Scale struct {
		Min           *int `yaml:"min"`
		Max           *int `yaml:"max"`
		PassThreshold *int `yaml:"pass_threshold"`
	} `yaml:"scale"`
	AllowPrematureDecision bool `yaml:"allow_premature_decision"`
}

// LoadReviewPolicy reads the review policy from a YAML file. A missing file
// yields the default policy. Unset scale fields keep their default value.
func LoadReviewPolicy(path string) (engine.Policy, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return engine.DefaultPolicy(), nil
	}
	if err != nil {
		return engine.Policy{}, err
	}
	return ParseReviewPolicy(data)
}

func ParseReviewPolicy(data []byte) (engine.Policy, error) {
	var file reviewPolicyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return engine.Policy{}, fmt.Errorf("parse review policy: %w", err)
	}
	policy := engine.DefaultPolicy()
	if file.Scale.Min != nil {
		policy.Scale.Min = *file.Scale.Min
	}
	if file.Scale.Max != nil {
		policy.Scale.Max = *file.Scale.Max
	}
	if file.Scale.PassThreshold != nil {
		policy.Scale.PassThreshold = *file.Scale.PassThreshold
	}
	policy.AllowPrematureDecision = file.AllowPrematureDecision
	if err := policy.Scale.Validate(); err != nil {
		return engine.Policy{}, err
	}
	return policy, nil
}
