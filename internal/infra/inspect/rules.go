package inspect

import (
	"fmt"
	"os"

	"github.com/chonker8/harness/internal/domain"
	"gopkg.in/yaml.v3"
)

// ruleFile is the on-disk YAML shape of a rule set.
type ruleFile struct {
	Rules []domain.MarkerRule `yaml:"rules"`
}

// LoadRules reads a rule set from a YAML file. An empty kind defaults
// to substring matching.
func LoadRules(path string) ([]domain.MarkerRule, error) {
	data, err := os.ReadFile(path) // #nosec G304 - rule file path comes from the CLI user
	if err != nil {
		return nil, fmt.Errorf("read rule file: %w", err)
	}

	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse rule file %s: %w", path, err)
	}
	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyRuleSet, path)
	}

	for i := range file.Rules {
		if file.Rules[i].Kind == "" {
			file.Rules[i].Kind = domain.MatchSubstring
		}
		if err := validateRule(file.Rules[i]); err != nil {
			return nil, err
		}
	}
	return file.Rules, nil
}

func validateRule(rule domain.MarkerRule) error {
	if rule.Label == "" {
		return fmt.Errorf("%w: missing label", domain.ErrInvalidRule)
	}
	if !rule.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %q for %s", domain.ErrInvalidRule, rule.Kind, rule.Label)
	}
	switch rule.Kind {
	case domain.MatchField:
		if rule.Field == "" {
			return fmt.Errorf("%w: field rule %s has no field key", domain.ErrInvalidRule, rule.Label)
		}
	default:
		if rule.Pattern == "" {
			return fmt.Errorf("%w: rule %s has no pattern", domain.ErrInvalidRule, rule.Label)
		}
	}
	return nil
}
