package layout

import (
	"encoding/json"
	"fmt"
	"os"
)

// RuleSet is the on-disk form of an ordered placement rule list.
type RuleSet struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Rules []PlacementRule `json:"rules"`
}

// LoadRuleSetFromFile loads a rule set from a JSON file. Rule order in
// the file is the priority order used during assignment.
func LoadRuleSetFromFile(filepath string) (*RuleSet, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule set file: %w", err)
	}

	var rs RuleSet
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse rule set JSON: %w", err)
	}

	if err := ValidateRules(rs.Rules); err != nil {
		return nil, fmt.Errorf("rule set %q: %w", rs.ID, err)
	}
	return &rs, nil
}

// ValidateRules rejects rule lists that assignment cannot use: an empty
// list, a blank variant identifier, or an inverted rectangle.
func ValidateRules(rules []PlacementRule) error {
	if len(rules) == 0 {
		return ErrEmptyRuleSet
	}
	for i, rule := range rules {
		if rule.Variant == "" {
			return fmt.Errorf("rule %d has no variant id", i)
		}
		if rule.Max.X < rule.Min.X || rule.Max.Y < rule.Min.Y {
			return fmt.Errorf("rule %d (%s) has an inverted rectangle: min (%d,%d) max (%d,%d)",
				i, rule.Variant, rule.Min.X, rule.Min.Y, rule.Max.X, rule.Max.Y)
		}
	}
	return nil
}
