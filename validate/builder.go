package validate

import (
	"regexp"

	"github.com/max-scw/dmc-service/identifier"
	"github.com/max-scw/dmc-service/message"
)

// RuleBuilder provides a fluent interface for constructing custom
// validation rules scoped to a single Data Identifier.
type RuleBuilder interface {
	// Required adds a requirement that the field must have non-empty content.
	Required() RuleBuilder
	// Pattern adds a requirement that the field content must match a regular expression.
	Pattern(pattern string) RuleBuilder
	// OneOf adds a requirement that the field content must be one of the allowed values.
	OneOf(values ...string) RuleBuilder
	// Custom adds a custom validation function.
	Custom(fn func(f message.Field) error) RuleBuilder
	// WithDescription sets a custom description for the rule.
	WithDescription(desc string) RuleBuilder
	// Build constructs the final Rule from the builder configuration.
	Build() Rule
}

// ruleBuilder is the concrete implementation of RuleBuilder.
type ruleBuilder struct {
	di          identifier.DI
	description string
	rules       []Rule
}

// ForDI creates a new RuleBuilder for the given Data Identifier.
func ForDI(di identifier.DI) RuleBuilder {
	return &ruleBuilder{di: di, rules: make([]Rule, 0)}
}

// Required adds a requirement that the field must have non-empty content.
func (b *ruleBuilder) Required() RuleBuilder {
	b.rules = append(b.rules, &requiredRule{di: b.di})
	return b
}

// Pattern adds a requirement that the field content must match a regular expression.
func (b *ruleBuilder) Pattern(pattern string) RuleBuilder {
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		b.rules = append(b.rules, &invalidPatternRule{di: b.di, pattern: pattern, err: err})
		return b
	}
	b.rules = append(b.rules, &patternRule{di: b.di, pattern: compiled})
	return b
}

// OneOf adds a requirement that the field content must be one of the allowed values.
func (b *ruleBuilder) OneOf(values ...string) RuleBuilder {
	b.rules = append(b.rules, &oneOfRule{di: b.di, allowed: values})
	return b
}

// Custom adds a custom validation function.
func (b *ruleBuilder) Custom(fn func(f message.Field) error) RuleBuilder {
	b.rules = append(b.rules, &customRule{di: b.di, fn: fn})
	return b
}

// WithDescription sets a custom description for the rule.
func (b *ruleBuilder) WithDescription(desc string) RuleBuilder {
	b.description = desc
	return b
}

// Build constructs the final Rule. No sub-rules yields a no-op; one yields
// it directly; more than one is combined into a compositeRule.
func (b *ruleBuilder) Build() Rule {
	if len(b.rules) == 0 {
		return &noopRule{di: b.di, description: b.description}
	}

	if b.description != "" {
		for _, rule := range b.rules {
			switch r := rule.(type) {
			case *requiredRule:
				r.description = b.description
			case *patternRule:
				r.description = b.description
			case *oneOfRule:
				r.description = b.description
			case *customRule:
				r.description = b.description
			case *invalidPatternRule:
				r.description = b.description
			}
		}
	}

	if len(b.rules) == 1 {
		return b.rules[0]
	}
	return &compositeRule{di: b.di, rules: b.rules, description: b.description}
}
