// Package validate implements the field validator (spec component C5): it
// extracts a Data Identifier from each parsed field, looks it up in the
// identifier catalogue, checks the remaining content against the DI's
// format spec (or, absent one, the printable-ASCII fallback), optionally
// casts the content to a typed value, and reports per-field results.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/max-scw/dmc-service/identifier"
	"github.com/max-scw/dmc-service/message"
)

// Rule defines a custom validation rule that can be layered on top of the
// catalogue-driven checks, scoped to a single Data Identifier.
type Rule interface {
	// Validate applies this rule to the field and returns any validation errors.
	Validate(f message.Field) []ValidationError
	// DI returns the Data Identifier this rule applies to.
	DI() identifier.DI
	// Description returns a human-readable description of what this rule validates.
	Description() string
}

// ValidationError represents a single field validation failure.
type ValidationError struct {
	DI       identifier.DI
	Rule     string
	Message  string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation error")

	if e.DI != "" {
		sb.WriteString(" at ")
		sb.WriteString(e.DI.String())
	}
	if e.Rule != "" {
		sb.WriteString(" [")
		sb.WriteString(e.Rule)
		sb.WriteString("]")
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}

	switch {
	case e.Expected != "" && e.Actual != "":
		sb.WriteString(fmt.Sprintf(" (expected %s, got %s)", e.Expected, e.Actual))
	case e.Expected != "":
		sb.WriteString(fmt.Sprintf(" (expected %s)", e.Expected))
	case e.Actual != "":
		sb.WriteString(fmt.Sprintf(" (got %s)", e.Actual))
	}
	return sb.String()
}

// ValidationWarning represents a non-critical validation issue, e.g. a
// casting step that was skipped rather than failed outright.
type ValidationWarning struct {
	DI      identifier.DI
	Rule    string
	Message string
}

// String returns a human-readable representation of the warning.
func (w ValidationWarning) String() string {
	if w.DI != "" {
		return fmt.Sprintf("%s [%s]: %s", w.DI, w.Rule, w.Message)
	}
	return fmt.Sprintf("[%s]: %s", w.Rule, w.Message)
}

// requiredRule fails if the field's raw content (after the DI) is empty.
type requiredRule struct {
	di          identifier.DI
	description string
}

func (r *requiredRule) Validate(f message.Field) []ValidationError {
	if f.Raw == "" {
		return []ValidationError{{DI: r.di, Rule: "required", Message: "field has no content"}}
	}
	return nil
}
func (r *requiredRule) DI() identifier.DI { return r.di }
func (r *requiredRule) Description() string {
	if r.description != "" {
		return r.description
	}
	return "content required"
}

// patternRule fails if the field's raw content does not match a regular expression.
type patternRule struct {
	di          identifier.DI
	pattern     *regexp.Regexp
	description string
}

func (r *patternRule) Validate(f message.Field) []ValidationError {
	if !r.pattern.MatchString(f.Raw) {
		return []ValidationError{{DI: r.di, Rule: "pattern", Message: "content does not match pattern", Expected: r.pattern.String(), Actual: f.Raw}}
	}
	return nil
}
func (r *patternRule) DI() identifier.DI { return r.di }
func (r *patternRule) Description() string {
	if r.description != "" {
		return r.description
	}
	return "pattern match required"
}

// invalidPatternRule always fails because its pattern could not be compiled.
type invalidPatternRule struct {
	di          identifier.DI
	pattern     string
	err         error
	description string
}

func (r *invalidPatternRule) Validate(_ message.Field) []ValidationError {
	return []ValidationError{{DI: r.di, Rule: "pattern", Message: "invalid pattern: " + r.err.Error(), Expected: r.pattern}}
}
func (r *invalidPatternRule) DI() identifier.DI { return r.di }
func (r *invalidPatternRule) Description() string {
	if r.description != "" {
		return r.description
	}
	return "invalid pattern rule"
}

// oneOfRule fails unless the field's raw content is one of a fixed set of values.
type oneOfRule struct {
	di          identifier.DI
	allowed     []string
	description string
}

func (r *oneOfRule) Validate(f message.Field) []ValidationError {
	for _, v := range r.allowed {
		if f.Raw == v {
			return nil
		}
	}
	return []ValidationError{{DI: r.di, Rule: "one_of", Message: "content is not one of the allowed values", Expected: strings.Join(r.allowed, ", "), Actual: f.Raw}}
}
func (r *oneOfRule) DI() identifier.DI { return r.di }
func (r *oneOfRule) Description() string {
	if r.description != "" {
		return r.description
	}
	return "restricted to a fixed value set"
}

// customRule delegates to a caller-supplied function.
type customRule struct {
	di          identifier.DI
	fn          func(f message.Field) error
	description string
}

func (r *customRule) Validate(f message.Field) []ValidationError {
	if err := r.fn(f); err != nil {
		return []ValidationError{{DI: r.di, Rule: "custom", Message: err.Error()}}
	}
	return nil
}
func (r *customRule) DI() identifier.DI { return r.di }
func (r *customRule) Description() string {
	if r.description != "" {
		return r.description
	}
	return "custom rule"
}

// compositeRule runs several rules in sequence, accumulating every failure.
type compositeRule struct {
	di          identifier.DI
	rules       []Rule
	description string
}

func (r *compositeRule) Validate(f message.Field) []ValidationError {
	var errs []ValidationError
	for _, sub := range r.rules {
		errs = append(errs, sub.Validate(f)...)
	}
	return errs
}
func (r *compositeRule) DI() identifier.DI { return r.di }
func (r *compositeRule) Description() string {
	if r.description != "" {
		return r.description
	}
	return "composite rule"
}

// noopRule always passes.
type noopRule struct {
	di          identifier.DI
	description string
}

func (r *noopRule) Validate(_ message.Field) []ValidationError { return nil }
func (r *noopRule) DI() identifier.DI                          { return r.di }
func (r *noopRule) Description() string {
	if r.description != "" {
		return r.description
	}
	return "no validation"
}
