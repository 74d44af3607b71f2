package validate

import (
	"regexp"
	"strconv"

	"github.com/max-scw/dmc-service/catalog"
	"github.com/max-scw/dmc-service/datefmt"
	"github.com/max-scw/dmc-service/format"
	"github.com/max-scw/dmc-service/identifier"
	"github.com/max-scw/dmc-service/message"
)

var (
	printableASCII = regexp.MustCompile(`^[ -~]*$`)
	integerPattern = regexp.MustCompile(`^\d+$`)
	realPattern    = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// ValidationResult is the outcome of validating a list of field strings.
type ValidationResult interface {
	// Valid reports whether every field passed validation.
	Valid() bool
	// Errors returns all validation errors encountered.
	Errors() []ValidationError
	// Warnings returns all validation warnings encountered.
	Warnings() []ValidationWarning
	// Fields returns every field processed, valid or not, in input order.
	Fields() []message.Field
}

type validationResult struct {
	fields   []message.Field
	errors   []ValidationError
	warnings []ValidationWarning
}

func (r *validationResult) Valid() bool                     { return len(r.errors) == 0 }
func (r *validationResult) Errors() []ValidationError        { return append([]ValidationError(nil), r.errors...) }
func (r *validationResult) Warnings() []ValidationWarning     { return append([]ValidationWarning(nil), r.warnings...) }
func (r *validationResult) Fields() []message.Field           { return append([]message.Field(nil), r.fields...) }

// Validator validates parsed field strings against the identifier catalogue.
type Validator interface {
	// Validate validates every field string, returning a ValidationResult.
	// In strict mode, the first violation aborts processing and the
	// returned error is non-nil; in lenient mode, violations are recorded
	// in the result and every field is processed.
	Validate(raw []string) (ValidationResult, error)
}

type validatorConfig struct {
	catalogue *catalog.Catalogue
	strict    bool
	cast      bool
	extra     RuleSet
}

// Option configures a Validator.
type Option func(*validatorConfig)

// WithStrict sets strict mode: the first violation aborts Validate with an error.
func WithStrict(strict bool) Option {
	return func(c *validatorConfig) { c.strict = strict }
}

// WithCast enables typed casting of valid field content (spec §4.5).
func WithCast(cast bool) Option {
	return func(c *validatorConfig) { c.cast = cast }
}

// WithRules layers a custom RuleSet on top of the catalogue-driven base checks.
func WithRules(rs RuleSet) Option {
	return func(c *validatorConfig) { c.extra = rs }
}

type validator struct {
	config validatorConfig
}

// New creates a Validator backed by the given catalogue.
func New(cat *catalog.Catalogue, opts ...Option) Validator {
	cfg := validatorConfig{catalogue: cat}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &validator{config: cfg}
}

// Validate implements Validator.
func (v *validator) Validate(raw []string) (ValidationResult, error) {
	result := &validationResult{
		fields:   make([]message.Field, 0, len(raw)),
		errors:   make([]ValidationError, 0),
		warnings: make([]ValidationWarning, 0),
	}

	for _, s := range raw {
		field, fieldErrs, fieldWarnings, err := v.validateOne(s)
		result.fields = append(result.fields, field)
		if err != nil {
			return result, err
		}
		result.errors = append(result.errors, fieldErrs...)
		result.warnings = append(result.warnings, fieldWarnings...)
	}
	return result, nil
}

// validateOne validates a single raw field string and returns the resulting
// Field, any accumulated lenient-mode errors and warnings, and a fatal error
// if in strict mode and a violation occurred.
func (v *validator) validateOne(raw string) (message.Field, []ValidationError, []ValidationWarning, error) {
	var errs []ValidationError
	var warnings []ValidationWarning

	di, rest, err := identifier.Extract(raw)
	if err != nil {
		if v.config.strict {
			return message.Field{Raw: raw}, nil, nil, message.Wrap(message.KindNoDataIdentifier, raw, err)
		}
		errs = append(errs, ValidationError{Rule: "data_identifier", Message: err.Error(), Actual: raw})
		return message.Field{Raw: raw, Valid: false}, errs, nil, nil
	}

	field := message.Field{DI: di, Raw: rest}

	entry, ok := v.config.catalogue.Lookup(di)
	if !ok {
		if v.config.strict {
			return field, nil, nil, message.New(message.KindUnknownDataIdentifier, string(di))
		}
		errs = append(errs, ValidationError{DI: di, Rule: "catalogue", Message: "unknown data identifier"})
		return field, errs, nil, nil
	}

	valid := true
	if entry.Format != "" {
		ok, ferr := format.Validate(entry.Format, string(di)+rest, v.config.strict)
		if ferr != nil {
			return field, nil, nil, ferr
		}
		if !ok {
			valid = false
			errs = append(errs, ValidationError{DI: di, Rule: "format", Message: "content does not match format", Expected: entry.Format, Actual: rest})
		}
	} else if !printableASCII.MatchString(rest) {
		valid = false
		if v.config.strict {
			return field, nil, nil, &format.Error{Kind: format.KindFormatMismatch, Value: string(di) + rest}
		}
		errs = append(errs, ValidationError{DI: di, Rule: "printable_ascii", Message: "content is not printable ASCII", Actual: rest})
	}

	for _, rule := range rulesForDI(v.config.extra, di) {
		ruleErrs := rule.Validate(field)
		if len(ruleErrs) > 0 {
			valid = false
			if v.config.strict {
				return field, nil, nil, message.New(message.KindUnknownDataIdentifier, ruleErrs[0].Error())
			}
			errs = append(errs, ruleErrs...)
		}
	}

	field.Valid = valid
	if valid && v.config.cast {
		typed, warn, castErr := castField(di, rest, entry)
		if castErr != nil {
			if v.config.strict {
				return field, nil, nil, castErr
			}
			errs = append(errs, ValidationError{DI: di, Rule: "cast", Message: castErr.Error()})
		} else {
			field.Typed = typed
			if warn != "" {
				warnings = append(warnings, ValidationWarning{DI: di, Rule: "cast", Message: warn})
			}
		}
	} else {
		field.Typed = message.StringValue(rest)
	}

	return field, errs, warnings, nil
}

// castField implements spec §4.5's optional casting step.
func castField(di identifier.DI, content string, entry catalog.Entry) (message.Value, string, error) {
	if len(string(di)) > 0 && string(di)[len(di)-1] == 'D' {
		pattern, ok := datefmt.Discover(entry.Explain)
		if !ok {
			return message.Value{}, "no date pattern found in explanation", message.New(message.KindBadDate, "no date pattern in explanation for "+string(di))
		}
		t, err := datefmt.Parse(pattern, content)
		if err != nil {
			return message.Value{}, "", message.Wrap(message.KindBadDate, content, err)
		}
		return message.TimestampValue(t), "", nil
	}

	if integerPattern.MatchString(content) {
		n, err := strconv.ParseInt(content, 10, 64)
		if err != nil {
			return message.StringValue(content), "", nil
		}
		return message.IntValue(n), "", nil
	}

	if realPattern.MatchString(content) {
		f, err := strconv.ParseFloat(content, 64)
		if err != nil {
			return message.StringValue(content), "", nil
		}
		return message.RealValue(f), "", nil
	}

	return message.StringValue(content), "", nil
}
