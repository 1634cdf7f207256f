package validation

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"unicode/utf8"
)

// ErrValidation matches any *Errors via errors.Is.
var ErrValidation = errors.New("validation failed")

// ── Types ────────────────────────────────────────────────────────────────────

// Violation is one failed field.
type Violation struct {
	Field      string     `json:"field"`
	Constraint Constraint `json:"constraint"`
	Message    string     `json:"message"`
}

// Errors holds validation errors (mirrors Laravel's MessageBag).
// JSON output: {"errors": {"field": ["msg"]}, "violations": [{"field": ..., ...}]}
type Errors struct {
	Bag        map[string][]string `json:"errors"`
	Violations []Violation         `json:"violations"`
}

func (e *Errors) add(v Violation) {
	if e.Bag == nil {
		e.Bag = make(map[string][]string)
	}
	e.Bag[v.Field] = append(e.Bag[v.Field], v.Message)
	e.Violations = append(e.Violations, v)
}

// Has returns true if there are any errors.
func (e *Errors) Has() bool { return e != nil && len(e.Violations) > 0 }

// First returns the first error for a field.
func (e *Errors) First(field string) string {
	if e == nil {
		return ""
	}
	if msgs, ok := e.Bag[field]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Fields returns the failed field names in schema order.
func (e *Errors) Fields() []string {
	if e == nil {
		return nil
	}
	out := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		out[i] = v.Field
	}
	return out
}

// Error implements error.
func (e *Errors) Error() string {
	if !e.Has() {
		return ErrValidation.Error()
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + ": " + v.Message
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidation.
func (e *Errors) Is(target error) bool { return target == ErrValidation }

// ── Validator ────────────────────────────────────────────────────────────────

// Validator validates a decoded JSON object against a Schema.
type Validator struct {
	data   map[string]any
	schema *Schema
	clean  map[string]any
	errors *Errors
	ran    bool
}

// Make creates a new Validator (mirrors Validator::make($data, $rules)).
func Make(data map[string]any, schema *Schema) *Validator {
	return &Validator{
		data:   data,
		schema: schema,
		errors: &Errors{},
	}
}

// Fails runs validation and returns true if any field fails.
func (v *Validator) Fails() bool {
	v.validate()
	return v.errors.Has()
}

// Passes runs validation and returns true if all fields pass.
func (v *Validator) Passes() bool { return !v.Fails() }

// Errors returns the validation error bag.
func (v *Validator) Errors() *Errors {
	v.validate()
	return v.errors
}

// Data returns the validated values: only schema fields that were present,
// with numbers as float64 and string lists as []string. It is nil when
// validation failed.
func (v *Validator) Data() map[string]any {
	if v.Fails() {
		return nil
	}
	return v.clean
}

// ── Core validation loop ─────────────────────────────────────────────────────

func (v *Validator) validate() {
	if v.ran {
		return
	}
	v.ran = true
	v.clean = make(map[string]any, len(v.schema.Fields))

	// Every field is visited so the form can show all problems at once; within a
	// field the first failing constraint wins.
	for _, f := range v.schema.Fields {
		raw, present := v.data[f.Name]
		if !present || raw == nil {
			if f.IsRequired {
				v.fail(f, ConstraintRequired)
			}
			continue
		}

		value, failed, ok := check(f, raw)
		if !ok {
			v.fail(f, failed)
			continue
		}
		v.clean[f.Name] = value
	}
}

func (v *Validator) fail(f FieldSpec, c Constraint) {
	v.errors.add(Violation{Field: f.Name, Constraint: c, Message: f.message(c)})
}

// check returns the normalised value, or the first constraint it breaks.
func check(f FieldSpec, raw any) (any, Constraint, bool) {
	c := f.Constraints

	switch f.Kind {
	case String:
		s, ok := raw.(string)
		if !ok {
			return nil, ConstraintType, false
		}
		if failed, ok := checkLength(c, utf8.RuneCountInString(s)); !ok {
			return nil, failed, false
		}
		if c.Pattern != "" && !c.pattern.MatchString(s) {
			return nil, ConstraintPattern, false
		}
		if c.Format != "" && !formatCheckers[c.Format](s) {
			return nil, ConstraintFormat, false
		}
		return s, "", true

	case Number:
		n, ok := toFloat(raw)
		if !ok {
			return nil, ConstraintType, false
		}
		if c.Integer && n != math.Trunc(n) {
			return nil, ConstraintInteger, false
		}
		if c.Min != nil && n < *c.Min {
			return nil, ConstraintMin, false
		}
		if c.Max != nil && n > *c.Max {
			return nil, ConstraintMax, false
		}
		return n, "", true

	case StringArray:
		items, ok := toStrings(raw)
		if !ok {
			return nil, ConstraintType, false
		}
		if failed, ok := checkLength(c, len(items)); !ok {
			return nil, failed, false
		}
		return items, "", true
	}

	return nil, ConstraintType, false
}

func checkLength(c Constraints, n int) (Constraint, bool) {
	if c.MinLength != nil && n < *c.MinLength {
		return ConstraintMinLength, false
	}
	if c.MaxLength != nil && n > *c.MaxLength {
		return ConstraintMaxLength, false
	}
	return "", true
}

func toFloat(raw any) (float64, bool) {
	var f float64
	switch n := raw.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func toStrings(raw any) ([]string, bool) {
	switch items := raw.(type) {
	case []string:
		return append([]string{}, items...), true
	case []any:
		out := make([]string, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}
