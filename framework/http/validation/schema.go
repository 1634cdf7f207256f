package validation

import (
	"fmt"
	"maps"
	"regexp"
)

// ── Kinds & constraints ──────────────────────────────────────────────────────

// Kind is the value type a field accepts.
type Kind int

const (
	String Kind = iota
	Number
	StringArray
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case StringArray:
		return "string[]"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText renders the kind by name in JSON and YAML schema exports.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Format names a format predicate applied to string fields.
type Format string

const (
	FormatEmail        Format = "email"
	FormatPhone        Format = "phone"
	FormatLicensePlate Format = "license_plate"
)

var formatCheckers = map[Format]func(string) bool{
	FormatEmail:        IsValidEmail,
	FormatPhone:        IsValidPhone,
	FormatLicensePlate: IsValidLicensePlate,
}

// Constraint identifies the rule a violation failed.
type Constraint string

const (
	ConstraintRequired  Constraint = "required"
	ConstraintType      Constraint = "type"
	ConstraintMinLength Constraint = "min_length"
	ConstraintMaxLength Constraint = "max_length"
	ConstraintMin       Constraint = "min"
	ConstraintMax       Constraint = "max"
	ConstraintInteger   Constraint = "integer"
	ConstraintPattern   Constraint = "pattern"
	ConstraintFormat    Constraint = "format"
)

// Constraints are the value rules of a field. For StringArray fields the length
// bounds apply to the number of items.
type Constraints struct {
	MinLength *int     `json:"min_length,omitempty" yaml:"min_length,omitempty"`
	MaxLength *int     `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Integer   bool     `json:"integer,omitempty" yaml:"integer,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Format    Format   `json:"format,omitempty" yaml:"format,omitempty"`

	pattern *regexp.Regexp
}

// ── FieldSpec ────────────────────────────────────────────────────────────────

// FieldSpec describes one form field. Builder methods return modified copies,
// so a FieldSpec can be shared between schemas safely.
//
//	validation.Field("name", validation.String).
//	    Required().
//	    MinLen(1, "El nombre es requerido").
//	    MaxLen(100, "El nombre no puede exceder 100 caracteres")
type FieldSpec struct {
	Name        string                `json:"name" yaml:"name"`
	Label       string                `json:"label,omitempty" yaml:"label,omitempty"`
	Kind        Kind                  `json:"kind" yaml:"kind"`
	IsRequired  bool                  `json:"required" yaml:"required"`
	Constraints Constraints           `json:"constraints" yaml:"constraints"`
	Messages    map[Constraint]string `json:"messages,omitempty" yaml:"messages,omitempty"`
}

// Field starts a new optional field of the given kind.
func Field(name string, kind Kind) FieldSpec {
	return FieldSpec{Name: name, Kind: kind}
}

// As sets the human-readable label used in generated messages.
func (f FieldSpec) As(label string) FieldSpec {
	f.Label = label
	return f
}

// Required marks the field as mandatory. An optional message overrides the
// generated one.
func (f FieldSpec) Required(msg ...string) FieldSpec {
	f.IsRequired = true
	return f.withMessage(ConstraintRequired, msg)
}

// Optional clears the required flag.
func (f FieldSpec) Optional() FieldSpec {
	f.IsRequired = false
	return f
}

// MinLen sets the minimum length in characters (items for StringArray).
func (f FieldSpec) MinLen(n int, msg ...string) FieldSpec {
	f.Constraints.MinLength = &n
	return f.withMessage(ConstraintMinLength, msg)
}

// MaxLen sets the maximum length in characters (items for StringArray).
func (f FieldSpec) MaxLen(n int, msg ...string) FieldSpec {
	f.Constraints.MaxLength = &n
	return f.withMessage(ConstraintMaxLength, msg)
}

// Min sets the inclusive lower bound of a Number field.
func (f FieldSpec) Min(v float64, msg ...string) FieldSpec {
	f.Constraints.Min = &v
	return f.withMessage(ConstraintMin, msg)
}

// Max sets the inclusive upper bound of a Number field.
func (f FieldSpec) Max(v float64, msg ...string) FieldSpec {
	f.Constraints.Max = &v
	return f.withMessage(ConstraintMax, msg)
}

// Int requires a Number field to hold a whole number.
func (f FieldSpec) Int(msg ...string) FieldSpec {
	f.Constraints.Integer = true
	return f.withMessage(ConstraintInteger, msg)
}

// Match requires a String field to match expr. It panics if expr does not
// compile, like regexp.MustCompile.
func (f FieldSpec) Match(expr string, msg ...string) FieldSpec {
	f.Constraints.Pattern = expr
	f.Constraints.pattern = regexp.MustCompile(expr)
	return f.withMessage(ConstraintPattern, msg)
}

// Format requires a String field to satisfy a format predicate.
func (f FieldSpec) Format(format Format, msg ...string) FieldSpec {
	if _, ok := formatCheckers[format]; !ok {
		panic(fmt.Sprintf("validation: unknown format %q", format))
	}
	f.Constraints.Format = format
	return f.withMessage(ConstraintFormat, msg)
}

// Message sets the message reported when the given constraint fails.
func (f FieldSpec) Message(c Constraint, msg string) FieldSpec {
	return f.withMessage(c, []string{msg})
}

func (f FieldSpec) withMessage(c Constraint, msg []string) FieldSpec {
	if len(msg) == 0 || msg[0] == "" {
		return f
	}
	m := maps.Clone(f.Messages)
	if m == nil {
		m = make(map[Constraint]string, 1)
	}
	m[c] = msg[0]
	f.Messages = m
	return f
}

// message returns the authored message for c, or a generated Spanish one.
func (f FieldSpec) message(c Constraint) string {
	if msg, ok := f.Messages[c]; ok {
		return msg
	}
	label := f.Label
	if label == "" {
		label = f.Name
	}

	switch c {
	case ConstraintRequired:
		return fmt.Sprintf("El campo %s es requerido", label)
	case ConstraintType:
		switch f.Kind {
		case Number:
			return fmt.Sprintf("El campo %s debe ser un número", label)
		case StringArray:
			return fmt.Sprintf("El campo %s debe ser una lista de textos", label)
		default:
			return fmt.Sprintf("El campo %s debe ser texto", label)
		}
	case ConstraintMinLength:
		if f.Kind == StringArray {
			return fmt.Sprintf("El campo %s debe tener al menos %d elementos", label, *f.Constraints.MinLength)
		}
		return fmt.Sprintf("El campo %s debe tener al menos %d caracteres", label, *f.Constraints.MinLength)
	case ConstraintMaxLength:
		if f.Kind == StringArray {
			return fmt.Sprintf("El campo %s no puede tener más de %d elementos", label, *f.Constraints.MaxLength)
		}
		return fmt.Sprintf("El campo %s no puede exceder %d caracteres", label, *f.Constraints.MaxLength)
	case ConstraintMin:
		return fmt.Sprintf("El campo %s debe ser mayor o igual a %v", label, *f.Constraints.Min)
	case ConstraintMax:
		return fmt.Sprintf("El campo %s debe ser menor o igual a %v", label, *f.Constraints.Max)
	case ConstraintInteger:
		return fmt.Sprintf("El campo %s debe ser un número entero", label)
	case ConstraintFormat:
		return fmt.Sprintf("El campo %s no tiene un formato válido", label)
	default:
		return fmt.Sprintf("El campo %s es inválido", label)
	}
}

// ── Schema ───────────────────────────────────────────────────────────────────

// Schema is a named, ordered set of fields for one entity.
type Schema struct {
	Name    string      `json:"name" yaml:"name"`
	Partial bool        `json:"partial" yaml:"partial"`
	Fields  []FieldSpec `json:"fields" yaml:"fields"`
}

// NewSchema builds a create schema. It panics on duplicate field names.
func NewSchema(name string, fields ...FieldSpec) *Schema {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.Name] {
			panic(fmt.Sprintf("validation: schema %s declares field %q twice", name, f.Name))
		}
		seen[f.Name] = true
	}
	return &Schema{Name: name, Fields: append([]FieldSpec(nil), fields...)}
}

// Update derives the update variant: every field kept, every field optional,
// constraints and messages unchanged.
func (s *Schema) Update() *Schema {
	fields := make([]FieldSpec, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = f.Optional()
	}
	return &Schema{Name: s.Name, Partial: true, Fields: fields}
}

// Field returns the field named name.
func (s *Schema) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Required returns the names of the mandatory fields, in declaration order.
func (s *Schema) Required() []string {
	var out []string
	for _, f := range s.Fields {
		if f.IsRequired {
			out = append(out, f.Name)
		}
	}
	return out
}
