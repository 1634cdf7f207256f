// Package validation validates form payloads against declarative schemas.
//
// # Overview
//
// The package keeps the shape of Laravel's Validator facade: build a validator
// with Make, ask Fails or Passes, and read the message bag from Errors. Rules are
// not pipe-separated strings but typed FieldSpec values grouped in a Schema.
//
//	client := validation.NewSchema("client",
//	    validation.Field("name", validation.String).Required().
//	        MinLen(1, "El nombre es requerido").
//	        MaxLen(100, "El nombre no puede exceder 100 caracteres"),
//	    validation.Field("email", validation.String).Required().
//	        Format(validation.FormatEmail, "El email no es válido"),
//	)
//
//	v := validation.Make(payload, client)
//	if v.Fails() {
//	    // v.Errors().Bag         → map[string][]string
//	    // v.Errors().Violations  → []Violation in schema order
//	}
//	data := v.Data() // only schema fields, numbers as float64
//
// # Create and update variants
//
// Schema.Update derives the variant used for partial updates: same fields, same
// constraints, nothing required.
//
// # Evaluation
//
// Every field is checked and every failing field reported. Within a field the
// checks run in this order and stop at the first failure:
//   - required (absent or null)
//   - type (string, number, list of strings)
//   - min_length / max_length (characters, or items for lists)
//   - integer, min, max (numbers)
//   - pattern, format (strings)
//
// Absent optional fields are skipped.
//
// # Error Bag
//
// Errors serialises to the Laravel structure, plus the ordered violation list:
//
//	{
//	  "errors": {"email": ["El email es requerido"]},
//	  "violations": [{"field": "email", "constraint": "required", "message": "El email es requerido"}]
//	}
//
// *Errors implements error and matches ErrValidation with errors.Is.
//
// # Format predicates
//
// IsValidEmail, IsValidPhone and IsValidLicensePlate are plain predicates that
// never panic; Format wires them into a field.
package validation
