// Package casing converts map keys between snake_case and camelCase.
//
// # Overview
//
// The backend API speaks snake_case; the dashboard UI speaks camelCase. Payloads
// crossing that boundary are passed through ToCamelCase (responses) or
// ToSnakeCase (request bodies).
//
//	body := casing.ToSnakeCase(map[string]any{"carId": "1", "totalCost": 10})
//	// map[string]any{"car_id": "1", "total_cost": 10}
//
// # Shapes
//
// Conversion walks a closed set of shapes:
//   - map[string]any: keys are rewritten, values converted
//   - []any: every element converted, order and length preserved
//   - []map[string]any: converted like a []any of mappings
//   - anything else: returned unchanged
//
// Structs, typed maps (map[string]string, ...) and typed slices are treated as
// scalars and returned as-is. Decode JSON into any first, or use CamelJSON /
// SnakeJSON, when such values need converting.
//
// # Key rules
//
//	CamelKey("total_cost")  // "totalCost"
//	SnakeKey("totalCost")   // "total_cost"
//	SnakeKey("TotalCost")   // "total_cost" (first character is never prefixed)
//
// When two keys of one mapping rewrite to the same key, the one already in the
// target convention is kept; failing that, the smallest key in byte order is.
//
//	casing.ToSnakeCase(map[string]any{"carId": 1, "car_id": 2})  // {"car_id": 2}
//
// Only ASCII letters take part in the rewrite. Applying the same direction twice
// gives the same result as applying it once.
package casing
