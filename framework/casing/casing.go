package casing

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
)

// ── Key rules ────────────────────────────────────────────────────────────────

// CamelKey rewrites a snake_case key: every underscore followed by a lowercase
// ASCII letter is dropped and the letter upper-cased.
func CamelKey(key string) string {
	if !strings.Contains(key, "_") {
		return key
	}

	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '_' && i+1 < len(key) && isLower(key[i+1]) {
			b.WriteByte(key[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// SnakeKey rewrites a camelCase key: every uppercase ASCII letter is lowered and
// prefixed with an underscore. A leading uppercase letter is lowered only.
func SnakeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i := 0; i < len(key); i++ {
		c := key[i]
		if !isUpper(c) {
			b.WriteByte(c)
			continue
		}
		if i > 0 {
			b.WriteByte('_')
		}
		b.WriteByte(c - 'A' + 'a')
	}
	return b.String()
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// ── Structural transform ─────────────────────────────────────────────────────

// ToCamelCase returns a copy of v with every mapping key rewritten by CamelKey.
func ToCamelCase(v any) any { return convert(v, CamelKey) }

// ToSnakeCase returns a copy of v with every mapping key rewritten by SnakeKey.
func ToSnakeCase(v any) any { return convert(v, SnakeKey) }

func convert(v any, rename func(string) string) any {
	switch node := v.(type) {
	case map[string]any:
		return convertMap(node, rename)
	case []any:
		return convertSlice(node, rename)
	case []map[string]any:
		out := make([]any, len(node))
		for i, m := range node {
			out[i] = convertMap(m, rename)
		}
		return out
	default:
		return v
	}
}

// convertMap resolves keys that rename to the same target deterministically:
// a key already in the target convention wins, otherwise the smallest key in
// byte order does.
func convertMap(m map[string]any, rename func(string) string) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	exact := make(map[string]bool, len(m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		nk := rename(k)
		if _, taken := out[nk]; taken && (exact[nk] || nk != k) {
			continue
		}
		out[nk] = convert(m[k], rename)
		exact[nk] = nk == k
	}
	return out
}

func convertSlice(s []any, rename func(string) string) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i, val := range s {
		out[i] = convert(val, rename)
	}
	return out
}

// ── JSON helpers ─────────────────────────────────────────────────────────────

// CamelJSON decodes a JSON document, camel-cases its keys and re-encodes it.
func CamelJSON(data []byte) ([]byte, error) { return convertJSON(data, CamelKey) }

// SnakeJSON decodes a JSON document, snake-cases its keys and re-encodes it.
func SnakeJSON(data []byte) ([]byte, error) { return convertJSON(data, SnakeKey) }

// Decode parses JSON into the generic shape set understood by ToCamelCase and
// ToSnakeCase. Numbers are kept as json.Number so no precision is lost.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func convertJSON(data []byte, rename func(string) string) ([]byte, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return data, nil
	}
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(convert(v, rename))
}
