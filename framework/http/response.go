package http

import (
	"encoding/json"
	"net/http"

	"github.com/km-arc/taller-dashboard/framework/casing"
	"github.com/km-arc/taller-dashboard/framework/http/validation"
)

// ── Response ─────────────────────────────────────────────────────────────────

// Response wraps http.ResponseWriter with Laravel-style helpers.
type Response struct {
	w http.ResponseWriter
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// Raw returns the underlying ResponseWriter.
func (res *Response) Raw() http.ResponseWriter { return res.w }

// ── JSON responses ────────────────────────────────────────────────────────────

// JSON sends a JSON response.
//
//	res.JSON(http.StatusOK, map[string]any{"message": "ok"})
func (res *Response) JSON(status int, data any) {
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	_ = json.NewEncoder(res.w).Encode(data)
}

// Success sends 200 JSON: {"data": v}. Generic maps and lists in v are
// camel-cased for the UI.
func (res *Response) Success(v any) {
	res.JSON(http.StatusOK, envelope{"data": casing.ToCamelCase(v)})
}

// Created sends 201 JSON: {"data": v}, camel-cased like Success.
func (res *Response) Created(v any) {
	res.JSON(http.StatusCreated, envelope{"data": casing.ToCamelCase(v)})
}

// NoContent sends 204 with no body.
func (res *Response) NoContent() {
	res.w.WriteHeader(http.StatusNoContent)
}

// Error sends a JSON error response.
//
//	res.Error(http.StatusNotFound, "Recurso no encontrado")
func (res *Response) Error(status int, message string) {
	res.JSON(status, envelope{"message": message})
}

// NotFound sends 404.
func (res *Response) NotFound(message ...string) {
	msg := first(message, "No encontrado.")
	res.JSON(http.StatusNotFound, envelope{"message": msg})
}

// ServerError sends 500.
func (res *Response) ServerError(message ...string) {
	msg := first(message, "Error del servidor.")
	res.JSON(http.StatusInternalServerError, envelope{"message": msg})
}

// ValidationError sends 422 with the Laravel error bag. Field names are
// camel-cased like the rest of the response so the UI can match them to its
// form fields.
//
//	res.ValidationError(validator.Errors())
func (res *Response) ValidationError(errors *validation.Errors) {
	bag := make(map[string][]string)
	violations := []validation.Violation{}
	if errors != nil {
		for field, msgs := range errors.Bag {
			bag[casing.CamelKey(field)] = msgs
		}
		for _, v := range errors.Violations {
			v.Field = casing.CamelKey(v.Field)
			violations = append(violations, v)
		}
	}

	res.JSON(http.StatusUnprocessableEntity, envelope{
		"message":    "Los datos proporcionados no son válidos.",
		"errors":     bag,
		"violations": violations,
	})
}

// ── Helpers ──────────────────────────────────────────────────────────────────

type envelope map[string]any

func first(ss []string, fallback string) string {
	if len(ss) > 0 && ss[0] != "" {
		return ss[0]
	}
	return fallback
}
