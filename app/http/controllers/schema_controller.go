package controllers

import (
	"log/slog"
	"net/http"

	"github.com/km-arc/taller-dashboard/app/schemas"
	"github.com/km-arc/taller-dashboard/framework/app"
	"github.com/km-arc/taller-dashboard/framework/http/validation"
)

// SchemaController exposes the entity schemas and a dry-run validation
// endpoint the UI calls before submitting a form.
type SchemaController struct {
	app.Controller
	Registry *schemas.Registry
	Logger   *slog.Logger
}

// NewSchemaController creates a SchemaController over reg.
func NewSchemaController(reg *schemas.Registry, logger *slog.Logger) *SchemaController {
	return &SchemaController{Registry: reg, Logger: logger}
}

// Show returns the create and update schema of {entity}.
func (c *SchemaController) Show(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)

	entity, err := schemas.ParseEntity(req.RouteParam("entity"))
	if err != nil {
		respondError(res, c.Logger, r, err)
		return
	}
	res.JSON(http.StatusOK, map[string]any{"data": map[string]any{
		"create": c.Registry.MustLookup(entity, schemas.Create),
		"update": c.Registry.MustLookup(entity, schemas.Update),
	}})
}

// Validate checks the posted form against {entity}'s schema. ?mode=update
// selects the update variant. It answers 200 with the validated fields or 422
// with every violation.
func (c *SchemaController) Validate(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)

	entity, err := schemas.ParseEntity(req.RouteParam("entity"))
	if err != nil {
		respondError(res, c.Logger, r, err)
		return
	}
	mode, err := schemas.ParseMode(req.Query("mode"))
	if err != nil {
		respondError(res, c.Logger, r, err)
		return
	}
	payload, err := req.Payload()
	if err != nil {
		respondError(res, c.Logger, r, err)
		return
	}

	v := validation.Make(payload, c.Registry.MustLookup(entity, mode))
	if v.Fails() {
		res.ValidationError(v.Errors())
		return
	}
	res.Success(v.Data())
}
