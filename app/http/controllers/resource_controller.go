package controllers

import (
	"log/slog"
	"net/http"

	"github.com/km-arc/taller-dashboard/app/api"
	"github.com/km-arc/taller-dashboard/framework/app"
	gohttp "github.com/km-arc/taller-dashboard/framework/http"
)

// ResourceController proxies one entity's CRUD routes to the backend API.
// Payloads from the UI arrive in camelCase and leave in camelCase; the
// backend only ever sees snake_case.
type ResourceController struct {
	app.Controller
	Resource *api.Resource
	Logger   *slog.Logger
}

// NewResourceController creates a ResourceController for resource.
func NewResourceController(resource *api.Resource, logger *slog.Logger) *ResourceController {
	return &ResourceController{Resource: resource, Logger: logger}
}

func (c *ResourceController) Index(w http.ResponseWriter, r *http.Request) {
	res := c.Response(w)
	data, err := c.Resource.List(r.Context())
	if err != nil {
		respondError(res, c.Logger, r, err)
		return
	}
	res.Success(data)
}

func (c *ResourceController) Show(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)
	data, err := c.Resource.Get(r.Context(), req.RouteParam("id"))
	if err != nil {
		respondError(res, c.Logger, r, err)
		return
	}
	res.Success(data)
}

func (c *ResourceController) Store(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)
	c.write(res, r, req, func(payload map[string]any) (any, error) {
		return c.Resource.Create(r.Context(), payload)
	}, res.Created)
}

func (c *ResourceController) Update(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)
	c.write(res, r, req, func(payload map[string]any) (any, error) {
		return c.Resource.Update(r.Context(), req.RouteParam("id"), payload)
	}, res.Success)
}

func (c *ResourceController) Destroy(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)
	if err := c.Resource.Delete(r.Context(), req.RouteParam("id")); err != nil {
		respondError(res, c.Logger, r, err)
		return
	}
	res.NoContent()
}

func (c *ResourceController) write(res *gohttp.Response, r *http.Request, req *gohttp.Request,
	send func(map[string]any) (any, error), ok func(any)) {
	payload, err := req.Payload()
	if err != nil {
		respondError(res, c.Logger, r, err)
		return
	}
	data, err := send(payload)
	if err != nil {
		respondError(res, c.Logger, r, err)
		return
	}
	ok(data)
}
