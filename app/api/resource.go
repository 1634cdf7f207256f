package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/km-arc/taller-dashboard/app/schemas"
	"github.com/km-arc/taller-dashboard/framework/http/validation"
)

// Resource is one REST collection of the backend, e.g. /cars.
type Resource struct {
	client   *Client
	registry *schemas.Registry
	entity   schemas.Entity
	path     string
}

// Resource returns the collection of entity e, validated with reg's schemas.
// Schemas are looked up on every write so year-bound rules stay current.
func (c *Client) Resource(reg *schemas.Registry, e schemas.Entity) (*Resource, error) {
	if _, err := reg.Lookup(e, schemas.Create); err != nil {
		return nil, err
	}
	return &Resource{client: c, registry: reg, entity: e, path: "/" + string(e)}, nil
}

// List fetches the whole collection.
func (r *Resource) List(ctx context.Context) (any, error) {
	return r.client.Do(ctx, http.MethodGet, r.path, nil)
}

// Get fetches one record.
func (r *Resource) Get(ctx context.Context, id string) (any, error) {
	return r.client.Do(ctx, http.MethodGet, r.item(id), nil)
}

// Create validates input (snake_case keys) against the create schema and posts
// the validated fields. Invalid input returns *validation.Errors.
func (r *Resource) Create(ctx context.Context, input map[string]any) (any, error) {
	v := validation.Make(input, r.registry.MustLookup(r.entity, schemas.Create))
	if v.Fails() {
		return nil, v.Errors()
	}
	return r.client.Do(ctx, http.MethodPost, r.path, v.Data())
}

// Update validates input against the update schema and patches the record.
func (r *Resource) Update(ctx context.Context, id string, input map[string]any) (any, error) {
	v := validation.Make(input, r.registry.MustLookup(r.entity, schemas.Update))
	if v.Fails() {
		return nil, v.Errors()
	}
	return r.client.Do(ctx, http.MethodPatch, r.item(id), v.Data())
}

// Delete removes one record.
func (r *Resource) Delete(ctx context.Context, id string) error {
	_, err := r.client.Do(ctx, http.MethodDelete, r.item(id), nil)
	return err
}

func (r *Resource) item(id string) string {
	return r.path + "/" + url.PathEscape(id)
}
