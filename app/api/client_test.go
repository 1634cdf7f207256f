package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/taller-dashboard/app/api"
	"github.com/km-arc/taller-dashboard/app/schemas"
	"github.com/km-arc/taller-dashboard/framework/http/validation"
)

// captured is what the fake backend saw on its last request.
type captured struct {
	mu                            sync.Mutex
	method, path, auth, requestID string
	body                          map[string]any
}

func backend(t *testing.T, status int, reply string) (*httptest.Server, *captured, *atomic.Int32) {
	t.Helper()
	seen := &captured{}
	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		seen.mu.Lock()
		defer seen.mu.Unlock()
		seen.method = r.Method
		seen.path = r.URL.Path
		seen.auth = r.Header.Get("Authorization")
		seen.requestID = r.Header.Get(middleware.RequestIDHeader)
		seen.body = nil
		if b, _ := io.ReadAll(r.Body); len(b) > 0 {
			assert.NoError(t, json.Unmarshal(b, &seen.body))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, seen, &hits
}

func newClient(t *testing.T, baseURL string, opts ...api.Option) *api.Client {
	t.Helper()
	c, err := api.New(baseURL, 5*time.Second, opts...)
	require.NoError(t, err)
	return c
}

func resource(t *testing.T, c *api.Client, e schemas.Entity) *api.Resource {
	t.Helper()
	r, err := c.Resource(schemas.New(func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }), e)
	require.NoError(t, err)
	return r
}

// ── Client ───────────────────────────────────────────────────────────────────

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := api.New("/api", time.Second)
	assert.Error(t, err)
}

func TestDo_CasesKeysBothWays(t *testing.T) {
	srv, seen, _ := backend(t, http.StatusOK, `{"car_id":"1","total_cost":10,"parts":[{"part_name":"x"}]}`)
	c := newClient(t, srv.URL+"/", api.WithToken("tok"))

	got, err := c.Do(context.Background(), http.MethodPost, "/work-orders", map[string]any{"carId": "1", "totalCost": 10})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, seen.method)
	assert.Equal(t, "/work-orders", seen.path)
	assert.Equal(t, "Bearer tok", seen.auth)
	assert.Equal(t, map[string]any{"car_id": "1", "total_cost": float64(10)}, seen.body)

	assert.Equal(t, map[string]any{
		"carId":     "1",
		"totalCost": json.Number("10"),
		"parts":     []any{map[string]any{"partName": "x"}},
	}, got)
}

func TestDo_RequestID(t *testing.T) {
	srv, seen, _ := backend(t, http.StatusNoContent, "")
	c := newClient(t, srv.URL)

	_, err := c.Do(context.Background(), http.MethodGet, "/cars", nil)
	require.NoError(t, err)
	assert.Len(t, seen.requestID, 36, "generated uuid")

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")
	_, err = c.Do(ctx, http.MethodGet, "/cars", nil)
	require.NoError(t, err)
	assert.Equal(t, "req-42", seen.requestID)
	assert.Empty(t, seen.auth)
}

func TestDo_EmptyResponse(t *testing.T) {
	srv, _, _ := backend(t, http.StatusNoContent, "")
	got, err := newClient(t, srv.URL).Do(context.Background(), http.MethodDelete, "/cars/1", nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDo_APIError(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{"message", `{"message":"Auto no encontrado"}`, "Auto no encontrado"},
		{"error", `{"error":"not found"}`, "not found"},
		{"plain text", "gone", "gone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _, _ := backend(t, http.StatusNotFound, tt.reply)
			_, err := newClient(t, srv.URL).Do(context.Background(), http.MethodGet, "/cars/9", nil)

			require.ErrorIs(t, err, api.ErrBackend)
			var apiErr *api.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, http.StatusNotFound, apiErr.Status)
			assert.Equal(t, tt.want, apiErr.Message)
		})
	}
}

func TestDo_InvalidJSONResponse(t *testing.T) {
	srv, _, _ := backend(t, http.StatusOK, `{"broken":`)
	_, err := newClient(t, srv.URL).Do(context.Background(), http.MethodGet, "/cars", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, api.ErrBackend)
}

func TestDo_ResponseTooLarge(t *testing.T) {
	atLimit := `"` + strings.Repeat("a", api.MaxResponseBytes-2) + `"`
	srv, _, _ := backend(t, http.StatusOK, atLimit)
	got, err := newClient(t, srv.URL).Do(context.Background(), http.MethodGet, "/cars", nil)
	require.NoError(t, err)
	assert.Len(t, got, api.MaxResponseBytes-2)

	srv, _, _ = backend(t, http.StatusOK, `[`+strings.Repeat(`{},`, api.MaxResponseBytes/3)+`{}]`)
	_, err = newClient(t, srv.URL).Do(context.Background(), http.MethodGet, "/cars", nil)
	assert.ErrorIs(t, err, api.ErrResponseTooLarge)
}

func TestDo_ContextCanceled(t *testing.T) {
	srv, _, _ := backend(t, http.StatusOK, `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newClient(t, srv.URL).Do(ctx, http.MethodGet, "/cars", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── Resource ─────────────────────────────────────────────────────────────────

func TestResource_CreateValidatesBeforeSending(t *testing.T) {
	srv, _, hits := backend(t, http.StatusCreated, `{}`)
	clients := resource(t, newClient(t, srv.URL), schemas.Client)

	_, err := clients.Create(context.Background(), map[string]any{"name": "Ana"})

	require.ErrorIs(t, err, validation.ErrValidation)
	var bag *validation.Errors
	require.True(t, errors.As(err, &bag))
	assert.Equal(t, []string{"email", "phone"}, bag.Fields())
	assert.Zero(t, hits.Load(), "backend must not be called")
}

func TestResource_CreateSendsCleanedPayload(t *testing.T) {
	srv, seen, _ := backend(t, http.StatusCreated, `{"id":"w1","car_id":"car-1","labor_hours":1.5}`)
	orders := resource(t, newClient(t, srv.URL), schemas.WorkOrder)

	got, err := orders.Create(context.Background(), map[string]any{
		"car_id":      "car-1",
		"client_id":   "cli-1",
		"description": "Afinación",
		"total_cost":  json.Number("900"),
		"expenses":    300,
		"parts":       []any{"bujías"},
		"labor_hours": 1.5,
		"unexpected":  "dropped",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, seen.method)
	assert.Equal(t, "/work-orders", seen.path)
	assert.Equal(t, map[string]any{
		"car_id":      "car-1",
		"client_id":   "cli-1",
		"description": "Afinación",
		"total_cost":  float64(900),
		"expenses":    float64(300),
		"parts":       []any{"bujías"},
		"labor_hours": 1.5,
	}, seen.body)
	assert.Equal(t, map[string]any{"id": "w1", "carId": "car-1", "laborHours": json.Number("1.5")}, got)
}

func TestResource_UpdateIsPartial(t *testing.T) {
	srv, seen, _ := backend(t, http.StatusOK, `{"id":"c 1"}`)
	cars := resource(t, newClient(t, srv.URL), schemas.Car)

	_, err := cars.Update(context.Background(), "c 1", map[string]any{"mileage": 1000})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, seen.method)
	assert.Equal(t, "/cars/c 1", seen.path)
	assert.Equal(t, map[string]any{"mileage": float64(1000)}, seen.body)

	_, err = cars.Update(context.Background(), "c1", map[string]any{"mileage": -5})
	assert.ErrorIs(t, err, validation.ErrValidation)
}

func TestResource_ReadsAndDelete(t *testing.T) {
	srv, seen, _ := backend(t, http.StatusOK, `[{"license_plate":"ABC-123"}]`)
	cars := resource(t, newClient(t, srv.URL), schemas.Car)
	ctx := context.Background()

	list, err := cars.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"licensePlate": "ABC-123"}}, list)
	assert.Equal(t, "/cars", seen.path)

	_, err = cars.Get(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, "/cars/7", seen.path)

	require.NoError(t, cars.Delete(ctx, "7"))
	assert.Equal(t, http.MethodDelete, seen.method)
}

func TestClient_ResourceUnknownEntity(t *testing.T) {
	c := newClient(t, "http://localhost:1")
	_, err := c.Resource(schemas.New(time.Now), "invoices")
	assert.ErrorIs(t, err, schemas.ErrUnknownEntity)
}
