// Package controllers holds the dashboard's HTTP controllers.
package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/km-arc/taller-dashboard/app/api"
	"github.com/km-arc/taller-dashboard/app/schemas"
	gohttp "github.com/km-arc/taller-dashboard/framework/http"
	"github.com/km-arc/taller-dashboard/framework/http/validation"
)

// statusClientClosedRequest is nginx's status for a client that hung up before
// the response was written.
const statusClientClosedRequest = 499

// respondError maps err onto an HTTP status. Every path writes a status.
func respondError(res *gohttp.Response, logger *slog.Logger, r *http.Request, err error) {
	var (
		bag    *validation.Errors
		apiErr *api.APIError
	)

	switch {
	case errors.As(err, &bag):
		res.ValidationError(bag)
	case errors.As(err, &apiErr):
		msg := apiErr.Message
		if msg == "" {
			msg = http.StatusText(apiErr.Status)
		}
		res.Error(apiErr.Status, msg)
	case errors.Is(err, schemas.ErrUnknownEntity):
		res.NotFound("Entidad desconocida.")
	case errors.Is(err, schemas.ErrUnknownMode),
		errors.Is(err, gohttp.ErrEmptyBody),
		errors.Is(err, gohttp.ErrNotObject),
		errors.Is(err, gohttp.ErrMalformedBody):
		res.Error(http.StatusBadRequest, err.Error())
	case errors.Is(err, context.Canceled) && r.Context().Err() != nil:
		res.Error(statusClientClosedRequest, "Solicitud cancelada.")
	case errors.Is(err, context.Canceled):
		logger.WarnContext(r.Context(), "backend call canceled",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		res.Error(http.StatusServiceUnavailable, "Servicio no disponible, intente de nuevo.")
	default:
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		res.Error(http.StatusBadGateway, "No se pudo completar la solicitud.")
	}
}
