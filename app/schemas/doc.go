// Package schemas defines the form schemas of the shop's entities: clients,
// cars and work orders. Field names follow the backend models (snake_case) and
// messages are the Spanish ones shown in the dashboard.
//
//	reg := schemas.New(time.Now)
//	s, _ := reg.Lookup(schemas.Car, schemas.Create)
//	car, err := schemas.Parse[schemas.CarForm](s, payload)
//	if errors.Is(err, validation.ErrValidation) { ... }
package schemas
