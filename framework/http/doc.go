// Package http provides Laravel-style request and response helpers for the
// dashboard's JSON endpoints.
//
// # Request
//
//	req := gohttp.NewRequest(r)
//
//	// JSON object body, keys snake-cased for the backend
//	payload, err := req.Payload()
//
//	id    := req.RouteParam("id")
//	mode  := req.Query("mode", "create")
//	token := req.BearerToken()
//	rid   := req.RequestID()
//
// # Response
//
//	res := gohttp.NewResponse(w)
//
//	res.JSON(200, data)           // raw JSON with status
//	res.Success(data)             // 200 {"data": ...} camel-cased
//	res.Created(data)             // 201 {"data": ...} camel-cased
//	res.NoContent()               // 204
//
//	res.Error(400, "bad input")   // {"message": "bad input"}
//	res.NotFound()                // 404 {"message": "No encontrado."}
//	res.ServerError()             // 500 {"message": "Error del servidor."}
//	res.ValidationError(errs)     // 422 {"message": ..., "errors": {"field": ["msg"]}, "violations": [...]}
//
// Every body the UI receives is camelCase, including the field names of a 422:
// a failed "license_plate" is reported as "licensePlate".
package http
