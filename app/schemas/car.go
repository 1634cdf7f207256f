package schemas

import (
	"fmt"
	"time"

	v "github.com/km-arc/taller-dashboard/framework/http/validation"
)

// MinCarYear is the oldest model year accepted.
const MinCarYear = 1900

// CarSchema is the create schema of a car. Model years up to one past the year
// of now are accepted.
func CarSchema(now time.Time) *v.Schema {
	maxYear := now.Year() + 1

	return v.NewSchema("car",
		v.Field("license_plate", v.String).As("placa").
			Required("La placa es requerida").
			MinLen(1, "La placa es requerida").
			MaxLen(20, "La placa no puede exceder 20 caracteres"),
		v.Field("brand", v.String).As("marca").
			Required("La marca es requerida").
			MinLen(1, "La marca es requerida").
			MaxLen(50, "La marca no puede exceder 50 caracteres"),
		v.Field("model", v.String).As("modelo").
			Required("El modelo es requerido").
			MinLen(1, "El modelo es requerido").
			MaxLen(50, "El modelo no puede exceder 50 caracteres"),
		v.Field("year", v.Number).As("año").
			Required("El año es requerido").
			Message(v.ConstraintType, "El año debe ser un número").
			Int("El año debe ser un número entero").
			Min(MinCarYear, fmt.Sprintf("El año debe ser mayor o igual a %d", MinCarYear)).
			Max(float64(maxYear), fmt.Sprintf("El año no puede ser mayor a %d", maxYear)),
		v.Field("color", v.String).As("color").
			MaxLen(30, "El color no puede exceder 30 caracteres"),
		v.Field("vin", v.String).As("VIN").
			MaxLen(17, "El VIN no puede exceder 17 caracteres"),
		v.Field("owner_id", v.String).As("propietario").
			Required("El propietario es requerido").
			MinLen(1, "El propietario es requerido"),
		v.Field("mileage", v.Number).As("kilometraje").
			Min(0, "El kilometraje no puede ser negativo"),
	)
}

// CarForm is a validated car create payload.
type CarForm struct {
	LicensePlate string   `json:"license_plate"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Color        string   `json:"color,omitempty"`
	VIN          string   `json:"vin,omitempty"`
	OwnerID      string   `json:"owner_id"`
	Mileage      *float64 `json:"mileage,omitempty"`
}

// CarUpdate is a validated car update payload; nil fields are unchanged.
type CarUpdate struct {
	LicensePlate *string  `json:"license_plate,omitempty"`
	Brand        *string  `json:"brand,omitempty"`
	Model        *string  `json:"model,omitempty"`
	Year         *int     `json:"year,omitempty"`
	Color        *string  `json:"color,omitempty"`
	VIN          *string  `json:"vin,omitempty"`
	OwnerID      *string  `json:"owner_id,omitempty"`
	Mileage      *float64 `json:"mileage,omitempty"`
}
