package schemas

import v "github.com/km-arc/taller-dashboard/framework/http/validation"

// WorkOrderSchema is the create schema of a work order.
func WorkOrderSchema() *v.Schema {
	return v.NewSchema("work_order",
		v.Field("car_id", v.String).As("auto").
			Required("El auto es requerido").
			MinLen(1, "El auto es requerido"),
		v.Field("client_id", v.String).As("cliente").
			Required("El cliente es requerido").
			MinLen(1, "El cliente es requerido"),
		v.Field("description", v.String).As("descripción").
			Required("La descripción es requerida").
			MinLen(1, "La descripción es requerida").
			MaxLen(500, "La descripción no puede exceder 500 caracteres"),
		v.Field("total_cost", v.Number).As("costo total").
			Required("El costo total es requerido").
			Min(0, "El costo total no puede ser negativo"),
		v.Field("expenses", v.Number).As("gastos").
			Required("Los gastos son requeridos").
			Min(0, "Los gastos no pueden ser negativos"),
		v.Field("mechanic_name", v.String).As("mecánico").
			MaxLen(100, "El nombre del mecánico no puede exceder 100 caracteres"),
		v.Field("parts", v.StringArray).As("refacciones"),
		v.Field("labor_hours", v.Number).As("horas de trabajo").
			Min(0, "Las horas de trabajo no pueden ser negativas"),
	)
}

// WorkOrderForm is a validated work order create payload.
type WorkOrderForm struct {
	CarID        string   `json:"car_id"`
	ClientID     string   `json:"client_id"`
	Description  string   `json:"description"`
	TotalCost    float64  `json:"total_cost"`
	Expenses     float64  `json:"expenses"`
	MechanicName string   `json:"mechanic_name,omitempty"`
	Parts        []string `json:"parts,omitempty"`
	LaborHours   *float64 `json:"labor_hours,omitempty"`
}

// WorkOrderUpdate is a validated work order update payload; nil fields are
// unchanged.
type WorkOrderUpdate struct {
	CarID        *string  `json:"car_id,omitempty"`
	ClientID     *string  `json:"client_id,omitempty"`
	Description  *string  `json:"description,omitempty"`
	TotalCost    *float64 `json:"total_cost,omitempty"`
	Expenses     *float64 `json:"expenses,omitempty"`
	MechanicName *string  `json:"mechanic_name,omitempty"`
	Parts        []string `json:"parts,omitempty"`
	LaborHours   *float64 `json:"labor_hours,omitempty"`
}
