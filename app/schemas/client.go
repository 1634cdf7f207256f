package schemas

import v "github.com/km-arc/taller-dashboard/framework/http/validation"

// ClientSchema is the create schema of a client.
func ClientSchema() *v.Schema {
	return v.NewSchema("client",
		v.Field("name", v.String).As("nombre").
			Required("El nombre es requerido").
			MinLen(1, "El nombre es requerido").
			MaxLen(100, "El nombre no puede exceder 100 caracteres"),
		v.Field("lastname", v.String).As("apellido").
			MaxLen(100, "El apellido no puede exceder 100 caracteres"),
		v.Field("email", v.String).As("email").
			Required("El email es requerido").
			MaxLen(100, "El email no puede exceder 100 caracteres").
			Format(v.FormatEmail, "Email inválido"),
		v.Field("phone", v.String).As("teléfono").
			Required("El teléfono es requerido").
			MinLen(1, "El teléfono es requerido").
			MaxLen(20, "El teléfono no puede exceder 20 caracteres"),
		v.Field("address", v.String).As("dirección").
			MaxLen(200, "La dirección no puede exceder 200 caracteres"),
	)
}

// ClientForm is a validated client create payload.
type ClientForm struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname,omitempty"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
}

// ClientUpdate is a validated client update payload; nil fields are unchanged.
type ClientUpdate struct {
	Name     *string `json:"name,omitempty"`
	Lastname *string `json:"lastname,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}
