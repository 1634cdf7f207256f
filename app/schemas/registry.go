package schemas

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/km-arc/taller-dashboard/framework/http/validation"
)

var (
	// ErrUnknownEntity is returned for entity names with no schema.
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrUnknownMode is returned for modes other than create and update.
	ErrUnknownMode = errors.New("unknown schema mode")
)

// Entity names a schema'd resource by its API path segment.
type Entity string

const (
	Client    Entity = "clients"
	Car       Entity = "cars"
	WorkOrder Entity = "work-orders"
)

// Mode selects the create or update variant of a schema.
type Mode string

const (
	Create Mode = "create"
	Update Mode = "update"
)

// ParseEntity converts a path segment into an Entity.
func ParseEntity(s string) (Entity, error) {
	switch e := Entity(s); e {
	case Client, Car, WorkOrder:
		return e, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEntity, s)
}

// ParseMode converts a query value into a Mode; empty means Create.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "":
		return Create, nil
	case Create, Update:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Registry holds the create and update schema of every entity. Schemas that
// depend on the calendar year are rebuilt the first time they are looked up in
// a new year. A Registry is safe for concurrent use.
type Registry struct {
	clock func() time.Time
	cur   atomic.Pointer[schemaSet]
}

// schemaSet is every schema as of one calendar year.
type schemaSet struct {
	year   int
	create map[Entity]*validation.Schema
	update map[Entity]*validation.Schema
}

var builders = []struct {
	entity Entity
	build  func(now time.Time) *validation.Schema
}{
	{Client, func(time.Time) *validation.Schema { return ClientSchema() }},
	{Car, CarSchema},
	{WorkOrder, func(time.Time) *validation.Schema { return WorkOrderSchema() }},
}

// New builds the registry. clock supplies the current time for year-bound
// rules such as the newest accepted car model year; pass time.Now in
// production.
func New(clock func() time.Time) *Registry {
	r := &Registry{clock: clock}
	r.current()
	return r
}

func (r *Registry) current() *schemaSet {
	now := r.clock()
	if set := r.cur.Load(); set != nil && set.year == now.Year() {
		return set
	}

	set := &schemaSet{
		year:   now.Year(),
		create: make(map[Entity]*validation.Schema, len(builders)),
		update: make(map[Entity]*validation.Schema, len(builders)),
	}
	for _, b := range builders {
		s := b.build(now)
		set.create[b.entity] = s
		set.update[b.entity] = s.Update()
	}
	r.cur.Store(set)
	return set
}

// Entities lists the registered entities in registration order.
func (r *Registry) Entities() []Entity {
	out := make([]Entity, len(builders))
	for i, b := range builders {
		out[i] = b.entity
	}
	return out
}

// Lookup returns the schema of e for mode m.
func (r *Registry) Lookup(e Entity, m Mode) (*validation.Schema, error) {
	set := r.current()

	var schemas map[Entity]*validation.Schema
	switch m {
	case Create:
		schemas = set.create
	case Update:
		schemas = set.update
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, m)
	}
	s, ok := schemas[e]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, e)
	}
	return s, nil
}

// MustLookup is Lookup that panics on error.
func (r *Registry) MustLookup(e Entity, m Mode) *validation.Schema {
	s, err := r.Lookup(e, m)
	if err != nil {
		panic(err)
	}
	return s
}

// YAML renders every create schema as a YAML document keyed by entity.
func (r *Registry) YAML() ([]byte, error) {
	return yaml.Marshal(r.current().create)
}

// ── Typed parsing ────────────────────────────────────────────────────────────

// Parse validates input against s and decodes the validated values into T.
// On failure the error is the *validation.Errors listing every violation.
func Parse[T any](s *validation.Schema, input map[string]any) (T, error) {
	var out T

	v := validation.Make(input, s)
	if v.Fails() {
		return out, v.Errors()
	}

	b, err := json.Marshal(v.Data())
	if err != nil {
		return out, fmt.Errorf("schemas: encode %s: %w", s.Name, err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("schemas: decode %s: %w", s.Name, err)
	}
	return out, nil
}
