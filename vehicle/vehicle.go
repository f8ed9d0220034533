// Package vehicle defines the closed catalog of vehicle classes that travel
// the road network, and the weight function that turns a road's raw
// attributes into a traversal cost for one of them.
//
// The catalog is static configuration: it is resolved once, looked up by
// name, and never mutated. Unknown names are a caller error and surface as
// *UnknownClassError (errors.Is(err, ErrUnknownClass) holds).
//
// Catalog:
//
//	name           penalty  max distance  damaged roads
//	bike           0.5      30            yes
//	car            1        50            no
//	three_wheeler  1.2      40            yes
//	lorry          2        80            no
package vehicle

import (
	"errors"
	"fmt"
	"strings"
)

// DamagePenalty is the base cost added to a damaged road, scaled by the
// vehicle's PenaltyFactor.
const DamagePenalty = 10.0

// ErrUnknownClass indicates a vehicle class name or value outside the catalog.
var ErrUnknownClass = errors.New("vehicle: unknown vehicle class")

// UnknownClassError reports the offending name of a failed lookup.
type UnknownClassError struct {
	Name string
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("vehicle: unknown vehicle class %q", e.Name)
}

// Is makes errors.Is(err, ErrUnknownClass) true for any *UnknownClassError.
func (e *UnknownClassError) Is(target error) bool {
	return target == ErrUnknownClass
}

// Class enumerates the vehicle classes. The zero value None marks a road
// with no class label.
type Class int

const (
	None Class = iota
	Bike
	Car
	ThreeWheeler
	Lorry
)

var classNames = [...]string{
	None:         "none",
	Bike:         "bike",
	Car:          "car",
	ThreeWheeler: "three_wheeler",
	Lorry:        "lorry",
}

// String returns the catalog name of c.
func (c Class) String() string {
	if c < None || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// Title returns a display form of the class name ("three_wheeler" -> "Three Wheeler").
func (c Class) Title() string {
	words := strings.Split(c.String(), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// ParseClass resolves a class name. Matching ignores case and treats '-' and
// ' ' as '_'. The label "none" (or an empty string) maps to None.
func ParseClass(name string) (Class, error) {
	key := normalize(name)
	if key == "" {
		return None, nil
	}
	for c, n := range classNames {
		if n == key {
			return Class(c), nil
		}
	}
	return None, &UnknownClassError{Name: name}
}

func normalize(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "_")
	return strings.ReplaceAll(key, " ", "_")
}

// Vehicle is the fixed record of one catalog entry.
type Vehicle struct {
	Class Class

	// PenaltyFactor scales DamagePenalty on damaged roads. Always > 0.
	PenaltyFactor float64

	// MaxDistance is the nominal range of the vehicle. Informational only.
	MaxDistance float64

	// CanTravelOnDamaged reports whether damaged roads are eligible at all.
	CanTravelOnDamaged bool
}

// Name returns the catalog name of the vehicle.
func (v Vehicle) Name() string { return v.Class.String() }

// CanUse reports whether a road with the given damage state is eligible.
func (v Vehicle) CanUse(damaged bool) bool {
	return !damaged || v.CanTravelOnDamaged
}

var catalog = [...]Vehicle{
	{Class: Bike, PenaltyFactor: 0.5, MaxDistance: 30, CanTravelOnDamaged: true},
	{Class: Car, PenaltyFactor: 1, MaxDistance: 50, CanTravelOnDamaged: false},
	{Class: ThreeWheeler, PenaltyFactor: 1.2, MaxDistance: 40, CanTravelOnDamaged: true},
	{Class: Lorry, PenaltyFactor: 2, MaxDistance: 80, CanTravelOnDamaged: false},
}

// Catalog returns a copy of every catalog entry in Class order.
func Catalog() []Vehicle {
	out := make([]Vehicle, len(catalog))
	copy(out, catalog[:])
	return out
}

// Classes returns the catalog classes in order.
func Classes() []Class {
	out := make([]Class, len(catalog))
	for i, v := range catalog {
		out[i] = v.Class
	}
	return out
}

// Get returns the catalog entry for c.
func Get(c Class) (Vehicle, error) {
	for _, v := range catalog {
		if v.Class == c {
			return v, nil
		}
	}
	return Vehicle{}, &UnknownClassError{Name: c.String()}
}

// Lookup returns the catalog entry for name. Unlike ParseClass, the empty
// name and "none" are rejected: a query always needs a concrete vehicle.
func Lookup(name string) (Vehicle, error) {
	c, err := ParseClass(name)
	if err != nil {
		return Vehicle{}, err
	}
	if c == None {
		return Vehicle{}, &UnknownClassError{Name: name}
	}
	return Get(c)
}

// Weight is the effective traversal cost of a road for v:
//
//	distance + delay                              if !damaged
//	distance + delay + DamagePenalty*PenaltyFactor if damaged
//
// The penalty models degraded speed and applies whether or not v may use
// damaged roads; eligibility is decided separately by CanUse.
// Callers guarantee distance, delay >= 0.
func Weight(distance, delay float64, damaged bool, v Vehicle) float64 {
	w := distance + delay
	if damaged {
		w += DamagePenalty * v.PenaltyFactor
	}
	return w
}
