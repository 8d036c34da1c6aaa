// Package models holds the example schema shipped with the codec: a user, a
// location with exact-decimal coordinates and a postal address.
// Importing the package registers every type in the default registry.
package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polymodel/go-polymodel/attr"
	"github.com/polymodel/go-polymodel/model"
	"github.com/polymodel/go-polymodel/registry"
)

const namespace = "github.com/polymodel/go-polymodel/models"

// User describes a person.
type User struct {
	Name        string
	DateOfBirth time.Time
	Height      float64
}

// Identity implements model.Model.
func (u User) Identity() model.Identity {
	return model.Identity{Namespace: namespace, Name: "User"}
}

// DumpFields implements model.Model. Dates become ISO-8601 text.
func (u User) DumpFields() (attr.Tree, error) {
	return attr.Tree{
		"name":          u.Name,
		"date_of_birth": u.DateOfBirth.UTC().Format(time.RFC3339),
		"height":        attr.Float(u.Height),
	}, nil
}

// ValidateUser constructs a User from a tree of its fields.
func ValidateUser(fields attr.Tree) (User, error) {
	name, err := fields.String("name")
	if err != nil {
		return User{}, err
	}

	born, err := fields.String("date_of_birth")
	if err != nil {
		return User{}, err
	}

	dateOfBirth, err := time.Parse(time.RFC3339, born)
	if err != nil {
		return User{}, fmt.Errorf("field date_of_birth: %w", err)
	}

	height, err := fields.Number("height")
	if err != nil {
		return User{}, err
	}

	heightValue, err := height.Float64()
	if err != nil {
		return User{}, fmt.Errorf("field height: %w", err)
	}

	return User{
		Name:        name,
		DateOfBirth: dateOfBirth,
		Height:      heightValue,
	}, nil
}

// Location describes a named point on the globe.
// Coordinates are exact decimals and round-trip without floating point
// rounding.
type Location struct {
	Name      string
	Latitude  decimal.Decimal
	Longitude decimal.Decimal
}

// Identity implements model.Model.
func (l Location) Identity() model.Identity {
	return model.Identity{Namespace: namespace, Name: "Location"}
}

// DumpFields implements model.Model.
func (l Location) DumpFields() (attr.Tree, error) {
	return attr.Tree{
		"name":      l.Name,
		"latitude":  json.Number(l.Latitude.String()),
		"longitude": json.Number(l.Longitude.String()),
	}, nil
}

// ValidateLocation constructs a Location from a tree of its fields.
func ValidateLocation(fields attr.Tree) (Location, error) {
	name, err := fields.String("name")
	if err != nil {
		return Location{}, err
	}

	latitude, err := decimalField(fields, "latitude")
	if err != nil {
		return Location{}, err
	}

	longitude, err := decimalField(fields, "longitude")
	if err != nil {
		return Location{}, err
	}

	return Location{
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}

// Address describes a street address.
type Address struct {
	Street string
	City   string
}

// Identity implements model.Model.
func (a Address) Identity() model.Identity {
	return model.Identity{Namespace: namespace, Name: "Address"}
}

// DumpFields implements model.Model.
func (a Address) DumpFields() (attr.Tree, error) {
	return attr.Tree{
		"street": a.Street,
		"city":   a.City,
	}, nil
}

// ValidateAddress constructs an Address from a tree of its fields.
func ValidateAddress(fields attr.Tree) (Address, error) {
	street, err := fields.String("street")
	if err != nil {
		return Address{}, err
	}

	city, err := fields.String("city")
	if err != nil {
		return Address{}, err
	}

	return Address{Street: street, City: city}, nil
}

func decimalField(fields attr.Tree, key string) (decimal.Decimal, error) {
	num, err := fields.Number(key)
	if err != nil {
		return decimal.Decimal{}, err
	}

	value, err := decimal.NewFromString(num.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("field %s: %w", key, err)
	}

	return value, nil
}

//nolint:gochecknoinits
func init() {
	registry.MustAdd(registry.Default(), ValidateUser)
	registry.MustAdd(registry.Default(), ValidateLocation)
	registry.MustAdd(registry.Default(), ValidateAddress)
}
