// Package domain contains the core data types for the Address API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, resource, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Address represents a single postal address row.
// ID is the immutable primary key; it is generated server-side when a create
// payload does not supply one, and is never reassigned afterwards.
// Unit, State, and PostalCode are nil when the column is NULL.
type Address struct {
	ID         uuid.UUID
	Name       string
	Street     string
	Unit       *string
	City       string
	State      *string
	PostalCode *string
	Country    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NullableString is a patch field targeting a column that may be NULL.
// The three request states map onto it as follows: a field absent from the
// body leaves Set false (keep the stored value); an explicit JSON null sets
// Set with a nil Value (clear the column); a string value sets both.
type NullableString struct {
	Set   bool
	Value *string
}

// AddressPatch carries the fields of a partial update. Non-nullable columns
// use a pointer: nil leaves the stored value alone, non-nil overwrites it.
// Unit, State, and PostalCode use NullableString, which additionally
// expresses an explicit null that clears the column.
// The address ID comes from the URL path, never from the patch.
type AddressPatch struct {
	Name       *string
	Street     *string
	Unit       NullableString
	City       *string
	State      NullableString
	PostalCode NullableString
	Country    *string
}

// ApplyTo merges the patch over a stored address and returns the result.
// Only supplied fields overwrite; the ID and timestamps are left untouched
// (the repo re-stamps updated_at when the merged row is persisted).
func (p AddressPatch) ApplyTo(a Address) Address {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Street != nil {
		a.Street = *p.Street
	}
	if p.Unit.Set {
		a.Unit = p.Unit.Value
	}
	if p.City != nil {
		a.City = *p.City
	}
	if p.State.Set {
		a.State = p.State.Value
	}
	if p.PostalCode.Set {
		a.PostalCode = p.PostalCode.Value
	}
	if p.Country != nil {
		a.Country = *p.Country
	}
	return a
}

// AddressFilter holds the exact-match predicates for collection queries.
// An empty string means "field not filtered" — it is omitted from the WHERE
// clause entirely, never matched against NULL.
type AddressFilter struct {
	Name       string
	Street     string
	Unit       string
	City       string
	State      string
	PostalCode string
	Country    string
}

// IsZero reports whether no filter field is set.
func (f AddressFilter) IsZero() bool {
	return f == AddressFilter{}
}
