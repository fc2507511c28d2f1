// Package resource builds the wire representations of addresses: the JSON
// resource with its hypermedia links, the content-derived ETag, the
// collection pagination links, and the GeoJSON export shape.
// Everything here is a pure function of its inputs — no I/O, no clocks.
package resource

import (
	"time"

	"github.com/google/uuid"

	"github.com/Untitled-Cloud-CU/Untitled-storage-rental-location-microservice/internal/domain"
)

// AddressResource is the JSON shape of a single address as it appears in
// responses. It mirrors domain.Address field-for-field and adds the links
// array. Links are rebuilt on every response, never stored.
type AddressResource struct {
	ID         uuid.UUID     `json:"id"`
	Name       string        `json:"name"`
	Street     string        `json:"street"`
	Unit       *string       `json:"unit"`
	City       string        `json:"city"`
	State      *string       `json:"state"`
	PostalCode *string       `json:"postal_code"`
	Country    string        `json:"country"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
	Links      []domain.Link `json:"links"`
}

// FromAddress converts a stored address into its response representation,
// attaching the self and collection links.
func FromAddress(a domain.Address) AddressResource {
	return AddressResource{
		ID:         a.ID,
		Name:       a.Name,
		Street:     a.Street,
		Unit:       a.Unit,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
		Links: []domain.Link{
			{Rel: "self", Href: "/addresses/" + a.ID.String()},
			{Rel: "collection", Href: "/addresses"},
		},
	}
}

// FromAddresses converts a page of stored addresses. The result is never nil,
// so an empty page serializes as [] rather than null.
func FromAddresses(addrs []domain.Address) []AddressResource {
	out := make([]AddressResource, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, FromAddress(a))
	}
	return out
}
