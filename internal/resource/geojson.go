package resource

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/Untitled-Cloud-CU/Untitled-storage-rental-location-microservice/internal/domain"
)

// Placeholder coordinates used until a caller supplies real geocoded values.
// No geocoding happens in this service.
const (
	DefaultLongitude = 0.0
	DefaultLatitude  = 0.0
)

// FeatureCollection is the body of a collection response when as_geojson is
// requested. It is a standard GeoJSON FeatureCollection extended with the
// same pagination links and total count the plain collection body carries.
type FeatureCollection struct {
	Type     string             `json:"type"`
	Features []*geojson.Feature `json:"features"`
	Links    []domain.Link      `json:"links"`
	Total    int64              `json:"total"`
}

// Feature converts one address resource into a GeoJSON Point feature at the
// given coordinates. Properties carry the address fields (postal_code is
// renamed postalCode, GeoJSON-style) plus the storage-inventory placeholders
// size and pricePerDay that the platform's map frontend expects on every
// location feature.
func Feature(res AddressResource, lon, lat float64) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{lon, lat})
	f.Properties = geojson.Properties{
		"id":          res.ID.String(),
		"name":        res.Name,
		"street":      res.Street,
		"unit":        res.Unit,
		"city":        res.City,
		"state":       res.State,
		"postalCode":  res.PostalCode,
		"country":     res.Country,
		"size":        "unknown",
		"pricePerDay": 0,
	}
	return f
}

// Features converts a page of resources element-wise at the placeholder
// coordinates. The result is never nil, so an empty page serializes as []
// rather than null.
func Features(resources []AddressResource) []*geojson.Feature {
	out := make([]*geojson.Feature, 0, len(resources))
	for _, res := range resources {
		out = append(out, Feature(res, DefaultLongitude, DefaultLatitude))
	}
	return out
}

// NewFeatureCollection assembles the GeoJSON collection body from an already
// converted page plus the pagination metadata.
func NewFeatureCollection(resources []AddressResource, links []domain.Link, total int64) FeatureCollection {
	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: Features(resources),
		Links:    links,
		Total:    total,
	}
}
