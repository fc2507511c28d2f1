package resource

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"time"

	"github.com/Untitled-Cloud-CU/Untitled-storage-rental-location-microservice/internal/domain"
)

// ETag computes the content-derived entity tag for an address resource:
// the lowercase hex SHA-256 of a canonical JSON serialization.
//
// Canonical means byte-identical for identical content, regardless of how the
// resource was produced: map-based marshaling gives lexicographic key order,
// timestamps are normalized to UTC RFC 3339 with nanoseconds, the UUID is its
// string form, and links are ordered by rel. Any change to any field
// (updated_at included) yields a different tag, which is what makes the tag
// usable as an If-Match precondition.
func ETag(res AddressResource) string {
	links := make([]map[string]any, 0, len(res.Links))
	for _, l := range sortedByRel(res.Links) {
		links = append(links, map[string]any{"rel": l.Rel, "href": l.Href})
	}

	canonical := map[string]any{
		"id":          res.ID.String(),
		"name":        res.Name,
		"street":      res.Street,
		"unit":        res.Unit,
		"city":        res.City,
		"state":       res.State,
		"postal_code": res.PostalCode,
		"country":     res.Country,
		"created_at":  res.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at":  res.UpdatedAt.UTC().Format(time.RFC3339Nano),
		"links":       links,
	}

	// The map holds only strings, nils, and maps of strings; Marshal cannot fail.
	b, _ := json.Marshal(canonical)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// sortedByRel returns a copy of links ordered by rel, with href breaking
// ties so the canonical form stays deterministic even when two links share a
// rel. The input (and the response order the client sees) is left untouched.
func sortedByRel(links []domain.Link) []domain.Link {
	out := make([]domain.Link, len(links))
	copy(out, links)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rel != out[j].Rel {
			return out[i].Rel < out[j].Rel
		}
		return out[i].Href < out[j].Href
	})
	return out
}
