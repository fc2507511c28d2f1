package resource

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/Untitled-Cloud-CU/Untitled-storage-rental-location-microservice/internal/domain"
)

// CollectionLinks computes the pagination links for one collection response.
// The returned slice is ordered current, first, last, then prev and next,
// each of which appears only when the corresponding page exists:
//
//	first  offset 0
//	last   the greatest multiple of limit strictly below total (0 when total ≤ limit)
//	prev   only when offset > 0; moves back one page, floored at 0
//	next   only when offset+limit < total; moves forward one page
//
// All hrefs repeat the caller's filters so a client can walk pages without
// reassembling the query itself.
func CollectionLinks(filter domain.AddressFilter, limit, offset int, total int64) []domain.Link {
	href := func(off int) string {
		return "/addresses?" + collectionQuery(filter, limit, off)
	}

	lastOffset := 0
	if total > 0 {
		lastOffset = int((total - 1) / int64(limit) * int64(limit))
	}

	links := []domain.Link{
		{Rel: "current", Href: href(offset)},
		{Rel: "first", Href: href(0)},
		{Rel: "last", Href: href(lastOffset)},
	}

	if offset > 0 {
		prev := offset - limit
		if prev < 0 {
			prev = 0
		}
		links = append(links, domain.Link{Rel: "prev", Href: href(prev)})
	}
	if int64(offset+limit) < total {
		links = append(links, domain.Link{Rel: "next", Href: href(offset + limit)})
	}

	return links
}

// collectionQuery assembles the query string for a collection href.
// Only supplied (non-empty) filters appear, in a fixed field order with
// limit and offset last. url.Values.Encode would sort alphabetically and
// scramble that order, so the string is built by hand; values still go
// through url.QueryEscape.
func collectionQuery(filter domain.AddressFilter, limit, offset int) string {
	var b strings.Builder

	add := func(key, val string) {
		if val == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(val))
	}

	add("name", filter.Name)
	add("street", filter.Street)
	add("unit", filter.Unit)
	add("city", filter.City)
	add("state", filter.State)
	add("postal_code", filter.PostalCode)
	add("country", filter.Country)
	add("limit", strconv.Itoa(limit))
	add("offset", strconv.Itoa(offset))

	return b.String()
}
