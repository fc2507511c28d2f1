package domain

// Link is a single hypermedia reference embedded in a resource or collection
// response. Rel identifies the relationship (self, collection, current,
// first, last, prev, next); Href is a server-relative URL.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}
