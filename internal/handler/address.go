package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Untitled-Cloud-CU/Untitled-storage-rental-location-microservice/internal/domain"
	"github.com/Untitled-Cloud-CU/Untitled-storage-rental-location-microservice/internal/resource"
)

var validate = validator.New()

// addressFields is the field set shared by the create payload and, via
// domain.Address, every response. Street, city, and country are the only
// fields enforced at creation; name is required semantically but historically
// unvalidated, and clients depend on that.
type addressFields struct {
	Name       string  `json:"name"`
	Street     string  `json:"street" validate:"required"`
	Unit       *string `json:"unit"`
	City       string  `json:"city" validate:"required"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Country    string  `json:"country" validate:"required"`
}

// createAddressRequest is the POST /addresses body. The ID is optional; the
// service generates one when it is absent.
type createAddressRequest struct {
	ID *uuid.UUID `json:"id"`
	addressFields
}

// optionalString is a PATCH body field that records whether its key appeared
// in the JSON at all. encoding/json invokes UnmarshalJSON only for keys
// present in the body, so Present false means the field was omitted, while an
// explicit null leaves Value nil with Present true.
type optionalString struct {
	Present bool
	Value   *string
}

func (o *optionalString) UnmarshalJSON(b []byte) error {
	o.Present = true
	return json.Unmarshal(b, &o.Value)
}

// patchAddressRequest is the PATCH /addresses/{id} body. Fields track their
// own presence so that an omitted field, an explicit null, and a value stay
// distinguishable after decoding: omitted keeps the stored value, null clears
// a nullable column.
type patchAddressRequest struct {
	Name       optionalString `json:"name"`
	Street     optionalString `json:"street"`
	Unit       optionalString `json:"unit"`
	City       optionalString `json:"city"`
	State      optionalString `json:"state"`
	PostalCode optionalString `json:"postal_code"`
	Country    optionalString `json:"country"`
}

// nulledRequiredField reports the first field the body tries to null out
// that backs a NOT NULL column. Only unit, state, and postal_code can be
// cleared.
func (r patchAddressRequest) nulledRequiredField() (string, bool) {
	for _, f := range []struct {
		name  string
		field optionalString
	}{
		{"name", r.Name},
		{"street", r.Street},
		{"city", r.City},
		{"country", r.Country},
	} {
		if f.field.Present && f.field.Value == nil {
			return f.name, true
		}
	}
	return "", false
}

// collectionResponse is the body of GET /addresses when GeoJSON is not requested.
type collectionResponse struct {
	Data  []resource.AddressResource `json:"data"`
	Links []domain.Link              `json:"links"`
}

// createAddress handles POST /addresses.
func (s *Server) createAddress(w http.ResponseWriter, r *http.Request) {
	var req createAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", "invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", validationMessage(err))
		return
	}

	created, err := s.addresses.Create(r.Context(), requestToAddress(req))
	if err != nil {
		respondServiceError(w, err, "address not found")
		return
	}

	res := resource.FromAddress(created)
	w.Header().Set("Location", "/addresses/"+created.ID.String())
	w.Header().Set("ETag", resource.ETag(res))
	respondJSON(w, http.StatusCreated, res)
}

// listAddresses handles GET /addresses.
// Filters are exact-match and ANDed; limit/offset control paging; as_geojson
// switches the body to a FeatureCollection. The X-Total-Count header always
// carries the full filtered total, independent of paging.
func (s *Server) listAddresses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.AddressFilter{
		Name:       q.Get("name"),
		Street:     q.Get("street"),
		Unit:       q.Get("unit"),
		City:       q.Get("city"),
		State:      q.Get("state"),
		PostalCode: q.Get("postal_code"),
		Country:    q.Get("country"),
	}

	limit, err := intQuery(q.Get("limit"), "limit")
	if err != nil {
		respondServiceError(w, err, "")
		return
	}
	offset, err := intQuery(q.Get("offset"), "offset")
	if err != nil {
		respondServiceError(w, err, "")
		return
	}
	params, err := domain.NewListParams(limit, offset)
	if err != nil {
		respondServiceError(w, err, "")
		return
	}

	asGeoJSON := false
	if raw := q.Get("as_geojson"); raw != "" {
		asGeoJSON, err = strconv.ParseBool(raw)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, "validation_error", "as_geojson must be a boolean")
			return
		}
	}

	addrs, total, err := s.addresses.List(r.Context(), filter, params)
	if err != nil {
		respondServiceError(w, err, "address not found")
		return
	}

	resources := resource.FromAddresses(addrs)
	links := resource.CollectionLinks(filter, params.Limit, params.Offset, total)
	w.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))

	if asGeoJSON {
		respondJSON(w, http.StatusOK, resource.NewFeatureCollection(resources, links, total))
		return
	}
	respondJSON(w, http.StatusOK, collectionResponse{Data: resources, Links: links})
}

// getAddress handles GET /addresses/{id}.
func (s *Server) getAddress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondServiceError(w, err, "")
		return
	}

	addr, err := s.addresses.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "address not found")
		return
	}

	res := resource.FromAddress(addr)
	w.Header().Set("ETag", resource.ETag(res))
	respondJSON(w, http.StatusOK, res)
}

// patchAddress handles PATCH /addresses/{id}.
// Fields absent from the body keep their stored values; an explicit null
// clears unit, state, or postal_code, and is a validation error on the
// NOT NULL columns. An If-Match header, when present, must carry the ETag of
// the resource as the client last saw it; a stale tag is rejected with 412
// before anything is written.
func (s *Server) patchAddress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondServiceError(w, err, "")
		return
	}

	var req patchAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", "invalid request body: "+err.Error())
		return
	}
	if field, ok := req.nulledRequiredField(); ok {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", field+" cannot be null")
		return
	}

	// Clients following RFC 9110 send If-Match wrapped in quotes; accept both.
	ifMatch := strings.Trim(r.Header.Get("If-Match"), `"`)

	updated, err := s.addresses.Update(r.Context(), id, requestToPatch(req), ifMatch)
	if err != nil {
		respondServiceError(w, err, "address not found")
		return
	}

	res := resource.FromAddress(updated)
	w.Header().Set("ETag", resource.ETag(res))
	respondJSON(w, http.StatusOK, res)
}

// --- request parsing helpers ------------------------------------------------

// pathID parses the {id} URL parameter. A malformed UUID is a validation
// failure (422), not a miss (404): the request never names a real resource.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: id must be a valid UUID", domain.ErrValidation)
	}
	return id, nil
}

// intQuery parses an optional integer query parameter, nil when absent.
func intQuery(raw, name string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", domain.ErrValidation, name)
	}
	return &n, nil
}

// validationMessage flattens a validator error into one human-readable line,
// e.g. "street is required; country is required".
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, strings.ToLower(fe.Field())+" is required")
	}
	return strings.Join(parts, "; ")
}

// --- mapping helpers --------------------------------------------------------

// requestToAddress converts a create payload into a domain.Address.
func requestToAddress(req createAddressRequest) domain.Address {
	addr := domain.Address{
		Name:       req.Name,
		Street:     req.Street,
		Unit:       req.Unit,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}
	if req.ID != nil {
		addr.ID = *req.ID
	}
	return addr
}

// requestToPatch converts a PATCH payload into a domain.AddressPatch.
// Explicit nulls on the NOT NULL fields were rejected before this point, so
// for those a nil Value simply means the field was absent.
func requestToPatch(req patchAddressRequest) domain.AddressPatch {
	return domain.AddressPatch{
		Name:       req.Name.Value,
		Street:     req.Street.Value,
		Unit:       domain.NullableString{Set: req.Unit.Present, Value: req.Unit.Value},
		City:       req.City.Value,
		State:      domain.NullableString{Set: req.State.Present, Value: req.State.Value},
		PostalCode: domain.NullableString{Set: req.PostalCode.Present, Value: req.PostalCode.Value},
		Country:    req.Country.Value,
	}
}
