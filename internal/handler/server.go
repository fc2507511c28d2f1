// Package handler implements the HTTP handlers for the Address API.
// All handlers are methods on Server and are split into resource-specific
// files (address.go, job.go, root.go) that share the same struct so they can
// access its dependencies. Routing lives in Routes so main.go stays wiring-only.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Untitled-Cloud-CU/Untitled-storage-rental-location-microservice/internal/domain"
)

// AddressServicer defines the business operations the address handlers depend
// on. Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type AddressServicer interface {
	Create(ctx context.Context, addr domain.Address) (domain.Address, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Address, error)
	List(ctx context.Context, filter domain.AddressFilter, params domain.ListParams) ([]domain.Address, int64, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.AddressPatch, ifMatch string) (domain.Address, error)
}

// JobServicer defines the delete-job operations the handlers depend on.
type JobServicer interface {
	EnqueueDelete(ctx context.Context, addressID uuid.UUID) (domain.Job, error)
	Get(jobID string) (domain.Job, error)
}

// Server holds the dependencies shared by every handler method.
type Server struct {
	addresses AddressServicer
	jobs      JobServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(addresses AddressServicer, jobs JobServicer) *Server {
	return &Server{addresses: addresses, jobs: jobs}
}

// Routes returns the full route tree for the API. Mount it at the router
// root; middleware is applied by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.getWelcome)
	r.Get("/healthz", s.getHealth)
	r.Get("/openapi.yaml", s.getOpenAPI)
	r.Get("/docs", s.getDocs)

	r.Route("/addresses", func(r chi.Router) {
		r.Post("/", s.createAddress)
		r.Get("/", s.listAddresses)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getAddress)
			r.Patch("/", s.patchAddress)
			r.Delete("/", s.deleteAddress)
		})
	})

	r.Get("/jobs/{jobID}", s.getJob)

	return r
}
