// Package service contains the business logic for the Address API.
// Services orchestrate repo calls and enforce the update preconditions.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Untitled-Cloud-CU/Untitled-storage-rental-location-microservice/internal/domain"
	"github.com/Untitled-Cloud-CU/Untitled-storage-rental-location-microservice/internal/repo"
	"github.com/Untitled-Cloud-CU/Untitled-storage-rental-location-microservice/internal/resource"
)

// AddressService implements business logic for address operations.
type AddressService struct {
	repo repo.AddressRepo
}

// NewAddressService constructs an AddressService backed by the provided AddressRepo.
func NewAddressService(r repo.AddressRepo) *AddressService {
	return &AddressService{repo: r}
}

// Create persists a new address. When the caller did not supply an ID a fresh
// one is generated here, so the repo always inserts an explicit primary key.
func (s *AddressService) Create(ctx context.Context, addr domain.Address) (domain.Address, error) {
	if addr.ID == uuid.Nil {
		addr.ID = uuid.New()
	}
	result, err := s.repo.Insert(ctx, addr)
	if err != nil {
		return domain.Address{}, fmt.Errorf("service.AddressService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single address by ID.
// Returns domain.ErrNotFound if no address with that ID exists.
func (s *AddressService) GetByID(ctx context.Context, id uuid.UUID) (domain.Address, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Address{}, fmt.Errorf("service.AddressService.GetByID: %w", err)
	}
	return result, nil
}

// List returns one page of addresses matching the filter plus the total
// matching count. Always returns a non-nil slice so callers can safely
// range over it.
func (s *AddressService) List(ctx context.Context, filter domain.AddressFilter, params domain.ListParams) ([]domain.Address, int64, error) {
	addrs, total, err := s.repo.List(ctx, filter, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("service.AddressService.List: %w", err)
	}
	if addrs == nil {
		addrs = []domain.Address{}
	}
	return addrs, total, nil
}

// Update merges a partial patch over the stored address and persists the
// result. When ifMatch is non-empty it must equal the ETag of the address as
// currently stored; otherwise the update is rejected with
// domain.ErrPreconditionFailed and nothing is written.
// Returns domain.ErrNotFound if no address with that ID exists.
func (s *AddressService) Update(ctx context.Context, id uuid.UUID, patch domain.AddressPatch, ifMatch string) (domain.Address, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Address{}, fmt.Errorf("service.AddressService.Update: %w", err)
	}

	if ifMatch != "" {
		if tag := resource.ETag(resource.FromAddress(current)); tag != ifMatch {
			return domain.Address{}, fmt.Errorf("service.AddressService.Update: %w", domain.ErrPreconditionFailed)
		}
	}

	result, err := s.repo.Update(ctx, patch.ApplyTo(current))
	if err != nil {
		return domain.Address{}, fmt.Errorf("service.AddressService.Update: %w", err)
	}
	return result, nil
}
