package service_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Untitled-Cloud-CU/Untitled-storage-rental-location-microservice/internal/domain"
	"github.com/Untitled-Cloud-CU/Untitled-storage-rental-location-microservice/internal/service"
)

// ---- enqueue tests ---------------------------------------------------------

func TestJobService_EnqueueDelete_UnknownAddress(t *testing.T) {
	deleted := int32(0)
	r := &mockAddressRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Address, error) {
			return domain.Address{}, domain.ErrNotFound
		},
		delete: func(_ context.Context, _ uuid.UUID) (domain.Address, error) {
			atomic.AddInt32(&deleted, 1)
			return domain.Address{}, nil
		},
	}
	svc := service.NewJobService(r, time.Millisecond)

	_, err := svc.EnqueueDelete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	// Fail-fast: no job, no background work.
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&deleted))
}

func TestJobService_EnqueueDelete_JobIsPendingImmediately(t *testing.T) {
	stored := storedAddress()
	r := &mockAddressRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Address, error) { return stored, nil },
		delete:  func(_ context.Context, _ uuid.UUID) (domain.Address, error) { return stored, nil },
	}
	// Generous delay so the worker is still asleep when we look.
	svc := service.NewJobService(r, time.Minute)

	job, err := svc.EnqueueDelete(context.Background(), stored.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, domain.JobPending, job.Status)
	assert.Equal(t, stored.ID, job.AddressID)

	// The job is visible to polling before the worker has done anything.
	got, err := svc.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobPending, got.Status)
}

func TestJobService_EnqueueDelete_DeletionDeferredPastEnqueue(t *testing.T) {
	stored := storedAddress()
	deleted := int32(0)
	r := &mockAddressRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Address, error) { return stored, nil },
		delete: func(_ context.Context, _ uuid.UUID) (domain.Address, error) {
			atomic.AddInt32(&deleted, 1)
			return stored, nil
		},
	}
	svc := service.NewJobService(r, time.Minute)

	_, err := svc.EnqueueDelete(context.Background(), stored.ID)

	require.NoError(t, err)
	// Immediately after the enqueue the address has not been touched.
	assert.Zero(t, atomic.LoadInt32(&deleted))
}

// ---- lifecycle tests -------------------------------------------------------

func TestJobService_DeleteLifecycle_Completes(t *testing.T) {
	stored := storedAddress()
	r := &mockAddressRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Address, error) { return stored, nil },
		delete:  func(_ context.Context, _ uuid.UUID) (domain.Address, error) { return stored, nil },
	}
	svc := service.NewJobService(r, 5*time.Millisecond)

	job, err := svc.EnqueueDelete(context.Background(), stored.ID)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		got, err := svc.Get(job.ID)
		return err == nil && got.Status == domain.JobCompleted
	}, time.Second, 2*time.Millisecond)

	got, err := svc.Get(job.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Error)
	assert.Equal(t, stored.ID, got.AddressID)
}

func TestJobService_DeleteLifecycle_FailureCaptured(t *testing.T) {
	stored := storedAddress()
	r := &mockAddressRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Address, error) { return stored, nil },
		delete: func(_ context.Context, _ uuid.UUID) (domain.Address, error) {
			return domain.Address{}, errors.New("connection refused")
		},
	}
	svc := service.NewJobService(r, 5*time.Millisecond)

	job, err := svc.EnqueueDelete(context.Background(), stored.ID)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		got, err := svc.Get(job.ID)
		return err == nil && got.Status == domain.JobFailed
	}, time.Second, 2*time.Millisecond)

	got, err := svc.Get(job.ID)
	require.NoError(t, err)
	// The backend message is preserved for the polling client.
	assert.Contains(t, got.Error, "connection refused")
}

func TestJobService_DeleteLifecycle_SurvivesCancelledRequestContext(t *testing.T) {
	stored := storedAddress()
	r := &mockAddressRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Address, error) { return stored, nil },
		delete: func(ctx context.Context, _ uuid.UUID) (domain.Address, error) {
			// The worker's context must not carry the request's cancellation.
			if err := ctx.Err(); err != nil {
				return domain.Address{}, err
			}
			return stored, nil
		},
	}
	svc := service.NewJobService(r, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	job, err := svc.EnqueueDelete(ctx, stored.ID)
	require.NoError(t, err)

	// Simulate the client going away right after the 202.
	cancel()

	assert.Eventually(t, func() bool {
		got, err := svc.Get(job.ID)
		return err == nil && got.Status == domain.JobCompleted
	}, time.Second, 2*time.Millisecond)
}

// ---- polling tests ---------------------------------------------------------

func TestJobService_Get_UnknownID(t *testing.T) {
	svc := service.NewJobService(&mockAddressRepo{}, time.Millisecond)

	_, err := svc.Get(uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
