package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nuestra-historia/backend/internal/domain"
)

var _ memoryRepo = &memoryRepoMock{}

type memoryRepoMock struct {
	ListFunc       func(ctx context.Context) ([]domain.Memory, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Memory, error)
	CreateFunc     func(ctx context.Context, m *domain.Memory) (*domain.Memory, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, params domain.MemoryUpdate) (*domain.Memory, error)
	ToggleLikeFunc func(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Memory, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			M   *domain.Memory
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.MemoryUpdate
		}
		ToggleLike []struct {
			Ctx    context.Context
			ID     uuid.UUID
			UserID uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList       sync.RWMutex
	lockGetByID    sync.RWMutex
	lockCreate     sync.RWMutex
	lockUpdate     sync.RWMutex
	lockToggleLike sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *memoryRepoMock) List(ctx context.Context) ([]domain.Memory, error) {
	if mock.ListFunc == nil {
		panic("memoryRepoMock.ListFunc: method is nil but memoryRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx context.Context
	}{Ctx: ctx})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *memoryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Memory, error) {
	if mock.GetByIDFunc == nil {
		panic("memoryRepoMock.GetByIDFunc: method is nil but memoryRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *memoryRepoMock) Create(ctx context.Context, m *domain.Memory) (*domain.Memory, error) {
	if mock.CreateFunc == nil {
		panic("memoryRepoMock.CreateFunc: method is nil but memoryRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx context.Context
		M   *domain.Memory
	}{Ctx: ctx, M: m})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *memoryRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.MemoryUpdate) (*domain.Memory, error) {
	if mock.UpdateFunc == nil {
		panic("memoryRepoMock.UpdateFunc: method is nil but memoryRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.MemoryUpdate
	}{Ctx: ctx, ID: id, Params: params})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *memoryRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.MemoryUpdate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *memoryRepoMock) ToggleLike(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Memory, error) {
	if mock.ToggleLikeFunc == nil {
		panic("memoryRepoMock.ToggleLikeFunc: method is nil but memoryRepo.ToggleLike was just called")
	}
	mock.lockToggleLike.Lock()
	mock.calls.ToggleLike = append(mock.calls.ToggleLike, struct {
		Ctx    context.Context
		ID     uuid.UUID
		UserID uuid.UUID
	}{Ctx: ctx, ID: id, UserID: userID})
	mock.lockToggleLike.Unlock()
	return mock.ToggleLikeFunc(ctx, id, userID)
}

func (mock *memoryRepoMock) ToggleLikeCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	UserID uuid.UUID
} {
	mock.lockToggleLike.RLock()
	calls := mock.calls.ToggleLike
	mock.lockToggleLike.RUnlock()
	return calls
}

func (mock *memoryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("memoryRepoMock.DeleteFunc: method is nil but memoryRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}
