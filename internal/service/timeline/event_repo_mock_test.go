package timeline

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nuestra-historia/backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	ListFunc   func(ctx context.Context) ([]domain.TimelineEvent, error)
	CreateFunc func(ctx context.Context, e *domain.TimelineEvent) (*domain.TimelineEvent, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, e *domain.TimelineEvent) (*domain.TimelineEvent, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			E   *domain.TimelineEvent
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			E   *domain.TimelineEvent
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *eventRepoMock) List(ctx context.Context) ([]domain.TimelineEvent, error) {
	if mock.ListFunc == nil {
		panic("eventRepoMock.ListFunc: method is nil but eventRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx context.Context
	}{Ctx: ctx})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *eventRepoMock) Create(ctx context.Context, e *domain.TimelineEvent) (*domain.TimelineEvent, error) {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx context.Context
		E   *domain.TimelineEvent
	}{Ctx: ctx, E: e})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *eventRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.TimelineEvent
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *eventRepoMock) Update(ctx context.Context, id uuid.UUID, e *domain.TimelineEvent) (*domain.TimelineEvent, error) {
	if mock.UpdateFunc == nil {
		panic("eventRepoMock.UpdateFunc: method is nil but eventRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Ctx context.Context
		ID  uuid.UUID
		E   *domain.TimelineEvent
	}{Ctx: ctx, ID: id, E: e})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, e)
}

func (mock *eventRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("eventRepoMock.DeleteFunc: method is nil but eventRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}
