package message

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nuestra-historia/backend/internal/domain"
)

var _ messageRepo = &messageRepoMock{}

type messageRepoMock struct {
	ListFunc   func(ctx context.Context) ([]domain.Message, error)
	CreateFunc func(ctx context.Context, m *domain.Message) (*domain.Message, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			M   *domain.Message
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *messageRepoMock) List(ctx context.Context) ([]domain.Message, error) {
	if mock.ListFunc == nil {
		panic("messageRepoMock.ListFunc: method is nil but messageRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx context.Context
	}{Ctx: ctx})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *messageRepoMock) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	if mock.CreateFunc == nil {
		panic("messageRepoMock.CreateFunc: method is nil but messageRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx context.Context
		M   *domain.Message
	}{Ctx: ctx, M: m})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *messageRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.Message
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *messageRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("messageRepoMock.DeleteFunc: method is nil but messageRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}
