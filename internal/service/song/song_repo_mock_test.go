package song

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nuestra-historia/backend/internal/domain"
)

var _ songRepo = &songRepoMock{}

type songRepoMock struct {
	ListFunc   func(ctx context.Context) ([]domain.Song, error)
	CreateFunc func(ctx context.Context, s *domain.Song) (*domain.Song, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, s *domain.Song) (*domain.Song, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			S   *domain.Song
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			S   *domain.Song
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

func (mock *songRepoMock) List(ctx context.Context) ([]domain.Song, error) {
	if mock.ListFunc == nil {
		panic("songRepoMock.ListFunc: method is nil but songRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx context.Context
	}{Ctx: ctx})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *songRepoMock) Create(ctx context.Context, s *domain.Song) (*domain.Song, error) {
	if mock.CreateFunc == nil {
		panic("songRepoMock.CreateFunc: method is nil but songRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx context.Context
		S   *domain.Song
	}{Ctx: ctx, S: s})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *songRepoMock) Update(ctx context.Context, id uuid.UUID, s *domain.Song) (*domain.Song, error) {
	if mock.UpdateFunc == nil {
		panic("songRepoMock.UpdateFunc: method is nil but songRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Ctx context.Context
		ID  uuid.UUID
		S   *domain.Song
	}{Ctx: ctx, ID: id, S: s})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, s)
}

func (mock *songRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("songRepoMock.DeleteFunc: method is nil but songRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}
