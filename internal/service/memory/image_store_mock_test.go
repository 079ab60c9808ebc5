package memory

import (
	"context"
	"sync"

	"github.com/nuestra-historia/backend/internal/storage"
)

var _ imageStore = &imageStoreMock{}

type imageStoreMock struct {
	SaveFunc func(ctx context.Context, up storage.Upload) (string, error)

	RemoveFunc func(ctx context.Context, url string) error

	calls struct {
		Save []struct {
			Ctx context.Context
			Up  storage.Upload
		}
		Remove []struct {
			Ctx context.Context
			URL string
		}
	}
	lockSave   sync.RWMutex
	lockRemove sync.RWMutex
}

func (mock *imageStoreMock) Save(ctx context.Context, up storage.Upload) (string, error) {
	if mock.SaveFunc == nil {
		panic("imageStoreMock.SaveFunc: method is nil but imageStore.Save was just called")
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, struct {
		Ctx context.Context
		Up  storage.Upload
	}{Ctx: ctx, Up: up})
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, up)
}

func (mock *imageStoreMock) SaveCalls() []struct {
	Ctx context.Context
	Up  storage.Upload
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *imageStoreMock) Remove(ctx context.Context, url string) error {
	if mock.RemoveFunc == nil {
		panic("imageStoreMock.RemoveFunc: method is nil but imageStore.Remove was just called")
	}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, struct {
		Ctx context.Context
		URL string
	}{Ctx: ctx, URL: url})
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, url)
}

func (mock *imageStoreMock) RemoveCalls() []struct {
	Ctx context.Context
	URL string
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}
