package handlers

import (
	"context"
	"errors"
	"sync"

	"github.com/chepyr/taskboard/internal/models"
)

var errStoreDown = errors.New("connection refused")

// MockTaskRepository returns err from every call and counts the calls.
type MockTaskRepository struct {
	err   error
	calls int
	mutex sync.Mutex
}

func (m *MockTaskRepository) called() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.calls++
	return m.err
}

func (m *MockTaskRepository) ListAll(ctx context.Context) ([]models.Task, error) {
	return nil, m.called()
}

func (m *MockTaskRepository) Create(ctx context.Context, task models.NewTask) (int64, error) {
	return 0, m.called()
}

func (m *MockTaskRepository) SetComplete(ctx context.Context, id int64, complete bool) error {
	return m.called()
}

func (m *MockTaskRepository) Update(ctx context.Context, edit models.TaskEdit) error {
	return m.called()
}

func (m *MockTaskRepository) Delete(ctx context.Context, id int64) error {
	return m.called()
}

type MockUserRepository struct {
	users     []models.User
	createErr error
	mutex     sync.Mutex
}

func (m *MockUserRepository) Create(ctx context.Context, username string) (int64, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.createErr != nil {
		return 0, m.createErr
	}
	id := int64(len(m.users) + 1)
	m.users = append(m.users, models.User{ID: id, Username: username})
	return id, nil
}

func (m *MockUserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return append([]models.User{}, m.users...), nil
}

type failingPinger struct{}

func (failingPinger) PingContext(ctx context.Context) error {
	return errStoreDown
}
