package customer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, c *Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, c *Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, workspaceID, id string) (*Customer, error) {
	args := m.Called(ctx, workspaceID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Customer), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, workspaceID string) ([]*Customer, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Customer), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, workspaceID, id string) error {
	args := m.Called(ctx, workspaceID, id)
	return args.Error(0)
}

// --- Tests ---

func f(v float64) *float64 { return &v }

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	wsID := "ws-1"

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		c := &Customer{Name: "Ama", Phone: "0240000001", Chest: f(92.5)}
		mockRepo.On("Create", ctx, mock.MatchedBy(func(got *Customer) bool {
			return got.WorkspaceID == wsID
		})).Return(nil)

		res, err := svc.Create(ctx, wsID, c)
		assert.NoError(t, err)
		assert.Equal(t, wsID, res.WorkspaceID)
	})

	t.Run("MissingName", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Create(ctx, wsID, &Customer{Phone: "0240000001"})
		assert.ErrorIs(t, err, ErrValidation)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("MissingPhone", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Create(ctx, wsID, &Customer{Name: "Ama"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("NonPositiveMeasurement", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Create(ctx, wsID, &Customer{Name: "Ama", Phone: "0240000001", Waist: f(0)})
		assert.ErrorIs(t, err, ErrValidation)

		_, err = svc.Create(ctx, wsID, &Customer{Name: "Ama", Phone: "0240000001", Inseam: f(-3)})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("NilMeasurementsAllowed", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.Anything).Return(nil)

		_, err := svc.Create(ctx, wsID, &Customer{Name: "Ama", Phone: "0240000001"})
		assert.NoError(t, err)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	wsID := "ws-1"

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		c := &Customer{ID: "cust-1", Name: "Ama", Phone: "0240000009"}
		mockRepo.On("Update", ctx, c).Return(nil)
		mockRepo.On("GetByID", ctx, wsID, "cust-1").Return(c, nil)

		res, err := svc.Update(ctx, wsID, c)
		assert.NoError(t, err)
		assert.Equal(t, "0240000009", res.Phone)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		c := &Customer{ID: "missing", Name: "Ama", Phone: "0240000001"}
		mockRepo.On("Update", ctx, c).Return(ErrCustomerNotFound)

		_, err := svc.Update(ctx, wsID, c)
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})
}
