package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CustomerExists(ctx context.Context, workspaceID, customerID string) (bool, error) {
	args := m.Called(ctx, workspaceID, customerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CreateOrderTx(ctx context.Context, o *Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, workspaceID, id string) (*Order, error) {
	args := m.Called(ctx, workspaceID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, workspaceID string, limit int) ([]*Order, error) {
	args := m.Called(ctx, workspaceID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Order), args.Error(1)
}

func (m *MockRepository) TransitionTx(ctx context.Context, o *Order, logRow *StateLog) error {
	args := m.Called(ctx, o, logRow)
	return args.Error(0)
}

func (m *MockRepository) History(ctx context.Context, orderID string) ([]*StateLog, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*StateLog), args.Error(1)
}

// --- Helpers ---

const (
	wsID   = "ws-1"
	userID = "user-1"
)

func openOrder(id string) *Order {
	return &Order{
		ID:          id,
		WorkspaceID: wsID,
		CustomerID:  "cust-1",
		JobNumber:   1001,
		Title:       "Ladies Kente Dress",
		State:       StateOpen,
		DueDate:     time.Now().Add(72 * time.Hour),
		Amount:      decimal.NewFromInt(450),
	}
}

// --- Tests ---

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	input := CreateOrderInput{
		CustomerID: "cust-1",
		Title:      "Ladies Kente Dress",
		DueDate:    time.Now().Add(72 * time.Hour),
		Amount:     decimal.NewFromInt(450),
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("CustomerExists", ctx, wsID, "cust-1").Return(true, nil)
		mockRepo.On("CreateOrderTx", ctx, mock.MatchedBy(func(o *Order) bool {
			return o.WorkspaceID == wsID && o.CustomerID == "cust-1" && o.Title == input.Title
		})).Run(func(args mock.Arguments) {
			o := args.Get(1).(*Order)
			o.ID = "ord-1"
			o.JobNumber = 1001
		}).Return(nil)
		mockRepo.On("GetByID", ctx, wsID, "ord-1").Return(openOrder("ord-1"), nil)

		res, err := svc.Create(ctx, wsID, input)
		assert.NoError(t, err)
		assert.Equal(t, 1001, res.JobNumber)
		assert.Equal(t, StateOpen, res.State)
	})

	t.Run("MissingCustomer", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		bad := input
		bad.CustomerID = ""
		_, err := svc.Create(ctx, wsID, bad)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("MissingTitle", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		bad := input
		bad.Title = ""
		_, err := svc.Create(ctx, wsID, bad)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		bad := input
		bad.Amount = decimal.NewFromInt(-5)
		_, err := svc.Create(ctx, wsID, bad)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("UnknownCustomer", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("CustomerExists", ctx, wsID, "cust-1").Return(false, nil)

		_, err := svc.Create(ctx, wsID, input)
		assert.ErrorIs(t, err, ErrCustomerNotFound)
		mockRepo.AssertNotCalled(t, "CreateOrderTx")
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("CustomerExists", ctx, wsID, "cust-1").Return(true, nil)
		mockRepo.On("CreateOrderTx", ctx, mock.Anything).Return(errors.New("db error"))

		_, err := svc.Create(ctx, wsID, input)
		assert.Error(t, err)
	})
}

func TestService_Transition(t *testing.T) {
	ctx := context.Background()

	t.Run("OpenToClosed", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", ctx, wsID, "ord-1").Return(openOrder("ord-1"), nil)
		mockRepo.On("TransitionTx", ctx, mock.MatchedBy(func(o *Order) bool {
			return o.State == StateClosed && o.ExtendedEta == nil
		}), mock.MatchedBy(func(l *StateLog) bool {
			return l.FromState == StateOpen && l.ToState == StateClosed && l.ChangedBy == userID
		})).Return(nil)

		res, err := svc.Transition(ctx, wsID, userID, "ord-1", TransitionInput{NewState: StateClosed})
		assert.NoError(t, err)
		assert.Equal(t, StateClosed, res.State)
	})

	t.Run("OpenToExtended_SetsEta", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		eta := time.Now().Add(5 * 24 * time.Hour)
		mockRepo.On("GetByID", ctx, wsID, "ord-1").Return(openOrder("ord-1"), nil)
		mockRepo.On("TransitionTx", ctx, mock.MatchedBy(func(o *Order) bool {
			return o.State == StateExtended && o.ExtendedEta != nil && o.ExtendedEta.Equal(eta)
		}), mock.Anything).Return(nil)

		res, err := svc.Transition(ctx, wsID, userID, "ord-1", TransitionInput{
			NewState:    StateExtended,
			ExtendedEta: &eta,
		})
		assert.NoError(t, err)
		assert.NotNil(t, res.ExtendedEta)
	})

	t.Run("ExtendedWithoutEta", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", ctx, wsID, "ord-1").Return(openOrder("ord-1"), nil)

		_, err := svc.Transition(ctx, wsID, userID, "ord-1", TransitionInput{NewState: StateExtended})
		assert.ErrorIs(t, err, ErrValidation)
		mockRepo.AssertNotCalled(t, "TransitionTx")
	})

	t.Run("EtaClearedWhenLeavingExtended", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		eta := time.Now().Add(5 * 24 * time.Hour)
		extended := openOrder("ord-1")
		extended.State = StateExtended
		extended.ExtendedEta = &eta

		mockRepo.On("GetByID", ctx, wsID, "ord-1").Return(extended, nil)
		mockRepo.On("TransitionTx", ctx, mock.MatchedBy(func(o *Order) bool {
			return o.State == StateClosed && o.ExtendedEta == nil
		}), mock.Anything).Return(nil)

		res, err := svc.Transition(ctx, wsID, userID, "ord-1", TransitionInput{NewState: StateClosed})
		assert.NoError(t, err)
		assert.Nil(t, res.ExtendedEta)
	})

	t.Run("SelfLoopRejected", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", ctx, wsID, "ord-1").Return(openOrder("ord-1"), nil)

		_, err := svc.Transition(ctx, wsID, userID, "ord-1", TransitionInput{NewState: StateOpen})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("TerminalState", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		picked := openOrder("ord-1")
		picked.State = StatePickedUp
		mockRepo.On("GetByID", ctx, wsID, "ord-1").Return(picked, nil)

		_, err := svc.Transition(ctx, wsID, userID, "ord-1", TransitionInput{NewState: StateClosed})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("SkippingClosedRejected", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", ctx, wsID, "ord-1").Return(openOrder("ord-1"), nil)

		_, err := svc.Transition(ctx, wsID, userID, "ord-1", TransitionInput{NewState: StatePickedUp})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("UnknownState", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Transition(ctx, wsID, userID, "ord-1", TransitionInput{NewState: State("SHIPPED")})
		assert.ErrorIs(t, err, ErrValidation)
		mockRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", ctx, wsID, "missing").Return(nil, ErrOrderNotFound)

		_, err := svc.Transition(ctx, wsID, userID, "missing", TransitionInput{NewState: StateClosed})
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("DefaultNotes", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", ctx, wsID, "ord-1").Return(openOrder("ord-1"), nil)
		mockRepo.On("TransitionTx", ctx, mock.Anything, mock.MatchedBy(func(l *StateLog) bool {
			return l.Notes != nil && *l.Notes == "State changed from OPEN to CLOSED"
		})).Return(nil)

		_, err := svc.Transition(ctx, wsID, userID, "ord-1", TransitionInput{NewState: StateClosed})
		assert.NoError(t, err)
	})

	t.Run("CallerNotes", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		notes := "Customer picked fabric late"
		eta := time.Now().Add(48 * time.Hour)
		mockRepo.On("GetByID", ctx, wsID, "ord-1").Return(openOrder("ord-1"), nil)
		mockRepo.On("TransitionTx", ctx, mock.Anything, mock.MatchedBy(func(l *StateLog) bool {
			return l.Notes != nil && *l.Notes == notes
		})).Return(nil)

		_, err := svc.Transition(ctx, wsID, userID, "ord-1", TransitionInput{
			NewState:    StateExtended,
			ExtendedEta: &eta,
			Notes:       &notes,
		})
		assert.NoError(t, err)
	})
}

func TestService_History(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		logs := []*StateLog{{ID: "log-1", OrderID: "ord-1", FromState: StateOpen, ToState: StateClosed}}
		mockRepo.On("GetByID", ctx, wsID, "ord-1").Return(openOrder("ord-1"), nil)
		mockRepo.On("History", ctx, "ord-1").Return(logs, nil)

		res, err := svc.History(ctx, wsID, "ord-1")
		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("OtherWorkspace", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", ctx, wsID, "ord-1").Return(nil, ErrOrderNotFound)

		_, err := svc.History(ctx, wsID, "ord-1")
		assert.ErrorIs(t, err, ErrOrderNotFound)
		mockRepo.AssertNotCalled(t, "History")
	})
}

func TestState_CanTransition(t *testing.T) {
	cases := []struct {
		from, to State
		ok       bool
	}{
		{StateOpen, StateExtended, true},
		{StateOpen, StateClosed, true},
		{StateOpen, StatePickedUp, false},
		{StateExtended, StateOpen, true},
		{StateExtended, StateClosed, true},
		{StateClosed, StatePickedUp, true},
		{StateClosed, StateOpen, false},
		{StatePickedUp, StateClosed, false},
		{StateOpen, StateOpen, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, c.from.CanTransition(c.to), "%s -> %s", c.from, c.to)
	}
}
