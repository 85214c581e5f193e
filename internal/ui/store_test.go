package ui

import (
	"context"
	"errors"
	"testing"

	"estoque/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAPI is a mock implementation of API.
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockAPI) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockAPI) Update(ctx context.Context, id int64, input model.ProductInput) (*model.Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockAPI) Delete(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		api := new(MockAPI)
		api.On("List", ctx).Return(sampleProducts(), nil)

		store := NewStore(api, zerolog.Nop())
		require.NoError(t, store.Load(ctx))

		s := store.State()
		assert.False(t, s.Loading)
		assert.Len(t, s.Products, 2)
		api.AssertExpectations(t)
	})

	t.Run("Failure is recorded", func(t *testing.T) {
		api := new(MockAPI)
		api.On("List", ctx).Return(nil, errors.New("connection refused"))

		store := NewStore(api, zerolog.Nop())
		err := store.Load(ctx)

		require.Error(t, err)
		s := store.State()
		assert.False(t, s.Loading)
		assert.EqualError(t, s.Err, "connection refused")
		assert.Empty(t, s.Products)
	})
}

func TestStore_Submit_Create(t *testing.T) {
	ctx := context.Background()
	api := new(MockAPI)
	store := NewStore(api, zerolog.Nop())

	store.OpenCreate()
	store.SetDraft(Draft{Name: "Lasanha", Kind: model.KindFresh})

	created := model.Product{ID: 1, Name: "Lasanha", Kind: model.KindFresh}
	api.On("Create", ctx, Draft{Name: "Lasanha", Kind: model.KindFresh}.Input()).Return(&created, nil)
	api.On("List", ctx).Return([]model.Product{created}, nil)

	saved, err := store.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, &created, saved)

	s := store.State()
	assert.Nil(t, s.Form)
	assert.Equal(t, []model.Product{created}, s.Products)
	api.AssertExpectations(t)
	api.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestStore_Submit_Update(t *testing.T) {
	ctx := context.Background()
	api := new(MockAPI)
	api.On("List", ctx).Return(sampleProducts(), nil).Once()

	store := NewStore(api, zerolog.Nop())
	require.NoError(t, store.Load(ctx))
	require.NoError(t, store.OpenEdit(1))

	draft := store.State().Form.Draft
	draft.Quantity = 12
	draft.OutOfStock = false
	store.SetDraft(draft)

	updated := model.Product{ID: 1, Name: "Lasanha", Kind: model.KindFrozen, Quantity: 12}
	api.On("Update", ctx, int64(1), draft.Input()).Return(&updated, nil)
	api.On("List", ctx).Return([]model.Product{sampleProducts()[0], updated}, nil).Once()

	saved, err := store.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, saved.Quantity)

	s := store.State()
	assert.Nil(t, s.Form)
	assert.Equal(t, 12, s.Products[1].Quantity)
	api.AssertExpectations(t)
	api.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStore_Submit_FailureKeepsForm(t *testing.T) {
	ctx := context.Background()
	api := new(MockAPI)
	store := NewStore(api, zerolog.Nop())

	store.OpenCreate()
	failure := errors.New("api error: status 400: name is required")
	api.On("Create", ctx, mock.Anything).Return(nil, failure)

	saved, err := store.Submit(ctx)
	require.Error(t, err)
	assert.Nil(t, saved)
	assert.ErrorIs(t, err, failure)

	s := store.State()
	require.NotNil(t, s.Form)
	assert.Equal(t, failure, s.Err)
	api.AssertNotCalled(t, "List", mock.Anything)
}

func TestStore_Submit_NoForm(t *testing.T) {
	store := NewStore(new(MockAPI), zerolog.Nop())
	_, err := store.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNoForm)
}

func TestStore_OpenEdit_Unknown(t *testing.T) {
	store := NewStore(new(MockAPI), zerolog.Nop())
	assert.Error(t, store.OpenEdit(99))
	assert.Nil(t, store.State().Form)
}

func TestStore_Cancel(t *testing.T) {
	store := NewStore(new(MockAPI), zerolog.Nop())
	store.OpenCreate()
	store.Cancel()
	assert.Nil(t, store.State().Form)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Refetches after delete", func(t *testing.T) {
		api := new(MockAPI)
		products := sampleProducts()
		api.On("Delete", ctx, int64(2)).Return(&products[0], nil)
		api.On("List", ctx).Return(products[1:], nil)

		store := NewStore(api, zerolog.Nop())
		deleted, err := store.Delete(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Penne", deleted.Name)

		assert.Equal(t, products[1:], store.State().Products)
		api.AssertExpectations(t)
	})

	t.Run("Failure is recorded", func(t *testing.T) {
		api := new(MockAPI)
		api.On("Delete", ctx, int64(2)).Return(nil, errors.New("not found"))

		store := NewStore(api, zerolog.Nop())
		_, err := store.Delete(ctx, 2)
		require.Error(t, err)

		assert.EqualError(t, store.State().Err, "not found")
		api.AssertNotCalled(t, "List", mock.Anything)
	})
}
