package mock

import (
	context "context"
	reflect "reflect"

	entities "recipe-catalog/entities"
	recipe "recipe-catalog/pkg/recipe"

	gomock "go.uber.org/mock/gomock"
)

// MockRecipeRepository is a mock of RecipeRepository interface.
type MockRecipeRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRecipeRepositoryMockRecorder
	isgomock struct{}
}

// MockRecipeRepositoryMockRecorder is the mock recorder for MockRecipeRepository.
type MockRecipeRepositoryMockRecorder struct {
	mock *MockRecipeRepository
}

// NewMockRecipeRepository creates a new mock instance.
func NewMockRecipeRepository(ctrl *gomock.Controller) *MockRecipeRepository {
	mock := &MockRecipeRepository{ctrl: ctrl}
	mock.recorder = &MockRecipeRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRecipeRepository) EXPECT() *MockRecipeRepositoryMockRecorder {
	return m.recorder
}

// CreateRecipe mocks base method.
func (m *MockRecipeRepository) CreateRecipe(ctx context.Context, r *entities.Recipe, ingredients []string) (*entities.Recipe, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateRecipe", ctx, r, ingredients)
	ret0, _ := ret[0].(*entities.Recipe)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateRecipe indicates an expected call of CreateRecipe.
func (mr *MockRecipeRepositoryMockRecorder) CreateRecipe(ctx, r, ingredients any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateRecipe", reflect.TypeOf((*MockRecipeRepository)(nil).CreateRecipe), ctx, r, ingredients)
}

// DeleteRecipe mocks base method.
func (m *MockRecipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteRecipe", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteRecipe indicates an expected call of DeleteRecipe.
func (mr *MockRecipeRepositoryMockRecorder) DeleteRecipe(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteRecipe", reflect.TypeOf((*MockRecipeRepository)(nil).DeleteRecipe), ctx, id)
}

// EditRecipe mocks base method.
func (m *MockRecipeRepository) EditRecipe(ctx context.Context, id uint, r *entities.Recipe, ingredients []string) (*entities.Recipe, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EditRecipe", ctx, id, r, ingredients)
	ret0, _ := ret[0].(*entities.Recipe)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// EditRecipe indicates an expected call of EditRecipe.
func (mr *MockRecipeRepositoryMockRecorder) EditRecipe(ctx, id, r, ingredients any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EditRecipe", reflect.TypeOf((*MockRecipeRepository)(nil).EditRecipe), ctx, id, r, ingredients)
}

// GetRecipeByID mocks base method.
func (m *MockRecipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecipeByID", ctx, id)
	ret0, _ := ret[0].(*entities.Recipe)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecipeByID indicates an expected call of GetRecipeByID.
func (mr *MockRecipeRepositoryMockRecorder) GetRecipeByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecipeByID", reflect.TypeOf((*MockRecipeRepository)(nil).GetRecipeByID), ctx, id)
}

// ListRecipes mocks base method.
func (m *MockRecipeRepository) ListRecipes(ctx context.Context, filter recipe.ListFilter, page, limit int) ([]entities.Recipe, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRecipes", ctx, filter, page, limit)
	ret0, _ := ret[0].([]entities.Recipe)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListRecipes indicates an expected call of ListRecipes.
func (mr *MockRecipeRepositoryMockRecorder) ListRecipes(ctx, filter, page, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRecipes", reflect.TypeOf((*MockRecipeRepository)(nil).ListRecipes), ctx, filter, page, limit)
}

// RateRecipe mocks base method.
func (m *MockRecipeRepository) RateRecipe(ctx context.Context, rate *entities.RecipeRate) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RateRecipe", ctx, rate)
	ret0, _ := ret[0].(error)
	return ret0
}

// RateRecipe indicates an expected call of RateRecipe.
func (mr *MockRecipeRepositoryMockRecorder) RateRecipe(ctx, rate any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RateRecipe", reflect.TypeOf((*MockRecipeRepository)(nil).RateRecipe), ctx, rate)
}
