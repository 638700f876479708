// Package mocks provides testify mocks for the repository contracts. They are
// hand-maintained; keep them in sync with pkg/repository.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/lifeboard/lifeboard/pkg/domain/account"
	"github.com/lifeboard/lifeboard/pkg/domain/goal"
	"github.com/lifeboard/lifeboard/pkg/domain/ledger"
	"github.com/lifeboard/lifeboard/pkg/domain/user"
	"github.com/lifeboard/lifeboard/pkg/repository"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUnitOfWork is a mock of repository.UnitOfWork.
type MockUnitOfWork struct {
	mock.Mock
}

// NewMockUnitOfWork creates a MockUnitOfWork whose expectations are asserted
// at test cleanup.
func NewMockUnitOfWork(t testingT) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Do records the call. When the expectation returns a function of the same
// signature it is invoked, which lets tests pass the callback through to the
// mock itself as a real transaction would:
//
//	uow.On("Do", mock.Anything, mock.Anything).Return(
//		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
//			return fn(uow)
//		})
func (m *MockUnitOfWork) Do(ctx context.Context, fn func(repository.UnitOfWork) error) error {
	ret := m.Called(ctx, fn)
	if do, ok := ret.Get(0).(func(context.Context, func(repository.UnitOfWork) error) error); ok {
		return do(ctx, fn)
	}
	return ret.Error(0)
}

// OnDo registers the passthrough Do expectation described above.
func (m *MockUnitOfWork) OnDo() *mock.Call {
	return m.On("Do", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(m)
		})
}

func (m *MockUnitOfWork) Accounts() (repository.AccountRepository, error) {
	ret := m.Called()
	repo, _ := ret.Get(0).(repository.AccountRepository)
	return repo, ret.Error(1)
}

func (m *MockUnitOfWork) Goals() (repository.GoalRepository, error) {
	ret := m.Called()
	repo, _ := ret.Get(0).(repository.GoalRepository)
	return repo, ret.Error(1)
}

func (m *MockUnitOfWork) Ledger() (repository.LedgerRepository, error) {
	ret := m.Called()
	repo, _ := ret.Get(0).(repository.LedgerRepository)
	return repo, ret.Error(1)
}

func (m *MockUnitOfWork) Users() (repository.UserRepository, error) {
	ret := m.Called()
	repo, _ := ret.Get(0).(repository.UserRepository)
	return repo, ret.Error(1)
}

// MockAccountRepository is a mock of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a MockAccountRepository whose expectations
// are asserted at test cleanup.
func NewMockAccountRepository(t testingT) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	ret := m.Called(ctx, id)
	a, _ := ret.Get(0).(*account.Account)
	return a, ret.Error(1)
}

func (m *MockAccountRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*account.Account, error) {
	ret := m.Called(ctx, userID)
	a, _ := ret.Get(0).(*account.Account)
	return a, ret.Error(1)
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*account.Account, int64, error) {
	ret := m.Called(ctx, limit, offset)
	accounts, _ := ret.Get(0).([]*account.Account)
	total, _ := ret.Get(1).(int64)
	return accounts, total, ret.Error(2)
}

func (m *MockAccountRepository) Create(ctx context.Context, a *account.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockGoalRepository is a mock of repository.GoalRepository.
type MockGoalRepository struct {
	mock.Mock
}

// NewMockGoalRepository creates a MockGoalRepository whose expectations are
// asserted at test cleanup.
func NewMockGoalRepository(t testingT) *MockGoalRepository {
	m := &MockGoalRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockGoalRepository) Get(ctx context.Context, id uuid.UUID) (*goal.Goal, error) {
	ret := m.Called(ctx, id)
	g, _ := ret.Get(0).(*goal.Goal)
	return g, ret.Error(1)
}

func (m *MockGoalRepository) List(ctx context.Context, limit, offset int) ([]*goal.Goal, int64, error) {
	ret := m.Called(ctx, limit, offset)
	goals, _ := ret.Get(0).([]*goal.Goal)
	total, _ := ret.Get(1).(int64)
	return goals, total, ret.Error(2)
}

func (m *MockGoalRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*goal.Goal, error) {
	ret := m.Called(ctx, accountID)
	goals, _ := ret.Get(0).([]*goal.Goal)
	return goals, ret.Error(1)
}

func (m *MockGoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockGoalRepository) Update(ctx context.Context, g *goal.Goal) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockGoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGoalRepository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) error {
	return m.Called(ctx, accountID).Error(0)
}

// MockLedgerRepository is a mock of repository.LedgerRepository.
type MockLedgerRepository struct {
	mock.Mock
}

// NewMockLedgerRepository creates a MockLedgerRepository whose expectations
// are asserted at test cleanup.
func NewMockLedgerRepository(t testingT) *MockLedgerRepository {
	m := &MockLedgerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockLedgerRepository) Get(ctx context.Context, id uuid.UUID) (*ledger.Entry, error) {
	ret := m.Called(ctx, id)
	e, _ := ret.Get(0).(*ledger.Entry)
	return e, ret.Error(1)
}

func (m *MockLedgerRepository) List(ctx context.Context, limit, offset int) ([]*ledger.Entry, int64, error) {
	ret := m.Called(ctx, limit, offset)
	entries, _ := ret.Get(0).([]*ledger.Entry)
	total, _ := ret.Get(1).(int64)
	return entries, total, ret.Error(2)
}

func (m *MockLedgerRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*ledger.Entry, error) {
	ret := m.Called(ctx, accountID)
	entries, _ := ret.Get(0).([]*ledger.Entry)
	return entries, ret.Error(1)
}

func (m *MockLedgerRepository) ListByGoal(ctx context.Context, goalID uuid.UUID) ([]*ledger.Entry, error) {
	ret := m.Called(ctx, goalID)
	entries, _ := ret.Get(0).([]*ledger.Entry)
	return entries, ret.Error(1)
}

func (m *MockLedgerRepository) Create(ctx context.Context, e *ledger.Entry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockLedgerRepository) Update(ctx context.Context, e *ledger.Entry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockLedgerRepository) UpdateAll(ctx context.Context, entries []*ledger.Entry) error {
	return m.Called(ctx, entries).Error(0)
}

func (m *MockLedgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLedgerRepository) DeleteAll(ctx context.Context, ids []uuid.UUID) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *MockLedgerRepository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) error {
	return m.Called(ctx, accountID).Error(0)
}

// MockUserRepository is a mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a MockUserRepository whose expectations are
// asserted at test cleanup.
func NewMockUserRepository(t testingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserRepository) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	ret := m.Called(ctx, id)
	u, _ := ret.Get(0).(*user.User)
	return u, ret.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	ret := m.Called(ctx, email)
	u, _ := ret.Get(0).(*user.User)
	return u, ret.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
