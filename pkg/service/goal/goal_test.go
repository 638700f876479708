package goal

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lifeboard/lifeboard/internal/fixtures/mocks"
	"github.com/lifeboard/lifeboard/pkg/domain"
	accountdomain "github.com/lifeboard/lifeboard/pkg/domain/account"
	goaldomain "github.com/lifeboard/lifeboard/pkg/domain/goal"
	ledgerdomain "github.com/lifeboard/lifeboard/pkg/domain/ledger"
	"github.com/lifeboard/lifeboard/pkg/dto"
	accountsvc "github.com/lifeboard/lifeboard/pkg/service/account"
	ledgersvc "github.com/lifeboard/lifeboard/pkg/service/ledger"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(uow *mocks.MockUnitOfWork) *Service {
	logger := newTestLogger()
	accounts := accountsvc.New(uow, logger)
	entries := ledgersvc.New(uow, accounts, logger)
	return New(uow, accounts, entries, logger)
}

func newAccount(balance int64) *accountdomain.Account {
	return accountdomain.NewFromData(
		uuid.New(), uuid.New(),
		decimal.NewFromInt(balance), decimal.NewFromInt(5000),
		time.Now(), time.Now(),
	)
}

func newGoal(t *testing.T, accountID uuid.UUID, target, allocated int64) *goaldomain.Goal {
	t.Helper()
	g, err := goaldomain.New(accountID, "Trip", decimal.NewFromInt(target), decimal.NewFromInt(allocated), time.Now().AddDate(1, 0, 0))
	require.NoError(t, err)
	return g
}

func TestCreateReservesBalanceWithoutLedgerEntry(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	goalRepo := mocks.NewMockGoalRepository(t)
	accountRepo := mocks.NewMockAccountRepository(t)
	svc := newService(uow)

	acct := newAccount(1000)

	uow.OnDo()
	uow.On("Goals").Return(goalRepo, nil)
	uow.On("Accounts").Return(accountRepo, nil)
	accountRepo.On("Get", mock.Anything, acct.ID).Return(acct, nil)
	accountRepo.On("Update", mock.Anything, acct).Return(nil)
	goalRepo.On("Create", mock.Anything, mock.AnythingOfType("*goal.Goal")).Return(nil)
	// No Ledger expectation: any ledger access fails the test. Reserving the
	// initial allocation must not emit an entry.

	g, err := svc.Create(context.Background(), dto.GoalCreate{
		AccountID:        acct.ID,
		Name:             "Trip",
		TargetAmount:     decimal.NewFromInt(1000),
		InitialAllocated: decimal.NewFromInt(300),
		Deadline:         time.Now().AddDate(1, 0, 0),
	})
	require.NoError(t, err)
	assert.True(t, acct.Balance.Equal(decimal.NewFromInt(700)))
	assert.True(t, g.AllocatedAmount.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, goaldomain.StatusInProgress, g.Status)
}

func TestCreateInsufficientBalance(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	accountRepo := mocks.NewMockAccountRepository(t)
	svc := newService(uow)

	acct := newAccount(200)

	uow.OnDo()
	uow.On("Accounts").Return(accountRepo, nil)
	accountRepo.On("Get", mock.Anything, acct.ID).Return(acct, nil)

	_, err := svc.Create(context.Background(), dto.GoalCreate{
		AccountID:        acct.ID,
		Name:             "Trip",
		TargetAmount:     decimal.NewFromInt(1000),
		InitialAllocated: decimal.NewFromInt(300),
		Deadline:         time.Now().AddDate(1, 0, 0),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.True(t, acct.Balance.Equal(decimal.NewFromInt(200)))
}

func TestFund(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	goalRepo := mocks.NewMockGoalRepository(t)
	accountRepo := mocks.NewMockAccountRepository(t)
	ledgerRepo := mocks.NewMockLedgerRepository(t)
	svc := newService(uow)

	acct := newAccount(700)
	g := newGoal(t, acct.ID, 1000, 300)

	var created *ledgerdomain.Entry
	uow.OnDo()
	uow.On("Goals").Return(goalRepo, nil)
	uow.On("Accounts").Return(accountRepo, nil)
	uow.On("Ledger").Return(ledgerRepo, nil)
	goalRepo.On("Get", mock.Anything, g.ID).Return(g, nil)
	goalRepo.On("Update", mock.Anything, g).Return(nil)
	accountRepo.On("Get", mock.Anything, acct.ID).Return(acct, nil)
	accountRepo.On("Update", mock.Anything, acct).Return(nil)
	ledgerRepo.On("Create", mock.Anything, mock.AnythingOfType("*ledger.Entry")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*ledgerdomain.Entry) }).
		Return(nil)

	got, err := svc.Fund(context.Background(), g.ID, decimal.NewFromInt(200))
	require.NoError(t, err)

	assert.True(t, got.AllocatedAmount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, goaldomain.StatusInProgress, got.Status)
	assert.True(t, acct.Balance.Equal(decimal.NewFromInt(500)))

	require.NotNil(t, created)
	assert.Equal(t, ledgerdomain.KindAllocate, created.Kind)
	assert.Equal(t, ledgerdomain.CategoryInvestment, created.Category)
	assert.Equal(t, "Allocation to goal: Trip", created.Description)
	require.NotNil(t, created.GoalID)
	assert.Equal(t, g.ID, *created.GoalID)
	assert.True(t, created.Amount.Equal(decimal.NewFromInt(200)))
}

func TestFundCompletesGoal(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	goalRepo := mocks.NewMockGoalRepository(t)
	accountRepo := mocks.NewMockAccountRepository(t)
	ledgerRepo := mocks.NewMockLedgerRepository(t)
	svc := newService(uow)

	acct := newAccount(700)
	g := newGoal(t, acct.ID, 1000, 300)

	uow.OnDo()
	uow.On("Goals").Return(goalRepo, nil)
	uow.On("Accounts").Return(accountRepo, nil)
	uow.On("Ledger").Return(ledgerRepo, nil)
	goalRepo.On("Get", mock.Anything, g.ID).Return(g, nil)
	goalRepo.On("Update", mock.Anything, g).Return(nil)
	accountRepo.On("Get", mock.Anything, acct.ID).Return(acct, nil)
	accountRepo.On("Update", mock.Anything, acct).Return(nil)
	ledgerRepo.On("Create", mock.Anything, mock.AnythingOfType("*ledger.Entry")).Return(nil)

	got, err := svc.Fund(context.Background(), g.ID, decimal.NewFromInt(700))
	require.NoError(t, err)
	assert.Equal(t, goaldomain.StatusCompleted, got.Status)
	assert.True(t, got.AllocatedAmount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, acct.Balance.Equal(decimal.Zero))
}

func TestFundInsufficientBalance(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	goalRepo := mocks.NewMockGoalRepository(t)
	accountRepo := mocks.NewMockAccountRepository(t)
	svc := newService(uow)

	acct := newAccount(500)
	g := newGoal(t, acct.ID, 1000, 500)

	uow.OnDo()
	uow.On("Goals").Return(goalRepo, nil)
	uow.On("Accounts").Return(accountRepo, nil)
	goalRepo.On("Get", mock.Anything, g.ID).Return(g, nil)
	accountRepo.On("Get", mock.Anything, acct.ID).Return(acct, nil)

	_, err := svc.Fund(context.Background(), g.ID, decimal.NewFromInt(600))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	// Nothing moved.
	assert.True(t, acct.Balance.Equal(decimal.NewFromInt(500)))
	assert.True(t, g.AllocatedAmount.Equal(decimal.NewFromInt(500)))
}

func TestFundRejectsNonPositiveAmount(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	svc := newService(uow)
	uow.OnDo()

	_, err := svc.Fund(context.Background(), uuid.New(), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Fund(context.Background(), uuid.New(), decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWithdraw(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	goalRepo := mocks.NewMockGoalRepository(t)
	accountRepo := mocks.NewMockAccountRepository(t)
	ledgerRepo := mocks.NewMockLedgerRepository(t)
	svc := newService(uow)

	acct := newAccount(500)
	g := newGoal(t, acct.ID, 1000, 500)

	var created *ledgerdomain.Entry
	uow.OnDo()
	uow.On("Goals").Return(goalRepo, nil)
	uow.On("Accounts").Return(accountRepo, nil)
	uow.On("Ledger").Return(ledgerRepo, nil)
	goalRepo.On("Get", mock.Anything, g.ID).Return(g, nil)
	goalRepo.On("Update", mock.Anything, g).Return(nil)
	accountRepo.On("Get", mock.Anything, acct.ID).Return(acct, nil)
	accountRepo.On("Update", mock.Anything, acct).Return(nil)
	ledgerRepo.On("Create", mock.Anything, mock.AnythingOfType("*ledger.Entry")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*ledgerdomain.Entry) }).
		Return(nil)

	got, err := svc.Withdraw(context.Background(), g.ID, decimal.NewFromInt(200))
	require.NoError(t, err)

	assert.True(t, got.AllocatedAmount.Equal(decimal.NewFromInt(300)))
	assert.True(t, acct.Balance.Equal(decimal.NewFromInt(700)))

	require.NotNil(t, created)
	assert.Equal(t, ledgerdomain.KindDeallocate, created.Kind)
	assert.Equal(t, "Withdrawal from goal: Trip", created.Description)
}

func TestWithdrawMoreThanAllocated(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	goalRepo := mocks.NewMockGoalRepository(t)
	svc := newService(uow)

	g := newGoal(t, uuid.New(), 1000, 100)

	uow.OnDo()
	uow.On("Goals").Return(goalRepo, nil)
	goalRepo.On("Get", mock.Anything, g.ID).Return(g, nil)

	_, err := svc.Withdraw(context.Background(), g.ID, decimal.NewFromInt(200))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.True(t, g.AllocatedAmount.Equal(decimal.NewFromInt(100)))
}

// Funding then withdrawing the same amount restores both the balance and the
// allocation: money is conserved across the pair.
func TestFundWithdrawRoundTrip(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	goalRepo := mocks.NewMockGoalRepository(t)
	accountRepo := mocks.NewMockAccountRepository(t)
	ledgerRepo := mocks.NewMockLedgerRepository(t)
	svc := newService(uow)

	acct := newAccount(700)
	g := newGoal(t, acct.ID, 1000, 300)

	uow.OnDo()
	uow.On("Goals").Return(goalRepo, nil)
	uow.On("Accounts").Return(accountRepo, nil)
	uow.On("Ledger").Return(ledgerRepo, nil)
	goalRepo.On("Get", mock.Anything, g.ID).Return(g, nil)
	goalRepo.On("Update", mock.Anything, g).Return(nil)
	accountRepo.On("Get", mock.Anything, acct.ID).Return(acct, nil)
	accountRepo.On("Update", mock.Anything, acct).Return(nil)
	ledgerRepo.On("Create", mock.Anything, mock.AnythingOfType("*ledger.Entry")).Return(nil)

	_, err := svc.Fund(context.Background(), g.ID, decimal.NewFromInt(200))
	require.NoError(t, err)
	_, err = svc.Withdraw(context.Background(), g.ID, decimal.NewFromInt(200))
	require.NoError(t, err)

	assert.True(t, acct.Balance.Equal(decimal.NewFromInt(700)))
	assert.True(t, g.AllocatedAmount.Equal(decimal.NewFromInt(300)))
}

func TestUpdateRenamePropagatesToLedger(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	goalRepo := mocks.NewMockGoalRepository(t)
	ledgerRepo := mocks.NewMockLedgerRepository(t)
	svc := newService(uow)

	g := newGoal(t, uuid.New(), 1000, 300)

	allocation := &ledgerdomain.Entry{
		ID: uuid.New(), AccountID: g.AccountID, GoalID: &g.ID,
		Description: "Allocation to goal: Trip",
		Amount:      decimal.NewFromInt(200), Kind: ledgerdomain.KindAllocate,
		Category: ledgerdomain.CategoryInvestment,
	}
	withdrawal := &ledgerdomain.Entry{
		ID: uuid.New(), AccountID: g.AccountID, GoalID: &g.ID,
		Description: "Withdrawal from goal: Trip",
		Amount:      decimal.NewFromInt(50), Kind: ledgerdomain.KindDeallocate,
		Category: ledgerdomain.CategoryInvestment,
	}
	edited := &ledgerdomain.Entry{
		ID: uuid.New(), AccountID: g.AccountID, GoalID: &g.ID,
		Description: "My custom note",
		Amount:      decimal.NewFromInt(10), Kind: ledgerdomain.KindAllocate,
		Category: ledgerdomain.CategoryInvestment,
	}

	var updated []*ledgerdomain.Entry
	uow.OnDo()
	uow.On("Goals").Return(goalRepo, nil)
	uow.On("Ledger").Return(ledgerRepo, nil)
	goalRepo.On("Get", mock.Anything, g.ID).Return(g, nil)
	goalRepo.On("Update", mock.Anything, g).Return(nil)
	ledgerRepo.On("ListByGoal", mock.Anything, g.ID).
		Return([]*ledgerdomain.Entry{allocation, withdrawal, edited}, nil)
	ledgerRepo.On("UpdateAll", mock.Anything, mock.AnythingOfType("[]*ledger.Entry")).
		Run(func(args mock.Arguments) { updated = args.Get(1).([]*ledgerdomain.Entry) }).
		Return(nil)

	got, err := svc.Update(context.Background(), g.ID, dto.GoalUpdate{
		Name:         "Honeymoon",
		TargetAmount: decimal.NewFromInt(1000),
		Deadline:     g.Deadline,
	})
	require.NoError(t, err)
	assert.Equal(t, "Honeymoon", got.Name)

	// Only the synthesized descriptions are rewritten; the edited one is left
	// alone.
	require.Len(t, updated, 2)
	assert.Equal(t, "Allocation to goal: Honeymoon", allocation.Description)
	assert.Equal(t, "Withdrawal from goal: Honeymoon", withdrawal.Description)
	assert.Equal(t, "My custom note", edited.Description)
}

func TestUpdateWithoutRenameSkipsLedger(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	goalRepo := mocks.NewMockGoalRepository(t)
	svc := newService(uow)

	g := newGoal(t, uuid.New(), 1000, 300)

	uow.OnDo()
	uow.On("Goals").Return(goalRepo, nil)
	goalRepo.On("Get", mock.Anything, g.ID).Return(g, nil)
	goalRepo.On("Update", mock.Anything, g).Return(nil)

	got, err := svc.Update(context.Background(), g.ID, dto.GoalUpdate{
		Name:         "Trip",
		TargetAmount: decimal.NewFromInt(250),
		Deadline:     g.Deadline,
	})
	require.NoError(t, err)
	// Lowering the target below the allocation completes the goal.
	assert.Equal(t, goaldomain.StatusCompleted, got.Status)
}

func TestDeleteRefundsAllocation(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	goalRepo := mocks.NewMockGoalRepository(t)
	accountRepo := mocks.NewMockAccountRepository(t)
	ledgerRepo := mocks.NewMockLedgerRepository(t)
	svc := newService(uow)

	acct := newAccount(700)
	g := newGoal(t, acct.ID, 1000, 300)

	entry := &ledgerdomain.Entry{
		ID: uuid.New(), AccountID: g.AccountID, GoalID: &g.ID,
		Description: "Allocation to goal: Trip",
		Amount:      decimal.NewFromInt(300), Kind: ledgerdomain.KindAllocate,
		Category: ledgerdomain.CategoryInvestment,
	}

	var deleted []uuid.UUID
	uow.OnDo()
	uow.On("Goals").Return(goalRepo, nil)
	uow.On("Accounts").Return(accountRepo, nil)
	uow.On("Ledger").Return(ledgerRepo, nil)
	goalRepo.On("Get", mock.Anything, g.ID).Return(g, nil)
	goalRepo.On("Delete", mock.Anything, g.ID).Return(nil)
	accountRepo.On("Get", mock.Anything, acct.ID).Return(acct, nil)
	accountRepo.On("Update", mock.Anything, acct).Return(nil)
	ledgerRepo.On("ListByGoal", mock.Anything, g.ID).Return([]*ledgerdomain.Entry{entry}, nil)
	ledgerRepo.On("DeleteAll", mock.Anything, mock.AnythingOfType("[]uuid.UUID")).
		Run(func(args mock.Arguments) { deleted = args.Get(1).([]uuid.UUID) }).
		Return(nil)

	err := svc.Delete(context.Background(), g.ID)
	require.NoError(t, err)

	assert.True(t, acct.Balance.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, []uuid.UUID{entry.ID}, deleted)
}

func TestGetNotFound(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	goalRepo := mocks.NewMockGoalRepository(t)
	svc := newService(uow)

	id := uuid.New()
	uow.OnDo()
	uow.On("Goals").Return(goalRepo, nil)
	goalRepo.On("Get", mock.Anything, id).Return(nil, domain.ErrNotFound)

	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
