package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifeboard/lifeboard/pkg/domain/account"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository bound to the given
// session.
func NewAccountRepository(db *gorm.DB) *accountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return accountToDomain(&m), nil
}

func (r *accountRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*account.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).First(&m, "user_id = ?", userID).Error; err != nil {
		return nil, mapError(err)
	}
	return accountToDomain(&m), nil
}

func (r *accountRepository) List(ctx context.Context, limit, offset int) ([]*account.Account, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Account{}).Count(&total).Error; err != nil {
		return nil, 0, mapError(err)
	}
	var ms []Account
	err := r.db.WithContext(ctx).
		Order("created_at asc, id asc").
		Limit(limit).Offset(offset).
		Find(&ms).Error
	if err != nil {
		return nil, 0, mapError(err)
	}
	out := make([]*account.Account, 0, len(ms))
	for i := range ms {
		out = append(out, accountToDomain(&ms[i]))
	}
	return out, total, nil
}

func (r *accountRepository) Create(ctx context.Context, a *account.Account) error {
	return mapError(r.db.WithContext(ctx).Create(accountToModel(a)).Error)
}

func (r *accountRepository) Update(ctx context.Context, a *account.Account) error {
	res := r.db.WithContext(ctx).Model(&Account{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"balance":        a.Balance,
			"monthly_income": a.MonthlyIncome,
		})
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return mapError(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return mapError(r.db.WithContext(ctx).Delete(&Account{}, "id = ?", id).Error)
}

func accountToModel(a *account.Account) *Account {
	return &Account{
		ID:            a.ID,
		UserID:        a.UserID,
		Balance:       a.Balance,
		MonthlyIncome: a.MonthlyIncome,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func accountToDomain(m *Account) *account.Account {
	return account.NewFromData(m.ID, m.UserID, m.Balance, m.MonthlyIncome, m.CreatedAt, m.UpdatedAt)
}
