package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifeboard/lifeboard/pkg/domain/ledger"
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a ledger repository bound to the given session.
func NewLedgerRepository(db *gorm.DB) *ledgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Get(ctx context.Context, id uuid.UUID) (*ledger.Entry, error) {
	var m LedgerEntry
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return entryToDomain(&m), nil
}

func (r *ledgerRepository) List(ctx context.Context, limit, offset int) ([]*ledger.Entry, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&LedgerEntry{}).Count(&total).Error; err != nil {
		return nil, 0, mapError(err)
	}
	var ms []LedgerEntry
	err := r.db.WithContext(ctx).
		Order("created_at asc, id asc").
		Limit(limit).Offset(offset).
		Find(&ms).Error
	if err != nil {
		return nil, 0, mapError(err)
	}
	return entriesToDomain(ms), total, nil
}

func (r *ledgerRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*ledger.Entry, error) {
	var ms []LedgerEntry
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at asc, id asc").
		Find(&ms).Error
	if err != nil {
		return nil, mapError(err)
	}
	return entriesToDomain(ms), nil
}

func (r *ledgerRepository) ListByGoal(ctx context.Context, goalID uuid.UUID) ([]*ledger.Entry, error) {
	var ms []LedgerEntry
	err := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("created_at asc, id asc").
		Find(&ms).Error
	if err != nil {
		return nil, mapError(err)
	}
	return entriesToDomain(ms), nil
}

func (r *ledgerRepository) Create(ctx context.Context, e *ledger.Entry) error {
	return mapError(r.db.WithContext(ctx).Create(entryToModel(e)).Error)
}

func (r *ledgerRepository) Update(ctx context.Context, e *ledger.Entry) error {
	res := r.db.WithContext(ctx).Model(&LedgerEntry{}).
		Where("id = ?", e.ID).
		Updates(map[string]any{
			"description": e.Description,
			"amount":      e.Amount,
			"kind":        string(e.Kind),
			"category":    string(e.Category),
		})
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return mapError(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *ledgerRepository) UpdateAll(ctx context.Context, entries []*ledger.Entry) error {
	for _, e := range entries {
		if err := r.Update(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *ledgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return mapError(r.db.WithContext(ctx).Delete(&LedgerEntry{}, "id = ?", id).Error)
}

func (r *ledgerRepository) DeleteAll(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return mapError(r.db.WithContext(ctx).Delete(&LedgerEntry{}, "id IN ?", ids).Error)
}

func (r *ledgerRepository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) error {
	return mapError(r.db.WithContext(ctx).Delete(&LedgerEntry{}, "account_id = ?", accountID).Error)
}

func entryToModel(e *ledger.Entry) *LedgerEntry {
	return &LedgerEntry{
		ID:          e.ID,
		AccountID:   e.AccountID,
		GoalID:      e.GoalID,
		Description: e.Description,
		Amount:      e.Amount,
		Kind:        string(e.Kind),
		Category:    string(e.Category),
		CreatedAt:   e.CreatedAt,
	}
}

func entryToDomain(m *LedgerEntry) *ledger.Entry {
	return &ledger.Entry{
		ID:          m.ID,
		AccountID:   m.AccountID,
		GoalID:      m.GoalID,
		Description: m.Description,
		Amount:      m.Amount,
		Kind:        ledger.Kind(m.Kind),
		Category:    ledger.Category(m.Category),
		CreatedAt:   m.CreatedAt,
	}
}

func entriesToDomain(ms []LedgerEntry) []*ledger.Entry {
	out := make([]*ledger.Entry, 0, len(ms))
	for i := range ms {
		out = append(out, entryToDomain(&ms[i]))
	}
	return out
}
