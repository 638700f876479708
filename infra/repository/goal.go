package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifeboard/lifeboard/pkg/domain/goal"
)

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a goal repository bound to the given session.
func NewGoalRepository(db *gorm.DB) *goalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Get(ctx context.Context, id uuid.UUID) (*goal.Goal, error) {
	var m Goal
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return goalToDomain(&m), nil
}

func (r *goalRepository) List(ctx context.Context, limit, offset int) ([]*goal.Goal, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Goal{}).Count(&total).Error; err != nil {
		return nil, 0, mapError(err)
	}
	var ms []Goal
	err := r.db.WithContext(ctx).
		Order("created_at asc, id asc").
		Limit(limit).Offset(offset).
		Find(&ms).Error
	if err != nil {
		return nil, 0, mapError(err)
	}
	out := make([]*goal.Goal, 0, len(ms))
	for i := range ms {
		out = append(out, goalToDomain(&ms[i]))
	}
	return out, total, nil
}

func (r *goalRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*goal.Goal, error) {
	var ms []Goal
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at asc, id asc").
		Find(&ms).Error
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]*goal.Goal, 0, len(ms))
	for i := range ms {
		out = append(out, goalToDomain(&ms[i]))
	}
	return out, nil
}

func (r *goalRepository) Create(ctx context.Context, g *goal.Goal) error {
	return mapError(r.db.WithContext(ctx).Create(goalToModel(g)).Error)
}

func (r *goalRepository) Update(ctx context.Context, g *goal.Goal) error {
	res := r.db.WithContext(ctx).Model(&Goal{}).
		Where("id = ?", g.ID).
		Updates(map[string]any{
			"name":             g.Name,
			"target_amount":    g.TargetAmount,
			"allocated_amount": g.AllocatedAmount,
			"deadline":         g.Deadline,
			"status":           string(g.Status),
		})
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return mapError(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return mapError(r.db.WithContext(ctx).Delete(&Goal{}, "id = ?", id).Error)
}

func (r *goalRepository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) error {
	return mapError(r.db.WithContext(ctx).Delete(&Goal{}, "account_id = ?", accountID).Error)
}

func goalToModel(g *goal.Goal) *Goal {
	return &Goal{
		ID:              g.ID,
		AccountID:       g.AccountID,
		Name:            g.Name,
		TargetAmount:    g.TargetAmount,
		AllocatedAmount: g.AllocatedAmount,
		Deadline:        g.Deadline,
		Status:          string(g.Status),
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
}

func goalToDomain(m *Goal) *goal.Goal {
	return &goal.Goal{
		ID:              m.ID,
		AccountID:       m.AccountID,
		Name:            m.Name,
		TargetAmount:    m.TargetAmount,
		AllocatedAmount: m.AllocatedAmount,
		Deadline:        m.Deadline,
		Status:          goal.Status(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
