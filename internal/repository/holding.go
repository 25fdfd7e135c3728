package repository

import (
	"context"
	"fmt"

	"github.com/dkryuchkov/broker-api/internal/domain"
	"github.com/dkryuchkov/broker-api/internal/repository/dao"
)

var (
	ErrHoldingNotFound = dao.ErrHoldingNotFound
)

type HoldingDAO interface {
	AddQuantity(ctx context.Context, userID, stockID uint, quantity int) (dao.Holding, error)
	RemoveQuantity(ctx context.Context, userID, stockID uint, quantity int) (dao.Holding, bool, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.Holding, error)
	FindByUserAndStock(ctx context.Context, userID, stockID uint) (dao.Holding, error)
}

type HoldingRepository struct {
	dao HoldingDAO
}

func NewHoldingRepository(dao HoldingDAO) *HoldingRepository {
	return &HoldingRepository{
		dao: dao,
	}
}

func (r *HoldingRepository) AddQuantity(ctx context.Context, userID, stockID uint, quantity int) (domain.Holding, error) {
	holding, err := r.dao.AddQuantity(ctx, userID, stockID, quantity)
	if err != nil {
		return domain.Holding{}, fmt.Errorf("r.dao.AddQuantity -> %w", err)
	}

	return r.daoToDomain(holding), nil
}

// RemoveQuantity reports, besides the holding state, whether the removal
// drained the holding and deleted its row.
func (r *HoldingRepository) RemoveQuantity(ctx context.Context, userID, stockID uint, quantity int) (domain.Holding, bool, error) {
	holding, deleted, err := r.dao.RemoveQuantity(ctx, userID, stockID, quantity)
	if err != nil {
		return domain.Holding{}, false, fmt.Errorf("r.dao.RemoveQuantity -> %w", err)
	}

	return r.daoToDomain(holding), deleted, nil
}

func (r *HoldingRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Holding, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	holdings := make([]domain.Holding, len(found))
	for i, h := range found {
		holdings[i] = r.daoToDomain(h)
	}

	return holdings, nil
}

func (r *HoldingRepository) FindByUserAndStock(ctx context.Context, userID, stockID uint) (domain.Holding, error) {
	found, err := r.dao.FindByUserAndStock(ctx, userID, stockID)
	if err != nil {
		return domain.Holding{}, fmt.Errorf("r.dao.FindByUserAndStock -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *HoldingRepository) daoToDomain(h dao.Holding) domain.Holding {
	return domain.Holding{
		ID:       h.ID,
		UserID:   h.UserID,
		StockID:  h.StockID,
		Quantity: h.Quantity,
	}
}
