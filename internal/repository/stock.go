package repository

import (
	"context"
	"fmt"

	"github.com/dkryuchkov/broker-api/internal/domain"
	"github.com/dkryuchkov/broker-api/internal/repository/dao"
)

var (
	ErrStockNameExists = dao.ErrStockNameExists
	ErrStockNotFound   = dao.ErrStockNotFound
)

type StockDAO interface {
	Insert(ctx context.Context, stock dao.Stock) (dao.Stock, error)
	FindByID(ctx context.Context, id uint) (dao.Stock, error)
	FindAll(ctx context.Context) ([]dao.Stock, error)
	UpdatePrice(ctx context.Context, id uint, price int) (dao.Stock, error)
}

type StockRepository struct {
	dao StockDAO
}

func NewStockRepository(dao StockDAO) *StockRepository {
	return &StockRepository{
		dao: dao,
	}
}

func (r *StockRepository) Create(ctx context.Context, stock domain.Stock) (domain.Stock, error) {
	created, err := r.dao.Insert(ctx, dao.Stock{
		StockName:    stock.StockName,
		CompanyName:  stock.CompanyName,
		CurrentPrice: stock.CurrentPrice,
	})
	if err != nil {
		return domain.Stock{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *StockRepository) FindByID(ctx context.Context, id uint) (domain.Stock, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Stock{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *StockRepository) FindAll(ctx context.Context) ([]domain.Stock, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	stocks := make([]domain.Stock, len(found))
	for i, s := range found {
		stocks[i] = r.daoToDomain(s)
	}

	return stocks, nil
}

func (r *StockRepository) UpdatePrice(ctx context.Context, id uint, price int) (domain.Stock, error) {
	updated, err := r.dao.UpdatePrice(ctx, id, price)
	if err != nil {
		return domain.Stock{}, fmt.Errorf("r.dao.UpdatePrice -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *StockRepository) daoToDomain(s dao.Stock) domain.Stock {
	return domain.Stock{
		ID:           s.ID,
		StockName:    s.StockName,
		CompanyName:  s.CompanyName,
		CurrentPrice: s.CurrentPrice,
	}
}
