package service

import (
	"context"
	"fmt"

	"github.com/dkryuchkov/broker-api/internal/domain"
	"github.com/dkryuchkov/broker-api/internal/repository"
)

var (
	ErrStockNameExists = repository.ErrStockNameExists
	ErrStockNotFound   = repository.ErrStockNotFound
)

type StockRepository interface {
	Create(ctx context.Context, stock domain.Stock) (domain.Stock, error)
	FindByID(ctx context.Context, id uint) (domain.Stock, error)
	FindAll(ctx context.Context) ([]domain.Stock, error)
	UpdatePrice(ctx context.Context, id uint, price int) (domain.Stock, error)
}

type StockService struct {
	repo StockRepository
}

func NewStockService(repo StockRepository) *StockService {
	return &StockService{
		repo: repo,
	}
}

func (s *StockService) CreateStock(ctx context.Context, stock domain.Stock) (domain.Stock, error) {
	created, err := s.repo.Create(ctx, stock)
	if err != nil {
		return domain.Stock{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *StockService) ListStocks(ctx context.Context) ([]domain.Stock, error) {
	stocks, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return stocks, nil
}

func (s *StockService) UpdateStockPrice(ctx context.Context, id uint, price int) (domain.Stock, error) {
	stock, err := s.repo.UpdatePrice(ctx, id, price)
	if err != nil {
		return domain.Stock{}, fmt.Errorf("s.repo.UpdatePrice -> %w", err)
	}

	return stock, nil
}
