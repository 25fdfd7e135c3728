package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dkryuchkov/broker-api/internal/domain"
	"github.com/dkryuchkov/broker-api/internal/repository"
)

var (
	ErrHoldingNotFound = repository.ErrHoldingNotFound
)

type HoldingRepository interface {
	AddQuantity(ctx context.Context, userID, stockID uint, quantity int) (domain.Holding, error)
	RemoveQuantity(ctx context.Context, userID, stockID uint, quantity int) (domain.Holding, bool, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Holding, error)
}

// PortfolioService applies holding mutations and aggregates a user's
// holdings into the portfolio summary.
type PortfolioService struct {
	holdingRepo HoldingRepository
	userRepo    UserRepository
	stockRepo   StockRepository
}

func NewPortfolioService(holdingRepo HoldingRepository, userRepo UserRepository, stockRepo StockRepository) *PortfolioService {
	return &PortfolioService{
		holdingRepo: holdingRepo,
		userRepo:    userRepo,
		stockRepo:   stockRepo,
	}
}

// AddStock merges quantity into the user's holding of the stock, creating
// the holding on first add. Both the user and the stock must exist.
// Returns the stock's display name.
func (s *PortfolioService) AddStock(ctx context.Context, userID, stockID uint, quantity int) (string, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return "", fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	stock, err := s.stockRepo.FindByID(ctx, stockID)
	if err != nil {
		return "", fmt.Errorf("s.stockRepo.FindByID -> %w", err)
	}

	if _, err = s.holdingRepo.AddQuantity(ctx, userID, stockID, quantity); err != nil {
		return "", fmt.Errorf("s.holdingRepo.AddQuantity -> %w", err)
	}

	return stock.StockName, nil
}

// RemoveStock takes quantity out of the user's holding of the stock. A
// removal that meets or exceeds the held quantity deletes the holding;
// the returned flag distinguishes full from partial removal.
func (s *PortfolioService) RemoveStock(ctx context.Context, userID, stockID uint, quantity int) (string, bool, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return "", false, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	_, removedAll, err := s.holdingRepo.RemoveQuantity(ctx, userID, stockID, quantity)
	if err != nil {
		return "", false, fmt.Errorf("s.holdingRepo.RemoveQuantity -> %w", err)
	}

	// The holding existed, so the stock it references is expected to as
	// well; it is fetched only for its display name.
	stock, err := s.stockRepo.FindByID(ctx, stockID)
	if err != nil {
		return "", false, fmt.Errorf("s.stockRepo.FindByID -> %w", err)
	}

	return stock.StockName, removedAll, nil
}

// GetPortfolio joins the user's holdings with current stock prices and
// computes the summary statistics. Items follow the holdings' stock ID
// order. The average price is the integer-truncated quotient of total
// value over total quantity, and exactly 0 for an empty portfolio.
func (s *PortfolioService) GetPortfolio(ctx context.Context, userID uint) (domain.Portfolio, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	holdings, err := s.holdingRepo.FindByUserID(ctx, userID)
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("s.holdingRepo.FindByUserID -> %w", err)
	}

	items := make([]domain.PortfolioItem, 0, len(holdings))
	totalValue := 0
	totalQuantity := 0

	for _, holding := range holdings {
		stock, err := s.stockRepo.FindByID(ctx, holding.StockID)
		if err != nil {
			if errors.Is(err, ErrStockNotFound) {
				// A holding can outlive its stock only through a missed
				// cascade; skip it rather than fail the whole portfolio.
				zap.L().Warn("skipping holding with missing stock",
					zap.Uint("user_id", userID),
					zap.Uint("stock_id", holding.StockID),
				)

				continue
			}

			return domain.Portfolio{}, fmt.Errorf("s.stockRepo.FindByID -> %w", err)
		}

		itemValue := stock.CurrentPrice * holding.Quantity
		totalValue += itemValue
		totalQuantity += holding.Quantity

		items = append(items, domain.PortfolioItem{
			StockName:    stock.StockName,
			CompanyName:  stock.CompanyName,
			CurrentPrice: stock.CurrentPrice,
			Quantity:     holding.Quantity,
			TotalPrice:   itemValue,
		})
	}

	averagePrice := 0
	if totalQuantity > 0 {
		averagePrice = totalValue / totalQuantity
	}

	return domain.Portfolio{
		UserID:              user.ID,
		Name:                user.Name,
		PortfolioItems:      items,
		TotalPortfolioValue: totalValue,
		AverageStockPrice:   averagePrice,
	}, nil
}
