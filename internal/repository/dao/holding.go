package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrHoldingNotFound = errors.New("holding not found")
)

// Holding has at most one row per (user, stock) pair, enforced by the
// composite unique index. Quantity stays positive for as long as the row
// exists; draining it deletes the row instead of leaving a zero.
type Holding struct {
	ID uint `gorm:"primaryKey"`

	UserID  uint `gorm:"not null;uniqueIndex:idx_holdings_user_stock"`
	StockID uint `gorm:"not null;uniqueIndex:idx_holdings_user_stock"`

	Quantity int `gorm:"not null"`
}

type HoldingDAO struct {
	db *gorm.DB
}

func NewHoldingDAO(db *gorm.DB) *HoldingDAO {
	return &HoldingDAO{
		db: db,
	}
}

// AddQuantity merges quantity into the holding for (userID, stockID),
// creating the row on first add. The select takes a FOR UPDATE lock so
// concurrent adds on the same pair serialize instead of losing updates.
func (d *HoldingDAO) AddQuantity(ctx context.Context, userID, stockID uint, quantity int) (Holding, error) {
	var holding Holding

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND stock_id = ?", userID, stockID).
			First(&holding).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				holding = Holding{
					UserID:   userID,
					StockID:  stockID,
					Quantity: quantity,
				}

				return tx.Create(&holding).Error
			}

			return err
		}

		holding.Quantity += quantity

		return tx.Save(&holding).Error
	})
	if err != nil {
		return Holding{}, err
	}

	return holding, nil
}

// RemoveQuantity decrements the holding for (userID, stockID), deleting
// the row when the requested amount drains it. The returned flag reports
// whether the row was deleted.
func (d *HoldingDAO) RemoveQuantity(ctx context.Context, userID, stockID uint, quantity int) (Holding, bool, error) {
	var (
		holding Holding
		deleted bool
	)

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND stock_id = ?", userID, stockID).
			First(&holding).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHoldingNotFound
			}

			return err
		}

		if holding.Quantity <= quantity {
			deleted = true
			holding.Quantity = 0

			return tx.Delete(&holding).Error
		}

		holding.Quantity -= quantity

		return tx.Save(&holding).Error
	})
	if err != nil {
		return Holding{}, false, err
	}

	return holding, deleted, nil
}

// FindByUserID returns the user's holdings ordered by stock ID, which
// fixes the (observable) ordering of portfolio responses.
func (d *HoldingDAO) FindByUserID(ctx context.Context, userID uint) ([]Holding, error) {
	var holdings []Holding

	result := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("stock_id").
		Find(&holdings)
	if result.Error != nil {
		return nil, result.Error
	}

	return holdings, nil
}

func (d *HoldingDAO) FindByUserAndStock(ctx context.Context, userID, stockID uint) (Holding, error) {
	var holding Holding

	result := d.db.WithContext(ctx).
		Where("user_id = ? AND stock_id = ?", userID, stockID).
		First(&holding)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Holding{}, ErrHoldingNotFound
		}

		return Holding{}, result.Error
	}

	return holding, nil
}
