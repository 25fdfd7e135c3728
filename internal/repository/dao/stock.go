package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrStockNameExists = errors.New("stock name already exists")
	ErrStockNotFound   = errors.New("stock not found")
)

type Stock struct {
	ID uint `gorm:"primaryKey"`

	StockName    string `gorm:"unique;not null"`
	CompanyName  string `gorm:"not null"`
	CurrentPrice int    `gorm:"not null"`

	Holdings []Holding `gorm:"foreignKey:StockID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type StockDAO struct {
	db *gorm.DB
}

func NewStockDAO(db *gorm.DB) *StockDAO {
	return &StockDAO{
		db: db,
	}
}

func (d *StockDAO) Insert(ctx context.Context, stock Stock) (Stock, error) {
	result := d.db.WithContext(ctx).Create(&stock)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_stocks_stock_name"`) {
			return Stock{}, ErrStockNameExists
		}

		return Stock{}, result.Error
	}

	return stock, nil
}

func (d *StockDAO) FindByID(ctx context.Context, id uint) (Stock, error) {
	var stock Stock

	result := d.db.WithContext(ctx).First(&stock, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Stock{}, ErrStockNotFound
		}

		return Stock{}, result.Error
	}

	return stock, nil
}

func (d *StockDAO) FindAll(ctx context.Context) ([]Stock, error) {
	var stocks []Stock

	result := d.db.WithContext(ctx).Order("id").Find(&stocks)
	if result.Error != nil {
		return nil, result.Error
	}

	return stocks, nil
}

func (d *StockDAO) UpdatePrice(ctx context.Context, id uint, price int) (Stock, error) {
	var stock Stock

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&stock, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStockNotFound
			}

			return err
		}

		stock.CurrentPrice = price

		return tx.Save(&stock).Error
	})
	if err != nil {
		return Stock{}, err
	}

	return stock, nil
}
