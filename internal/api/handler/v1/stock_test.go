package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/dkryuchkov/broker-api/internal/api/handler/v1"
	"github.com/dkryuchkov/broker-api/internal/domain"
	"github.com/dkryuchkov/broker-api/internal/service"
)

type stubStockService struct {
	createStock      func(ctx context.Context, stock domain.Stock) (domain.Stock, error)
	listStocks       func(ctx context.Context) ([]domain.Stock, error)
	updateStockPrice func(ctx context.Context, id uint, price int) (domain.Stock, error)
}

func (s *stubStockService) CreateStock(ctx context.Context, stock domain.Stock) (domain.Stock, error) {
	return s.createStock(ctx, stock)
}

func (s *stubStockService) ListStocks(ctx context.Context) ([]domain.Stock, error) {
	return s.listStocks(ctx)
}

func (s *stubStockService) UpdateStockPrice(ctx context.Context, id uint, price int) (domain.Stock, error) {
	return s.updateStockPrice(ctx, id, price)
}

func newStockRouter(svc v1.StockService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := v1.NewStockHandler(svc)
	router.POST("/stocks", handler.HandleCreateStock)
	router.GET("/stocks", handler.HandleListStocks)
	router.PUT("/stocks", handler.HandleUpdateStockPrice)

	return router
}

func TestHandleCreateStock(t *testing.T) {
	t.Run("creates a stock", func(t *testing.T) {
		router := newStockRouter(&stubStockService{
			createStock: func(_ context.Context, stock domain.Stock) (domain.Stock, error) {
				stock.ID = 1

				return stock, nil
			},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/stocks",
			strings.NewReader(`{"stock_name":"AAPL","company_name":"Apple Inc.","current_price":100}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t,
			`{"id":1,"stock_name":"AAPL","company_name":"Apple Inc.","current_price":100}`,
			w.Body.String())
	})

	t.Run("rejects a duplicate name with 409", func(t *testing.T) {
		router := newStockRouter(&stubStockService{
			createStock: func(_ context.Context, _ domain.Stock) (domain.Stock, error) {
				return domain.Stock{}, service.ErrStockNameExists
			},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/stocks",
			strings.NewReader(`{"stock_name":"AAPL","company_name":"Apple Inc.","current_price":100}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		router := newStockRouter(&stubStockService{
			createStock: func(_ context.Context, _ domain.Stock) (domain.Stock, error) {
				t.Fatal("service must not be called")

				return domain.Stock{}, nil
			},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/stocks",
			strings.NewReader(`{"stock_name":"AAPL","company_name":"Apple Inc.","current_price":-1}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleListStocks(t *testing.T) {
	router := newStockRouter(&stubStockService{
		listStocks: func(_ context.Context) ([]domain.Stock, error) {
			return []domain.Stock{
				{ID: 1, StockName: "AAPL", CompanyName: "Apple Inc.", CurrentPrice: 100},
				{ID: 2, StockName: "GOOG", CompanyName: "Alphabet Inc.", CurrentPrice: 150},
			}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stocks", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"id":1,"stock_name":"AAPL","company_name":"Apple Inc.","current_price":100},
		{"id":2,"stock_name":"GOOG","company_name":"Alphabet Inc.","current_price":150}
	]`, w.Body.String())
}

func TestHandleUpdateStockPrice(t *testing.T) {
	t.Run("updates the price", func(t *testing.T) {
		router := newStockRouter(&stubStockService{
			updateStockPrice: func(_ context.Context, id uint, price int) (domain.Stock, error) {
				return domain.Stock{ID: id, StockName: "AAPL", CompanyName: "Apple Inc.", CurrentPrice: price}, nil
			},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/stocks?stock_id=1",
			strings.NewReader(`{"current_price":120}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"id":1,"stock_name":"AAPL","company_name":"Apple Inc.","current_price":120}`,
			w.Body.String())
	})

	t.Run("maps a missing stock to 404", func(t *testing.T) {
		router := newStockRouter(&stubStockService{
			updateStockPrice: func(_ context.Context, _ uint, _ int) (domain.Stock, error) {
				return domain.Stock{}, service.ErrStockNotFound
			},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/stocks?stock_id=999",
			strings.NewReader(`{"current_price":120}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
