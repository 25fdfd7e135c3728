package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dkryuchkov/broker-api/internal/api/handler/v1/request"
	"github.com/dkryuchkov/broker-api/internal/api/handler/v1/response"
	"github.com/dkryuchkov/broker-api/internal/domain"
	"github.com/dkryuchkov/broker-api/internal/service"
)

type StockService interface {
	CreateStock(ctx context.Context, stock domain.Stock) (domain.Stock, error)
	ListStocks(ctx context.Context) ([]domain.Stock, error)
	UpdateStockPrice(ctx context.Context, id uint, price int) (domain.Stock, error)
}

type StockHandler struct {
	svc StockService
}

func NewStockHandler(svc StockService) *StockHandler {
	return &StockHandler{
		svc: svc,
	}
}

// HandleCreateStock godoc
// @Summary      Add a new stock
// @Description  Creates a stock. Stock names are unique; a duplicate name is rejected with 409.
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateStockRequest  true  "request body"
// @Success      201      {object}  domain.Stock
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stocks [post]
func (h *StockHandler) HandleCreateStock(ctx *gin.Context) {
	var req request.CreateStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	stock, err := h.svc.CreateStock(ctx.Request.Context(), domain.Stock{
		StockName:    req.StockName,
		CompanyName:  req.CompanyName,
		CurrentPrice: req.CurrentPrice,
	})
	if err != nil {
		if errors.Is(err, service.ErrStockNameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrStockNameExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreateStock -> h.svc.CreateStock -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, stock)
}

// HandleListStocks godoc
// @Summary      List stocks
// @Tags         stocks
// @Produce      json
// @Success      200  {array}   domain.Stock
// @Failure      500  {object}  response.Err
// @Router       /stocks [get]
func (h *StockHandler) HandleListStocks(ctx *gin.Context) {
	stocks, err := h.svc.ListStocks(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListStocks -> h.svc.ListStocks -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stocks)
}

// HandleUpdateStockPrice godoc
// @Summary      Update a stock's current price
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        stock_id  query     int                              true  "stock ID"
// @Param        request   body      request.UpdateStockPriceRequest  true  "request body"
// @Success      200       {object}  domain.Stock
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /stocks [put]
func (h *StockHandler) HandleUpdateStockPrice(ctx *gin.Context) {
	stockID, err := strconv.ParseUint(ctx.Query("stock_id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid stock_id (%v)", ctx.Query("stock_id"))))
		return
	}

	var req request.UpdateStockPriceRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	stock, err := h.svc.UpdateStockPrice(ctx.Request.Context(), uint(stockID), req.CurrentPrice)
	if err != nil {
		if errors.Is(err, service.ErrStockNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock", "stock_id", stockID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateStockPrice -> h.svc.UpdateStockPrice -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stock)
}
