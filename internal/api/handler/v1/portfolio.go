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

type PortfolioService interface {
	AddStock(ctx context.Context, userID, stockID uint, quantity int) (string, error)
	RemoveStock(ctx context.Context, userID, stockID uint, quantity int) (string, bool, error)
	GetPortfolio(ctx context.Context, userID uint) (domain.Portfolio, error)
}

type PortfolioHandler struct {
	svc PortfolioService
}

func NewPortfolioHandler(svc PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		svc: svc,
	}
}

// HandleAddToPortfolio godoc
// @Summary      Add stock quantity to a user's portfolio
// @Description  Merges the quantity into the existing holding, or creates the holding on first add.
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Param        userID   path      int                            true  "user ID"
// @Param        request  body      request.AddToPortfolioRequest  true  "request body"
// @Success      200      {object}  response.PortfolioMutationResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users/{userID}/portfolio [post]
func (h *PortfolioHandler) HandleAddToPortfolio(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid user ID (%v)", ctx.Param("userID"))))
		return
	}

	var req request.AddToPortfolioRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	stockName, err := h.svc.AddStock(ctx.Request.Context(), uint(userID), req.StockID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "user_id", userID))
			return
		}
		if errors.Is(err, service.ErrStockNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock", "stock_id", req.StockID))
			return
		}

		err = fmt.Errorf("v1.HandleAddToPortfolio -> h.svc.AddStock -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.PortfolioMutationResponse{
		StockName: stockName,
		Message:   response.MsgAddedToPortfolio,
	})
}

// HandleGetPortfolio godoc
// @Summary      Get a user's aggregated portfolio
// @Description  Joins holdings with current stock prices; returns per-item values, the portfolio total and the truncated average price.
// @Tags         portfolio
// @Produce      json
// @Param        userID  path      int  true  "user ID"
// @Success      200     {object}  domain.Portfolio
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /users/{userID}/portfolio [get]
func (h *PortfolioHandler) HandleGetPortfolio(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid user ID (%v)", ctx.Param("userID"))))
		return
	}

	portfolio, err := h.svc.GetPortfolio(ctx.Request.Context(), uint(userID))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "user_id", userID))
			return
		}

		err = fmt.Errorf("v1.HandleGetPortfolio -> h.svc.GetPortfolio -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, portfolio)
}

// HandleRemoveFromPortfolio godoc
// @Summary      Remove stock quantity from a user's portfolio
// @Description  Removes the given quantity (default 1). Removing at least the held quantity deletes the holding entirely.
// @Tags         portfolio
// @Produce      json
// @Param        userID    path      int  true   "user ID"
// @Param        stockID   path      int  true   "stock ID"
// @Param        quantity  query     int  false  "quantity to remove (default 1)"
// @Success      200       {object}  response.PortfolioMutationResponse
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /users/{userID}/portfolio/{stockID} [delete]
func (h *PortfolioHandler) HandleRemoveFromPortfolio(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid user ID (%v)", ctx.Param("userID"))))
		return
	}

	stockID, err := strconv.ParseUint(ctx.Param("stockID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid stock ID (%v)", ctx.Param("stockID"))))
		return
	}

	quantity := 1
	if raw := ctx.Query("quantity"); raw != "" {
		quantity, err = strconv.Atoi(raw)
		if err != nil || quantity < 1 {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid quantity (%v)", raw)))
			return
		}
	}

	stockName, removedAll, err := h.svc.RemoveStock(ctx.Request.Context(), uint(userID), uint(stockID), quantity)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "user_id", userID))
			return
		}
		if errors.Is(err, service.ErrHoldingNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("holding", "stock_id", stockID))
			return
		}

		err = fmt.Errorf("v1.HandleRemoveFromPortfolio -> h.svc.RemoveStock -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	message := response.MsgQuantityReduced
	if removedAll {
		message = response.MsgRemovedFromPortfolio
	}

	ctx.JSON(http.StatusOK, response.PortfolioMutationResponse{
		StockName: stockName,
		Message:   message,
	})
}
