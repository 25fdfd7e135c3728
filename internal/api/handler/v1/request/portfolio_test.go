package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkryuchkov/broker-api/internal/api/handler/v1/request"
)

func TestAddToPortfolioRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		req     request.AddToPortfolioRequest
		wantErr bool
	}{
		{"valid", request.AddToPortfolioRequest{StockID: 1, Quantity: 5}, false},
		{"quantity of one", request.AddToPortfolioRequest{StockID: 1, Quantity: 1}, false},
		{"zero quantity", request.AddToPortfolioRequest{StockID: 1, Quantity: 0}, true},
		{"negative quantity", request.AddToPortfolioRequest{StockID: 1, Quantity: -3}, true},
		{"missing stock", request.AddToPortfolioRequest{Quantity: 5}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateStockRequest_Validate(t *testing.T) {
	valid := request.CreateStockRequest{
		StockName:    "AAPL",
		CompanyName:  "Apple Inc.",
		CurrentPrice: 100,
	}
	assert.NoError(t, valid.Validate())

	free := valid
	free.CurrentPrice = 0
	assert.NoError(t, free.Validate(), "a zero price is allowed")

	negative := valid
	negative.CurrentPrice = -1
	assert.Error(t, negative.Validate())

	unnamed := valid
	unnamed.StockName = ""
	assert.Error(t, unnamed.Validate())
}
