package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateStockRequest struct {
	StockName    string `json:"stock_name"`
	CompanyName  string `json:"company_name"`
	CurrentPrice int    `json:"current_price"`
}

func (req *CreateStockRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StockName, validation.Required, validation.Length(1, 20)),
		validation.Field(&req.CompanyName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.CurrentPrice, validation.Min(0)),
	)
}

type UpdateStockPriceRequest struct {
	CurrentPrice int `json:"current_price"`
}

func (req *UpdateStockPriceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CurrentPrice, validation.Min(0)),
	)
}
