package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// AddToPortfolioRequest rejects non-positive quantities; a zero or
// negative add has no meaningful holding to produce.
type AddToPortfolioRequest struct {
	StockID  uint `json:"stock_id"`
	Quantity int  `json:"quantity"`
}

func (req *AddToPortfolioRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StockID, validation.Required),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}
