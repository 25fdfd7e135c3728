package domain

// Holding ties a user to a stock with a positive quantity. A holding with
// quantity zero never exists; removal that drains it deletes the row.
type Holding struct {
	ID       uint `json:"id"`
	UserID   uint `json:"user_id"`
	StockID  uint `json:"stock_id"`
	Quantity int  `json:"quantity"`
}
