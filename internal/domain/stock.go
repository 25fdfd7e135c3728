package domain

type Stock struct {
	ID           uint   `json:"id"`
	StockName    string `json:"stock_name"`
	CompanyName  string `json:"company_name"`
	CurrentPrice int    `json:"current_price"` // Price in whole currency units.
}
