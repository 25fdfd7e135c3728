package domain

type PortfolioItem struct {
	StockName    string `json:"stock_name"`
	CompanyName  string `json:"company_name"`
	CurrentPrice int    `json:"current_price"`
	Quantity     int    `json:"quantity"`
	TotalPrice   int    `json:"total_price"`
}

type Portfolio struct {
	UserID              uint            `json:"user_id"`
	Name                string          `json:"name"`
	PortfolioItems      []PortfolioItem `json:"portfolio_items"`
	TotalPortfolioValue int             `json:"total_portfolio_value"`
	AverageStockPrice   int             `json:"average_stock_price"`
}
