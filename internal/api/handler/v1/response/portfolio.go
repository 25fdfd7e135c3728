package response

const (
	MsgAddedToPortfolio     = "added to portfolio"
	MsgRemovedFromPortfolio = "removed from portfolio"
	MsgQuantityReduced      = "quantity reduced"
)

// PortfolioMutationResponse confirms an add or remove against a holding.
// Message distinguishes a full removal from a partial one.
type PortfolioMutationResponse struct {
	StockName string `json:"stock_name"`
	Message   string `json:"message"`
}
