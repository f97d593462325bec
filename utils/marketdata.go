package utils

import (
	"fmt"

	"folio/config"

	"github.com/go-resty/resty/v2"
)

// Quote is the subset of the upstream quote payload we expose
type Quote struct {
	Symbol string `json:"symbol"`
	Price  string `json:"close"`
	Open   string `json:"open"`
	High   string `json:"high"`
	Low    string `json:"low"`
	Volume string `json:"volume"`
}

// FetchQuote fetches a live quote for the symbol from the market data API
func FetchQuote(symbol string) (*Quote, error) {
	cfg := config.AppConfig

	client := resty.New()
	var quote Quote
	resp, err := client.R().
		SetQueryParams(map[string]string{
			"symbol": symbol,
			"apikey": cfg.MarketDataApiKey,
		}).
		SetResult(&quote).
		Get(cfg.MarketDataApiUrl + "/quote")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("quote API error: %s", resp.String())
	}
	if quote.Symbol == "" {
		quote.Symbol = symbol
	}

	return &quote, nil
}
