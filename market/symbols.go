package market

// chartSymbols maps registry keys to exchange-qualified charting symbols.
var chartSymbols = map[string]string{
	"BTC":  "BINANCE:BTCUSD",
	"ETH":  "BINANCE:ETHUSD",
	"NVDA": "NASDAQ:NVDA",
	"AAPL": "NASDAQ:AAPL",
	"TSLA": "NASDAQ:TSLA",
	"XAU":  "OANDA:XAUUSD",
}

// ChartSymbol returns the exchange-qualified symbol for a registry key,
// falling back to the key itself for unmapped instruments.
func ChartSymbol(key string) string {
	if sym, ok := chartSymbols[key]; ok {
		return sym
	}
	return key
}
