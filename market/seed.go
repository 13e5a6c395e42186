package market

// Seed returns the fixed instrument set the dashboard launches with. Signals,
// sentiment and catalysts are fixture data; only price and change move.
func Seed() []Instrument {
	return []Instrument{
		{
			Key:              "BTC",
			ID:               "bitcoin",
			Type:             TypeCrypto,
			Name:             "Bitcoin",
			Symbol:           "BTC/USD",
			Price:            64230.50,
			ChangePct:        2.4,
			Sentiment:        78,
			SentimentLabel:   "Very Bullish",
			AIPrediction:     "Testing 68k Resistance",
			KeyCatalyst:      "ETF Inflows & Halving Aftermath",
			TechnicalPattern: "Bullish Flag",
			RiskLevel:        RiskMedium,
			Signal: Signal{
				Action:     "STRONG BUY",
				Confidence: 88,
				EntryZone:  "63,800 - 64,100",
				StopLoss:   "61,500",
				TakeProfit: "68,200",
				Reason:     "Volume breakout confirmed above EMA 50.",
			},
		},
		{
			Key:              "ETH",
			ID:               "ethereum",
			Type:             TypeCrypto,
			Name:             "Ethereum",
			Symbol:           "ETH/USD",
			Price:            3450.20,
			ChangePct:        1.5,
			Sentiment:        65,
			SentimentLabel:   "Bullish",
			AIPrediction:     "Testing Resistance 3500",
			KeyCatalyst:      "Layer 2 Volume Spike",
			TechnicalPattern: "Cup & Handle",
			RiskLevel:        RiskHigh,
			Signal: Signal{
				Action:     "BUY",
				Confidence: 75,
				EntryZone:  "3,400 - 3,420",
				StopLoss:   "3,250",
				TakeProfit: "3,600",
				Reason:     "Positive momentum ahead of Pectra upgrade.",
			},
		},
		{
			Key:              "NVDA",
			ID:               "nvidia",
			Type:             TypeStock,
			Name:             "NVIDIA Corp",
			Symbol:           "NVDA",
			Price:            920.15,
			ChangePct:        1.1,
			Sentiment:        85,
			SentimentLabel:   "Extreme Greed",
			AIPrediction:     "Consolidation 900-950",
			KeyCatalyst:      "AI Chip Demand Sustained",
			TechnicalPattern: "Ascending Triangle",
			RiskLevel:        RiskHigh,
			Signal: Signal{
				Action:     "HOLD",
				Confidence: 65,
				EntryZone:  "Wait 900",
				StopLoss:   "880",
				TakeProfit: "1050",
				Reason:     "RSI Divergence, wait for pullback.",
			},
		},
		{
			Key:              "AAPL",
			ID:               "apple",
			Type:             TypeStock,
			Name:             "Apple Inc",
			Symbol:           "AAPL",
			Price:            175.50,
			ChangePct:        -1.4,
			Sentiment:        40,
			SentimentLabel:   "Bearish",
			AIPrediction:     "Dip to Support 170",
			KeyCatalyst:      "China Sales Data",
			TechnicalPattern: "Head & Shoulders",
			RiskLevel:        RiskLow,
			Signal: Signal{
				Action:     "SELL",
				Confidence: 70,
				EntryZone:  "176.00",
				StopLoss:   "180.00",
				TakeProfit: "168.00",
				Reason:     "Bearish reversal pattern validated.",
			},
		},
		{
			Key:              "TSLA",
			ID:               "tesla",
			Type:             TypeStock,
			Name:             "Tesla Inc",
			Symbol:           "TSLA",
			Price:            180.20,
			ChangePct:        3.2,
			Sentiment:        72,
			SentimentLabel:   "Bullish",
			AIPrediction:     "Rebound from Support",
			KeyCatalyst:      "FSD Update Rollout",
			TechnicalPattern: "Double Bottom",
			RiskLevel:        RiskHigh,
			Signal: Signal{
				Action:     "STRONG BUY",
				Confidence: 82,
				EntryZone:  "178 - 180",
				StopLoss:   "165",
				TakeProfit: "200",
				Reason:     "Massive buy volume at major support.",
			},
		},
		{
			Key:              "XAU",
			ID:               "gold",
			Type:             TypeCommodity,
			Name:             "Gold Spot",
			Symbol:           "XAU/USD",
			Price:            2340.10,
			ChangePct:        -0.5,
			Sentiment:        60,
			SentimentLabel:   "Neutral",
			AIPrediction:     "Sideways",
			KeyCatalyst:      "Fed Policy Minutes",
			TechnicalPattern: "Double Top",
			RiskLevel:        RiskLow,
			Signal: Signal{
				Action:     "SELL SHORT",
				Confidence: 72,
				EntryZone:  "2,345",
				StopLoss:   "2,365",
				TakeProfit: "2,300",
				Reason:     "Negative RSI divergence on H4.",
			},
		},
	}
}
