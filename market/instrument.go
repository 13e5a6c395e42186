package market

// InstrumentType classifies an instrument for volatility and display purposes.
type InstrumentType string

const (
	TypeCrypto    InstrumentType = "Crypto"
	TypeStock     InstrumentType = "Stock"
	TypeCommodity InstrumentType = "Commodity"
)

// RiskLevel is the macro risk classification attached to an instrument.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Per-tick volatility factors by instrument class.
const (
	cryptoVolatility  = 0.002
	defaultVolatility = 0.0005
)

// Signal is a precomputed trading recommendation. It is fixture data and is
// never recalculated at runtime.
type Signal struct {
	Action     string `json:"action"`
	Confidence int    `json:"confidence"`
	EntryZone  string `json:"entryZone"`
	StopLoss   string `json:"stopLoss"`
	TakeProfit string `json:"takeProfit"`
	Reason     string `json:"reason"`
}

// Instrument is a tradable entity tracked by the dashboard. Price and ChangePct
// are the only mutable fields; the simulator is their sole writer.
type Instrument struct {
	Key              string         `json:"-"`
	ID               string         `json:"id"`
	Type             InstrumentType `json:"type"`
	Name             string         `json:"name"`
	Symbol           string         `json:"symbol"`
	Price            float64        `json:"price"`
	ChangePct        float64        `json:"changePct"`
	Sentiment        int            `json:"sentiment"`
	SentimentLabel   string         `json:"sentimentLabel"`
	AIPrediction     string         `json:"aiPrediction"`
	KeyCatalyst      string         `json:"keyCatalyst"`
	TechnicalPattern string         `json:"technicalPattern"`
	RiskLevel        RiskLevel      `json:"riskLevel"`
	Signal           Signal         `json:"signal"`
}

// Volatility returns the per-tick volatility factor for the instrument's class.
func (i Instrument) Volatility() float64 {
	if i.Type == TypeCrypto {
		return cryptoVolatility
	}
	return defaultVolatility
}
