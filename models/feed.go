package models

// NewsItem is a fixture headline shown in the news feed.
type NewsItem struct {
	Source    string
	Title     string
	Sentiment string // "positive", "negative", "neutral"
	Impact    string // "High", "Medium", "Low"
	Time      string
}

// Notification is a fixture alert shown in the notifications popover.
type Notification struct {
	Title string
	Msg   string
	Time  string
	Type  string // "success", "danger", "info"
}

var newsFeed = []NewsItem{
	{Source: "Bloomberg", Title: "Fed signals potential rate cuts in Q3 if inflation cools further.", Sentiment: "positive", Impact: "High", Time: "10m ago"},
	{Source: "Reuters", Title: "Geopolitical tensions rise in Middle East, oil and gold volatile.", Sentiment: "negative", Impact: "Medium", Time: "15m ago"},
	{Source: "CoinDesk", Title: "Bitcoin Whales accumulate 10,000 BTC in last 24h.", Sentiment: "positive", Impact: "High", Time: "32m ago"},
	{Source: "CNBC", Title: "Tech Sector earnings report beats analyst expectations.", Sentiment: "positive", Impact: "Medium", Time: "1h ago"},
}

var notifications = []Notification{
	{Title: "Target Hit: BTC/USD", Msg: "Bitcoin hit profit target at 68,000.", Time: "2m ago", Type: "success"},
	{Title: "Stop Loss Alert: AAPL", Msg: "Apple touched stop loss at 170.00.", Time: "1h ago", Type: "danger"},
	{Title: "New Signal: TSLA", Msg: "AI detected Double Bottom pattern on Tesla.", Time: "3h ago", Type: "info"},
}
