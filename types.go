package alphavantage

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ========================= RESPONSES =========================

// GlobalQuote is the payload of a GLOBAL_QUOTE request with datatype json.
type GlobalQuote struct {
	Quote struct {
		Symbol           string `json:"01. symbol"`
		Open             string `json:"02. open"`
		High             string `json:"03. high"`
		Low              string `json:"04. low"`
		Price            string `json:"05. price"`
		Volume           string `json:"06. volume"`
		LatestTradingDay string `json:"07. latest trading day"`
		PreviousClose    string `json:"08. previous close"`
		Change           string `json:"09. change"`
		ChangePercent    string `json:"10. change percent"`
	} `json:"Global Quote"`
}

type BulkQuote struct {
	Symbol                     string `json:"symbol"`
	Timestamp                  string `json:"timestamp"`
	Open                       string `json:"open"`
	High                       string `json:"high"`
	Low                        string `json:"low"`
	Close                      string `json:"close"`
	Volume                     string `json:"volume"`
	PreviousClose              string `json:"previous_close"`
	Change                     string `json:"change"`
	ChangePercent              string `json:"change_percent"`
	ExtendedHoursQuote         string `json:"extended_hours_quote"`
	ExtendedHoursChange        string `json:"extended_hours_change"`
	ExtendedHoursChangePercent string `json:"extended_hours_change_percent"`
}

// BulkQuotes is the payload of a REALTIME_BULK_QUOTES request.
type BulkQuotes struct {
	Endpoint string      `json:"endpoint"`
	Message  string      `json:"message"`
	Data     []BulkQuote `json:"data"`
}

type Market struct {
	MarketType       string `json:"market_type"`
	Region           string `json:"region"`
	PrimaryExchanges string `json:"primary_exchanges"`
	LocalOpen        string `json:"local_open"`
	LocalClose       string `json:"local_close"`
	CurrentStatus    string `json:"current_status"`
	Notes            string `json:"notes"`
}

// MarketStatus is the payload of a MARKET_STATUS request.
type MarketStatus struct {
	Endpoint string   `json:"endpoint"`
	Markets  []Market `json:"markets"`
}

// Bar is one entry of a time series. Fields missing from a given function
// (e.g. AdjustedClose for unadjusted series) stay empty.
type Bar struct {
	Open             string
	High             string
	Low              string
	Close            string
	AdjustedClose    string
	Volume           string
	DividendAmount   string
	SplitCoefficient string
}

// TimeSeries is the payload of any TIME_SERIES_* request.
// The upstream numbers its keys ("1. open", "2. Symbol", ...) and the
// numbering changes between functions, so keys are matched by name only.
type TimeSeries struct {
	// Key the series was found under, e.g. "Time Series (Daily)"
	Key  string
	Meta map[string]string
	// Timestamp ("2006-01-02" or "2006-01-02 15:04:05") to bar
	Series map[string]Bar
}

func (ts *TimeSeries) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	ts.Meta = map[string]string{}
	if meta, ok := raw["Meta Data"]; ok {
		var m map[string]string
		if err := json.Unmarshal(meta, &m); err != nil {
			return fmt.Errorf("bad `Meta Data`: %w", err)
		}
		for k, v := range m {
			ts.Meta[stripOrdinal(k)] = v
		}
	}

	for key, body := range raw {
		if !strings.Contains(key, "Time Series") {
			continue
		}
		var series map[string]map[string]string
		if err := json.Unmarshal(body, &series); err != nil {
			return fmt.Errorf("bad `%s`: %w", key, err)
		}
		ts.Key = key
		ts.Series = make(map[string]Bar, len(series))
		for stamp, fields := range series {
			ts.Series[stamp] = barFromFields(fields)
		}
		return nil
	}
	return fmt.Errorf("no time series in response")
}

// Symbol from the meta data block.
func (ts *TimeSeries) Symbol() string {
	return ts.Meta["Symbol"]
}

// ========================= AUXILIARY FUNC =========================

// "1. open" -> "open"
func stripOrdinal(key string) string {
	if _, name, ok := strings.Cut(key, ". "); ok {
		return name
	}
	return key
}

func barFromFields(fields map[string]string) (bar Bar) {
	for k, v := range fields {
		switch stripOrdinal(k) {
		case "open":
			bar.Open = v
		case "high":
			bar.High = v
		case "low":
			bar.Low = v
		case "close":
			bar.Close = v
		case "adjusted close":
			bar.AdjustedClose = v
		case "volume":
			bar.Volume = v
		case "dividend amount":
			bar.DividendAmount = v
		case "split coefficient":
			bar.SplitCoefficient = v
		}
	}
	return
}
