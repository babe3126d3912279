// Values accepted by the Alpha Vantage query endpoint.
package constants

import "k8s.io/apimachinery/pkg/util/sets"

// Functions (the `function` query parameter)
const (
	FUNCTION_TIME_SERIES_INTRADAY = "TIME_SERIES_INTRADAY"
	FUNCTION_GLOBAL_QUOTE         = "GLOBAL_QUOTE"
	FUNCTION_REALTIME_BULK_QUOTES = "REALTIME_BULK_QUOTES"
	FUNCTION_MARKET_STATUS        = "MARKET_STATUS"
)

// Intraday intervals
const (
	INTERVAL_1MIN  = "1min"
	INTERVAL_5MIN  = "5min"
	INTERVAL_15MIN = "15min"
	INTERVAL_30MIN = "30min"
	INTERVAL_60MIN = "60min"
)

// Periods for daily/weekly/monthly series
const (
	PERIOD_DAILY   = "daily"
	PERIOD_WEEKLY  = "weekly"
	PERIOD_MONTHLY = "monthly"
)

// Output sizes
const (
	OUTPUTSIZE_COMPACT = "compact"
	OUTPUTSIZE_FULL    = "full"
)

// Datatypes
const (
	DATATYPE_JSON = "json"
	DATATYPE_CSV  = "csv"
)

// At most this many symbols per REALTIME_BULK_QUOTES request.
const BULK_QUOTE_MAX_SYMBOLS = 100

var (
	IntervalSet   = sets.New(INTERVAL_1MIN, INTERVAL_5MIN, INTERVAL_15MIN, INTERVAL_30MIN, INTERVAL_60MIN)
	PeriodSet     = sets.New(PERIOD_DAILY, PERIOD_WEEKLY, PERIOD_MONTHLY)
	OutputSizeSet = sets.New(OUTPUTSIZE_COMPACT, OUTPUTSIZE_FULL)
)
