package alphavantage

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/minh-dng/alphavantage-go/constants"
	optional "github.com/moznion/go-optional"
	"github.com/pkg/errors"
)

const API_BASE_URL = "https://www.alphavantage.co/query"

// Environment variable read by [NewFromEnv].
const API_KEY_ENV = "ALPHA_VANTAGE_API_KEY"

// Doer is satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ========================= CLIENT =========================

// Client is immutable after [New] and safe for concurrent use as long as
// its [Doer] is.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient Doer
	logger     *slog.Logger
}

type Option func(*Client)

// Only needed for tests and proxies.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

func WithHTTPClient(httpClient Doer) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New fails with a [*ConfigurationError] when apiKey is empty.
func New(apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, &ConfigurationError{Reason: "API key must be provided"}
	}

	c := &Client{
		apiKey:     apiKey,
		baseURL:    API_BASE_URL,
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewFromEnv reads the key from $ALPHA_VANTAGE_API_KEY.
func NewFromEnv(opts ...Option) (*Client, error) {
	c, err := New(os.Getenv(API_KEY_ENV), opts...)
	if err != nil {
		return nil, &ConfigurationError{Reason: "API key must be provided (set " + API_KEY_ENV + ")"}
	}
	return c, nil
}

// ========================= REQUESTS =========================

type IntradayRequest struct {
	// Ticker, e.g. "IBM"
	Symbol string `param:"symbol" validate:"required"`
	// "1min" | "5min" | "15min" | "30min" | "60min"
	Interval string `param:"interval" validate:"required"`
	// Adjust for splits and dividends. Unset leaves the upstream default.
	Adjusted optional.Option[bool] `param:"adjusted"`
	// Include pre-market and post-market hours. Unset leaves the upstream default.
	ExtendedHours optional.Option[bool] `param:"extended_hours"`
	// A past month, YYYY-MM
	Month string `param:"month"`
	// "compact" (latest 100 points) | "full". Anything else is not sent.
	OutputSize string `param:"outputsize"`
	// "json" | "csv"
	Datatype string `param:"datatype"`
}

// Usage:
//
//	builder := IntradayRequest{}.GetBuilder("IBM", constants.INTERVAL_5MIN)
func (IntradayRequest) GetBuilder(symbol, interval string) IntradayRequestBuilder {
	return IntradayRequestBuilder{req: IntradayRequest{
		Symbol:     symbol,
		Interval:   interval,
		OutputSize: constants.OUTPUTSIZE_COMPACT,
		Datatype:   constants.DATATYPE_JSON,
	}}
}

func (req *IntradayRequest) validate() error {
	if err := validate.Struct(req); err != nil {
		return fromValidator(err)
	}
	return nil
}

func (req *IntradayRequest) params() url.Values {
	params := url.Values{
		"function": {constants.FUNCTION_TIME_SERIES_INTRADAY},
		"symbol":   {req.Symbol},
		"interval": {req.Interval},
	}
	if req.Adjusted.IsSome() {
		params.Set("adjusted", boolParam(req.Adjusted.Unwrap()))
	}
	if req.ExtendedHours.IsSome() {
		params.Set("extended_hours", boolParam(req.ExtendedHours.Unwrap()))
	}
	if req.Month != "" {
		params.Set("month", req.Month)
	}
	if isOutputSize(req.OutputSize) {
		params.Set("outputsize", req.OutputSize)
	}
	if req.Datatype != "" {
		params.Set("datatype", req.Datatype)
	}
	return params
}

// TimeSeriesRequest covers the daily, weekly and monthly series,
// adjusted or not.
type TimeSeriesRequest struct {
	Symbol string `param:"symbol" validate:"required"`
	// "daily" | "weekly" | "monthly"
	Period string `param:"period" validate:"oneof=daily weekly monthly"`
	// Selects the *_ADJUSTED function (dividends and splits).
	Adjusted bool `param:"adjusted"`
	// "compact" | "full", daily only.
	OutputSize string `param:"outputsize"`
	// "json" | "csv"
	Datatype string `param:"datatype"`
}

// Usage:
//
//	builder := TimeSeriesRequest{}.GetBuilder("IBM", constants.PERIOD_WEEKLY)
func (TimeSeriesRequest) GetBuilder(symbol, period string) TimeSeriesRequestBuilder {
	return TimeSeriesRequestBuilder{req: TimeSeriesRequest{
		Symbol:     symbol,
		Period:     period,
		OutputSize: constants.OUTPUTSIZE_COMPACT,
		Datatype:   constants.DATATYPE_JSON,
	}}
}

func (req *TimeSeriesRequest) validate() error {
	if err := validate.Struct(req); err != nil {
		return fromValidator(err)
	}
	return nil
}

// Function is the upstream function name, e.g. TIME_SERIES_WEEKLY_ADJUSTED.
func (req *TimeSeriesRequest) Function() string {
	return functionForPeriod(req.Period, req.Adjusted)
}

func (req *TimeSeriesRequest) params() url.Values {
	params := url.Values{
		"function": {req.Function()},
		"symbol":   {req.Symbol},
	}
	if req.Datatype != "" {
		params.Set("datatype", req.Datatype)
	}
	if req.Period == constants.PERIOD_DAILY && isOutputSize(req.OutputSize) {
		params.Set("outputsize", req.OutputSize)
	}
	return params
}

type QuoteRequest struct {
	Symbols []string `param:"symbol" validate:"required,min=1"`
	// "json" | "csv"
	Datatype string `param:"datatype"`
	// Defaults to GLOBAL_QUOTE, forced to REALTIME_BULK_QUOTES by Bulk.
	Function string `param:"function"`
	// Up to 100 symbols in one request.
	Bulk bool `param:"bulk"`
}

// Usage:
//
//	builder := QuoteRequest{}.GetBuilder("IBM")
func (QuoteRequest) GetBuilder(symbols ...string) QuoteRequestBuilder {
	return QuoteRequestBuilder{req: QuoteRequest{
		Symbols:  symbols,
		Datatype: constants.DATATYPE_JSON,
		Function: constants.FUNCTION_GLOBAL_QUOTE,
	}}
}

func (req *QuoteRequest) validate() error {
	if err := validate.Struct(req); err != nil {
		return fromValidator(err)
	}
	return nil
}

func (req *QuoteRequest) params() url.Values {
	function := req.Function
	if function == "" {
		function = constants.FUNCTION_GLOBAL_QUOTE
	}
	symbols := req.Symbols
	if req.Bulk {
		function = constants.FUNCTION_REALTIME_BULK_QUOTES
		symbols = []string{strings.Join(req.Symbols, ",")}
	}

	// Without bulk, several symbols go out as repeated `symbol` parameters,
	// which the upstream does not accept.
	params := url.Values{
		"function": {function},
		"symbol":   symbols,
	}
	if req.Datatype != "" {
		params.Set("datatype", req.Datatype)
	}
	return params
}

// ========================= API =========================

func (c *Client) Intraday(ctx context.Context, req IntradayRequest) (Result, error) {
	if err := req.validate(); err != nil {
		return Result{}, err
	}
	return c.get(ctx, req.params(), req.Datatype)
}

func (c *Client) TimeSeries(ctx context.Context, req TimeSeriesRequest) (Result, error) {
	if err := req.validate(); err != nil {
		return Result{}, err
	}
	return c.get(ctx, req.params(), req.Datatype)
}

func (c *Client) Quote(ctx context.Context, req QuoteRequest) (Result, error) {
	if err := req.validate(); err != nil {
		return Result{}, err
	}
	if req.Bulk && len(req.Symbols) > constants.BULK_QUOTE_MAX_SYMBOLS {
		c.logger.Warn("bulk quote above upstream limit",
			"symbols", len(req.Symbols), "max", constants.BULK_QUOTE_MAX_SYMBOLS)
	}
	return c.get(ctx, req.params(), req.Datatype)
}

// MarketStatus is always JSON, the function has no datatype.
func (c *Client) MarketStatus(ctx context.Context) (Result, error) {
	params := url.Values{"function": {constants.FUNCTION_MARKET_STATUS}}
	return c.get(ctx, params, constants.DATATYPE_JSON)
}

// GetIntraday uses the defaults: compact, json.
func (c *Client) GetIntraday(ctx context.Context, symbol, interval string) (Result, error) {
	builder := IntradayRequest{}.GetBuilder(symbol, interval)
	req, err := builder.Build()
	if err != nil {
		return Result{}, err
	}
	return c.Intraday(ctx, req)
}

// GetTimeSeries uses the defaults: unadjusted, compact, json.
func (c *Client) GetTimeSeries(ctx context.Context, symbol, period string) (Result, error) {
	builder := TimeSeriesRequest{}.GetBuilder(symbol, period)
	req, err := builder.Build()
	if err != nil {
		return Result{}, err
	}
	return c.TimeSeries(ctx, req)
}

func (c *Client) GetQuote(ctx context.Context, symbol string) (Result, error) {
	builder := QuoteRequest{}.GetBuilder(symbol)
	req, err := builder.Build()
	if err != nil {
		return Result{}, err
	}
	return c.Quote(ctx, req)
}

func (c *Client) GetBulkQuote(ctx context.Context, symbols ...string) (Result, error) {
	builder := QuoteRequest{}.GetBuilder(symbols...)
	builder.SetBulk(true)
	req, err := builder.Build()
	if err != nil {
		return Result{}, err
	}
	return c.Quote(ctx, req)
}

// get issues the request and picks the result kind from datatype.
func (c *Client) get(ctx context.Context, params url.Values, datatype string) (Result, error) {
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Result{}, errors.Wrap(err, "building request")
	}
	c.logger.Debug("GET "+c.baseURL, "function", params.Get("function"), "query", redact(params))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, errors.Wrapf(err, "GET %s", params.Get("function"))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, errors.Wrap(err, "reading response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstreamErr := &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
		c.logger.Error("Alpha Vantage request failed",
			"status", resp.StatusCode, "details", upstreamErr.Details(), "function", params.Get("function"))
		return Result{}, upstreamErr
	}

	if datatype != constants.DATATYPE_JSON {
		return textResult(body), nil
	}
	res, err := jsonResult(body)
	if err != nil {
		return Result{}, errors.Wrapf(err, "decoding %s response", params.Get("function"))
	}
	if msg, ok := res.Message(); ok {
		c.logger.Warn("Alpha Vantage returned a message instead of data",
			"function", params.Get("function"), "message", msg)
	}
	return res, nil
}

// ========================= AUXILIARY FUNC =========================

func redact(params url.Values) string {
	safe := url.Values{}
	for k, v := range params {
		safe[k] = v
	}
	safe.Set("apikey", "***")
	return safe.Encode()
}
