package alphavantage

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/minh-dng/alphavantage-go/constants"
	optional "github.com/moznion/go-optional"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report query parameter names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("param"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// ========================= INTRADAY =========================

type IntradayRequestBuilder struct {
	req IntradayRequest
}

func (b *IntradayRequestBuilder) SetAdjusted(adjusted bool) *IntradayRequestBuilder {
	b.req.Adjusted = optional.Some(adjusted)
	return b
}

func (b *IntradayRequestBuilder) SetExtendedHours(extendedHours bool) *IntradayRequestBuilder {
	b.req.ExtendedHours = optional.Some(extendedHours)
	return b
}

// Usage:
//
//	builder.SetMonth("2009-01")
func (b *IntradayRequestBuilder) SetMonth(month string) *IntradayRequestBuilder {
	b.req.Month = month
	return b
}

// Values other than "compact" and "full" drop the parameter from the request.
func (b *IntradayRequestBuilder) SetOutputSize(outputSize string) *IntradayRequestBuilder {
	b.req.OutputSize = outputSize
	return b
}

func (b *IntradayRequestBuilder) SetDatatype(datatype string) *IntradayRequestBuilder {
	b.req.Datatype = datatype
	return b
}

func (b *IntradayRequestBuilder) Build() (req IntradayRequest, err error) {
	req = b.req
	err = req.validate()
	return
}

// ========================= TIME SERIES =========================

type TimeSeriesRequestBuilder struct {
	req TimeSeriesRequest
}

func (b *TimeSeriesRequestBuilder) SetAdjusted(adjusted bool) *TimeSeriesRequestBuilder {
	b.req.Adjusted = adjusted
	return b
}

// Only sent for the daily period.
func (b *TimeSeriesRequestBuilder) SetOutputSize(outputSize string) *TimeSeriesRequestBuilder {
	b.req.OutputSize = outputSize
	return b
}

func (b *TimeSeriesRequestBuilder) SetDatatype(datatype string) *TimeSeriesRequestBuilder {
	b.req.Datatype = datatype
	return b
}

func (b *TimeSeriesRequestBuilder) Build() (req TimeSeriesRequest, err error) {
	req = b.req
	err = req.validate()
	return
}

// ========================= QUOTE =========================

type QuoteRequestBuilder struct {
	req QuoteRequest
}

func (b *QuoteRequestBuilder) SetDatatype(datatype string) *QuoteRequestBuilder {
	b.req.Datatype = datatype
	return b
}

// Ignored when bulk is set.
func (b *QuoteRequestBuilder) SetFunction(function string) *QuoteRequestBuilder {
	b.req.Function = function
	return b
}

// Usage:
//
//	builder := QuoteRequest{}.GetBuilder("MSFT", "AAPL", "IBM")
//	builder.SetBulk(true)
func (b *QuoteRequestBuilder) SetBulk(bulk bool) *QuoteRequestBuilder {
	b.req.Bulk = bulk
	return b
}

func (b *QuoteRequestBuilder) Build() (req QuoteRequest, err error) {
	req = b.req
	err = req.validate()
	return
}

// ========================= AUXILIARY FUNC =========================

func boolParam(v bool) string {
	return strconv.FormatBool(v)
}

func functionForPeriod(period string, adjusted bool) string {
	function := "TIME_SERIES_" + strings.ToUpper(period)
	if adjusted {
		function += "_ADJUSTED"
	}
	return function
}

func isOutputSize(outputSize string) bool {
	return constants.OutputSizeSet.Has(outputSize)
}
