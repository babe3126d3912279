// alphavantage: a client for the [Alpha Vantage API].
//
// 4 kinds of queries:
//   - Intraday series (TIME_SERIES_INTRADAY)
//   - Daily, weekly and monthly series, optionally adjusted
//   - Quote, single (GLOBAL_QUOTE) or bulk (REALTIME_BULK_QUOTES)
//   - Market status (MARKET_STATUS)
//
// Instructions:
//
//  1. Create a [Client] with [New], or [NewFromEnv] to read
//     $ALPHA_VANTAGE_API_KEY. A missing key is a [*ConfigurationError].
//
//  2. Construct a builder: [IntradayRequest.GetBuilder],
//     [TimeSeriesRequest.GetBuilder] or [QuoteRequest.GetBuilder].
//
//  3. Set the optional properties through setters. (".Set[...](...)")
//
//  4. Build the request. Enum-like parameters are validated here,
//     a bad one is a [*ValidationError] and no request is made.
//
//  5. Use the client to make the request: [Client.Intraday],
//     [Client.TimeSeries], [Client.Quote], [Client.MarketStatus].
//     The Get* shorthands skip steps 2 to 4.
//
//  6. Read the [Result]: JSON for datatype "json", text (CSV) otherwise.
//     [Result.Decode] maps JSON onto [TimeSeries], [GlobalQuote],
//     [BulkQuotes] or [MarketStatus].
//
// A non-2xx response is an [*UpstreamError] carrying the status and body.
//
// [Alpha Vantage API]: https://www.alphavantage.co/documentation/
package alphavantage
