package alphavantage

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

type ResultKind int

const (
	KindJSON ResultKind = iota
	KindText
)

func (k ResultKind) String() string {
	switch k {
	case KindJSON:
		return "json"
	case KindText:
		return "text"
	}
	return fmt.Sprintf("ResultKind(%d)", int(k))
}

// Result is what every call returns: either a parsed JSON object or the
// response body as text (CSV), depending on the requested datatype.
//
// Usage:
//
//	switch res.Kind() {
//	case alphavantage.KindJSON:
//		data, _ := res.JSON()
//	case alphavantage.KindText:
//		csv, _ := res.Text()
//	}
type Result struct {
	kind ResultKind
	raw  []byte
	data map[string]any
}

func jsonResult(body []byte) (Result, error) {
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return Result{}, err
	}
	return Result{kind: KindJSON, raw: body, data: data}, nil
}

func textResult(body []byte) Result {
	return Result{kind: KindText, raw: body}
}

func (r Result) Kind() ResultKind { return r.kind }

// JSON returns the parsed object, ok is false for text results.
func (r Result) JSON() (data map[string]any, ok bool) {
	return r.data, r.kind == KindJSON
}

// Text returns the body unmodified, ok is false for JSON results.
func (r Result) Text() (text string, ok bool) {
	return string(r.raw), r.kind == KindText
}

// Raw is the response body as received, for either kind.
func (r Result) Raw() []byte { return r.raw }

// Decode unmarshals a JSON result into v, e.g. a [GlobalQuote] or [TimeSeries].
func (r Result) Decode(v any) error {
	if r.kind != KindJSON {
		return fmt.Errorf("cannot decode %s result as JSON", r.kind)
	}
	return json.Unmarshal(r.raw, v)
}

// Keys are the sorted top-level keys of a JSON result.
func (r Result) Keys() []string {
	return sortedKeys(r.data)
}

// SeriesKey finds the "Time Series (...)" key of a time series payload,
// e.g. "Time Series (5min)" or "Weekly Adjusted Time Series".
func (r Result) SeriesKey() (string, bool) {
	for _, k := range r.Keys() {
		if strings.Contains(k, "Time Series") {
			return k, true
		}
	}
	return "", false
}

// Message returns the "Error Message", "Note" or "Information" text that the
// API sends with a 200 status instead of data.
func (r Result) Message() (string, bool) {
	for _, k := range []string{"Error Message", "Note", "Information"} {
		if msg, ok := r.data[k].(string); ok {
			return msg, true
		}
	}
	return "", false
}

// ========================= AUXILIARY FUNC =========================

func sortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
