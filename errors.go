package alphavantage

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrValidation    = errors.New("validation error")
	ErrUpstream      = errors.New("upstream error")
)

// ConfigurationError is returned by [New] when no usable API key is available.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "alphavantage: " + e.Reason
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// ValidationError reports a request parameter outside its allowed set.
// It is always returned before any request is made.
type ValidationError struct {
	Field string
	Value any
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("alphavantage: bad `%s` %q (%s)", e.Field, fmt.Sprint(e.Value), e.Rule)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// UpstreamError carries a non-2xx response verbatim.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Alpha Vantage API error: %d %s", e.StatusCode, e.Body)
}

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

// Details is a human readable description of the status code, if known.
func (e *UpstreamError) Details() string {
	if details, ok := httpStatusMap[e.StatusCode]; ok {
		return details
	}
	return "Unexpected status"
}

// fromValidator converts the first failed rule into a *ValidationError.
func fromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}
	return &ValidationError{
		Field: fe.Field(),
		Value: fe.Value(),
		Rule:  rule,
	}
}
