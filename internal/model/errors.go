package model

import "fmt"

// InvalidSeriesError reports a structurally broken price series.
// The caller must re-fetch; retrying the analysis cannot help.
type InvalidSeriesError struct {
	Symbol string
	Index  int
	Reason string
}

func (e *InvalidSeriesError) Error() string {
	return fmt.Sprintf("invalid series %s: %s (bar %d)", e.Symbol, e.Reason, e.Index)
}

// InsufficientHistoryError reports that a computation needs more bars
// than the series provides.
type InsufficientHistoryError struct {
	Op   string
	Need int
	Got  int
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("%s needs %d bars, got %d", e.Op, e.Need, e.Got)
}

// ConfigurationError reports an out-of-range analysis or scan parameter.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}
