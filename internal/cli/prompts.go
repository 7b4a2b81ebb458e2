package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"SignalScout/internal/model"
)

var tickerPattern = regexp.MustCompile(`^[A-Z0-9.\-^]+$`)

// validateTicker enforces the symbol shape the providers accept:
// non-empty, at most 10 characters, letters/digits/dot/hyphen/caret.
func validateTicker(symbol string) error {
	symbol = strings.TrimSpace(strings.ToUpper(symbol))
	if symbol == "" {
		return &model.ConfigurationError{Field: "ticker", Reason: "cannot be empty"}
	}
	if len(symbol) > 10 {
		return &model.ConfigurationError{Field: "ticker", Reason: "too long, max 10 characters"}
	}
	if !tickerPattern.MatchString(symbol) {
		return &model.ConfigurationError{Field: "ticker", Reason: "letters, digits, dot, hyphen only"}
	}
	return nil
}

// timeframePreset names a primary interval plus the confirmation set
// the Multi-Timeframe Aggregator runs against.
type timeframePreset struct {
	Name       string
	Primary    model.Interval
	Timeframes []model.Interval
}

var presets = []timeframePreset{
	{"scalp", model.Interval15Min, []model.Interval{model.Interval1Min, model.Interval5Min, model.Interval15Min}},
	{"intraday", model.Interval1Hour, []model.Interval{model.Interval5Min, model.Interval15Min, model.Interval1Hour}},
	{"swing", model.Interval1Day, []model.Interval{model.Interval1Hour, model.Interval4Hour, model.Interval1Day}},
	{"position", model.Interval1Week, []model.Interval{model.Interval1Day, model.Interval1Week, model.Interval1Month}},
}

// presetByName returns the named preset, defaulting to swing.
func presetByName(name string) timeframePreset {
	for _, p := range presets {
		if p.Name == name {
			return p
		}
	}
	return presets[2]
}

func promptTicker() (string, error) {
	var ticker string
	prompt := &survey.Input{
		Message: "Ticker symbol:",
		Help:    "e.g. AAPL, TSLA, BTC-USD",
	}
	err := survey.AskOne(prompt, &ticker, survey.WithValidator(func(val interface{}) error {
		return validateTicker(val.(string))
	}))
	if err != nil {
		return "", err
	}
	return strings.ToUpper(strings.TrimSpace(ticker)), nil
}

func promptPreset(current string) (timeframePreset, error) {
	options := make([]string, len(presets))
	defaultOpt := ""
	for i, p := range presets {
		options[i] = fmt.Sprintf("%-8s  %s", p.Name, joinIntervals(p.Timeframes))
		if p.Name == current {
			defaultOpt = options[i]
		}
	}
	var choice string
	prompt := &survey.Select{
		Message: "Timeframe preset:",
		Options: options,
		Default: defaultOpt,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return timeframePreset{}, err
	}
	return presetByName(strings.Fields(choice)[0]), nil
}

// promptPositiveFloat asks for a positive number, rejecting anything
// that is not.
func promptPositiveFloat(message string, current float64) (float64, error) {
	var raw string
	prompt := &survey.Input{
		Message: message,
		Default: strconv.FormatFloat(current, 'f', -1, 64),
	}
	err := survey.AskOne(prompt, &raw, survey.WithValidator(func(val interface{}) error {
		f, err := strconv.ParseFloat(strings.TrimSpace(val.(string)), 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if f <= 0 {
			return fmt.Errorf("must be positive")
		}
		return nil
	}))
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

func promptConfirm(message string, def bool) (bool, error) {
	var ok bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &ok)
	return ok, err
}

func joinIntervals(ivs []model.Interval) string {
	parts := make([]string, len(ivs))
	for i, iv := range ivs {
		parts[i] = string(iv)
	}
	return strings.Join(parts, "/")
}
