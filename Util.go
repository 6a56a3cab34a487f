package gocryptomkt

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var exchangeTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseExchangeTime parses the timestamps the exchange returns, zone less
// values are taken as UTC.
func ParseExchangeTime(raw string) (time.Time, error) {
	var err error
	for _, layout := range exchangeTimeLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// ParseDate parses a yyyy-mm-dd date param.
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DATE_FORMAT, date, time.UTC)
	if err != nil {
		return time.Time{}, NewInvalidArgument("malformed date %q, want yyyy-mm-dd", date)
	}
	return t, nil
}

// CheckDateRange validates optional start and end dates, start must not be after end.
func CheckDateRange(start, end string) error {
	var startTime, endTime time.Time
	var err error
	if start != "" {
		if startTime, err = ParseDate(start); err != nil {
			return err
		}
	}
	if end != "" {
		if endTime, err = ParseDate(end); err != nil {
			return err
		}
	}
	if start != "" && end != "" && startTime.After(endTime) {
		return NewInvalidArgument("start date %s is after end date %s", start, end)
	}
	return nil
}

func UUID() string {
	return strings.Replace(uuid.New().String(), "-", "", 32)
}

func GetAscTrades(trades []*Trade) []*Trade {
	if len(trades) <= 1 {
		return trades
	}

	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].Timestamp < trades[j].Timestamp
	})
	return trades
}
