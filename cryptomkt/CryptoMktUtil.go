package cryptomkt

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	. "github.com/deforceHK/gocryptomkt"
)

// fieldCheck collects the required fields missing from a decoded record.
type fieldCheck struct {
	missing []string
}

func (fc *fieldCheck) decimal(name string, v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		fc.missing = append(fc.missing, name)
	}
	return v.Decimal
}

func (fc *fieldCheck) str(name, v string) string {
	if v == "" {
		fc.missing = append(fc.missing, name)
	}
	return v
}

// time parses an exchange timestamp.
func (fc *fieldCheck) time(name, v string) time.Time {
	if v == "" {
		fc.missing = append(fc.missing, name)
		return time.Time{}
	}
	t, err := ParseExchangeTime(v)
	if err != nil {
		fc.missing = append(fc.missing, name+"(malformed)")
	}
	return t
}

func (fc *fieldCheck) err(record string) error {
	if len(fc.missing) == 0 {
		return nil
	}
	return NewDecodeError(nil, "%s: missing required fields %s", record, strings.Join(fc.missing, ","))
}

func checkPaging(page, limit int) error {
	if page < 0 {
		return NewInvalidArgument("page %d must not be negative", page)
	}
	if limit <= 0 || limit > MAX_PAGE_LIMIT {
		return NewInvalidArgument("limit %d must be within 1 and %d", limit, MAX_PAGE_LIMIT)
	}
	return nil
}

func pagingParams(params url.Values, page, limit int) url.Values {
	if params == nil {
		params = url.Values{}
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	return params
}

// newPagination holds the requested page until the response tells better.
func newPagination(page, limit int) *Pagination {
	return &Pagination{Page: page, Limit: limit}
}

func (c *Client) toMillisecond(t time.Time) (int64, string) {
	if t.IsZero() {
		return 0, ""
	}
	return t.UnixNano() / int64(time.Millisecond), t.In(c.config.Location).Format(GO_BIRTHDAY)
}
