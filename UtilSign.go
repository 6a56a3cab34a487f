package gocryptomkt

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

func GetParamHmacSHA384Sign(secret, params string) string {
	mac := hmac.New(sha512.New384, []byte(secret))
	mac.Write([]byte(params))
	return hex.EncodeToString(mac.Sum(nil))
}

// BuildSignMessage returns nonce + path, followed for non GET requests by
// the param values ordered by their keys.
//
//	eg: 1503944755/v1/orders/create0.3ETHCLP10000buy
func BuildSignMessage(httpMethod, path string, nonce int64, params url.Values) string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(nonce, 10))
	b.WriteString(path)
	if strings.EqualFold(httpMethod, http.MethodGet) {
		return b.String()
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range params[k] {
			b.WriteString(v)
		}
	}
	return b.String()
}

// Nonce hands out unix second timestamps, each one greater than the last.
// Requests faster than one per second run ahead of the wall clock.
type Nonce struct {
	last atomic.Int64
	Now  func() time.Time
}

func (n *Nonce) Next() int64 {
	for {
		last := n.last.Load()
		next := n.now().Unix()
		if next <= last {
			next = last + 1
		}
		if n.last.CompareAndSwap(last, next) {
			return next
		}
	}
}

func (n *Nonce) now() time.Time {
	if n.Now != nil {
		return n.Now()
	}
	return time.Now()
}
