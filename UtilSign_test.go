package gocryptomkt

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSignMessage(t *testing.T) {
	params := url.Values{}
	params.Set("type", "buy")
	params.Set("price", "10000")
	params.Set("market", "ETHCLP")
	params.Set("amount", "0.3")

	// values joined in key order: amount market price type
	assert.Equal(t,
		"1503944755/v1/orders/create0.3ETHCLP10000buy",
		BuildSignMessage("POST", "/v1/orders/create", 1503944755, params),
	)
	// GET ignores the params, they travel in the query string
	assert.Equal(t,
		"1503944755/v1/orders/active",
		BuildSignMessage("GET", "/v1/orders/active", 1503944755, params),
	)
	assert.Equal(t, "1503944755/v1/balance", BuildSignMessage("GET", "/v1/balance", 1503944755, nil))
}

func TestGetParamHmacSHA384Sign(t *testing.T) {
	mac := hmac.New(sha512.New384, []byte("secret"))
	mac.Write([]byte("1503944755/v1/balance"))
	expected := hex.EncodeToString(mac.Sum(nil))

	sign := GetParamHmacSHA384Sign("secret", "1503944755/v1/balance")
	assert.Equal(t, expected, sign)
	assert.Len(t, sign, 96)

	// deterministic for one nonce, different for another
	assert.Equal(t, sign, GetParamHmacSHA384Sign("secret", "1503944755/v1/balance"))
	assert.NotEqual(t, sign, GetParamHmacSHA384Sign("secret", "1503944756/v1/balance"))
	assert.NotEqual(t, sign, GetParamHmacSHA384Sign("other", "1503944755/v1/balance"))
}

func TestNonce_Next(t *testing.T) {
	fixed := time.Unix(1526400000, 0)
	nonce := &Nonce{Now: func() time.Time { return fixed }}

	assert.Equal(t, int64(1526400000), nonce.Next())
	assert.Equal(t, int64(1526400001), nonce.Next())
	assert.Equal(t, int64(1526400002), nonce.Next())

	// the clock catching up takes over again
	fixed = time.Unix(1526400100, 0)
	assert.Equal(t, int64(1526400100), nonce.Next())
}

func TestNonce_NextConcurrent(t *testing.T) {
	nonce := &Nonce{}
	const workers, each = 8, 50

	var mu sync.Mutex
	seen := make(map[int64]bool)
	wg := sync.WaitGroup{}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			last := int64(0)
			for j := 0; j < each; j++ {
				n := nonce.Next()
				if n <= last {
					t.Errorf("nonce %d not above %d", n, last)
				}
				last = n
				mu.Lock()
				seen[n] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, workers*each)
}
