package cryptomkt

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/deforceHK/gocryptomkt"
)

func TestSigner_Sign(t *testing.T) {
	signer := NewSigner("key", "secret")
	params := url.Values{}
	params.Set("market", "ETHCLP")
	params.Set("type", "buy")
	params.Set("amount", "0.3")
	params.Set("price", "10000")

	expected := GetParamHmacSHA384Sign("secret", "1503944755/v1/orders/create0.3ETHCLP10000buy")
	assert.Equal(t, expected, signer.Sign(http.MethodPost, ORDERS_CREATE_URI, 1503944755, params))
	assert.Equal(t, signer.Sign(http.MethodPost, ORDERS_CREATE_URI, 1503944755, params), signer.Sign(http.MethodPost, ORDERS_CREATE_URI, 1503944755, params))
	assert.NotEqual(t, expected, signer.Sign(http.MethodPost, ORDERS_CREATE_URI, 1503944756, params))

	// the query of a get request is not signed
	assert.Equal(
		t,
		GetParamHmacSHA384Sign("secret", "1503944755/v1/balance"),
		signer.Sign(http.MethodGet, BALANCE_URI, 1503944755, params),
	)
}

func TestSigner_Headers(t *testing.T) {
	signer := NewSigner("key", "secret")

	first := signer.Headers(http.MethodGet, BALANCE_URI, nil)
	second := signer.Headers(http.MethodGet, BALANCE_URI, nil)
	assert.Equal(t, "key", first[X_MKT_APIKEY])
	assert.Len(t, first[X_MKT_SIGNATURE], 96)

	firstNonce, err := strconv.ParseInt(first[X_MKT_TIMESTAMP], 10, 64)
	assert.NoError(t, err)
	secondNonce, err := strconv.ParseInt(second[X_MKT_TIMESTAMP], 10, 64)
	assert.NoError(t, err)
	assert.Greater(t, secondNonce, firstNonce)
	assert.NotEqual(t, first[X_MKT_SIGNATURE], second[X_MKT_SIGNATURE])
}
