package cryptomkt

import (
	"net/url"
	"strconv"

	. "github.com/deforceHK/gocryptomkt"
)

// Signer holds the credentials of a client. It is safe for concurrent use,
// the only mutable piece is the nonce.
type Signer struct {
	apiKey       string
	apiSecretKey string
	nonce        *Nonce
}

func NewSigner(apiKey, apiSecretKey string) *Signer {
	return &Signer{
		apiKey:       apiKey,
		apiSecretKey: apiSecretKey,
		nonce:        &Nonce{},
	}
}

// Sign returns the hex HMAC-SHA384 of the request with the given nonce.
func (s *Signer) Sign(httpMethod, uri string, nonce int64, params url.Values) string {
	msg := BuildSignMessage(httpMethod, "/"+API_VERSION+"/"+uri, nonce, params)
	return GetParamHmacSHA384Sign(s.apiSecretKey, msg)
}

// Headers signs the request with a fresh nonce.
func (s *Signer) Headers(httpMethod, uri string, params url.Values) map[string]string {
	nonce := s.nonce.Next()
	return map[string]string{
		X_MKT_APIKEY:    s.apiKey,
		X_MKT_SIGNATURE: s.Sign(httpMethod, uri, nonce, params),
		X_MKT_TIMESTAMP: strconv.FormatInt(nonce, 10),
	}
}
