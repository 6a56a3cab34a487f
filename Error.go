package gocryptomkt

type ErrorKind int

const (
	// connection failure, timeout, dns failure, cancelled context
	NetworkError ErrorKind = 1 + iota
	// the response body does not fit the expected schema
	DecodeError
	// caller supplied parameter rejected before any request
	InvalidArgument
	// the exchange answered with an error payload or a non 200 status
	ApiError
)

var errorKindSymbol = [...]string{"", "network_error", "decode_error", "invalid_argument", "api_error"}

func (k ErrorKind) String() string {
	if k <= 0 || int(k) >= len(errorKindSymbol) {
		return "unknown_error"
	}
	return errorKindSymbol[k]
}
