package gocryptomkt

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/valyala/fasthttp"
)

const USER_AGENT = "gocryptomkt/1.0 (+https://github.com/deforceHK/gocryptomkt)"

type HttpResponse struct {
	StatusCode int
	Body       []byte
}

// Transport executes one http exchange. Any status code is a response, only
// failures to get a response are errors.
type Transport interface {
	Do(
		ctx context.Context,
		reqType,
		reqUrl,
		postData string,
		requestHeaders map[string]string,
	) (*HttpResponse, error)
}

type HttpTransport struct {
	client *http.Client
}

func NewHttpTransport(client *http.Client) *HttpTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HttpTransport{client: client}
}

func (t *HttpTransport) Do(
	ctx context.Context,
	reqType,
	reqUrl,
	postData string,
	requestHeaders map[string]string,
) (*HttpResponse, error) {
	return NewHttpRequest(ctx, t.client, reqType, reqUrl, postData, requestHeaders)
}

func NewHttpRequest(
	ctx context.Context,
	client *http.Client,
	reqType,
	reqUrl,
	postData string,
	requestHeaders map[string]string,
) (*HttpResponse, error) {
	req, err := http.NewRequestWithContext(ctx, reqType, reqUrl, strings.NewReader(postData))
	if err != nil {
		return nil, NewInvalidArgument("can not build request %s %s: %v", reqType, reqUrl, err)
	}
	req.Header.Set("User-Agent", USER_AGENT)
	for k, v := range requestHeaders {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, NewNetworkError(err, "%s %s", reqType, reqUrl)
	}
	defer resp.Body.Close()

	bodyData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError(err, "%s %s read body", reqType, reqUrl)
	}

	return &HttpResponse{StatusCode: resp.StatusCode, Body: bodyData}, nil
}

// FastHttpTransport runs requests on a fasthttp client. The context deadline
// is honored, a cancellation after the request started is not.
type FastHttpTransport struct {
	client *fasthttp.Client
}

func NewFastHttpTransport(client *fasthttp.Client) *FastHttpTransport {
	if client == nil {
		client = &fasthttp.Client{Name: USER_AGENT}
	}
	return &FastHttpTransport{client: client}
}

func (t *FastHttpTransport) Do(
	ctx context.Context,
	reqType,
	reqUrl,
	postData string,
	requestHeaders map[string]string,
) (*HttpResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewNetworkError(err, "%s %s", reqType, reqUrl)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(reqUrl)
	req.Header.SetMethod(reqType)
	req.Header.SetUserAgent(USER_AGENT)
	for k, v := range requestHeaders {
		req.Header.Set(k, v)
	}
	if postData != "" {
		req.SetBodyString(postData)
	}

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = t.client.DoDeadline(req, resp, deadline)
	} else {
		err = t.client.Do(req, resp)
	}
	if err != nil {
		return nil, NewNetworkError(err, "%s %s", reqType, reqUrl)
	}

	// resp.Body() is only valid until the response is released
	bodyData := append([]byte(nil), resp.Body()...)
	return &HttpResponse{StatusCode: resp.StatusCode(), Body: bodyData}, nil
}
