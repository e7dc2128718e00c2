/* Copyright 2025 Off Course Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package client provides interfaces for interacting with the Off Course API
// and validates every response before handing it to the caller
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/offcourse/offcourse/pkg/cli/context"
	"github.com/offcourse/offcourse/pkg/cli/log"
	"github.com/offcourse/offcourse/pkg/cli/models"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// ErrContentTypeMismatch is an error for a response that is not of the expected content type
var ErrContentTypeMismatch = errors.New("content type mismatch")

// ErrMissingID is an error for an operation invoked without the id it requires
var ErrMissingID = errors.New("missing id")

// ErrNoOrigin is an error for a production backend without a configured origin
var ErrNoOrigin = errors.New("no origin configured for production mode")

// AccessTokenCookie is the cookie carrying the session token
const AccessTokenCookie = "access_token"

// HTTPError represents an HTTP error response from the server
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf(`response %d "%s"`, e.StatusCode, e.Message)
}

// IsNotFound returns true if the error is a 404 Not Found error
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthenticated returns true if the server rejected the session
func (e *HTTPError) IsUnauthenticated() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// TransportError is an error for a request that never received a response
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("no response for %s %s: %s", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err was caused by a request that received no response
func IsTransport(err error) bool {
	var terr *TransportError
	return errors.As(err, &terr)
}

// IsUnauthenticated reports whether err is a server rejection of the session
func IsUnauthenticated(err error) bool {
	var herr *HTTPError
	return errors.As(err, &herr) && herr.IsUnauthenticated()
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not an HTTP error
func StatusCode(err error) int {
	var herr *HTTPError
	if errors.As(err, &herr) {
		return herr.StatusCode
	}

	return 0
}

var contentTypeApplicationJSON = "application/json"
var contentTypeNone = ""

// requestOptions contains options for requests
type requestOptions struct {
	HTTPClient *http.Client
	// ExpectedContentType is the Content-Type that the client is expecting from the server
	ExpectedContentType *string
	Query               url.Values
	// Payload is encoded as the JSON request body
	Payload interface{}
}

const (
	// clientRateLimitPerSecond is the max requests per second the client will make
	clientRateLimitPerSecond = 50
	// clientRateLimitBurst is the burst capacity for rate limiting
	clientRateLimitBurst = 100
)

// rateLimitedTransport wraps an http.RoundTripper with rate limiting
type rateLimitedTransport struct {
	transport http.RoundTripper
	limiter   *rate.Limiter
}

func (t *rateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.transport.RoundTrip(req)
}

// NewRateLimitedHTTPClient creates an HTTP client with rate limiting
func NewRateLimitedHTTPClient() *http.Client {
	interval := time.Second / time.Duration(clientRateLimitPerSecond)

	transport := &rateLimitedTransport{
		transport: http.DefaultTransport,
		limiter:   rate.NewLimiter(rate.Every(interval), clientRateLimitBurst),
	}
	return &http.Client{
		Transport: transport,
	}
}

func getHTTPClient(ctx context.OffCourseCtx, options *requestOptions) *http.Client {
	if options != nil && options.HTTPClient != nil {
		return options.HTTPClient
	}

	if ctx.HTTPClient != nil {
		return ctx.HTTPClient
	}

	return &http.Client{}
}

func getExpectedContentType(options *requestOptions) string {
	if options != nil && options.ExpectedContentType != nil {
		return *options.ExpectedContentType
	}

	return contentTypeApplicationJSON
}

func getReq(ctx context.OffCourseCtx, method, api string, options *requestOptions) (*http.Request, error) {
	endpoint, err := resolveURL(ctx.Backend, api)
	if err != nil {
		return nil, err
	}

	if options != nil && len(options.Query) > 0 {
		endpoint = fmt.Sprintf("%s?%s", endpoint, options.Query.Encode())
	}

	var body io.Reader
	hasPayload := options != nil && options.Payload != nil
	if hasPayload {
		b, err := json.Marshal(options.Payload)
		if err != nil {
			return nil, errors.Wrap(err, "marshaling payload")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, endpoint, body)
	if err != nil {
		return nil, errors.Wrap(err, "constructing http request")
	}

	req.Header.Set("Accept", contentTypeApplicationJSON)
	req.Header.Set("User-Agent", fmt.Sprintf("offcourse/%s", ctx.Version))

	if hasPayload {
		req.Header.Set("Content-Type", contentTypeApplicationJSON)
	}

	if ctx.SessionToken != "" {
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: ctx.SessionToken})
	}

	return req, nil
}

// errorBody is the shape of an error response from the server
type errorBody struct {
	Message string `json:"message"`
}

// checkRespErr checks if the given http response indicates an error and, if so,
// returns an *HTTPError carrying the server's message
func checkRespErr(res *http.Response, body []byte) error {
	if res.StatusCode < 400 {
		return nil
	}

	msg := strings.TrimRight(string(body), "\n")

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Message != "" {
		msg = eb.Message
	}

	return &HTTPError{
		StatusCode: res.StatusCode,
		Message:    msg,
	}
}

func checkContentType(res *http.Response, options *requestOptions) error {
	expected := getExpectedContentType(options)
	if expected == contentTypeNone {
		return nil
	}

	got := res.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(got)
	if err != nil || mediaType != expected {
		return errors.Wrapf(ErrContentTypeMismatch, "got: '%s' want: '%s'. Did you configure the backend correctly?", got, expected)
	}

	return nil
}

// doReq does a http request to the given api path and returns the response body
func doReq(ctx context.OffCourseCtx, method, api string, options *requestOptions) ([]byte, error) {
	req, err := getReq(ctx, method, api, options)
	if err != nil {
		return nil, errors.Wrap(err, "getting request")
	}

	log.Debug("HTTP %s %s\n", method, req.URL)

	hc := getHTTPClient(ctx, options)
	res, err := hc.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, URL: req.URL.String(), Err: err}
	}
	defer res.Body.Close()

	log.Debug("HTTP %s\n", res.Status)

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: req.URL.String(), Err: errors.Wrap(err, "reading the response body")}
	}

	if err = checkRespErr(res, body); err != nil {
		return nil, errors.Wrap(err, "server responded with an error")
	}

	if err = checkContentType(res, options); err != nil {
		return nil, errors.Wrap(err, "unexpected Content-Type")
	}

	return body, nil
}

// getJSON fetches api and decodes the body with dec
func getJSON[T any](ctx context.OffCourseCtx, api string, query url.Values, dec models.Decoder[T]) (T, error) {
	var zero T

	body, err := doReq(ctx, http.MethodGet, api, &requestOptions{Query: query})
	if err != nil {
		return zero, err
	}

	return dec.Decode(body)
}

// sendJSON sends payload to api with the given method and decodes the body with dec
func sendJSON[T any](ctx context.OffCourseCtx, method, api string, payload interface{}, dec models.Decoder[T]) (T, error) {
	var zero T

	body, err := doReq(ctx, method, api, &requestOptions{Payload: payload})
	if err != nil {
		return zero, err
	}

	return dec.Decode(body)
}

// deleteReq issues a DELETE to api. Success is any 2xx regardless of body.
func deleteReq(ctx context.OffCourseCtx, api string) error {
	_, err := doReq(ctx, http.MethodDelete, api, &requestOptions{
		ExpectedContentType: &contentTypeNone,
	})

	return err
}

// getPage fetches a paginated list and decodes every item with dec
func getPage[T any](ctx context.OffCourseCtx, api string, query url.Values, dec models.Decoder[T]) (models.Page[T], error) {
	body, err := doReq(ctx, http.MethodGet, api, &requestOptions{Query: query})
	if err != nil {
		return models.Page[T]{}, err
	}

	return models.DecodePage(body, dec)
}
