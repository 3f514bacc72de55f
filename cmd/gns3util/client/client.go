// Package client provides the GNS3 API client used by every gns3util command.
//
// This package implements the HTTP layer for the read-only part of the GNS3
// v3 REST API. It handles request construction, bearer authentication, TLS
// options, response classification and structured logging, and exposes one
// method per remote read operation through the Facade interface.
//
// RESULT CONVENTION:
// Every read operation returns a Result instead of an error. A failed call is
// logged at ERROR level by the client itself and comes back with OK false and
// the message as Data; a successful call carries the raw JSON document so
// that field order is kept for rendering. Callers decide whether a failure is
// fatal: the generic get commands stay silent, the drill-down workflows abort.
//
// STREAMING:
// Notifications and ProjectNotifications consume newline-delimited JSON
// streams for a bounded time and write each event to the client's output.
package client

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/concave-dev/gns3util/cmd/gns3util/auth"
	"github.com/concave-dev/gns3util/cmd/gns3util/config"
	"github.com/concave-dev/gns3util/cmd/gns3util/utils"
	"github.com/concave-dev/gns3util/internal/logging"
	"github.com/concave-dev/gns3util/internal/netutil"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// APIPrefix is the path of the GNS3 v3 API root on a server.
const APIPrefix = "/v3"

// Result is the outcome of one read operation. On success Data holds the
// response document as json.RawMessage; on failure it holds the error message.
type Result struct {
	OK   bool
	Data any
}

// Success wraps a response document into a successful Result.
func Success(raw json.RawMessage) Result {
	return Result{OK: true, Data: raw}
}

// Failure wraps an error message into a failed Result.
func Failure(message string) Result {
	return Result{OK: false, Data: message}
}

// Raw returns the response document of a successful Result, or nil.
func (r Result) Raw() json.RawMessage {
	if !r.OK {
		return nil
	}
	raw, _ := r.Data.(json.RawMessage)
	return raw
}

// Message returns the error message of a failed Result, or "".
func (r Result) Message() string {
	if r.OK {
		return ""
	}
	msg, _ := r.Data.(string)
	return msg
}

// Options configures a new APIClient.
type Options struct {
	Server   string        // Server URL without the API prefix, e.g. http://127.0.0.1:3080
	Token    string        // Bearer token; empty sends unauthenticated requests
	Timeout  time.Duration // Per-request timeout; streams are bounded separately
	Insecure bool          // Skip TLS certificate verification
	Out      io.Writer     // Destination of streamed notification events
}

// APIClient wraps two Resty HTTP clients with GNS3-specific behavior: one for
// bounded request/response calls and one without an overall timeout for
// notification streams, whose duration is bounded per call.
type APIClient struct {
	client  *resty.Client
	stream  *resty.Client
	baseURL string
	out     io.Writer
}

// NewAPIClient creates a new API client with Resty configured for the GNS3
// v3 API: base URL, JSON headers, bearer token, TLS options and request
// logging routed through the CLI logger. No retries are configured; a failed
// call is final for the current command.
func NewAPIClient(opts Options) *APIClient {
	baseURL := opts.Server + APIPrefix

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	api := &APIClient{
		client:  newRestyClient(baseURL, opts),
		stream:  newRestyClient(baseURL, opts),
		baseURL: baseURL,
		out:     out,
	}

	if opts.Timeout > 0 {
		api.client.SetTimeout(opts.Timeout)
	}

	return api
}

// newRestyClient builds one configured Resty client.
func newRestyClient(baseURL string, opts Options) *resty.Client {
	client := resty.New()

	// Route Resty's internal logging through our structured logging system
	client.SetLogger(utils.RestyLogger{})

	client.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("gns3util/%s", config.Version))

	if opts.Token != "" {
		client.SetAuthToken(opts.Token)
	}

	if opts.Insecure {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // opt-in via --insecure
	}

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Making API request: %s %s", req.Method, req.URL)
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("API response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("API request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return client
}

// get performs one GET against path and classifies the response. Path
// parameters are escaped; raw parameters are inserted as they are so that
// image paths keep their slashes.
func (api *APIClient) get(path string, params, rawParams, query map[string]string) Result {
	req := api.client.R()
	if len(params) > 0 {
		req.SetPathParams(params)
	}
	if len(rawParams) > 0 {
		req.SetRawPathParams(rawParams)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		if hint := netutil.Hint(err); hint != "" {
			return api.fail("failed to connect to GNS3 server at %s: %s", api.baseURL, hint)
		}
		return api.fail("failed to connect to GNS3 server at %s: %v", api.baseURL, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return api.fail("GET %s failed with status %d: %s", path, resp.StatusCode(), errorDetail(resp.Body()))
	}

	return Success(normalizeBody(resp.Body()))
}

// fail logs a facade failure and turns it into a Result. Logging here is the
// client's error-reporting convention; the generic get commands print nothing
// else on failure.
func (api *APIClient) fail(format string, v ...any) Result {
	msg := fmt.Sprintf(format, v...)
	logging.Error("%s", msg)
	return Failure(msg)
}

// normalizeBody makes every successful body a JSON document. Empty bodies
// become null and non-JSON bodies (raw symbols) become a JSON string.
func normalizeBody(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return json.RawMessage("null")
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(string(trimmed)); err != nil {
		return json.RawMessage("null")
	}
	return json.RawMessage(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

// errorDetail extracts the server's error message. GNS3 reports errors as
// {"message": "..."}; anything else is returned trimmed.
func errorDetail(body []byte) string {
	if msg := gjson.GetBytes(body, "message"); msg.Exists() {
		return msg.String()
	}
	trimmed := string(bytes.TrimSpace(body))
	if trimmed == "" {
		return "empty response"
	}
	return trimmed
}

// CreateAPIClient creates an API client from the global configuration and
// the stored credential. A missing credential file is not fatal: requests go
// out unauthenticated and the server decides.
func CreateAPIClient() (*APIClient, error) {
	keyPath, err := config.ResolveKeyFile()
	if err != nil {
		return nil, err
	}

	var token string
	key, err := auth.LoadKey(keyPath)
	switch {
	case err == nil:
		token = key.AccessToken
	case errors.Is(err, auth.ErrNoKey):
		logging.Warn("%v - sending unauthenticated requests", err)
	default:
		return nil, err
	}

	return NewAPIClient(Options{
		Server:   config.Global.Server,
		Token:    token,
		Timeout:  time.Duration(config.Global.RequestTimeout) * time.Second,
		Insecure: config.Global.Insecure,
		Out:      os.Stdout,
	}), nil
}
