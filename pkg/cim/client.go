// Package cim is a client for the Authorize.Net Customer Information Manager
// (CIM) XML web service. It builds schema-ordered XML request documents for
// the profile, payment-profile, shipping-address, transaction and validation
// operations, posts them to the environment-selected endpoint and decodes the
// responses into a typed result envelope plus a generic value tree.
//
// The remote schema is order-sensitive XML: every element is emitted in the
// exact order the schema dictates, and absent optional fields are elided
// rather than emitted empty.
package cim

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/fayland/go-authorizenet-cim/internal/logging"
	"github.com/fayland/go-authorizenet-cim/internal/xmlutils"
)

const (
	// ProductionEndpoint is the live gateway URL.
	ProductionEndpoint = "https://api.authorize.net/xml/v1/request.api"

	// SandboxEndpoint is the test gateway URL, selected by Config.TestMode.
	SandboxEndpoint = "https://apitest.authorize.net/xml/v1/request.api"

	// SchemaNamespace is the namespace URI of every request root element.
	SchemaNamespace = "AnetApi/xml/v1/schema/AnetApiSchema.xsd"

	contentType    = "text/xml"
	defaultTimeout = 30 * time.Second
)

// Config holds the construction parameters for a Client.
// Login and TransactionKey are required; everything else has defaults.
type Config struct {
	// Login is the merchant API login ID.
	Login string

	// TransactionKey is the merchant transaction key. It is never logged in
	// cleartext: debug traces mask it.
	TransactionKey string

	// TestMode selects the sandbox endpoint and test validation mode.
	TestMode bool

	// Debug enables request/response tracing at debug level.
	Debug bool

	// Timeout applies to the default HTTP client. Ignored when HTTPClient is
	// injected. Defaults to 30 seconds.
	Timeout time.Duration

	// HTTPClient overrides the default transport, mainly for tests.
	HTTPClient *http.Client

	// Endpoint overrides the environment-selected URL. Tests point this at a
	// local server; production code should leave it empty.
	Endpoint string

	// Logger receives structured log output. Defaults to a logrus-backed
	// logger at info level.
	Logger logging.Logger
}

// Client talks to the CIM web service. Credentials and environment are fixed
// at construction; the client holds no mutable per-call state, so one
// instance is safe for concurrent use.
type Client struct {
	login          string
	transactionKey string
	testMode       bool
	debug          bool
	endpoint       string
	httpClient     *http.Client
	logger         logging.Logger
}

// NewClient creates a gateway client. It returns a *ConfigurationError when
// a required credential is missing. No network calls happen here.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Login == "" {
		return nil, &ConfigurationError{Field: "login"}
	}
	if cfg.TransactionKey == "" {
		return nil, &ConfigurationError{Field: "transactionKey"}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	endpoint := ProductionEndpoint
	if cfg.TestMode {
		endpoint = SandboxEndpoint
	}
	if cfg.Endpoint != "" {
		endpoint = cfg.Endpoint
	}

	return &Client{
		login:          cfg.Login,
		transactionKey: cfg.TransactionKey,
		testMode:       cfg.TestMode,
		debug:          cfg.Debug,
		endpoint:       endpoint,
		httpClient:     httpClient,
		logger:         logger,
	}, nil
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// TestMode reports whether the client targets the sandbox environment.
func (c *Client) TestMode() bool {
	return c.testMode
}

// newRequest creates the request document for an operation. The
// merchantAuthentication block is always the first child of the root.
func (c *Client) newRequest(rootName string) (*etree.Document, *etree.Element) {
	doc, root := xmlutils.NewRequestDocument(rootName, SchemaNamespace)
	auth := root.CreateElement("merchantAuthentication")
	xmlutils.AddChild(auth, "name", c.login)
	xmlutils.AddChild(auth, "transactionKey", c.transactionKey)
	return doc, root
}

// appendValidationMode appends validationMode=testMode to a mutating request
// when the client is in test mode. Live requests omit the element; only
// validateCustomerPaymentProfile makes the binary testMode/liveMode choice.
func (c *Client) appendValidationMode(root *etree.Element) {
	if c.testMode {
		xmlutils.AddChild(root, "validationMode", "testMode")
	}
}

// send serializes the document, posts it and decodes the response.
// A remote-reported failure is not a Go error: the result code and messages
// come back on the Response for the caller to inspect.
func (c *Client) send(ctx context.Context, operation string, doc *etree.Document) (*Response, error) {
	body, err := xmlutils.Serialize(doc)
	if err != nil {
		return nil, &ValidationError{Operation: operation, Reason: "failed to serialize request: " + err.Error()}
	}

	if c.debug {
		c.logger.Debug("gateway request",
			logging.F(logging.FieldOperation, operation),
			logging.F(logging.FieldEndpoint, c.endpoint),
			logging.F("body", c.redact(body)))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Operation: operation, Err: err}
	}
	req.Header.Set("Content-Type", contentType)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Error("post request",
			logging.F(logging.FieldOperation, operation))
		return nil, &TransportError{Operation: operation, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.WithError(err).Warn("close response body")
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Operation: operation, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("gateway rejected request",
			logging.F(logging.FieldOperation, operation),
			logging.F(logging.FieldStatus, resp.StatusCode))
		return nil, &TransportError{Operation: operation, StatusCode: resp.StatusCode}
	}

	if c.debug {
		c.logger.Debug("gateway response",
			logging.F(logging.FieldOperation, operation),
			logging.F(logging.FieldStatus, resp.StatusCode),
			logging.F(logging.FieldDuration, time.Since(start).Milliseconds()),
			logging.F("body", c.redact(respBody)))
	}

	response, err := decodeResponse(operation, respBody)
	if err != nil {
		return nil, err
	}

	c.logger.Info("gateway call completed",
		logging.F(logging.FieldOperation, operation),
		logging.F(logging.FieldResultCode, response.ResultCode),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))
	return response, nil
}

// redact masks the transaction key in traced bodies. Debug traces must never
// expose merchant credentials.
func (c *Client) redact(body []byte) string {
	return strings.ReplaceAll(string(body), c.transactionKey, "***")
}
