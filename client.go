package pull

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	sdkerrors "github.com/IntersectLabs/supra-oracle-pull/sdk/errors"
	"github.com/IntersectLabs/supra-oracle-pull/types"
)

const (
	// ProofPath is the oracle endpoint proofs are pulled from, relative to the base URL.
	ProofPath = "/get_proof"

	// DefaultTimeout bounds a single proof pull.
	DefaultTimeout = 30 * time.Second
)

// Client pulls proofs from the oracle REST service. It holds no state between calls and is
// safe for concurrent use.
type Client struct {
	baseURL string
	http    *resty.Client
	lggr    *zap.SugaredLogger
	now     func() time.Time
}

type clientOptions struct {
	timeout    time.Duration
	timeoutSet bool
	httpClient *http.Client
	headers    map[string]string
	lggr       *zap.SugaredLogger
}

// Option configures a Client.
type Option func(*clientOptions)

// WithTimeout sets the timeout of a single pull. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = d
		o.timeoutSet = true
	}
}

// WithHTTPClient uses a copy of hc instead of a fresh http.Client. The timeout of hc is
// kept unless WithTimeout is also given, and hc itself is never modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = hc
	}
}

// WithHeader adds a header, such as an API key, to every pull request.
func WithHeader(key, value string) Option {
	return func(o *clientOptions) {
		o.headers[key] = value
	}
}

// WithLogger sets the logger of the client. By default nothing is logged.
func WithLogger(lggr *zap.SugaredLogger) Option {
	return func(o *clientOptions) {
		o.lggr = lggr
	}
}

// NewClient creates a Client bound to baseURL. No network I/O happens here, it only fails
// when baseURL is not an absolute http(s) URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, sdkerrors.NewConstructionError(baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, sdkerrors.NewConstructionError(baseURL, fmt.Errorf("unsupported scheme %q", u.Scheme))
	}
	if u.Host == "" {
		return nil, sdkerrors.NewConstructionError(baseURL, errors.New("missing host"))
	}

	o := clientOptions{
		timeout: DefaultTimeout,
		headers: map[string]string{},
		lggr:    zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	var rc *resty.Client
	if o.httpClient != nil {
		hc := *o.httpClient
		rc = resty.NewWithClient(&hc)
	} else {
		rc = resty.New()
		o.timeoutSet = true
	}
	if o.timeoutSet {
		rc.SetTimeout(o.timeout)
	}

	base := strings.TrimRight(baseURL, "/")
	rc.SetBaseURL(base).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeaders(o.headers).
		SetLogger(o.lggr)

	return &Client{
		baseURL: base,
		http:    rc,
		lggr:    o.lggr,
		now:     time.Now,
	}, nil
}

// BaseURL returns the oracle base URL the client is bound to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetProof issues one POST to `{base}/get_proof` and decodes the response into the proof
// variant selected by req.ChainType.
//
// Failures are returned as a TransportError when the oracle could not be reached, a
// RemoteError for a non-2xx status, and a DecodeError when the body does not match the
// proof shape. An unknown chain type is a ConfigError and no request is sent.
func (c *Client) GetProof(ctx context.Context, req types.PullRequest) (types.PullResponse, error) {
	if err := req.Validate(); err != nil {
		return types.PullResponse{}, sdkerrors.NewConfigError("chain_type", err)
	}

	endpoint := c.baseURL + ProofPath
	c.lggr.Debugw("Pulling proof", "url", endpoint, "chainType", req.ChainType, "pairIndexes", req.PairIndexes)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(ProofPath)
	if err != nil {
		return types.PullResponse{}, sdkerrors.NewTransportError(endpoint, err)
	}

	if !resp.IsSuccess() {
		c.lggr.Debugw("Oracle rejected proof pull", "status", resp.StatusCode())
		return types.PullResponse{}, sdkerrors.NewRemoteError(resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	out, err := decodeProof(req.ChainType, resp.Body())
	if err != nil {
		return types.PullResponse{}, sdkerrors.NewDecodeError(req.ChainType, err)
	}
	out.FetchedAt = c.now()

	c.lggr.Debugw("Pulled proof", "chainType", req.ChainType, "pairIndexes", out.PairIndexes())

	return out, nil
}

// GetProofFor is a shorthand for GetProof with a request built from its arguments.
func (c *Client) GetProofFor(ctx context.Context, chainType types.ChainType, pairIndexes ...uint32) (types.PullResponse, error) {
	return c.GetProof(ctx, types.NewPullRequest(chainType, pairIndexes...))
}

func decodeProof(chainType types.ChainType, body []byte) (types.PullResponse, error) {
	out := types.PullResponse{ChainType: chainType}

	var err error
	switch chainType {
	case types.ChainTypeEVM:
		out.EVM, err = decodeVariant[types.EVMProof](body)
	case types.ChainTypeAptos:
		out.Aptos, err = decodeVariant[types.AptosProof](body)
	case types.ChainTypeRadix:
		out.Radix, err = decodeVariant[types.RadixProof](body)
	case types.ChainTypeSui:
		out.Sui, err = decodeVariant[types.SuiProof](body)
	default:
		err = fmt.Errorf("%w: %q", types.ErrUnsupportedChainType, string(chainType))
	}
	if err != nil {
		return types.PullResponse{}, err
	}

	return out, nil
}

func decodeVariant[T any](body []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, err
	}

	if err := types.ValidateProof(&v); err != nil {
		return nil, err
	}

	return &v, nil
}
