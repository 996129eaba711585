package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"github.com/xeptore/flaw/v8"

	"github.com/xeptore/jamlist/config"
	"github.com/xeptore/jamlist/errutil"
	"github.com/xeptore/jamlist/httputil"
	"github.com/xeptore/jamlist/must"
)

const responseFormat = "json"

type Client struct {
	baseURL     string
	httpClient  *http.Client
	credential  func() string
	limit       int
	audioFormat string
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) { client.httpClient = c }
}

// WithCredential replaces the environment lookup of the client ID.
func WithCredential(fn func() string) Option {
	return func(client *Client) { client.credential = fn }
}

func WithLimit(limit int) Option {
	return func(client *Client) { client.limit = limit }
}

func WithAudioFormat(format string) Option {
	return func(client *Client) { client.audioFormat = format }
}

func NewClient(baseURL string, opts ...Option) *Client {
	defaults := config.Default().Catalog
	c := &Client{
		baseURL:     baseURL,
		httpClient:  &http.Client{}, //nolint:exhaustruct
		credential:  func() string { return os.Getenv(config.CatalogCredentialEnv) },
		limit:       defaults.Limit,
		audioFormat: defaults.AudioFormat,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) queryParams(genre string) url.Values {
	params := make(url.Values, 5)
	params.Add("client_id", c.credential())
	params.Add("format", responseFormat)
	params.Add("limit", strconv.Itoa(c.limit))
	params.Add("tags", genre)
	params.Add("audioformat", c.audioFormat)
	return params
}

// Tracks fetches a single page of tracks tagged with genre. Results keep the
// catalog's order.
func (c *Client) Tracks(ctx context.Context, genre string) (tracks []Track, err error) {
	flawP := flaw.P{"genre": genre}
	reqURL, err := url.Parse(c.baseURL)
	if nil != err {
		flawP["err_debug_tree"] = errutil.Tree(err).FlawP()
		return nil, flaw.From(fmt.Errorf("failed to parse tracks URL: %v", err)).Append(flawP)
	}

	reqParams := c.queryParams(genre)
	reqURL.RawQuery = reqParams.Encode()
	reqParams.Set("client_id", "REDACTED")
	flawP["encoded_query_params"] = reqParams.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if nil != err {
		if errutil.IsContext(ctx) {
			return nil, ctx.Err()
		}

		flawP["err_debug_tree"] = errutil.Tree(err).FlawP()
		return nil, flaw.From(fmt.Errorf("failed to create get tracks request: %v", err)).Append(flawP)
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if nil != err {
		switch {
		case errutil.IsContext(ctx):
			return nil, ctx.Err()
		case errors.Is(err, context.DeadlineExceeded):
			return nil, context.DeadlineExceeded
		default:
			flawP["err_debug_tree"] = errutil.Tree(err).FlawP()
			return nil, flaw.From(fmt.Errorf("failed to send get tracks request: %v", err)).Append(flawP)
		}
	}
	defer func() {
		if closeErr := resp.Body.Close(); nil != closeErr {
			flawP["err_debug_tree"] = errutil.Tree(closeErr).FlawP()
			closeErr = flaw.From(fmt.Errorf("failed to close get tracks response body: %v", closeErr)).Append(flawP)
			switch {
			case nil == err:
				err = closeErr
			case errutil.IsContext(ctx):
				err = flaw.From(errors.New("context was ended")).Join(closeErr)
			case errors.Is(err, context.DeadlineExceeded):
				err = flaw.From(errors.New("timeout has reached")).Join(closeErr)
			case errutil.IsFlaw(err):
				err = must.BeFlaw(err).Join(closeErr)
			default:
				panic(errutil.UnknownError(err))
			}
		}
	}()
	flawP["response"] = errutil.HTTPResponseFlawPayload(resp)

	if code := resp.StatusCode; code < http.StatusOK || code >= http.StatusMultipleChoices {
		respBytes, err := httputil.ReadOptionalResponseBody(ctx, resp)
		if nil != err {
			return nil, err
		}
		flawP["response_body"] = string(respBytes)
		return nil, flaw.From(fmt.Errorf("unexpected status code: %d", code)).Append(flawP)
	}

	respBytes, err := httputil.ReadResponseBody(ctx, resp)
	if nil != err {
		return nil, err
	}

	tracks, err = decodeTracks(respBytes)
	if nil != err {
		flawP["response_body"] = string(respBytes)
		return nil, must.BeFlaw(err).Append(flawP)
	}
	return tracks, nil
}

func decodeTracks(b []byte) ([]Track, error) {
	if !gjson.ValidBytes(b) {
		return nil, flaw.From(errors.New("invalid tracks response json"))
	}

	body := gjson.ParseBytes(b)
	if body.Type == gjson.Null {
		return nil, flaw.From(errors.New("unexpected null tracks response"))
	}

	results := body.Get("results")
	switch {
	case !results.Exists(), results.Type == gjson.Null:
		return []Track{}, nil
	case !results.IsArray():
		return nil, flaw.From(fmt.Errorf("unexpected tracks results type: %s", results.Type))
	}

	var tracks []Track
	if err := json.Unmarshal([]byte(results.Raw), &tracks); nil != err {
		flawP := flaw.P{"err_debug_tree": errutil.Tree(err).FlawP()}
		return nil, flaw.From(fmt.Errorf("failed to decode tracks: %v", err)).Append(flawP)
	}
	return tracks, nil
}
