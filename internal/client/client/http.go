package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dmitrijs2005/brainly/internal/client/models"
	"github.com/dmitrijs2005/brainly/internal/common"
	"github.com/dmitrijs2005/brainly/internal/logging"
	"github.com/google/uuid"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultOEmbedURL = "https://publish.twitter.com/oembed"

	maxBodySize = 1 << 20
)

// HTTPClient talks to the Brainly REST API over net/http.
type HTTPClient struct {
	baseURL   string
	oembedURL string
	timeout   time.Duration
	http      *http.Client
	logger    logging.Logger
}

var _ Client = (*HTTPClient)(nil)

type Option func(*HTTPClient)

// WithTimeout bounds every call. Zero or negative values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

func WithOEmbedURL(u string) Option {
	return func(c *HTTPClient) {
		if u != "" {
			c.oembedURL = u
		}
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

// NewHTTPClient validates baseURL (scheme and host are required) and
// returns a ready client.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must include scheme and host", baseURL)
	}

	c := &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		oembedURL: DefaultOEmbedURL,
		timeout:   DefaultTimeout,
		http:      &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()},
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) SignUp(ctx context.Context, creds models.Credentials) error {
	return c.do(ctx, http.MethodPost, "/api/v1/signup", "", creds, nil)
}

func (c *HTTPClient) SignIn(ctx context.Context, creds models.Credentials) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/signin", "", creds, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("signin: %w: no token", ErrEmptyResponse)
	}
	return resp.Token, nil
}

func (c *HTTPClient) Me(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/v1/me", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ListContent(ctx context.Context, token string) ([]models.Item, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	var resp struct {
		Contents []models.Item `json:"contents"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/content", token, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Contents == nil {
		return []models.Item{}, nil
	}
	return resp.Contents, nil
}

func (c *HTTPClient) CreateContent(ctx context.Context, token string, content models.NewContent) error {
	if token == "" {
		return ErrUnauthenticated
	}
	return c.do(ctx, http.MethodPost, "/api/v1/content", token, content, nil)
}

func (c *HTTPClient) DeleteContent(ctx context.Context, token string, id string) error {
	if token == "" {
		return ErrUnauthenticated
	}
	if id == "" {
		return fmt.Errorf("delete content: %w", common.ErrorEmptyField)
	}
	return c.do(ctx, http.MethodDelete, "/api/v1/content/"+url.PathEscape(id), token, nil, nil)
}

func (c *HTTPClient) Share(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthenticated
	}
	var resp struct {
		Hash string `json:"hash"`
	}
	body := struct {
		Share bool `json:"share"`
	}{Share: true}
	if err := c.do(ctx, http.MethodPost, "/api/v1/brain/share", token, body, &resp); err != nil {
		return "", err
	}
	if resp.Hash == "" {
		return "", fmt.Errorf("share: %w: no hash", ErrEmptyResponse)
	}
	return resp.Hash, nil
}

// FetchTweet resolves a post through the public oEmbed endpoint and pulls
// author and text out of the returned blockquote markup.
func (c *HTTPClient) FetchTweet(ctx context.Context, id string) (*models.Tweet, error) {
	if id == "" {
		return nil, fmt.Errorf("fetch tweet: %w", common.ErrorEmptyField)
	}
	statusURL := "https://twitter.com/i/status/" + url.PathEscape(id)

	q := url.Values{}
	q.Set("url", statusURL)
	q.Set("omit_script", "true")
	q.Set("dnt", "true")

	var resp struct {
		URL        string `json:"url"`
		AuthorName string `json:"author_name"`
		HTML       string `json:"html"`
	}
	if err := c.send(ctx, http.MethodGet, c.oembedURL+"?"+q.Encode(), "", nil, &resp); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.HTML))
	if err != nil {
		return nil, fmt.Errorf("parse oembed html: %w", err)
	}
	quote := doc.Find("blockquote").First()
	text := strings.TrimSpace(quote.Find("p").First().Text())
	if text == "" {
		text = strings.TrimSpace(quote.Text())
	}
	if text == "" {
		return nil, fmt.Errorf("fetch tweet %s: %w", id, ErrEmptyResponse)
	}

	tweet := &models.Tweet{ID: id, Author: resp.AuthorName, Text: text, URL: resp.URL}
	if tweet.URL == "" {
		tweet.URL = statusURL
	}
	return tweet, nil
}

// Close drops idle keep-alive connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	return c.send(ctx, method, c.baseURL+path, token, body, out)
}

func (c *HTTPClient) send(ctx context.Context, method, target, token string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthHeaderName, token)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		err = mapTransportError(err)
		c.logger.Warn(ctx, "api request failed",
			"method", method, "url", redact(target), "request_id", requestID, "error", err)
		return fmt.Errorf("%s %s: %w", method, redact(target), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, redact(target), mapTransportError(err))
	}

	c.logger.Debug(ctx, "api request",
		"method", method, "url", redact(target), "status", resp.StatusCode,
		"request_id", requestID, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: extractMessage(data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func mapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func extractMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Message
}

// redact drops the query so oEmbed lookups do not leak into logs verbatim.
func redact(target string) string {
	if i := strings.IndexByte(target, '?'); i >= 0 {
		return target[:i]
	}
	return target
}
