// Package dictionary looks words up in the Free Dictionary API
// (https://dictionaryapi.dev) and reshapes the first returned entry into
// definitions, synonyms, antonyms or phonetics.
//
// Every Fetch call validates its input, performs exactly one GET, reads the
// whole response body and projects it. Nothing is cached or retried, and the
// package has no side effects until a Fetch method is called.
package dictionary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the upstream host
	DefaultBaseURL = "https://api.dictionaryapi.dev"
	// DefaultLanguage is used when a caller passes an empty language
	DefaultLanguage = "en"
	// DefaultTimeout bounds a single lookup
	DefaultTimeout = 10 * time.Second

	entriesPath = "/api/v2/entries/%s/%s"
)

// LookupRequest is a validated word/language pair
type LookupRequest struct {
	Word     string
	Language string
}

// NewLookupRequest validates word and fills in the language default
func NewLookupRequest(word, language string) (LookupRequest, error) {
	if word == "" {
		return LookupRequest{}, invalidArgument(`"word" must be a non-empty string`)
	}
	if language == "" {
		language = DefaultLanguage
	}
	return LookupRequest{Word: word, Language: language}, nil
}

// Path returns the escaped entries path for the request
func (r LookupRequest) Path() string {
	return fmt.Sprintf(entriesPath, url.PathEscape(r.Language), url.PathEscape(r.Word))
}

// Client performs lookups against the dictionary API.
// A Client is safe for concurrent use.
type Client struct {
	baseURL         string
	defaultLanguage string
	timeout         time.Duration
	httpClient      *http.Client
	logger          *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a test server
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying *http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds every lookup. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger enables debug logging of requests and failures
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDefaultLanguage changes the language used when a call passes ""
func WithDefaultLanguage(language string) Option {
	return func(c *Client) {
		if language != "" {
			c.defaultLanguage = language
		}
	}
}

// NewClient creates a client for the public API with a 10s timeout and no logging
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:         DefaultBaseURL,
		defaultLanguage: DefaultLanguage,
		timeout:         DefaultTimeout,
		httpClient:      &http.Client{},
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchDefinition returns one DefinitionItem per part of speech
func (c *Client) FetchDefinition(ctx context.Context, word, language string) (Result[DefinitionItem], error) {
	entry, err := c.firstEntry(ctx, word, language)
	if err != nil {
		return Result[DefinitionItem]{}, err
	}
	return NewResult(projectDefinitions(entry)), nil
}

// FetchSynonyms returns the synonyms of every definition, in order
func (c *Client) FetchSynonyms(ctx context.Context, word, language string) (Result[SynonymGroup], error) {
	entry, err := c.firstEntry(ctx, word, language)
	if err != nil {
		return Result[SynonymGroup]{}, err
	}
	return NewResult(projectSynonyms(entry)), nil
}

// FetchAntonyms returns the antonyms of every definition, in order
func (c *Client) FetchAntonyms(ctx context.Context, word, language string) (Result[AntonymGroup], error) {
	entry, err := c.firstEntry(ctx, word, language)
	if err != nil {
		return Result[AntonymGroup]{}, err
	}
	return NewResult(projectAntonyms(entry)), nil
}

// FetchPhonetics returns the pronunciations of the word
func (c *Client) FetchPhonetics(ctx context.Context, word, language string) (Result[PhoneticEntry], error) {
	entry, err := c.firstEntry(ctx, word, language)
	if err != nil {
		return Result[PhoneticEntry]{}, err
	}
	return NewResult(projectPhonetics(entry)), nil
}

// FetchRaw returns the upstream document exactly as received
func (c *Client) FetchRaw(ctx context.Context, word, language string) (json.RawMessage, error) {
	resp, err := c.lookup(ctx, word, language)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(resp.body), nil
}

type response struct {
	body    []byte
	entries []Entry
}

func (c *Client) firstEntry(ctx context.Context, word, language string) (Entry, error) {
	resp, err := c.lookup(ctx, word, language)
	if err != nil {
		return Entry{}, err
	}
	return resp.entries[0], nil
}

// lookup validates, performs the GET and decodes the entries
func (c *Client) lookup(ctx context.Context, word, language string) (*response, error) {
	if language == "" {
		language = c.defaultLanguage
	}
	req, err := NewLookupRequest(word, language)
	if err != nil {
		return nil, err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	target := c.baseURL + req.Path()
	logger := c.logger.With(zap.String("word", req.Word), zap.String("language", req.Language))
	logger.Debug("dictionary request", zap.String("url", target))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &Error{Kind: KindInvalidArgument, Message: "cannot build request", Err: err}
	}
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Debug("dictionary request failed", zap.Error(err))
		return nil, &Error{Kind: KindTransport, Message: "request failed", Err: err}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		logger.Debug("dictionary body read failed", zap.Error(err))
		return nil, &Error{Kind: KindTransport, Message: "read body", StatusCode: httpResp.StatusCode, Err: err}
	}

	logger.Debug("dictionary response",
		zap.Int("status", httpResp.StatusCode),
		zap.Int("bytes", len(body)),
	)

	entries, err := decodeEntries(httpResp.StatusCode, body)
	if err != nil {
		logger.Debug("dictionary lookup failed", zap.Error(err))
		return nil, err
	}
	return &response{body: body, entries: entries}, nil
}

// decodeEntries classifies a complete response body
func decodeEntries(status int, body []byte) ([]Entry, error) {
	ok := status >= 200 && status < 300
	trimmed := bytes.TrimSpace(body)

	if !json.Valid(trimmed) {
		if !ok {
			return nil, &Error{Kind: KindUpstream, Message: http.StatusText(status), StatusCode: status}
		}
		return nil, &Error{Kind: KindParse, Message: "response is not valid JSON", StatusCode: status}
	}

	switch trimmed[0] {
	case '{':
		var apiErr apiError
		if err := json.Unmarshal(trimmed, &apiErr); err != nil || apiErr.Title == "" {
			return nil, &Error{Kind: KindParse, Message: "unexpected object in response", StatusCode: status, Err: err}
		}
		kind := KindUpstream
		if ok || status == http.StatusNotFound {
			kind = KindUpstreamNotFound
		}
		return nil, &Error{
			Kind:       kind,
			Message:    apiErr.Title,
			Detail:     joinNonEmpty(apiErr.Message, apiErr.Resolution),
			StatusCode: status,
		}
	case '[':
		if !ok {
			return nil, &Error{Kind: KindUpstream, Message: http.StatusText(status), StatusCode: status}
		}
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, &Error{Kind: KindParse, Message: "malformed entries", StatusCode: status, Err: err}
		}
		if len(raw) == 0 {
			return nil, &Error{Kind: KindParse, Message: "empty entries array", StatusCode: status}
		}
		if err := checkEntryShape(raw[0]); err != nil {
			return nil, &Error{Kind: KindParse, Message: err.Error(), StatusCode: status}
		}
		var entries []Entry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, &Error{Kind: KindParse, Message: "malformed entries", StatusCode: status, Err: err}
		}
		return entries, nil
	default:
		return nil, &Error{Kind: KindParse, Message: "unexpected JSON value in response", StatusCode: status}
	}
}

// checkEntryShape rejects a first entry that is not an object carrying
// meanings or phonetics. Present but empty lists are accepted.
func checkEntryShape(raw json.RawMessage) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return errors.New("first entry is not an object")
	}
	_, hasMeanings := fields["meanings"]
	_, hasPhonetics := fields["phonetics"]
	if !hasMeanings && !hasPhonetics {
		return errors.New("first entry has neither meanings nor phonetics")
	}
	return nil
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
