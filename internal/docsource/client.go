package docsource

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/lmartens/dayflow/internal/config"
)

// cacheSize bounds the number of parsed documents kept per process. A
// shell session rarely tracks more than a handful of project docs.
const cacheSize = 16

type getFunc func(ctx context.Context, documentID string) (*docs.Document, error)

// Client fetches and parses Google Docs documents, keeping an LRU of
// parsed results so repeated reads within one session skip the API.
type Client struct {
	get   getFunc
	cache *lru.Cache[string, Document]
	obs   Observer
}

// NewClient authenticates against the docs API per the google config
// and returns a caching client. Fetch events go to obs.
func NewClient(ctx context.Context, cfg config.GoogleConfig, obs Observer) (*Client, error) {
	httpClient, err := NewHTTPClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	svc, err := docs.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("creating docs service: %w", err)
	}

	get := func(ctx context.Context, documentID string) (*docs.Document, error) {
		return svc.Documents.Get(documentID).IncludeTabsContent(true).Context(ctx).Do()
	}
	return newClient(get, obs)
}

// NewLazyClient returns a caching client that postpones authentication
// until the first remote fetch. Commands that only read the local
// snapshot never touch credentials this way.
func NewLazyClient(cfg config.GoogleConfig, obs Observer) (*Client, error) {
	var (
		once    sync.Once
		get     getFunc
		initErr error
	)

	lazyGet := func(ctx context.Context, documentID string) (*docs.Document, error) {
		once.Do(func() {
			httpClient, err := NewHTTPClient(ctx, cfg)
			if err != nil {
				initErr = err
				return
			}
			svc, err := docs.NewService(ctx, option.WithHTTPClient(httpClient))
			if err != nil {
				initErr = fmt.Errorf("creating docs service: %w", err)
				return
			}
			get = func(ctx context.Context, documentID string) (*docs.Document, error) {
				return svc.Documents.Get(documentID).IncludeTabsContent(true).Context(ctx).Do()
			}
		})
		if initErr != nil {
			return nil, initErr
		}
		return get(ctx, documentID)
	}
	return newClient(lazyGet, obs)
}

func newClient(get getFunc, obs Observer) (*Client, error) {
	if obs == nil {
		obs = NoopObserver{}
	}
	cache, err := lru.New[string, Document](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating document cache: %w", err)
	}
	return &Client{get: get, cache: cache, obs: obs}, nil
}

// Fetch returns the parsed document, served from cache when present.
func (c *Client) Fetch(ctx context.Context, documentID string) (Document, error) {
	if doc, ok := c.cache.Get(documentID); ok {
		c.obs.OnFetchComplete(FetchEvent{DocumentID: documentID, Cached: true, Success: true})
		return doc, nil
	}
	return c.fetchRemote(ctx, documentID)
}

// Refresh bypasses and replaces the cached entry. Sync uses it so a
// long-lived shell session still sees document edits.
func (c *Client) Refresh(ctx context.Context, documentID string) (Document, error) {
	c.cache.Remove(documentID)
	return c.fetchRemote(ctx, documentID)
}

func (c *Client) fetchRemote(ctx context.Context, documentID string) (Document, error) {
	started := time.Now()
	raw, err := c.get(ctx, documentID)
	latency := time.Since(started).Milliseconds()

	if err != nil {
		c.obs.OnFetchComplete(FetchEvent{
			DocumentID: documentID,
			LatencyMs:  latency,
			ErrorCode:  errorCode(err),
		})
		return Document{}, fmt.Errorf("fetching document %s: %w", documentID, err)
	}

	doc := ParseDocument(raw)
	c.cache.Add(documentID, doc)
	c.obs.OnFetchComplete(FetchEvent{DocumentID: documentID, LatencyMs: latency, Success: true})
	return doc, nil
}

func errorCode(err error) string {
	if apiErr, ok := err.(*googleapi.Error); ok {
		return strconv.Itoa(apiErr.Code)
	}
	return "request_failed"
}
