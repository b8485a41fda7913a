package docsource

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/googleapi"
)

type recordingObserver struct {
	events []FetchEvent
}

func (r *recordingObserver) OnFetchComplete(event FetchEvent) {
	r.events = append(r.events, event)
}

func fakeGet(calls *int, err error) getFunc {
	return func(_ context.Context, documentID string) (*docs.Document, error) {
		*calls++
		if err != nil {
			return nil, err
		}
		return &docs.Document{DocumentId: documentID, Title: "Doc " + documentID}, nil
	}
}

func TestClient_FetchCachesParsedDocuments(t *testing.T) {
	calls := 0
	obs := &recordingObserver{}
	c, err := newClient(fakeGet(&calls, nil), obs)
	require.NoError(t, err)

	first, err := c.Fetch(context.Background(), "doc-1")
	require.NoError(t, err)
	second, err := c.Fetch(context.Background(), "doc-1")
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second read is served from cache")
	assert.Equal(t, first, second)

	require.Len(t, obs.events, 2)
	assert.False(t, obs.events[0].Cached)
	assert.True(t, obs.events[1].Cached)
	assert.True(t, obs.events[1].Success)
}

func TestClient_RefreshBypassesCache(t *testing.T) {
	calls := 0
	c, err := newClient(fakeGet(&calls, nil), nil)
	require.NoError(t, err)

	_, err = c.Fetch(context.Background(), "doc-1")
	require.NoError(t, err)
	_, err = c.Refresh(context.Background(), "doc-1")
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestClient_FetchErrorReported(t *testing.T) {
	calls := 0
	obs := &recordingObserver{}
	c, err := newClient(fakeGet(&calls, &googleapi.Error{Code: 404}), obs)
	require.NoError(t, err)

	_, err = c.Fetch(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Equal(t, "404", obs.events[0].ErrorCode)
}

func TestClient_FetchErrorNotCached(t *testing.T) {
	calls := 0
	c, err := newClient(fakeGet(&calls, errors.New("boom")), nil)
	require.NoError(t, err)

	_, _ = c.Fetch(context.Background(), "doc-1")
	_, _ = c.Fetch(context.Background(), "doc-1")

	assert.Equal(t, 2, calls, "failures are retried, not cached")
}
