package fetch

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberlore/codex/internal/codex"
)

func TestResource_StartsLoading(t *testing.T) {
	r := NewResource(func(ctx context.Context) (*string, error) {
		t.Fatal("fetch should not run before Load")
		return nil, nil
	})

	st := r.State()
	assert.True(t, st.Loading)
	assert.Nil(t, st.Data)
	assert.Empty(t, st.Err)
}

func TestResource_LoadSuccess(t *testing.T) {
	r := NewResource(func(ctx context.Context) (*string, error) {
		v := "echo cavern"
		return &v, nil
	})

	st := r.Load(context.Background())
	require.NotNil(t, st.Data)
	assert.Equal(t, "echo cavern", *st.Data)
	assert.False(t, st.Loading)
	assert.Empty(t, st.Err)
	assert.Equal(t, st, r.State())
}

func TestResource_LoadBackendError(t *testing.T) {
	r := NewResource(func(ctx context.Context) (*string, error) {
		return nil, &codex.APIError{Status: 404, Message: "Not Found"}
	})

	st := r.Load(context.Background())
	assert.Nil(t, st.Data)
	assert.False(t, st.Loading)
	assert.Equal(t, "Not Found", st.Err)
}

func TestResource_LoadOpaqueError(t *testing.T) {
	r := NewResource(func(ctx context.Context) (*string, error) {
		return nil, errors.New("dial tcp: connection refused")
	})

	st := r.Load(context.Background())
	assert.Equal(t, FallbackMessage, st.Err)
}

func TestResource_WrappedBackendErrorKeepsMessage(t *testing.T) {
	inner := &codex.APIError{Status: 403, Message: "Forbidden"}
	r := NewResource(func(ctx context.Context) (*string, error) {
		return nil, errors.Join(errors.New("fetching world 3"), inner)
	})

	st := r.Load(context.Background())
	assert.Equal(t, "Forbidden", st.Err)
}

func TestResource_StaleLoadDiscarded(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	calls := 0
	var mu sync.Mutex

	r := NewResource(func(ctx context.Context) (*string, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			close(firstStarted)
			<-releaseFirst
			v := "stale"
			return &v, nil
		}
		v := "fresh"
		return &v, nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.Load(context.Background())
	}()

	<-firstStarted
	st := r.Load(context.Background())
	require.NotNil(t, st.Data)
	assert.Equal(t, "fresh", *st.Data)

	close(releaseFirst)
	wg.Wait()

	final := r.State()
	require.NotNil(t, final.Data)
	assert.Equal(t, "fresh", *final.Data)
}

func TestAction_StartsIdle(t *testing.T) {
	a := NewAction(func(ctx context.Context, req string) (*string, error) {
		return nil, nil
	})

	st := a.State()
	assert.False(t, st.Loading)
	assert.Nil(t, st.Data)
	assert.Empty(t, st.Err)
}

func TestAction_InvokeRecordsAndReturns(t *testing.T) {
	a := NewAction(func(ctx context.Context, req string) (*string, error) {
		v := "token-" + req
		return &v, nil
	})

	resp, err := a.Invoke(context.Background(), "abc")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "token-abc", *resp)

	st := a.State()
	require.NotNil(t, st.Data)
	assert.Equal(t, "token-abc", *st.Data)
}

func TestAction_InvokeFailureRecordsAndReraises(t *testing.T) {
	boom := &codex.APIError{Status: 400, Message: "Invalid identifier or password"}
	a := NewAction(func(ctx context.Context, req string) (*string, error) {
		return nil, boom
	})

	resp, err := a.Invoke(context.Background(), "abc")
	assert.Nil(t, resp)
	require.Error(t, err)

	var apiErr *codex.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid identifier or password", a.State().Err)
}
