package fetch

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyed_ZeroKeySkipsFetch(t *testing.T) {
	calls := 0
	k := NewKeyed(func(ctx context.Context, id int) (*string, error) {
		calls++
		return nil, nil
	})

	st := k.Load(context.Background(), 0)
	assert.True(t, st.Loading)
	assert.Nil(t, st.Data)
	assert.Empty(t, st.Err)
	assert.Zero(t, calls)
}

func TestKeyed_ZeroStringKeySkipsFetch(t *testing.T) {
	calls := 0
	k := NewKeyed(func(ctx context.Context, token string) (*string, error) {
		calls++
		return nil, nil
	})

	st := k.Load(context.Background(), "")
	assert.True(t, st.Loading)
	assert.Zero(t, calls)
}

func TestKeyed_LoadFetchesForKey(t *testing.T) {
	k := NewKeyed(func(ctx context.Context, id int) (*string, error) {
		v := fmt.Sprintf("world-%d", id)
		return &v, nil
	})

	st := k.Load(context.Background(), 7)
	require.NotNil(t, st.Data)
	assert.Equal(t, "world-7", *st.Data)
	assert.False(t, st.Loading)
}

func TestKeyed_SameKeyDoesNotRefetch(t *testing.T) {
	calls := 0
	k := NewKeyed(func(ctx context.Context, id int) (*string, error) {
		calls++
		v := "cached"
		return &v, nil
	})

	k.Load(context.Background(), 7)
	k.Load(context.Background(), 7)
	assert.Equal(t, 1, calls)
}

func TestKeyed_KeyChangeRefetches(t *testing.T) {
	var keys []int
	k := NewKeyed(func(ctx context.Context, id int) (*string, error) {
		keys = append(keys, id)
		v := fmt.Sprintf("world-%d", id)
		return &v, nil
	})

	k.Load(context.Background(), 7)
	st := k.Load(context.Background(), 9)
	require.NotNil(t, st.Data)
	assert.Equal(t, "world-9", *st.Data)
	assert.Equal(t, []int{7, 9}, keys)
}

func TestKeyed_ReloadForcesRefetch(t *testing.T) {
	calls := 0
	k := NewKeyed(func(ctx context.Context, id int) (*string, error) {
		calls++
		v := "fresh"
		return &v, nil
	})

	k.Load(context.Background(), 7)
	k.Reload(context.Background(), 7)
	assert.Equal(t, 2, calls)
}

func TestKeyed_ResettingToZeroReturnsToLoading(t *testing.T) {
	k := NewKeyed(func(ctx context.Context, id int) (*string, error) {
		v := "here"
		return &v, nil
	})

	k.Load(context.Background(), 7)
	st := k.Load(context.Background(), 0)
	assert.True(t, st.Loading)
	assert.Nil(t, st.Data)
}

func TestKeyed_StaleReloadDiscarded(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	k := NewKeyed(func(ctx context.Context, id int) (*string, error) {
		if id == 1 {
			close(firstStarted)
			<-releaseFirst
		}
		v := fmt.Sprintf("world-%d", id)
		return &v, nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		k.Load(context.Background(), 1)
	}()

	<-firstStarted
	st := k.Load(context.Background(), 2)
	require.NotNil(t, st.Data)
	assert.Equal(t, "world-2", *st.Data)

	close(releaseFirst)
	wg.Wait()

	final := k.State()
	require.NotNil(t, final.Data)
	assert.Equal(t, "world-2", *final.Data)
}
