package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberlore/codex/internal/codex"
)

func newDataService(t *testing.T, handler http.HandlerFunc) *DataService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := codex.New(srv.URL, codex.WithLogger(log))
	return NewDataService(
		NewWorldService(client),
		NewPlaceService(client),
		NewMonsterService(client),
		log,
	)
}

func TestDataService_HomeData_AllSucceed(t *testing.T) {
	svc := newDataService(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/monsters"):
			_, _ = w.Write([]byte(`{"data":[{"id":1,"attributes":{"Name":"Drake"}}],"meta":{}}`))
		case strings.HasSuffix(r.URL.Path, "/worlds"):
			_, _ = w.Write([]byte(`{"data":[{"id":2,"attributes":{"Name":"Aether"}}],"meta":{}}`))
		case strings.HasSuffix(r.URL.Path, "/places"):
			_, _ = w.Write([]byte(`{"data":[{"id":3,"attributes":{"Name":"Bazaar","Type":"shop"}}],"meta":{}}`))
		}
	})

	bundle := svc.HomeData(context.Background())

	assert.Len(t, bundle.Monsters, 1)
	assert.Len(t, bundle.Worlds, 1)
	assert.Len(t, bundle.Places, 1)
}

func TestDataService_HomeData_PartialFailure(t *testing.T) {
	// Worlds fail; monsters and places succeed. The bundle must still
	// resolve with an empty worlds collection.
	svc := newDataService(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/worlds"):
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"status":500,"message":"boom"}}`))
		case strings.HasSuffix(r.URL.Path, "/monsters"):
			_, _ = w.Write([]byte(`{"data":[{"id":1,"attributes":{"Name":"Drake"}}],"meta":{}}`))
		case strings.HasSuffix(r.URL.Path, "/places"):
			_, _ = w.Write([]byte(`{"data":[{"id":3,"attributes":{"Name":"Bazaar","Type":"shop"}}],"meta":{}}`))
		}
	})

	bundle := svc.HomeData(context.Background())

	assert.NotNil(t, bundle.Worlds)
	assert.Empty(t, bundle.Worlds)
	assert.Len(t, bundle.Monsters, 1)
	assert.Len(t, bundle.Places, 1)
}

func TestDataService_HomeData_TotalFailure(t *testing.T) {
	svc := newDataService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	bundle := svc.HomeData(context.Background())

	// Never a rejection: three empty, non-nil collections.
	require.NotNil(t, bundle.Monsters)
	require.NotNil(t, bundle.Worlds)
	require.NotNil(t, bundle.Places)
	assert.Empty(t, bundle.Monsters)
	assert.Empty(t, bundle.Worlds)
	assert.Empty(t, bundle.Places)
}

func TestDataService_ExploreData_SortsByName(t *testing.T) {
	var rawQuery string
	svc := newDataService(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"data":[{"id":2,"attributes":{"Name":"Aether"}}],"meta":{}}`))
	})

	bundle := svc.ExploreData(context.Background())
	require.Len(t, bundle.Worlds, 1)

	parsed, err := url.ParseQuery(rawQuery)
	require.NoError(t, err)
	assert.Equal(t, "*", parsed.Get("populate"))
	assert.Equal(t, "Name:asc", parsed.Get("sort"))
}

func TestDataService_ExploreData_FailureYieldsEmpty(t *testing.T) {
	svc := newDataService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	bundle := svc.ExploreData(context.Background())
	require.NotNil(t, bundle.Worlds)
	assert.Empty(t, bundle.Worlds)
}
