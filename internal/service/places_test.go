package service

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberlore/codex/internal/codex"
)

func TestPlaceService_ByWorld_CombinesFilters(t *testing.T) {
	var rawQuery string
	client := quietClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"data":[],"meta":{}}`))
	})

	svc := NewPlaceService(client)
	_, err := svc.ByWorld(context.Background(), 7, codex.Query{
		Filters: map[string]string{"Type": "shop"},
	})
	require.NoError(t, err)

	parsed, err := url.ParseQuery(rawQuery)
	require.NoError(t, err)
	// Both constraints survive as independent parameters, never merged.
	assert.Equal(t, "7", parsed.Get("filters[world]"))
	assert.Equal(t, "shop", parsed.Get("filters[Type]"))
	assert.True(t, strings.HasPrefix(rawQuery, "filters[world]=7"),
		"world filter is injected positionally first, got %q", rawQuery)
}

func TestPlaceService_ByWorld_DuplicateWorldFilter(t *testing.T) {
	// A caller-supplied world filter is duplicated, not overridden.
	// Observed behavior preserved pending product confirmation.
	var rawQuery string
	client := quietClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"data":[],"meta":{}}`))
	})

	svc := NewPlaceService(client)
	_, err := svc.ByWorld(context.Background(), 7, codex.Query{
		Filters: map[string]string{"world": "9"},
	})
	require.NoError(t, err)

	parsed, err := url.ParseQuery(rawQuery)
	require.NoError(t, err)
	require.Len(t, parsed["filters[world]"], 2)
	assert.Equal(t, []string{"7", "9"}, parsed["filters[world]"])
}

func TestPlaceService_ByWorld_RejectsNonPositiveWorldID(t *testing.T) {
	called := false
	client := quietClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	svc := NewPlaceService(client)
	_, err := svc.ByWorld(context.Background(), 0, codex.Query{})
	require.ErrorIs(t, err, ErrInvalidID)
	assert.False(t, called)
}

func TestPlaceService_All_DecodesCategories(t *testing.T) {
	client := quietClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[
			{"id":1,"attributes":{"Name":"Bazaar","Type":"shop"}},
			{"id":2,"attributes":{"Name":"Oracle","Type":"mystic"}}
		],"meta":{"pagination":{"page":1,"pageSize":25,"pageCount":1,"total":2}}}`))
	})

	svc := NewPlaceService(client)
	resp, err := svc.All(context.Background(), codex.Query{})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)

	// An unrecognized category decodes fine; display handles the fallback.
	assert.True(t, resp.Data[0].Attributes.Type.IsKnown())
	assert.False(t, resp.Data[1].Attributes.Type.IsKnown())
	assert.Equal(t, "mystic", resp.Data[1].Attributes.Type.Label())

	require.NotNil(t, resp.Meta.Pagination)
	assert.Equal(t, 2, resp.Meta.Pagination.Total)
}
