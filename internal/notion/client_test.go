package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna-games/fortuna/internal/domain"
)

func testDatabases() map[domain.Game]string {
	return map[domain.Game]string{
		domain.GameSpin:  "spin-db",
		domain.GameWheel: "wheel-db",
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, "secret_test", testDatabases())
	require.NoError(t, err)
	return client, srv
}

func TestNewClient_UnconfiguredGame(t *testing.T) {
	_, err := NewClient("http://localhost", "tok", map[domain.Game]string{
		domain.GameSpin: "spin-db",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnconfiguredGame)
}

func TestCreate(t *testing.T) {
	var gotPath, gotAuth, gotVersion string
	var gotBody createPageRequest

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Notion-Version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	})

	rec := domain.PrizeRecord{
		Key:       "u1",
		Timestamp: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
		Number:    555,
		IsWin:     true,
	}
	require.NoError(t, client.Create(context.Background(), rec, domain.GameSpin))

	assert.Equal(t, "/v1/pages", gotPath)
	assert.Equal(t, "Bearer secret_test", gotAuth)
	assert.Equal(t, APIVersion, gotVersion)
	assert.Equal(t, "spin-db", gotBody.Parent.DatabaseID)
	require.Len(t, gotBody.Properties.Key.Title, 1)
	assert.Equal(t, "u1", gotBody.Properties.Key.Title[0].Text.Content)
	assert.Equal(t, "2025-06-01T12:30:00Z", gotBody.Properties.Datetime.Date.Start)
	assert.Equal(t, 555, gotBody.Properties.Number.Number)
	assert.True(t, gotBody.Properties.IsWin.Checkbox)
	assert.False(t, gotBody.Properties.Checked.Checkbox)
}

func TestCreate_StoreRejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"validation_error"}`, http.StatusBadRequest)
	})

	err := client.Create(context.Background(), domain.PrizeRecord{Key: "u1"}, domain.GameSpin)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreRejected)
	assert.Contains(t, err.Error(), "validation_error")
}

func TestCreate_StoreUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client, err := NewClient(srv.URL, "tok", testDatabases())
	require.NoError(t, err)

	err = client.Create(context.Background(), domain.PrizeRecord{Key: "u1"}, domain.GameSpin)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func queryResultJSON(id, key, start string, number int, isWin bool) string {
	return fmt.Sprintf(`{
		"id": %q,
		"properties": {
			"key": {"title": [{"text": {"content": %q}}]},
			"datetime": {"date": {"start": %q}},
			"number": {"number": %d},
			"is_win": {"checkbox": %t},
			"checked": {"checkbox": false}
		}
	}`, id, key, start, number, isWin)
}

func TestList(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/databases/wheel-db/query", r.URL.Path)

		var req queryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, QueryPageSize, req.PageSize)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"results": [%s, %s], "has_more": false}`,
			queryResultJSON("p1", "u1", "2025-06-01T10:00:00Z", 2, true),
			queryResultJSON("p2", "u2", "2025-06-01T11:00:00Z", 6, true))
	})

	records, err := client.List(context.Background(), domain.GameWheel)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "p1", records[0].ID)
	assert.Equal(t, "u1", records[0].Key)
	assert.Equal(t, 2, records[0].Number)
	assert.True(t, records[0].IsWin)
	assert.Equal(t, domain.GameWheel, records[0].Game)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), records[0].Timestamp)
}

func TestList_Pagination(t *testing.T) {
	var cursors []string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req queryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		cursors = append(cursors, req.StartCursor)

		w.Header().Set("Content-Type", "application/json")
		if req.StartCursor == "" {
			fmt.Fprintf(w, `{"results": [%s], "has_more": true, "next_cursor": "cur-2"}`,
				queryResultJSON("p1", "u1", "2025-06-01T10:00:00Z", 555, true))
			return
		}
		fmt.Fprintf(w, `{"results": [%s], "has_more": false}`,
			queryResultJSON("p2", "u1", "2025-06-02T10:00:00Z", 555, true))
	})

	records, err := client.List(context.Background(), domain.GameSpin)
	require.NoError(t, err)

	assert.Equal(t, []string{"", "cur-2"}, cursors)
	require.Len(t, records, 2)
	assert.Equal(t, "p2", records[1].ID)
}

func TestList_BadResponseShape(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json at all`)
	})

	_, err := client.List(context.Background(), domain.GameSpin)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadStoreResponse)
}

func TestList_ToleratesSparseProperties(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": [{"id": "p1", "properties": {}}], "has_more": false}`)
	})

	records, err := client.List(context.Background(), domain.GameSpin)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "p1", records[0].ID)
	assert.Empty(t, records[0].Key)
	assert.True(t, records[0].Timestamp.IsZero())
}

func TestUpdate(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody updatePageRequest

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
	})

	rec := domain.PrizeRecord{Key: "u1", Timestamp: time.Now().UTC(), Number: 555, IsWin: true, Checked: true}
	require.NoError(t, client.Update(context.Background(), "page-9", rec, domain.GameSpin))

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/v1/pages/page-9", gotPath)
	assert.True(t, gotBody.Properties.Checked.Checkbox)
}

func TestUpdate_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Could not find page"}`, http.StatusNotFound)
	})

	err := client.Update(context.Background(), "missing", domain.PrizeRecord{Key: "u1"}, domain.GameSpin)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestDelete_ArchivesPage(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody archivePageRequest

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
	})

	require.NoError(t, client.Delete(context.Background(), "page-3", domain.GameWheel))

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/v1/pages/page-3", gotPath)
	assert.True(t, gotBody.Archived)
}

func TestPing(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/databases/spin-db/query", r.URL.Path)
		fmt.Fprint(w, `{"results": [], "has_more": false}`)
	})

	assert.NoError(t, client.Ping(context.Background()))
}

func TestCreateDatabase(t *testing.T) {
	var gotPath string
	var gotBody createDatabaseRequest

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, `{"id": "new-db-id"}`)
	})

	id, err := client.CreateDatabase(context.Background(), "parent-page", "Spin Records")

	require.NoError(t, err)
	assert.Equal(t, "new-db-id", id)
	assert.Equal(t, "/v1/databases", gotPath)
	assert.Equal(t, "page_id", gotBody.Parent.Type)
	assert.Equal(t, "parent-page", gotBody.Parent.PageID)
	require.Len(t, gotBody.Title, 1)
	assert.Equal(t, "Spin Records", gotBody.Title[0].Text.Content)

	// The created database carries the full record schema.
	for _, prop := range []string{PropKey, PropDatetime, PropNumber, PropIsWin, PropChecked} {
		assert.Contains(t, gotBody.Properties, prop)
	}
}

func TestBootstrapClient_CannotServeGames(t *testing.T) {
	client := NewBootstrapClient("http://localhost", "tok")

	_, err := client.List(context.Background(), domain.GameSpin)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnconfiguredGame)
}
