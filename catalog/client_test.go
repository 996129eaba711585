package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xeptore/jamlist/catalog"
	"github.com/xeptore/jamlist/errutil"
)

const twoTracksResponse = `{
	"headers": {"status": "success", "code": 0, "error_message": "", "results_count": 2},
	"results": [
		{"id": "1532771", "name": "Rainy Window", "artist_name": "Lo Fi Club", "duration": 120, "image": "https://img.example/1.jpg", "audio": "https://audio.example/1.mp3"},
		{"id": 1532772, "name": "Night Bus", "artist_name": "Tape Hiss", "duration": "180", "image": "https://img.example/2.jpg", "audio": "https://audio.example/2.mp3"}
	]
}`

func newUpstream(t *testing.T, status int, body string) (*httptest.Server, chan *http.Request) {
	t.Helper()

	requests := make(chan *http.Request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests <- r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, requests
}

func newClient(srv *httptest.Server) *catalog.Client {
	return catalog.NewClient(
		srv.URL+"/v3.0/tracks/",
		catalog.WithHTTPClient(srv.Client()),
		catalog.WithCredential(func() string { return "test-client-id" }),
	)
}

func TestTracks(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		srv, requests := newUpstream(t, http.StatusOK, twoTracksResponse)
		tracks, err := newClient(srv).Tracks(t.Context(), "jazz")
		require.NoError(t, err)
		require.Len(t, tracks, 2)

		assert.Equal(t, catalog.Track{
			ID:         1532771,
			Name:       "Rainy Window",
			ArtistName: "Lo Fi Club",
			Duration:   120,
			Image:      "https://img.example/1.jpg",
			Audio:      "https://audio.example/1.mp3",
		}, tracks[0])
		assert.Equal(t, catalog.Int(1532772), tracks[1].ID)
		assert.Equal(t, catalog.Int(180), tracks[1].Duration)

		req := <-requests
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/v3.0/tracks/", req.URL.Path)
		assert.Equal(t, url.Values{
			"client_id":   {"test-client-id"},
			"format":      {"json"},
			"limit":       {"100"},
			"tags":        {"jazz"},
			"audioformat": {"mp31"},
		}, req.URL.Query())
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	})

	t.Run("custom_limit_and_format", func(t *testing.T) {
		t.Parallel()

		srv, requests := newUpstream(t, http.StatusOK, `{"results":[]}`)
		client := catalog.NewClient(
			srv.URL,
			catalog.WithHTTPClient(srv.Client()),
			catalog.WithCredential(func() string { return "" }),
			catalog.WithLimit(10),
			catalog.WithAudioFormat("ogg"),
		)
		_, err := client.Tracks(t.Context(), "lofi")
		require.NoError(t, err)

		query := (<-requests).URL.Query()
		assert.Equal(t, "10", query.Get("limit"))
		assert.Equal(t, "ogg", query.Get("audioformat"))
		assert.True(t, query.Has("client_id"))
		assert.Empty(t, query.Get("client_id"))
	})

	t.Run("missing_results", func(t *testing.T) {
		t.Parallel()

		srv, _ := newUpstream(t, http.StatusOK, `{"headers":{"status":"success"}}`)
		tracks, err := newClient(srv).Tracks(t.Context(), "lofi")
		require.NoError(t, err)
		assert.NotNil(t, tracks)
		assert.Empty(t, tracks)
	})

	t.Run("null_results", func(t *testing.T) {
		t.Parallel()

		srv, _ := newUpstream(t, http.StatusOK, `{"results":null}`)
		tracks, err := newClient(srv).Tracks(t.Context(), "lofi")
		require.NoError(t, err)
		assert.Empty(t, tracks)
	})

	t.Run("non_2xx_status", func(t *testing.T) {
		t.Parallel()

		for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusUnauthorized} {
			srv, _ := newUpstream(t, status, `{"error":"nope"}`)
			_, err := newClient(srv).Tracks(t.Context(), "lofi")
			require.Error(t, err)
			assert.True(t, errutil.IsFlaw(err))
			assert.Contains(t, errutil.Message(err), "unexpected status code")
		}
	})

	t.Run("failed_status_header_with_results", func(t *testing.T) {
		t.Parallel()

		srv, _ := newUpstream(t, http.StatusOK, `{"headers":{"status":"failed","code":5,"error_message":"x"},"results":[{"id":1,"name":"A","artist_name":"X","duration":120,"image":"i","audio":"a"}]}`)
		tracks, err := newClient(srv).Tracks(t.Context(), "lofi")
		require.NoError(t, err)
		require.Len(t, tracks, 1)
		assert.Equal(t, catalog.Int(1), tracks[0].ID)
		assert.Equal(t, catalog.Int(120), tracks[0].Duration)
	})

	t.Run("malformed_json", func(t *testing.T) {
		t.Parallel()

		srv, _ := newUpstream(t, http.StatusOK, `{"results": [`)
		_, err := newClient(srv).Tracks(t.Context(), "lofi")
		require.Error(t, err)
		assert.True(t, errutil.IsFlaw(err))
	})

	t.Run("malformed_track", func(t *testing.T) {
		t.Parallel()

		srv, _ := newUpstream(t, http.StatusOK, `{"results":[{"id":"abc","name":"x"}]}`)
		_, err := newClient(srv).Tracks(t.Context(), "lofi")
		require.Error(t, err)
	})

	t.Run("results_not_array", func(t *testing.T) {
		t.Parallel()

		srv, _ := newUpstream(t, http.StatusOK, `{"results":{"id":1}}`)
		_, err := newClient(srv).Tracks(t.Context(), "lofi")
		require.Error(t, err)
	})

	t.Run("empty_body", func(t *testing.T) {
		t.Parallel()

		srv, _ := newUpstream(t, http.StatusOK, "")
		_, err := newClient(srv).Tracks(t.Context(), "lofi")
		require.Error(t, err)
	})

	t.Run("connection_refused", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		baseURL := srv.URL
		srv.Close()

		client := catalog.NewClient(baseURL, catalog.WithCredential(func() string { return "id" }))
		_, err := client.Tracks(t.Context(), "lofi")
		require.Error(t, err)
		assert.NotEmpty(t, errutil.Message(err))
	})

	t.Run("canceled_context", func(t *testing.T) {
		t.Parallel()

		srv, _ := newUpstream(t, http.StatusOK, `{"results":[]}`)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := newClient(srv).Tracks(ctx, "lofi")
		require.ErrorIs(t, err, context.Canceled)
	})
}

//nolint:paralleltest
func TestTracksCredentialFromEnvironment(t *testing.T) {
	t.Setenv("JAMENDO_CLIENT_ID", "env-client-id")

	srv, requests := newUpstream(t, http.StatusOK, `{"results":[]}`)
	client := catalog.NewClient(srv.URL, catalog.WithHTTPClient(srv.Client()))
	_, err := client.Tracks(t.Context(), "lofi")
	require.NoError(t, err)
	assert.Equal(t, "env-client-id", (<-requests).URL.Query().Get("client_id"))
}
