// internal/common/httpx/client_test.go
package httpx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Do_DrainsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	result, err := NewClient().Do(context.Background(), req, time.Second)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, []byte(`{"ok":true}`), result.Body)
}

func TestClient_Do_SetsRequestID(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("X-Request-ID"))
	}))
	defer server.Close()

	client := NewClient()
	for i := 0; i < 2; i++ {
		req, err := http.NewRequest(http.MethodGet, server.URL, nil)
		require.NoError(t, err)
		_, err = client.Do(context.Background(), req, time.Second)
		require.NoError(t, err)
	}

	require.Len(t, seen, 2)
	for _, id := range seen {
		_, err := uuid.Parse(id)
		assert.NoError(t, err, "X-Request-ID must be a valid UUID")
	}
	assert.NotEqual(t, seen[0], seen[1], "each call gets a fresh id")
}

func TestClient_Do_DeadlineFires(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	start := time.Now()
	result, err := NewClient().Do(context.Background(), req, 20*time.Millisecond)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
	assert.Less(t, time.Since(start), 400*time.Millisecond, "call must abort at the deadline, not run to completion")
}

func TestClient_PostJSON(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	result, err := NewClient().PostJSON(context.Background(), server.URL,
		map[string]string{"barcode": "012345"}, time.Second)

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, result.StatusCode)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"barcode":"012345"}`, string(gotBody))
}

func TestClient_Do_NonSuccessStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	result, err := NewClient().Do(context.Background(), req, time.Second)

	require.NoError(t, err, "status handling belongs to the caller")
	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
}
