package mockapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndgrowth/backoffice/internal/gateway"
	"github.com/ndgrowth/backoffice/internal/logging"
	"github.com/ndgrowth/backoffice/internal/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st := storage.NewMemoryStore()
	require.NoError(t, gateway.SeedStore(context.Background(), st))

	srv := httptest.NewServer(NewServer(st, logging.NewNop()).Router())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestList_ReturnsSeededCollection(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/api/products")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var products []gateway.Product
	require.NoError(t, json.Unmarshal(body, &products))
	assert.Len(t, products, 3)
}

func TestList_FiltersByQuery(t *testing.T) {
	srv := newTestServer(t)

	_, body := get(t, srv.URL+"/api/blogs?published=true")

	var blogs []gateway.Blog
	require.NoError(t, json.Unmarshal(body, &blogs))
	require.Len(t, blogs, 2)
	for _, b := range blogs {
		assert.True(t, b.Published)
	}
}

func TestGet_ByID(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/api/services/s-001")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var svc gateway.Service
	require.NoError(t, json.Unmarshal(body, &svc))
	assert.Equal(t, "Strategy Call", svc.Name)

	resp, _ = get(t, srv.URL+"/api/services/s-404")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUnknownCollection_Is404(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := get(t, srv.URL+"/api/unicorns")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreate_PersistsAndAcks(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/bookings", "application/json",
		strings.NewReader(`{"customerName":"Robin Yao","status":"pending"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var ack gateway.WriteAck
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ack))
	assert.True(t, ack.Success)
	require.NotEmpty(t, ack.ID)

	getResp, body := get(t, srv.URL+"/api/bookings/"+ack.ID)
	assert.Equal(t, http.StatusOK, getResp.StatusCode)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(body, &rec))
	assert.Equal(t, "Robin Yao", rec["customerName"])
}

func TestUpdate_MergesFields(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/bookings/bk-001",
		strings.NewReader(`{"status":"cancelled"}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body := get(t, srv.URL+"/api/bookings/bk-001")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(body, &rec))
	assert.Equal(t, "cancelled", rec["status"])
	assert.Equal(t, "Alex Rivera", rec["customerName"], "untouched fields survive")
}

func TestDelete_RemovesRecord(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/orders/o-001", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	getResp, _ := get(t, srv.URL+"/api/orders/o-001")
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
}
