package keyspace

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/uol/gobol/rip"

	"github.com/uol/tiryns/lib/persistence"
)

var testJSON = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestRouter(manager *Keyspace) *httprouter.Router {

	router := rip.NewCustomRouter()
	router.HEAD("/keyspaces/:keyspace", manager.Check)
	router.GET("/keyspaces", manager.GetAll)
	router.PUT("/keyspaces/:keyspace", manager.Apply)
	router.DELETE("/keyspaces/:keyspace", manager.Remove)
	router.POST("/reconcile", manager.ReconcileBulk)

	return router
}

func doRequest(router *httprouter.Router, method, target string, body []byte) *httptest.ResponseRecorder {

	var request *http.Request
	if body == nil {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, bytes.NewReader(body))
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestRESTCheck(t *testing.T) {

	backend := newFakeBackend(persistence.Keyspace{Name: "foo"})
	router := newTestRouter(newTestManager(backend, false))

	recorder := doRequest(router, http.MethodHead, "/keyspaces/foo", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(router, http.MethodHead, "/keyspaces/bar", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRESTApply(t *testing.T) {

	backend := newFakeBackend()
	router := newTestRouter(newTestManager(backend, false))

	body := []byte(`{"topology": "SimpleStrategy", "replicationFactor": 1}`)

	recorder := doRequest(router, http.MethodPut, "/keyspaces/foo", body)
	if !assert.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String()) {
		return
	}

	var result Result
	if !assert.NoError(t, testJSON.Unmarshal(recorder.Body.Bytes(), &result)) {
		return
	}
	assert.True(t, result.Changed)
	assert.Equal(t, "foo", result.Name)
	assert.Len(t, backend.created, 1)

	// reapplying the same desired state changes nothing
	recorder = doRequest(router, http.MethodPut, "/keyspaces/foo", body)
	if !assert.Equal(t, http.StatusOK, recorder.Code) {
		return
	}
	if !assert.NoError(t, testJSON.Unmarshal(recorder.Body.Bytes(), &result)) {
		return
	}
	assert.False(t, result.Changed)
	assert.Len(t, backend.created, 1)
}

func TestRESTApplyRejections(t *testing.T) {

	backend := newFakeBackend()
	router := newTestRouter(newTestManager(backend, false))

	// malformed name taken from the url path
	recorder := doRequest(router, http.MethodPut, "/keyspaces/foo;bar", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// invalid desired state in the body
	recorder = doRequest(router, http.MethodPut, "/keyspaces/foo", []byte(`{"topology": "RackAwareStrategy"}`))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// body that is not json at all
	recorder = doRequest(router, http.MethodPut, "/keyspaces/foo", []byte(`### not a json document ###`))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	assert.Zero(t, backend.mutations())
}

func TestRESTApplyDryRunQueryParameter(t *testing.T) {

	backend := newFakeBackend()
	router := newTestRouter(newTestManager(backend, false))

	body := []byte(`{"topology": "SimpleStrategy", "replicationFactor": 1}`)

	recorder := doRequest(router, http.MethodPut, "/keyspaces/foo?dryRun=true", body)
	if !assert.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String()) {
		return
	}

	var result Result
	if !assert.NoError(t, testJSON.Unmarshal(recorder.Body.Bytes(), &result)) {
		return
	}
	assert.True(t, result.Changed)
	assert.Zero(t, backend.mutations())
}

func TestRESTApplyManagerDryRunCanNotBeDisabled(t *testing.T) {

	backend := newFakeBackend(persistence.Keyspace{Name: "foo"})
	router := newTestRouter(newTestManager(backend, true))

	recorder := doRequest(router, http.MethodDelete, "/keyspaces/foo?dryRun=false", nil)
	if !assert.Equal(t, http.StatusOK, recorder.Code) {
		return
	}

	var result Result
	if !assert.NoError(t, testJSON.Unmarshal(recorder.Body.Bytes(), &result)) {
		return
	}
	assert.True(t, result.Changed)
	assert.Zero(t, backend.mutations())
}

func TestRESTRemove(t *testing.T) {

	backend := newFakeBackend(persistence.Keyspace{Name: "foo"})
	router := newTestRouter(newTestManager(backend, false))

	recorder := doRequest(router, http.MethodDelete, "/keyspaces/foo", nil)
	if !assert.Equal(t, http.StatusOK, recorder.Code) {
		return
	}

	var result Result
	if !assert.NoError(t, testJSON.Unmarshal(recorder.Body.Bytes(), &result)) {
		return
	}
	assert.True(t, result.Changed)
	assert.Equal(t, []string{"foo"}, backend.dropped)

	// already absent
	recorder = doRequest(router, http.MethodDelete, "/keyspaces/foo", nil)
	if !assert.Equal(t, http.StatusOK, recorder.Code) {
		return
	}
	if !assert.NoError(t, testJSON.Unmarshal(recorder.Body.Bytes(), &result)) {
		return
	}
	assert.False(t, result.Changed)
	assert.Len(t, backend.dropped, 1)
}

func TestRESTReconcileBulk(t *testing.T) {

	backend := newFakeBackend(persistence.Keyspace{Name: "old"})
	router := newTestRouter(newTestManager(backend, false))

	recorder := doRequest(router, http.MethodPost, "/reconcile", []byte(`[
		{"name": "foo", "topology": "SimpleStrategy", "replicationFactor": 1},
		{"name": "old", "state": "absent"}
	]`))
	if !assert.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String()) {
		return
	}

	var response struct {
		TotalRecords int      `json:"totalRecords"`
		Payload      []Result `json:"payload"`
	}
	if !assert.NoError(t, testJSON.Unmarshal(recorder.Body.Bytes(), &response)) {
		return
	}

	assert.Equal(t, 2, response.TotalRecords)
	if assert.Len(t, response.Payload, 2) {
		assert.True(t, response.Payload[0].Changed)
		assert.True(t, response.Payload[1].Changed)
	}

	assert.Len(t, backend.created, 1)
	assert.Equal(t, []string{"old"}, backend.dropped)
}

func TestRESTGetAll(t *testing.T) {

	backend := newFakeBackend()
	router := newTestRouter(newTestManager(backend, false))

	recorder := doRequest(router, http.MethodGet, "/keyspaces", nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	backend.keyspaces["foo"] = persistence.Keyspace{Name: "foo", Topology: persistence.SimpleStrategy, ReplicationFactor: 1}

	recorder = doRequest(router, http.MethodGet, "/keyspaces", nil)
	if !assert.Equal(t, http.StatusOK, recorder.Code) {
		return
	}

	var response struct {
		TotalRecords int                   `json:"totalRecords"`
		Payload      []persistence.Keyspace `json:"payload"`
	}
	if !assert.NoError(t, testJSON.Unmarshal(recorder.Body.Bytes(), &response)) {
		return
	}

	assert.Equal(t, 1, response.TotalRecords)
	if assert.Len(t, response.Payload, 1) {
		assert.Equal(t, "foo", response.Payload[0].Name)
	}
}
