// SPDX-License-Identifier: MIT
package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/katalvlaran/neuron/activation"
	"github.com/katalvlaran/neuron/canvas"
	"github.com/katalvlaran/neuron/network"
	"github.com/katalvlaran/neuron/server"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newNet builds the deterministic 4-3-2 sigmoid network used by every test.
func newNet(t *testing.T) *network.Network {
	t.Helper()
	n, err := network.New([]int{4, 3, 2}, activation.Sigmoid{})
	require.NoError(t, err)
	return n
}

func newServer(t *testing.T, opts ...server.Option) *server.Server {
	t.Helper()
	s, err := server.New(newNet(t), opts...)
	require.NoError(t, err)
	return s
}

// do sends one request and decodes a JSON object reply.
func do(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestNew_NilNetwork(t *testing.T) {
	_, err := server.New(nil)
	require.ErrorIs(t, err, server.ErrNilNetwork)
}

func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { server.WithDefaultRate(0) })
	require.Panics(t, func() { server.WithCanvas(0, 28, canvas.DefaultOptions()) })
}

func TestHealthz_RequestID(t *testing.T) {
	h := newServer(t).Handler()

	rec, body := do(t, h, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", body["status"])
	_, err := uuid.Parse(rec.Header().Get(server.HeaderRequestID))
	require.NoError(t, err)

	// A valid client id is echoed, garbage is replaced.
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(server.HeaderRequestID, id)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, id, rec.Header().Get(server.HeaderRequestID))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(server.HeaderRequestID, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.NotEqual(t, "not-a-uuid", rec.Header().Get(server.HeaderRequestID))
}

func TestModel(t *testing.T) {
	rec, body := do(t, newServer(t).Handler(), http.MethodGet, "/v1/model", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []any{4.0, 3.0, 2.0}, body["sizes"])
	require.Equal(t, activation.NameSigmoid, body["activation"])
	require.Equal(t, 23.0, body["parameters"])
}

func TestAnalyze_MatchesNetwork(t *testing.T) {
	input := []float64{0.1, 0.9, 0.3, 0}
	wantClass, wantOut, err := newNet(t).Classify(input)
	require.NoError(t, err)

	rec, body := do(t, newServer(t).Handler(), http.MethodPost, "/v1/analyze", map[string]any{"input": input})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(wantClass), body["class"])
	out := body["output"].([]any)
	require.Len(t, out, len(wantOut))
	for i := range wantOut {
		require.InDelta(t, wantOut[i], out[i].(float64), 1e-12)
	}
}

func TestAnalyze_BadRequests(t *testing.T) {
	h := newServer(t).Handler()

	rec, body := do(t, h, http.MethodPost, "/v1/analyze", map[string]any{"input": []float64{1, 2}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, body["error"], "2 != 4")

	rec, body = do(t, h, http.MethodPost, "/v1/analyze", map[string]any{"wrong": 1})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid request", body["error"])
}

func TestTrain_StepsTheNetwork(t *testing.T) {
	h := newServer(t).Handler()
	input := []float64{1, 0, 1, 0}

	_, before := do(t, h, http.MethodPost, "/v1/analyze", map[string]any{"input": input})
	rec, trained := do(t, h, http.MethodPost, "/v1/train", map[string]any{"input": input, "label": 1, "rate": 0.5})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, before["class"], trained["class"])
	require.Equal(t, before["output"], trained["output"])

	_, after := do(t, h, http.MethodPost, "/v1/analyze", map[string]any{"input": input})
	b := before["output"].([]any)
	a := after["output"].([]any)
	require.Greater(t, a[1].(float64), b[1].(float64), "target output must rise")
	require.Less(t, a[0].(float64), b[0].(float64), "non-target output must fall")
}

func TestTrain_BadRequests(t *testing.T) {
	h := newServer(t).Handler()

	rec, _ := do(t, h, http.MethodPost, "/v1/train", map[string]any{"input": []float64{1, 0, 1, 0}})
	require.Equal(t, http.StatusBadRequest, rec.Code, "label is required")

	rec, body := do(t, h, http.MethodPost, "/v1/train", map[string]any{"input": []float64{1, 0, 1, 0}, "label": 2})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, body["error"], "label 2 of 2 outputs")

	rec, _ = do(t, h, http.MethodPost, "/v1/train", map[string]any{"input": []float64{1}, "label": 0})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWeights_NoPath(t *testing.T) {
	h := newServer(t).Handler()
	rec, _ := do(t, h, http.MethodPost, "/v1/weights/save", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	rec, _ = do(t, h, http.MethodPost, "/v1/weights/load", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestWeights_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.txt")
	h := newServer(t, server.WithWeightsPath(path)).Handler()
	input := []float64{0, 1, 0, 1}

	rec, _ := do(t, h, http.MethodPost, "/v1/weights/load", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/v1/weights/save", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.FileExists(t, path)
	_, saved := do(t, h, http.MethodPost, "/v1/analyze", map[string]any{"input": input})

	rec, _ = do(t, h, http.MethodPost, "/v1/train", map[string]any{"input": input, "label": 0, "rate": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	_, moved := do(t, h, http.MethodPost, "/v1/analyze", map[string]any{"input": input})
	require.NotEqual(t, saved["output"], moved["output"])

	rec, body := do(t, h, http.MethodPost, "/v1/weights/load", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []any{4.0, 3.0, 2.0}, body["sizes"])
	_, restored := do(t, h, http.MethodPost, "/v1/analyze", map[string]any{"input": input})
	require.Equal(t, saved["output"], restored["output"])
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	s := newServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()

	time.Sleep(100 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_ListenError(t *testing.T) {
	s := newServer(t)
	err := s.Run(context.Background(), "127.0.0.1:-1")
	require.Error(t, err)
	require.NotErrorIs(t, err, http.ErrServerClosed)
}
