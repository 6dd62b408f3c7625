package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfofCarriesContextValues(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	ctx := WithValue(context.Background(), "chart", "abc")
	ctx = WithValue(ctx, "stars", 4.5)
	Infof(ctx, "rated %d charts", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert := assert.New(t)
	assert.Equal("rated 3 charts", line["msg"])
	assert.Equal("abc", line["chart"])
	assert.Equal(4.5, line["stars"])
}

func TestMiddlewareRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/keys", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "/keys", line["msg"])
	assert.Equal(t, float64(http.StatusTeapot), line["status"])
	assert.Equal(t, "GET", line["method"])
}
