package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/octopus-msa/service02/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireHeader(t *testing.T) {
	tests := []struct {
		name       string
		header     map[string]string
		wantStatus int
		wantCalled bool
	}{
		{name: "present", header: map[string]string{"second-request": "hi"}, wantStatus: http.StatusOK, wantCalled: true},
		{name: "present with other case", header: map[string]string{"SECOND-REQUEST": "hi"}, wantStatus: http.StatusOK, wantCalled: true},
		{name: "present but empty", header: map[string]string{"second-request": ""}, wantStatus: http.StatusOK, wantCalled: true},
		{name: "absent", header: nil, wantStatus: http.StatusBadRequest},
		{name: "other header only", header: map[string]string{"first-request": "hi"}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := httptest.NewRequest(http.MethodGet, "/service02/message", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}

			rr := httptest.NewRecorder()
			requireHeader("second-request")(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestRequireHeader_ErrorBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	rr := httptest.NewRecorder()
	requireHeader("second-request")(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/service02/message", nil))

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, body.Status)
	assert.Equal(t, "Bad Request", body.Error)
	assert.Equal(t, "/service02/message", body.Path)
	assert.Contains(t, body.Message, "second-request")
}
