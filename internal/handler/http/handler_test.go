package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/octopus-msa/service02/internal/config"
	"github.com/octopus-msa/service02/internal/logger"
	"github.com/octopus-msa/service02/internal/mock"
	"github.com/octopus-msa/service02/internal/service"
	"github.com/octopus-msa/service02/internal/utils"
	"github.com/octopus-msa/service02/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.Server{RequestTimeout: time.Second}, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, time.Second, h.requestTimeout)
}

// ─────────────────────────────────────────────
// Init: routes against mocked services
// ─────────────────────────────────────────────

type mockedServices struct {
	greeting    *mock.MockGreetingService
	diagnostics *mock.MockDiagnosticsService
}

func newMockedHandler(t *testing.T) (*Handler, mockedServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := mockedServices{
		greeting:    mock.NewMockGreetingService(ctrl),
		diagnostics: mock.NewMockDiagnosticsService(ctrl),
	}

	h := NewHandler(&service.Services{
		GreetingService:    m.greeting,
		DiagnosticsService: m.diagnostics,
	}, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())

	return h, m
}

func TestInit_Welcome(t *testing.T) {
	h, m := newMockedHandler(t)
	m.greeting.EXPECT().Welcome(gomock.Any()).Return("hello")

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/service02/welcome", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "hello", rr.Body.String())
	assert.Equal(t, utils.ContentTypeTextPlain, rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_Message_PassesHeader(t *testing.T) {
	h, m := newMockedHandler(t)
	m.greeting.EXPECT().Message(gomock.Any(), "X").Return("greeting")

	req := httptest.NewRequest(http.MethodGet, "/service02/message", nil)
	req.Header.Set("second-request", "X")

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "greeting", rr.Body.String())
}

func TestInit_Message_MissingHeader_ServiceNotCalled(t *testing.T) {
	h, m := newMockedHandler(t)
	m.greeting.EXPECT().Message(gomock.Any(), gomock.Any()).Times(0)

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/service02/message", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestInit_Check_BuildsInboundRequest(t *testing.T) {
	h, m := newMockedHandler(t)

	m.diagnostics.EXPECT().
		Check(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req models.InboundRequest) string {
			assert.Equal(t, "localhost:8080", req.Host)
			assert.Equal(t, 8080, req.ServerPort)
			assert.Equal(t, []string{"a", "b"}, req.Header.Values("X-Test"))
			return "Service #02 입니다. PORT 8080"
		})

	req := httptest.NewRequest(http.MethodGet, "/service02/check", nil)
	req.Host = "localhost:8080"
	req.Header.Add("X-Test", "a")
	req.Header.Add("X-Test", "b")

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Service #02 입니다. PORT 8080", rr.Body.String())
}

func TestInit_Head_ServedByGet(t *testing.T) {
	h, m := newMockedHandler(t)
	m.greeting.EXPECT().Welcome(gomock.Any()).Return("hello")

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodHead, "/service02/welcome", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestInit_UnknownRoutesAndMethods(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/service02"},
		{http.MethodGet, "/service02/unknown"},
		{http.MethodGet, "/welcome"},
		{http.MethodPost, "/service02/welcome"},
		{http.MethodDelete, "/service02/check"},
		{http.MethodPut, "/service02/message"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			h, _ := newMockedHandler(t)

			rr := httptest.NewRecorder()
			h.Init().ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_RecoversFromPanic(t *testing.T) {
	h, m := newMockedHandler(t)
	m.greeting.EXPECT().Welcome(gomock.Any()).DoAndReturn(func(any) string {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/service02/welcome", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
