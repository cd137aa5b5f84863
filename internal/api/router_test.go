package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-management/internal/apperror"
	"restaurant-management/internal/logger"
	"restaurant-management/internal/models"
	"restaurant-management/internal/services/commands"
)

type stubDispatcher struct {
	lastName    string
	lastPayload string
	lastReqID   string
	result      commands.Result
}

func (s *stubDispatcher) Dispatch(ctx context.Context, name string, payload json.RawMessage) commands.Result {
	s.lastName = name
	s.lastPayload = string(payload)
	s.lastReqID = logger.RequestIDFrom(ctx)
	res := s.result
	res.Operation = name
	return res
}

func (s *stubDispatcher) Operations() []string {
	return []string{"customer.create", "customer.list"}
}

type stubDashboard struct {
	snapshot *models.DashboardSummary
	err      error
}

func (s *stubDashboard) Snapshot() (models.DashboardSummary, bool) {
	if s.snapshot == nil {
		return models.DashboardSummary{}, false
	}
	return *s.snapshot, true
}

func (s *stubDashboard) Current(context.Context) (models.DashboardSummary, error) {
	if s.err != nil {
		return models.DashboardSummary{}, s.err
	}
	return models.DashboardSummary{Orders: 7}, nil
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(d *stubDispatcher, dash *stubDashboard, ping stubPinger) *gin.Engine {
	return NewRouter(NewHandler(d, dash, ping, logger.Discard()), 0)
}

func TestRunCommandStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		result commands.Result
		status int
	}{
		{name: "ok", result: commands.Result{OK: true}, status: http.StatusOK},
		{name: "validation", result: commands.Result{Kind: apperror.KindValidation, Message: "First name is required."}, status: http.StatusBadRequest},
		{name: "not found", result: commands.Result{Kind: apperror.KindNotFound}, status: http.StatusNotFound},
		{name: "conflict", result: commands.Result{Kind: apperror.KindConflict}, status: http.StatusConflict},
		{name: "backend", result: commands.Result{Kind: apperror.KindBackend}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &stubDispatcher{result: tt.result}
			r := newTestRouter(d, &stubDashboard{}, stubPinger{})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/commands/customer.create", strings.NewReader(`{"first_name":"Ada"}`))
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "customer.create", d.lastName)
			assert.JSONEq(t, `{"first_name":"Ada"}`, d.lastPayload)

			var res commands.Result
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, tt.result.OK, res.OK)
			assert.Equal(t, tt.result.Kind, res.Kind)
			assert.Equal(t, tt.result.Message, res.Message)
		})
	}
}

func TestRunCommandRejectsOversizedPayload(t *testing.T) {
	d := &stubDispatcher{result: commands.Result{OK: true}}
	r := newTestRouter(d, &stubDashboard{}, stubPinger{})

	body := `{"first_name":"` + strings.Repeat("a", maxPayloadBytes) + `"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/commands/customer.create", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, d.lastName, "dispatcher must not run")

	var res commands.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, apperror.KindValidation, res.Kind)
	assert.Equal(t, "Invalid request payload.", res.Message)
}

func TestRequestIDPropagates(t *testing.T) {
	d := &stubDispatcher{result: commands.Result{OK: true}}
	r := newTestRouter(d, &stubDashboard{}, stubPinger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/commands/customer.list", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", d.lastReqID)
	assert.Equal(t, "req-123", w.Header().Get(requestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/commands/customer.list", nil))
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestListCommands(t *testing.T) {
	r := newTestRouter(&stubDispatcher{}, &stubDashboard{}, stubPinger{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/commands", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"operations":["customer.create","customer.list"]}`, w.Body.String())
}

func TestDashboard(t *testing.T) {
	snapshot := &models.DashboardSummary{Customers: 3, TotalRevenue: decimal.NewFromInt(600)}

	tests := []struct {
		name   string
		dash   *stubDashboard
		status int
		orders int
	}{
		{name: "snapshot", dash: &stubDashboard{snapshot: snapshot}, status: http.StatusOK},
		{name: "no snapshot yet", dash: &stubDashboard{}, status: http.StatusOK, orders: 7},
		{name: "no snapshot and failing", dash: &stubDashboard{err: errors.New("down")}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&stubDispatcher{}, tt.dash, stubPinger{})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
			assert.Equal(t, tt.status, w.Code)

			if tt.status == http.StatusOK {
				var summary models.DashboardSummary
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
				assert.Equal(t, tt.orders, summary.Orders)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&stubDispatcher{}, &stubDashboard{}, stubPinger{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	r = newTestRouter(&stubDispatcher{}, &stubDashboard{}, stubPinger{err: errors.New("refused")})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
