package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ameyali/crib-monitoring/internal/pkg/application/alerts"
	"github.com/ameyali/crib-monitoring/internal/pkg/application/query"
	"github.com/ameyali/crib-monitoring/internal/pkg/presentation/api/auth"
	"github.com/ameyali/crib-monitoring/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authenticatedRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(auth.WithCallerID(req.Context(), "nurse-1"))
}

func TestGetSensorDataPassesFilterAndLimit(t *testing.T) {
	is := is.New(t)

	querySvc := &query.QueryServiceMock{
		ListReadingsFunc: func(ctx context.Context, callerID string, cribFilter []string, limit int) (types.Collection[types.SensorReading], error) {
			return types.Collection[types.SensorReading]{Data: []types.SensorReading{
				{CribID: "CUNA001", Spo2Percent: 97, HeartRateBpm: 120, Timestamp: time.Now().UTC()},
			}}, nil
		},
	}

	req := authenticatedRequest(http.MethodGet, "/sensor-data?cunas=CUNA001,CUNA002&limit=5", nil)
	res := httptest.NewRecorder()

	getSensorDataHandler(testLogger(), querySvc).ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusOK)

	call := querySvc.ListReadingsCalls()[0]
	is.Equal(call.CallerID, "nurse-1")
	is.Equal(call.CribFilter, []string{"CUNA001", "CUNA002"})
	is.Equal(call.Limit, 5)

	response := struct {
		Success bool                  `json:"success"`
		Data    []types.SensorReading `json:"data"`
	}{}
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.True(response.Success)
	is.Equal(len(response.Data), 1)
	is.Equal(response.Data[0].CribID, "CUNA001")
}

func TestGetSensorDataWithoutGrantsIsUnauthorized(t *testing.T) {
	is := is.New(t)

	querySvc := &query.QueryServiceMock{
		ListReadingsFunc: func(ctx context.Context, callerID string, cribFilter []string, limit int) (types.Collection[types.SensorReading], error) {
			return types.Collection[types.SensorReading]{}, query.ErrUnauthorized
		},
	}

	req := authenticatedRequest(http.MethodGet, "/sensor-data", nil)
	res := httptest.NewRecorder()

	getSensorDataHandler(testLogger(), querySvc).ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusUnauthorized)
}

func TestGetAlertsRejectsUnknownStatus(t *testing.T) {
	is := is.New(t)

	querySvc := &query.QueryServiceMock{}

	req := authenticatedRequest(http.MethodGet, "/alertas?estado=archivada", nil)
	res := httptest.NewRecorder()

	getAlertsHandler(testLogger(), querySvc).ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusBadRequest)
	is.Equal(len(querySvc.ListAlertsCalls()), 0)
}

func TestGetAlertsPassesStatusFilter(t *testing.T) {
	is := is.New(t)

	querySvc := &query.QueryServiceMock{
		ListAlertsFunc: func(ctx context.Context, callerID string, cribFilter []string, limit int, status types.AlertStatus) (types.Collection[types.Alert], error) {
			return types.Collection[types.Alert]{Data: []types.Alert{}}, nil
		},
	}

	req := authenticatedRequest(http.MethodGet, "/alertas?estado=pendiente", nil)
	res := httptest.NewRecorder()

	getAlertsHandler(testLogger(), querySvc).ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusOK)
	is.Equal(querySvc.ListAlertsCalls()[0].Status, types.AlertPending)
}

func TestPatchAlertResolvesWithCallerAndNote(t *testing.T) {
	is := is.New(t)

	alertSvc := &alerts.AlertServiceMock{
		ResolveFunc: func(ctx context.Context, alertID, callerID, note string) error {
			return nil
		},
	}

	res := patchAlert(alertSvc, "alert-1", `{"estado":"resuelta","observacion":"se estabilizo"}`)

	is.Equal(res.Code, http.StatusOK)

	call := alertSvc.ResolveCalls()[0]
	is.Equal(call.AlertID, "alert-1")
	is.Equal(call.CallerID, "nurse-1")
	is.Equal(call.Note, "se estabilizo")
}

func TestPatchAlertRejectsOtherTransitions(t *testing.T) {
	is := is.New(t)

	alertSvc := &alerts.AlertServiceMock{}

	res := patchAlert(alertSvc, "alert-1", `{"estado":"pendiente"}`)

	is.Equal(res.Code, http.StatusBadRequest)
	is.Equal(len(alertSvc.ResolveCalls()), 0)
}

func TestPatchUnknownAlertIsNotFound(t *testing.T) {
	is := is.New(t)

	alertSvc := &alerts.AlertServiceMock{
		ResolveFunc: func(ctx context.Context, alertID, callerID, note string) error {
			return alerts.ErrAlertNotFound
		},
	}

	res := patchAlert(alertSvc, "no-such-alert", `{"estado":"resuelta"}`)

	is.Equal(res.Code, http.StatusNotFound)
}

func TestPatchResolvedAlertIsConflict(t *testing.T) {
	is := is.New(t)

	alertSvc := &alerts.AlertServiceMock{
		ResolveFunc: func(ctx context.Context, alertID, callerID, note string) error {
			return alerts.ErrAlreadyResolved
		},
	}

	res := patchAlert(alertSvc, "alert-1", `{"estado":"resuelta"}`)

	is.Equal(res.Code, http.StatusConflict)
}

func TestPostFaultReportAssignsIDAndTimestamp(t *testing.T) {
	is := is.New(t)

	faults := &FaultStoreMock{
		AddFaultReportFunc: func(ctx context.Context, report types.FaultReport) error {
			return nil
		},
	}

	body := `{"idCuna":"CUNA001","descripcion":"sensor suelto","idEnfermero":"nurse-1"}`
	req := authenticatedRequest(http.MethodPost, "/problemas-tecnicos", strings.NewReader(body))
	res := httptest.NewRecorder()

	postFaultReportHandler(testLogger(), faults).ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusCreated)

	stored := faults.AddFaultReportCalls()[0].Report
	is.True(stored.ID != "")
	is.True(!stored.ReportedAt.IsZero())
	is.Equal(stored.CribID, "CUNA001")
	is.Equal(stored.Description, "sensor suelto")
	is.Equal(stored.ReportedBy, "nurse-1")
}

func TestPostFaultReportRequiresAllFields(t *testing.T) {
	is := is.New(t)

	faults := &FaultStoreMock{}

	body := `{"idCuna":"CUNA001"}`
	req := authenticatedRequest(http.MethodPost, "/problemas-tecnicos", strings.NewReader(body))
	res := httptest.NewRecorder()

	postFaultReportHandler(testLogger(), faults).ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusBadRequest)
	is.Equal(len(faults.AddFaultReportCalls()), 0)
}

func patchAlert(alertSvc alerts.AlertService, alertID, body string) *httptest.ResponseRecorder {
	req := authenticatedRequest(http.MethodPatch, "/alertas/"+alertID, strings.NewReader(body))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("alertID", alertID)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	res := httptest.NewRecorder()
	patchAlertHandler(testLogger(), alertSvc).ServeHTTP(res, req)
	return res
}
