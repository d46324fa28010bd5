package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ameyali/crib-monitoring/internal/pkg/application/alerts"
	"github.com/ameyali/crib-monitoring/internal/pkg/application/query"
	"github.com/ameyali/crib-monitoring/internal/pkg/presentation/api/auth"
	"github.com/ameyali/crib-monitoring/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("crib-monitoring/api")

//go:generate moq -rm -out faultstore_mock.go . FaultStore
type FaultStore interface {
	AddFaultReport(ctx context.Context, report types.FaultReport) error
}

func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader, querySvc query.QueryService, alertSvc alerts.AlertService, faults FaultStore) (*chi.Mux, error) {

	router.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/sensor-data", getSensorDataHandler(log, querySvc))
		r.Get("/alertas", getAlertsHandler(log, querySvc))
		r.Patch("/alertas/{alertID}", patchAlertHandler(log, alertSvc))
		r.Post("/problemas-tecnicos", postFaultReportHandler(log, faults))
	})

	return router, nil
}

func getSensorDataHandler(log *slog.Logger, svc query.QueryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-sensor-data")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		callerID := auth.GetCallerFromContext(ctx)

		readings, err := svc.ListReadings(ctx, callerID, cribFilterFromQuery(r), limitFromQuery(r))
		if err != nil {
			if errors.Is(err, query.ErrUnauthorized) {
				requestLogger.Warn("caller has no authorized cribs", "caller_id", callerID)
				writeError(w, http.StatusUnauthorized, "no autorizado")
				return
			}
			requestLogger.Error("unable to fetch sensor data", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeData(w, http.StatusOK, readings.Data)
	}
}

func getAlertsHandler(log *slog.Logger, svc query.QueryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		callerID := auth.GetCallerFromContext(ctx)

		status := types.AlertStatus(r.URL.Query().Get("estado"))
		if status != "" && status != types.AlertPending && status != types.AlertResolved {
			err = fmt.Errorf("unknown alert status %s", status)
			requestLogger.Info(err.Error())
			writeError(w, http.StatusBadRequest, "estado desconocido")
			return
		}

		collection, err := svc.ListAlerts(ctx, callerID, cribFilterFromQuery(r), limitFromQuery(r), status)
		if err != nil {
			if errors.Is(err, query.ErrUnauthorized) {
				requestLogger.Warn("caller has no authorized cribs", "caller_id", callerID)
				writeError(w, http.StatusUnauthorized, "no autorizado")
				return
			}
			requestLogger.Error("unable to fetch alerts", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeData(w, http.StatusOK, collection.Data)
	}
}

func patchAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "resolve-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")
		if alertID != "" {
			requestLogger = requestLogger.With(slog.String("alert_id", alertID))
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "cuerpo de solicitud invalido")
			return
		}

		patch := struct {
			Status types.AlertStatus `json:"estado"`
			Note   string            `json:"observacion"`
		}{}

		err = json.Unmarshal(body, &patch)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "cuerpo de solicitud invalido")
			return
		}

		// Resolution is the only state transition an alert supports.
		if patch.Status != types.AlertResolved {
			err = fmt.Errorf("unsupported status transition to %s", patch.Status)
			requestLogger.Info(err.Error())
			writeError(w, http.StatusBadRequest, "transicion de estado no soportada")
			return
		}

		callerID := auth.GetCallerFromContext(ctx)

		err = svc.Resolve(ctx, alertID, callerID, patch.Note)
		if err != nil {
			if errors.Is(err, alerts.ErrAlertNotFound) {
				requestLogger.Debug("alert not found")
				writeError(w, http.StatusNotFound, "alerta no encontrada")
				return
			}
			if errors.Is(err, alerts.ErrAlreadyResolved) {
				requestLogger.Info("alert was already resolved")
				writeError(w, http.StatusConflict, "alerta ya resuelta")
				return
			}
			requestLogger.Error("unable to resolve alert", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeData(w, http.StatusOK, map[string]string{"id": alertID, "estado": string(types.AlertResolved)})
	}
}

func postFaultReportHandler(log *slog.Logger, faults FaultStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "report-technical-fault")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "cuerpo de solicitud invalido")
			return
		}

		var report types.FaultReport
		err = json.Unmarshal(body, &report)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			writeError(w, http.StatusBadRequest, "cuerpo de solicitud invalido")
			return
		}

		missing := make([]string, 0, 3)
		if report.CribID == "" {
			missing = append(missing, "idCuna")
		}
		if report.Description == "" {
			missing = append(missing, "descripcion")
		}
		if report.ReportedBy == "" {
			missing = append(missing, "idEnfermero")
		}
		if len(missing) > 0 {
			err = fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
			requestLogger.Info(err.Error())
			writeError(w, http.StatusBadRequest, "faltan campos requeridos: "+strings.Join(missing, ", "))
			return
		}

		report.ID = uuid.NewString()
		report.ReportedAt = time.Now().UTC()

		err = faults.AddFaultReport(ctx, report)
		if err != nil {
			requestLogger.Error("unable to store fault report", "err", err.Error())
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		requestLogger.Info("technical fault reported", "crib_id", report.CribID)

		writeData(w, http.StatusCreated, report)
	}
}

func cribFilterFromQuery(r *http.Request) []string {
	cunas := r.URL.Query().Get("cunas")
	if cunas == "" {
		return nil
	}

	filter := make([]string, 0, 4)
	for _, cribID := range strings.Split(cunas, ",") {
		cribID = strings.TrimSpace(cribID)
		if cribID != "" {
			filter = append(filter, cribID)
		}
	}

	return filter
}

func limitFromQuery(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}
	return limit
}

func writeData(w http.ResponseWriter, statusCode int, data any) {
	b, err := json.Marshal(struct {
		Success bool `json:"success"`
		Data    any  `json:"data"`
	}{Success: true, Data: data})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(b)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	b, _ := json.Marshal(struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{Success: false, Error: message})

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(b)
}
