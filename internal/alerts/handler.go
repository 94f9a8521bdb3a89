package alerts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Harshitha2007-coder/fitness-tracker/internal/telemetry/tracing"
	"github.com/Harshitha2007-coder/fitness-tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=alerts_test

type alertsProvider interface {
	ListForSubject(ctx context.Context, subjectID int, unreadOnly bool) ([]Alert, error)
	UnreadCount(ctx context.Context, subjectID int) (int, error)
	MarkRead(ctx context.Context, alertID int) error
	MarkAllRead(ctx context.Context, subjectID int) (int, error)
}

type alertsJanitor interface {
	CleanupOldAlerts(ctx context.Context, retentionDays int) (int, error)
}

type Handler struct {
	provider      alertsProvider
	janitor       alertsJanitor
	retentionDays int
}

func NewHandler(provider alertsProvider, janitor alertsJanitor, retentionDays int) *Handler {
	return &Handler{
		provider:      provider,
		janitor:       janitor,
		retentionDays: retentionDays,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/alerts/subject/{subjectId}", handler.HandleList).Methods("GET", "OPTIONS").Name("alerts")
	r.HandleFunc("/alerts/subject/{subjectId}/unread/count", handler.HandleUnreadCount).Methods("GET", "OPTIONS").Name("unread-alert-count")
	r.HandleFunc("/alerts/{id}/read", handler.HandleMarkRead).Methods("PUT", "OPTIONS").Name("mark-alert-read")
	r.HandleFunc("/alerts/subject/{subjectId}/read", handler.HandleMarkAllRead).Methods("PUT", "OPTIONS").Name("mark-all-alerts-read")
	r.HandleFunc("/alerts/cleanup", handler.HandleCleanup).Methods("DELETE", "OPTIONS").Name("alerts-cleanup")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.alerts.list")
	defer span.End()

	subjectID, err := subjectIDParam(r)
	if err != nil {
		http.Error(w, "error, invalid subject id", http.StatusBadRequest)
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"

	alerts, err := handler.provider.ListForSubject(ctx, subjectID, unreadOnly)
	if err != nil {
		log.Errorf("failed to list alerts for subject %d: %s", subjectID, err)
		http.Error(w, "failed to list alerts", http.StatusInternalServerError)
		return
	}

	alertsJson, err := json.Marshal(alerts)
	if err != nil {
		log.Errorf("failed to marshal alerts: %s", err)
		http.Error(w, "failed to list alerts", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, alertsJson)
}

func (handler *Handler) HandleUnreadCount(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.alerts.unreadcount")
	defer span.End()

	subjectID, err := subjectIDParam(r)
	if err != nil {
		http.Error(w, "error, invalid subject id", http.StatusBadRequest)
		return
	}

	count, err := handler.provider.UnreadCount(ctx, subjectID)
	if err != nil {
		log.Errorf("failed to count unread alerts for subject %d: %s", subjectID, err)
		http.Error(w, "failed to count unread alerts", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"count":%d}`, count))
}

func (handler *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.alerts.markread")
	defer span.End()

	vars := mux.Vars(r)
	alertID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, invalid alert id", http.StatusBadRequest)
		return
	}

	if err := handler.provider.MarkRead(ctx, alertID); err != nil {
		if errors.Is(err, ErrAlertNotFound) {
			http.Error(w, "alert not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to mark alert %d read: %s", alertID, err)
		http.Error(w, "failed to mark alert read", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("alert %d marked read", alertID))
}

func (handler *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.alerts.markallread")
	defer span.End()

	subjectID, err := subjectIDParam(r)
	if err != nil {
		http.Error(w, "error, invalid subject id", http.StatusBadRequest)
		return
	}

	updated, err := handler.provider.MarkAllRead(ctx, subjectID)
	if err != nil {
		log.Errorf("failed to mark alerts read for subject %d: %s", subjectID, err)
		http.Error(w, "failed to mark alerts read", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"updated":%d}`, updated))
}

func (handler *Handler) HandleCleanup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.alerts.cleanup")
	defer span.End()

	retentionDays := handler.retentionDays
	if daysParam := r.URL.Query().Get("retentionDays"); daysParam != "" {
		days, err := strconv.Atoi(daysParam)
		if err != nil || days <= 0 {
			http.Error(w, "error, invalid retention days", http.StatusBadRequest)
			return
		}
		retentionDays = days
	}

	deleted, err := handler.janitor.CleanupOldAlerts(ctx, retentionDays)
	if err != nil {
		log.Errorf("failed to clean up old alerts: %s", err)
		http.Error(w, "failed to clean up old alerts", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"deleted":%d}`, deleted))
}

func subjectIDParam(r *http.Request) (int, error) {
	vars := mux.Vars(r)
	return strconv.Atoi(vars["subjectId"])
}
