package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Harshitha2007-coder/fitness-tracker/internal/telemetry/tracing"
	"github.com/Harshitha2007-coder/fitness-tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=health_test

type healthService interface {
	RecordMeasurement(ctx context.Context, subjectID int, weightKg, heightCm float64, measuredOn time.Time) (*Measurement, error)
	Latest(ctx context.Context, subjectID int) (*Measurement, error)
	History(ctx context.Context, subjectID int) ([]Measurement, error)
	WeightChange(ctx context.Context, subjectID int) (*WeightChange, error)
}

type Handler struct {
	service healthService
}

func NewHandler(service healthService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/health/measurements", handler.HandleRecord).Methods("POST", "OPTIONS").Name("new-measurement")
	r.HandleFunc("/health/measurements/subject/{subjectId}/latest", handler.HandleLatest).Methods("GET", "OPTIONS").Name("latest-measurement")
	r.HandleFunc("/health/measurements/subject/{subjectId}", handler.HandleHistory).Methods("GET", "OPTIONS").Name("measurement-history")
	r.HandleFunc("/health/measurements/subject/{subjectId}/change", handler.HandleWeightChange).Methods("GET", "OPTIONS").Name("weight-change")
	r.HandleFunc("/health/idealweight", handler.HandleIdealWeightRange).Methods("GET", "OPTIONS").Name("ideal-weight")
}

type recordMeasurementRequest struct {
	SubjectID  int       `json:"subjectId"`
	WeightKg   float64   `json:"weightKg"`
	HeightCm   float64   `json:"heightCm"`
	MeasuredOn time.Time `json:"measuredOn"`
}

func (handler *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.record")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req recordMeasurementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("record measurement, unmarshal json params: %s", err)
		http.Error(w, "record measurement failed", http.StatusBadRequest)
		return
	}

	if req.MeasuredOn.IsZero() {
		req.MeasuredOn = time.Now()
	}

	measurement, err := handler.service.RecordMeasurement(ctx, req.SubjectID, req.WeightKg, req.HeightCm, req.MeasuredOn)
	if err != nil {
		if errors.Is(err, ErrInvalidMeasurement) {
			http.Error(w, "error, weight and height must be positive", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to record measurement for subject %d: %s", req.SubjectID, err)
		http.Error(w, "error, failed to record measurement", http.StatusInternalServerError)
		return
	}

	measurementJson, err := json.Marshal(measurement)
	if err != nil {
		log.Errorf("failed to marshal measurement: %s", err)
		http.Error(w, "error, failed to record measurement", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, measurementJson, http.StatusCreated)
}

func (handler *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.latest")
	defer span.End()

	subjectID, err := subjectIDParam(r)
	if err != nil {
		http.Error(w, "error, invalid subject id", http.StatusBadRequest)
		return
	}

	measurement, err := handler.service.Latest(ctx, subjectID)
	if err != nil {
		if errors.Is(err, ErrMeasurementNotFound) {
			http.Error(w, "measurement not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get latest measurement for subject %d: %s", subjectID, err)
		http.Error(w, "failed to get latest measurement", http.StatusInternalServerError)
		return
	}

	measurementJson, err := json.Marshal(measurement)
	if err != nil {
		log.Errorf("failed to marshal measurement: %s", err)
		http.Error(w, "failed to get latest measurement", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, measurementJson)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.history")
	defer span.End()

	subjectID, err := subjectIDParam(r)
	if err != nil {
		http.Error(w, "error, invalid subject id", http.StatusBadRequest)
		return
	}

	history, err := handler.service.History(ctx, subjectID)
	if err != nil {
		log.Errorf("failed to get measurement history for subject %d: %s", subjectID, err)
		http.Error(w, "failed to get measurement history", http.StatusInternalServerError)
		return
	}

	historyJson, err := json.Marshal(history)
	if err != nil {
		log.Errorf("failed to marshal measurement history: %s", err)
		http.Error(w, "failed to get measurement history", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, historyJson)
}

func (handler *Handler) HandleWeightChange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.weightchange")
	defer span.End()

	subjectID, err := subjectIDParam(r)
	if err != nil {
		http.Error(w, "error, invalid subject id", http.StatusBadRequest)
		return
	}

	change, err := handler.service.WeightChange(ctx, subjectID)
	if err != nil {
		if errors.Is(err, ErrMeasurementNotFound) {
			http.Error(w, "not enough measurements", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get weight change for subject %d: %s", subjectID, err)
		http.Error(w, "failed to get weight change", http.StatusInternalServerError)
		return
	}

	changeJson, err := json.Marshal(change)
	if err != nil {
		log.Errorf("failed to marshal weight change: %s", err)
		http.Error(w, "failed to get weight change", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, changeJson)
}

type idealWeightRangeResponse struct {
	HeightCm float64 `json:"heightCm"`
	MinKg    float64 `json:"minKg"`
	MaxKg    float64 `json:"maxKg"`
}

func (handler *Handler) HandleIdealWeightRange(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.idealweight")
	defer span.End()

	heightCm, err := strconv.ParseFloat(r.URL.Query().Get("height"), 64)
	if err != nil {
		http.Error(w, "invalid height parameter", http.StatusBadRequest)
		return
	}

	minKg, maxKg, err := IdealWeightRange(heightCm)
	if err != nil {
		http.Error(w, "error, height must be positive", http.StatusBadRequest)
		return
	}

	rangeJson, err := json.Marshal(idealWeightRangeResponse{
		HeightCm: heightCm,
		MinKg:    minKg,
		MaxKg:    maxKg,
	})
	if err != nil {
		log.Errorf("failed to marshal ideal weight range: %s", err)
		http.Error(w, "failed to get ideal weight range", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, rangeJson)
}

func subjectIDParam(r *http.Request) (int, error) {
	vars := mux.Vars(r)
	return strconv.Atoi(vars["subjectId"])
}
