package trends

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Harshitha2007-coder/fitness-tracker/internal/activity"
	"github.com/Harshitha2007-coder/fitness-tracker/internal/telemetry/tracing"
	"github.com/Harshitha2007-coder/fitness-tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=trends_test

type trendsAnalyzer interface {
	WeeklyBreakdown(ctx context.Context, subjectID, numberOfWeeks int) ([]activity.Summary, error)
	TrendDirection(ctx context.Context, subjectID, numberOfWeeks int, metric activity.Metric) (Direction, error)
	BestDay(ctx context.Context, subjectID int, from, to time.Time, metric activity.Metric) (*activity.DailyPoint, error)
	WorstDay(ctx context.Context, subjectID int, from, to time.Time, metric activity.Metric) (*activity.DailyPoint, error)
}

type Handler struct {
	analyzer trendsAnalyzer
}

func NewHandler(analyzer trendsAnalyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/trends/weekly/subject/{subjectId}", handler.HandleWeeklyBreakdown).Methods("GET", "OPTIONS").Name("weekly-breakdown")
	r.HandleFunc("/trends/direction/subject/{subjectId}", handler.HandleDirection).Methods("GET", "OPTIONS").Name("trend-direction")
	r.HandleFunc("/trends/bestday/subject/{subjectId}", handler.HandleBestDay).Methods("GET", "OPTIONS").Name("best-day")
	r.HandleFunc("/trends/worstday/subject/{subjectId}", handler.HandleWorstDay).Methods("GET", "OPTIONS").Name("worst-day")
}

func (handler *Handler) HandleWeeklyBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trends.weeklybreakdown")
	defer span.End()

	subjectID, weeks, err := weeksParams(r)
	if err != nil {
		http.Error(w, "error, invalid request parameters", http.StatusBadRequest)
		return
	}

	breakdown, err := handler.analyzer.WeeklyBreakdown(ctx, subjectID, weeks)
	if err != nil {
		if errors.Is(err, ErrInvalidWeeks) {
			http.Error(w, "error, invalid number of weeks", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to get weekly breakdown for subject %d: %s", subjectID, err)
		http.Error(w, "failed to get weekly breakdown", http.StatusInternalServerError)
		return
	}

	breakdownJson, err := json.Marshal(breakdown)
	if err != nil {
		log.Errorf("failed to marshal weekly breakdown: %s", err)
		http.Error(w, "failed to get weekly breakdown", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, breakdownJson)
}

func (handler *Handler) HandleDirection(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trends.direction")
	defer span.End()

	subjectID, weeks, err := weeksParams(r)
	if err != nil {
		http.Error(w, "error, invalid request parameters", http.StatusBadRequest)
		return
	}

	metric := metricParam(r)

	direction, err := handler.analyzer.TrendDirection(ctx, subjectID, weeks, metric)
	if err != nil {
		if errors.Is(err, ErrInsufficientData) {
			http.Error(w, "insufficient data, at least two weeks are needed", http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, activity.ErrUnknownMetric) {
			http.Error(w, "error, unknown metric", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to get trend direction for subject %d: %s", subjectID, err)
		http.Error(w, "failed to get trend direction", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"direction":%q}`, direction.String()))
}

func (handler *Handler) HandleBestDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trends.bestday")
	defer span.End()

	handler.handleExtremeDay(ctx, w, r, handler.analyzer.BestDay)
}

func (handler *Handler) HandleWorstDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trends.worstday")
	defer span.End()

	handler.handleExtremeDay(ctx, w, r, handler.analyzer.WorstDay)
}

func (handler *Handler) handleExtremeDay(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	pick func(ctx context.Context, subjectID int, from, to time.Time, metric activity.Metric) (*activity.DailyPoint, error),
) {
	vars := mux.Vars(r)
	subjectID, err := strconv.Atoi(vars["subjectId"])
	if err != nil {
		http.Error(w, "error, invalid subject id", http.StatusBadRequest)
		return
	}

	now := time.Now()
	from, to := now.AddDate(0, 0, -6), now
	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		if from, err = time.Parse("2006-01-02", fromParam); err != nil {
			http.Error(w, "error, invalid from date", http.StatusBadRequest)
			return
		}
	}
	if toParam := r.URL.Query().Get("to"); toParam != "" {
		if to, err = time.Parse("2006-01-02", toParam); err != nil {
			http.Error(w, "error, invalid to date", http.StatusBadRequest)
			return
		}
	}

	day, err := pick(ctx, subjectID, from, to, metricParam(r))
	if err != nil {
		if errors.Is(err, activity.ErrInvalidRange) || errors.Is(err, activity.ErrUnknownMetric) {
			http.Error(w, "error, invalid request parameters", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to pick day for subject %d: %s", subjectID, err)
		http.Error(w, "failed to pick day", http.StatusInternalServerError)
		return
	}

	dayJson, err := json.Marshal(day)
	if err != nil {
		log.Errorf("failed to marshal day: %s", err)
		http.Error(w, "failed to pick day", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, dayJson)
}

func weeksParams(r *http.Request) (subjectID, weeks int, err error) {
	vars := mux.Vars(r)
	subjectID, err = strconv.Atoi(vars["subjectId"])
	if err != nil {
		return 0, 0, err
	}

	weeks = 4
	if weeksParam := r.URL.Query().Get("weeks"); weeksParam != "" {
		weeks, err = strconv.Atoi(weeksParam)
		if err != nil {
			return 0, 0, err
		}
	}

	return subjectID, weeks, nil
}

func metricParam(r *http.Request) activity.Metric {
	metric := activity.Metric(r.URL.Query().Get("metric"))
	if metric == "" {
		return activity.MetricSteps
	}
	return metric
}
