package activity

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=activity_test

type activityService interface {
	LogActivity(ctx context.Context, subjectID int, date time.Time, steps, caloriesBurned, caloriesConsumed int) (*ActivityLog, error)
	LogWorkout(ctx context.Context, workout WorkoutEntry) (*WorkoutEntry, error)
	Logs(ctx context.Context, subjectID int, from, to time.Time) ([]ActivityLog, error)
	Workouts(ctx context.Context, subjectID int, from, to time.Time) ([]WorkoutEntry, error)
}

type activityAggregator interface {
	Summarize(ctx context.Context, subjectID int, from, to time.Time, stepsGoal int) (*Summary, error)
	DailySeries(ctx context.Context, subjectID int, from, to time.Time, metric Metric) ([]DailyPoint, error)
}

type Handler struct {
	service    activityService
	aggregator activityAggregator
}

func NewHandler(service activityService, aggregator activityAggregator) *Handler {
	return &Handler{
		service:    service,
		aggregator: aggregator,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/activity/logs", handler.HandleLogActivity).Methods("POST", "OPTIONS").Name("new-activity-log")
	r.HandleFunc("/activity/logs/subject/{subjectId}", handler.HandleLogs).Methods("GET", "OPTIONS").Name("activity-logs")
	r.HandleFunc("/activity/workouts", handler.HandleLogWorkout).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/activity/workouts/subject/{subjectId}", handler.HandleWorkouts).Methods("GET", "OPTIONS").Name("workouts")
	r.HandleFunc("/activity/summary/subject/{subjectId}", handler.HandleSummary).Methods("GET", "OPTIONS").Name("activity-summary")
	r.HandleFunc("/activity/series/subject/{subjectId}", handler.HandleSeries).Methods("GET", "OPTIONS").Name("activity-series")
}

type logActivityRequest struct {
	SubjectID        int       `json:"subjectId"`
	Date             time.Time `json:"date"`
	Steps            int       `json:"steps"`
	CaloriesBurned   int       `json:"caloriesBurned"`
	CaloriesConsumed int       `json:"caloriesConsumed"`
}

func (handler *Handler) HandleLogActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.logactivity")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req logActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("log activity, unmarshal json params: %s", err)
		http.Error(w, "log activity failed", http.StatusBadRequest)
		return
	}

	if req.Date.IsZero() {
		req.Date = time.Now()
	}

	activityLog, err := handler.service.LogActivity(ctx, req.SubjectID, req.Date, req.Steps, req.CaloriesBurned, req.CaloriesConsumed)
	if err != nil {
		if errors.Is(err, ErrInvalidActivity) {
			http.Error(w, "error, activity values must not be negative", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to log activity for subject %d: %s", req.SubjectID, err)
		http.Error(w, "error, failed to log activity", http.StatusInternalServerError)
		return
	}

	logJson, err := json.Marshal(activityLog)
	if err != nil {
		log.Errorf("failed to marshal activity log: %s", err)
		http.Error(w, "error, failed to log activity", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, logJson, http.StatusCreated)
}

type logWorkoutRequest struct {
	SubjectID       int       `json:"subjectId"`
	Date            time.Time `json:"date"`
	Type            string    `json:"type"`
	DurationMinutes int       `json:"durationMinutes"`
	Intensity       string    `json:"intensity"`
	CaloriesBurned  int       `json:"caloriesBurned"`
	Notes           string    `json:"notes"`
}

func (handler *Handler) HandleLogWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.logworkout")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req logWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("log workout, unmarshal json params: %s", err)
		http.Error(w, "log workout failed", http.StatusBadRequest)
		return
	}

	if req.Date.IsZero() {
		req.Date = time.Now()
	}

	workout, err := handler.service.LogWorkout(ctx, WorkoutEntry{
		SubjectID:       req.SubjectID,
		Date:            req.Date,
		Type:            WorkoutType(req.Type),
		DurationMinutes: req.DurationMinutes,
		Intensity:       Intensity(req.Intensity),
		CaloriesBurned:  req.CaloriesBurned,
		Notes:           req.Notes,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidWorkout) {
			http.Error(w, "error, invalid workout parameters", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to log workout for subject %d: %s", req.SubjectID, err)
		http.Error(w, "error, failed to log workout", http.StatusInternalServerError)
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal workout: %s", err)
		http.Error(w, "error, failed to log workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusCreated)
}

func (handler *Handler) HandleLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.logs")
	defer span.End()

	subjectID, from, to, err := rangeParams(r)
	if err != nil {
		http.Error(w, "error, invalid request parameters", http.StatusBadRequest)
		return
	}

	logs, err := handler.service.Logs(ctx, subjectID, from, to)
	if err != nil {
		if errors.Is(err, ErrInvalidRange) {
			http.Error(w, "error, invalid date range", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to get activity logs for subject %d: %s", subjectID, err)
		http.Error(w, "failed to get activity logs", http.StatusInternalServerError)
		return
	}

	logsJson, err := json.Marshal(logs)
	if err != nil {
		log.Errorf("failed to marshal activity logs: %s", err)
		http.Error(w, "failed to get activity logs", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, logsJson)
}

func (handler *Handler) HandleWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.workouts")
	defer span.End()

	subjectID, from, to, err := rangeParams(r)
	if err != nil {
		http.Error(w, "error, invalid request parameters", http.StatusBadRequest)
		return
	}

	workouts, err := handler.service.Workouts(ctx, subjectID, from, to)
	if err != nil {
		if errors.Is(err, ErrInvalidRange) {
			http.Error(w, "error, invalid date range", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to get workouts for subject %d: %s", subjectID, err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	workoutsJson, err := json.Marshal(workouts)
	if err != nil {
		log.Errorf("failed to marshal workouts: %s", err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, workoutsJson)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.summary")
	defer span.End()

	subjectID, from, to, err := rangeParams(r)
	if err != nil {
		http.Error(w, "error, invalid request parameters", http.StatusBadRequest)
		return
	}

	// optional, falls back to the default daily steps goal
	stepsGoal, _ := strconv.Atoi(r.URL.Query().Get("stepsGoal"))

	summary, err := handler.aggregator.Summarize(ctx, subjectID, from, to, stepsGoal)
	if err != nil {
		if errors.Is(err, ErrInvalidRange) {
			http.Error(w, "error, invalid date range", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to get activity summary for subject %d: %s", subjectID, err)
		http.Error(w, "failed to get activity summary", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal activity summary: %s", err)
		http.Error(w, "failed to get activity summary", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summaryJson)
}

func (handler *Handler) HandleSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activity.series")
	defer span.End()

	subjectID, from, to, err := rangeParams(r)
	if err != nil {
		http.Error(w, "error, invalid request parameters", http.StatusBadRequest)
		return
	}

	metric := Metric(r.URL.Query().Get("metric"))
	if metric == "" {
		metric = MetricSteps
	}

	series, err := handler.aggregator.DailySeries(ctx, subjectID, from, to, metric)
	if err != nil {
		if errors.Is(err, ErrInvalidRange) || errors.Is(err, ErrUnknownMetric) {
			http.Error(w, "error, invalid request parameters", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to get activity series for subject %d: %s", subjectID, err)
		http.Error(w, "failed to get activity series", http.StatusInternalServerError)
		return
	}

	seriesJson, err := json.Marshal(series)
	if err != nil {
		log.Errorf("failed to marshal activity series: %s", err)
		http.Error(w, "failed to get activity series", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, seriesJson)
}

// rangeParams reads the subject id path variable and the from/to query
// params. A missing range defaults to the last seven days.
func rangeParams(r *http.Request) (subjectID int, from, to time.Time, err error) {
	vars := mux.Vars(r)
	subjectID, err = strconv.Atoi(vars["subjectId"])
	if err != nil {
		return 0, time.Time{}, time.Time{}, err
	}

	now := time.Now()
	from, to = now.AddDate(0, 0, -6), now

	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		from, err = time.Parse("2006-01-02", fromParam)
		if err != nil {
			return 0, time.Time{}, time.Time{}, err
		}
	}
	if toParam := r.URL.Query().Get("to"); toParam != "" {
		to, err = time.Parse("2006-01-02", toParam)
		if err != nil {
			return 0, time.Time{}, time.Time{}, err
		}
	}

	return subjectID, from, to, nil
}
