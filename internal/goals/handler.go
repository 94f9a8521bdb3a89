package goals

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=goals_test

type goalsService interface {
	Create(ctx context.Context, subjectID int, goalType GoalType, targetValue float64, startDate, endDate time.Time) (*Goal, error)
	UpdateProgress(ctx context.Context, goalID int, newCurrentValue float64) (*Goal, error)
	ActiveWithProgress(ctx context.Context, subjectID int, now time.Time) ([]GoalWithProgress, error)
	ListAll(ctx context.Context, subjectID int) ([]Goal, error)
}

type Handler struct {
	service goalsService
}

func NewHandler(service goalsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/goals", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-goal")
	r.HandleFunc("/goals/{id}/progress", handler.HandleUpdateProgress).Methods("PUT", "OPTIONS").Name("goal-progress")
	r.HandleFunc("/goals/subject/{subjectId}/active", handler.HandleActive).Methods("GET", "OPTIONS").Name("active-goals")
	r.HandleFunc("/goals/subject/{subjectId}", handler.HandleListAll).Methods("GET", "OPTIONS").Name("all-goals")
}

type createGoalRequest struct {
	SubjectID   int       `json:"subjectId"`
	Type        string    `json:"type"`
	TargetValue float64   `json:"targetValue"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.create")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create goal, unmarshal json params: %s", err)
		http.Error(w, "create goal failed", http.StatusBadRequest)
		return
	}

	goal, err := handler.service.Create(ctx, req.SubjectID, GoalType(req.Type), req.TargetValue, req.StartDate, req.EndDate)
	if err != nil {
		if errors.Is(err, ErrInvalidGoal) {
			http.Error(w, "error, invalid goal parameters", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to create goal for subject %d: %s", req.SubjectID, err)
		http.Error(w, "error, failed to create goal", http.StatusInternalServerError)
		return
	}

	goalJson, err := json.Marshal(goal)
	if err != nil {
		log.Errorf("failed to marshal goal: %s", err)
		http.Error(w, "error, failed to create goal", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, goalJson, http.StatusCreated)
}

type updateProgressRequest struct {
	CurrentValue float64 `json:"currentValue"`
}

func (handler *Handler) HandleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.updateprogress")
	defer span.End()

	vars := mux.Vars(r)
	goalID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, invalid goal id", http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req updateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update goal progress, unmarshal json params: %s", err)
		http.Error(w, "update goal progress failed", http.StatusBadRequest)
		return
	}

	goal, err := handler.service.UpdateProgress(ctx, goalID, req.CurrentValue)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update progress for goal %d: %s", goalID, err)
		http.Error(w, "failed to update goal progress", http.StatusInternalServerError)
		return
	}

	goalJson, err := json.Marshal(goal)
	if err != nil {
		log.Errorf("failed to marshal goal: %s", err)
		http.Error(w, "failed to update goal progress", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, goalJson)
}

func (handler *Handler) HandleActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.active")
	defer span.End()

	subjectID, err := subjectIDParam(r)
	if err != nil {
		http.Error(w, "error, invalid subject id", http.StatusBadRequest)
		return
	}

	goals, err := handler.service.ActiveWithProgress(ctx, subjectID, time.Now())
	if err != nil {
		log.Errorf("failed to list active goals for subject %d: %s", subjectID, err)
		http.Error(w, "failed to list active goals", http.StatusInternalServerError)
		return
	}

	goalsJson, err := json.Marshal(goals)
	if err != nil {
		log.Errorf("failed to marshal goals: %s", err)
		http.Error(w, "failed to list active goals", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, goalsJson)
}

func (handler *Handler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.listall")
	defer span.End()

	subjectID, err := subjectIDParam(r)
	if err != nil {
		http.Error(w, "error, invalid subject id", http.StatusBadRequest)
		return
	}

	goals, err := handler.service.ListAll(ctx, subjectID)
	if err != nil {
		log.Errorf("failed to list goals for subject %d: %s", subjectID, err)
		http.Error(w, "failed to list goals", http.StatusInternalServerError)
		return
	}

	goalsJson, err := json.Marshal(goals)
	if err != nil {
		log.Errorf("failed to marshal goals: %s", err)
		http.Error(w, "failed to list goals", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, goalsJson)
}

func subjectIDParam(r *http.Request) (int, error) {
	vars := mux.Vars(r)
	return strconv.Atoi(vars["subjectId"])
}
