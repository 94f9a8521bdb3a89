package trainer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Harshitha2007-coder/fitness-tracker/internal/goals"
	"github.com/Harshitha2007-coder/fitness-tracker/internal/subjects"
	"github.com/Harshitha2007-coder/fitness-tracker/internal/telemetry/tracing"
	"github.com/Harshitha2007-coder/fitness-tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=trainer_test

type trainerService interface {
	AssignClient(ctx context.Context, trainerID, subjectID int) error
	RemoveClient(ctx context.Context, trainerID, subjectID int) error
	Clients(ctx context.Context, trainerID int) ([]subjects.Subject, error)
	CreatePlan(ctx context.Context, trainerID, subjectID int, planType PlanType, title, description string) (*Plan, error)
	PlansForClient(ctx context.Context, subjectID int) ([]Plan, error)
	DeletePlan(ctx context.Context, planID int) error
	CreateGoalForClient(ctx context.Context, trainerID, subjectID int, goalType goals.GoalType, targetValue float64, startDate, endDate time.Time) (*goals.Goal, error)
	ClientStepsProgress(ctx context.Context, trainerID, subjectID int, from, to time.Time) (*StepsProgress, error)
	ClientCaloriesProgress(ctx context.Context, trainerID, subjectID int, from, to time.Time) (*CaloriesProgress, error)
	ClientWorkoutProgress(ctx context.Context, trainerID, subjectID int, from, to time.Time) (*WorkoutProgress, error)
}

type Handler struct {
	service trainerService
}

func NewHandler(service trainerService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/trainer/{trainerId}/clients", handler.HandleClients).Methods("GET", "OPTIONS").Name("trainer-clients")
	r.HandleFunc("/trainer/{trainerId}/clients/{subjectId}", handler.HandleAssignClient).Methods("POST", "OPTIONS").Name("assign-client")
	r.HandleFunc("/trainer/{trainerId}/clients/{subjectId}", handler.HandleRemoveClient).Methods("DELETE", "OPTIONS").Name("remove-client")
	r.HandleFunc("/trainer/{trainerId}/plans", handler.HandleCreatePlan).Methods("POST", "OPTIONS").Name("new-plan")
	r.HandleFunc("/trainer/plans/subject/{subjectId}", handler.HandlePlansForClient).Methods("GET", "OPTIONS").Name("client-plans")
	r.HandleFunc("/trainer/plans/{planId}", handler.HandleDeletePlan).Methods("DELETE", "OPTIONS").Name("delete-plan")
	r.HandleFunc("/trainer/{trainerId}/goals", handler.HandleCreateGoal).Methods("POST", "OPTIONS").Name("trainer-goal")
	r.HandleFunc("/trainer/{trainerId}/clients/{subjectId}/progress/steps", handler.HandleStepsProgress).Methods("GET", "OPTIONS").Name("client-steps-progress")
	r.HandleFunc("/trainer/{trainerId}/clients/{subjectId}/progress/calories", handler.HandleCaloriesProgress).Methods("GET", "OPTIONS").Name("client-calories-progress")
	r.HandleFunc("/trainer/{trainerId}/clients/{subjectId}/progress/workouts", handler.HandleWorkoutProgress).Methods("GET", "OPTIONS").Name("client-workout-progress")
}

func (handler *Handler) HandleAssignClient(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainer.assignclient")
	defer span.End()

	trainerID, subjectID, err := trainerClientParams(r)
	if err != nil {
		http.Error(w, "error, invalid request parameters", http.StatusBadRequest)
		return
	}

	if err := handler.service.AssignClient(ctx, trainerID, subjectID); err != nil {
		switch {
		case errors.Is(err, ErrNotATrainer), errors.Is(err, ErrAlreadyClient), errors.Is(err, ErrTrainerIsOwner):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, subjects.ErrSubjectNotFound):
			http.Error(w, "subject not found", http.StatusNotFound)
		default:
			log.Errorf("failed to assign client %d to trainer %d: %s", subjectID, trainerID, err)
			http.Error(w, "failed to assign client", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteTextResponseOK(w, "client assigned")
}

func (handler *Handler) HandleRemoveClient(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainer.removeclient")
	defer span.End()

	trainerID, subjectID, err := trainerClientParams(r)
	if err != nil {
		http.Error(w, "error, invalid request parameters", http.StatusBadRequest)
		return
	}

	if err := handler.service.RemoveClient(ctx, trainerID, subjectID); err != nil {
		switch {
		case errors.Is(err, ErrNotAssigned):
			http.Error(w, "subject is not assigned to this trainer", http.StatusConflict)
		case errors.Is(err, subjects.ErrSubjectNotFound):
			http.Error(w, "subject not found", http.StatusNotFound)
		default:
			log.Errorf("failed to remove client %d from trainer %d: %s", subjectID, trainerID, err)
			http.Error(w, "failed to remove client", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteTextResponseOK(w, "client removed")
}

func (handler *Handler) HandleClients(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainer.clients")
	defer span.End()

	trainerID, err := trainerIDParam(r)
	if err != nil {
		http.Error(w, "error, invalid trainer id", http.StatusBadRequest)
		return
	}

	clients, err := handler.service.Clients(ctx, trainerID)
	if err != nil {
		log.Errorf("failed to list clients of trainer %d: %s", trainerID, err)
		http.Error(w, "failed to list clients", http.StatusInternalServerError)
		return
	}

	clientsJson, err := json.Marshal(clients)
	if err != nil {
		log.Errorf("failed to marshal clients: %s", err)
		http.Error(w, "failed to list clients", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, clientsJson)
}

type createPlanRequest struct {
	SubjectID   int    `json:"subjectId"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (handler *Handler) HandleCreatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainer.createplan")
	defer span.End()

	trainerID, err := trainerIDParam(r)
	if err != nil {
		http.Error(w, "error, invalid trainer id", http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req createPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create plan, unmarshal json params: %s", err)
		http.Error(w, "create plan failed", http.StatusBadRequest)
		return
	}

	plan, err := handler.service.CreatePlan(ctx, trainerID, req.SubjectID, PlanType(req.Type), req.Title, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPlan):
			http.Error(w, "error, invalid plan parameters", http.StatusBadRequest)
		case errors.Is(err, ErrNotAssigned):
			http.Error(w, "subject is not assigned to this trainer", http.StatusConflict)
		default:
			log.Errorf("failed to create plan for subject %d: %s", req.SubjectID, err)
			http.Error(w, "failed to create plan", http.StatusInternalServerError)
		}
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("failed to marshal plan: %s", err)
		http.Error(w, "failed to create plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusCreated)
}

func (handler *Handler) HandlePlansForClient(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainer.plansforclient")
	defer span.End()

	vars := mux.Vars(r)
	subjectID, err := strconv.Atoi(vars["subjectId"])
	if err != nil {
		http.Error(w, "error, invalid subject id", http.StatusBadRequest)
		return
	}

	plans, err := handler.service.PlansForClient(ctx, subjectID)
	if err != nil {
		log.Errorf("failed to list plans for subject %d: %s", subjectID, err)
		http.Error(w, "failed to list plans", http.StatusInternalServerError)
		return
	}

	plansJson, err := json.Marshal(plans)
	if err != nil {
		log.Errorf("failed to marshal plans: %s", err)
		http.Error(w, "failed to list plans", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, plansJson)
}

func (handler *Handler) HandleDeletePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainer.deleteplan")
	defer span.End()

	vars := mux.Vars(r)
	planID, err := strconv.Atoi(vars["planId"])
	if err != nil {
		http.Error(w, "error, invalid plan id", http.StatusBadRequest)
		return
	}

	if err := handler.service.DeletePlan(ctx, planID); err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete plan %d: %s", planID, err)
		http.Error(w, "failed to delete plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "plan deleted")
}

type createGoalRequest struct {
	SubjectID   int       `json:"subjectId"`
	Type        string    `json:"type"`
	TargetValue float64   `json:"targetValue"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

func (handler *Handler) HandleCreateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainer.creategoal")
	defer span.End()

	trainerID, err := trainerIDParam(r)
	if err != nil {
		http.Error(w, "error, invalid trainer id", http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("trainer create goal, unmarshal json params: %s", err)
		http.Error(w, "create goal failed", http.StatusBadRequest)
		return
	}

	goal, err := handler.service.CreateGoalForClient(
		ctx, trainerID, req.SubjectID,
		goals.GoalType(req.Type), req.TargetValue, req.StartDate, req.EndDate,
	)
	if err != nil {
		switch {
		case errors.Is(err, goals.ErrInvalidGoal):
			http.Error(w, "error, invalid goal parameters", http.StatusBadRequest)
		case errors.Is(err, ErrNotAssigned):
			http.Error(w, "subject is not assigned to this trainer", http.StatusConflict)
		default:
			log.Errorf("failed to create goal for subject %d: %s", req.SubjectID, err)
			http.Error(w, "failed to create goal", http.StatusInternalServerError)
		}
		return
	}

	goalJson, err := json.Marshal(goal)
	if err != nil {
		log.Errorf("failed to marshal goal: %s", err)
		http.Error(w, "failed to create goal", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, goalJson, http.StatusCreated)
}

func (handler *Handler) HandleStepsProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainer.stepsprogress")
	defer span.End()

	handler.handleProgress(ctx, w, r, func(ctx context.Context, trainerID, subjectID int, from, to time.Time) (any, error) {
		return handler.service.ClientStepsProgress(ctx, trainerID, subjectID, from, to)
	})
}

func (handler *Handler) HandleCaloriesProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainer.caloriesprogress")
	defer span.End()

	handler.handleProgress(ctx, w, r, func(ctx context.Context, trainerID, subjectID int, from, to time.Time) (any, error) {
		return handler.service.ClientCaloriesProgress(ctx, trainerID, subjectID, from, to)
	})
}

func (handler *Handler) HandleWorkoutProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainer.workoutprogress")
	defer span.End()

	handler.handleProgress(ctx, w, r, func(ctx context.Context, trainerID, subjectID int, from, to time.Time) (any, error) {
		return handler.service.ClientWorkoutProgress(ctx, trainerID, subjectID, from, to)
	})
}

func (handler *Handler) handleProgress(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	view func(ctx context.Context, trainerID, subjectID int, from, to time.Time) (any, error),
) {
	trainerID, subjectID, err := trainerClientParams(r)
	if err != nil {
		http.Error(w, "error, invalid request parameters", http.StatusBadRequest)
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

	progress, err := view(ctx, trainerID, subjectID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotAssigned):
			http.Error(w, "subject is not assigned to this trainer", http.StatusConflict)
		case errors.Is(err, subjects.ErrSubjectNotFound):
			http.Error(w, "subject not found", http.StatusNotFound)
		default:
			log.Errorf("failed to get client progress for subject %d: %s", subjectID, err)
			http.Error(w, "failed to get client progress", http.StatusInternalServerError)
		}
		return
	}

	progressJson, err := json.Marshal(progress)
	if err != nil {
		log.Errorf("failed to marshal client progress: %s", err)
		http.Error(w, "failed to get client progress", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, progressJson)
}

func trainerIDParam(r *http.Request) (int, error) {
	vars := mux.Vars(r)
	return strconv.Atoi(vars["trainerId"])
}

func trainerClientParams(r *http.Request) (trainerID, subjectID int, err error) {
	vars := mux.Vars(r)
	trainerID, err = strconv.Atoi(vars["trainerId"])
	if err != nil {
		return 0, 0, err
	}
	subjectID, err = strconv.Atoi(vars["subjectId"])
	if err != nil {
		return 0, 0, err
	}
	return trainerID, subjectID, nil
}
