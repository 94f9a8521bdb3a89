package dashboard

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Harshitha2007-coder/fitness-tracker/internal/telemetry/tracing"
	"github.com/Harshitha2007-coder/fitness-tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type dashboardService interface {
	IndividualDashboard(ctx context.Context, subjectID int) ([]byte, error)
	TrainerOverview(ctx context.Context, trainerID int) ([]byte, error)
}

type Handler struct {
	service dashboardService
}

func NewHandler(service dashboardService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/dashboard/subject/{subjectId}", handler.HandleIndividual).Methods("GET", "OPTIONS").Name("dashboard")
	r.HandleFunc("/dashboard/trainer/{trainerId}", handler.HandleTrainer).Methods("GET", "OPTIONS").Name("trainer-dashboard")
}

func (handler *Handler) HandleIndividual(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.individual")
	defer span.End()

	vars := mux.Vars(r)
	subjectID, err := strconv.Atoi(vars["subjectId"])
	if err != nil {
		http.Error(w, "error, invalid subject id", http.StatusBadRequest)
		return
	}

	dashboardJson, err := handler.service.IndividualDashboard(ctx, subjectID)
	if err != nil {
		log.Errorf("failed to build dashboard for subject %d: %s", subjectID, err)
		http.Error(w, "failed to build dashboard", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, dashboardJson)
}

func (handler *Handler) HandleTrainer(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.trainer")
	defer span.End()

	vars := mux.Vars(r)
	trainerID, err := strconv.Atoi(vars["trainerId"])
	if err != nil {
		http.Error(w, "error, invalid trainer id", http.StatusBadRequest)
		return
	}

	overviewJson, err := handler.service.TrainerOverview(ctx, trainerID)
	if err != nil {
		log.Errorf("failed to build trainer dashboard %d: %s", trainerID, err)
		http.Error(w, "failed to build trainer dashboard", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, overviewJson)
}
