package subjects

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Harshitha2007-coder/fitness-tracker/internal/telemetry/tracing"
	"github.com/Harshitha2007-coder/fitness-tracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=subjects_test

type subjectsRepo interface {
	Add(ctx context.Context, subject Subject) (*Subject, error)
	Get(ctx context.Context, id int) (*Subject, error)
}

type Handler struct {
	repo subjectsRepo
}

func NewHandler(repo subjectsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/subjects/register", handler.HandleRegister).Methods("POST", "OPTIONS").Name("register-subject")
	r.HandleFunc("/subjects/{subjectId}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-subject")
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.subjects.register")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("register subject, unmarshal json params: %s", err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}

	if req.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		log.Errorf("failed to hash password for new subject: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	subject, err := New(req.Username, passwordHash, req.Name, Role(req.Role))
	if err != nil {
		http.Error(w, "error, invalid subject details", http.StatusBadRequest)
		return
	}

	added, err := handler.repo.Add(ctx, subject)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			http.Error(w, "error, username already taken", http.StatusConflict)
			return
		}
		log.Errorf("failed to add subject [%s]: %s", req.Username, err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	subjectJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal subject: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	log.Tracef("new subject [%s] registered with id %d", added.Username, added.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, subjectJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.subjects.get")
	defer span.End()

	vars := mux.Vars(r)
	subjectID, err := strconv.Atoi(vars["subjectId"])
	if err != nil {
		http.Error(w, "error, invalid subject id", http.StatusBadRequest)
		return
	}

	subject, err := handler.repo.Get(ctx, subjectID)
	if err != nil {
		if errors.Is(err, ErrSubjectNotFound) {
			http.Error(w, "subject not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get subject %d: %s", subjectID, err)
		http.Error(w, "failed to get subject", http.StatusInternalServerError)
		return
	}

	subjectJson, err := json.Marshal(subject)
	if err != nil {
		log.Errorf("failed to marshal subject: %s", err)
		http.Error(w, "failed to get subject", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, subjectJson)
}
