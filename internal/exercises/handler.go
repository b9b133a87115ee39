package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/uglednimomak/active-life-visuals/internal/telemetry/metrics"
	"github.com/uglednimomak/active-life-visuals/internal/telemetry/tracing"
	"github.com/uglednimomak/active-life-visuals/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesStore interface {
	Add(ctx context.Context, params AddExerciseParams) (*Exercise, error)
	Get(ctx context.Context, id string) (*Exercise, error)
	List(ctx context.Context, params ListParams) []Exercise
	Update(ctx context.Context, id string, params UpdateExerciseParams) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) Stats
	Leaderboard(ctx context.Context) []LeaderboardEntry
	WeeklyActivity(ctx context.Context) []ActivityPoint
	Recent(ctx context.Context, limit int) []Exercise
}

type DeleteExerciseResponse struct {
	DeletedID string `json:"deletedId"`
}

type UpdateExerciseResponse struct {
	UpdatedID string `json:"updatedId"`
}

type ExercisesListResponse struct {
	Exercises []Exercise `json:"exercises"`
	Total     int        `json:"total"`
}

type Handler struct {
	store   exercisesStore
	metrics *metrics.Manager
}

func NewHandler(store exercisesStore, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		store:   store,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/list", handler.HandleList).Methods("GET", "OPTIONS").Name("exercises-list")
	router.HandleFunc("/recent", handler.HandleRecent).Methods("GET", "OPTIONS").Name("exercises-recent")
	router.HandleFunc("/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("exercises-stats")
	router.HandleFunc("/leaderboard", handler.HandleLeaderboard).Methods("GET", "OPTIONS").Name("exercises-leaderboard")
	router.HandleFunc("/activity", handler.HandleActivity).Methods("GET", "OPTIONS").Name("exercises-activity")
	router.HandleFunc("/new", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	router.HandleFunc("/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	router.HandleFunc("/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	router.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var params AddExerciseParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("new exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	addedExercise, err := handler.store.Add(ctx, params)
	if err != nil {
		log.Errorf("failed to add new exercise [%s]: %s", params.Name, err)
		http.Error(w, "error, failed to add new exercise", http.StatusBadRequest)
		return
	}

	handler.metrics.CounterExercisesAdded.Inc()
	log.Debugf("new exercise added: [%s] x %d: %s", addedExercise.Name, addedExercise.Count, addedExercise.ID)

	addedExJson, err := json.Marshal(addedExercise)
	if err != nil {
		log.Errorf("failed to marshal new exercise: %s", err)
		http.Error(w, "error, failed to add new exercise", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedExJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	e, err := handler.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get exercise %s: %s", id, err)
		http.Error(w, "exercise not found", http.StatusBadRequest)
		return
	}

	exJson, err := json.Marshal(e)
	if err != nil {
		log.Errorf("failed to marshal exercise: %s", err)
		http.Error(w, "failed to marshal exercise", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.store.Delete(ctx, id); err != nil {
		log.Errorf("failed to delete exercise %s: %s", id, err)
		http.Error(w, "exercise not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteExerciseResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var params UpdateExerciseParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("update exercise, unmarshal json params: %s", err)
		http.Error(w, "update exercise failed", http.StatusBadRequest)
		return
	}

	if err := handler.store.Update(ctx, id, params); err != nil {
		log.Errorf("failed to update exercise [%s]: %s", id, err)
		http.Error(w, "error, failed to update exercise", http.StatusBadRequest)
		return
	}

	updateRespJson, err := json.Marshal(UpdateExerciseResponse{
		UpdatedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	listParams := ListParams{
		Search: r.URL.Query().Get("search"),
	}
	if category := r.URL.Query().Get("category"); category != "" {
		listParams.Category = Category(category)
		if !listParams.Category.Valid() {
			http.Error(w, "error, invalid category", http.StatusBadRequest)
			return
		}
	}

	exercises := handler.store.List(ctx, listParams)
	listResponse := ExercisesListResponse{
		Exercises: exercises,
		Total:     len(exercises),
	}

	listResponseJson, err := json.Marshal(listResponse)
	if err != nil {
		log.Errorf("marshal exercises error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (handler *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.recent")
	defer span.End()

	// the dashboard shows the newest five entries
	limit := 5
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsedLimit, err := strconv.Atoi(limitStr)
		if err != nil || parsedLimit < 1 {
			http.Error(w, "invalid limit (has to be a non-zero value)", http.StatusBadRequest)
			return
		}
		limit = parsedLimit
	}

	recentJson, err := json.Marshal(handler.store.Recent(ctx, limit))
	if err != nil {
		log.Errorf("marshal recent exercises error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recentJson, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.stats")
	defer span.End()

	statsJson, err := json.Marshal(handler.store.Stats(ctx))
	if err != nil {
		log.Errorf("marshal exercises stats error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}

func (handler *Handler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.leaderboard")
	defer span.End()

	leaderboardJson, err := json.Marshal(handler.store.Leaderboard(ctx))
	if err != nil {
		log.Errorf("marshal exercises leaderboard error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, leaderboardJson, http.StatusOK)
}

func (handler *Handler) HandleActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.activity")
	defer span.End()

	activityJson, err := json.Marshal(handler.store.WeeklyActivity(ctx))
	if err != nil {
		log.Errorf("marshal exercises activity error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, activityJson, http.StatusOK)
}
