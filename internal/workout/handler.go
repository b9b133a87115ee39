package workout

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/uglednimomak/active-life-visuals/internal/telemetry/metrics"
	"github.com/uglednimomak/active-life-visuals/internal/telemetry/tracing"
	"github.com/uglednimomak/active-life-visuals/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type progressStore interface {
	Schedule() Schedule
	CompletedExercises(ctx context.Context, date time.Time) []string
	Toggle(ctx context.Context, date time.Time, name string) error
	AddExercise(ctx context.Context, name string, date time.Time) (string, error)
	DayStatus(ctx context.Context, date time.Time) DayStatus
	Entries(ctx context.Context) []ProgressEntry
	IsCompleted(ctx context.Context, date time.Time, name string) bool
}

type ToggleExerciseRequest struct {
	Date     string `json:"date"`
	Exercise string `json:"exercise"`
}

type ToggleExerciseResponse struct {
	Date      string `json:"date"`
	Exercise  string `json:"exercise"`
	Completed bool   `json:"completed"`
}

type AddExerciseRequest struct {
	Exercise string `json:"exercise"`
	Date     string `json:"date,omitempty"`
}

type AddExerciseResponse struct {
	Date     string `json:"date"`
	Exercise string `json:"exercise"`
}

type CompletedExercisesResponse struct {
	Date               string   `json:"date"`
	CompletedExercises []string `json:"completedExercises"`
}

type DayStatusResponse struct {
	Date   string    `json:"date"`
	Status DayStatus `json:"status"`
}

type CalendarResponse struct {
	Month string              `json:"month"`
	Days  []DayStatusResponse `json:"days"`
}

type Handler struct {
	store   progressStore
	metrics *metrics.Manager
}

func NewHandler(store progressStore, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		store:   store,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/schedule", handler.HandleGetSchedule).Methods("GET", "OPTIONS").Name("workout-schedule")
	router.HandleFunc("/completed/{date}", handler.HandleGetCompleted).Methods("GET", "OPTIONS").Name("workout-completed")
	router.HandleFunc("/status/{date}", handler.HandleGetDayStatus).Methods("GET", "OPTIONS").Name("workout-day-status")
	router.HandleFunc("/calendar/{month}", handler.HandleGetCalendar).Methods("GET", "OPTIONS").Name("workout-calendar")
	router.HandleFunc("/progress", handler.HandleGetProgress).Methods("GET", "OPTIONS").Name("workout-progress")
	router.HandleFunc("/toggle", handler.HandleToggle).Methods("POST", "OPTIONS").Name("workout-toggle")
	router.HandleFunc("/add", handler.HandleAddExercise).Methods("POST", "OPTIONS").Name("workout-add-exercise")
}

func (handler *Handler) HandleGetSchedule(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.schedule")
	defer span.End()

	scheduleJson, err := json.Marshal(handler.store.Schedule())
	if err != nil {
		log.Errorf("marshal workout schedule: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, scheduleJson, http.StatusOK)
}

func (handler *Handler) HandleGetCompleted(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.completed")
	defer span.End()

	date, ok := dateFromRequest(w, r)
	if !ok {
		return
	}

	completed := handler.store.CompletedExercises(ctx, date)
	completedJson, err := json.Marshal(CompletedExercisesResponse{
		Date:               DateKey(date),
		CompletedExercises: completed,
	})
	if err != nil {
		log.Errorf("marshal completed exercises: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, completedJson, http.StatusOK)
}

func (handler *Handler) HandleGetDayStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.dayStatus")
	defer span.End()

	date, ok := dateFromRequest(w, r)
	if !ok {
		return
	}

	statusJson, err := json.Marshal(DayStatusResponse{
		Date:   DateKey(date),
		Status: handler.store.DayStatus(ctx, date),
	})
	if err != nil {
		log.Errorf("marshal day status: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statusJson, http.StatusOK)
}

// HandleGetCalendar reports the day status for every day of one
// month, for the calendar view.
func (handler *Handler) HandleGetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.calendar")
	defer span.End()

	monthStr := mux.Vars(r)["month"]
	month, err := time.Parse("2006-01", monthStr)
	if err != nil {
		http.Error(w, "error, invalid month, use YYYY-MM", http.StatusBadRequest)
		return
	}

	daysInMonth := month.AddDate(0, 1, -1).Day()
	calendar := CalendarResponse{
		Month: monthStr,
		Days:  make([]DayStatusResponse, 0, daysInMonth),
	}
	for day := 0; day < daysInMonth; day++ {
		date := month.AddDate(0, 0, day)
		calendar.Days = append(calendar.Days, DayStatusResponse{
			Date:   DateKey(date),
			Status: handler.store.DayStatus(ctx, date),
		})
	}

	calendarJson, err := json.Marshal(calendar)
	if err != nil {
		log.Errorf("marshal workout calendar: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, calendarJson, http.StatusOK)
}

func (handler *Handler) HandleGetProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.progress")
	defer span.End()

	entriesJson, err := json.Marshal(handler.store.Entries(ctx))
	if err != nil {
		log.Errorf("marshal workout progress: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entriesJson, http.StatusOK)
}

func (handler *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.toggle")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var toggleReq ToggleExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&toggleReq); err != nil {
		log.Errorf("toggle exercise, unmarshal json params: %s", err)
		http.Error(w, "toggle exercise failed", http.StatusBadRequest)
		return
	}

	if toggleReq.Exercise == "" {
		http.Error(w, "error, exercise empty", http.StatusBadRequest)
		return
	}

	date, err := time.Parse(dateLayout, toggleReq.Date)
	if err != nil {
		http.Error(w, "error, invalid date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	if err := handler.store.Toggle(ctx, date, toggleReq.Exercise); err != nil {
		log.Errorf("failed to toggle exercise [%s] on %s: %s", toggleReq.Exercise, toggleReq.Date, err)
		http.Error(w, "error, failed to toggle exercise", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkoutToggles.Inc()

	toggleRespJson, err := json.Marshal(ToggleExerciseResponse{
		Date:      DateKey(date),
		Exercise:  toggleReq.Exercise,
		Completed: handler.store.IsCompleted(ctx, date, toggleReq.Exercise),
	})
	if err != nil {
		log.Errorf("failed to marshal toggle response: %s", err)
		http.Error(w, "failed to marshal toggle response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(toggleRespJson))
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.addExercise")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var addReq AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		log.Errorf("add workout exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	if addReq.Exercise == "" {
		http.Error(w, "error, exercise empty", http.StatusBadRequest)
		return
	}

	var date time.Time
	if addReq.Date != "" {
		parsedDate, err := time.Parse(dateLayout, addReq.Date)
		if err != nil {
			http.Error(w, "error, invalid date, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsedDate
	}

	resolvedName, err := handler.store.AddExercise(ctx, addReq.Exercise, date)
	if err != nil {
		log.Errorf("failed to add workout exercise [%s]: %s", addReq.Exercise, err)
		http.Error(w, "error, failed to add exercise", http.StatusInternalServerError)
		return
	}

	if date.IsZero() {
		date = time.Now()
	}

	addRespJson, err := json.Marshal(AddExerciseResponse{
		Date:     DateKey(date),
		Exercise: resolvedName,
	})
	if err != nil {
		log.Errorf("failed to marshal add exercise response: %s", err)
		http.Error(w, "failed to marshal add exercise response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(addRespJson))
}

func dateFromRequest(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	dateStr := mux.Vars(r)["date"]
	if dateStr == "" {
		http.Error(w, "error, date empty", http.StatusBadRequest)
		return time.Time{}, false
	}
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		http.Error(w, "error, invalid date, use YYYY-MM-DD", http.StatusBadRequest)
		return time.Time{}, false
	}
	return date, true
}
