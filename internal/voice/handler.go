package voice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/uglednimomak/active-life-visuals/internal/telemetry/metrics"
	"github.com/uglednimomak/active-life-visuals/internal/telemetry/tracing"
	"github.com/uglednimomak/active-life-visuals/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type TranscriptRequest struct {
	Transcript string `json:"transcript"`
}

type Handler struct {
	listener *Listener
	metrics  *metrics.Manager
}

func NewHandler(listener *Listener, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		listener: listener,
		metrics:  metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/status", handler.HandleStatus).Methods("GET", "OPTIONS").Name("voice-status")
	router.HandleFunc("/start", handler.HandleStart).Methods("POST", "OPTIONS").Name("voice-start")
	router.HandleFunc("/stop", handler.HandleStop).Methods("POST", "OPTIONS").Name("voice-stop")
	router.HandleFunc("/transcript", handler.HandleTranscript).Methods("POST", "OPTIONS").Name("voice-transcript")
}

func (handler *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.voice.status")
	defer span.End()

	statusJson, err := json.Marshal(handler.listener.Status())
	if err != nil {
		log.Errorf("marshal listener status: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statusJson, http.StatusOK)
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.voice.start")
	defer span.End()

	// the session must outlive this request
	if err := handler.listener.Start(context.WithoutCancel(ctx)); err != nil {
		switch {
		case errors.Is(err, ErrAlreadyListening):
			http.Error(w, "error, already listening", http.StatusConflict)
		case errors.Is(err, ErrUnsupported):
			http.Error(w, "error, speech recognition not supported", http.StatusNotImplemented)
		default:
			log.Errorf("failed to start voice session: %s", err)
			http.Error(w, "error, failed to start listening", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteTextResponseOK(w, "listening")
}

func (handler *Handler) HandleStop(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.voice.stop")
	defer span.End()

	handler.listener.Stop()
	pkg.WriteTextResponseOK(w, "stopped")
}

func (handler *Handler) HandleTranscript(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.voice.transcript")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var transcriptReq TranscriptRequest
	if err := json.NewDecoder(r.Body).Decode(&transcriptReq); err != nil {
		log.Errorf("handle transcript, unmarshal json params: %s", err)
		http.Error(w, "handle transcript failed", http.StatusBadRequest)
		return
	}
	if transcriptReq.Transcript == "" {
		http.Error(w, "error, transcript empty", http.StatusBadRequest)
		return
	}

	cmd, err := handler.listener.HandleTranscript(ctx, transcriptReq.Transcript)
	if err != nil {
		handler.metrics.CounterVoiceCommands.WithLabelValues("not_recognized").Inc()
		http.Error(w, "voice command not recognized", http.StatusUnprocessableEntity)
		return
	}

	handler.metrics.CounterVoiceCommands.WithLabelValues("recognized").Inc()

	cmdJson, err := json.Marshal(cmd)
	if err != nil {
		log.Errorf("failed to marshal voice command: %s", err)
		http.Error(w, "failed to marshal voice command", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cmdJson, http.StatusOK)
}
