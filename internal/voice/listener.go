package voice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/uglednimomak/active-life-visuals/internal/notify"
)

var (
	// ErrAlreadyListening is returned when a session is started while
	// one is still active. At most one session runs at a time.
	ErrAlreadyListening = errors.New("already listening")

	// ErrUnsupported is returned by engines on platforms without a
	// usable speech recognition capability.
	ErrUnsupported = errors.New("speech recognition not supported")
)

// notRecognizedClearDelay is how long the not-recognized condition
// stays visible before it clears itself.
const notRecognizedClearDelay = 3 * time.Second

// RecognitionResult is the single outcome of one recognition session.
// A session ending without a transcript and without an error is the
// end-of-session signal.
type RecognitionResult struct {
	Transcript string
	Err        error
}

// Engine is the speech recognition capability boundary. Start begins
// one session and delivers exactly one RecognitionResult on the
// returned channel before closing it. Stop aborts an active session
// and is safe to call at any time.
type Engine interface {
	Start(ctx context.Context) (<-chan RecognitionResult, error)
	Stop()
}

// CommandHandler consumes a successfully parsed command, typically by
// logging it as an exercise and marking workout progress.
type CommandHandler func(ctx context.Context, cmd Command)

type ListenerStatus struct {
	Listening     bool `json:"listening"`
	NotRecognized bool `json:"notRecognized"`
}

// Listener owns the recognition session lifecycle: start/stop
// toggling, single active session, and guaranteed teardown. A stopped
// session's late transcript is discarded, never handled.
type Listener struct {
	mutex    sync.Mutex
	engine   Engine
	handler  CommandHandler
	notifier notify.Notifier

	listening     bool
	cancel        context.CancelFunc
	notRecognized bool
	clearTimer    *time.Timer
}

func NewListener(engine Engine, handler CommandHandler, notifier notify.Notifier) *Listener {
	return &Listener{
		engine:   engine,
		handler:  handler,
		notifier: notifier,
	}
}

// Start begins a recognition session. Starting while one is active
// returns ErrAlreadyListening without touching the active session.
func (l *Listener) Start(ctx context.Context) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.listening {
		return ErrAlreadyListening
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	results, err := l.engine.Start(sessionCtx)
	if err != nil {
		cancel()
		l.notifier.Notify(notify.SeverityError, fmt.Sprintf("Voice recognition unavailable: %s", err))
		return err
	}

	l.listening = true
	l.cancel = cancel
	go l.consume(sessionCtx, results)

	return nil
}

// Stop ends an active session. Stopping while not listening is a
// no-op, never an error.
func (l *Listener) Stop() {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.stopLocked()
}

// Close force-stops any in-flight session. To be called when the
// owning component goes away, on every exit path.
func (l *Listener) Close() {
	l.Stop()
}

func (l *Listener) Status() ListenerStatus {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return ListenerStatus{
		Listening:     l.listening,
		NotRecognized: l.notRecognized,
	}
}

func (l *Listener) stopLocked() {
	if !l.listening {
		return
	}
	l.listening = false
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.engine.Stop()
}

func (l *Listener) consume(ctx context.Context, results <-chan RecognitionResult) {
	var result RecognitionResult
	select {
	case <-ctx.Done():
		// session canceled, a late transcript is discarded
		l.reset()
		return
	case res, ok := <-results:
		if !ok {
			l.reset()
			return
		}
		result = res
	}

	select {
	case <-ctx.Done():
		l.reset()
		return
	default:
	}

	l.reset()

	if result.Err != nil {
		log.Errorf("speech recognition: %s", result.Err)
		l.notifier.Notify(notify.SeverityError, fmt.Sprintf("Voice recognition failed: %s", result.Err))
		return
	}
	if result.Transcript == "" {
		// end of session without a result
		return
	}

	l.HandleTranscript(ctx, result.Transcript)
}

// HandleTranscript parses a final transcript and dispatches the
// command. An unparsed utterance raises the transient not-recognized
// condition.
func (l *Listener) HandleTranscript(ctx context.Context, transcript string) (*Command, error) {
	cmd, err := Parse(transcript)
	if err != nil {
		log.Debugf("unrecognized voice command: %q", transcript)
		l.raiseNotRecognized()
		l.notifier.Notify(notify.SeverityError, "Voice command not recognized")
		return nil, err
	}

	l.handler(context.WithoutCancel(ctx), *cmd)
	return cmd, nil
}

func (l *Listener) reset() {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.listening {
		l.listening = false
		if l.cancel != nil {
			l.cancel()
			l.cancel = nil
		}
	}
}

func (l *Listener) raiseNotRecognized() {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.notRecognized = true
	if l.clearTimer != nil {
		l.clearTimer.Stop()
	}
	l.clearTimer = time.AfterFunc(notRecognizedClearDelay, func() {
		l.mutex.Lock()
		defer l.mutex.Unlock()
		l.notRecognized = false
	})
}
