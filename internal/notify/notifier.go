package notify

import (
	log "github.com/sirupsen/logrus"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityError   Severity = "error"
)

// Notifier is the user-feedback sink of the tracker stores. It is
// fire-and-forget, implementations must never block a mutation.
type Notifier interface {
	Notify(severity Severity, message string)
}

// LogNotifier writes notifications to the service log. The frontend
// gets its toasts via the API responses, this sink keeps a server-side
// trail of them.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(severity Severity, message string) {
	switch severity {
	case SeverityError:
		log.Errorf("notify: %s", message)
	case SeverityInfo:
		log.Infof("notify: %s", message)
	default:
		log.Debugf("notify [%s]: %s", severity, message)
	}
}
