package notify

import "sync"

type Notification struct {
	Severity Severity
	Message  string
}

// Recorder collects notifications, used in tests.
type Recorder struct {
	mutex         sync.Mutex
	notifications []Notification
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(severity Severity, message string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.notifications = append(r.notifications, Notification{
		Severity: severity,
		Message:  message,
	})
}

func (r *Recorder) Notifications() []Notification {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	notifications := make([]Notification, len(r.notifications))
	copy(notifications, r.notifications)
	return notifications
}
