package observer

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ValidationEvent represents one step in a validation request's lifecycle.
type ValidationEvent struct {
	EventType    EventType              `json:"event_type"`
	Timestamp    time.Time              `json:"timestamp"`
	RequestID    string                 `json:"request_id"`
	Ref          string                 `json:"ref,omitempty"`
	Duration     time.Duration          `json:"duration"`
	Valid        bool                   `json:"valid"`
	QualityScore float64                `json:"quality_score"`
	IssueCount   int                    `json:"issue_count"`
	ErrorMessage string                 `json:"error_message,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

// EventType represents the type of validation event
type EventType string

const (
	// ValidationStarted when a validation request begins
	ValidationStarted EventType = "validation_started"
	// ValidationCompleted when the image passed the quality gate
	ValidationCompleted EventType = "validation_completed"
	// ValidationRejected when the image failed the quality gate
	ValidationRejected EventType = "validation_rejected"
	// FetchFailed when the image bytes could not be retrieved
	FetchFailed EventType = "fetch_failed"
)

// Observer defines the interface for event observers
type Observer interface {
	OnEvent(ctx context.Context, event ValidationEvent)
	Name() string
}

// Subject defines the interface for event publishers
type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	Notify(ctx context.Context, event ValidationEvent)
}

// LoggingObserver logs validation events
type LoggingObserver struct {
	logger *logrus.Logger
}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver(logger *logrus.Logger) Observer {
	return &LoggingObserver{logger: logger}
}

// OnEvent handles validation events by logging them
func (o *LoggingObserver) OnEvent(ctx context.Context, event ValidationEvent) {
	fields := logrus.Fields{
		"event_type":  event.EventType,
		"request_id":  event.RequestID,
		"duration_ms": event.Duration.Milliseconds(),
	}
	if event.Ref != "" {
		fields["ref"] = event.Ref
	}
	if event.ErrorMessage != "" {
		fields["error"] = event.ErrorMessage
	}
	for k, v := range event.Metadata {
		fields[k] = v
	}

	switch event.EventType {
	case ValidationStarted:
		o.logger.WithFields(fields).Debug("Image validation started")
	case ValidationCompleted:
		fields["quality_score"] = event.QualityScore
		o.logger.WithFields(fields).Info("Image passed quality gate")
	case ValidationRejected:
		fields["quality_score"] = event.QualityScore
		fields["issue_count"] = event.IssueCount
		o.logger.WithFields(fields).Warn("Image rejected by quality gate")
	case FetchFailed:
		o.logger.WithFields(fields).Error("Image fetch failed")
	default:
		o.logger.WithFields(fields).Info("Validation event occurred")
	}
}

// Name returns the observer name
func (o *LoggingObserver) Name() string {
	return "logging_observer"
}

// StatsObserver keeps in-process counters of gate outcomes.
type StatsObserver struct {
	mu        sync.Mutex
	accepted  int64
	rejected  int64
	fetchErrs int64
}

// NewStatsObserver creates a new stats observer
func NewStatsObserver() *StatsObserver {
	return &StatsObserver{}
}

// OnEvent updates the counters for terminal events
func (s *StatsObserver) OnEvent(ctx context.Context, event ValidationEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch event.EventType {
	case ValidationCompleted:
		s.accepted++
	case ValidationRejected:
		s.rejected++
	case FetchFailed:
		s.fetchErrs++
	}
}

// Name returns the observer name
func (s *StatsObserver) Name() string {
	return "stats_observer"
}

// Snapshot returns the current counters.
func (s *StatsObserver) Snapshot() (accepted, rejected, fetchErrs int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accepted, s.rejected, s.fetchErrs
}

// EventSubject is a thread-safe publisher fanning events out to observers.
type EventSubject struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewEventSubject creates a new event subject
func NewEventSubject() *EventSubject {
	return &EventSubject{}
}

// Subscribe registers an observer
func (s *EventSubject) Subscribe(observer Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

// Unsubscribe removes an observer by name
func (s *EventSubject) Unsubscribe(observer Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.observers {
		if o.Name() == observer.Name() {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Notify delivers the event to every subscribed observer
func (s *EventSubject) Notify(ctx context.Context, event ValidationEvent) {
	s.mu.RLock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	for _, o := range observers {
		o.OnEvent(ctx, event)
	}
}
