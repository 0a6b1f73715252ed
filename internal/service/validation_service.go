package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	apperrors "crop-image-gate/internal/errors"
	"crop-image-gate/internal/observer"
	"crop-image-gate/internal/storage"
	"crop-image-gate/pkg/models"
	"crop-image-gate/pkg/quality"
)

// ValidationService is the intake flow shared by the crop-disease and pest
// diagnosis pipelines: obtain bytes, run the quality gate, and either wave
// the image through or reject it with retake guidance. It never calls any
// diagnostic model.
type ValidationService interface {
	ValidateBytes(ctx context.Context, data []byte, checks []quality.CheckType) *models.ValidationResponse
	ValidateRef(ctx context.Context, ref string, checks []quality.CheckType) (*models.ValidationResponse, error)
}

type validationService struct {
	engine  *quality.Engine
	sources *storage.Resolver
	events  observer.Subject
}

// NewValidationService creates the intake service around a configured engine.
func NewValidationService(engine *quality.Engine, sources *storage.Resolver, events observer.Subject) ValidationService {
	return &validationService{
		engine:  engine,
		sources: sources,
		events:  events,
	}
}

// ValidateBytes runs the quality gate over raw image bytes.
func (s *validationService) ValidateBytes(ctx context.Context, data []byte, checks []quality.CheckType) *models.ValidationResponse {
	start := time.Now()
	requestID := uuid.NewString()

	s.events.Notify(ctx, observer.ValidationEvent{
		EventType: observer.ValidationStarted,
		RequestID: requestID,
		Metadata:  map[string]interface{}{"bytes": len(data)},
	})

	report := s.engine.Validate(ctx, data, checks...)

	resp := &models.ValidationResponse{
		RequestID:         requestID,
		Success:           report.Valid,
		Report:            report,
		ProcessingTimeSec: time.Since(start).Seconds(),
	}

	event := observer.ValidationEvent{
		RequestID:    requestID,
		Duration:     time.Since(start),
		Valid:        report.Valid,
		QualityScore: report.QualityScore,
		IssueCount:   len(report.Issues),
	}
	if report.Valid {
		event.EventType = observer.ValidationCompleted
	} else {
		event.EventType = observer.ValidationRejected
		resp.Error = models.ErrPoorImageQuality
		resp.RetryGuidance = quality.RetryGuidanceFor(report)
	}
	s.events.Notify(ctx, event)

	return resp
}

// ValidateRef fetches the referenced image and runs the quality gate on it.
func (s *validationService) ValidateRef(ctx context.Context, ref string, checks []quality.CheckType) (*models.ValidationResponse, error) {
	source, err := s.sources.Resolve(ref)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid image reference", err)
	}

	data, err := source.FetchBytes(ctx, ref)
	if err != nil {
		s.events.Notify(ctx, observer.ValidationEvent{
			EventType:    observer.FetchFailed,
			Ref:          ref,
			ErrorMessage: err.Error(),
		})
		switch {
		case errors.Is(err, storage.ErrTooLarge):
			return nil, apperrors.NewOversizedError("image exceeds size limit", err)
		case errors.Is(err, context.DeadlineExceeded):
			return nil, apperrors.NewTimeoutError("image fetch timed out", err)
		default:
			return nil, apperrors.NewSourceError("failed to fetch image", err)
		}
	}

	resp := s.ValidateBytes(ctx, data, checks)
	return resp, nil
}
