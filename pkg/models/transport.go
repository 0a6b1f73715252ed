package models

import "crop-image-gate/pkg/quality"

// ErrPoorImageQuality is the domain error code upstream diagnosis intakes
// attach when a photo fails the quality gate.
const ErrPoorImageQuality = "poor_image_quality"

// ValidationRequest is the wire request for the quality gate. Exactly one
// of ImageData (base64) or URL must be set.
type ValidationRequest struct {
	ImageData  string   `json:"image_data,omitempty"`
	URL        string   `json:"url,omitempty"`
	CheckTypes []string `json:"check_types,omitempty"`
}

// ValidationResponse is the wire response: the full report, plus the domain
// error code and retake guidance when the image fails the gate. A failing
// image is a domain outcome, not a transport error, so it still travels on
// a 200.
type ValidationResponse struct {
	RequestID         string                 `json:"request_id"`
	Success           bool                   `json:"success"`
	Error             string                 `json:"error,omitempty"`
	Report            *quality.Report        `json:"validation"`
	RetryGuidance     *quality.RetryGuidance `json:"retry_guidance,omitempty"`
	ProcessingTimeSec float64                `json:"processing_time_sec"`
}

// ErrorResponse is the wire shape for transport-level failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
