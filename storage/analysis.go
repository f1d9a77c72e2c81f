package storage

import "encoding/json"

// Root-cause analyses attached to error reports when the backend's
// response carries a recognized machine-readable code.
const (
	analysisNotHTTPOrForbidden = "Url protocol is not HTTP, or the url has been forbidden because of too many failed requests."
	analysisContentNotFound    = "Content not found."
	analysisWorkCancelled      = "The work was cancelled for unknown reason."
)

var analysisByCode = map[string]string{
	"invalidRequest":   analysisNotHTTPOrForbidden,
	"notAllowed":       analysisNotHTTPOrForbidden,
	"itemNotFound":     analysisContentNotFound,
	"cancelled":        analysisWorkCancelled,
	"generalException": analysisWorkCancelled,
}

type backendErrorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Analyze maps a raw backend response body to a human-readable root cause.
// Returns "" when the response is not recognized; the error report then
// uses its short template.
func Analyze(response string) string {
	var envelope backendErrorEnvelope
	if err := json.Unmarshal([]byte(response), &envelope); err != nil {
		return ""
	}
	return analysisByCode[envelope.Error.Code]
}
