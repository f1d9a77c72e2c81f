package domain

import "fmt"

const (
	errTemplate     = "- Error:\n%s\n- Upload url:\n%s\n\n- Progress url:\n%s\n\n- Response:\n%s"
	errTemplateFull = errTemplate + "\n\n-Analysis:\n%s"
)

// ErrorReport aggregates everything known about a failed transfer.
// Immutable once constructed; delivered as a reply to the triggering
// message, never as an edit of the status message.
type ErrorReport struct {
	Err         string
	UploadURL   string
	TrackingURL string
	Response    string
	Analysis    string // optional root-cause string
}

// Render returns the reply body. The full template is used only when a
// root-cause analysis is available.
func (r ErrorReport) Render() string {
	if r.Analysis != "" {
		return fmt.Sprintf(errTemplateFull, r.Err, r.UploadURL, r.TrackingURL, r.Response, r.Analysis)
	}
	return fmt.Sprintf(errTemplate, r.Err, r.UploadURL, r.TrackingURL, r.Response)
}
