package errors

import "fmt"

var (
	ErrSourceUnreachable = fmt.Errorf("file from url not found")
	ErrNoFilename        = fmt.Errorf("url refers to a non-file resource")
	ErrInvalidRemoteURL  = fmt.Errorf("storage backend rejected the remote url")
	ErrDeleteForbidden   = fmt.Errorf("not enough rights to delete the message")
	ErrNoDocument        = fmt.Errorf("message carries no file")
	ErrEmptySource       = fmt.Errorf("source has no content")
	ErrJobPanic          = fmt.Errorf("job panic")
	ErrWorkerPanic       = fmt.Errorf("worker panic")
)
