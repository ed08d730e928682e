package queue

// Job is the stream payload. Keys are stored already decoded; the worker
// never unescapes them again.
type Job struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

const (
	fieldPayload   = "payload"
	fieldAttempt   = "attempt"
	fieldNotBefore = "not_before"
)
