package middleware

import "net/http"

// statusRecorder captures the status code written by downstream handlers
// without altering what goes out on the wire. Status reports 0 until the
// handler writes; the first explicit WriteHeader wins, an implicit 200 is
// assumed on the first body write.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func newStatusRecorder(responseWriter http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: responseWriter}
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// Status returns the recorded status code, or 0 if nothing was written yet.
func (r *statusRecorder) Status() int {
	return r.status
}

func (r *statusRecorder) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
