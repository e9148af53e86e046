package internal

import (
	"bytes"
	"net/http"
	"sync"
)

// ResponseWriter wraps http.ResponseWriter to record the status and size of
// the response. It can also keep a copy of the body for caching and run
// hooks just before the header is sent.
type ResponseWriter struct {
	http.ResponseWriter
	status      int
	size        int64
	written     bool
	capture     *bytes.Buffer
	beforeWrite []func()
	mu          sync.Mutex
}

func NewResponseWriter(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{
		ResponseWriter: w,
		status:         http.StatusOK,
	}
}

// OnBeforeWrite registers a hook to run once, before the header is written.
// Status reports the final code inside the hook.
func (w *ResponseWriter) OnBeforeWrite(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.beforeWrite = append(w.beforeWrite, fn)
}

// Capture starts copying the body written from now on. Body returns it.
func (w *ResponseWriter) Capture() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.capture == nil {
		w.capture = new(bytes.Buffer)
	}
}

// Body returns the captured body, or nil when Capture was not called.
func (w *ResponseWriter) Body() []byte {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.capture == nil {
		return nil
	}
	return w.capture.Bytes()
}

// WriteHeader sends the header once. Later calls are ignored.
func (w *ResponseWriter) WriteHeader(code int) {
	w.mu.Lock()
	if w.written {
		w.mu.Unlock()
		return
	}
	w.written = true
	w.status = code
	hooks := w.beforeWrite
	w.beforeWrite = nil
	w.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}

	w.ResponseWriter.WriteHeader(code)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.Written() {
		w.WriteHeader(http.StatusOK)
	}

	n, err := w.ResponseWriter.Write(b)

	w.mu.Lock()
	w.size += int64(n)
	if w.capture != nil {
		w.capture.Write(b[:n])
	}
	w.mu.Unlock()

	return n, err
}

func (w *ResponseWriter) Status() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Size returns the number of body bytes written.
func (w *ResponseWriter) Size() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

func (w *ResponseWriter) Written() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}

// Flush implements http.Flusher.
func (w *ResponseWriter) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// wrapResponse reuses w when it is already a *ResponseWriter so that nested
// middleware all observe the same status and body.
func wrapResponse(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return NewResponseWriter(w)
}
