package export

import (
	"bytes"
	"net/http"
)

// buffer is an in-memory http.ResponseWriter.
type buffer struct {
	header http.Header
	body   bytes.Buffer
	status int
	wrote  bool
}

func newBuffer() *buffer {
	return &buffer{header: make(http.Header), status: http.StatusOK}
}

func (b *buffer) Header() http.Header { return b.header }

func (b *buffer) WriteHeader(code int) {
	if b.wrote {
		return
	}
	b.wrote = true
	b.status = code
}

func (b *buffer) Write(p []byte) (int, error) {
	b.WriteHeader(http.StatusOK)
	return b.body.Write(p)
}
