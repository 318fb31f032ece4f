// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// echoBody returns a handler that writes the request body back and records
// the headers it observed.
func echoBody(gotEncoding *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotEncoding = r.Header.Get("Content-Encoding")
		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write(body)
	})
}

func TestWithGzipRequest(t *testing.T) {
	tests := []struct {
		name         string
		body         func(t *testing.T) []byte
		encoding     string
		wantStatus   int
		wantBody     string
		wantEncoding string
	}{
		{
			name:       "gzip body decompressed",
			body:       func(t *testing.T) []byte { return gzipBytes(t, `{"raw_text":"hello"}`) },
			encoding:   "gzip",
			wantStatus: http.StatusOK,
			wantBody:   `{"raw_text":"hello"}`,
		},
		{
			name:       "large gzip body",
			body:       func(t *testing.T) []byte { return gzipBytes(t, strings.Repeat("note ", 10_000)) },
			encoding:   "gzip",
			wantStatus: http.StatusOK,
			wantBody:   strings.Repeat("note ", 10_000),
		},
		{
			name:       "plain body untouched",
			body:       func(*testing.T) []byte { return []byte("plain") },
			wantStatus: http.StatusOK,
			wantBody:   "plain",
		},
		{
			name:         "other encoding passed through",
			body:         func(*testing.T) []byte { return []byte("raw") },
			encoding:     "br",
			wantStatus:   http.StatusOK,
			wantBody:     "raw",
			wantEncoding: "br",
		},
		{
			name:       "corrupt gzip rejected",
			body:       func(*testing.T) []byte { return []byte("definitely not gzip") },
			encoding:   "gzip",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotEncoding string
			req := httptest.NewRequest(http.MethodPost, "/notes", bytes.NewReader(tt.body(t)))
			if tt.encoding != "" {
				req.Header.Set("Content-Encoding", tt.encoding)
			}
			rr := httptest.NewRecorder()

			withGzipRequest(echoBody(&gotEncoding)).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			assert.Equal(t, tt.wantBody, rr.Body.String())
			assert.Equal(t, tt.wantEncoding, gotEncoding)
		})
	}
}

func TestWrappedReadCloser_CloseOnce(t *testing.T) {
	calls := 0
	rc := &wrappedReadCloser{
		Reader:  strings.NewReader("x"),
		OnClose: func() { calls++ },
	}

	require.NoError(t, rc.Close())
	require.NoError(t, rc.Close())

	assert.Equal(t, 1, calls)
}
