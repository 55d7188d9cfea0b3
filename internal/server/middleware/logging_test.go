package middleware

import (
	"bufio"
	"bytes"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestLogging(t *testing.T) {
	tests := []struct {
		handler   http.HandlerFunc
		name      string
		path      string
		wantLevel string
		wantAttrs []string
		status    int
	}{
		{
			name: "200 is info",
			path: "/api/v1/workspaces",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("hello"))
			},
			status:    http.StatusOK,
			wantLevel: "level=INFO",
			wantAttrs: []string{"status=200", "bytes_written=5", "path=/api/v1/workspaces"},
		},
		{
			name: "404 is warn",
			path: "/api/v1/missing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			status:    http.StatusNotFound,
			wantLevel: "level=WARN",
			wantAttrs: []string{"status=404"},
		},
		{
			name: "500 is error",
			path: "/api/v1/health",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			status:    http.StatusInternalServerError,
			wantLevel: "level=ERROR",
			wantAttrs: []string{"status=500"},
		},
		{
			name: "workspace query is logged",
			path: "/ws?workspace=notes",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			status:    http.StatusBadRequest,
			wantLevel: "level=WARN",
			wantAttrs: []string{"workspace=notes", "path=/ws"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := bufferLogger()
			h := Logging(logger)(tt.handler)

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			out := buf.String()
			assert.Contains(t, out, `msg="HTTP request"`)
			assert.Contains(t, out, tt.wantLevel)
			for _, attr := range tt.wantAttrs {
				assert.Contains(t, out, attr)
			}
		})
	}
}

func TestLogging_SkipPaths(t *testing.T) {
	logger, buf := bufferLogger()
	h := Logging(logger, "/api/v1/health")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Empty(t, buf.String())

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/workspaces", nil))
	assert.Contains(t, buf.String(), "path=/api/v1/workspaces")
}

type hijackRecorder struct {
	*httptest.ResponseRecorder
	conn net.Conn
}

func (h *hijackRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return h.conn, bufio.NewReadWriter(bufio.NewReader(h.conn), bufio.NewWriter(h.conn)), nil
}

func TestLogging_Hijack(t *testing.T) {
	t.Run("delegates to the underlying writer", func(t *testing.T) {
		server, client := net.Pipe()
		defer func() {
			_ = server.Close()
			_ = client.Close()
		}()

		logger, buf := bufferLogger()
		h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			assert.Equal(t, server, conn)
		}))

		rec := &hijackRecorder{ResponseRecorder: httptest.NewRecorder(), conn: server}
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws?workspace=main", nil))

		out := buf.String()
		assert.Contains(t, out, `msg="Websocket session closed"`)
		assert.Contains(t, out, "status=101")
		assert.Contains(t, out, "workspace=main")
	})

	t.Run("unsupported writer", func(t *testing.T) {
		logger, _ := bufferLogger()
		h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _, err := w.(http.Hijacker).Hijack()
			assert.Error(t, err)
		}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ws", nil))
	})
}
