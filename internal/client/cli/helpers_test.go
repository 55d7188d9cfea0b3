package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/iudanet/gophcollab/internal/client/api"
	"github.com/iudanet/gophcollab/internal/client/iocli"
	"github.com/iudanet/gophcollab/internal/client/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// scriptedIO пишет вывод в буфер и отдает строки ввода по очереди
func scriptedIO(lines ...string) (*iocli.IOMock, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) { _, _ = fmt.Fprintln(out, a...) },
		PrintfFunc:  func(format string, a ...any) { _, _ = fmt.Fprintf(out, format, a...) },
		WriteFunc:   out.Write,
		ReadLineFunc: func() (string, error) {
			if len(lines) == 0 {
				return "", io.EOF
			}
			line := lines[0]
			lines = lines[1:]
			return line, nil
		},
	}, out
}

type prefsState struct {
	name      string
	workspace string
}

func memPrefs(state *prefsState) *storage.PrefsStorageMock {
	return &storage.PrefsStorageMock{
		GetDisplayNameFunc: func(ctx context.Context) (string, error) {
			return state.name, nil
		},
		GetLastWorkspaceFunc: func(ctx context.Context) (string, error) {
			return state.workspace, nil
		},
		SaveDisplayNameFunc: func(ctx context.Context, name string) error {
			state.name = name
			return nil
		},
		SaveLastWorkspaceFunc: func(ctx context.Context, workspaceID string) error {
			state.workspace = workspaceID
			return nil
		},
	}
}

func newTestCli(ioMock iocli.IO, prefs storage.PrefsStorage, apiClient api.ClientAPI, opts Options) *Cli {
	return New(ioMock, prefs, apiClient, nil, opts, discardLogger())
}
