package cli

import (
	"log/slog"
	"time"

	"github.com/iudanet/gophcollab/internal/client/api"
	"github.com/iudanet/gophcollab/internal/client/iocli"
	"github.com/iudanet/gophcollab/internal/client/storage"
	"github.com/iudanet/gophcollab/internal/client/sync"
)

// Screen receives a fresh view after every state change.
type Screen interface {
	Draw(view sync.State)
}

// Options настройки подключения, собранные из конфига и флагов
type Options struct {
	Server     string        // адрес сервера
	Workspace  string        // рабочее пространство из конфига/флагов
	Name       string        // отображаемое имя из конфига/флагов
	Throttle   time.Duration // интервал рассылки каретки
	MaxElapsed time.Duration // сколько пытаться переподключаться
}

type Cli struct {
	io        iocli.IO
	prefs     storage.PrefsStorage
	apiClient api.ClientAPI
	screen    Screen
	logger    *slog.Logger
	opts      Options
}

func New(io iocli.IO, prefs storage.PrefsStorage, apiClient api.ClientAPI, screen Screen, opts Options, logger *slog.Logger) *Cli {
	return &Cli{
		io:        io,
		prefs:     prefs,
		apiClient: apiClient,
		screen:    screen,
		opts:      opts,
		logger:    logger,
	}
}

func PrintUsage(out iocli.IO) {
	out.Println("GophCollab Client")
	out.Println()
	out.Println("Usage:")
	out.Println("  gophcollab [OPTIONS] COMMAND")
	out.Println()
	out.Println("Options:")
	out.Println("  -version                 Show version information")
	out.Println("  -config PATH             Config file (default: ~/.config/gophcollab/config.yaml)")
	out.Println("  -server URL              Server URL (default: http://localhost:8080)")
	out.Println("  -db PATH                 Path to local database")
	out.Println("  -name NAME               Display name announced on connect")
	out.Println("  -workspace ID            Workspace to join")
	out.Println()
	out.Println("Environment:")
	out.Println("  GOPHCOLLAB_SERVER, GOPHCOLLAB_DB, GOPHCOLLAB_NAME, GOPHCOLLAB_WORKSPACE, GOPHCOLLAB_LOG_LEVEL")
	out.Println()
	out.Println("Commands:")
	out.Println("  connect                 Join a workspace and edit from stdin")
	out.Println("  status                  Show saved preferences and server health")
	out.Println("  name <name>             Save display name")
	out.Println("  workspace <id>          Save preferred workspace")
	out.Println("  workspaces              List workspaces on the server")
	out.Println()
	out.Println("Input while connected:")
	out.Println("  :name <name>            Change display name")
	out.Println("  :ws <id>                Switch workspace")
	out.Println("  :goto <pos>             Move the caret (UTF-16 offset)")
	out.Println("  :focus, :blur           Show or hide your caret to others")
	out.Println("  :quit                   Disconnect")
	out.Println("  ::text                  Insert a line starting with ':'")
	out.Println("  anything else           Inserted at the caret followed by a newline")
	out.Println()
	out.Println("Examples:")
	out.Println("  gophcollab name 'Ada Lovelace'")
	out.Println("  gophcollab -workspace notes connect")
	out.Println("  gophcollab -server https://collab.example.com workspaces")
}
