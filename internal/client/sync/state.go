package sync

import (
	"github.com/iudanet/gophcollab/internal/models"
	"github.com/iudanet/gophcollab/pkg/api"
)

// State is the reconciliation context: everything a client knows about the
// shared document and the people editing it. It is owned by one Reconciler
// and only changed by its steps.
type State struct {
	Workspace   models.WorkspaceRef   // активное рабочее пространство
	Self        models.Participant    // локальный участник (id назначает сервер)
	Selection   models.Selection      // локальное выделение
	Snapshot    models.Snapshot       // локальная копия текста и принятая версия
	Peers       models.Peers          // каретки удаленных участников
	Segments    []models.Segment      // нормализованные подсвеченные диапазоны
	Roster      []models.Participant  // последний список присутствия
	Workspaces  []models.WorkspaceRef // известные рабочие пространства
	Scroll      models.Scroll         // смещения прокрутки представления
	Metrics     models.Metrics        // производные метрики текста
	Initialized bool                  // получен init
	Focused     bool                  // у редактора есть фокус ввода
}

// Clone returns a deep copy that is safe to hand to another goroutine.
func (s State) Clone() State {
	out := s
	out.Peers = s.Peers.Clone()
	out.Segments = append([]models.Segment(nil), s.Segments...)
	out.Roster = append([]models.Participant(nil), s.Roster...)
	out.Workspaces = append([]models.WorkspaceRef(nil), s.Workspaces...)
	if s.Workspace.Version != nil {
		v := *s.Workspace.Version
		out.Workspace.Version = &v
	}
	return out
}

func toParticipants(users []api.User) []models.Participant {
	out := make([]models.Participant, 0, len(users))
	for _, u := range users {
		out = append(out, models.Participant{ID: u.ID, Name: u.Name, Color: u.Color})
	}
	return out
}

func toWorkspaceRef(info api.WorkspaceInfo) models.WorkspaceRef {
	ref := models.WorkspaceRef{ID: info.ID, Name: info.Name}
	if info.Version != nil {
		v := *info.Version
		ref.Version = &v
	}
	return ref
}

func toWorkspaceRefs(list []api.WorkspaceInfo) []models.WorkspaceRef {
	out := make([]models.WorkspaceRef, 0, len(list))
	for _, info := range list {
		out = append(out, toWorkspaceRef(info))
	}
	return out
}
