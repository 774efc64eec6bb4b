// internal/app/toast.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/affirm/internal/errmsg"
	"github.com/llehouerou/affirm/internal/ui/overlay"
)

// Toast is a transient message in the bottom-right corner.
type Toast struct {
	Text string
	Kind overlay.Kind
	Gen  int
}

// showToast displays text and schedules its removal.
func (m *Model) showToast(text string, kind overlay.Kind) tea.Cmd {
	m.Toast.Gen++
	m.Toast.Text = text
	m.Toast.Kind = kind
	return toastExpireCmd(m.Toast.Gen)
}

// showError logs err and shows it as an error toast.
func (m *Model) showError(op errmsg.Op, err error) tea.Cmd {
	m.Log.Error().Err(err).Str("op", string(op)).Msg("operation failed")
	return m.showToast(errmsg.Format(op, err), overlay.Error)
}

// showErrorAbout is showError naming what the operation was about.
func (m *Model) showErrorAbout(op errmsg.Op, about string, err error) tea.Cmd {
	m.Log.Error().Err(err).Str("op", string(op)).Str("about", about).Msg("operation failed")
	return m.showToast(errmsg.FormatWith(op, about, err), overlay.Error)
}

func (m *Model) handleToastExpired(msg ToastExpiredMsg) {
	if msg.Gen == m.Toast.Gen {
		m.Toast.Text = ""
	}
}
