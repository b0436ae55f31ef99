package konfig

import (
	"fmt"
	"log/slog"
	"runtime/debug"
)

// SaveOnPanic saves the sections when the surrounding function panics and
// auto-save is enabled, then re-panics with the original value. It must be
// deferred directly:
//
//	defer manager.SaveOnPanic()
func (m *Manager) SaveOnPanic() {
	rec := recover()
	if rec == nil {
		return
	}

	if m.opts.AutoSave {
		m.logger.Error("panic recovered, saving configuration",
			slog.String("panic", fmt.Sprintf("%v", rec)),
			slog.String("stack", string(debug.Stack())),
		)

		err := m.Save()
		if err != nil {
			m.logger.Error("failed to save configuration after panic", slog.Any("error", err))
		}
	}

	panic(rec)
}
