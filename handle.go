package konfig

// Handle gives synchronized access to a section registered with a Manager.
//
// View and Update run while holding the Manager's lock, so they never overlap
// with Load, Save, ValidateAll or another handle call on the same Manager.
type Handle[T Section] struct {
	manager *Manager
	section T
}

// Bind registers section with m and returns a Handle to it.
func Bind[T Section](m *Manager, section T) (*Handle[T], error) {
	err := m.RegisterSection(section)
	if err != nil {
		return nil, err
	}

	return &Handle[T]{manager: m, section: section}, nil
}

// Name returns the section name.
func (h *Handle[T]) Name() string {
	return h.section.Name()
}

// View calls fn with the section for reading.
func (h *Handle[T]) View(fn func(section T)) {
	h.manager.mu.Lock()
	defer h.manager.mu.Unlock()

	fn(h.section)
}

// Update calls fn with the section for modification and returns its error.
// Changes are kept in memory only until the next Save.
func (h *Handle[T]) Update(fn func(section T) error) error {
	h.manager.mu.Lock()
	defer h.manager.mu.Unlock()

	return fn(h.section)
}
