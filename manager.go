package konfig

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/0xalexb/hjarta-konfig/format"
	"github.com/0xalexb/hjarta-konfig/storage/file"
)

var errNullSection = errors.New("section value is null")

// Manager loads registered sections from a single config file and saves them back.
//
// Every method holds one mutex for its whole duration, so a Manager can be
// shared between goroutines. Sections registered through Bind can be read and
// modified safely through their Handle while other goroutines load or save.
type Manager struct {
	mu       sync.Mutex
	opts     Options
	handler  format.Handler
	storage  Storage
	registry *Registry
	logger   *slog.Logger
}

// New creates a Manager. The format handler is resolved once: a custom
// Handler wins over Format, and Format falls back to the Path extension.
func New(opts ...Option) (*Manager, error) {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	handler, err := resolveHandler(options)
	if err != nil {
		return nil, err
	}

	storage := options.Storage
	if storage == nil {
		if options.Path == "" {
			return nil, fmt.Errorf("%w: config path must not be empty", ErrConfig)
		}

		storage = file.New(options.Path)
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		mu:       sync.Mutex{},
		opts:     options,
		handler:  handler,
		storage:  storage,
		registry: NewRegistry(),
		logger:   logger.With(slog.String("component", "konfig")),
	}, nil
}

//nolint:ireturn // the handler is chosen at runtime
func resolveHandler(options Options) (format.Handler, error) {
	if options.Handler != nil {
		return options.Handler, nil
	}

	kind := options.Format
	if kind == 0 {
		inferred, err := format.KindFromPath(options.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot determine format: %w", ErrConfig, err)
		}

		kind = inferred
	}

	handler, err := format.New(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return handler, nil
}

// Options returns the options the Manager was created with.
func (m *Manager) Options() Options {
	return m.opts
}

// Handler returns the active format handler.
//
//nolint:ireturn // the handler is chosen at runtime
func (m *Manager) Handler() format.Handler {
	return m.handler
}

// Sections returns the registered section names in sorted order.
func (m *Manager) Sections() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.registry.Names()
}

// RegisterSection registers section under its name. Registration after a Load
// does not populate the section; call Load again for that.
func (m *Manager) RegisterSection(section Section) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.registry.Register(section)
	if err != nil {
		return err
	}

	m.logger.Debug("section registered", slog.String("section", section.Name()))

	return nil
}

// Load reads the config file and updates every registered section that has an
// entry in it, in name order.
//
// A missing file is created empty and an empty file loads nothing. Entries
// without a registered section are ignored and sections without an entry keep
// their current state. A null entry is a shape mismatch and fails with
// ErrUnmarshal, leaving the section unchanged. When callbacks are enabled each updated section is
// validated and then gets OnLoad; a validation failure skips OnLoad.
//
// Load stops at the first failing section. Sections updated before the
// failure keep their new state, the remaining ones are left untouched.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := m.storage.Read()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		m.logger.Debug("config file is empty, nothing to load", slog.String("path", m.opts.Path))

		return nil
	}

	var tree any

	err = m.handler.Unmarshal(data, &tree)
	if err != nil {
		return fmt.Errorf("%w: decoding config file: %w", ErrLoad, classify(ErrUnmarshal, err))
	}

	if tree == nil {
		return nil
	}

	root, ok := tree.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: config root must be a mapping, got %T", ErrLoad, tree)
	}

	names := make([]string, 0, len(root))
	for name := range root {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		section, registered := m.registry.Get(name)
		if !registered {
			m.logger.Debug("ignoring unregistered section", slog.String("section", name))

			continue
		}

		err = m.loadSection(section, root[name])
		if err != nil {
			return err
		}
	}

	m.logger.Debug("configuration loaded", slog.String("path", m.opts.Path))

	return nil
}

func (m *Manager) loadSection(section Section, value any) error {
	name := section.Name()

	err := m.updateSection(section, value)
	if err != nil {
		return err
	}

	if defaulter, ok := section.(Defaulter); ok && defaulter.SetDefaults() {
		m.logger.Info("defaults applied", slog.String("section", name))
	}

	if !m.opts.UseCallbacks {
		return nil
	}

	err = section.Validate()
	if err != nil {
		return newSectionError(name, OpValidate, ErrValidation, err)
	}

	err = section.OnLoad()
	if err != nil {
		return newSectionError(name, OpOnLoad, ErrOnLoad, err)
	}

	return nil
}

func (m *Manager) updateSection(section Section, value any) error {
	name := section.Name()

	if value == nil {
		return newSectionError(name, OpUpdate, ErrUnmarshal, errNullSection)
	}

	if treeSection, ok := section.(TreeSection); ok {
		err := treeSection.SetTree(value)
		if err != nil {
			return newSectionError(name, OpUpdate, ErrUnmarshal, err)
		}

		return nil
	}

	payload, err := m.handler.Marshal(value)
	if err != nil {
		return newSectionError(name, OpEncode, ErrMarshal, err)
	}

	err = section.UpdateFromBytes(payload, m.handler)
	if err != nil {
		return newSectionError(name, OpUpdate, ErrUnmarshal, err)
	}

	return nil
}

// Save encodes every registered section and atomically replaces the config
// file with the result. Saving is read-only for the sections.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.save()
}

func (m *Manager) save() error {
	document := make(map[string]any, m.registry.Len())

	for _, name := range m.registry.Names() {
		section, _ := m.registry.Get(name)

		tree, err := m.sectionTree(section)
		if err != nil {
			return err
		}

		document[name] = tree
	}

	data, err := m.handler.Marshal(document)
	if err != nil {
		return fmt.Errorf("encoding config file: %w", classify(ErrMarshal, err))
	}

	err = m.storage.Write(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	m.logger.Debug("configuration saved",
		slog.String("path", m.opts.Path),
		slog.Int("sections", len(document)),
	)

	return nil
}

func (m *Manager) sectionTree(section Section) (any, error) {
	name := section.Name()

	if treeSection, ok := section.(TreeSection); ok {
		tree, err := treeSection.Tree()
		if err != nil {
			return nil, newSectionError(name, OpEncode, ErrMarshal, err)
		}

		return tree, nil
	}

	payload, err := section.ToBytes(m.handler)
	if err != nil {
		return nil, newSectionError(name, OpEncode, ErrMarshal, err)
	}

	var tree any

	err = m.handler.Unmarshal(payload, &tree)
	if err != nil {
		return nil, newSectionError(name, OpDecode, ErrUnmarshal, err)
	}

	return tree, nil
}

// Close saves the sections when auto-save is enabled and is a no-op otherwise.
func (m *Manager) Close() error {
	if !m.opts.AutoSave {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("auto-saving configuration", slog.String("path", m.opts.Path))

	return m.save()
}
