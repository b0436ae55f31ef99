package konfig

import (
	"context"
	"log/slog"
	"slices"

	"go.uber.org/fx"
)

// SectionGroup is the Fx value group that Module collects sections from.
const SectionGroup = "konfig.sections"

// AsSection annotates a constructor so that its result is supplied to Module
// as a Section.
//
//	fx.Provide(konfig.AsSection(func() *konfig.StructSection[Server] {
//	    return konfig.NewSection("server", &Server{})
//	}))
func AsSection(constructor any) any {
	return fx.Annotate(
		constructor,
		fx.As(new(Section)),
		fx.ResultTags(`group:"`+SectionGroup+`"`),
	)
}

type moduleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Logger    *slog.Logger `optional:"true"`
	Sections  []Section    `group:"konfig.sections"`
}

// NewModule creates an Fx module that provides a *Manager built from opts.
// Every section in the SectionGroup value group is registered, the config
// file is loaded when the application starts and, with auto-save enabled,
// saved when it stops. A *slog.Logger in the container is used unless
// WithLogger is passed.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	return fx.Module("konfig",
		fx.Provide(func(params moduleParams) (*Manager, error) {
			var base []Option
			if params.Logger != nil {
				base = append(base, WithLogger(params.Logger))
			}

			manager, err := New(slices.Concat(base, opts)...)
			if err != nil {
				return nil, err
			}

			for _, section := range params.Sections {
				err = manager.RegisterSection(section)
				if err != nil {
					return nil, err
				}
			}

			params.Lifecycle.Append(fx.Hook{
				OnStart: func(context.Context) error {
					return manager.Load()
				},
				OnStop: func(context.Context) error {
					return manager.Close()
				},
			})

			return manager, nil
		}),
		fx.Invoke(func(*Manager) {}),
	)
}
