// Package app wires the configuration manager into an Fx application.
//
// It configures a slog logger, provides every section constructor passed to
// WithSections as a konfig.Section and adds konfig.NewModule when WithKonfig
// is used:
//
//	application := app.NewApp(
//	    app.WithKonfig(konfig.WithPath("config.yaml"), konfig.WithAutoSave(true)),
//	    app.WithSections(func() *konfig.StructSection[Server] {
//	        return konfig.NewSection("server", &Server{})
//	    }),
//	)
//	application.Run() // loads on start, saves on SIGINT/SIGTERM
package app
