package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/jezek/xgb"
	"github.com/joho/godotenv"
	"github.com/k0kubun/pp"
	"github.com/perchwm/perch/internal/api"
	"github.com/perchwm/perch/internal/autostart"
	"github.com/perchwm/perch/internal/build"
	"github.com/perchwm/perch/internal/bus"
	"github.com/perchwm/perch/internal/config"
	"github.com/perchwm/perch/internal/core"
	"github.com/perchwm/perch/internal/shell"
	"github.com/perchwm/perch/internal/winstate"
	"github.com/perchwm/perch/pkg/sutureext"
	"github.com/phsym/console-slog"
	"github.com/thejerf/suture/v4"
)

type Options struct {
	Debug  bool   `doc:"enable debug"`
	Host   string `doc:"host to listen on" default:"127.0.0.1"`
	Port   int    `doc:"port to listen on" default:"8485"`
	Config string `doc:"config file" default:".perch.yaml"`
}

func main() {
	godotenv.Load()

	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		if options.Debug {
			InitLogger(slog.LevelDebug)
		} else {
			InitLogger(slog.LevelInfo)
		}

		OnServe(hooks, func(ctx context.Context) error {
			bus.SetContext(ctx)

			configFilePath, err := filepath.Abs(options.Config)
			if err != nil {
				return err
			}

			store, err := config.NewStore(config.NewYAML(configFilePath))
			if err != nil {
				return err
			}

			if err := config.Normalize(store); err != nil {
				return err
			}

			cfg, err := store.GetConfig()
			if err != nil {
				return err
			}

			if options.Debug {
				pp.Println(cfg)
			}

			registerAutostart(cfg.Autostart)

			states := winstate.NewStore(winstate.DefaultPath())
			winstate.Watch(states)

			conn, err := xgb.NewConn()
			if err != nil {
				return err
			}
			defer conn.Close()

			status := api.NewStatus(cfg.Widget.UUID).Register()

			super := sutureext.NewSimple("perch")
			sutureext.Add(super, shell.New(conn, cfg.Widget, states, cfg.State.Restore))
			sutureext.Add(super, api.NewServer(core.Address(options.Host, options.Port), cfg.Widget, status, func() {
				os.Exit(0)
			}))

			if err := super.Serve(ctx); err != nil && !errors.Is(err, suture.ErrTerminateSupervisorTree) {
				return err
			}
			return nil
		})
	})

	cli.Root().Version = build.Current.Version

	cli.Run()
}

// registerAutostart keeps the login launch entry in sync with the config.
// Best-effort, a widget missing from autostart is not worth failing over.
func registerAutostart(cfg config.Autostart) {
	if !cfg.Enabled {
		if err := autostart.Unregister("perch"); err != nil {
			slog.Warn("Failed to unregister autostart entry", "error", err)
		}
		return
	}

	exec, err := os.Executable()
	if err != nil {
		slog.Warn("Failed to resolve executable for autostart", "error", err)
		return
	}

	if err := autostart.Register(autostart.Entry{
		Name:    "perch",
		Exec:    exec,
		Comment: "Corner widget shell",
	}); err != nil {
		slog.Warn("Failed to register autostart entry", "error", err)
	}
}

func InitLogger(level slog.Level) {
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	})))
}

func OnServe(hooks humacli.Hooks, serveFn func(ctx context.Context) error) {
	stopC := make(chan struct{})
	hooks.OnStart(func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		errC := make(chan error, 1)

		go func() { errC <- serveFn(ctx) }()

		select {
		case <-stopC:
			cancel()
		case err := <-errC:
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Fatal(err)
			}
			return
		}

		<-errC
		<-stopC
	})
	hooks.OnStop(func() {
		stopC <- struct{}{}
		stopC <- struct{}{}
	})
}
