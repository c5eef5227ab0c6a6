// Package api is the command surface the widget's front-end layer invokes.
package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/perchwm/perch/internal/build"
	"github.com/perchwm/perch/internal/config"
	"github.com/perchwm/perch/internal/winstate"
	"github.com/perchwm/perch/pkg/chiext"
	"github.com/perchwm/perch/web"
)

// TerminateFunc ends the process. The production wiring is os.Exit(0), so a
// successful terminate call never returns to its caller.
type TerminateFunc func()

func NewServer(address string, widget config.Widget, status *Status, terminate TerminateFunc) Server {
	return Server{
		address:   address,
		widget:    widget,
		status:    status,
		terminate: terminate,
	}
}

type Server struct {
	address   string
	widget    config.Widget
	status    *Status
	terminate TerminateFunc
}

func (s Server) String() string {
	return "api.Server(" + s.address + ")"
}

func (s Server) Serve(ctx context.Context) error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(chiext.Logger())
	router.Use(chiext.StaticEmbedFS(chiext.StaticFSConfig{FileSystem: web.FS}))

	s.register(humachi.New(router, huma.DefaultConfig("perch", build.Current.Version)))

	srv := &http.Server{Addr: s.address, Handler: router}

	errC := make(chan error, 1)
	go func() { errC <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		srv.Close()
		<-errC
		return ctx.Err()
	case err := <-errC:
		return err
	}
}

type StatusOutput struct {
	Body struct {
		UUID   string           `json:"uuid"`
		Build  build.Build      `json:"build"`
		Window *winstate.Record `json:"window,omitempty"`
	}
}

func (s Server) register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "status",
		Method:      http.MethodGet,
		Path:        "/api/status",
		Summary:     "Get widget status",
	}, func(ctx context.Context, _ *struct{}) (*StatusOutput, error) {
		out := &StatusOutput{}
		out.Body.UUID, out.Body.Window = s.status.snapshot()
		out.Body.Build = build.Current
		return out, nil
	})

	if s.widget.TerminateCommand {
		huma.Register(api, huma.Operation{
			OperationID:   "terminate",
			Method:        http.MethodPost,
			Path:          "/api/terminate",
			Summary:       "End the process immediately",
			DefaultStatus: http.StatusNoContent,
		}, func(ctx context.Context, _ *struct{}) (*struct{}, error) {
			s.terminate()
			return nil, nil
		})
	}
}
