// Package web provides an HTTP API that serves Delaunay triangulations of
// stored point sets.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/edaniels/golog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"go.viam.com/utils"
	"goji.io"
	"goji.io/pat"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"go.viam.com/triangulate/delaunay"
	"go.viam.com/triangulate/pointset"
)

// Options configure the triangulation server.
type Options struct {
	// Port to listen on.
	Port int

	// StoreURL is the base URL of the point set store that IDs resolve
	// against.
	StoreURL string

	// Pprof turns on the profiler endpoints.
	Pprof bool
}

// NewOptions returns a default set of options: port 8080 and a point set
// store on the local host.
func NewOptions() Options {
	return Options{
		Port:     8080,
		StoreURL: "http://127.0.0.1:8081",
	}
}

// triangulateApp ties together what the handlers need.
type triangulateApp struct {
	store  *Client
	logger golog.Logger
}

// triangulateHandler fetches a stored point set and answers with its
// triangulated mesh.
type triangulateHandler struct {
	app *triangulateApp
}

func (h *triangulateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := pat.Param(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid point set ID %q: not a UUID", id))
		return
	}

	data, err := h.app.store.FetchPointSet(r.Context(), id)
	if err != nil {
		h.app.logger.Debugw("point set fetch failed", "id", id, "error", err)
		var notFoundErr NotFoundError
		var upstreamErr UpstreamError
		switch {
		case errors.As(err, &notFoundErr):
			writeErrorResponse(w, http.StatusNotFound, err.Error())
		case errors.As(err, &upstreamErr):
			writeErrorResponse(w, http.StatusBadGateway, err.Error())
		default:
			writeErrorResponse(w, http.StatusServiceUnavailable, err.Error())
		}
		return
	}

	ps, err := pointset.FromBytes(data)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	mesh, err := delaunay.Triangulate(ps)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	if err := mesh.WriteTo(w); err != nil {
		h.app.logger.Debugw("writing mesh response failed", "id", id, "error", err)
	}
}

func writeErrorResponse(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	utils.UncheckedError(json.NewEncoder(w).Encode(map[string]string{"error": message}))
}

func installRoutes(mux *goji.Mux, app *triangulateApp) {
	mux.Handle(pat.Get("/triangulate/:id"), &triangulateHandler{app})
}

// RunServer serves the triangulation API until ctx is done.
func RunServer(ctx context.Context, options Options, logger golog.Logger) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", options.Port))
	if err != nil {
		return err
	}

	app := &triangulateApp{store: NewClient(options.StoreURL), logger: logger}
	mux := goji.NewMux()
	installRoutes(mux, app)

	if options.Pprof {
		mux.HandleFunc(pat.New("/debug/pprof/"), pprof.Index)
		mux.HandleFunc(pat.New("/debug/pprof/cmdline"), pprof.Cmdline)
		mux.HandleFunc(pat.New("/debug/pprof/profile"), pprof.Profile)
		mux.HandleFunc(pat.New("/debug/pprof/symbol"), pprof.Symbol)
		mux.HandleFunc(pat.New("/debug/pprof/trace"), pprof.Trace)
	}

	httpServer := &http.Server{
		Addr:           listener.Addr().String(),
		ReadTimeout:    10 * time.Second,
		MaxHeaderBytes: 1 << 20,
		Handler:        h2c.NewHandler(cors.AllowAll().Handler(mux), &http2.Server{}),
	}

	utils.PanicCapturingGo(func() {
		<-ctx.Done()
		if err := httpServer.Shutdown(context.Background()); err != nil {
			logger.Errorw("error shutting down", "error", err)
		}
	})

	logger.Infow("serving triangulations", "address", listener.Addr().String(), "store", options.StoreURL)
	if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
