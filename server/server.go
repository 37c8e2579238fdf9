package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kasuboski/mediagroup/pkg/cache"
	"github.com/kasuboski/mediagroup/pkg/grouping"
	"github.com/kasuboski/mediagroup/pkg/library"
	"github.com/kasuboski/mediagroup/pkg/logger"
	"github.com/kasuboski/mediagroup/pkg/pagination"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

var ErrNoLibrary = errors.New("no library directory configured")

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response"`
}

// LibraryGroups is the grouped view of the last library scan
type LibraryGroups struct {
	Root      string                 `json:"root"`
	ScannedAt time.Time              `json:"scannedAt"`
	Cached    bool                   `json:"cached"`
	Files     int                    `json:"files"`
	Groups    []grouping.SeriesGroup `json:"groups"`
	Page      pagination.Meta        `json:"page"`
}

// Server houses all dependencies for the grouping server such as the logger, grouper and library
type Server struct {
	baseLogger *zap.SugaredLogger
	grouper    grouping.Grouper
	library    library.Library
	scans      *cache.Cache[string, []grouping.FileRecord]
	validate   *validator.Validate
}

// New creates a new server. lib may be nil when no library directory is configured.
func New(logger *zap.SugaredLogger, grouper grouping.Grouper, lib library.Library) Server {
	return Server{
		baseLogger: logger,
		grouper:    grouper,
		library:    lib,
		scans:      cache.New[string, []grouping.FileRecord](),
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: err.Error(),
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Router builds the routes served by Serve
func (s Server) Router() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/group/files", s.GroupFiles()).Methods(http.MethodPost)
	v1.HandleFunc("/group/previews", s.GroupPreviews()).Methods(http.MethodPost)

	v1.HandleFunc("/library/groups", s.LibraryGroups()).Methods(http.MethodGet)
	v1.HandleFunc("/library/scan", s.ScanLibrary()).Methods(http.MethodPost)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(rtr)
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Router(),
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

// GroupFiles groups the scan records in the request body
func (s Server) GroupFiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var files []grouping.FileRecord
		if err := s.decodeRecords(r, &files); err != nil {
			log.Debugw("invalid request body", "error", err)
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		groups := s.grouper.GroupFiles(r.Context(), files)
		if err := writeResponse(w, http.StatusOK, GenericResponse{Response: groups}); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// GroupPreviews groups the rename previews in the request body
func (s Server) GroupPreviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var previews []grouping.RenamePreview
		if err := s.decodeRecords(r, &previews); err != nil {
			log.Debugw("invalid request body", "error", err)
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		groups := s.grouper.GroupPreviews(r.Context(), previews)
		if err := writeResponse(w, http.StatusOK, GenericResponse{Response: groups}); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// LibraryGroups groups the library, scanning it only if there is no cached scan
func (s Server) LibraryGroups() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.serveLibrary(w, r)
	}
}

// ScanLibrary drops the cached scan and groups a fresh one
func (s Server) ScanLibrary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.library != nil {
			s.scans.Delete(s.library.Root())
		}
		s.serveLibrary(w, r)
	}
}

func (s Server) serveLibrary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromCtx(ctx)

	if s.library == nil {
		writeErrorResponse(w, http.StatusServiceUnavailable, ErrNoLibrary)
		return
	}

	params, err := pagination.FromQuery(r.URL.Query())
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}

	root := s.library.Root()
	files, cached, err := s.scans.Load(root, func() ([]grouping.FileRecord, error) {
		return s.library.Scan(ctx)
	})
	if err != nil {
		log.Errorw("failed to scan library", "root", root, "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, err)
		return
	}

	scannedAt, _ := s.scans.StoredAt(root)
	groups, meta := pagination.Slice(params, s.grouper.GroupFiles(ctx, files))
	resp := LibraryGroups{
		Root:      root,
		ScannedAt: scannedAt,
		Cached:    cached,
		Files:     len(files),
		Groups:    groups,
		Page:      meta,
	}

	if err := writeResponse(w, http.StatusOK, GenericResponse{Response: resp}); err != nil {
		log.Error("failed to write response", zap.Error(err))
	}
}
