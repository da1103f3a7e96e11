package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/figgrid/pkg/buildinfo"
	"github.com/matzehuels/figgrid/pkg/errors"
	"github.com/matzehuels/figgrid/pkg/pipeline"
	"github.com/matzehuels/figgrid/pkg/sink"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		s.writeError(w, r, decodeError(err))
		return
	}
	if dec.More() {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "request body must hold a single JSON object"))
		return
	}
	s.compute(w, r, opts)
}

// decodeError classifies a request body decode failure. Codes carried by the
// layout types (bad columns or widths) are kept.
func decodeError(err error) error {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "request body exceeds %d bytes", tooLarge.Limit)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInvalidFormat
	}
	return errors.Wrap(code, err, "decode request: %s", errors.UserMessage(err))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, errors.New(errors.ErrCodeNotFound, "no route for %s", r.URL.Path))
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, errors.New(errors.ErrCodeUnsupported, "method %s not supported on %s", r.Method, r.URL.Path))
}

type presetSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (s *Server) handleListPresets(w http.ResponseWriter, _ *http.Request) {
	all := s.runner.Presets.All()
	out := make([]presetSummary, len(all))
	for i, p := range all {
		out[i] = presetSummary{Name: p.Name, Description: p.Description}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	s.compute(w, r, pipeline.Options{Preset: chi.URLParam(r, "name")})
}

func (s *Server) compute(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	opts.Logger = s.logger.With("id", RequestID(r.Context()))
	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data, err := sink.RenderJSON(res.Layout,
		sink.WithJSONPreset(res.Preset),
		sink.WithJSONRequest(res.Request),
		sink.WithJSONGrid(res.Grid),
	)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeRaw(w, http.StatusOK, data)
}
