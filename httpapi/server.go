package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/max-scw/dmc-service/ascii"
	"github.com/max-scw/dmc-service/format"
	"github.com/max-scw/dmc-service/logx"
	"github.com/max-scw/dmc-service/message"
	"github.com/max-scw/dmc-service/service"
	"github.com/max-scw/dmc-service/symbol"
)

// Server is the thin HTTP adapter over service.Facade described by spec
// §6's HTTP surface table. It holds no business logic of its own: every
// handler parses its request, calls into Facade, and serializes the
// result (or the out-of-scope PNG rendering of a Bitmap, §1).
type Server struct {
	facade    service.Facade
	logger    logx.Logger
	tempStore *TempStore
	metrics   *metrics
}

// NewServer builds a Server. A nil logger uses logx.Noop().
func NewServer(facade service.Facade, logger logx.Logger) *Server {
	if logger == nil {
		logger = logx.Noop()
	}
	return &Server{
		facade:    facade,
		logger:    logger,
		tempStore: NewTempStore(defaultTempCap),
		metrics:   &metrics{},
	}
}

// Close deletes every outstanding temp file (spec §5: shutdown cleanup).
func (s *Server) Close() {
	s.tempStore.Close()
}

// Handler builds the net/http.Handler implementing spec §6's surface.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleInfo)
	mux.HandleFunc("/image/from-text", s.handleImageFromText)
	mux.HandleFunc("/image/from-json", s.handleImageFromJSON)
	mux.HandleFunc("/message/from-json", s.handleMessageFromJSON)
	mux.HandleFunc("/count-ascii-characters/from-text", s.handleCountAscii)
	mux.HandleFunc("/parser/from-text", s.handleParserFromText)
	mux.HandleFunc("/metrics", s.handleMetrics)
	return mux
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "dmc-service",
		"status":  "ok",
	})
}

func (s *Server) handleImageFromText(w http.ResponseWriter, r *http.Request) {
	atomic.AddUint64(&s.metrics.imageRequests, 1)

	text := r.URL.Query().Get("text")
	rectangular, _ := strconv.ParseBool(r.URL.Query().Get("rectangular_dmc"))
	quietZone := 2
	if raw := r.URL.Query().Get("n_quiet_zone_moduls"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			quietZone = n
		}
	}

	shape := symbol.ShapeSquare
	if rectangular {
		shape = symbol.ShapeRectangular
	}
	enc := symbol.New(symbol.WithShape(shape), symbol.WithQuietZone(quietZone))
	bmp, warnings, err := enc.Encode(text)
	if err != nil {
		atomic.AddUint64(&s.metrics.encodingErrors, 1)
		writeError(w, err)
		return
	}
	for _, warn := range warnings {
		s.logger.Warn(warn.Message, logx.F("code", string(warn.Code)))
	}

	png, err := encodePNG(bmp)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func (s *Server) handleImageFromJSON(w http.ResponseWriter, r *http.Request) {
	atomic.AddUint64(&s.metrics.imageRequests, 1)

	var md MessageData
	if err := json.NewDecoder(r.Body).Decode(&md); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid JSON body: " + err.Error()})
		return
	}

	bmp, warnings, err := s.facade.Generate(toFields(md), toOptions(md))
	if err != nil {
		atomic.AddUint64(&s.metrics.encodingErrors, 1)
		writeError(w, err)
		return
	}
	for _, warn := range warnings {
		s.logger.Warn(warn.Message, logx.F("code", string(warn.Code)))
	}

	png, err := encodePNG(bmp)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func (s *Server) handleMessageFromJSON(w http.ResponseWriter, r *http.Request) {
	atomic.AddUint64(&s.metrics.buildRequests, 1)

	var md MessageData
	if raw := r.URL.Query().Get("data"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &md); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid data query parameter: " + err.Error()})
			return
		}
	}

	text, err := s.facade.BuildMessage(toFields(md), toOptions(md))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=us-ascii")
	_, _ = w.Write([]byte(text))
}

func (s *Server) handleCountAscii(w http.ResponseWriter, r *http.Request) {
	atomic.AddUint64(&s.metrics.countRequests, 1)
	text := r.URL.Query().Get("text")
	writeJSON(w, http.StatusOK, ascii.Count(text))
}

func (s *Server) handleParserFromText(w http.ResponseWriter, r *http.Request) {
	atomic.AddUint64(&s.metrics.parseRequests, 1)

	text := r.URL.Query().Get("text")
	strict, _ := strconv.ParseBool(r.URL.Query().Get("check_format"))

	opts := service.DefaultOptions()
	opts.AppStrict = strict

	fields, err := s.facade.Parse(text, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fields)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	s.metrics.writeText(w)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service/core error to spec §6's response contract: 400
// for a recognized validation/encoding failure kind, 500 otherwise, body
// `{"detail": "<ErrorKind>: <message>"}`.
func writeError(w http.ResponseWriter, err error) {
	var merr *message.Error
	var ferr *format.Error
	status := http.StatusInternalServerError
	if errors.As(err, &merr) || (errors.As(err, &ferr) && ferr.Kind == format.KindFormatMismatch) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"detail": err.Error()})
}

