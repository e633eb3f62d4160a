package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/0xalexb/hjarta-cfg/document"
	"github.com/0xalexb/hjarta-cfg/listener/middleware"
	"github.com/0xalexb/hjarta-cfg/store"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RootAlias addresses the unnamed root section in URLs.
const RootAlias = "~"

// ErrNilHolder is returned when a handler is created without a holder.
var ErrNilHolder = errors.New("holder must not be nil")

// SectionInfo describes one section.
type SectionInfo struct {
	Name       string   `json:"name"`
	Parent     string   `json:"parent,omitempty"`
	Attributes []string `json:"attributes"`
}

// SectionView is a section with its resolved entries. Keys lists the entry
// names in lookup order, since Entries is unordered.
type SectionView struct {
	SectionInfo

	Keys    []string       `json:"keys"`
	Entries map[string]any `json:"entries"`
}

// ValueView is a single resolved value.
type ValueView struct {
	Section string `json:"section"`
	Key     string `json:"key"`
	Origin  string `json:"origin"`
	Kind    string `json:"kind"`
	Value   any    `json:"value"`
	Raw     string `json:"raw"`
}

type errorBody struct {
	Error string `json:"error"`
}

type server struct {
	holder  *store.Holder
	lookups *prometheus.CounterVec
}

// NewHandler returns the API router. Metrics are registered on a registry
// owned by the handler and served on /metrics.
func NewHandler(holder *store.Holder) (http.Handler, error) {
	if holder == nil {
		return nil, ErrNilHolder
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	srv := &server{
		holder: holder,
		lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: middleware.MetricsNamespace,
			Name:      "lookups_total",
			Help:      "Value lookups served by the API, by result.",
		}, []string{"result"}),
	}

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: middleware.MetricsNamespace,
		Name:      "store_sections",
		Help:      "Sections in the currently loaded store.",
	}, func() float64 {
		return float64(len(holder.Load().Sections()))
	})

	router := chi.NewRouter()
	router.Use(
		chimw.RequestID,
		middleware.Logging(),
		middleware.Recovery(),
		middleware.Metrics(reg),
	)

	router.Get("/healthz", srv.health)
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	router.Route("/v1/sections", func(r chi.Router) {
		r.Get("/", srv.listSections)
		r.Get("/{section}", srv.getSection)
		r.Get("/{section}/attributes", srv.getAttributes)
		r.Get("/{section}/keys/{key}", srv.getValue)
	})

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	})

	return router, nil
}

func (s *server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) listSections(w http.ResponseWriter, _ *http.Request) {
	st := s.holder.Load()

	out := make([]SectionInfo, 0, len(st.Sections()))

	for _, name := range st.Sections() {
		info, err := sectionInfo(st, name)
		if err != nil {
			writeError(w, err)

			return
		}

		out = append(out, info)
	}

	writeJSON(w, http.StatusOK, map[string]any{"sections": out})
}

func (s *server) getSection(w http.ResponseWriter, r *http.Request) {
	st := s.holder.Load()
	name := sectionParam(r)

	info, err := sectionInfo(st, name)
	if err != nil {
		writeError(w, err)

		return
	}

	keys, err := st.Keys(name)
	if err != nil {
		writeError(w, err)

		return
	}

	entries, err := st.Map(name)
	if err != nil {
		writeError(w, err)

		return
	}

	if keys == nil {
		keys = []string{}
	}

	writeJSON(w, http.StatusOK, SectionView{SectionInfo: info, Keys: keys, Entries: entries})
}

func (s *server) getAttributes(w http.ResponseWriter, r *http.Request) {
	attrs, err := s.holder.Load().Attributes(sectionParam(r))
	if err != nil {
		writeError(w, err)

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"attributes": attrs})
}

func (s *server) getValue(w http.ResponseWriter, r *http.Request) {
	st := s.holder.Load()
	section := sectionParam(r)
	key := chi.URLParam(r, "key")

	value, err := st.Lookup(section, key)
	if err != nil {
		s.lookups.WithLabelValues("miss").Inc()
		writeError(w, err)

		return
	}

	origin, err := st.Origin(section, key)
	if err != nil {
		writeError(w, err)

		return
	}

	s.lookups.WithLabelValues("hit").Inc()

	writeJSON(w, http.StatusOK, ValueView{
		Section: section,
		Key:     key,
		Origin:  origin,
		Kind:    value.Kind.String(),
		Value:   store.Native(value),
		Raw:     value.String(),
	})
}

func sectionInfo(st *store.Store, name string) (SectionInfo, error) {
	parent, err := st.Parent(name)
	if err != nil {
		return SectionInfo{}, err
	}

	attrs, err := st.Attributes(name)
	if err != nil {
		return SectionInfo{}, err
	}

	return SectionInfo{Name: name, Parent: parent, Attributes: attrs}, nil
}

func sectionParam(r *http.Request) string {
	name := chi.URLParam(r, "section")
	if name == RootAlias {
		return document.RootSection
	}

	return name
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, store.ErrSectionNotFound) || errors.Is(err, store.ErrKeyNotFound) {
		status = http.StatusNotFound
	}

	writeJSON(w, status, errorBody{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Warn("writing response failed", slog.String("error", err.Error()))
	}
}
