package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

// Probe checks one dependency. A failing critical probe takes the service
// out of rotation; a failing optional one only degrades /health.
type Probe struct {
	Name     string
	Critical bool
	Check    func(ctx context.Context) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// PostgresProbe is the critical probe of the primary database.
func PostgresProbe(db pinger) Probe {
	return Probe{Name: "postgres", Critical: true, Check: db.Ping}
}

// KafkaProbe reports broker reachability. Events are best effort, so it is
// never critical.
func KafkaProbe(p pinger) Probe {
	return Probe{Name: "kafka", Check: p.Ping}
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	probes  []Probe
	version string
}

func NewHealthHandler(version string, probes ...Probe) *HealthHandler {
	return &HealthHandler{probes: probes, version: version}
}

// HealthResponse is the JSON body of every probe endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready answers 503 while any critical probe fails.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	overall, _ := h.run(r.Context(), true)
	writeJSON(w, httpStatus(overall), HealthResponse{Status: overall, Timestamp: time.Now()})
}

// Health runs every probe and reports each with its latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	overall, components := h.run(r.Context(), false)
	writeJSON(w, httpStatus(overall), HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) run(ctx context.Context, criticalOnly bool) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	overall := statusOK
	components := make(map[string]CompStatus, len(h.probes))
	for _, p := range h.probes {
		if criticalOnly && !p.Critical {
			continue
		}

		start := time.Now()
		if err := p.Check(ctx); err != nil {
			components[p.Name] = CompStatus{Status: statusDown}
			switch {
			case p.Critical:
				overall = statusDown
			case overall == statusOK:
				overall = statusDegraded
			}
			continue
		}
		components[p.Name] = CompStatus{Status: statusOK, Latency: time.Since(start).String()}
	}
	return overall, components
}

func httpStatus(overall string) int {
	if overall == statusDown {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
