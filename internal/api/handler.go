package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/nkarpenko/cargohold/internal/manifest"
	"github.com/nkarpenko/cargohold/internal/packing"
	"github.com/nkarpenko/cargohold/internal/report"
	"github.com/nkarpenko/cargohold/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// maxUnitsPerRequest caps the expanded unit count of one pack request. The
// placement search is O(n^2) per unit, so unbounded requests would let a
// single call monopolise the server.
const maxUnitsPerRequest = 1000

// Handler wires packer and storage dependencies into HTTP handlers.
type Handler struct {
	packer  packing.Packer
	storage storage.Storage

	clock func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(packer packing.Packer, store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		packer:  packer,
		storage: store,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetContainer(w http.ResponseWriter, r *http.Request) {
	_ = r
	spec, err := h.storage.GetContainerSpec()
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, containerResponse{Container: containerPayloadFrom(spec)})
}

func (h *Handler) handlePutContainer(w http.ResponseWriter, r *http.Request) {
	var req containerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	spec := storage.ContainerSpec{Length: req.Length, Width: req.Width, Height: req.Height}
	if err := h.storage.SetContainerSpec(spec); err != nil {
		if errors.Is(err, storage.ErrInvalidContainerSpec) {
			writeError(w, http.StatusBadRequest, "Invalid container", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, containerResponse{
		Container: containerPayloadFrom(spec),
		Message:   "Container updated successfully",
	})
}

func (h *Handler) handlePack(w http.ResponseWriter, r *http.Request) {
	var req packRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}
	if len(req.Cargo) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid request", "cargo must contain at least one entry")
		return
	}

	spec, err := h.resolveSpec(req.Container)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	container, err := packing.NewContainer(spec.Length, spec.Width, spec.Height)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid container", err.Error())
		return
	}

	units, err := manifest.Expand(cargoFromPayload(req.Cargo))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid cargo", err.Error())
		return
	}
	if len(units) > maxUnitsPerRequest {
		writeError(w, http.StatusBadRequest, "Too many units",
			"expanded cargo exceeds the per-request unit limit")
		return
	}

	start := time.Now()
	result := h.packer.Pack(container, units)

	fillerName := ""
	fillerCount := 0
	if req.Filler != nil {
		filler, ferr := packing.NewItem(req.Filler.Name, req.Filler.Name, req.Filler.Length, req.Filler.Width, req.Filler.Height, 1)
		if ferr != nil {
			writeError(w, http.StatusBadRequest, "Invalid filler", ferr.Error())
			return
		}
		fillerName = filler.Name
		fillerCount = packing.MaxAdditional(container, filler)
	}
	elapsed := time.Since(start)

	summary := report.Build(container, result.Rejected, fillerName, fillerCount)
	plan := storage.Plan{
		Spec:      spec,
		Summary:   summary,
		CreatedAt: h.clock(),
	}
	if err := h.storage.SetPlan(plan); err != nil {
		writeInternalError(w, err)
		return
	}

	resp := planResponseFrom(plan)
	resp.CalculationTimeMs = elapsed.Milliseconds()
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	_ = r
	plan, err := h.storage.GetPlan()
	if err != nil {
		if errors.Is(err, storage.ErrNoPlan) {
			writeError(w, http.StatusNotFound, "No plan", "no load plan has been computed yet")
			return
		}
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, planResponseFrom(plan))
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	_ = r
	plan, err := h.storage.GetPlan()
	if err != nil {
		if errors.Is(err, storage.ErrNoPlan) {
			writeError(w, http.StatusNotFound, "No plan", "no load plan has been computed yet")
			return
		}
		writeInternalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := plan.Summary.WriteHTML(w, report.HTMLOptions{ChartHref: "/api/report/chart"}); err != nil {
		writeInternalError(w, err)
	}
}

func (h *Handler) handleReportChart(w http.ResponseWriter, r *http.Request) {
	_ = r
	plan, err := h.storage.GetPlan()
	if err != nil {
		if errors.Is(err, storage.ErrNoPlan) {
			writeError(w, http.StatusNotFound, "No plan", "no load plan has been computed yet")
			return
		}
		writeInternalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := plan.Summary.WriteChart(w); err != nil {
		writeInternalError(w, err)
	}
}

// resolveSpec prefers the request's container override over the stored spec.
func (h *Handler) resolveSpec(override *containerPayload) (storage.ContainerSpec, error) {
	if override != nil {
		return storage.ContainerSpec{
			Length: override.Length,
			Width:  override.Width,
			Height: override.Height,
		}, nil
	}
	return h.storage.GetContainerSpec()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type containerPayload struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func containerPayloadFrom(spec storage.ContainerSpec) containerPayload {
	return containerPayload{Length: spec.Length, Width: spec.Width, Height: spec.Height}
}

type containerRequest struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type containerResponse struct {
	Container containerPayload `json:"container"`
	Message   string           `json:"message,omitempty"`
}

type cargoPayload struct {
	Name     string  `json:"name"`
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Quantity int     `json:"quantity"`
}

func cargoFromPayload(payload []cargoPayload) []manifest.Cargo {
	cargo := make([]manifest.Cargo, 0, len(payload))
	for _, p := range payload {
		quantity := p.Quantity
		if quantity == 0 {
			quantity = 1
		}
		cargo = append(cargo, manifest.Cargo{
			Name:     p.Name,
			Length:   p.Length,
			Width:    p.Width,
			Height:   p.Height,
			Quantity: quantity,
		})
	}
	return cargo
}

type packRequest struct {
	Container *containerPayload `json:"container,omitempty"`
	Cargo     []cargoPayload    `json:"cargo"`
	Filler    *cargoPayload     `json:"filler,omitempty"`
}

type placementPayload struct {
	Name   string  `json:"name"`
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Volume float64 `json:"volume"`
}

type cargoStatsPayload struct {
	Name   string  `json:"name"`
	Count  int     `json:"count"`
	Volume float64 `json:"volume"`
	Share  float64 `json:"share"`
}

type rejectedPayload struct {
	Name   string  `json:"name"`
	ID     string  `json:"id"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type fillerPayload struct {
	Name   string  `json:"name"`
	Count  int     `json:"count"`
	Volume float64 `json:"volume"`
}

type planResponse struct {
	Container         containerPayload    `json:"container"`
	ContainerVolume   float64             `json:"containerVolume"`
	UsedVolume        float64             `json:"usedVolume"`
	AvailableVolume   float64             `json:"availableVolume"`
	Utilization       float64             `json:"utilization"`
	Cargo             []cargoStatsPayload `json:"cargo"`
	Placements        []placementPayload  `json:"placements"`
	Rejected          []rejectedPayload   `json:"rejected"`
	Filler            *fillerPayload      `json:"filler,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
	CalculationTimeMs int64               `json:"calculationTimeMs,omitempty"`
}

func planResponseFrom(plan storage.Plan) planResponse {
	s := plan.Summary
	resp := planResponse{
		Container:       containerPayloadFrom(plan.Spec),
		ContainerVolume: s.ContainerVolume,
		UsedVolume:      s.UsedVolume,
		AvailableVolume: s.AvailableVolume,
		Utilization:     s.Utilization,
		Cargo:           make([]cargoStatsPayload, 0, len(s.Cargo)),
		Placements:      []placementPayload{},
		Rejected:        make([]rejectedPayload, 0, len(s.Rejected)),
		CreatedAt:       plan.CreatedAt,
	}

	for _, c := range s.Cargo {
		resp.Cargo = append(resp.Cargo, cargoStatsPayload{
			Name:   c.Name,
			Count:  c.Count,
			Volume: c.Volume,
			Share:  c.Share,
		})
		for _, p := range c.Placements {
			resp.Placements = append(resp.Placements, placementPayload{
				Name:   p.ItemName,
				ID:     p.ItemID,
				X:      p.X,
				Y:      p.Y,
				Z:      p.Z,
				Length: p.Length,
				Width:  p.Width,
				Height: p.Height,
				Volume: p.Volume(),
			})
		}
	}

	for _, item := range s.Rejected {
		resp.Rejected = append(resp.Rejected, rejectedPayload{
			Name:   item.Name,
			ID:     item.ID,
			Length: item.Length,
			Width:  item.Width,
			Height: item.Height,
		})
	}

	if s.FillerName != "" {
		resp.Filler = &fillerPayload{
			Name:   s.FillerName,
			Count:  s.FillerCount,
			Volume: s.FillerVolume,
		}
	}

	return resp
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
