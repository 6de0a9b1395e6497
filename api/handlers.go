package api

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/npv-sim/sim"
)

// SimulationHandler serves simulation runs and preset listings.
type SimulationHandler struct {
	presets       map[string]sim.Parameters
	enforceRanges bool
	defaultSeed   int64
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(presets map[string]sim.Parameters, enforceRanges bool, defaultSeed int64) *SimulationHandler {
	if presets == nil {
		presets = map[string]sim.Parameters{}
	}
	return &SimulationHandler{
		presets:       presets,
		enforceRanges: enforceRanges,
		defaultSeed:   defaultSeed,
	}
}

func abortWithError(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorDetail{Code: code, Message: message, Details: details},
	})
}

// RunSimulation handles POST /api/v1/simulations
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}

	var params sim.Parameters
	switch {
	case req.Parameters != nil:
		params = *req.Parameters
	case req.Preset != "":
		p, ok := h.presets[req.Preset]
		if !ok {
			abortWithError(c, http.StatusNotFound, "UNKNOWN_PRESET", "no preset named "+req.Preset, nil)
			return
		}
		params = p
	default:
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", "parameters or preset is required", nil)
		return
	}

	if h.enforceRanges {
		var rangeErr *sim.RangeError
		if err := params.CheckRanges(); errors.As(err, &rangeErr) {
			abortWithError(c, http.StatusUnprocessableEntity, "OUT_OF_RANGE", err.Error(),
				map[string]interface{}{"violations": rangeErr.Violations})
			return
		}
	}

	seed := h.defaultSeed
	if req.Seed != nil {
		seed = *req.Seed
	}
	bins := req.Bins
	if bins == 0 {
		bins = sim.DefaultBins
	}
	if bins < 0 || bins > sim.MaxBins {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", sim.ErrInvalidBins.Error(), nil)
		return
	}

	start := time.Now()
	npvs, err := sim.RunSeeded(params, seed)
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "INVALID_SHAPE", err.Error(), nil)
		return
	}
	report, err := sim.NewReport(params, seed, npvs, bins)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}
	if req.IncludeSamples {
		report.Samples = npvs
	}

	id := uuid.NewString()
	logrus.WithFields(logrus.Fields{
		"id":          id,
		"simulations": params.SimulationCount,
		"years":       params.HorizonYears,
		"seed":        seed,
		"elapsed":     time.Since(start),
	}).Info("simulation complete")

	c.JSON(http.StatusOK, SimulationResponse{ID: id, Report: report})
}

// ListPresets handles GET /api/v1/presets
func (h *SimulationHandler) ListPresets(c *gin.Context) {
	names := make([]string, 0, len(h.presets))
	for name := range h.presets {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := PresetsResponse{Presets: make([]PresetInfo, 0, len(names))}
	for _, name := range names {
		resp.Presets = append(resp.Presets, PresetInfo{Name: name, Parameters: h.presets[name]})
	}
	c.JSON(http.StatusOK, resp)
}
