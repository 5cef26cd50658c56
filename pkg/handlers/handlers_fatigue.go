package handlers

import (
	"errors"
	"math"
	"net/http"

	"github.com/arnavshah/fatigue-risk-api/pkg/fatigue"
	"github.com/arnavshah/fatigue-risk-api/pkg/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeEngineError maps engine errors onto HTTP responses: input defects are
// 422 with the failing day and field, anything else is a 500.
func (h *Handler) writeEngineError(c *gin.Context, err error) {
	var verr *fatigue.ValidationError
	if errors.As(err, &verr) {
		resp := models.ErrorResponse{Error: err.Error(), Kind: verr.KindName(), Field: verr.Field}
		if !verr.Global {
			day := verr.Day
			resp.Day = &day
		}
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}
	h.Logger.Error("fatigue calculation failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "calculation failed"})
}

func (h *Handler) bindPattern(c *gin.Context, input *models.PatternInput) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return false
	}
	input.Params = h.Presets().Params(input.Params)
	return true
}

// Sequence handles POST /api/fatigue: the Risk Index per shift
func (h *Handler) Sequence(c *gin.Context) {
	var input models.PatternInput
	if !h.bindPattern(c, &input) {
		return
	}

	results, err := fatigue.CalculateSequence(input.Shifts, input.Params)
	if err != nil {
		h.writeEngineError(c, err)
		return
	}

	h.RecordUsage(c, len(input.Shifts), 1)
	c.JSON(http.StatusOK, models.SequenceResponse{Results: results, Summary: fatigue.Summarize(results)})
}

// Combined handles POST /api/fatigue/combined: Risk Index and Fatigue Index per shift
func (h *Handler) Combined(c *gin.Context) {
	var input models.PatternInput
	if !h.bindPattern(c, &input) {
		return
	}

	results, err := fatigue.CalculateCombinedSequence(input.Shifts, input.Params)
	if err != nil {
		h.writeEngineError(c, err)
		return
	}

	h.RecordUsage(c, len(input.Shifts), 1)
	c.JSON(http.StatusOK, models.CombinedResponse{Results: results, Summary: fatigue.SummarizeCombined(results)})
}

// WorstCase handles POST /api/fatigue/worst-case
func (h *Handler) WorstCase(c *gin.Context) {
	var input models.PatternInput
	if !h.bindPattern(c, &input) {
		return
	}

	results, err := fatigue.EvaluateWorstCaseCombined(input.Shifts, input.Params)
	if err != nil {
		h.writeEngineError(c, err)
		return
	}

	h.RecordUsage(c, len(input.Shifts), 1)
	c.JSON(http.StatusOK, models.CombinedResponse{Results: results, Summary: fatigue.SummarizeCombined(results)})
}

// Roles handles POST /api/fatigue/roles: one run per role preset
func (h *Handler) Roles(c *gin.Context) {
	var input models.RolesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	presets := h.Presets()
	params := presets.Params(input.Params)
	roles := input.Roles
	if len(roles) == 0 {
		roles = presets.Roles
	}

	results, err := fatigue.EvaluateRoles(input.Shifts, params, roles)
	if err != nil {
		h.writeEngineError(c, err)
		return
	}

	compliant := make([]string, 0, len(results))
	for _, r := range results {
		if r.IsCompliant {
			compliant = append(compliant, r.Role)
		}
	}

	h.RecordUsage(c, len(input.Shifts)*len(roles), len(roles))
	c.JSON(http.StatusOK, models.RolesResponse{Roles: results, Compliant: compliant})
}

// ListRoles handles GET /api/fatigue/roles
func (h *Handler) ListRoles(c *gin.Context) {
	presets := h.Presets()
	c.JSON(http.StatusOK, gin.H{"roles": presets.Roles, "defaults": presets.Defaults})
}

// Level handles GET /api/fatigue/level?value=1.05&scale=risk|fatigue&night=true
func (h *Handler) Level(c *gin.Context) {
	var q struct {
		Value *float64 `form:"value" binding:"required"`
		Scale string   `form:"scale"`
		Night bool     `form:"night"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if math.IsNaN(*q.Value) || math.IsInf(*q.Value, 0) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "value must be a finite number", Field: "value"})
		return
	}

	resp := models.LevelResponse{Value: *q.Value, Night: q.Night}
	switch q.Scale {
	case "", "risk":
		resp.Scale = "risk"
		resp.Level = fatigue.GetRiskLevel(*q.Value)
		resp.Thresholds = fatigue.RiskIndexThresholds()
	case "fatigue":
		resp.Scale = "fatigue"
		resp.Level = fatigue.GetFatigueLevel(*q.Value, q.Night)
		resp.Thresholds = fatigue.FatigueIndexThresholds(q.Night)
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "scale must be risk or fatigue", Field: "scale"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
