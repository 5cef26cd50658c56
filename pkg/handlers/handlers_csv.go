package handlers

import (
	"net/http"
	"strings"

	"github.com/arnavshah/fatigue-risk-api/pkg/fatigue"
	"github.com/arnavshah/fatigue-risk-api/pkg/models"
	"github.com/gin-gonic/gin"
)

// FatigueCSV handles POST /api/fatigue/csv with a shifts_file upload.
// ?worst_case=true scores the pattern at maximum demand.
func (h *Handler) FatigueCSV(c *gin.Context) {
	shiftsFile, _ := c.FormFile("shifts_file")
	if shiftsFile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shifts_file is required"})
		return
	}

	f, err := shiftsFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open shifts file"})
		return
	}
	defer f.Close()

	shifts, err := models.ParseShiftsCSV(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := h.Presets().Params(nil)
	var results []fatigue.CombinedFatigueResult
	if c.Query("worst_case") == "true" {
		results, err = fatigue.EvaluateWorstCaseCombined(shifts, params)
	} else {
		results, err = fatigue.CalculateCombinedSequence(shifts, params)
	}
	if err != nil {
		h.writeEngineError(c, err)
		return
	}

	h.RecordUsage(c, len(shifts), 1)

	var out strings.Builder
	if err := models.WriteResultsCSV(&out, results); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write results"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"csv": out.String(), "summary": fatigue.SummarizeCombined(results)})
}
