package handlers

import (
	"errors"
	"net/http"

	"github.com/arnavshah/fatigue-risk-api/pkg/fatigue"
	"github.com/arnavshah/fatigue-risk-api/pkg/models"
	"github.com/gin-gonic/gin"
)

// ValidateInput checks a pattern without scoring it
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.PatternInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if len(input.Shifts) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one shift is required",
		})
		return
	}

	normalized, err := fatigue.Normalize(input.Shifts, h.Presets().Params(input.Params))
	if err != nil {
		resp := gin.H{"valid": false, "error": err.Error()}
		var verr *fatigue.ValidationError
		if errors.As(err, &verr) {
			resp["kind"] = verr.KindName()
			resp["field"] = verr.Field
			if !verr.Global {
				resp["day"] = verr.Day
			}
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	nights := 0
	hours := 0.0
	for _, n := range normalized {
		if n.IsNight {
			nights++
		}
		hours += n.DutyLength
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"shift_count": len(normalized),
			"night_count": nights,
			"duty_hours":  hours,
			"first_day":   normalized[0].Day,
			"last_day":    normalized[len(normalized)-1].Day,
		},
	})
}
