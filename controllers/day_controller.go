// controllers/day_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/shreshthco18-lgtm/calorie-tracker/services"
	"github.com/shreshthco18-lgtm/calorie-tracker/utils"
)

type DayController struct {
	Ledger *services.LedgerService
}

func NewDayController(svc *services.LedgerService) *DayController {
	return &DayController{Ledger: svc}
}

// ListDays returns every recorded day, most recent first.
func (d *DayController) ListDays(c *gin.Context) {
	days, err := d.Ledger.ListDays(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("failed to list day records")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load day records"})
		return
	}
	c.JSON(http.StatusOK, days)
}

// AddMeal adds one meal's calories and protein to the record for a day.
func (d *DayController) AddMeal(c *gin.Context) {
	var body struct {
		Calories *float64 `json:"calories"`
		Protein  *float64 `json:"protein"`
		Date     string   `json:"date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Calories == nil || body.Protein == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "calories, protein and date are required"})
		return
	}
	if !utils.ValidDay(body.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be a valid YYYY-MM-DD date"})
		return
	}

	rec, err := d.Ledger.AddMeal(c.Request.Context(), body.Date, *body.Calories, *body.Protein)
	if err != nil {
		log.WithError(err).WithField("date", body.Date).Error("failed to add meal")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add meal"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ResetDay zeroes the totals for a day, creating the record if needed.
func (d *DayController) ResetDay(c *gin.Context) {
	var body struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !utils.ValidDay(body.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be a valid YYYY-MM-DD date"})
		return
	}

	rec, err := d.Ledger.ResetDay(c.Request.Context(), body.Date)
	if err != nil {
		log.WithError(err).WithField("date", body.Date).Error("failed to reset day")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset day"})
		return
	}
	c.JSON(http.StatusOK, rec)
}
