package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"labreserve-service/internal/schedule"
)

// GET /
func (a *App) HealthHandler(c *gin.Context) {
	c.String(http.StatusOK, "lab reservation service up")
}

// POST /validate-intervals
func (a *App) ValidateIntervalsHandler(c *gin.Context) {
	var req validateIntervalsReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := schedule.ParseDate(req.SelectedDate, a.Location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid selectedDate, want YYYY-MM-DD"})
		return
	}

	free, err := a.Schedule.Availability(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availableIntervals": free})
}

// POST /register-reservation
func (a *App) RegisterReservationHandler(c *gin.Context) {
	var req registerReservationReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := schedule.ParseDate(req.ReservationDate, a.Location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservationDate, want YYYY-MM-DD"})
		return
	}

	slot, ok := a.Catalog.Find(req.TimeSlotID)
	if !ok {
		a.Logger.Warn("reservation rejected",
			zap.Int("timeSlotId", req.TimeSlotID),
			zap.String("date", req.ReservationDate))
		c.JSON(http.StatusBadRequest, gin.H{"error": schedule.ErrUnknownSlot.Error()})
		return
	}

	submitted := req.CurrentDatetime
	if submitted == "" {
		submitted = time.Now().In(a.Location).Format(time.RFC3339)
	}

	r := schedule.Reservation{
		Teacher:      req.TeacherName,
		Program:      req.Program,
		Subject:      req.Subject,
		Date:         date,
		Slot:         slot,
		Observations: req.Observations,
		SubmittedAt:  submitted,
	}

	if err := a.Schedule.Reserve(c.Request.Context(), r); err != nil {
		if errors.Is(err, schedule.ErrSlotTaken) {
			a.Logger.Warn("slot already reserved",
				zap.Int("timeSlotId", slot.ID),
				zap.String("date", req.ReservationDate))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "reservation saved to the calendar and the log"})
}
