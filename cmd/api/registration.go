package main

import (
	"errors"
	"net/http"
	"time"

	"snowreg/internal/regobs"

	"github.com/gin-gonic/gin"
)

// handleSubmitRegistration godoc
// @Summary Submit a snow registration
// @Description Submit a snow registration to the observation service using the configured credentials
// @Tags registration
// @Accept json
// @Produce json
// @Param registration body object true "Registration in observation service wire format"
// @Success 201 {object} object "The stored registration as the service rendered it"
// @Failure 400 {object} object "Invalid or empty registration"
// @Failure 502 {object} object "Observation service error"
// @Failure 503 {object} object "No credentials configured"
// @Router /registration [post]
func (app *App) handleSubmitRegistration(c *gin.Context) {
	if app.regobs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "observation service credentials not configured"})
		return
	}

	var registration regobs.SnowRegistration
	if err := c.ShouldBindJSON(&registration); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration: " + err.Error()})
		return
	}

	app.submitMu.Lock()
	defer app.submitMu.Unlock()

	ctx := c.Request.Context()
	if !app.regobs.Authenticated() {
		r := app.cfg.Regobs
		if err := app.regobs.Authenticate(ctx, r.Username, r.Password, r.ClientID, r.AppToken); err != nil {
			app.logger.Error("observation service authentication failed", "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "observation service authentication failed"})
			return
		}
	}

	start := time.Now()
	stored, err := app.regobs.Submit(ctx, &registration)
	app.metrics.ObserveUpstream("regobs", start, err)
	if err != nil {
		if errors.Is(err, regobs.ErrNoObservation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "registration carries no observations"})
			return
		}
		app.logger.Error("failed to submit registration", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to submit registration"})
		return
	}
	c.JSON(http.StatusCreated, stored)
}
