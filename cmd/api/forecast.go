package main

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"snowreg/internal/regobs"
	"snowreg/internal/region"
	"snowreg/internal/varsom"

	"github.com/gin-gonic/gin"
)

// DateRangeInput defines the shared from/to query parameters. Both
// default to today when omitted.
type DateRangeInput struct {
	From string `form:"from"` // First date of the range, ISO formatted
	To   string `form:"to"`   // Last date of the range, ISO formatted
}

func (in DateRangeInput) dates() (from, to regobs.Date, err error) {
	today := regobs.DateOf(time.Now())
	from, to = today, today
	if in.From != "" {
		if from, err = regobs.ParseDate(in.From); err != nil {
			return "", "", err
		}
	}
	if in.To != "" {
		if to, err = regobs.ParseDate(in.To); err != nil {
			return "", "", err
		}
	}
	return from, to, nil
}

func parseRegionParam(c *gin.Context) (region.SnowRegion, bool) {
	id, err := strconv.Atoi(c.Param("region"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "region must be an integer id"})
		return 0, false
	}
	reg := region.SnowRegion(id)
	if !reg.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown forecast region " + c.Param("region")})
		return 0, false
	}
	return reg, true
}

func parseRegionsQuery(c *gin.Context) ([]region.SnowRegion, bool) {
	raw := c.Query("regions")
	if raw == "" {
		return region.ARegions, true
	}
	var regions []region.SnowRegion
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || !region.SnowRegion(id).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown forecast region " + part})
			return nil, false
		}
		regions = append(regions, region.SnowRegion(id))
	}
	return regions, true
}

// ProblemResponse represents one avalanche problem of a forecast
type ProblemResponse struct {
	Type         string   `json:"type" example:"wind_slab"`
	Size         *int     `json:"size,omitempty" example:"2"`
	Sensitivity  *int     `json:"sensitivity,omitempty" example:"30"`
	Distribution *int     `json:"distribution,omitempty" example:"2"`
	ElevationMin *int     `json:"elevationMin,omitempty" example:"600"`
	ElevationMax *int     `json:"elevationMax,omitempty" example:"1850"`
	Expositions  []string `json:"expositions,omitempty" example:"N,NE,NW"`
}

// ForecastResponse represents one region's forecast for one day
type ForecastResponse struct {
	Region           int               `json:"region" example:"3022"`
	Date             string            `json:"date" example:"2021-03-14"`
	DangerLevel      int               `json:"dangerLevel" example:"3"`
	EmergencyWarning *bool             `json:"emergencyWarning,omitempty"`
	Problems         []ProblemResponse `json:"problems"`
}

func mapForecast(f varsom.Forecast) ForecastResponse {
	out := ForecastResponse{
		Region:           int(f.Region),
		Date:             string(f.Date),
		DangerLevel:      int(f.DangerLevel),
		EmergencyWarning: f.EmergencyWarning,
		Problems:         []ProblemResponse{},
	}
	roof := region.Roof(f.Region)
	for _, p := range f.Problems {
		if p.Type == nil {
			continue
		}
		pr := ProblemResponse{Type: p.Type.String()}
		if p.Size != nil {
			size := int(*p.Size)
			pr.Size = &size
		}
		if p.Sensitivity != nil {
			sensitivity := int(*p.Sensitivity)
			pr.Sensitivity = &sensitivity
		}
		if p.Distribution != nil {
			distribution := int(*p.Distribution)
			pr.Distribution = &distribution
		}
		pr.ElevationMin, pr.ElevationMax = p.ElevationBand(roof)
		if p.Expositions != nil {
			for _, d := range p.Expositions.Directions() {
				pr.Expositions = append(pr.Expositions, d.String())
			}
		}
		out.Problems = append(out.Problems, pr)
	}
	return out
}

// handleGetForecasts godoc
// @Summary Get avalanche forecasts
// @Description Retrieve the published avalanche forecasts for a region over a date range
// @Tags forecast
// @Produce json
// @Param region path int true "Forecast region id" example(3022)
// @Param from query string false "First date of the range (ISO)" example(2021-03-01)
// @Param to query string false "Last date of the range (ISO)" example(2021-03-14)
// @Success 200 {array} ForecastResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /forecast/{region} [get]
func (app *App) handleGetForecasts(c *gin.Context) {
	reg, ok := parseRegionParam(c)
	if !ok {
		return
	}
	var input DateRangeInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	from, to, err := input.dates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	forecasts, err := app.avalancheService.GetForecasts(c.Request.Context(), reg, from, to)
	app.metrics.ObserveUpstream("varsom", start, err)
	if err != nil {
		app.logger.Error("failed to get forecasts", "region", int(reg), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get forecasts"})
		return
	}

	out := make([]ForecastResponse, 0, len(forecasts))
	for _, f := range forecasts {
		out = append(out, mapForecast(f))
	}
	c.JSON(http.StatusOK, out)
}

// handleGetProblemsCSV godoc
// @Summary Get avalanche problems as CSV
// @Description Tabulate a region's avalanche problems over a date range, one row per day
// @Tags forecast
// @Produce text/csv
// @Param region path int true "Forecast region id" example(3022)
// @Param from query string false "First date of the range (ISO)" example(2021-03-01)
// @Param to query string false "Last date of the range (ISO)" example(2021-03-14)
// @Param priorities query bool false "Include problem priorities"
// @Success 200 {string} string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /forecast/{region}/problems.csv [get]
func (app *App) handleGetProblemsCSV(c *gin.Context) {
	reg, ok := parseRegionParam(c)
	if !ok {
		return
	}
	var input DateRangeInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	from, to, err := input.dates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	withPriorities := c.Query("priorities") == "true"

	start := time.Now()
	product, err := app.avalancheService.GetDangerLevels(c.Request.Context(), []region.SnowRegion{reg}, from, to)
	app.metrics.ObserveUpstream("varsom", start, err)
	if err != nil {
		app.logger.Error("failed to get forecasts", "region", int(reg), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get forecasts"})
		return
	}

	timeline, found := product.Regions.Get(reg)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no forecasts for region"})
		return
	}
	f, err := timeline.ProblemFrame(withPriorities)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to tabulate forecasts"})
		return
	}
	c.Header("Content-Type", "text/csv")
	if err := f.WriteCSV(c.Writer); err != nil {
		app.logger.Error("failed to write csv", "error", err)
	}
}

// handleGetDangerLevelsCSV godoc
// @Summary Get danger levels as CSV
// @Description Tabulate the day-by-day danger level of several regions
// @Tags forecast
// @Produce text/csv
// @Param regions query string false "Comma-separated region ids; defaults to all primary regions" example(3022,3023)
// @Param from query string false "First date of the range (ISO)" example(2021-03-01)
// @Param to query string false "Last date of the range (ISO)" example(2021-03-14)
// @Success 200 {string} string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /forecast/danger-levels.csv [get]
func (app *App) handleGetDangerLevelsCSV(c *gin.Context) {
	regions, ok := parseRegionsQuery(c)
	if !ok {
		return
	}
	var input DateRangeInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	from, to, err := input.dates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	product, err := app.avalancheService.GetDangerLevels(c.Request.Context(), regions, from, to)
	app.metrics.ObserveUpstream("varsom", start, err)
	if err != nil {
		app.logger.Error("failed to get danger levels", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get danger levels"})
		return
	}

	f, err := product.DangerLevelFrame()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to tabulate danger levels"})
		return
	}
	c.Header("Content-Type", "text/csv")
	if err := f.WriteCSV(c.Writer); err != nil {
		app.logger.Error("failed to write csv", "error", err)
	}
}
