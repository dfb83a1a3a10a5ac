package main

import (
	"net/http"
	"time"

	"snowreg/internal/aps"

	"github.com/gin-gonic/gin"
)

// LevelResponse represents one elevation band of a weather day
type LevelResponse struct {
	Floor int `json:"floor" example:"0"`
	Roof  int `json:"roof" example:"700"` // 0 when the band is unbounded upwards
	// Percentile values per parameter, keyed by parameter name. Each
	// holds up to seven percentiles (0, 5, 25, 50, 75, 95, 100).
	Params map[string][]*float64 `json:"params"`
}

// WeatherDayResponse represents one day of regional mountain weather
type WeatherDayResponse struct {
	Date   string          `json:"date" example:"2021-03-14"`
	Levels []LevelResponse `json:"levels"`
}

func mapWeatherDay(d aps.Day) WeatherDayResponse {
	out := WeatherDayResponse{Date: string(d.Date)}
	for _, level := range d.Levels {
		if level.Empty() {
			continue
		}
		lr := LevelResponse{
			Floor:  level.Floor,
			Roof:   level.Roof,
			Params: map[string][]*float64{},
		}
		for _, param := range aps.Params {
			data := level.Data(param)
			if data.Empty() {
				continue
			}
			lr.Params[param.String()] = data.Percs[:]
		}
		out.Levels = append(out.Levels, lr)
	}
	return out
}

// handleGetWeather godoc
// @Summary Get mountain weather
// @Description Retrieve the gridded weather product for a region over a date range, grouped per day and elevation band
// @Tags weather
// @Produce json
// @Param region path int true "Forecast region id" example(3022)
// @Param from query string false "First date of the range (ISO)" example(2021-03-01)
// @Param to query string false "Last date of the range (ISO)" example(2021-03-14)
// @Success 200 {array} WeatherDayResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /weather/{region} [get]
func (app *App) handleGetWeather(c *gin.Context) {
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
	timeline, err := app.weatherService.GetTimeline(c.Request.Context(), reg, from, to)
	app.metrics.ObserveUpstream("aps", start, err)
	if err != nil {
		app.logger.Error("failed to get weather", "region", int(reg), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get weather"})
		return
	}

	out := []WeatherDayResponse{}
	for _, date := range timeline.Days.Keys() {
		day, _ := timeline.Days.Get(date)
		if day.Empty() {
			continue
		}
		out = append(out, mapWeatherDay(day))
	}
	c.JSON(http.StatusOK, out)
}

// handleGetWeatherCSV godoc
// @Summary Get mountain weather as CSV
// @Description Tabulate a region's weather product over a date range, one row per day and elevation band
// @Tags weather
// @Produce text/csv
// @Param region path int true "Forecast region id" example(3022)
// @Param from query string false "First date of the range (ISO)" example(2021-03-01)
// @Param to query string false "Last date of the range (ISO)" example(2021-03-14)
// @Param winddir query bool false "Include wind direction distributions"
// @Success 200 {string} string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /weather/{region}/weather.csv [get]
func (app *App) handleGetWeatherCSV(c *gin.Context) {
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
	opts := aps.FrameOptions{WithWindDir: c.Query("winddir") == "true"}

	start := time.Now()
	timeline, err := app.weatherService.GetTimeline(c.Request.Context(), reg, from, to)
	app.metrics.ObserveUpstream("aps", start, err)
	if err != nil {
		app.logger.Error("failed to get weather", "region", int(reg), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get weather"})
		return
	}

	f, err := timeline.Frame(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to tabulate weather"})
		return
	}
	c.Header("Content-Type", "text/csv")
	if err := f.WriteCSV(c.Writer); err != nil {
		app.logger.Error("failed to write csv", "error", err)
	}
}
