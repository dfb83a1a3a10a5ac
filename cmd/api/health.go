package main

import (
	"net/http"

	"snowreg/internal/region"

	"github.com/gin-gonic/gin"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"` // Response message
}

// RegionResponse represents one forecast region
type RegionResponse struct {
	Id       int    `json:"id" example:"3022"`
	Name     string `json:"name" example:"Trollheimen"`
	Roof     int    `json:"roof" example:"1850"` // Highest elevation of the region, in meters
	Primary  bool   `json:"primary"`             // Forecast issued daily through the season
	Svalbard bool   `json:"svalbard"`
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}

// handleListRegions godoc
// @Summary List forecast regions
// @Description List every known avalanche forecast region with its metadata
// @Tags regions
// @Produce json
// @Success 200 {array} RegionResponse
// @Router /regions [get]
func (app *App) handleListRegions(c *gin.Context) {
	all := region.All()
	out := make([]RegionResponse, 0, len(all))
	for _, r := range all {
		primary := false
		for _, a := range region.ARegions {
			if a == r {
				primary = true
				break
			}
		}
		svalbard := false
		for _, s := range region.SvalbardRegions {
			if s == r {
				svalbard = true
				break
			}
		}
		out = append(out, RegionResponse{
			Id:       int(r),
			Name:     r.String(),
			Roof:     region.Roof(r),
			Primary:  primary,
			Svalbard: svalbard,
		})
	}
	c.JSON(http.StatusOK, out)
}
