// Package api provides the REST API server for music-types
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/max-kay/music-types/pkg/harmony"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Music Types API
// @version 1.0
// @description API for pitch and interval arithmetic in Western music theory
// @host localhost:8080
// @BasePath /api/v1

// PitchResponse is the JSON view of a parsed pitch.
type PitchResponse struct {
	Name       string           `json:"name"`
	Letter     string           `json:"letter"`
	Accidental int              `json:"accidental"`
	Octave     int              `json:"octave"`
	Steps      harmony.StepPair `json:"steps"`
	Frequency  float64          `json:"frequency"`
	MIDI       *uint8           `json:"midi,omitempty"`
}

// IntervalResponse is the JSON view of a parsed interval.
type IntervalResponse struct {
	Name      string           `json:"name"`
	Quality   string           `json:"quality"`
	Number    int              `json:"number"`
	Steps     harmony.StepPair `json:"steps"`
	Semitones int              `json:"semitones"`
}

type parseRequest struct {
	Text string `json:"text" binding:"required"`
}

type transposeRequest struct {
	Pitch    string `json:"pitch" binding:"required"`
	Interval string `json:"interval" binding:"required"`
}

type distanceRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	return Router().Run(fmt.Sprintf(":%d", port))
}

// Router builds the gin engine with all routes mounted.
func Router() *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.POST("/parse/pitch", handleParsePitch)
		v1.POST("/parse/interval", handleParseInterval)
		v1.POST("/transpose", handleTranspose)
		v1.POST("/distance", handleDistance)
		v1.GET("/intervals", listIntervals)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "music-types",
	})
}

// handleParsePitch godoc
// @Summary Parse a pitch name
// @Description Parses scientific pitch notation such as "C4", "F#3" or "Bbb5"
// @Tags parse
// @Accept json
// @Produce json
// @Param request body parseRequest true "Pitch text"
// @Success 200 {object} PitchResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/parse/pitch [post]
func handleParsePitch(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := harmony.ParsePitch(req.Text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pitchResponse(p))
}

// handleParseInterval godoc
// @Summary Parse an interval name
// @Description Parses interval names such as "Major3", "Perfect5" or "-Minor13"
// @Tags parse
// @Accept json
// @Produce json
// @Param request body parseRequest true "Interval text"
// @Success 200 {object} IntervalResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/parse/interval [post]
func handleParseInterval(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	i, err := harmony.ParseInterval(req.Text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, intervalResponse(i))
}

// handleTranspose godoc
// @Summary Transpose a pitch by an interval
// @Description Applies an interval to a pitch and returns the resulting pitch
// @Tags arithmetic
// @Accept json
// @Produce json
// @Param request body transposeRequest true "Pitch and interval"
// @Success 200 {object} PitchResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/transpose [post]
func handleTranspose(c *gin.Context) {
	var req transposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := harmony.ParsePitch(req.Pitch)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	i, err := harmony.ParseInterval(req.Interval)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pitchResponse(p.Transpose(i)))
}

// handleDistance godoc
// @Summary Interval between two pitches
// @Description Returns the interval from one pitch to another
// @Tags arithmetic
// @Accept json
// @Produce json
// @Param request body distanceRequest true "Start and end pitch"
// @Success 200 {object} IntervalResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/distance [post]
func handleDistance(c *gin.Context) {
	var req distanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	from, err := harmony.ParsePitch(req.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := harmony.ParsePitch(req.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, intervalResponse(harmony.Between(from, to)))
}

// listIntervals godoc
// @Summary List common intervals
// @Description Returns the named intervals within one octave
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]IntervalResponse
// @Router /api/v1/intervals [get]
func listIntervals(c *gin.Context) {
	common := []harmony.Interval{
		harmony.Unison,
		harmony.MinorSecond, harmony.MajorSecond,
		harmony.MinorThird, harmony.MajorThird,
		harmony.PerfectFourth, harmony.AugmentedFourth,
		harmony.DiminishedFifth, harmony.PerfectFifth,
		harmony.MinorSixth, harmony.MajorSixth,
		harmony.MinorSeventh, harmony.MajorSeventh,
		harmony.Octave,
	}
	out := make([]IntervalResponse, len(common))
	for n, i := range common {
		out[n] = intervalResponse(i)
	}
	c.JSON(http.StatusOK, gin.H{"intervals": out})
}

func pitchResponse(p harmony.Pitch) PitchResponse {
	letter, accidental, octave := p.Decompose()
	resp := PitchResponse{
		Name:       p.String(),
		Letter:     letter.String(),
		Accidental: int(accidental),
		Octave:     octave,
		Steps:      p.Steps(),
		Frequency:  p.Frequency(),
	}
	if key, ok := p.Chromatic().MIDI(); ok {
		resp.MIDI = &key
	}
	return resp
}

func intervalResponse(i harmony.Interval) IntervalResponse {
	return IntervalResponse{
		Name:      i.String(),
		Quality:   i.Quality().String(),
		Number:    i.Number(),
		Steps:     i.Steps(),
		Semitones: int(i.Chromatic()),
	}
}
