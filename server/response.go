package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/xeptore/jamlist/song"
)

const (
	contentTypeJSON = "application/json"
	failureError    = "Failed to fetch songs from API"
)

type successResponse struct {
	Success       bool        `json:"success"`
	Data          []song.Song `json:"data"`
	TotalDuration int64       `json:"total_duration"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func setCacheHeaders(c *gin.Context, maxAge time.Duration) {
	secs := strconv.FormatInt(int64(maxAge/time.Second), 10)
	c.Header("Cache-Control", "public, max-age="+secs+", s-maxage="+secs)
	c.Header("CDN-Cache-Control", "max-age="+secs)
	c.Header("Vercel-CDN-Cache-Control", "max-age="+secs)
}

func writeJSON(c *gin.Context, status int, v any) {
	b, err := json.Marshal(v)
	if nil != err {
		c.Data(http.StatusInternalServerError, contentTypeJSON, []byte(`{"success":false,"error":"`+failureError+`","message":"failed to encode response"}`))
		return
	}
	c.Data(status, contentTypeJSON, b)
}

func writeSuccess(c *gin.Context, songs []song.Song, maxAge time.Duration) {
	setCacheHeaders(c, maxAge)
	writeJSON(c, http.StatusOK, successResponse{
		Success:       true,
		Data:          songs,
		TotalDuration: song.TotalMinutes(songs),
	})
}

func writeFailure(c *gin.Context, message string) {
	writeJSON(c, http.StatusInternalServerError, failureResponse{
		Success: false,
		Error:   failureError,
		Message: message,
	})
}
