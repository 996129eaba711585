package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/xeptore/jamlist/catalog"
	"github.com/xeptore/jamlist/constant"
	"github.com/xeptore/jamlist/errutil"
	"github.com/xeptore/jamlist/log"
	"github.com/xeptore/jamlist/song"
)

type TrackLister interface {
	Tracks(ctx context.Context, genre string) ([]catalog.Track, error)
}

func handleMusic(tracks TrackLister, defaultGenre string, cacheMaxAge time.Duration, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		genre := c.Query("genre")
		if genre == "" {
			genre = defaultGenre
		}

		result, err := tracks.Tracks(c.Request.Context(), genre)
		if nil != err {
			logger.Error().Func(log.Flaw(err)).Str("genre", genre).Msg("Error fetching songs")
			writeFailure(c, errutil.Message(err))
			return
		}

		writeSuccess(c, song.FromTracks(result), cacheMaxAge)
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func handleHealth(c *gin.Context) {
	writeJSON(c, http.StatusOK, healthResponse{Status: "ok", Version: constant.Version})
}
