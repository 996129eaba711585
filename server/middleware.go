package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/xeptore/jamlist/errutil"
	"github.com/xeptore/jamlist/log"
)

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.
			Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("query", c.Request.URL.RawQuery).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("Request handled")
	}
}

// recovery turns a panic in a later handler into the failure envelope.
func recovery(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if thing := recover(); nil != thing {
				logger.Error().Func(log.Panic(thing)).Str("path", c.Request.URL.Path).Msg("Recovered from panic while handling request")

				message := errutil.UnknownErrorMessage
				if err, ok := thing.(error); ok {
					message = errutil.Message(err)
				}
				writeFailure(c, message)
				c.Abort()
			}
		}()
		c.Next()
	}
}
