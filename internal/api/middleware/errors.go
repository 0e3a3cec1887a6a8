package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"fct/internal/api"
	"fct/internal/api/responder"
	"fct/internal/metrics"
)

const (
	ErrorCodeKey string = "error_code"
)

// ErrorMiddleware переводит ошибки, зарегистрированные обработчиком через
// c.Error, в JSON ответ. Если обработчик уже записал ответ, ничего не делает.
func ErrorMiddleware(r *responder.Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		respondError(c, r, c.Errors.Last().Err, "handler")
	}
}

func respondError(c *gin.Context, r *responder.Responder, err error, layer string) {
	if resp, ok := r.Respond(c, err); ok {
		log.Debug().
			Err(err).
			Str("request_id", c.GetString(RequestIDKey)).
			Str("layer", layer).
			Str("code", resp.Body.Code).
			Int("status", resp.Status).
			Msg("request failed")

		c.Set(ErrorCodeKey, resp.Body.Code)
		metrics.ErrorResponsesTotal.WithLabelValues(resp.Body.Code, strconv.Itoa(resp.Status)).Inc()
		return
	}

	// Fallback на internal error
	log.Error().
		Err(err).
		Str("request_id", c.GetString(RequestIDKey)).
		Str("layer", layer).
		Msg("unhandled error in HTTP request")

	c.Set(ErrorCodeKey, api.ErrCodeInternalError)
	metrics.UnhandledErrorsTotal.WithLabelValues(layer).Inc()
	c.AbortWithStatusJSON(http.StatusInternalServerError, api.InternalError)
}
