package middleware

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"fct/internal/api/responder"
)

// RecoveryMiddleware восстанавливается после паники. Паника с распознаваемой
// ошибкой даёт тот же ответ, что и c.Error, остальное превращается в 500.
// Дамп стека gin не пишется: нераспознанные паники логирует respondError.
func RecoveryMiddleware(r *responder.Responder) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", recovered)
		}
		respondError(c, r, err, "recovery")
	})
}
