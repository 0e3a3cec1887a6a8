package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fct/internal/domain"
)

// Health сообщает, что сервис принимает запросы
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NoRoute отвечает NOT_FOUND для неизвестных маршрутов
func (h *Handler) NoRoute(c *gin.Context) {
	_ = c.Error(domain.NotFoundf("route %s %s not found", c.Request.Method, c.Request.URL.Path))
}
