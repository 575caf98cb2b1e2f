package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ExtractUintParam разбирает числовой сегмент пути и кладет его в контекст Gin.
// paramName — имя сегмента маршрута (например, "id" для /topics/:id),
// contextKey — ключ, по которому обработчики заберут значение через c.MustGet.
// Нечисловое или отрицательное значение обрывает запрос с кодом 400.
func ExtractUintParam(paramName, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(paramName)
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter '" + paramName + "' must be a positive integer"})
			c.Abort()
			return
		}
		// Обработчики ожидают uint, а не uint64
		c.Set(contextKey, uint(parsed))
		c.Next()
	}
}
