package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractUintParam_ValidValue(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var got uint
	router.GET("/topics/:id", ExtractUintParam("id", "topicID"), func(c *gin.Context) {
		got = c.MustGet("topicID").(uint)
		c.Status(http.StatusOK)
	})

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/topics/42", nil)
	router.ServeHTTP(w, req)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), got)
}

func TestExtractUintParam_RejectsNonNumeric(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlerCalled := false
	router.GET("/topics/:id", ExtractUintParam("id", "topicID"), func(c *gin.Context) {
		handlerCalled = true
	})

	for _, param := range []string{"abc", "-1", "1.5"} {
		// Act
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/topics/"+param, nil)
		router.ServeHTTP(w, req)

		// Assert: запрос обрывается до обработчика
		assert.Equal(t, http.StatusBadRequest, w.Code, "параметр %q должен отклоняться", param)
		assert.False(t, handlerCalled)
	}
}
