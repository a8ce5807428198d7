package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Desesbraker/Buchonapp/internal/storage"
)

// Health reports the active backend mode and, in sync mode, whether the
// shared backend still answers.
func Health(st *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		backend := "ok"
		if st.Ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
			defer cancel()
			if err := st.Ping(ctx); err != nil {
				backend = "error"
				status = http.StatusServiceUnavailable
			}
		}
		c.JSON(status, gin.H{
			"ok":      status == http.StatusOK,
			"modo":    st.Modo,
			"backend": backend,
		})
	}
}
