package ops

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"guesschar/internal/game"
)

// New builds the operational HTTP surface: a health probe and a
// read-only view of live sessions. Subjects never leave the process.
func New(games *game.Manager, version string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("dur", time.Since(start)).
			Msg("http")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "version": version, "time": time.Now().UTC()})
	})

	r.GET("/api/sessions", func(c *gin.Context) {
		sessions := games.Sessions()
		out := make([]gin.H, 0, len(sessions))
		for _, s := range sessions {
			out = append(out, gin.H{
				"id":        s.ID,
				"chatId":    s.ChatID,
				"state":     s.State,
				"createdAt": s.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, gin.H{"count": len(out), "sessions": out})
	})

	return r
}
