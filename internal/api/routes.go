package api

import (
	"github.com/gin-gonic/gin"

	"github.com/in-tuned/emotion-engine/internal/telemetry"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, tele *telemetry.Provider) {
	// Health, readiness and metrics
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)
	router.GET("/metrics", gin.WrapH(tele.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/analyze", handler.Analyze)

		// Lexicon curation endpoints
		lex := v1.Group("/lexicon")
		{
			lex.GET("/:language", handler.ListEntries)        // GET /api/v1/lexicon/:language
			lex.GET("/:language/entry", handler.GetEntry)     // GET /api/v1/lexicon/:language/entry?phrase=
			lex.PUT("", handler.UpsertEntry)                  // PUT /api/v1/lexicon
			lex.DELETE("/:language", handler.DeleteEntry)     // DELETE /api/v1/lexicon/:language?phrase=
		}

		// External expansion endpoints
		exp := v1.Group("/expansion")
		{
			exp.POST("/lookup", handler.ExpansionLookup)                     // POST /api/v1/expansion/lookup
			exp.GET("/candidates", handler.ListCandidates)                   // GET /api/v1/expansion/candidates
			exp.POST("/candidates/:id/approve", handler.ApproveCandidate)    // POST /api/v1/expansion/candidates/:id/approve
			exp.POST("/candidates/:id/reject", handler.RejectCandidate)      // POST /api/v1/expansion/candidates/:id/reject
		}
	}
}
