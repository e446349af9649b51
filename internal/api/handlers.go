package api

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/in-tuned/emotion-engine/internal/domain"
	"github.com/in-tuned/emotion-engine/internal/engine"
	"github.com/in-tuned/emotion-engine/internal/expansion"
	"github.com/in-tuned/emotion-engine/internal/lexicon"
	"github.com/in-tuned/emotion-engine/internal/logging"
)

// Analyzer is the analysis entrypoint the handler depends on.
type Analyzer interface {
	Analyze(ctx context.Context, req engine.Request) (*domain.AnalysisResult, error)
	Snapshot() *lexicon.Snapshot
}

// Expander is the expansion surface the handler depends on. nil when the
// feature is disabled.
type Expander interface {
	Lookup(ctx context.Context, word, language string) (*domain.ExternalLexiconCandidate, error)
	ListCandidates(ctx context.Context, status domain.CandidateStatus, limit int) ([]domain.ExternalLexiconCandidate, error)
	Approve(ctx context.Context, id int64) (*domain.ExternalLexiconCandidate, error)
	Reject(ctx context.Context, id int64) (*domain.ExternalLexiconCandidate, error)
}

// Pinger reports backing-store health for the readiness probe.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler handles HTTP requests for the emotion engine API.
type Handler struct {
	analyzer Analyzer
	manager  *lexicon.Manager
	expander Expander
	db       Pinger
	logger   logging.Logger
}

// NewHandler creates a new API handler. expander and db may be nil when the
// corresponding backend is not configured.
func NewHandler(analyzer Analyzer, manager *lexicon.Manager, expander Expander, db Pinger, logger logging.Logger) *Handler {
	return &Handler{
		analyzer: analyzer,
		manager:  manager,
		expander: expander,
		db:       db,
		logger:   logger,
	}
}

// Analyze handles POST /api/v1/analyze.
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze request", logging.Err(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.analyzer.Analyze(c.Request.Context(), engine.Request{
		Text:       req.Text,
		LocaleHint: req.Language,
		RegionHint: req.Region,
	})
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrEmptyInput), errors.Is(err, engine.ErrInputTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("analysis failed", logging.Err(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		}
		return
	}

	c.JSON(http.StatusOK, toAnalysisResponse(result))
}

// ListEntries handles GET /api/v1/lexicon/:language.
func (h *Handler) ListEntries(c *gin.Context) {
	language := c.Param("language")
	entries := h.analyzer.Snapshot().Entries(language)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Phrase < entries[j].Phrase })

	resp := EntriesListResponse{Language: language, Total: len(entries)}
	resp.Entries = make([]EntryResponse, len(entries))
	for i, e := range entries {
		resp.Entries[i] = toEntryResponse(e)
	}
	c.JSON(http.StatusOK, resp)
}

// GetEntry handles GET /api/v1/lexicon/:language/entry?phrase=...
func (h *Handler) GetEntry(c *gin.Context) {
	language := c.Param("language")
	phrase := c.Query("phrase")
	if phrase == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phrase is required"})
		return
	}

	entry, ok := h.manager.Store().Get(language, phrase)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}
	c.JSON(http.StatusOK, toEntryResponse(entry))
}

// UpsertEntry handles PUT /api/v1/lexicon.
func (h *Handler) UpsertEntry(c *gin.Context) {
	var req UpsertEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	weights, err := vectorFromMap(req.Weights)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	confidence := req.Confidence
	if confidence == 0 {
		confidence = 1
	}

	entry := domain.LexiconEntry{
		Language:   req.Language,
		Phrase:     req.Phrase,
		Weights:    weights,
		Provenance: domain.ProvenanceAdmin,
		Confidence: confidence,
	}
	if err := h.manager.Upsert(c.Request.Context(), entry); err != nil {
		h.logger.Error("lexicon upsert failed",
			logging.String("language", req.Language),
			logging.String("phrase", req.Phrase),
			logging.Err(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toEntryResponse(entry))
}

// DeleteEntry handles DELETE /api/v1/lexicon/:language?phrase=...
func (h *Handler) DeleteEntry(c *gin.Context) {
	language := c.Param("language")
	phrase := c.Query("phrase")
	if phrase == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phrase is required"})
		return
	}

	if err := h.manager.Delete(c.Request.Context(), language, phrase); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ExpansionLookup handles POST /api/v1/expansion/lookup.
func (h *Handler) ExpansionLookup(c *gin.Context) {
	if h.expander == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "expansion is disabled"})
		return
	}

	var req LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cand, err := h.expander.Lookup(c.Request.Context(), req.Word, req.Language)
	if err != nil {
		switch {
		case errors.Is(err, expansion.ErrNoSignal), errors.Is(err, expansion.ErrLowConfidence):
			c.JSON(http.StatusOK, gin.H{"candidate": nil, "reason": err.Error()})
		default:
			h.logger.Error("expansion lookup failed",
				logging.String("word", req.Word),
				logging.Err(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "expansion lookup failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidate": toCandidateResponse(cand)})
}

// ListCandidates handles GET /api/v1/expansion/candidates?status=pending.
func (h *Handler) ListCandidates(c *gin.Context) {
	if h.expander == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "expansion is disabled"})
		return
	}

	status := domain.CandidateStatus(c.DefaultQuery("status", string(domain.CandidatePending)))
	switch status {
	case domain.CandidatePending, domain.CandidateAccepted, domain.CandidateRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	candidates, err := h.expander.ListCandidates(c.Request.Context(), status, limit)
	if err != nil {
		h.logger.Error("failed to list candidates", logging.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list candidates"})
		return
	}

	resp := CandidatesListResponse{Total: len(candidates)}
	resp.Candidates = make([]CandidateResponse, len(candidates))
	for i := range candidates {
		resp.Candidates[i] = toCandidateResponse(&candidates[i])
	}
	c.JSON(http.StatusOK, resp)
}

// ApproveCandidate handles POST /api/v1/expansion/candidates/:id/approve.
func (h *Handler) ApproveCandidate(c *gin.Context) {
	h.decideCandidate(c, true)
}

// RejectCandidate handles POST /api/v1/expansion/candidates/:id/reject.
func (h *Handler) RejectCandidate(c *gin.Context) {
	h.decideCandidate(c, false)
}

func (h *Handler) decideCandidate(c *gin.Context, approve bool) {
	if h.expander == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "expansion is disabled"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid candidate id"})
		return
	}

	var cand *domain.ExternalLexiconCandidate
	if approve {
		cand, err = h.expander.Approve(c.Request.Context(), id)
	} else {
		cand, err = h.expander.Reject(c.Request.Context(), id)
	}
	if err != nil {
		switch {
		case errors.Is(err, expansion.ErrCandidateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, expansion.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("candidate decision failed",
				logging.Int64("candidate_id", id),
				logging.Bool("approve", approve),
				logging.Err(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "candidate decision failed"})
		}
		return
	}

	c.JSON(http.StatusOK, toCandidateResponse(cand))
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	snap := h.analyzer.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"lexicon_version": snap.Version(),
		"lexicon_entries": snap.Size(),
	})
}

// ReadyCheck handles GET /ready. Readiness requires the lexicon to be loaded
// and, when configured, the database to answer a ping.
func (h *Handler) ReadyCheck(c *gin.Context) {
	if h.analyzer.Snapshot().Size() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "lexicon not loaded"})
		return
	}
	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
