package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"cerberus/internal/audit"
	"cerberus/internal/backend"
	"cerberus/internal/config"
	"cerberus/internal/models"
	"cerberus/internal/sanitize"
	"cerberus/internal/session"
	"cerberus/internal/submit"
	"cerberus/internal/summary"
)

// App wires the configured services together: backend client, auth
// session, local audit log and the optional decision summarizer.
type App struct {
	Config     *config.Config
	Backend    *backend.Client
	Session    *session.Session
	AuditStore *audit.Store
	Summarizer summary.Summarizer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	a := &App{Config: cfg}
	a.Backend = backend.New(cfg.Backend.BaseURL, cfg.BackendTimeout())

	// One credential acquisition at startup. Failure degrades to
	// unauthenticated submission, it does not abort initialization.
	a.Session = session.New(a.Backend, cfg.Auth.Username, cfg.Auth.Password)
	a.Session.Acquire(ctx)

	store, err := audit.Open(cfg.Audit.Path)
	if err != nil {
		return nil, fmt.Errorf("init audit store: %w", err)
	}
	a.AuditStore = store

	if err := a.initSummarizer(); err != nil {
		a.Close()
		return nil, err
	}

	log.Debug("Application initialization complete.")
	return a, nil
}

func (a *App) initSummarizer() error {
	cfg := a.Config
	if !cfg.Summary.Enabled {
		a.Summarizer = summary.NewNoopSummarizer()
		return nil
	}
	switch cfg.Summary.Provider {
	case "openai":
		a.Summarizer = summary.NewOpenAISummarizer(cfg.Summary.OpenaiApiKey, cfg.Summary.Model)
	case "gemini":
		s, err := summary.NewGeminiSummarizer(cfg.Summary.GeminiApiKey, cfg.Summary.Model)
		if err != nil {
			return fmt.Errorf("init gemini summarizer: %w", err)
		}
		a.Summarizer = s
	default:
		log.Warnf("Unsupported summary provider '%s', summaries disabled.", cfg.Summary.Provider)
		a.Summarizer = summary.NewNoopSummarizer()
	}
	return nil
}

func (a *App) Close() {
	if a.AuditStore != nil {
		a.AuditStore.Close()
	}
	if closer, ok := a.Summarizer.(interface{ Close() error }); ok && closer != nil {
		if err := closer.Close(); err != nil {
			log.Warnf("Error closing summarizer: %v", err)
		}
	}
}

// NewController creates a submission controller bound to this app's
// backend and session. One controller per form instance.
func (a *App) NewController(notify submit.StatusFunc) *submit.Controller {
	return submit.New(a.Backend, a.Session, notify)
}

// Moderate runs one full submission cycle: sanitize, submit, compose,
// enrich with an optional summary, and record the decision locally.
// Summary and audit failures are logged and absorbed; only submission
// failures propagate.
func (a *App) Moderate(ctx context.Context, req *models.ModerationRequest, notify submit.StatusFunc) (*submit.Result, error) {
	if a.Config.Sanitize.Enabled {
		req.Content = sanitize.Clean(req.Content)
	}

	ctl := a.NewController(notify)
	res, err := ctl.Submit(ctx, req)
	if err != nil {
		return nil, err
	}

	a.enrichSummary(ctx, res)
	a.recordDecision(ctx, req, res)
	return res, nil
}

func (a *App) enrichSummary(ctx context.Context, res *submit.Result) {
	if _, ok := a.Summarizer.(*summary.NoopSummarizer); ok {
		return
	}
	decision := summary.NewDecision(res.Presentation.Verdict, res.Presentation.Actions, res.Response.Classification)
	text, err := a.Summarizer.Summarize(ctx, decision)
	if err != nil {
		log.Warnf("Decision summary unavailable: %v", err)
		return
	}
	res.Presentation.Summary = text
}

func (a *App) recordDecision(ctx context.Context, req *models.ModerationRequest, res *submit.Result) {
	rec := &models.AuditRecord{
		AuditID:        res.Presentation.AuditID,
		UserID:         req.UserID,
		ContentPreview: contentPreview(req),
		ContentType:    contentType(req),
		RiskScore:      res.Presentation.Verdict.Score,
		RiskLevel:      res.Presentation.Verdict.Level,
		Recommendation: res.Presentation.Verdict.Recommendation,
		Actions:        res.Presentation.Actions,
	}
	if res.Presentation.Summary != "" {
		rec.Summary = &res.Presentation.Summary
	}
	if err := a.AuditStore.Record(ctx, rec); err != nil {
		log.Warnf("Failed to record decision locally: %v", err)
	}
}

func contentType(req *models.ModerationRequest) string {
	if req.HasImage() {
		return "image"
	}
	return "text"
}

func contentPreview(req *models.ModerationRequest) string {
	if req.HasImage() && req.Content == "" {
		return "[Image Content]"
	}
	const max = 100
	runes := []rune(req.Content)
	if len(runes) <= max {
		return req.Content
	}
	return string(runes[:max]) + "..."
}
