// internal/controller/call_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/twilio/twilio-go/twiml"
	"go.uber.org/zap"

	appErrors "github.com/duescall/duescall-backend/internal/errors"
	"github.com/duescall/duescall-backend/internal/model"
	"github.com/duescall/duescall-backend/internal/service"
	"github.com/duescall/duescall-backend/internal/web"
)

// scriptLanguage is the TTS voice Twilio uses for the collection script.
const scriptLanguage = "en-IN"

type CallController struct {
	DispatchService *service.DispatchService
	ScriptService   *service.ScriptService
	Logger          *zap.Logger

	startedAt time.Time
}

func NewCallController(dispatch *service.DispatchService, script *service.ScriptService, logger *zap.Logger) *CallController {
	return &CallController{
		DispatchService: dispatch,
		ScriptService:   script,
		Logger:          logger,
		startedAt:       time.Now(),
	}
}

// Index serves the operator upload form.
func (c *CallController) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(web.IndexHTML)
}

// Upload ingests the CSV and dispatches one call per row.
func (c *CallController) Upload(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, appErrors.NewMissingFile())
		return
	}
	defer file.Close()

	records, err := service.ParseCustomers(file)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := c.DispatchService.Dispatch(records, requestBaseURL(r))
	if err != nil {
		writeError(w, err)
		return
	}

	c.Logger.Info("batch dispatched",
		zap.String("batch_id", result.BatchID),
		zap.Int("count", result.Count),
		zap.Bool("dry_run", c.DispatchService.Cfg.DryRun))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":       true,
		"count":    result.Count,
		"batch_id": result.BatchID,
		"placed":   result.Placed,
	})
}

// Voice is the provider callback: it rebuilds the record from the echoed
// query parameters and answers with the TwiML to speak. Stateless by design.
func (c *CallController) Voice(w http.ResponseWriter, r *http.Request) {
	rec := model.RecordFromValues(r.FormValue)
	script := c.ScriptService.BuildScript(rec)

	doc, err := twiml.Voice([]twiml.Element{
		&twiml.VoiceSay{Message: script, Language: scriptLanguage},
	})
	if err != nil {
		http.Error(w, "failed to render voice response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Write([]byte(doc))
}

// Health reports liveness plus the dispatch mode.
func (c *CallController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"uptime":  time.Since(c.startedAt).Round(time.Second).String(),
		"dry_run": c.DispatchService.Cfg.DryRun,
	})
}

// requestBaseURL reconstructs the URL the provider must call back on, from
// the inbound request itself (the service may sit behind a TLS proxy).
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var missingFile *appErrors.ErrMissingFile
	var emptyCSV *appErrors.ErrEmptyCSV
	if errors.As(err, &missingFile) || errors.As(err, &emptyCSV) {
		status = http.StatusBadRequest
	}

	writeJSON(w, status, map[string]interface{}{
		"ok":    false,
		"error": err.Error(),
	})
}
