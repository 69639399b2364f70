package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/joestump/portfolio-agent/internal/codefence"
	"github.com/joestump/portfolio-agent/internal/metrics"
)

const generationIDHeader = "X-Generation-ID"

// fillHandler provides the POST /fillit endpoint.
type fillHandler struct {
	generator    Generator
	maxBodyBytes int64
}

// Fill generates JavaScript that fills the posted form from the portfolio.
// POST /fillit
//
// @Summary      Generate a form-filling script
// @Description  Sends the form HTML and the loaded portfolio to the model and returns JavaScript that fills the form
// @Accept       json
// @Produce      application/javascript
// @Param        request  body      FillRequest  true  "Form markup"
// @Success      200      {string}  string       "JavaScript source"
// @Failure      400      {object}  ErrorResponse
// @Failure      413      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /fillit [post]
func (h *fillHandler) Fill(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	w.Header().Set(generationIDHeader, id)

	if !isJSON(r.Header.Get("Content-Type")) {
		metrics.FillRequestsTotal.WithLabelValues("bad_request").Inc()
		writeError(w, http.StatusBadRequest, "Request must be JSON", "BAD_REQUEST")
		return
	}

	var req FillRequest
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.FillRequestsTotal.WithLabelValues("bad_request").Inc()
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large", "TOO_LARGE")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if req.FormHTML == "" {
		metrics.FillRequestsTotal.WithLabelValues("bad_request").Inc()
		writeError(w, http.StatusBadRequest, "No 'formHtml' provided in the request", "BAD_REQUEST")
		return
	}

	if h.generator == nil {
		metrics.FillRequestsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "Portfolio agent not initialized. Check backend logs.", "NOT_INITIALIZED")
		return
	}

	log.Printf("api: %s: received form HTML for processing (%d bytes)", id, len(req.FormHTML))

	script, err := h.generator.GenerateFormFillingScript(r.Context(), req.FormHTML)
	if err != nil {
		metrics.FillRequestsTotal.WithLabelValues("error").Inc()
		log.Printf("api: %s: generate script: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to generate form-filling script: "+err.Error(), "LLM_ERROR")
		return
	}

	script = codefence.Strip(script)
	metrics.FillRequestsTotal.WithLabelValues("ok").Inc()
	log.Printf("api: %s: generated JavaScript successfully (%d bytes)", id, len(script))

	w.Header().Set("Content-Type", "application/javascript")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, script)
}

// isJSON reports whether contentType is application/json or an
// application/*+json type.
func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || (strings.HasPrefix(mt, "application/") && strings.HasSuffix(mt, "+json"))
}
