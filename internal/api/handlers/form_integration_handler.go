package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/TWRT/form-integrations/internal/logging"
	"github.com/TWRT/form-integrations/internal/models"
	"github.com/TWRT/form-integrations/internal/service"
	"github.com/TWRT/form-integrations/internal/wizard"
)

type FormIntegrationHandler struct {
	runner *wizard.Runner
	logger logging.Logger
}

func NewFormIntegrationHandler(runner *wizard.Runner, logger logging.Logger) *FormIntegrationHandler {
	return &FormIntegrationHandler{
		runner: runner,
		logger: logger,
	}
}

func (h *FormIntegrationHandler) GetIntegration(w http.ResponseWriter, r *http.Request) {
	formID, provider := r.PathValue("formId"), r.PathValue("provider")

	steps, err := h.runner.Status(r.Context(), provider, formID)
	if err != nil {
		h.fail(w, "Error trying to get wizard steps", err)
		return
	}

	integration, err := h.runner.Integration(provider, formID)
	if err != nil {
		h.fail(w, "Error trying to get integration", err)
		return
	}
	connected, err := integration.IsFormConnected(r.Context())
	if err != nil {
		h.fail(w, "Error trying to check form connection", err)
		return
	}
	settings, err := integration.Settings(r.Context())
	if err != nil {
		h.fail(w, "Error trying to get form settings", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"provider":  provider,
		"form_id":   formID,
		"steps":     steps,
		"connected": connected,
		"settings":  settings,
	})
}

func (h *FormIntegrationHandler) RunStep(w http.ResponseWriter, r *http.Request) {
	formID, provider := r.PathValue("formId"), r.PathValue("provider")

	step, err := strconv.Atoi(r.PathValue("step"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid step: "+r.PathValue("step"))
		return
	}

	submission, err := decodeSubmission(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Error trying to read the body: "+err.Error())
		return
	}

	result, err := h.runner.Run(r.Context(), provider, formID, step, submission)
	if err != nil {
		h.fail(w, "Error trying to run wizard step", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *FormIntegrationHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	integration, err := h.runner.Integration(r.PathValue("provider"), r.PathValue("formId"))
	if err != nil {
		h.fail(w, "Error trying to get integration", err)
		return
	}

	lists, err := integration.RefreshLists(r.Context())
	if err != nil {
		h.fail(w, "Error trying to refresh lists", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"lists": lists,
	})
}

type selectAccountRequest struct {
	GlobalMultiID string `json:"global_multi_id"`
}

func (h *FormIntegrationHandler) SelectAccount(w http.ResponseWriter, r *http.Request) {
	var req selectAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "JSON error: "+err.Error())
		return
	}
	if req.GlobalMultiID == "" {
		writeError(w, http.StatusBadRequest, "global_multi_id is required")
		return
	}

	integration, err := h.runner.Integration(r.PathValue("provider"), r.PathValue("formId"))
	if err != nil {
		h.fail(w, "Error trying to get integration", err)
		return
	}
	if err := integration.SelectAccount(r.Context(), req.GlobalMultiID); err != nil {
		h.fail(w, "Error trying to select account", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *FormIntegrationHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	integration, err := h.runner.Integration(r.PathValue("provider"), r.PathValue("formId"))
	if err != nil {
		h.fail(w, "Error trying to get integration", err)
		return
	}
	if err := integration.Disconnect(r.Context()); err != nil {
		h.fail(w, "Error trying to disconnect", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *FormIntegrationHandler) fail(w http.ResponseWriter, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, wizard.ErrUnknownProvider), errors.Is(err, wizard.ErrStepNotFound), errors.Is(err, service.ErrUnknownAccount):
		status = http.StatusNotFound
	case errors.Is(err, wizard.ErrPreviousStepIncomplete):
		status = http.StatusConflict
	case errors.Is(err, wizard.ErrNotSupported):
		status = http.StatusNotImplemented
	default:
		h.logger.WithError(err).Error(message)
	}
	writeError(w, status, message+": "+err.Error())
}

// decodeSubmission accepts both the modal's form-encoded posts and JSON bodies.
func decodeSubmission(r *http.Request) (models.StepSubmission, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data" {
		if err := r.ParseForm(); err != nil {
			return models.StepSubmission{}, err
		}
		var submission models.StepSubmission
		if _, ok := r.PostForm["list_id"]; ok {
			submission.ListID = models.StringPtr(r.PostForm.Get("list_id"))
		}
		submission.IsSubmit = truthy(r.PostForm.Get("hustle_is_submit"))
		return submission, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return models.StepSubmission{}, err
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return models.StepSubmission{}, nil
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.StepSubmission{}, err
	}

	var submission models.StepSubmission
	if v, ok := raw["list_id"]; ok && v != nil {
		submission.ListID = models.StringPtr(scalarString(v))
	}
	submission.IsSubmit = truthy(scalarString(raw["hustle_is_submit"]))
	return submission, nil
}

func scalarString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// truthy also treats "false" as unset, unlike a plain emptiness check.
func truthy(s string) bool {
	return s != "" && s != "0" && !strings.EqualFold(s, "false")
}
