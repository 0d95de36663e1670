package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/TWRT/form-integrations/internal/client/aweber"
	"github.com/TWRT/form-integrations/internal/service"
)

type CreateAccountRequestBody struct {
	Name        string `json:"name"`
	AccessToken string `json:"access_token"`
	AccountID   string `json:"account_id"`
}

type AccountHandler struct {
	integrationService *service.IntegrationService
}

func NewAccountHandler(integrationService *service.IntegrationService) *AccountHandler {
	return &AccountHandler{
		integrationService: integrationService,
	}
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Error trying to read the body: "+err.Error())
		return
	}

	var reqBody CreateAccountRequestBody
	if err := json.Unmarshal(body, &reqBody); err != nil {
		writeError(w, http.StatusBadRequest, "JSON error: "+err.Error())
		return
	}
	if reqBody.AccessToken == "" {
		writeError(w, http.StatusBadRequest, "access_token is required")
		return
	}

	account, err := h.integrationService.RegisterAweberAccount(r.Context(), reqBody.Name, reqBody.AccessToken, reqBody.AccountID)
	if err != nil {
		status := http.StatusInternalServerError
		var apiErr *aweber.APIError
		if errors.As(err, &apiErr) || errors.Is(err, service.ErrNoAccount) {
			status = http.StatusBadGateway
		}
		writeError(w, status, "Error trying to register AWeber account: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"account": account,
	})
}

func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.integrationService.GetAweberAccounts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error trying to get AWeber accounts: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"accounts": accounts,
	})
}

func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.integrationService.DeleteAweberAccount(r.Context(), r.PathValue("id")); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrUnknownAccount) {
			status = http.StatusNotFound
		}
		writeError(w, status, "Error trying to delete AWeber account: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AccountHandler) GetAccountLists(w http.ResponseWriter, r *http.Request) {
	lists := h.integrationService.GetAweberLists(r.Context(), r.PathValue("id"))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"lists": lists,
	})
}
