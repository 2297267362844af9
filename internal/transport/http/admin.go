package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"rdapi/internal/domain"
	"rdapi/internal/dto"
	"rdapi/internal/service"
)

// The admin endpoints keep the fleet console's contract: always HTTP 200
// with a human-readable message field, outcomes included.

func addAccountHandler(accounts service.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.AccountCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad request"})
			return
		}
		if req.Account == "" {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "missing account name"})
			return
		}

		err := accounts.Create(r.Context(), req)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, messageBody{Message: fmt.Sprintf("account %s created", req.Account)})
		case errors.Is(err, domain.ErrAccountExists):
			writeJSON(w, http.StatusOK, messageBody{Message: fmt.Sprintf("account %s already exists", req.Account)})
		default:
			writeInternalError(w, r, err)
		}
	}
}

func editAccountHandler(accounts service.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("account")
		if name == "" {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "missing account name"})
			return
		}
		var req dto.AccountUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad request"})
			return
		}

		modified, err := accounts.Update(r.Context(), name, req)
		switch {
		case err == nil && modified:
			writeJSON(w, http.StatusOK, messageBody{Message: fmt.Sprintf("account %s updated", name)})
		case err == nil:
			writeJSON(w, http.StatusOK, messageBody{Message: fmt.Sprintf("account %s unchanged", name)})
		case errors.Is(err, domain.ErrAccountNotFound):
			writeJSON(w, http.StatusOK, messageBody{Message: fmt.Sprintf("account %s not found", name)})
		default:
			writeInternalError(w, r, err)
		}
	}
}

func deleteAccountHandler(accounts service.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("account")
		if name == "" {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "missing account name"})
			return
		}

		err := accounts.Delete(r.Context(), name)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, messageBody{Message: fmt.Sprintf("account %s deleted", name)})
		case errors.Is(err, domain.ErrAccountNotFound):
			writeJSON(w, http.StatusOK, messageBody{Message: fmt.Sprintf("account %s not found", name)})
		default:
			writeInternalError(w, r, err)
		}
	}
}
