package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/bankwire/src/internal/adapter/http/models"
	"github.com/api-sage/bankwire/src/internal/commons"
	"github.com/api-sage/bankwire/src/internal/logger"
	"github.com/api-sage/bankwire/src/internal/usecase/service_interfaces"
	"github.com/go-chi/chi/v5"
)

type AccountController struct {
	service service_interfaces.AccountService
}

func NewAccountController(service service_interfaces.AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(r chi.Router) {
	r.Get("/accounts", c.listAccounts)
	r.Delete("/accounts", c.clearAccounts)
	r.Post("/account", c.createAccount)
	r.Get("/account/{id}", c.getAccount)
	r.Delete("/account/{id}", c.deleteAccount)
}

func (c *AccountController) createAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		respond(w, r, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()), start)
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateAccount(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		respond(w, r, statusFor(err), response, start)
		return
	}

	respond(w, r, http.StatusCreated, response, start)
}

func (c *AccountController) getAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetAccount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, r, statusFor(err), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}

func (c *AccountController) listAccounts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListAccounts(r.Context())
	if err != nil {
		logError(r, err, nil)
		respond(w, r, statusFor(err), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}

func (c *AccountController) deleteAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.DeleteAccount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		respond(w, r, statusFor(err), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}

func (c *AccountController) clearAccounts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ClearAccounts(r.Context())
	if err != nil {
		logError(r, err, nil)
		respond(w, r, statusFor(err), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}
