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

type TransferController struct {
	service service_interfaces.TransferService
}

func NewTransferController(service service_interfaces.TransferService) *TransferController {
	return &TransferController{service: service}
}

func (c *TransferController) RegisterRoutes(r chi.Router) {
	r.Get("/transfers", c.listTransfers)
	r.Delete("/transfers", c.clearTransfers)
	r.Post("/transfer", c.transfer)
	r.Get("/transfer/{id}", c.getTransfer)
}

func (c *TransferController) transfer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		respond(w, r, http.StatusBadRequest, commons.ErrorResponse[models.TransferResponse]("invalid request body", err.Error()), start)
		return
	}
	logRequest(r, req)

	response, err := c.service.SubmitTransfer(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		respond(w, r, statusFor(err), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}

func (c *TransferController) getTransfer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetTransfer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, r, statusFor(err), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}

func (c *TransferController) listTransfers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListTransfers(r.Context())
	if err != nil {
		logError(r, err, nil)
		respond(w, r, statusFor(err), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}

func (c *TransferController) clearTransfers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ClearTransfers(r.Context())
	if err != nil {
		logError(r, err, nil)
		respond(w, r, statusFor(err), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}
