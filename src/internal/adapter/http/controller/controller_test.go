package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/api-sage/bankwire/src/internal/adapter/http/controller"
	"github.com/api-sage/bankwire/src/internal/adapter/http/models"
	"github.com/api-sage/bankwire/src/internal/adapter/http/router"
	"github.com/api-sage/bankwire/src/internal/adapter/repository/memory"
	"github.com/api-sage/bankwire/src/internal/commons"
	"github.com/api-sage/bankwire/src/internal/config"
	"github.com/api-sage/bankwire/src/internal/usecase/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler() http.Handler {
	accounts := memory.NewAccountRepository()
	transfers := memory.NewTransferRepository()
	engine := services.NewTransferEngine(accounts, transfers, config.TransferConfig{
		Timeout:       time.Second,
		BackoffBase:   50 * time.Microsecond,
		BackoffJitter: 100 * time.Microsecond,
	})

	return router.New(
		controller.NewAccountController(services.NewAccountService(accounts)),
		controller.NewTransferController(services.NewTransferService(accounts, transfers, engine, nil)),
	)
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) commons.Response[T] {
	t.Helper()
	var out commons.Response[T]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func createAccount(t *testing.T, h http.Handler, id string, amount int64, currency string) {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/account", models.CreateAccountRequest{
		AccountID: id,
		FirstName: "Alan",
		LastName:  "Turing",
		Money:     decimal.NewNullDecimal(decimal.NewFromInt(amount)),
		Currency:  currency,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}

func TestAccountControllerLifecycle(t *testing.T) {
	h := newHandler()
	createAccount(t, h, "acc-1", 100, "EUR")

	rr := do(t, h, http.MethodGet, "/account/acc-1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[models.AccountResponse](t, rr)
	require.NotNil(t, got.Data)
	assert.Equal(t, "acc-1", got.Data.AccountID)
	assert.True(t, got.Data.Balance.Equal(decimal.NewFromInt(100)))

	rr = do(t, h, http.MethodGet, "/accounts", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[[]models.AccountResponse](t, rr)
	assert.Len(t, *list.Data, 1)
	require.NotNil(t, list.Count)
	assert.Equal(t, 1, *list.Count)

	rr = do(t, h, http.MethodDelete, "/account/acc-1", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, h, http.MethodDelete, "/account/acc-1", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, h, http.MethodGet, "/account/acc-1", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.False(t, decode[models.AccountResponse](t, rr).Success)
}

func TestAccountControllerCreateErrors(t *testing.T) {
	h := newHandler()
	createAccount(t, h, "acc-1", 100, "EUR")

	rr := do(t, h, http.MethodPost, "/account", models.CreateAccountRequest{
		AccountID: "acc-1",
		FirstName: "Alan",
		LastName:  "Turing",
		Money:     decimal.NewNullDecimal(decimal.Zero),
		Currency:  "EUR",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = do(t, h, http.MethodPost, "/account", "{not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodPost, "/account", models.CreateAccountRequest{FirstName: "Alan"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodPost, "/account", `{"firstName":"Alan","lastName":"Turing","currencyCode":"EUR"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "money is required")

	rr = do(t, h, http.MethodPost, "/account", `{"firstName":"Alan","lastName":"Turing","money":null,"currencyCode":"EUR"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodPost, "/account", `{"firstName":"Alan","lastName":"Turing","money":"0","currencyCode":"EUR"}`)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestTransferControllerSubmitAndFetch(t *testing.T) {
	h := newHandler()
	createAccount(t, h, "A", 100, "EUR")
	createAccount(t, h, "B", 0, "EUR")

	rr := do(t, h, http.MethodPost, "/transfer", map[string]any{
		"senderAccountNumber":   "A",
		"receiverAccountNumber": "B",
		"money":                 "30.50",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	submitted := decode[models.TransferResponse](t, rr)
	require.NotNil(t, submitted.Data)
	assert.Equal(t, "COMMITTED", submitted.Data.Status)

	rr = do(t, h, http.MethodGet, "/transfer/"+submitted.Data.TransferID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, h, http.MethodGet, "/transfers", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, *decode[[]models.TransferResponse](t, rr).Data, 1)

	rr = do(t, h, http.MethodGet, "/account/B", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode[models.AccountResponse](t, rr).Data.Balance.Equal(decimal.RequireFromString("30.50")))

	rr = do(t, h, http.MethodGet, "/transfer/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestTransferControllerStatusMapping(t *testing.T) {
	h := newHandler()
	createAccount(t, h, "A", 10, "EUR")
	createAccount(t, h, "B", 0, "EUR")
	createAccount(t, h, "C", 0, "USD")

	cases := []struct {
		name   string
		body   any
		status int
	}{
		{"same account", models.TransferRequest{SenderAccountID: "A", ReceiverAccountID: "A", Money: decimal.NewFromInt(1)}, http.StatusBadRequest},
		{"zero amount", models.TransferRequest{SenderAccountID: "A", ReceiverAccountID: "B"}, http.StatusBadRequest},
		{"currency mismatch", models.TransferRequest{SenderAccountID: "A", ReceiverAccountID: "C", Money: decimal.NewFromInt(1)}, http.StatusBadRequest},
		{"unknown receiver", models.TransferRequest{SenderAccountID: "A", ReceiverAccountID: "Z", Money: decimal.NewFromInt(1)}, http.StatusNotFound},
		{"unknown sender", models.TransferRequest{SenderAccountID: "Z", ReceiverAccountID: "A", Money: decimal.NewFromInt(1)}, http.StatusNotFound},
		{"insufficient balance", models.TransferRequest{SenderAccountID: "A", ReceiverAccountID: "B", Money: decimal.NewFromInt(11)}, http.StatusUnprocessableEntity},
		{"malformed body", "[]", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := do(t, h, http.MethodPost, "/transfer", tc.body)
			assert.Equal(t, tc.status, rr.Code, rr.Body.String())
			assert.False(t, decode[models.TransferResponse](t, rr).Success)
		})
	}
}

func TestAdminClearRoutes(t *testing.T) {
	h := newHandler()
	createAccount(t, h, "A", 100, "EUR")
	createAccount(t, h, "B", 0, "EUR")

	rr := do(t, h, http.MethodPost, "/transfer", models.TransferRequest{
		SenderAccountID:   "A",
		ReceiverAccountID: "B",
		Money:             decimal.NewFromInt(1),
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = do(t, h, http.MethodDelete, "/transfers", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "transfers", decode[models.ClearResponse](t, rr).Data.Resource)

	rr = do(t, h, http.MethodGet, "/transfers", nil)
	assert.Empty(t, *decode[[]models.TransferResponse](t, rr).Data)

	rr = do(t, h, http.MethodDelete, "/accounts", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, h, http.MethodGet, "/accounts", nil)
	assert.Empty(t, *decode[[]models.AccountResponse](t, rr).Data)

	rr = do(t, h, http.MethodGet, "/account/A", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
