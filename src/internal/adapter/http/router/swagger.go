package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func registerSwaggerRoutes(r chi.Router) {
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	r.Get("/swagger/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	r.Get("/swagger/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Bankwire Ledger API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Bankwire Ledger API",
    "version": "1.0.0"
  },
  "paths": {
    "/health": {
      "get": {
        "summary": "Liveness probe",
        "responses": {
          "200": {"description": "Service is up"}
        }
      }
    },
    "/accounts": {
      "get": {
        "summary": "List accounts",
        "responses": {
          "200": {"description": "Accounts fetched"},
          "500": {"description": "Server error"}
        }
      },
      "delete": {
        "summary": "Remove every account (administrative reset)",
        "responses": {
          "200": {"description": "Accounts cleared"},
          "500": {"description": "Server error"}
        }
      }
    },
    "/account": {
      "post": {
        "summary": "Create account",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["firstName", "lastName", "money", "currencyCode"],
                "properties": {
                  "accountNumber": {"type": "string", "description": "optional, generated when omitted"},
                  "firstName": {"type": "string"},
                  "lastName": {"type": "string"},
                  "money": {"type": "string", "example": "100.00"},
                  "currencyCode": {"type": "string", "example": "EUR"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Created"},
          "400": {"description": "Validation error"},
          "409": {"description": "Account already exists"},
          "500": {"description": "Server error"}
        }
      }
    },
    "/account/{id}": {
      "parameters": [
        {
          "name": "id",
          "in": "path",
          "required": true,
          "schema": {"type": "string"}
        }
      ],
      "get": {
        "summary": "Get account",
        "responses": {
          "200": {"description": "Account fetched"},
          "404": {"description": "Account not found"}
        }
      },
      "delete": {
        "summary": "Delete account",
        "responses": {
          "200": {"description": "Account deleted"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/transfers": {
      "get": {
        "summary": "List committed transfers",
        "responses": {
          "200": {"description": "Transfers fetched"},
          "500": {"description": "Server error"}
        }
      },
      "delete": {
        "summary": "Empty the transfer log (administrative reset)",
        "responses": {
          "200": {"description": "Transfers cleared"},
          "500": {"description": "Server error"}
        }
      }
    },
    "/transfer": {
      "post": {
        "summary": "Submit transfer",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["senderAccountNumber", "receiverAccountNumber", "money"],
                "properties": {
                  "senderAccountNumber": {"type": "string"},
                  "receiverAccountNumber": {"type": "string"},
                  "money": {"type": "string", "example": "10.00"},
                  "currencyCode": {"type": "string", "description": "defaults to the sender currency"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Transfer committed"},
          "400": {"description": "Validation error or currency mismatch"},
          "404": {"description": "Sender or receiver not found"},
          "422": {"description": "Insufficient balance"},
          "503": {"description": "Transfer timed out"},
          "500": {"description": "Server error"}
        }
      }
    },
    "/transfer/{id}": {
      "get": {
        "summary": "Get committed transfer",
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "schema": {"type": "string"}
          }
        ],
        "responses": {
          "200": {"description": "Transfer fetched"},
          "404": {"description": "Transfer not found"}
        }
      }
    }
  }
}`
