// Package docs registers the Bankist API description with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Screen after login", "schema": {"$ref": "#/definitions/view.Snapshot"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Authentication failed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Log out",
                "responses": {
                    "200": {"description": "Screen after logout", "schema": {"$ref": "#/definitions/view.Snapshot"}}
                }
            }
        },
        "/transfer": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["banking"],
                "summary": "Transfer money",
                "parameters": [
                    {"description": "Transfer details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.TransferRequest"}}
                ],
                "responses": {
                    "200": {"description": "Screen after the transfer", "schema": {"$ref": "#/definitions/view.Snapshot"}},
                    "400": {"description": "Invalid amount, unknown recipient, self-transfer or insufficient balance", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "No active session", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/loan": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["banking"],
                "summary": "Request a loan",
                "parameters": [
                    {"description": "Loan amount", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoanRequest"}}
                ],
                "responses": {
                    "202": {"description": "Loan approved", "schema": {"$ref": "#/definitions/view.Snapshot"}},
                    "400": {"description": "Invalid amount", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "No active session", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Loan ineligible", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/close": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["banking"],
                "summary": "Close the account",
                "parameters": [
                    {"description": "Credentials of the logged in account", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CloseRequest"}}
                ],
                "responses": {
                    "200": {"description": "Screen after closing", "schema": {"$ref": "#/definitions/view.Snapshot"}},
                    "401": {"description": "No active session", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Credentials do not match the session", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/sort": {
            "post": {
                "produces": ["application/json"],
                "tags": ["banking"],
                "summary": "Toggle movement order",
                "responses": {
                    "200": {"description": "Screen after toggling", "schema": {"$ref": "#/definitions/view.Snapshot"}},
                    "401": {"description": "No active session", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/screen": {
            "get": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Current screen",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/view.Snapshot"}}
                }
            }
        },
        "/movements": {
            "get": {
                "produces": ["application/json"],
                "tags": ["banking"],
                "summary": "List movements",
                "parameters": [
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page (max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pagination.PageResponse-session_MovementRow"}},
                    "400": {"description": "Invalid pagination", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "No active session", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/loans": {
            "get": {
                "produces": ["application/json"],
                "tags": ["banking"],
                "summary": "Pending loans",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/scheduler.Task"}}}},
                    "401": {"description": "No active session", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/loans/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["banking"],
                "summary": "Pending loan",
                "parameters": [
                    {"type": "string", "description": "Loan task ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/scheduler.Task"}},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "No active session", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Loan not pending", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.CloseRequest": {
            "type": "object",
            "required": ["pin", "username"],
            "properties": {
                "pin": {"type": "string", "example": "2222"},
                "username": {"type": "string", "example": "js"}
            }
        },
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "kind": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handlers.ErrorDetail"}
            }
        },
        "handlers.LoanRequest": {
            "type": "object",
            "required": ["amount"],
            "properties": {
                "amount": {"type": "string", "example": "1000"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["pin", "username"],
            "properties": {
                "pin": {"type": "string", "example": "2222"},
                "username": {"type": "string", "example": "js"}
            }
        },
        "handlers.TransferRequest": {
            "type": "object",
            "required": ["amount", "to"],
            "properties": {
                "amount": {"type": "string", "example": "100.50"},
                "to": {"type": "string", "example": "aa"}
            }
        },
        "pagination.PageResponse-session_MovementRow": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/session.MovementRow"}},
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_items": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "scheduler.Task": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "due_at": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "owner": {"type": "string"}
            }
        },
        "session.MovementRow": {
            "type": "object",
            "properties": {
                "amount": {"type": "string"},
                "date": {"type": "string"},
                "index": {"type": "integer"},
                "kind": {"type": "string", "enum": ["deposit", "withdrawal"]}
            }
        },
        "view.Snapshot": {
            "type": "object",
            "properties": {
                "balance": {"type": "string"},
                "date": {"type": "string"},
                "expense": {"type": "string"},
                "income": {"type": "string"},
                "interest": {"type": "string"},
                "movements": {"type": "array", "items": {"$ref": "#/definitions/session.MovementRow"}},
                "sorted": {"type": "boolean"},
                "timer": {"type": "string"},
                "visible": {"type": "boolean"},
                "welcome": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Bankist API",
	Description:      "Bankist is a demo bank: log in, move money between in-memory accounts and request loans while an inactivity timer runs.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
