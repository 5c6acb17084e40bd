// Package docs registers the Swagger document served at /swagger. Regenerate with `swag init -g cmd/api/main.go`.
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
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Database unavailable"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}},
        "/api/v1/deals": {
            "get": {"tags": ["Deals"], "summary": "List deals", "security": [{"Bearer": []}],
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}},
            "post": {"tags": ["Deals"], "summary": "Create a deal", "security": [{"Bearer": []}],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Duplicate address"}}}
        },
        "/api/v1/deals/stats": {
            "get": {"tags": ["Deals"], "summary": "Dashboard aggregates", "security": [{"Bearer": []}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/deals/{id}": {
            "get": {"tags": ["Deals"], "summary": "Get a deal", "security": [{"Bearer": []}],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["Deals"], "summary": "Update a deal", "security": [{"Bearer": []}],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Deals"], "summary": "Delete a deal", "security": [{"Bearer": []}],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/auth/login": {"get": {"tags": ["Auth"], "summary": "Start login", "responses": {"302": {"description": "Redirect to Auth0"}, "503": {"description": "Login not configured"}}}},
        "/api/v1/auth/callback": {"get": {"tags": ["Auth"], "summary": "Finish login",
            "parameters": [
                {"type": "string", "name": "code", "in": "query", "required": true},
                {"type": "string", "name": "state", "in": "query", "required": true}
            ],
            "responses": {"302": {"description": "Redirect"}, "400": {"description": "Invalid state"}, "502": {"description": "Identity provider error"}}}},
        "/api/v1/auth/logout": {"post": {"tags": ["Auth"], "summary": "Log out", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/auth/access": {"post": {"tags": ["Auth"], "summary": "Access gate",
            "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"type": "object", "properties": {"password": {"type": "string"}}}}],
            "responses": {"200": {"description": "OK"}, "401": {"description": "Wrong password"}, "503": {"description": "Access gate disabled"}}}},
        "/api/v1/users/me": {"get": {"tags": ["Users"], "summary": "Current user", "security": [{"Bearer": []}],
            "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/api/v1/users/{id}": {"get": {"tags": ["Users"], "summary": "User by ID", "security": [{"Bearer": []}],
            "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
            "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}},
        "/api/v1/users/{id}/admin": {"get": {"tags": ["Users"], "summary": "Admin flag", "security": [{"Bearer": []}],
            "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
            "responses": {"200": {"description": "OK"}}}},
        "/api/v1/ai": {"post": {"tags": ["Assistant"], "summary": "Ask the assistant", "security": [{"Bearer": []}],
            "parameters": [
                {"type": "string", "name": "X-Conversation-ID", "in": "header"},
                {"name": "body", "in": "body", "required": true, "schema": {"type": "object", "properties": {
                    "data": {"type": "string"}, "isDashBoard": {"type": "boolean"}, "supporting": {"type": "string"}}}}
            ],
            "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "429": {"description": "Too Many Requests"}, "502": {"description": "Assistant unavailable"}}}},
        "/api/v1/ai/session": {"delete": {"tags": ["Assistant"], "summary": "Forget the conversation", "security": [{"Bearer": []}],
            "parameters": [{"type": "string", "name": "X-Conversation-ID", "in": "header"}],
            "responses": {"204": {"description": "No Content"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Deal Tracker API",
	Description:      "Real estate deal tracking with an AI advisor that remembers the conversation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
