// Package docs is the swagger description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new user", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Log in and get a token", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}},
        "/me": {
            "get": {"tags": ["users"], "summary": "Profile with level progress and badges", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["users"], "summary": "Delete account", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}}}
        },
        "/recipes": {
            "get": {"tags": ["recipes"], "summary": "List recipes", "security": [{"BearerAuth": []}], "parameters": [{"name": "category", "in": "query", "type": "string"}, {"name": "limit", "in": "query", "type": "integer"}, {"name": "page", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["recipes"], "summary": "Register a recipe", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/recipes/categories": {"get": {"tags": ["recipes"], "summary": "Distinct categories", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/recipes/{id}": {
            "get": {"tags": ["recipes"], "summary": "Get recipe", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["recipes"], "summary": "Update recipe", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["recipes"], "summary": "Delete recipe", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/records": {
            "get": {"tags": ["records"], "summary": "List cooking records", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["records"], "summary": "Log a finished dish", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/records/{id}": {
            "get": {"tags": ["records"], "summary": "Get cooking record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["records"], "summary": "Delete cooking record", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}}}
        },
        "/stats": {"get": {"tags": ["records"], "summary": "Streaks and totals", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/badges": {"get": {"tags": ["badges"], "summary": "Badge catalog with earned flags", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/session": {"get": {"tags": ["session"], "summary": "Live session status", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/session/start": {"post": {"tags": ["session"], "summary": "Start cooking", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}},
        "/session/pause": {"post": {"tags": ["session"], "summary": "Pause the stopwatch", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/session/resume": {"post": {"tags": ["session"], "summary": "Resume the stopwatch", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/session/finish": {"post": {"tags": ["session"], "summary": "Finish and record the session", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/session/cancel": {"post": {"tags": ["session"], "summary": "Drop the session", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}},
        "/session/timers": {
            "get": {"tags": ["session"], "summary": "List countdowns", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["session"], "summary": "Start a countdown", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/session/timers/{id}": {"delete": {"tags": ["session"], "summary": "Cancel a countdown", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}}}},
        "/session/timers/{id}/pause": {"post": {"tags": ["session"], "summary": "Pause a countdown", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/session/timers/{id}/resume": {"post": {"tags": ["session"], "summary": "Resume a countdown", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "Cooking streak API",
	Description:      "API for the cooking habit tracker \"Cookstreak\"",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
