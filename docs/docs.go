// Package docs registers the OpenAPI description of the HTTP API with swag.
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
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Issue an analyst token scoped to one organization",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/model.LoginRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.LoginResponse"}}, "401": {"description": "Unauthorized"}}
            }
        },
        "/assessments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["assessments"],
                "summary": "List recent assessments of the caller's organization",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["assessments"],
                "summary": "Score and store an assessment for the caller's organization",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/model.SubmitAssessmentRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "402": {"description": "Tier limit reached"}}
            }
        },
        "/assessments/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["assessments"],
                "summary": "Fetch one stored assessment",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            }
        },
        "/assessments/{id}/benchmark": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["reports"],
                "summary": "Percentile of an assessment among peers of the same organization type",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/analyze": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["assessments"],
                "summary": "Run the index suite without storing the result",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/model.SubmitAssessmentRequest"}}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/tiers": {
            "get": {"tags": ["tiers"], "summary": "List active and legacy tiers", "responses": {"200": {"description": "OK"}}}
        },
        "/tiers/{tier}": {
            "get": {
                "tags": ["tiers"],
                "summary": "Describe one tier, optionally with industry sections",
                "parameters": [
                    {"in": "path", "name": "tier", "type": "string", "required": true},
                    {"in": "query", "name": "organizationType", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        }
    },
    "definitions": {
        "model.LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "organizationId": {"type": "string"}
            }
        },
        "model.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "analystId": {"type": "string"},
                "organizationId": {"type": "string"}
            }
        },
        "scoring.AssessmentResponse": {
            "type": "object",
            "properties": {
                "questionId": {"type": "string"},
                "value": {"type": "number"},
                "section": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "model.SubmitAssessmentRequest": {
            "type": "object",
            "properties": {
                "tier": {"type": "string"},
                "organizationType": {"type": "string"},
                "responses": {"type": "array", "items": {"$ref": "#/definitions/scoring.AssessmentResponse"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Organizational Assessment API",
	Description:      "Scores organizational diagnostics across six indices.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
