// Package docs registers the OpenAPI description served at /swagger.
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
        "/api/v1/tasks/parse": {
            "post": {
                "description": "Extracts title, assignees, due-date phrase, priority and subtasks. The due date is returned verbatim.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Parse a task from free text",
                "parameters": [
                    {"type": "string", "description": "Caller id forwarded by the gateway", "name": "X-User-ID", "in": "header"},
                    {"description": "Free text, roster and timezone", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.parseReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.parseResp"}},
                    "400": {"description": "Empty or invalid input", "schema": {"$ref": "#/definitions/http.parseResp"}},
                    "422": {"description": "Model output did not match the task schema", "schema": {"$ref": "#/definitions/http.parseResp"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/http.parseResp"}},
                    "502": {"description": "Parser unavailable", "schema": {"$ref": "#/definitions/http.parseResp"}},
                    "503": {"description": "Parser misconfigured", "schema": {"$ref": "#/definitions/http.parseResp"}}
                }
            }
        },
        "/api/v1/tasks": {
            "get": {
                "description": "Returns the tasks of an organization, newest first.",
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List tasks",
                "parameters": [
                    {"type": "string", "description": "Organization ID", "name": "organization_id", "in": "query", "required": true},
                    {"type": "integer", "description": "Page size (default: 20, max: 100)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Page offset (default: 0)", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.listResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "post": {
                "description": "Parses the text, resolves the due date and assignees, and stores the task.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Create a task from free text",
                "parameters": [
                    {"type": "string", "description": "Caller id forwarded by the gateway", "name": "X-User-ID", "in": "header"},
                    {"description": "Organization, free text, members and timezone", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createReq"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.createResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "422": {"description": "Model output did not match the task schema", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks/{id}": {
            "get": {
                "description": "Returns a single task by its ID.",
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Get task detail",
                "parameters": [
                    {"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.detailResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/dates/parse": {
            "post": {
                "description": "Resolves phrases such as \"next Friday\" or \"03/15/2024\" to a 17:00 deadline in the caller's timezone.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Dates"],
                "summary": "Resolve a due-date phrase",
                "parameters": [
                    {"description": "Phrase and timezone", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.parseDateReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.dueDateResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "422": {"description": "Phrase not recognized", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Dependency down", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        }
    },
    "definitions": {
        "http.parseReq": {
            "type": "object",
            "properties": {
                "input": {"type": "string"},
                "member_names": {"type": "array", "items": {"type": "string"}},
                "timezone": {"type": "string"}
            }
        },
        "http.parseDateReq": {
            "type": "object",
            "properties": {
                "phrase": {"type": "string"},
                "timezone": {"type": "string"}
            }
        },
        "http.memberReq": {
            "type": "object",
            "required": ["id", "name"],
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "http.createReq": {
            "type": "object",
            "properties": {
                "organization_id": {"type": "string"},
                "input": {"type": "string"},
                "members": {"type": "array", "items": {"$ref": "#/definitions/http.memberReq"}},
                "timezone": {"type": "string"}
            }
        },
        "http.assigneeMatchResp": {
            "type": "object",
            "properties": {
                "requested_name": {"type": "string"},
                "matched_name": {"type": "string"},
                "confidence": {"type": "string"}
            }
        },
        "http.parsedResp": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "assignee_names": {"type": "array", "items": {"type": "string"}},
                "due_date": {"type": "string"},
                "priority": {"type": "string", "enum": ["low", "medium", "high", "urgent"]},
                "subtasks": {"type": "array", "items": {"type": "string"}},
                "description": {"type": "string"},
                "assignee_matches": {"type": "array", "items": {"$ref": "#/definitions/http.assigneeMatchResp"}}
            }
        },
        "http.parseResp": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "parsed": {"$ref": "#/definitions/http.parsedResp"},
                "original_input": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "http.dueDateResp": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "iso_date": {"type": "string"},
                "display": {"type": "string"},
                "confidence": {"type": "string"},
                "original_input": {"type": "string"}
            }
        },
        "http.subtaskResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "position": {"type": "integer"}
            }
        },
        "http.assigneeResp": {
            "type": "object",
            "properties": {
                "member_id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "http.taskResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "organization_id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "priority": {"type": "string"},
                "due_date": {"type": "string"},
                "due_date_phrase": {"type": "string"},
                "subtasks": {"type": "array", "items": {"$ref": "#/definitions/http.subtaskResp"}},
                "assignees": {"type": "array", "items": {"$ref": "#/definitions/http.assigneeResp"}},
                "calendar_link": {"type": "string"},
                "created_by": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "http.createResp": {
            "type": "object",
            "properties": {
                "task": {"$ref": "#/definitions/http.taskResp"},
                "parsed": {"$ref": "#/definitions/http.parsedResp"},
                "due_date_resolved": {"type": "boolean"},
                "resolved_due_date": {"$ref": "#/definitions/http.dueDateResp"}
            }
        },
        "http.listResp": {
            "type": "object",
            "properties": {
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/http.taskResp"}},
                "total": {"type": "integer"},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"}
            }
        },
        "http.detailResp": {
            "type": "object",
            "properties": {
                "task": {"$ref": "#/definitions/http.taskResp"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Campus Task Assistant API",
	Description:      "Natural-language task capture: LLM-backed task extraction and rule-based due-date resolution.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
