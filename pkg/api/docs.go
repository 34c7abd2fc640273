package api

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
    "paths": {
        "/health": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/records/decode": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/octet-stream"],
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Decode a record",
                "parameters": [
                    {"type": "boolean", "description": "Whether the body is at rest (default true)", "name": "encrypted", "in": "query"},
                    {"description": "Record bytes", "name": "body", "in": "body", "required": true, "schema": {"type": "string", "format": "binary"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.RecordView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/mail/search": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/octet-stream"],
                "produces": ["application/json"],
                "tags": ["mail"],
                "summary": "Search mail word sets",
                "parameters": [
                    {"type": "string", "description": "Target substructure order, such as GAME", "name": "order", "in": "query"},
                    {"type": "integer", "description": "Maximum number of sets (0 for all)", "name": "limit", "in": "query"},
                    {"description": "Record bytes", "name": "body", "in": "body", "required": true, "schema": {"type": "string", "format": "binary"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.SearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/mail/survey": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/octet-stream"],
                "produces": ["application/json"],
                "tags": ["mail"],
                "summary": "Survey reachable orders",
                "parameters": [
                    {"description": "Record bytes", "name": "body", "in": "body", "required": true, "schema": {"type": "string", "format": "binary"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.SearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/mail/apply": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["mail"],
                "summary": "Apply a word set",
                "parameters": [
                    {"description": "Record and word set", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.ApplyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.RecordView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/bank": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["bank"],
                "summary": "List deposited records",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/octet-stream"],
                "produces": ["application/json"],
                "tags": ["bank"],
                "summary": "Deposit a record",
                "parameters": [
                    {"type": "boolean", "description": "Whether the body is at rest (default true)", "name": "encrypted", "in": "query"},
                    {"type": "string", "description": "Free text label", "name": "label", "in": "query"},
                    {"description": "Record bytes", "name": "body", "in": "body", "required": true, "schema": {"type": "string", "format": "binary"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/bank/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["bank"],
                "summary": "Get a deposited record",
                "parameters": [{"type": "string", "description": "Record id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["bank"],
                "summary": "Delete a deposited record",
                "parameters": [{"type": "string", "description": "Record id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        }
    },
    "definitions": {
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "error": {"type": "string"}
            }
        },
        "api.ApplyRequest": {
            "type": "object",
            "properties": {
                "record": {"type": "string", "format": "byte"},
                "encrypted": {"type": "boolean"},
                "words": {"$ref": "#/definitions/mail.WordSet"}
            }
        },
        "api.RecordView": {
            "type": "object",
            "properties": {
                "personality_value": {"type": "integer"},
                "trainer_id": {"type": "integer"},
                "order": {"type": "string"},
                "key": {"type": "integer"},
                "bad_egg": {"type": "boolean"},
                "checksum": {"type": "integer"},
                "checksum_valid": {"type": "boolean"},
                "raw": {"type": "string", "format": "byte"}
            }
        },
        "api.SearchResponse": {
            "type": "object",
            "properties": {
                "order": {"type": "string"},
                "count": {"type": "integer"},
                "word_sets": {"type": "array", "items": {"$ref": "#/definitions/mail.WordSet"}}
            }
        },
        "mail.Word": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "category": {"type": "string"}
            }
        },
        "mail.WordSet": {
            "type": "object",
            "properties": {
                "top_left": {"$ref": "#/definitions/mail.Word"},
                "top_right": {"$ref": "#/definitions/mail.Word"},
                "bottom_left": {"$ref": "#/definitions/mail.Word"},
                "bottom_right": {"$ref": "#/definitions/mail.Word"},
                "order": {"type": "string"},
                "cost": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "pkm3hex REST API",
	Description:      "Decode Generation III records and search mail glitch word sets.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
