// Package swagger holds the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/start.go -o docs/swagger
package swagger

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
        "/dashboard/{principal}/items": {
            "get": {
                "description": "Reconciles the user's collections and NFTs into display items. Collections that fail to load are listed in failures; the request still succeeds.",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "List Dashboard Items",
                "parameters": [
                    {"type": "string", "description": "User principal", "name": "principal", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Dashboard items", "schema": {"$ref": "#/definitions/dashboard.ItemsResponse"}}
                }
            }
        },
        "/fairs": {
            "post": {
                "description": "Uploads the fair media, creates the fair collection and mints its NFT to the caller.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["minting"],
                "summary": "Create Virtual Fair",
                "parameters": [
                    {"type": "string", "description": "Caller principal", "name": "X-Caller-Principal", "in": "header", "required": true},
                    {"type": "string", "description": "Fair name", "name": "fairName", "in": "formData", "required": true},
                    {"type": "string", "description": "Organizer name", "name": "organizerName", "in": "formData"},
                    {"type": "string", "default": "Fintech", "description": "Sector", "name": "sector", "in": "formData"},
                    {"type": "string", "default": "Digital banking", "description": "Sub-sector", "name": "subSector", "in": "formData"},
                    {"type": "file", "description": "Image or video, 10 MB max", "name": "media", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Minted fair", "schema": {"$ref": "#/definitions/minting.FairResult"}},
                    "400": {"description": "Invalid form", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Missing caller", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/integrity": {
            "get": {
                "description": "Performs all available integrity checks (Structure, Ledger).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Run All Integrity Checks",
                "responses": {
                    "200": {"description": "Combined Report", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/integrity/ledger": {
            "get": {
                "description": "Checks that the ledger tables have the columns and types the ledger models declare.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Ledger Schema",
                "responses": {
                    "200": {"description": "Ledger Schema Report", "schema": {"$ref": "#/definitions/checks.SchemaReport"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/integrity/structure": {
            "get": {
                "description": "Checks if the media folders exist in the storage bucket. Optionally fixes missing folders.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Structure",
                "parameters": [
                    {"type": "boolean", "description": "Fix missing folders", "name": "fix", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Structure Report", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "checks.SchemaReport": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"type": "string"}},
                "matched": {"type": "boolean"},
                "tables": {"type": "object", "additionalProperties": {"$ref": "#/definitions/checks.TableReport"}}
            }
        },
        "checks.TableReport": {
            "type": "object",
            "properties": {
                "missing_columns": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string"},
                "type_mismatches": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dashboard.ItemsResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "failures": {"type": "array", "items": {"$ref": "#/definitions/reconcile.Failure"}},
                "items": {"type": "array", "items": {"$ref": "#/definitions/reconcile.DisplayItem"}}
            }
        },
        "minting.FairResult": {
            "type": "object",
            "properties": {
                "collection": {"type": "string"},
                "imageId": {"type": "string"},
                "tokenIdentifier": {"type": "string"},
                "tokenIndex": {"type": "integer"}
            }
        },
        "reconcile.DisplayItem": {
            "type": "object",
            "properties": {
                "collection_id": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "image_url": {"type": "string"},
                "organizer": {"type": "string"},
                "sector": {"type": "string"},
                "sub_sector": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "reconcile.Failure": {
            "type": "object",
            "properties": {
                "collection_key": {"type": "string"},
                "reason": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "MetaBuild Hub API",
	Description:      "Dashboard, fair minting and health endpoints of the MetaBuild collection hub.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
