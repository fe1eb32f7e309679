// Package docs registers the hand kept OpenAPI document for the billnote API
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
  "openapi": "3.0.3",
  "info": {
    "title": "{{.Title}}",
    "description": "{{escape .Description}}",
    "version": "{{.Version}}"
  },
  "servers": [{"url": "{{.BasePath}}"}],
  "tags": [
    {"name": "Meta"},
    {"name": "Platform"},
    {"name": "Provenance"}
  ],
  "paths": {
    "/meta/health": {"get": {"tags": ["Meta"], "summary": "Health check", "responses": {"200": {"$ref": "#/components/responses/Envelope"}}}},
    "/meta/version": {"get": {"tags": ["Meta"], "summary": "Build and version info", "responses": {"200": {"$ref": "#/components/responses/Envelope"}}}},
    "/meta/service": {"get": {"tags": ["Meta"], "summary": "Service info and uptime", "responses": {"200": {"$ref": "#/components/responses/Envelope"}}}},
    "/meta/rules": {"get": {"tags": ["Meta"], "summary": "Platform rule table in evaluation order", "responses": {"200": {"$ref": "#/components/responses/Envelope"}}}},
    "/meta/modules": {"get": {"tags": ["Meta"], "summary": "Mounted API modules", "responses": {"200": {"$ref": "#/components/responses/Envelope"}}}},
    "/platform/classify": {"post": {"tags": ["Platform"], "summary": "Classify a link or local path", "requestBody": {"$ref": "#/components/requestBodies/Input"}, "responses": {"200": {"$ref": "#/components/responses/Envelope"}}}},
    "/platform/describe": {"post": {"tags": ["Platform"], "summary": "Classification, validity and support in one call", "requestBody": {"$ref": "#/components/requestBodies/Input"}, "responses": {"200": {"$ref": "#/components/responses/Envelope"}}}},
    "/platform/detect": {"post": {"tags": ["Platform"], "summary": "Strict detection; rejects blank, malformed and unsupported links", "requestBody": {"$ref": "#/components/requestBodies/Input"}, "responses": {"200": {"$ref": "#/components/responses/Envelope"}, "422": {"$ref": "#/components/responses/Error"}}}},
    "/platform/video-id": {"post": {"tags": ["Platform"], "summary": "Extract the platform video id", "requestBody": {"$ref": "#/components/requestBodies/Input"}, "responses": {"200": {"$ref": "#/components/responses/Envelope"}, "422": {"$ref": "#/components/responses/Error"}}}},
    "/platform/normalize": {"post": {"tags": ["Platform"], "summary": "Clean a pasted link and classify it", "requestBody": {"$ref": "#/components/requestBodies/Input"}, "responses": {"200": {"$ref": "#/components/responses/Envelope"}}}},
    "/platform/selectable": {"get": {"tags": ["Platform"], "summary": "Platforms offered for manual selection", "responses": {"200": {"$ref": "#/components/responses/Envelope"}}}},
    "/provenance/resolve": {"post": {"tags": ["Provenance"], "summary": "Label where a platform tag came from", "requestBody": {"content": {"application/json": {"schema": {"$ref": "#/components/schemas/ResolveInput"}}}}, "responses": {"200": {"$ref": "#/components/responses/Envelope"}}}},
    "/provenance/validate": {"post": {"tags": ["Provenance"], "summary": "Check a provenance claim against the link", "requestBody": {"content": {"application/json": {"schema": {"$ref": "#/components/schemas/ValidateInput"}}}}, "responses": {"200": {"$ref": "#/components/responses/Envelope"}}}},
    "/provenance/sources": {"get": {"tags": ["Provenance"], "summary": "Source labels, highest priority first", "responses": {"200": {"$ref": "#/components/responses/Envelope"}}}},
    "/provenance/sources/info": {"post": {"tags": ["Provenance"], "summary": "One source label", "requestBody": {"content": {"application/json": {"schema": {"$ref": "#/components/schemas/SourceQuery"}}}}, "responses": {"200": {"$ref": "#/components/responses/Envelope"}, "400": {"$ref": "#/components/responses/Error"}}}},
    "/provenance/forms/augment": {"post": {"tags": ["Provenance"], "summary": "Fill platform_source on a note form", "requestBody": {"$ref": "#/components/requestBodies/Form"}, "responses": {"200": {"$ref": "#/components/responses/Envelope"}}}},
    "/provenance/forms/validate": {"post": {"tags": ["Provenance"], "summary": "Validate a note form", "requestBody": {"$ref": "#/components/requestBodies/Form"}, "responses": {"200": {"$ref": "#/components/responses/Envelope"}}}}
  },
  "components": {
    "schemas": {
      "Envelope": {
        "type": "object",
        "properties": {
          "status_code": {"type": "integer"},
          "status": {"type": "string"},
          "code": {"type": "integer"},
          "error": {"type": "string"},
          "field": {"type": "string"},
          "request_id": {"type": "string"},
          "data": {}
        },
        "required": ["status_code", "status"]
      },
      "Input": {
        "type": "object",
        "properties": {"input": {"type": "string", "example": "https://www.bilibili.com/video/BV1xx411c7xx/", "maxLength": 4096}}
      },
      "SourceQuery": {
        "type": "object",
        "properties": {"source": {"type": "string", "enum": ["auto_detected", "user_provided", "unknown"]}},
        "required": ["source"]
      },
      "ResolveInput": {
        "type": "object",
        "properties": {
          "video_url": {"type": "string", "example": "https://example.com/video/123"},
          "platform": {"type": "string", "example": "bilibili"}
        }
      },
      "ValidateInput": {
        "type": "object",
        "properties": {
          "video_url": {"type": "string"},
          "platform": {"type": "string"},
          "platform_source": {"type": "string", "example": "auto_detected"}
        }
      },
      "Form": {
        "type": "object",
        "additionalProperties": true,
        "properties": {
          "video_url": {"type": "string"},
          "platform": {"type": "string"},
          "platform_source": {"type": "string"}
        }
      }
    },
    "requestBodies": {
      "Input": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Input"}}}},
      "Form": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Form"}}}}
    },
    "responses": {
      "Envelope": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}},
      "Error": {"description": "Coded error", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}
    }
  }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "billnote API",
	Description:      "Video platform classification and source provenance",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
