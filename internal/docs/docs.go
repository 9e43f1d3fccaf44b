// Package docs registers the OpenAPI description of the upload API with swag,
// in the layout `swag init` generates.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["service"],
                "summary": "Service metadata",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["service"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/upload": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["packages"],
                "summary": "Upload an APK or AAB package",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Android package (.apk or .aab)",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Object name without extension",
                        "name": "custom_name",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/storage.UploadResult"}
                    },
                    "400": {"description": "Invalid, empty or unsupported file"},
                    "413": {"description": "File too large"},
                    "500": {"description": "Upload to the store failed"}
                }
            }
        }
    },
    "definitions": {
        "storage.UploadResult": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "url": {"type": "string"},
                "object_name": {"type": "string"},
                "bucket": {"type": "string"},
                "file_type": {"type": "string", "enum": ["APK", "AAB"]},
                "size_mb": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Android Package Uploader API",
	Description:      "Uploads APK and AAB packages to object storage and returns their download URL.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
