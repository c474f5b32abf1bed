// Package swagger holds the OpenAPI document for the drift endpoints, served at /swagger/*.
// Keep it in sync with the annotations in feature/drift/handler.go.
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
        "/drift": {
            "get": {
                "description": "Reports every template and static file not referenced by the server source.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "drift"
                ],
                "summary": "Run Drift Check",
                "responses": {
                    "200": {
                        "description": "Drift Report",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/drift/static": {
            "get": {
                "description": "Reports every static file not referenced by the server source.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "drift"
                ],
                "summary": "Check Static Files",
                "responses": {
                    "200": {
                        "description": "Static Report",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/drift/templates": {
            "get": {
                "description": "Reports every template not referenced by the server source.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "drift"
                ],
                "summary": "Check Templates",
                "responses": {
                    "200": {
                        "description": "Template Report",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
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
	Title:            "wiring-guard API",
	Description:      "Reports templates and static files that are not wired into the server source.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
