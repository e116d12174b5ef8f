// Package docs holds the Swagger 2.0 document served under /swagger, in the layout
// swaggo/swag writes. Regenerate it after changing handler annotations:
//
//	swag init -g cmd/monedas_api/main.go -o cmd/docs --outputTypes go
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
        "/pos/monedas": {
            "get": {
                "description": "Returns one page of currencies ordered by id. Both query parameters are required.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "monedas"
                ],
                "summary": "List currencies",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Caller correlation id",
                        "name": "message-uuid",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Caller application id",
                        "name": "request-app-id",
                        "in": "header",
                        "required": true
                    },
                    {
                        "minimum": 1,
                        "type": "integer",
                        "description": "Page number, starting at 1",
                        "name": "pageNumber",
                        "in": "query",
                        "required": true
                    },
                    {
                        "maximum": 500,
                        "minimum": 1,
                        "type": "integer",
                        "description": "Page size",
                        "name": "pageSize",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/envelope.PaginatedResponse-dto_ListCurrenciesResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/envelope.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/envelope.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a currency. codigoIso is uppercased before validation.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "monedas"
                ],
                "summary": "Create a currency",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Caller correlation id",
                        "name": "message-uuid",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Caller application id",
                        "name": "request-app-id",
                        "in": "header",
                        "required": true
                    },
                    {
                        "description": "Currency details",
                        "name": "moneda",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CurrencyRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/envelope.SuccessResponse-domain_Currency"
                        }
                    },
                    "400": {
                        "description": "Missing headers or invalid input",
                        "schema": {
                            "$ref": "#/definitions/envelope.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "codigoIso already exists",
                        "schema": {
                            "$ref": "#/definitions/envelope.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/envelope.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/pos/monedas/{monedaId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "monedas"
                ],
                "summary": "Get a currency by id",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Caller correlation id",
                        "name": "message-uuid",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Caller application id",
                        "name": "request-app-id",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Currency id",
                        "name": "monedaId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/envelope.SuccessResponse-domain_Currency"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/envelope.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Currency not found",
                        "schema": {
                            "$ref": "#/definitions/envelope.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/envelope.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "description": "Replaces every field of a currency except its id.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "monedas"
                ],
                "summary": "Update a currency",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Caller correlation id",
                        "name": "message-uuid",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Caller application id",
                        "name": "request-app-id",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Currency id",
                        "name": "monedaId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Currency details",
                        "name": "moneda",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CurrencyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/envelope.SuccessResponse-domain_Currency"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/envelope.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Currency not found",
                        "schema": {
                            "$ref": "#/definitions/envelope.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "codigoIso used by another currency",
                        "schema": {
                            "$ref": "#/definitions/envelope.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/envelope.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a currency and returns its last stored values.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "monedas"
                ],
                "summary": "Delete a currency",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Caller correlation id",
                        "name": "message-uuid",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Caller application id",
                        "name": "request-app-id",
                        "in": "header",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Currency id",
                        "name": "monedaId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/envelope.SuccessResponse-domain_Currency"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/envelope.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Currency not found",
                        "schema": {
                            "$ref": "#/definitions/envelope.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/envelope.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Currency": {
            "type": "object",
            "properties": {
                "activo": {
                    "type": "boolean"
                },
                "codigoIso": {
                    "type": "string"
                },
                "decimales": {
                    "type": "integer"
                },
                "monedaId": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "simbolo": {
                    "type": "string"
                }
            }
        },
        "domain.Pagination": {
            "type": "object",
            "properties": {
                "hasMoreElements": {
                    "type": "boolean"
                },
                "pageNumber": {
                    "type": "integer"
                },
                "pageSize": {
                    "type": "integer"
                },
                "totalElement": {
                    "type": "integer"
                }
            }
        },
        "dto.CurrencyRequest": {
            "type": "object",
            "properties": {
                "activo": {
                    "type": "boolean",
                    "example": true
                },
                "codigoIso": {
                    "type": "string",
                    "example": "USD"
                },
                "decimales": {
                    "type": "integer",
                    "example": 2
                },
                "nombre": {
                    "type": "string",
                    "example": "Dólar estadounidense"
                },
                "simbolo": {
                    "type": "string",
                    "example": "$"
                }
            }
        },
        "dto.ListCurrenciesResponse": {
            "type": "object",
            "properties": {
                "monedas": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Currency"
                    }
                }
            }
        },
        "envelope.ErrorItem": {
            "type": "object",
            "properties": {
                "errorCode": {
                    "type": "string"
                },
                "errorDetail": {
                    "type": "string"
                }
            }
        },
        "envelope.ErrorResponse": {
            "type": "object",
            "properties": {
                "errors": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/envelope.ErrorItem"
                    }
                },
                "headers": {
                    "$ref": "#/definitions/envelope.Headers"
                },
                "messageResponse": {
                    "$ref": "#/definitions/envelope.MessageResponse"
                }
            }
        },
        "envelope.Headers": {
            "type": "object",
            "properties": {
                "httpStatusCode": {
                    "type": "integer"
                },
                "httpStatusDesc": {
                    "type": "string"
                },
                "messageUuid": {
                    "type": "string"
                },
                "requestAppId": {
                    "type": "string"
                },
                "requestDatetime": {
                    "type": "string"
                }
            }
        },
        "envelope.MessageResponse": {
            "type": "object",
            "properties": {
                "responseCode": {
                    "type": "string"
                },
                "responseDetails": {
                    "type": "string"
                },
                "responseMessage": {
                    "type": "string"
                }
            }
        },
        "envelope.PaginatedResponse-dto_ListCurrenciesResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/dto.ListCurrenciesResponse"
                },
                "headers": {
                    "$ref": "#/definitions/envelope.Headers"
                },
                "messageResponse": {
                    "$ref": "#/definitions/envelope.MessageResponse"
                },
                "pagination": {
                    "$ref": "#/definitions/domain.Pagination"
                }
            }
        },
        "envelope.SuccessResponse-domain_Currency": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/domain.Currency"
                },
                "headers": {
                    "$ref": "#/definitions/envelope.Headers"
                },
                "messageResponse": {
                    "$ref": "#/definitions/envelope.MessageResponse"
                }
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
	Title:            "POS Monedas API",
	Description:      "Currency (moneda) catalogue for the point-of-sale platform.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
