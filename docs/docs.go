// Package docs registers the OpenAPI description served under /swagger.
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
        "/usuarios": {
            "post": {
                "description": "Registering the Administrador role requires claveAdmin to match the server key.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "Registration data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RegisterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CreatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Unknown e-mails and wrong passwords return the same 401 body.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login user",
                "parameters": [
                    {"description": "Login credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/reservas": {
            "post": {
                "description": "Fails with 409 when the space is already booked for the same fecha and hora.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reservas"],
                "summary": "Book a space",
                "parameters": [
                    {"description": "Reservation data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateReservationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CreatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/reservas-usuario/{usuario_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reservas"],
                "summary": "List a user's reservations",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "usuario_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Reservation"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/ver-reservas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reservas"],
                "summary": "List all reservations with their owners",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.ReservationWithOwner"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/reserva/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["reservas"],
                "summary": "Delete a reservation",
                "parameters": [
                    {"type": "integer", "description": "Reservation ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "error": {"type": "string"}}
        },
        "handler.CreatedResponse": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "message": {"type": "string"}, "success": {"type": "boolean"}}
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "success": {"type": "boolean"}}
        },
        "handler.RegisterRequest": {
            "type": "object",
            "required": ["contraseña", "correo", "nombre", "rol"],
            "properties": {
                "claveAdmin": {"type": "string"},
                "contraseña": {"type": "string"},
                "correo": {"type": "string"},
                "nombre": {"type": "string"},
                "rol": {"type": "string"}
            }
        },
        "handler.LoginRequest": {
            "type": "object",
            "required": ["contraseña", "correo"],
            "properties": {"contraseña": {"type": "string"}, "correo": {"type": "string"}}
        },
        "handler.LoginResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "user": {"$ref": "#/definitions/model.User"}}
        },
        "handler.CreateReservationRequest": {
            "type": "object",
            "required": ["espacio", "fecha", "hora", "tipo", "ubicacion", "usuario_id"],
            "properties": {
                "espacio": {"type": "string", "maxLength": 100},
                "fecha": {"type": "string"},
                "hora": {"type": "string"},
                "motivo": {"type": "string"},
                "tipo": {"type": "string", "maxLength": 100},
                "ubicacion": {"type": "string", "maxLength": 255},
                "usuario_id": {"type": "integer"}
            }
        },
        "model.User": {
            "type": "object",
            "properties": {
                "correo": {"type": "string"},
                "id": {"type": "integer"},
                "nombre": {"type": "string"},
                "rol": {"type": "string"}
            }
        },
        "model.Reservation": {
            "type": "object",
            "properties": {
                "espacio": {"type": "string"},
                "fecha": {"type": "string"},
                "hora": {"type": "string"},
                "id": {"type": "integer"},
                "motivo": {"type": "string"},
                "tipo": {"type": "string"},
                "ubicacion": {"type": "string"},
                "usuario_id": {"type": "integer"}
            }
        },
        "model.ReservationWithOwner": {
            "type": "object",
            "properties": {
                "espacio": {"type": "string"},
                "fecha": {"type": "string"},
                "hora": {"type": "string"},
                "id": {"type": "integer"},
                "motivo": {"type": "string"},
                "tipo": {"type": "string"},
                "ubicacion": {"type": "string"},
                "usuario_correo": {"type": "string"},
                "usuario_id": {"type": "integer"},
                "usuario_nombre": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3001",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Reservas API",
	Description:      "Space reservation API: user registration, login and double-booking-safe reservations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
