// Package docs registra la especificación OpenAPI servida en /swagger/*.
// Regenerar con: swag init -g cmd/api/main.go -o docs
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
        "/api/registro": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Registrar brigadista",
                "parameters": [
                    {"description": "Datos de registro", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/personas.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Iniciar sesión",
                "parameters": [
                    {"description": "Credenciales", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/personas.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/personas.loginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/logout": {
            "post": {
                "tags": ["usuarios"],
                "summary": "Cerrar sesión",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/usuarios": {
            "get": {
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Listar usuarios",
                "parameters": [
                    {"type": "string", "description": "Filtro por departamento (sin distinguir mayúsculas)", "name": "departamento", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/personas.personResponse"}}}
                }
            }
        },
        "/api/municipios": {
            "get": {
                "produces": ["application/json"],
                "tags": ["referencia"],
                "summary": "Listar departamentos",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/regions.Region"}}}
                }
            }
        },
        "/api/crear_reserva": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reservas"],
                "summary": "Crear reserva de brigada",
                "parameters": [
                    {"type": "string", "description": "Bearer token de /api/login", "name": "Authorization", "in": "header"},
                    {"description": "Reserva", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/reservas.createReservationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/reservas.createReservationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/brigada": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reservas"],
                "summary": "Brigada vigente",
                "parameters": [
                    {"type": "string", "description": "Bearer token de /api/login", "name": "Authorization", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/reservas.BrigadeView"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/capturas/contexto": {
            "get": {
                "produces": ["application/json"],
                "tags": ["capturas"],
                "summary": "Contexto de captura",
                "parameters": [
                    {"type": "string", "description": "Bearer token de /api/login", "name": "Authorization", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/capturas.contextResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/capturas/arboles": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["capturas"],
                "summary": "Registrar árbol",
                "parameters": [
                    {"type": "string", "description": "Bearer token de /api/login", "name": "Authorization", "in": "header"},
                    {"description": "Árbol", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/capturas.createTreeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/capturas.createdResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/capturas/plantas": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["capturas"],
                "summary": "Registrar planta",
                "parameters": [
                    {"type": "string", "description": "Bearer token de /api/login", "name": "Authorization", "in": "header"},
                    {"description": "Planta", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/capturas.createPlantRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/capturas.createdResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/reportes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reportes"],
                "summary": "Reporte de árboles",
                "parameters": [
                    {"type": "string", "description": "Tipo de reporte (solo Arbol)", "name": "tipo", "in": "query", "required": true},
                    {"type": "string", "description": "YYYY-MM-DD", "name": "fechaInicio", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD", "name": "fechaFin", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/reportes.reportResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "personas.registerRequest": {"type": "object", "properties": {
            "nro_documento": {"type": "string"}, "nombre": {"type": "string"}, "apellido": {"type": "string"},
            "contrasena": {"type": "string"}, "departamento": {"type": "string"}}},
        "personas.loginRequest": {"type": "object", "properties": {"nro_documento": {"type": "string"}, "contrasena": {"type": "string"}}},
        "personas.loginResponse": {"type": "object", "properties": {
            "ok": {"type": "boolean"}, "token": {"type": "string"}, "nombre": {"type": "string"}, "destino": {"type": "string"}}},
        "personas.personResponse": {"type": "object", "properties": {
            "NRO_DOCUMENTO": {"type": "string"}, "NOMBRE": {"type": "string"}, "APELLIDO": {"type": "string"}, "DEPARTAMENTO": {"type": "string"}}},
        "regions.Region": {"type": "object", "properties": {"id": {"type": "integer"}, "nombre": {"type": "string"}}},
        "reservas.createReservationRequest": {"type": "object", "properties": {
            "fechainicio": {"type": "string"}, "fechafin": {"type": "string"}, "municipio": {"type": "string"},
            "lat": {"type": "string"}, "lng": {"type": "string"},
            "participantes": {"type": "array", "items": {"type": "string"}}}},
        "reservas.createReservationResponse": {"type": "object", "properties": {"ok": {"type": "boolean"}, "id_reserva": {"type": "integer"}}},
        "reservas.BrigadeView": {"type": "object", "properties": {
            "id_reserva": {"type": "integer"}, "municipio": {"type": "string"}, "fecha_inicio": {"type": "string"},
            "fecha_fin": {"type": "string"}, "latitud": {"type": "string"}, "longitud": {"type": "string"}}},
        "capturas.Subplot": {"type": "object", "properties": {"id": {"type": "integer"}, "direccion": {"type": "string"}, "distancia": {"type": "integer"}}},
        "capturas.contextResponse": {"type": "object", "properties": {
            "reserva": {"$ref": "#/definitions/reservas.BrigadeView"},
            "subparcelas": {"type": "array", "items": {"$ref": "#/definitions/capturas.Subplot"}},
            "advertencia": {"type": "string"}}},
        "capturas.createTreeRequest": {"type": "object", "properties": {
            "nombre_cientifico": {"type": "string"}, "nombre_comun": {"type": "string"},
            "altura": {"type": "number"}, "diametro": {"type": "number"}, "dano": {"type": "string"},
            "formafuste": {"type": "string"}, "observaciones": {"type": "string"}, "nsubparcela": {"type": "integer"}}},
        "capturas.createPlantRequest": {"type": "object", "properties": {
            "tamano": {"type": "number"}, "nombre_comun": {"type": "string"},
            "observaciones": {"type": "string"}, "nsubparcela": {"type": "integer"}}},
        "capturas.createdResponse": {"type": "object", "properties": {"ok": {"type": "boolean"}, "mensaje": {"type": "string"}}},
        "reportes.reportResponse": {"type": "object", "properties": {"tabla": {"type": "array", "items": {"type": "object"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Brigadas Forestales API",
	Description:      "Registro de brigadistas, reservas de brigada, captura de datos de campo y reportes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
