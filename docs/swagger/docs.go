// Package swagger регистрирует OpenAPI-описание сервиса для /swagger/*.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {
                "tags": ["System"],
                "summary": "Состояние сервиса и зависимостей",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/api/v1/sites/analysis": {
            "get": {
                "tags": ["Sites"],
                "summary": "Анализ площадки под мост",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "number", "description": "Широта (-90..90)", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Долгота (-180..180)", "name": "lng", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "504": {"description": "Gateway Timeout", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "post": {
                "tags": ["Sites"],
                "summary": "Анализ площадки под мост (JSON)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"description": "Координаты площадки", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AnalyzeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "504": {"description": "Gateway Timeout", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/sessions/{session}/selection": {
            "get": {
                "tags": ["Sessions"],
                "summary": "Текущий выбор сессии",
                "parameters": [
                    {"type": "string", "description": "Идентификатор сессии", "name": "session", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "post": {
                "tags": ["Sessions"],
                "summary": "Выбор площадки в сессии",
                "consumes": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Идентификатор сессии", "name": "session", "in": "path", "required": true},
                    {"description": "Координаты площадки", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AnalyzeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Sessions"],
                "summary": "Сброс выбора сессии",
                "parameters": [
                    {"type": "string", "description": "Идентификатор сессии", "name": "session", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/api/v1/search": {
            "get": {
                "tags": ["Search"],
                "summary": "Поиск места по названию",
                "parameters": [
                    {"type": "string", "description": "Название места", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/coordinates/parse": {
            "get": {
                "tags": ["Search"],
                "summary": "Разбор координат, введённых вручную",
                "parameters": [
                    {"type": "string", "description": "Координаты, например 30.7333, 79.0667", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/catalog": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Справочник площадок",
                "parameters": [
                    {"type": "number", "description": "Широта точки отсчёта", "name": "lat", "in": "query"},
                    {"type": "number", "description": "Долгота точки отсчёта", "name": "lng", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/catalog/{id}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Запись справочника",
                "parameters": [
                    {"type": "string", "description": "Идентификатор записи", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/analyses": {
            "get": {
                "tags": ["History"],
                "summary": "Последние анализы",
                "parameters": [
                    {"type": "integer", "default": 20, "description": "Количество (1..100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "501": {"description": "Not Implemented", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/analyses/{id}": {
            "get": {
                "tags": ["History"],
                "summary": "Сохранённый анализ",
                "parameters": [
                    {"type": "string", "description": "UUID анализа", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "501": {"description": "Not Implemented", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.AnalyzeRequest": {
            "type": "object",
            "required": ["lat", "lng"],
            "properties": {
                "lat": {"type": "number", "maximum": 90, "minimum": -90},
                "lng": {"type": "number", "maximum": 180, "minimum": -180}
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true},
                "message": {"type": "string"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/errors.AppError"}
            }
        },
        "utils.Meta": {
            "type": "object",
            "properties": {
                "cached": {"type": "boolean"},
                "time_ms": {"type": "number"},
                "total": {"type": "integer"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {"$ref": "#/definitions/utils.Meta"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Bridge Site Analyzer API",
	Description:      "Оценка площадок под мост: рельеф, геология, сейсмика, ранжирование типов мостов и стоимость жизненного цикла.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
