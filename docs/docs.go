// Package docs - OpenAPI-документ для swag. Обновляется вместе с аннотациями хэндлеров.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Проверка состояния",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}},
                    "503": {"description": "База недоступна", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
                }
            }
        },
        "/api/v1/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Регистрация",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "400": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "409": {"description": "Email уже занят", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Вход",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AuthResponse"}},
                    "401": {"description": "Неверный email или пароль", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/users/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Текущий пользователь",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/admin/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Список пользователей",
                "parameters": [
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"},
                    {"enum": ["SUPER_ADMIN", "ORGANIZATION", "USER"], "type": "string", "name": "role", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/admin/users/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Пользователь по ID",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Удалить пользователя",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/admin/users/{id}/role": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Сменить роль пользователя",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateRoleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/organizations": {
            "get": {
                "tags": ["organizations"],
                "summary": "Список организаций",
                "parameters": [
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"},
                    {"type": "string", "name": "name", "in": "query"},
                    {"type": "string", "name": "location", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["organizations"],
                "summary": "Создать организацию",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateOrganizationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.OrganizationResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/organizations/{id}": {
            "get": {
                "tags": ["organizations"],
                "summary": "Организация по ID",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.OrganizationResponse"}}}
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["organizations"],
                "summary": "Обновить организацию",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateOrganizationRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.OrganizationResponse"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["organizations"],
                "summary": "Удалить организацию",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/v1/opportunities": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["opportunities"],
                "summary": "Возможности своей организации",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["opportunities"],
                "summary": "Создать возможность от имени организации",
                "consumes": ["multipart/form-data", "application/json"],
                "parameters": [
                    {"type": "string", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "name": "description", "in": "formData", "required": true},
                    {"type": "string", "name": "category", "in": "formData", "required": true},
                    {"type": "string", "name": "opportunityType", "in": "formData", "required": true},
                    {"type": "string", "name": "experienceLevel", "in": "formData", "required": true},
                    {"type": "string", "name": "paymentType", "in": "formData", "required": true},
                    {"type": "string", "name": "location", "in": "formData"},
                    {"type": "file", "name": "image", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.OpportunityResponse"}},
                    "413": {"description": "Payload Too Large"},
                    "415": {"description": "Unsupported Media Type"}
                }
            }
        },
        "/api/v1/opportunities/all": {
            "get": {
                "tags": ["opportunities"],
                "summary": "Каталог возможностей",
                "parameters": [
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"},
                    {"type": "string", "name": "name", "in": "query"},
                    {"type": "string", "name": "location", "in": "query"},
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "name": "opportunityType", "in": "query"},
                    {"type": "string", "name": "experienceLevel", "in": "query"},
                    {"type": "string", "name": "paymentType", "in": "query"},
                    {"type": "string", "name": "organizationId", "in": "query"},
                    {"type": "string", "name": "createdAfter", "in": "query"},
                    {"type": "string", "name": "createdBefore", "in": "query"},
                    {"type": "string", "name": "sort", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/opportunities/{id}": {
            "get": {
                "tags": ["opportunities"],
                "summary": "Возможность по ID",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.OpportunityResponse"}}}
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["opportunities"],
                "summary": "Обновить возможность (SUPER_ADMIN)",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.OpportunityResponse"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["opportunities"],
                "summary": "Удалить возможность (SUPER_ADMIN)",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/v1/opportunities/byUser": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["opportunities"],
                "summary": "Свои возможности",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["opportunities"],
                "summary": "Создать возможность от своего имени",
                "consumes": ["multipart/form-data", "application/json"],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.OpportunityResponse"}}}
            }
        },
        "/api/v1/opportunities/byUser/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["opportunities"],
                "summary": "Своя возможность по ID",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.OpportunityResponse"}}}
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["opportunities"],
                "summary": "Обновить свою возможность",
                "consumes": ["multipart/form-data", "application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.OpportunityResponse"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["opportunities"],
                "summary": "Удалить свою возможность",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/v1/skills": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["skills"],
                "summary": "Мои навыки",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.SkillResponse"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["skills"],
                "summary": "Добавить навык",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateSkillRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.SkillResponse"}}}
            }
        },
        "/api/v1/skills/search": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["skills"],
                "summary": "Поиск пользователей по навыку",
                "parameters": [{"type": "string", "name": "name", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/skills/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["skills"],
                "summary": "Навык по ID",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SkillResponse"}}}
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["skills"],
                "summary": "Обновить навык",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateSkillRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SkillResponse"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["skills"],
                "summary": "Удалить навык",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        }
    },
    "definitions": {
        "apperrors.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "domain": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {}
                    }
                }
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "database": {"type": "string"},
                "time": {"type": "string"}
            }
        },
        "dto.RegisterRequest": {
            "type": "object",
            "required": ["email", "password", "firstName", "lastName", "role"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 8},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "role": {"type": "string", "enum": ["USER", "ORGANIZATION"]}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.AuthResponse": {
            "type": "object",
            "properties": {
                "accessToken": {"type": "string"},
                "tokenType": {"type": "string"},
                "expiresIn": {"type": "integer"},
                "user": {"$ref": "#/definitions/dto.UserResponse"}
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "role": {"type": "string", "enum": ["SUPER_ADMIN", "ORGANIZATION", "USER"]},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.UpdateRoleRequest": {
            "type": "object",
            "required": ["role"],
            "properties": {
                "role": {"type": "string", "enum": ["SUPER_ADMIN", "ORGANIZATION", "USER"]}
            }
        },
        "dto.CreateOrganizationRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "website": {"type": "string"},
                "location": {"type": "string"},
                "logoUrl": {"type": "string"}
            }
        },
        "dto.UpdateOrganizationRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "website": {"type": "string"},
                "location": {"type": "string"},
                "logoUrl": {"type": "string"}
            }
        },
        "dto.OrganizationResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "accountId": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "website": {"type": "string"},
                "location": {"type": "string"},
                "logoUrl": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.OpportunityResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "opportunityType": {"type": "string"},
                "experienceLevel": {"type": "string"},
                "paymentType": {"type": "string"},
                "location": {"type": "string"},
                "imageUrl": {"type": "string"},
                "organizationId": {"type": "string"},
                "userId": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.CreateSkillRequest": {
            "type": "object",
            "required": ["skillName"],
            "properties": {
                "skillName": {"type": "string"},
                "level": {"type": "string"}
            }
        },
        "dto.UpdateSkillRequest": {
            "type": "object",
            "properties": {
                "skillName": {"type": "string"},
                "level": {"type": "string"}
            }
        },
        "dto.SkillResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "userId": {"type": "string"},
                "skillName": {"type": "string"},
                "level": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "WeMatch API",
	Description:      "Платформа возможностей: организации, пользователи, навыки.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
