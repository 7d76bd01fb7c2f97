// Package docs Swagger 文档，可通过 swag init 重新生成
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API支持",
            "email": "support@english-station.dev"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["系统"],
                "summary": "健康检查",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.HealthResponse"}},
                    "503": {"description": "数据库不可用", "schema": {"$ref": "#/definitions/controller.HealthResponse"}}
                }
            }
        },
        "/lessons": {
            "get": {
                "produces": ["application/json"],
                "tags": ["课程"],
                "summary": "课程列表",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Lesson"}}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["管理"],
                "summary": "创建课程",
                "parameters": [
                    {"description": "课程", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.LessonInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Lesson"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/lessons/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["课程"],
                "summary": "课程详情",
                "parameters": [
                    {"type": "integer", "description": "课程ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Lesson"}},
                    "404": {"description": "课程不存在", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/quiz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["测验"],
                "summary": "测验列表",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.QuizView"}}}
                }
            }
        },
        "/quiz/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["测验"],
                "summary": "测验详情（不含正确答案标记）",
                "parameters": [
                    {"type": "integer", "description": "测验ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.QuizView"}},
                    "404": {"description": "测验不存在", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/quiz/{id}/submit": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["测验"],
                "summary": "提交测验",
                "parameters": [
                    {"type": "integer", "description": "测验ID", "name": "id", "in": "path", "required": true},
                    {"description": "作答", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.SubmitRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.SubmitResult"}},
                    "404": {"description": "测验不存在", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "422": {"description": "测验没有题目", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/quiz/results/{userId}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["测验"],
                "summary": "测验记录",
                "parameters": [
                    {"type": "string", "description": "用户ID", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.QuizResult"}}}
                }
            }
        },
        "/progress": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["进度"],
                "summary": "更新学习进度",
                "parameters": [
                    {"description": "进度", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.ProgressInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Progress"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Progress"}}
                }
            }
        },
        "/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["用户"],
                "summary": "用户注册",
                "parameters": [
                    {"description": "注册信息", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.RegisterInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.User"}},
                    "409": {"description": "邮箱或用户名已存在", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/users/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["用户"],
                "summary": "用户登录",
                "parameters": [
                    {"description": "登录信息", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.LoginInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.LoginResult"}},
                    "401": {"description": "邮箱或密码错误", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["设置"],
                "summary": "站点设置",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {}}}
                }
            }
        },
        "/admin/settings": {
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["管理"],
                "summary": "合并更新站点设置",
                "parameters": [
                    {"description": "设置键值，值可为任意 JSON", "name": "body", "in": "body", "required": true, "schema": {"type": "object", "additionalProperties": {}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {}}},
                    "400": {"description": "参数错误", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controller.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "database": {"type": "string"}
            }
        },
        "util.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "model.Lesson": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "content": {"type": "string"},
                "level": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "model.AnswerView": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "content": {"type": "string"}
            }
        },
        "model.QuestionView": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "content": {"type": "string"},
                "type": {"type": "string"},
                "order": {"type": "integer"},
                "answers": {"type": "array", "items": {"$ref": "#/definitions/model.AnswerView"}}
            }
        },
        "model.QuizView": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "lessonId": {"type": "integer"},
                "timeLimit": {"type": "integer"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/model.QuestionView"}}
            }
        },
        "model.QuizResult": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "userId": {"type": "string"},
                "quizId": {"type": "integer"},
                "score": {"type": "integer"},
                "answers": {"type": "array", "items": {"$ref": "#/definitions/model.SubmittedAnswer"}},
                "createdAt": {"type": "string"}
            }
        },
        "model.SubmittedAnswer": {
            "type": "object",
            "properties": {
                "questionId": {"type": "integer"},
                "answerId": {"type": "integer"}
            }
        },
        "model.Progress": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "userId": {"type": "string"},
                "lessonId": {"type": "integer"},
                "completed": {"type": "boolean"},
                "progress": {"type": "integer"}
            }
        },
        "model.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "username": {"type": "string"},
                "isAdmin": {"type": "boolean"},
                "level": {"type": "string"},
                "progress": {"type": "integer"},
                "streak": {"type": "integer"}
            }
        },
        "service.LessonInput": {
            "type": "object",
            "required": ["content", "level", "title"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "content": {"type": "string"},
                "level": {"type": "string"}
            }
        },
        "service.SubmitRequest": {
            "type": "object",
            "properties": {
                "userId": {"type": "string"},
                "answers": {"type": "array", "items": {"$ref": "#/definitions/model.SubmittedAnswer"}}
            }
        },
        "service.SubmitResult": {
            "type": "object",
            "properties": {
                "score": {"type": "integer"},
                "totalQuestions": {"type": "integer"},
                "correctAnswers": {"type": "integer"},
                "quizResult": {"$ref": "#/definitions/model.QuizResult"}
            }
        },
        "service.ProgressInput": {
            "type": "object",
            "required": ["lessonId"],
            "properties": {
                "userId": {"type": "string"},
                "lessonId": {"type": "integer"},
                "completed": {"type": "boolean"},
                "progress": {"type": "integer"}
            }
        },
        "service.RegisterInput": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "email": {"type": "string"},
                "username": {"type": "string"},
                "password": {"type": "string"},
                "level": {"type": "string"}
            }
        },
        "service.LoginInput": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "service.LoginResult": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "username": {"type": "string"},
                "isAdmin": {"type": "boolean"},
                "level": {"type": "string"},
                "token": {"type": "string"},
                "refreshToken": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "English Station 后端 API",
	Description:      "English Station 英语学习平台的后端服务：课程、测验、学习进度与用户。",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
