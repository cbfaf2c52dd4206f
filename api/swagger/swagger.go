package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SMA Publisher API",
        "description": "Multi-course content distribution gateway",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Distributions", "description": "Multi-course publishing and history"},
        {"name": "Sections", "description": "Per-course section registry"},
        {"name": "Topics", "description": "Platform topic pass-through"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/metrics": {
            "get": {
                "summary": "Prometheus metrics",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/distributions": {
            "post": {
                "tags": ["Distributions"],
                "summary": "Publish an item to multiple courses",
                "parameters": [
                    {"name": "X-Classroom-Token", "in": "header", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PublishRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "Precondition failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "get": {
                "tags": ["Distributions"],
                "summary": "List distribution history",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "kind", "in": "query", "type": "string"},
                    {"name": "createdBy", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/distributions/export": {
            "get": {
                "tags": ["Distributions"],
                "summary": "Export distribution history",
                "parameters": [
                    {"name": "format", "in": "query", "required": true, "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "kind", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "403": {"description": "Exports disabled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{courseId}/sections": {
            "get": {
                "tags": ["Sections"],
                "summary": "List sections for a course",
                "parameters": [
                    {"name": "courseId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Sections"],
                "summary": "Create section",
                "parameters": [
                    {"name": "courseId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSectionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Duplicate name", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{courseId}/sections/{id}": {
            "put": {
                "tags": ["Sections"],
                "summary": "Update section",
                "parameters": [
                    {"name": "courseId", "in": "path", "required": true, "type": "string"},
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateSectionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Sections"],
                "summary": "Delete section",
                "parameters": [
                    {"name": "courseId", "in": "path", "required": true, "type": "string"},
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/courses/{courseId}/topic-links": {
            "put": {
                "tags": ["Sections"],
                "summary": "Link a topic to a default section",
                "parameters": [
                    {"name": "courseId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LinkTopicRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/courses/{courseId}/topic-links/{topicId}": {
            "delete": {
                "tags": ["Sections"],
                "summary": "Remove a topic's default section link",
                "parameters": [
                    {"name": "courseId", "in": "path", "required": true, "type": "string"},
                    {"name": "topicId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/courses/{courseId}/topics": {
            "get": {
                "tags": ["Topics"],
                "summary": "List platform topics for a course",
                "parameters": [
                    {"name": "courseId", "in": "path", "required": true, "type": "string"},
                    {"name": "X-Classroom-Token", "in": "header", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "ItemPayload": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["ANNOUNCEMENT", "ASSIGNMENT", "QUESTION"]},
                "title": {"type": "string"},
                "body": {"type": "string"},
                "attachments": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/AttachmentPayload"}
                },
                "max_points": {"type": "number"},
                "due_at": {"type": "string"},
                "question_type": {"type": "string", "enum": ["SHORT_ANSWER", "MULTIPLE_CHOICE"]},
                "choices": {
                    "type": "array",
                    "items": {"type": "string"}
                }
            },
            "required": ["kind"]
        },
        "AttachmentPayload": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["LINK", "VIDEO", "FILE"]},
                "url": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "TargetPayload": {
            "type": "object",
            "properties": {
                "course_id": {"type": "string"},
                "course_name": {"type": "string"}
            },
            "required": ["course_id"]
        },
        "PublishRequest": {
            "type": "object",
            "properties": {
                "item": {"$ref": "#/definitions/ItemPayload"},
                "targets": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/TargetPayload"}
                },
                "reference_course_id": {"type": "string"},
                "section_id": {"type": "string"},
                "topic_id": {"type": "string"}
            },
            "required": ["item", "targets", "reference_course_id"]
        },
        "DistributionOutcome": {
            "type": "object",
            "properties": {
                "course_id": {"type": "string"},
                "course_name": {"type": "string"},
                "success": {"type": "boolean"},
                "error": {"type": "string"}
            }
        },
        "DistributionResult": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["COMPLETE_SUCCESS", "PARTIAL_SUCCESS", "COMPLETE_FAILURE"]},
                "succeeded": {"type": "integer"},
                "failed": {"type": "integer"},
                "outcomes": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/DistributionOutcome"}
                }
            }
        },
        "Section": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "course_id": {"type": "string"},
                "name": {"type": "string"},
                "color": {"type": "string"},
                "student_ids": {
                    "type": "array",
                    "items": {"type": "string"}
                },
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "CreateSectionRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "color": {"type": "string"},
                "student_ids": {
                    "type": "array",
                    "items": {"type": "string"}
                }
            },
            "required": ["name", "student_ids"]
        },
        "UpdateSectionRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "color": {"type": "string"},
                "student_ids": {
                    "type": "array",
                    "items": {"type": "string"}
                }
            },
            "required": ["name", "student_ids"]
        },
        "LinkTopicRequest": {
            "type": "object",
            "properties": {
                "topic_id": {"type": "string"},
                "section_id": {"type": "string"}
            },
            "required": ["topic_id", "section_id"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
