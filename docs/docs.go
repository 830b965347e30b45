// Package docs holds the OpenAPI document served at /swagger/*.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/health": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Liveness probe",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "ok"
                    }
                }
            }
        },
        "/health/ready": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Readiness probe",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "ok"
                    },
                    "503": {
                        "description": "degraded"
                    }
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Login",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "session",
                        "schema": {
                            "$ref": "#/definitions/sessionResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    },
                    "429": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/loginRequest"
                        }
                    }
                ]
            }
        },
        "/api/auth/setup": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Bootstrap the first super admin",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "session",
                        "schema": {
                            "$ref": "#/definitions/sessionResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    },
                    "429": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/setupRequest"
                        }
                    }
                ]
            }
        },
        "/api/auth/profile": {
            "get": {
                "tags": [
                    "auth"
                ],
                "summary": "Get own profile",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "user",
                        "schema": {
                            "$ref": "#/definitions/userResponse"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "auth"
                ],
                "summary": "Update own profile",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "session",
                        "schema": {
                            "$ref": "#/definitions/sessionResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    },
                    "409": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/profileRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/auth/forgotpassword": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Request a password reset email",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "sent",
                        "schema": {
                            "$ref": "#/definitions/messageResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/forgotPasswordRequest"
                        }
                    }
                ]
            }
        },
        "/api/auth/resetpassword/{token}": {
            "put": {
                "tags": [
                    "auth"
                ],
                "summary": "Reset password with an emailed token",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "session",
                        "schema": {
                            "$ref": "#/definitions/sessionResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "token",
                        "required": true,
                        "description": "Reset token from the email link"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/resetPasswordRequest"
                        }
                    }
                ]
            }
        },
        "/api/auth/invite": {
            "post": {
                "tags": [
                    "users"
                ],
                "summary": "Invite an administrator",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "invited user",
                        "schema": {
                            "$ref": "#/definitions/userResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inviteRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/auth/accept-invite": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Accept an invitation",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "accepted",
                        "schema": {
                            "$ref": "#/definitions/messageResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/acceptInviteRequest"
                        }
                    }
                ]
            }
        },
        "/api/auth/users": {
            "get": {
                "tags": [
                    "users"
                ],
                "summary": "List users",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "users",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/userResponse"
                            }
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/auth/users/{id}": {
            "put": {
                "tags": [
                    "users"
                ],
                "summary": "Update a user",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "user",
                        "schema": {
                            "$ref": "#/definitions/userResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "User ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/updateUserRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "users"
                ],
                "summary": "Delete a user",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "removed",
                        "schema": {
                            "$ref": "#/definitions/messageResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "User ID"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/blogs": {
            "get": {
                "tags": [
                    "blogs"
                ],
                "summary": "List blogs",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "blogs",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.Blog"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "blogs"
                ],
                "summary": "Create a blog",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "blog",
                        "schema": {
                            "$ref": "#/definitions/domain.Blog"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    },
                    "409": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "multipart/form-data"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "in": "formData",
                        "name": "title",
                        "required": true
                    },
                    {
                        "type": "string",
                        "in": "formData",
                        "name": "content",
                        "required": true
                    },
                    {
                        "type": "string",
                        "in": "formData",
                        "name": "tags",
                        "required": false
                    },
                    {
                        "type": "boolean",
                        "in": "formData",
                        "name": "isPublished",
                        "required": false
                    },
                    {
                        "type": "file",
                        "in": "formData",
                        "name": "image",
                        "required": false
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/blogs/{id}": {
            "get": {
                "tags": [
                    "blogs"
                ],
                "summary": "Get a blog",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "blog",
                        "schema": {
                            "$ref": "#/definitions/domain.Blog"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "Blog ID"
                    }
                ]
            },
            "put": {
                "tags": [
                    "blogs"
                ],
                "summary": "Update a blog",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "blog",
                        "schema": {
                            "$ref": "#/definitions/domain.Blog"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json",
                    "multipart/form-data"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "Blog ID"
                    },
                    {
                        "type": "string",
                        "in": "formData",
                        "name": "title",
                        "required": false
                    },
                    {
                        "type": "string",
                        "in": "formData",
                        "name": "content",
                        "required": false
                    },
                    {
                        "type": "string",
                        "in": "formData",
                        "name": "tags",
                        "required": false
                    },
                    {
                        "type": "boolean",
                        "in": "formData",
                        "name": "isPublished",
                        "required": false
                    },
                    {
                        "type": "file",
                        "in": "formData",
                        "name": "image",
                        "required": false
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "blogs"
                ],
                "summary": "Delete a blog",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "removed",
                        "schema": {
                            "$ref": "#/definitions/messageResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "Blog ID"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/products": {
            "get": {
                "tags": [
                    "products"
                ],
                "summary": "List products",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "products",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.Product"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "products"
                ],
                "summary": "Create a product",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "product",
                        "schema": {
                            "$ref": "#/definitions/domain.Product"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    },
                    "429": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "multipart/form-data"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "in": "formData",
                        "name": "name",
                        "required": true
                    },
                    {
                        "type": "string",
                        "in": "formData",
                        "name": "description",
                        "required": true
                    },
                    {
                        "type": "string",
                        "in": "formData",
                        "name": "category",
                        "required": true
                    },
                    {
                        "type": "string",
                        "in": "formData",
                        "name": "specifications",
                        "required": false
                    },
                    {
                        "type": "boolean",
                        "in": "formData",
                        "name": "isFeatured",
                        "required": false
                    },
                    {
                        "type": "file",
                        "in": "formData",
                        "name": "images",
                        "required": false
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/products/{id}": {
            "get": {
                "tags": [
                    "products"
                ],
                "summary": "Get a product",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "product",
                        "schema": {
                            "$ref": "#/definitions/domain.Product"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "Product ID"
                    }
                ]
            },
            "put": {
                "tags": [
                    "products"
                ],
                "summary": "Update a product",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "product",
                        "schema": {
                            "$ref": "#/definitions/domain.Product"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json",
                    "multipart/form-data"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "Product ID"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "products"
                ],
                "summary": "Delete a product",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "removed",
                        "schema": {
                            "$ref": "#/definitions/messageResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "Product ID"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/certificates": {
            "get": {
                "tags": [
                    "certificates"
                ],
                "summary": "List certificates",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "certificates",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.Certificate"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "certificates"
                ],
                "summary": "Upload a certificate",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "certificate",
                        "schema": {
                            "$ref": "#/definitions/domain.Certificate"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "multipart/form-data"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "in": "formData",
                        "name": "title",
                        "required": true
                    },
                    {
                        "type": "string",
                        "in": "formData",
                        "name": "issuer",
                        "required": true
                    },
                    {
                        "type": "string",
                        "in": "formData",
                        "name": "issueDate",
                        "required": false
                    },
                    {
                        "type": "file",
                        "in": "formData",
                        "name": "file",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/certificates/{id}": {
            "delete": {
                "tags": [
                    "certificates"
                ],
                "summary": "Delete a certificate",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "removed",
                        "schema": {
                            "$ref": "#/definitions/messageResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "Certificate ID"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/gallery": {
            "get": {
                "tags": [
                    "gallery"
                ],
                "summary": "List gallery items",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "items",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.GalleryItem"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "gallery"
                ],
                "summary": "Add a gallery image",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "item",
                        "schema": {
                            "$ref": "#/definitions/domain.GalleryItem"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "multipart/form-data"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "in": "formData",
                        "name": "title",
                        "required": true
                    },
                    {
                        "type": "string",
                        "in": "formData",
                        "name": "category",
                        "required": false
                    },
                    {
                        "type": "file",
                        "in": "formData",
                        "name": "image",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/gallery/{id}": {
            "delete": {
                "tags": [
                    "gallery"
                ],
                "summary": "Delete a gallery image",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "removed",
                        "schema": {
                            "$ref": "#/definitions/messageResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "Gallery item ID"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/inquiries": {
            "get": {
                "tags": [
                    "inquiries"
                ],
                "summary": "List inquiries",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "inquiries",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.Inquiry"
                            }
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "inquiries"
                ],
                "summary": "Submit an inquiry",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "inquiry",
                        "schema": {
                            "$ref": "#/definitions/domain.Inquiry"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    },
                    "429": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inquiryRequest"
                        }
                    }
                ]
            }
        },
        "/api/inquiries/{id}": {
            "put": {
                "tags": [
                    "inquiries"
                ],
                "summary": "Update inquiry status",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "inquiry",
                        "schema": {
                            "$ref": "#/definitions/domain.Inquiry"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "Inquiry ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inquiryStatusRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "inquiries"
                ],
                "summary": "Delete an inquiry",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "removed",
                        "schema": {
                            "$ref": "#/definitions/messageResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "Inquiry ID"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/testimonials": {
            "get": {
                "tags": [
                    "testimonials"
                ],
                "summary": "List approved testimonials",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "testimonials",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.Testimonial"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "testimonials"
                ],
                "summary": "Submit a testimonial",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "testimonial",
                        "schema": {
                            "$ref": "#/definitions/domain.Testimonial"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    },
                    "429": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json",
                    "multipart/form-data"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "in": "formData",
                        "name": "name",
                        "required": true
                    },
                    {
                        "type": "string",
                        "in": "formData",
                        "name": "email",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "in": "formData",
                        "name": "rating",
                        "required": true
                    },
                    {
                        "type": "string",
                        "in": "formData",
                        "name": "content",
                        "required": true
                    },
                    {
                        "type": "string",
                        "in": "formData",
                        "name": "designation",
                        "required": false
                    },
                    {
                        "type": "file",
                        "in": "formData",
                        "name": "avatar",
                        "required": false
                    }
                ]
            }
        },
        "/api/testimonials/all": {
            "get": {
                "tags": [
                    "testimonials"
                ],
                "summary": "List all testimonials",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "testimonials",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.Testimonial"
                            }
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/testimonials/{id}": {
            "put": {
                "tags": [
                    "testimonials"
                ],
                "summary": "Update a testimonial",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "testimonial",
                        "schema": {
                            "$ref": "#/definitions/domain.Testimonial"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json",
                    "multipart/form-data"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "Testimonial ID"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "testimonials"
                ],
                "summary": "Delete a testimonial",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "removed",
                        "schema": {
                            "$ref": "#/definitions/messageResponse"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "description": "Testimonial ID"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/pages": {
            "get": {
                "tags": [
                    "pages"
                ],
                "summary": "List pages",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "pages",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.Page"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "pages"
                ],
                "summary": "Create a page",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "page",
                        "schema": {
                            "$ref": "#/definitions/domain.Page"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pageRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/pages/{slug}": {
            "get": {
                "tags": [
                    "pages"
                ],
                "summary": "Get a page",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "page",
                        "schema": {
                            "$ref": "#/definitions/domain.Page"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "slug",
                        "required": true,
                        "description": "Page slug"
                    }
                ]
            },
            "put": {
                "tags": [
                    "pages"
                ],
                "summary": "Update a page",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "page",
                        "schema": {
                            "$ref": "#/definitions/domain.Page"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "in": "path",
                        "name": "slug",
                        "required": true,
                        "description": "Page slug"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pageRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/settings": {
            "get": {
                "tags": [
                    "settings"
                ],
                "summary": "Get site settings",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "settings",
                        "schema": {
                            "$ref": "#/definitions/domain.Settings"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "settings"
                ],
                "summary": "Update site settings",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "updated",
                        "schema": {
                            "$ref": "#/definitions/domain.Settings"
                        }
                    },
                    "201": {
                        "description": "created",
                        "schema": {
                            "$ref": "#/definitions/domain.Settings"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/errorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/settingsRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "errorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "fields": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "field": {
                                "type": "string"
                            },
                            "message": {
                                "type": "string"
                            }
                        }
                    }
                },
                "detail": {
                    "type": "string"
                }
            }
        },
        "messageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "userResponse": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "isInvited": {
                    "type": "boolean"
                }
            }
        },
        "sessionResponse": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "token": {
                    "type": "string"
                }
            }
        },
        "loginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "setupRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "profileRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "forgotPasswordRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                }
            }
        },
        "resetPasswordRequest": {
            "type": "object",
            "properties": {
                "password": {
                    "type": "string"
                }
            }
        },
        "inviteRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "admin",
                        "super-admin"
                    ]
                }
            }
        },
        "acceptInviteRequest": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "updateUserRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "inquiryRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "subject": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "inquiryStatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "new",
                        "read",
                        "replied"
                    ]
                }
            }
        },
        "pageRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                },
                "content": {
                    "type": "object"
                },
                "isActive": {
                    "type": "boolean"
                }
            }
        },
        "settingsRequest": {
            "type": "object",
            "properties": {
                "siteName": {
                    "type": "string"
                },
                "siteDescription": {
                    "type": "string"
                },
                "contactEmail": {
                    "type": "string"
                },
                "contactPhone": {
                    "type": "string"
                },
                "alternatePhone": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "pincode": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "facebookUrl": {
                    "type": "string"
                },
                "twitterUrl": {
                    "type": "string"
                },
                "linkedinUrl": {
                    "type": "string"
                },
                "instagramUrl": {
                    "type": "string"
                },
                "ogImageUrl": {
                    "type": "string"
                }
            }
        },
        "domain.Blog": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "isPublished": {
                    "type": "boolean"
                },
                "author": {
                    "type": "object",
                    "properties": {
                        "id": {
                            "type": "string"
                        },
                        "name": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "domain.Product": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "images": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "specifications": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "isFeatured": {
                    "type": "boolean"
                }
            }
        },
        "domain.Certificate": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "issuer": {
                    "type": "string"
                },
                "issueDate": {
                    "type": "string"
                },
                "fileUrl": {
                    "type": "string"
                },
                "thumbnail": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "domain.GalleryItem": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "imageUrl": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "domain.Inquiry": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "subject": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "new",
                        "read",
                        "replied"
                    ]
                }
            }
        },
        "domain.Testimonial": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "designation": {
                    "type": "string"
                },
                "avatar": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "rating": {
                    "type": "integer"
                },
                "isApproved": {
                    "type": "boolean"
                }
            }
        },
        "domain.Page": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "content": {
                    "type": "object"
                },
                "isActive": {
                    "type": "boolean"
                }
            }
        },
        "domain.Settings": {
            "type": "object",
            "properties": {
                "siteName": {
                    "type": "string"
                },
                "siteDescription": {
                    "type": "string"
                },
                "contactEmail": {
                    "type": "string"
                },
                "contactPhone": {
                    "type": "string"
                },
                "alternatePhone": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "pincode": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "facebookUrl": {
                    "type": "string"
                },
                "twitterUrl": {
                    "type": "string"
                },
                "linkedinUrl": {
                    "type": "string"
                },
                "instagramUrl": {
                    "type": "string"
                },
                "ogImageUrl": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
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
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "NJR EXIM CMS API",
	Description:      "Content management backend: auth, role gating and site content.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
