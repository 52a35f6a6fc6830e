// Package docs registers the Swagger specification served at /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "https://www.recruithub.io/support",
            "email": "support@recruithub.io"
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
        "/auth/login": {
            "post": {
                "description": "Authenticates a user with email and password and returns a token pair",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Authenticated successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.AuthResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid request format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Account disabled", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Revokes every refresh token of the authenticated user",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {
                    "200": {"description": "Logged out", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the profile of the authenticated user",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Get own profile",
                "responses": {
                    "200": {
                        "description": "Profile retrieved",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.UserResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "description": "Exchanges a valid refresh token for a new token pair",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Refresh tokens",
                "parameters": [
                    {
                        "description": "Refresh token",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.RefreshTokenRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Tokens refreshed",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.TokenResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid request format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Token invalid, expired or revoked", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Creates a new ADMIN or RECRUITER account. Admin only.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a user",
                "parameters": [
                    {
                        "description": "User information",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.RegisterRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "User created successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.UserResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid request data", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Email already exists", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/colleges": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["colleges"],
                "summary": "List colleges",
                "responses": {
                    "200": {
                        "description": "Colleges retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {"$ref": "#/definitions/dto.CollegeResponse"}
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Registers a new partner college with its SPOC contact",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["colleges"],
                "summary": "Create a college",
                "parameters": [
                    {
                        "description": "College information",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CreateCollegeRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "College created successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.CollegeResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid request data", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "College already exists", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/colleges/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["colleges"],
                "summary": "Get college by ID",
                "parameters": [
                    {"type": "integer", "description": "College ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "College retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.CollegeResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid college ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "College not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["colleges"],
                "summary": "Update a college",
                "parameters": [
                    {"type": "integer", "description": "College ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Updated college information",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.UpdateCollegeRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "College updated successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.CollegeResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid request format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "College not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "College name already taken", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Deletes a college. Colleges with drives cannot be deleted.",
                "produces": ["application/json"],
                "tags": ["colleges"],
                "summary": "Delete a college",
                "parameters": [
                    {"type": "integer", "description": "College ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "College deleted successfully"},
                    "400": {"description": "Invalid college ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "College not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "College has drives", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/drives": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["drives"],
                "summary": "List drives",
                "parameters": [
                    {"type": "integer", "description": "Filter by college ID", "name": "collegeId", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "Drives retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {"$ref": "#/definitions/dto.DriveResponse"}
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Creates a recruitment drive with its interview round configuration",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["drives"],
                "summary": "Create a drive",
                "parameters": [
                    {
                        "description": "Drive information",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CreateDriveRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Drive created successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.DriveResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid request data", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "College not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Drive already exists", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/drives/{driveId}/board": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Derives the current pipeline board of a drive from its roster's round history",
                "produces": ["application/json"],
                "tags": ["board"],
                "summary": "Get the pipeline board",
                "parameters": [
                    {"type": "integer", "description": "Drive ID", "name": "driveId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Board derived successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.BoardResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid drive ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Drive not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/drives/{driveId}/board/transitions": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Moves a student to another round bucket and persists the new round record",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["board"],
                "summary": "Move a student between buckets",
                "parameters": [
                    {"type": "integer", "description": "Drive ID", "name": "driveId", "in": "path", "required": true},
                    {
                        "description": "Transition",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.TransitionRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Move applied, updated board returned",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.BoardResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid or unsupported transition", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Drive not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Board changed since it was fetched", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "502": {"description": "Move could not be saved", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/drives/{driveId}/evaluations": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["evaluations"],
                "summary": "List pre-screening jobs",
                "parameters": [
                    {"type": "integer", "description": "Drive ID", "name": "driveId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Jobs retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {"$ref": "#/definitions/dto.EvaluationJobResponse"}
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid drive ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Drive not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Starts an asynchronous round-1 pre-screening job for the drive's roster",
                "produces": ["application/json"],
                "tags": ["evaluations"],
                "summary": "Start a pre-screening job",
                "parameters": [
                    {"type": "integer", "description": "Drive ID", "name": "driveId", "in": "path", "required": true}
                ],
                "responses": {
                    "202": {
                        "description": "Job accepted",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.EvaluationJobResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid drive ID or no screening round configured", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Drive not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "A job is already running for this drive", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/drives/{driveId}/panels": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["panels"],
                "summary": "List panels",
                "parameters": [
                    {"type": "integer", "description": "Drive ID", "name": "driveId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Panels retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {"$ref": "#/definitions/dto.PanelResponse"}
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid drive ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Drive not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["panels"],
                "summary": "Create a panel",
                "parameters": [
                    {"type": "integer", "description": "Drive ID", "name": "driveId", "in": "path", "required": true},
                    {
                        "description": "Panel information",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CreatePanelRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Panel created successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.PanelResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid request or unconfigured round", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Drive not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/drives/{driveId}/students": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Lists the drive's roster with each student's full round history",
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "List roster",
                "parameters": [
                    {"type": "integer", "description": "Drive ID", "name": "driveId", "in": "path", "required": true},
                    {"type": "integer", "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "Roster retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.PaginatedResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid drive ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Drive not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Add a student",
                "parameters": [
                    {"type": "integer", "description": "Drive ID", "name": "driveId", "in": "path", "required": true},
                    {
                        "description": "Student information",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CreateStudentRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Student added successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.StudentResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid request data", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Drive not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Registration number already on the roster", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/drives/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["drives"],
                "summary": "Get drive by ID",
                "parameters": [
                    {"type": "integer", "description": "Drive ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Drive retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.DriveResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid drive ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Drive not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Updates a drive. Omitting rounds keeps the current round configuration.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["drives"],
                "summary": "Update a drive",
                "parameters": [
                    {"type": "integer", "description": "Drive ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Updated drive information",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.UpdateDriveRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Drive updated successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.DriveResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid request format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Drive not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["drives"],
                "summary": "Delete a drive",
                "parameters": [
                    {"type": "integer", "description": "Drive ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Drive deleted successfully"},
                    "400": {"description": "Invalid drive ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Drive not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/evaluations/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["evaluations"],
                "summary": "Get a pre-screening job",
                "parameters": [
                    {"type": "integer", "description": "Job ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Job retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.EvaluationJobResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid job ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Job not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/panels/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["panels"],
                "summary": "Get panel by ID",
                "parameters": [
                    {"type": "integer", "description": "Panel ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Panel retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.PanelResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid panel ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Panel not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["panels"],
                "summary": "Delete a panel",
                "parameters": [
                    {"type": "integer", "description": "Panel ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Panel deleted successfully"},
                    "400": {"description": "Invalid panel ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Panel not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/panels/{id}/assignments/{studentId}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Attaches the panel to the student's record for the panel's round",
                "produces": ["application/json"],
                "tags": ["panels"],
                "summary": "Assign a panel to a student",
                "parameters": [
                    {"type": "integer", "description": "Panel ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Student ID", "name": "studentId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Panel assigned", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Panel or student round not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/panels/{id}/members": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["panels"],
                "summary": "Add a panel member",
                "parameters": [
                    {"type": "integer", "description": "Panel ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Member",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.AddPanelMemberRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Member added",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.PanelResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Panel or user not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "User already a member", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/panels/{id}/members/{userId}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["panels"],
                "summary": "Remove a panel member",
                "parameters": [
                    {"type": "integer", "description": "Panel ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "User ID", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Member removed"},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Member not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Get student by ID",
                "parameters": [
                    {"type": "integer", "description": "Student ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Student retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.StudentResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid student ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Update a student",
                "parameters": [
                    {"type": "integer", "description": "Student ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Updated student information",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.UpdateStudentRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Student updated successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/dto.StudentResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid request format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Delete a student",
                "parameters": [
                    {"type": "integer", "description": "Student ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Student deleted successfully"},
                    "400": {"description": "Invalid student ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string", "example": "Operation completed successfully"},
                "data": {},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "timestamp": {"type": "string", "example": "2026-04-23T12:01:05.123Z"}
            }
        },
        "dto.AddPanelMemberRequest": {
            "type": "object",
            "required": ["userId"],
            "properties": {
                "userId": {"type": "integer", "minimum": 1, "example": 7}
            }
        },
        "dto.AuthResponse": {
            "type": "object",
            "properties": {
                "token": {"$ref": "#/definitions/dto.TokenResponse"},
                "user": {"$ref": "#/definitions/dto.UserResponse"}
            }
        },
        "dto.BoardDiagnosticsResponse": {
            "type": "object",
            "properties": {
                "unknownRounds": {"type": "integer", "example": 0},
                "ambiguousTies": {"type": "integer", "example": 0},
                "unassigned": {"type": "integer", "example": 3}
            }
        },
        "dto.BoardEntryResponse": {
            "type": "object",
            "properties": {
                "student": {"$ref": "#/definitions/dto.StudentResponse"},
                "current": {"$ref": "#/definitions/dto.RoundRecordResponse"}
            }
        },
        "dto.BoardResponse": {
            "type": "object",
            "properties": {
                "driveId": {"type": "integer", "example": 1},
                "buckets": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/dto.BucketResponse"}
                },
                "unassigned": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/dto.StudentResponse"}
                },
                "diagnostics": {"$ref": "#/definitions/dto.BoardDiagnosticsResponse"}
            }
        },
        "dto.BucketResponse": {
            "type": "object",
            "properties": {
                "key": {"type": "string", "example": "round-2"},
                "name": {"type": "string", "example": "Technical Interview"},
                "entries": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/dto.BoardEntryResponse"}
                }
            }
        },
        "dto.CollegeResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "National Institute of Technology"},
                "city": {"type": "string", "example": "Pune"},
                "spocName": {"type": "string", "example": "Priya Sharma"},
                "spocEmail": {"type": "string", "example": "placements@nit.edu"},
                "spocPhone": {"type": "string", "example": "+91-9800000000"}
            }
        },
        "dto.CreateCollegeRequest": {
            "type": "object",
            "required": ["name", "city", "spocName", "spocEmail"],
            "properties": {
                "name": {"type": "string", "maxLength": 150, "minLength": 2},
                "city": {"type": "string", "maxLength": 100, "minLength": 2},
                "spocName": {"type": "string"},
                "spocEmail": {"type": "string"},
                "spocPhone": {"type": "string"}
            }
        },
        "dto.CreateDriveRequest": {
            "type": "object",
            "required": ["name", "company", "collegeId", "startDate", "rounds"],
            "properties": {
                "name": {"type": "string", "maxLength": 150, "minLength": 2},
                "company": {"type": "string", "maxLength": 150, "minLength": 2},
                "collegeId": {"type": "integer", "minimum": 1},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "rounds": {
                    "type": "array",
                    "minItems": 1,
                    "items": {"$ref": "#/definitions/dto.DriveRoundRequest"}
                }
            }
        },
        "dto.CreatePanelRequest": {
            "type": "object",
            "required": ["roundNumber", "name"],
            "properties": {
                "roundNumber": {"type": "integer", "minimum": 2},
                "name": {"type": "string", "maxLength": 100, "minLength": 2},
                "memberIds": {
                    "type": "array",
                    "items": {"type": "integer"}
                }
            }
        },
        "dto.CreateStudentRequest": {
            "type": "object",
            "required": ["firstName", "lastName", "email", "department", "registrationNo"],
            "properties": {
                "firstName": {"type": "string", "maxLength": 50, "minLength": 2},
                "lastName": {"type": "string", "maxLength": 50, "minLength": 2},
                "email": {"type": "string"},
                "department": {"type": "string", "maxLength": 100, "minLength": 2},
                "registrationNo": {"type": "string"}
            }
        },
        "dto.DriveResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Campus Hiring 2026"},
                "company": {"type": "string", "example": "Acme Corp"},
                "collegeId": {"type": "integer", "example": 1},
                "status": {"type": "string", "enum": ["DRAFT", "ACTIVE", "COMPLETED"], "example": "ACTIVE"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "rounds": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/dto.DriveRoundResponse"}
                }
            }
        },
        "dto.DriveRoundRequest": {
            "type": "object",
            "required": ["roundNumber", "name"],
            "properties": {
                "roundNumber": {"type": "integer", "minimum": 1},
                "name": {"type": "string", "maxLength": 100, "minLength": 2},
                "startsAt": {"type": "string"},
                "endsAt": {"type": "string"},
                "minScore": {"type": "number", "maximum": 100, "minimum": 0}
            }
        },
        "dto.DriveRoundResponse": {
            "type": "object",
            "properties": {
                "roundNumber": {"type": "integer", "example": 2},
                "name": {"type": "string", "example": "Technical Interview"},
                "startsAt": {"type": "string"},
                "endsAt": {"type": "string"},
                "minScore": {"type": "number", "example": 60}
            }
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "AUTH_001"},
                "message": {"type": "string", "example": "Invalid email or password"},
                "field": {"type": "string", "example": "email"},
                "severity": {"type": "string", "example": "ERROR"},
                "details": {},
                "debugInfo": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "timestamp": {"type": "string", "example": "2026-04-23T12:01:05.123Z"}
            }
        },
        "dto.EvaluationJobResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 5},
                "driveId": {"type": "integer", "example": 1},
                "status": {"type": "string", "enum": ["PENDING", "IN_PROGRESS", "COMPLETED", "FAILED"], "example": "IN_PROGRESS"},
                "total": {"type": "integer", "example": 120},
                "processed": {"type": "integer", "example": 45},
                "passedCount": {"type": "integer", "example": 30},
                "failedCount": {"type": "integer", "example": 15},
                "errorMessage": {"type": "string"},
                "startedAt": {"type": "string"},
                "finishedAt": {"type": "string"},
                "createdAt": {"type": "string"}
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
        "dto.PaginatedResponse": {
            "type": "object",
            "properties": {
                "items": {},
                "pagination": {"$ref": "#/definitions/dto.PaginationInfo"}
            }
        },
        "dto.PaginationInfo": {
            "type": "object",
            "properties": {
                "currentPage": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "totalItems": {"type": "integer"}
            }
        },
        "dto.PanelMemberResponse": {
            "type": "object",
            "properties": {
                "userId": {"type": "integer", "example": 7},
                "firstName": {"type": "string", "example": "Ravi"},
                "lastName": {"type": "string", "example": "Iyer"},
                "email": {"type": "string", "example": "ravi.iyer@acme.com"},
                "joinedAt": {"type": "string"}
            }
        },
        "dto.PanelResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 3},
                "driveId": {"type": "integer", "example": 1},
                "roundNumber": {"type": "integer", "example": 2},
                "name": {"type": "string", "example": "Tech Panel A"},
                "members": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/dto.PanelMemberResponse"}
                }
            }
        },
        "dto.RefreshTokenRequest": {
            "type": "object",
            "required": ["refreshToken"],
            "properties": {
                "refreshToken": {"type": "string"}
            }
        },
        "dto.RegisterRequest": {
            "type": "object",
            "required": ["email", "password", "firstName", "lastName", "roleType"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 8},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "roleType": {"type": "string", "enum": ["ADMIN", "RECRUITER"]}
            }
        },
        "dto.RoundRecordResponse": {
            "type": "object",
            "properties": {
                "roundNumber": {"type": "integer", "example": 2},
                "status": {"type": "string", "enum": ["NOT_STARTED", "IN_PROGRESS", "COMPLETED", "PASSED", "FAILED"], "example": "IN_PROGRESS"},
                "panelId": {"type": "integer"},
                "score": {"type": "number", "example": 72.5},
                "feedback": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.StudentResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 42},
                "driveId": {"type": "integer", "example": 1},
                "firstName": {"type": "string", "example": "Arjun"},
                "lastName": {"type": "string", "example": "Mehta"},
                "email": {"type": "string", "example": "arjun.mehta@nit.edu"},
                "department": {"type": "string", "example": "Computer Science"},
                "registrationNo": {"type": "string", "example": "CS20210042"},
                "rounds": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/dto.RoundRecordResponse"}
                }
            }
        },
        "dto.TokenResponse": {
            "type": "object",
            "properties": {
                "accessToken": {"type": "string"},
                "tokenType": {"type": "string", "example": "Bearer"},
                "expiresIn": {"type": "integer"},
                "refreshToken": {"type": "string"},
                "refreshTokenExpiresIn": {"type": "integer"}
            }
        },
        "dto.TransitionRequest": {
            "type": "object",
            "required": ["studentId", "from", "to"],
            "properties": {
                "studentId": {"type": "integer", "minimum": 1, "example": 42},
                "from": {"type": "string", "example": "round-2"},
                "to": {"type": "string", "example": "round-3"}
            }
        },
        "dto.UpdateCollegeRequest": {
            "type": "object",
            "required": ["name", "city", "spocName", "spocEmail"],
            "properties": {
                "name": {"type": "string", "maxLength": 150, "minLength": 2},
                "city": {"type": "string", "maxLength": 100, "minLength": 2},
                "spocName": {"type": "string"},
                "spocEmail": {"type": "string"},
                "spocPhone": {"type": "string"}
            }
        },
        "dto.UpdateDriveRequest": {
            "type": "object",
            "required": ["name", "company", "status", "startDate"],
            "properties": {
                "name": {"type": "string", "maxLength": 150, "minLength": 2},
                "company": {"type": "string", "maxLength": 150, "minLength": 2},
                "status": {"type": "string", "enum": ["DRAFT", "ACTIVE", "COMPLETED"]},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "rounds": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/dto.DriveRoundRequest"}
                }
            }
        },
        "dto.UpdateStudentRequest": {
            "type": "object",
            "required": ["firstName", "lastName", "email", "department", "registrationNo"],
            "properties": {
                "firstName": {"type": "string", "maxLength": 50, "minLength": 2},
                "lastName": {"type": "string", "maxLength": 50, "minLength": 2},
                "email": {"type": "string"},
                "department": {"type": "string", "maxLength": 100, "minLength": 2},
                "registrationNo": {"type": "string"}
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "role": {"type": "string", "enum": ["ADMIN", "RECRUITER"], "example": "RECRUITER"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT token for authorization",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "RecruitHub API",
	Description:      "API for the RecruitHub campus recruitment platform",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
