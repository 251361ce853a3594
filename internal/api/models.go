package api

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"    validate:"required"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned by the register and login endpoints.
type TokenResponse struct {
	Token string `json:"token"`
}

// ProjectRequest is the payload for creating or renaming a project.
type ProjectRequest struct {
	Title string `json:"title" validate:"required"`
}

// TaskRequest is the payload for creating or editing a task.
type TaskRequest struct {
	Description string `json:"description" validate:"required"`
}
