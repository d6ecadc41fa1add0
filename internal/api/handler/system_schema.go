package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Details is populated only for validation failures.
type errorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// --- Request types ---

type stewardRequest struct {
	Name  string `json:"name"  validate:"required,notblank"`
	Email string `json:"email" validate:"required,email"`
}

type createSystemRequest struct {
	Name             string         `json:"name"              validate:"required,notblank"`
	Description      string         `json:"description"       validate:"required,notblank"`
	BusinessSteward  stewardRequest `json:"business_steward"  validate:"required"`
	SecuritySteward  stewardRequest `json:"security_steward"  validate:"required"`
	TechnicalSteward stewardRequest `json:"technical_steward" validate:"required"`
	Status           string         `json:"status"            validate:"omitempty,oneof=active inactive pending"`
}

// updateSystemRequest is the partial-update payload: every field optional,
// but any field present must satisfy its full constraint. A supplied steward
// replaces that steward whole.
type updateSystemRequest struct {
	Name             *string         `json:"name"              validate:"omitempty,notblank"`
	Description      *string         `json:"description"       validate:"omitempty,notblank"`
	BusinessSteward  *stewardRequest `json:"business_steward"  validate:"omitempty"`
	SecuritySteward  *stewardRequest `json:"security_steward"  validate:"omitempty"`
	TechnicalSteward *stewardRequest `json:"technical_steward" validate:"omitempty"`
	Status           *string         `json:"status"            validate:"omitempty,oneof=active inactive pending"`
}

type chatRequest struct {
	Prompt string `json:"prompt" validate:"required,notblank"`
	Model  string `json:"model"  validate:"omitempty"`
}

// --- Response types, owned by the transport layer ---

type stewardResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type systemResponse struct {
	SystemID         string          `json:"system_id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	BusinessSteward  stewardResponse `json:"business_steward"`
	SecuritySteward  stewardResponse `json:"security_steward"`
	TechnicalSteward stewardResponse `json:"technical_steward"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type chatResponse struct {
	Response  string `json:"response"`
	ModelUsed string `json:"model_used"`
}
