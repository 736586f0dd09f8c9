package model

// APIResponse is the uniform envelope for every JSON response. List
// endpoints additionally carry the row count and the dataset name.
type APIResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message,omitempty"`
	Database string    `json:"database,omitempty"`
	Count    *int      `json:"count,omitempty"`
	Data     any       `json:"data,omitempty"`
	Error    *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type LoginResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
	User      PublicUser `json:"user"`
	Token     string     `json:"token"`
	ExpiresIn int64      `json:"expiresIn"`
}

type RegisterResponse struct {
	Success          bool             `json:"success"`
	Message          string           `json:"message"`
	User             PublicUser       `json:"user"`
	PasswordStrength PasswordStrength `json:"passwordStrength"`
}

type VerifyTokenResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	User    AuthClaims `json:"user"`
}
