package api

// FillRequest is the request body for POST /fillit.
type FillRequest struct {
	FormHTML string `json:"formHtml"`
}

// ErrorResponse documents the error body shape returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model,omitempty"`
}
