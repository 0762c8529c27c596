package handler

const (
	// APIPrefix is the base path of the article API.
	APIPrefix = "/api/v1"
	// ServiceVersion is reported by the health endpoint.
	ServiceVersion = "1.0.0"
)
