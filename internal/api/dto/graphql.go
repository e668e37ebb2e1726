package dto

// GraphQLRequest is the standard POST body for a GraphQL endpoint.
type GraphQLRequest struct {
	Query         string                 `json:"query" binding:"required"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// ErrorResponse is returned for transport-level failures, before a request
// ever reaches the GraphQL executor.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
