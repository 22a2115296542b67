package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldChatID          = "chat-id"
	FieldCommand         = "command"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldRequestBody     = "request-body"
	FieldRequestSize     = "request-size"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseSize    = "response-size"
	FieldResponseStatus  = "response-status"
	FieldRoute           = "route"
	FieldSelectedTeam    = "selected-team"
	FieldSortOrder       = "sort-order"
	FieldStack           = "stack"
	FieldTeams           = "teams"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
