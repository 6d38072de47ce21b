package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID  contextKey = "user_id"
	ContextKeySession contextKey = "session"
)

const (
	ProgressIncomplete = "incomplete"
	ProgressInProgress = "inprogress"
	ProgressComplete   = "complete"
)

const (
	RequestParamID       = "id"
	RequestParamProgress = "progress"
)

const (
	FormFieldName      = "name"
	FormFieldPassword  = "password"
	FormFieldTitle     = "title"
	FormFieldProgress  = "progress"
	FormFieldIntent    = "intent"
	FormFieldTodoID    = "todoId"
	FormFieldDeletedID = "deletedId"
)

const (
	IntentDelete   = "delete"
	IntentBookmark = "bookmark"
)

const (
	PathSignIn     = "/auth/sign-in"
	PathSignUp     = "/auth/sign-up"
	PathLogout     = "/logout"
	PathTodos      = "/todos"
	PathTodosIndex = "/todos/incomplete"
	PathBookmarks  = "/bookmarks"
)

const (
	FieldCreatedAt  = "created_at"
	FieldModifiedAt = "modified_at"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeHTML           = "text/html; charset=utf-8"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

const (
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorUnexpected           = "An unexpected error has occurred. Sorry for the inconvenience, please try again after some time."
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
