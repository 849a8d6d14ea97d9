package constants

const (
	// ContextKeyUserID is the key under which the authenticated user ID is
	// stored in both the session and the request context.
	ContextKeyUserID = "user_id"

	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "task_session"

	// SessionMaxAge is the session lifetime in seconds (7 days).
	SessionMaxAge = 86400 * 7

	// MinPasswordLength is the minimum accepted password length at signup.
	MinPasswordLength = 8
)
