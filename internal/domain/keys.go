package domain

type CtxKey string

// Keys the session middleware sets on the gin context.
const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)
