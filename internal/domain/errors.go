package domain

import "errors"

// Business errors. Mapped to the HTTP status/message table in transport/web/v1.
var (
	ErrMissingData    = errors.New("missing_data")     // 400
	ErrMissingCreds   = errors.New("missing_creds")    // 400
	ErrDuplicateEmail = errors.New("duplicate_email")  // 400, not 409
	ErrUserNotFound   = errors.New("user_not_found")   // 401
	ErrBadCredentials = errors.New("bad_credentials")  // 401
	ErrNoLogin        = errors.New("no_login")         // 401, no token presented
	ErrInvalidToken   = errors.New("invalid_token")    // 401, malformed/bad signature
	ErrTokenExpired   = errors.New("token_expired")    // 401, past exp
	ErrStaleToken     = errors.New("stale_token")      // 401, superseded by a newer login (same client message)
	ErrNotLoggedIn    = errors.New("not_logged_in")    // 401, logout with no active session
	ErrForbidden      = errors.New("forbidden")        // 401, not the owner
	ErrAuthorComment  = errors.New("author_comment")   // 401, author commenting on own post
	ErrNotFound       = errors.New("not_found")        // 404
	ErrDuplicateData  = errors.New("duplicate_data")   // 409, (title, author) already exists
	ErrEditConflict   = errors.New("edit_conflict")    // 409, lost optimistic-concurrency race
	ErrUnexpected     = errors.New("unexpected")       // 500
)

// Fixed client-facing messages.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgInvalidEmailPswd   = "Please provide email and password."
	MsgUserNotFound       = "User not found."
	MsgServerError        = "Server error."
	MsgMissingData        = "Please provide all necessary user details."
	MsgDuplicateData      = "Data already exists."
	MsgDuplicateEmail     = "Email already exists."
	MsgDeleted            = "Deleted successfully."
	MsgUnauthorized       = "Unauthorized access."
	MsgUpdated            = "User updated successfully."
	MsgSaved              = "Saved Successfully!"
	MsgNotFound           = "Data not found."
	MsgLogoutSuccess      = "Logout Successfully."
	MsgNotLoggedIn        = "Not logged in."
	MsgNoLogin            = "Please login to access this resource"
	MsgInvalidToken       = "Invalid token"
	MsgTokenExpired       = "Token expired, please login again"
	MsgAuthorComment      = "Author cannot comment."
	MsgOK                 = "OK"
)
