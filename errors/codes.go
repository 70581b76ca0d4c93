package errors

// ErrorCode identifies an application error category on the wire.
// Codes are stable; clients key behavior off them, not off messages.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_UNAUTHENTICATED  ErrorCode = 1002

	// Auth
	ErrorCode_AUTH_INVALID_CREDENTIALS ErrorCode = 2000
	ErrorCode_AUTH_INVALID_TOKEN       ErrorCode = 2001
	ErrorCode_AUTH_DUPLICATE_LOGIN_ID  ErrorCode = 2002
	ErrorCode_AUTH_DUPLICATE_EMAIL     ErrorCode = 2003
	ErrorCode_AUTH_USER_NOT_FOUND      ErrorCode = 2004

	// Summary
	ErrorCode_SUMMARY_NOT_FOUND ErrorCode = 3000
	ErrorCode_SUMMARY_NOT_OWNER ErrorCode = 3001
	ErrorCode_EMPTY_UPLOAD      ErrorCode = 3002

	// Upstream
	ErrorCode_UPSTREAM_FAILED ErrorCode = 4000
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                  "HTTP_OK",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_UNAUTHENTICATED:          "UNAUTHENTICATED",
	ErrorCode_AUTH_INVALID_CREDENTIALS: "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_INVALID_TOKEN:       "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_DUPLICATE_LOGIN_ID:  "AUTH_DUPLICATE_LOGIN_ID",
	ErrorCode_AUTH_DUPLICATE_EMAIL:     "AUTH_DUPLICATE_EMAIL",
	ErrorCode_AUTH_USER_NOT_FOUND:      "AUTH_USER_NOT_FOUND",
	ErrorCode_SUMMARY_NOT_FOUND:        "SUMMARY_NOT_FOUND",
	ErrorCode_SUMMARY_NOT_OWNER:        "SUMMARY_NOT_OWNER",
	ErrorCode_EMPTY_UPLOAD:             "EMPTY_UPLOAD",
	ErrorCode_UPSTREAM_FAILED:          "UPSTREAM_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
