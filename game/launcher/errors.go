package launcher

// Code is a machine-readable error code.
type Code string

const (
	// CodeModLoaderMissing means a game type needs mod-loader arguments
	// that were never attached. The caller has to fix its setup.
	CodeModLoaderMissing Code = "MODLOADER_MISSING"
	// CodeUnknownVersion means no game type matches a version string.
	CodeUnknownVersion Code = "UNKNOWN_VERSION"
	// CodeUnsupportedLoader means the loader has no game type for the version.
	CodeUnsupportedLoader Code = "UNSUPPORTED_LOADER"
	// CodeUnknownGameType means no registered game type has the name.
	CodeUnknownGameType Code = "UNKNOWN_GAME_TYPE"
)

// Error is the launcher error type.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human readable message
	Cause   error  // Wrapped underlying error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func newError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Sentinels for errors.Is.
var (
	ErrModLoaderMissing  = newError(CodeModLoaderMissing, "mod-loader arguments not attached")
	ErrUnknownVersion    = newError(CodeUnknownVersion, "unknown game version")
	ErrUnsupportedLoader = newError(CodeUnsupportedLoader, "loader not supported for version")
	ErrUnknownGameType   = newError(CodeUnknownGameType, "unknown game type")
)
