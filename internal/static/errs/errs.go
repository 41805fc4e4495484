package errs

import "errors"

var InvalidCredentials = errors.New("invalid credentials")

var (
	InternalError       = errors.New("internal error")
	GeneratingToken     = errors.New("error generating token")
	EmailRequired       = errors.New("email and password required")
	EmailTaken          = errors.New("email already exists")
	FailedToCreateUser  = errors.New("failed to create user")
	UnsupportedProvider = errors.New("operation not supported by this auth provider")
)

// Grading and room access taxonomy. Lookup and authorization failures
// short-circuit before any sandbox work; they are surfaced to the caller
// as-is and never retried.
var (
	RoomNotFound        = errors.New("room not found")
	ProblemNotFound     = errors.New("problem not found")
	Forbidden           = errors.New("forbidden")
	NoTestsConfigured   = errors.New("no tests configured")
	UnsupportedLanguage = errors.New("unsupported language")
	MissingEntryPoint   = errors.New("problem has no function name")
	TooManySubmissions  = errors.New("too many submissions, slow down")
	StoreUnavailable    = errors.New("storage unavailable")
	UserNotFound        = errors.New("user not found")
)
