package apperror

// Kind classifies an error so callers can branch on the category
// instead of matching message strings.
type Kind string

const (
	KindValidation  Kind = "VALIDATION"
	KindPersistence Kind = "PERSISTENCE"
	KindSubmission  Kind = "SUBMISSION"
	KindNotFound    Kind = "NOT_FOUND"
	KindInternal    Kind = "INTERNAL"
)

const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInvalidState     = "INVALID_STATE"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodePersistence      = "PERSISTENCE_ERROR"
	CodeSubmissionFailed = "SUBMISSION_FAILED"
	CodeInternalError    = "INTERNAL_ERROR"
)

type AppError struct {
	Kind       Kind
	Code       string
	Message    string
	HTTPStatus int
}

func (e *AppError) Error() string {
	return e.Message
}

func New(kind Kind, code, message string, httpStatus int) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// WithMessage clones a sentinel error with a more specific message,
// keeping kind/code/status so errors.As branching still works.
func (e *AppError) WithMessage(message string) *AppError {
	clone := *e
	clone.Message = message
	return &clone
}
