package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"
	ErrAccountDisabled    ErrCode = "ACCOUNT_DISABLED"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden        ErrCode = "FORBIDDEN"
	ErrPermissionDenied ErrCode = "PERMISSION_DENIED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrConflict        ErrCode = "CONFLICT"
	ErrActionForbidden ErrCode = "ACTION_FORBIDDEN"

	// ─── Content & assessment ──────────────────────────────────────────
	ErrImmutableExam          ErrCode = "IMMUTABLE_EXAM"
	ErrInsufficientOptions    ErrCode = "INSUFFICIENT_OPTIONS"
	ErrTooManyOptions         ErrCode = "TOO_MANY_OPTIONS"
	ErrInvalidAnswerReference ErrCode = "INVALID_ANSWER_REFERENCE"
	ErrMissingAnswer          ErrCode = "MISSING_ANSWER"
	ErrInvalidAnswerValue     ErrCode = "INVALID_ANSWER_VALUE"
	ErrDuplicateQuiz          ErrCode = "DUPLICATE_QUIZ"
	ErrUnknownQuestionType    ErrCode = "UNKNOWN_QUESTION_TYPE"

	// ─── Media ─────────────────────────────────────────────────────────
	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Email or password is incorrect."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is invalid."
	case ErrTokenExpired:
		return "The authentication token has expired."
	case ErrAccountDisabled:
		return "This account has been disabled."

	// ─── Authorization ─────────────────────────────────────────────────
	case ErrForbidden:
		return "You do not have permission to access this resource."
	case ErrPermissionDenied:
		return "Permission denied."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "The ID format is invalid."
	case ErrInvalidPayload:
		return "The request payload is invalid."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "The requested resource was not found."
	case ErrConflict:
		return "The resource already exists."
	case ErrActionForbidden:
		return "This action is not allowed."

	// ─── Content & assessment ──────────────────────────────────────────
	case ErrImmutableExam:
		return "This exam already has submissions and can no longer be modified."
	case ErrInsufficientOptions:
		return "A multiple-choice question needs at least two non-empty options."
	case ErrTooManyOptions:
		return "The question has more options than allowed."
	case ErrInvalidAnswerReference:
		return "The correct answer does not match any of the options."
	case ErrMissingAnswer:
		return "A correct answer is required for this question type."
	case ErrInvalidAnswerValue:
		return "The correct answer has an invalid value."
	case ErrDuplicateQuiz:
		return "This module already has a quiz attached."
	case ErrUnknownQuestionType:
		return "The question type is not supported."

	// ─── Media ─────────────────────────────────────────────────────────
	case ErrFileRequired:
		return "A file upload is required."
	case ErrUnsupportedFile:
		return "The file type is not supported."
	case ErrFileTooLarge:
		return "The file size exceeds the limit."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
