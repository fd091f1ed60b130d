package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrInvalidDate    ErrCode = "INVALID_DATE"
	ErrInvalidStatus  ErrCode = "INVALID_STATUS"
	ErrInvalidTime    ErrCode = "INVALID_TIME"
	ErrEmptyQuery     ErrCode = "EMPTY_QUERY"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrStudentNotFound ErrCode = "STUDENT_NOT_FOUND"
	ErrRecordNotFound  ErrCode = "RECORD_NOT_FOUND"
	ErrConflict        ErrCode = "CONFLICT"
	ErrDuplicateRollNo ErrCode = "DUPLICATE_ROLL_NO"
	ErrDuplicateEmail  ErrCode = "DUPLICATE_EMAIL"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrInvalidDate:
		return "Invalid date. Expected format YYYY-MM-DD."
	case ErrInvalidStatus:
		return "Invalid status. Must be one of: present, absent, late."
	case ErrInvalidTime:
		return "Invalid check-in time. Expected format HH:MM."
	case ErrEmptyQuery:
		return "Search query is required."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Resource not found."
	case ErrStudentNotFound:
		return "Student not found."
	case ErrRecordNotFound:
		return "Attendance record not found."
	case ErrConflict:
		return "Resource already exists."
	case ErrDuplicateRollNo:
		return "A student with this roll number already exists."
	case ErrDuplicateEmail:
		return "A student with this email already exists."

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
