package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	// ErrorCode values of the envelope. HTTP errors reuse their status code.
	SuccessCode             = 0
	ValidationErrorCode     = 1
	InternalServerErrorCode = 500
)
