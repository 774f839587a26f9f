package response

const (
	MessageSuccess = "Success"

	// ErrorCodeBadRequest marks errors that carry no HTTP status of their own.
	ErrorCodeBadRequest = 1

	InternalServerErrorCode = 500
	DefaultErrorMessage     = "Something went wrong"
)
