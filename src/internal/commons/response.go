package commons

// Response is the envelope every HTTP handler writes. Count is only set on
// list responses.
type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Count   *int     `json:"count,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

func ListResponse[T any](message string, items []T) Response[[]T] {
	if items == nil {
		items = []T{}
	}
	count := len(items)
	resp := SuccessResponse(message, items)
	resp.Count = &count
	return resp
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}

// FailedResponse reports err under a caller-facing message. A nil err yields
// an envelope without error details.
func FailedResponse[T any](message string, err error) Response[T] {
	if err == nil {
		return ErrorResponse[T](message)
	}
	return ErrorResponse[T](message, err.Error())
}
