package result

// Result holds exactly one of a parsed response value or an error value.
type Result[T any] struct {
	Response *T
	Error    error
}

func NewResponseResult[T any](response *T) *Result[T] {
	return &Result[T]{Response: response}
}

func NewErrorResult[T any](err error) *Result[T] {
	return &Result[T]{Error: err}
}
