package success_checker

const (
	DefaultMinimumStatusCode = 200
	DefaultMaximumStatusCode = 299
)

type SuccessChecker interface {
	Check(int) bool
}

type SuccessCheckerFunction func(int) bool

func (f SuccessCheckerFunction) Check(statusCode int) bool {
	return f(statusCode)
}

func New(f func(int) bool) SuccessChecker {
	return SuccessCheckerFunction(f)
}

func NewRange(minimumStatusCode int, maximumStatusCode int) SuccessChecker {
	return New(
		func(statusCode int) bool {
			return statusCode >= minimumStatusCode && statusCode <= maximumStatusCode
		},
	)
}

var Default = NewRange(DefaultMinimumStatusCode, DefaultMaximumStatusCode)
