package errors

import (
	"errors"
)

var (
	ErrNilHttpClient         = errors.New("nil http client")
	ErrNilHttpRequest        = errors.New("nil http request")
	ErrNilHttpResponse       = errors.New("nil http response")
	ErrNilHttpResponseHeader = errors.New("nil http response header")
	ErrEmptyMethod           = errors.New("empty http method")
	ErrEmptyUrl              = errors.New("empty url")
)
