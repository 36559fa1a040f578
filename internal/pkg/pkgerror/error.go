package pkgerror

import "errors"

type Code int

const (
	CodeInternal Code = iota
	CodeInvalidInput
	CodeNotFound
	CodeUpstream
	CodeMalformed
)

func (c Code) String() string {
	switch c {
	case CodeInvalidInput:
		return "INVALID_INPUT"
	case CodeNotFound:
		return "NOT_FOUND"
	case CodeUpstream:
		return "UPSTREAM"
	case CodeMalformed:
		return "MALFORMED_RESPONSE"
	default:
		return "INTERNAL"
	}
}

// ExitCode is the process exit status used by the command line for c.
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidInput:
		return 2
	case CodeNotFound:
		return 3
	case CodeUpstream:
		return 4
	case CodeMalformed:
		return 5
	default:
		return 1
	}
}

type Error struct {
	msg  string
	code Code
	err  error
}

func NewBusiness(msg string, code Code) *Error {
	return &Error{msg: msg, code: code}
}

func Wrap(err error, msg string, code Code) *Error {
	return &Error{msg: msg, code: code, err: err}
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Code() Code { return e.code }

// CodeOf returns the code of the first *Error in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeInternal
}
