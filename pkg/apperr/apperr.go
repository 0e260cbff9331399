package apperr

import (
	"errors"
	"fmt"
)

// Kind จัดกลุ่มความผิดพลาดทุกชนิดที่ gateway เจอ ให้เหลือไม่กี่แบบ
// เพื่อให้ controller ตอบ HTTP status ได้สม่ำเสมอ
type Kind int

const (
	Network Kind = iota + 1 // upstream unreachable / timed out
	Unauthorized
	NotFound
	Validation
	Conflict
	Server
)

func (k Kind) String() string {
	switch k {
	case Network:
		return "network"
	case Unauthorized:
		return "unauthorized"
	case NotFound:
		return "not_found"
	case Validation:
		return "validation"
	case Conflict:
		return "conflict"
	default:
		return "server"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func E(k Kind, msg string) error { return &Error{Kind: k, Msg: msg} }

func Ef(k Kind, format string, args ...any) error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(k Kind, msg string, err error) error {
	return &Error{Kind: k, Msg: msg, Err: err}
}

// KindOf คืนชนิดของ error; error ที่ไม่รู้จักถือเป็น Server
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Server
}

func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}

// Message คืนข้อความฝั่งผู้ใช้ (ไม่เอา wrapped detail)
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return err.Error()
}
