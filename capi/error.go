package capi

// Code is a PulseAudio error code. Native calls report failures as the
// negated code.
type Code int32

const (
	Ok                      Code = 0
	ErrAccess               Code = 1
	ErrCommand              Code = 2
	ErrInvalid              Code = 3
	ErrExist                Code = 4
	ErrNoEntity             Code = 5
	ErrConnectionRefused    Code = 6
	ErrProtocol             Code = 7
	ErrTimeout              Code = 8
	ErrAuthKey              Code = 9
	ErrInternal             Code = 10
	ErrConnectionTerminated Code = 11
	ErrKilled               Code = 12
	ErrInvalidServer        Code = 13
	ErrModInitFailed        Code = 14
	ErrBadState             Code = 15
	ErrNoData               Code = 16
	ErrVersion              Code = 17
	ErrTooLarge             Code = 18
	ErrNotSupported         Code = 19
	ErrUnknown              Code = 20
	ErrNoExtension          Code = 21
	ErrObsolete             Code = 22
	ErrNotImplemented       Code = 23
	ErrForked               Code = 24
	ErrIO                   Code = 25
	ErrBusy                 Code = 26
	ErrMax                  Code = 27
)

var codeNames = [...]string{
	`ok`,
	`access denied`,
	`unknown command`,
	`invalid argument`,
	`entity exists`,
	`no such entity`,
	`connection refused`,
	`protocol error`,
	`timeout`,
	`no authentication key`,
	`internal error`,
	`connection terminated`,
	`entity killed`,
	`invalid server`,
	`module initialization failed`,
	`bad state`,
	`no data`,
	`incompatible protocol version`,
	`too large`,
	`operation not supported`,
	`unknown error code`,
	`no such extension`,
	`obsolete functionality`,
	`missing implementation`,
	`client forked`,
	`input/output error`,
	`device or resource busy`,
}

// CodeFromReturn turns a negative native return value into a Code.
func CodeFromReturn(ret int) Code {
	if ret < 0 {
		ret = -ret
	}

	return Code(ret)
}

func (self Code) Valid() bool {
	return self >= Ok && self < ErrMax
}

func (self Code) String() string {
	if self.Valid() {
		return codeNames[self]
	}

	return codeNames[ErrUnknown]
}
