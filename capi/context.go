package capi

type ContextState int32

const (
	ContextUnconnected ContextState = iota
	ContextConnecting
	ContextAuthorizing
	ContextSettingName
	ContextReady
	ContextFailed
	ContextTerminated
)

// IsGood reports whether the connection is alive or on its way to being so.
func (self ContextState) IsGood() bool {
	switch self {
	case ContextConnecting, ContextAuthorizing, ContextSettingName, ContextReady:
		return true
	}

	return false
}

func (self ContextState) String() string {
	switch self {
	case ContextUnconnected:
		return `unconnected`
	case ContextConnecting:
		return `connecting`
	case ContextAuthorizing:
		return `authorizing`
	case ContextSettingName:
		return `setting-name`
	case ContextReady:
		return `ready`
	case ContextFailed:
		return `failed`
	case ContextTerminated:
		return `terminated`
	default:
		return `unknown`
	}
}

type ContextFlags uint32

const (
	ContextNoFlags     ContextFlags = 0x0
	ContextNoAutospawn ContextFlags = 0x1
	ContextNoFail      ContextFlags = 0x2
)

type OperationState int32

const (
	OperationRunning OperationState = iota
	OperationDone
	OperationCancelled
)

func (self OperationState) String() string {
	switch self {
	case OperationRunning:
		return `running`
	case OperationDone:
		return `done`
	case OperationCancelled:
		return `cancelled`
	default:
		return `unknown`
	}
}
