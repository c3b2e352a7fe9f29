package badger

import "time"

// Key layout: "save/<slot>\x00<data key>". Slot names never contain NUL.
const (
	KeyPrefix    = "save/"
	KeySeparator = "\x00"
)

const (
	DirPermission         = 0o750
	DefaultGCInterval     = 5 * time.Minute
	DefaultGCDiscardRatio = 0.5
)

const (
	ErrMsgPathRequired = "path is required for persistent database"
	LogMsgGCFailed     = "Badger value log GC failed"
)
