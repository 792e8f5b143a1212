package model

// Event type tags
const (
	TypeTransaction = "transaction"
	TypeError       = "error"
)

// Breadcrumb levels
const (
	LevelDebug   = "debug"
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
	LevelFatal   = "fatal"
)
