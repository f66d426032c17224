package constants

// SessionState represents the current screen of the TUI application
type SessionState int

const (
	AppName            = "tasbih"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/tasbih/tasbih.db"
	Version            = "v0.2.0"

	// DateFormat is the standard calendar-day format used throughout the
	// application (YYYY-MM-DD). Completion dates are stored in this format.
	DateFormat = "2006-01-02"

	// HistoryLimit is the maximum number of archived sessions kept per
	// counter. Oldest sessions are evicted on overflow.
	HistoryLimit = 100

	// DefaultTargetCount is the target used when a counter is created
	// without one.
	DefaultTargetCount = 33

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "tasbih-"

	// Notify constants
	NotifierLockfileName   = "tasbih-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.tasbihapp.tasbih"

	// Notification messages
	TargetReachedTitle = "Target reached!"
	ReminderMessage    = "Time for tasbih. Remember to do your counting."

	// Session States
	StateCounting SessionState = iota
	StateCounters
	StateStats
	StateAddCounter
	StateConfirmDelete
)
