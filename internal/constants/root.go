package constants

const (
	AppName            = "studenthub"
	DefaultKeyringUser = "current-user"
	DefaultDataPath    = "~/.config/studenthub"
	Version            = "v0.2.0"

	// SnapshotFilePrefix is prepended to the user id to form the per-user
	// snapshot file name (and the sqlite row key shares the same namespace).
	SnapshotFilePrefix = "studenthub_"

	// SessionFileName holds the signed-in user id when no OS keyring is available.
	SessionFileName = "session"

	// SQLiteFileName is the database file used by the sqlite snapshot adapter.
	SQLiteFileName = "studenthub.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// WeeklyWindowDays is the lookback window for weekly study aggregation.
	WeeklyWindowDays = 7

	// Mood and energy ratings are on a 1-10 scale.
	RatingMin = 1
	RatingMax = 10
)
