package domain

import "time"

// PlaceholderDate marks a member that is registered but whose birth date
// is not known yet. It never matches a real DD-MM date.
const PlaceholderDate = "00-00"

// Offsets (in whole days before the birthday) that trigger scheduler actions.
const (
	CollectOffsetDays  = 7
	ReminderOffsetDays = 1
)

// Directory listing limits
const (
	DirectoryPageSize = 200
	MaxDirectoryPages = 20
)

// Collection fan-out throttling
const (
	CollectBatchSize  = 10
	CollectBatchPause = 2 * time.Second
)

// ResolveCacheTTL bounds how long a name resolution result (including
// "not found") is reused before the directory is scanned again.
const ResolveCacheTTL = 5 * time.Minute
