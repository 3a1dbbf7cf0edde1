package game

import (
	"time"
)

// State is the lifecycle phase of a session. There is no idle variant:
// a chat without a session is idle.
type State string

const (
	StateAwaitingSubject State = "AwaitingSubject"
	StateActive          State = "Active"
)

// Session is the per-chat record of a game in setup or in progress.
// Values handed out by the Manager are snapshots, so a removed session
// can never be observed mid-mutation through one.
type Session struct {
	ID     string
	ChatID int64
	State  State

	HostID   int64
	HostName string // captured at creation, never refreshed

	Subject    string
	EntryArmed bool // host is mid private conversation entering the subject
	WinnerName string

	CreatedAt time.Time

	seq uint64 // creation order, tie-break for FindByHost
}
