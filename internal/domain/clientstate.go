package domain

import "time"

// ClientState is the per-client cache kept between invocations: the most
// recent breakdown and whether a Gmail address is connected.
type ClientState struct {
	ClientID      string
	GmailAddress  string
	Connected     bool
	LastTask      string
	LastBreakdown *TaskBreakdown
	UpdatedAt     time.Time
}
