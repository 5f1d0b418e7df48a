package tui

import "github.com/ankivoice/ankivoice/internal/session"

// sessionReadyMsg is sent when the session plan has been built.
type sessionReadyMsg struct {
	Session *session.Session
	Err     error
}

// verdictMsg is sent when an answer has been graded and persisted.
type verdictMsg struct {
	Result *session.Result
	Err    error
}

// summaryMsg is sent when the session record has been closed.
type summaryMsg struct {
	Summary *session.Summary
	Err     error
}
