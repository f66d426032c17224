package models

import "time"

// Session is an archived counting round. A session is recorded when a
// counter with a non-zero count is reset, and is immutable afterwards. It is
// owned exclusively by its parent Tasbih.
type Session struct {
	ID          string    `json:"id"`
	Count       int       `json:"count"`
	TargetCount int       `json:"target_count"`
	CompletedAt time.Time `json:"completed_at"`
	Completed   bool      `json:"completed"`
}

// Tasbih is a named repeat-counter. The ID is derived from the creation time
// (unix milliseconds) and is immutable after creation. CurrentCount never
// goes below zero; counting past TargetCount is allowed and meaningful.
type Tasbih struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Arabic          string    `json:"arabic,omitempty"`
	Transliteration string    `json:"transliteration,omitempty"`
	TargetCount     int       `json:"target_count"`
	CurrentCount    int       `json:"current_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	History         []Session `json:"history"`
}

// TargetReached reports whether the live count has met or passed the target.
func (t *Tasbih) TargetReached() bool {
	return t.TargetCount > 0 && t.CurrentCount >= t.TargetCount
}
