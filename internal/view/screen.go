// Package view keeps the latest rendered state of a session so front-ends
// can draw it or serve it.
package view

import (
	"sync"

	"bankist/internal/session"
)

// Snapshot is everything currently on screen.
type Snapshot struct {
	Visible   bool                  `json:"visible"`
	Welcome   string                `json:"welcome"`
	Date      string                `json:"date,omitempty"`
	Balance   string                `json:"balance,omitempty"`
	Income    string                `json:"income,omitempty"`
	Expense   string                `json:"expense,omitempty"`
	Interest  string                `json:"interest,omitempty"`
	Timer     string                `json:"timer,omitempty"`
	Sorted    bool                  `json:"sorted"`
	Movements []session.MovementRow `json:"movements"`
}

// Screen records the last value of every label. It is safe for concurrent
// use.
type Screen struct {
	mu   sync.RWMutex
	snap Snapshot
}

var _ session.View = (*Screen)(nil)

// NewScreen returns an empty, hidden screen.
func NewScreen() *Screen {
	return &Screen{snap: Snapshot{Movements: []session.MovementRow{}}}
}

func (s *Screen) RenderMovements(rows []session.MovementRow, sortedAscending bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Movements = append([]session.MovementRow{}, rows...)
	s.snap.Sorted = sortedAscending
}

func (s *Screen) RenderBalance(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Balance = text
}

func (s *Screen) RenderSummary(income, expense, interest string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Income, s.snap.Expense, s.snap.Interest = income, expense, interest
}

func (s *Screen) RenderTimer(mmss string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Timer = mmss
}

func (s *Screen) RenderWelcome(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Welcome = message
}

func (s *Screen) RenderDate(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Date = text
}

// SetSessionVisible shows or hides the account panels. Hiding also clears
// them so nothing from a finished session lingers.
func (s *Screen) SetSessionVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Visible = visible
	if !visible {
		welcome := s.snap.Welcome
		s.snap = Snapshot{Welcome: welcome, Movements: []session.MovementRow{}}
	}
}

// Snapshot returns a copy of the current screen.
func (s *Screen) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.snap
	out.Movements = append([]session.MovementRow{}, s.snap.Movements...)
	return out
}

// NewestFirst returns rows in display order, last recorded on top.
func NewestFirst(rows []session.MovementRow) []session.MovementRow {
	out := make([]session.MovementRow, len(rows))
	for i, r := range rows {
		out[len(rows)-1-i] = r
	}
	return out
}
