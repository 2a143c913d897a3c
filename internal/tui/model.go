// Package tui is a terminal front-end for a banking session built on
// bubbletea. All controller calls happen inside Update, so the session runs
// on bubbletea's event loop and needs no locking of its own.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"k8s.io/utils/clock"

	apperrors "bankist/internal/errors"
	"bankist/internal/session"
	"bankist/internal/view"
)

// Input indices. The first two make up the login form; the rest are shown
// while a session is open.
const (
	loginUser = iota
	loginPIN
	transferTo
	transferAmount
	loanAmount
	closeUser
	closePIN
	inputCount
)

var (
	loggedOutInputs = []int{loginUser, loginPIN}
	loggedInInputs  = []int{transferTo, transferAmount, loanAmount, closeUser, closePIN}
)

type tickMsg time.Time

// Model is the bubbletea model for the bank screen.
type Model struct {
	ctrl     *session.Controller
	screen   *view.Screen
	clock    clock.PassiveClock
	interval time.Duration

	inputs   [inputCount]textinput.Model
	focus    int
	loggedIn bool
	status   string
}

// New creates a model that drives ctrl, which must render to screen. The
// controller is advanced every interval using clk.
func New(ctrl *session.Controller, screen *view.Screen, clk clock.PassiveClock, interval time.Duration) *Model {
	if interval <= 0 {
		interval = time.Second
	}
	m := &Model{
		ctrl:     ctrl,
		screen:   screen,
		clock:    clk,
		interval: interval,
	}
	placeholders := [inputCount]string{"user", "PIN", "to", "amount", "amount", "confirm user", "confirm PIN"}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 32
		in.Width = 12
		if i == loginPIN || i == closePIN {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
			in.CharLimit = 8
		}
		m.inputs[i] = in
	}
	m.resetFocus()
	return m
}

// Init starts the clock tick and the cursor blink.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), textinput.Blink)
}

// Update handles keys and clock ticks.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.ctrl.Advance(m.clock.Now())
		m.sync()
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m, m.moveFocus(1)
		case "shift+tab", "up":
			return m, m.moveFocus(-1)
		case "ctrl+s":
			m.run(session.SortToggle{}, nil)
			return m, nil
		case "ctrl+l":
			m.run(session.Logout{}, nil)
			return m, nil
		case "enter":
			m.submit()
			return m, nil
		}
	}

	idx := m.active()[m.focus]
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) active() []int {
	if m.loggedIn {
		return loggedInInputs
	}
	return loggedOutInputs
}

func (m *Model) focused() int {
	return m.active()[m.focus]
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	active := m.active()
	m.inputs[active[m.focus]].Blur()
	m.focus = (m.focus + delta + len(active)) % len(active)
	return m.inputs[active[m.focus]].Focus()
}

func (m *Model) resetFocus() {
	for i := range m.inputs {
		m.inputs[i].Blur()
		m.inputs[i].Reset()
	}
	m.focus = 0
	m.inputs[m.active()[0]].Focus()
}

// sync switches between the login form and the banking forms when the
// session opens or closes, including on expiry.
func (m *Model) sync() {
	visible := m.screen.Snapshot().Visible
	if visible != m.loggedIn {
		m.loggedIn = visible
		m.resetFocus()
	}
}

func (m *Model) submit() {
	v := func(i int) string { return m.inputs[i].Value() }

	var cmd session.Command
	var err error
	var form []int
	switch m.focused() {
	case loginUser, loginPIN:
		cmd, err = session.ParseLogin(v(loginUser), v(loginPIN))
		form = []int{loginUser, loginPIN}
	case transferTo, transferAmount:
		cmd, err = session.ParseTransfer(v(transferTo), v(transferAmount))
		form = []int{transferTo, transferAmount}
	case loanAmount:
		cmd, err = session.ParseLoan(v(loanAmount))
		form = []int{loanAmount}
	case closeUser, closePIN:
		cmd, err = session.ParseClose(v(closeUser), v(closePIN))
		form = []int{closeUser, closePIN}
	}
	if err != nil {
		m.setStatus(err)
		return
	}
	m.run(cmd, form)
}

// run dispatches cmd, clears the inputs of the form it came from and
// reports the outcome on the status line.
func (m *Model) run(cmd session.Command, form []int) {
	err := m.ctrl.Dispatch(cmd)
	for _, i := range form {
		m.inputs[i].Reset()
	}
	m.setStatus(err)
	if err == nil {
		switch cmd.(type) {
		case session.Loan:
			m.status = "Loan approved, it will post shortly"
		case session.Close:
			m.status = "Account closed"
		}
	}
	m.sync()
}

func (m *Model) setStatus(err error) {
	if err == nil {
		m.status = ""
		return
	}
	m.status = err.Error()
	if apperrors.KindOf(err) == apperrors.KindInternal {
		m.status = "Something went wrong: " + m.status
	}
}

// View renders the screen.
func (m *Model) View() string {
	snap := m.screen.Snapshot()
	var b strings.Builder

	b.WriteString(headerStyle.Render(snap.Welcome))
	if snap.Visible {
		b.WriteString("  " + mutedStyle.Render("As of "+snap.Date))
	}
	b.WriteString("\n\n")

	if !snap.Visible {
		b.WriteString(m.renderForm("Login", loginUser, loginPIN))
		b.WriteString(m.footer("tab next field • enter submit • esc quit"))
		return b.String()
	}

	b.WriteString(labelStyle.Render("Current balance") + "  " + balanceStyle.Render(snap.Balance) + "\n\n")

	order := "recorded"
	if snap.Sorted {
		order = "ascending"
	}
	b.WriteString(mutedStyle.Render("Movements ("+order+")") + "\n")
	for _, row := range view.NewestFirst(snap.Movements) {
		b.WriteString(renderRow(row) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("In ") + depositStyle.Render(snap.Income) + "   ")
	b.WriteString(labelStyle.Render("Out ") + withdrawalStyle.Render(snap.Expense) + "   ")
	b.WriteString(labelStyle.Render("Interest ") + depositStyle.Render(snap.Interest) + "\n\n")

	b.WriteString(m.renderForm("Transfer money", transferTo, transferAmount))
	b.WriteString(m.renderForm("Request loan", loanAmount))
	b.WriteString(m.renderForm("Close account", closeUser, closePIN))

	b.WriteString("\n" + mutedStyle.Render("You will be logged out in ") + timerStyle.Render(snap.Timer) + "\n")
	b.WriteString(m.footer("tab next field • enter submit • ctrl+s sort • ctrl+l log out • esc quit"))
	return b.String()
}

func (m *Model) renderForm(title string, inputs ...int) string {
	var b strings.Builder
	b.WriteString(formTitleStyle.Render(title))
	for _, i := range inputs {
		b.WriteString(" " + m.inputs[i].View())
	}
	return b.String() + "\n"
}

func (m *Model) footer(help string) string {
	out := "\n"
	if m.status != "" {
		out += errorStyle.Render(m.status) + "\n"
	}
	return out + mutedStyle.Render(help) + "\n"
}
