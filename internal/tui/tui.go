// Package tui is the thin terminal front end. It renders selector output
// and feeds actions into the game session; no game rules live here.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/potion-wars/internal/game"
	"github.com/user/potion-wars/internal/interfaces"
)

// The session implementation must satisfy the collaborator interface.
var _ interfaces.GameSession = (*game.Session)(nil)

type sessionState int

const (
	stateSlotSelect sessionState = iota
	statePlaying
	stateInEvent
	stateGameOver
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

const helpText = `Commands:
  b <item#> <qty>  brew potions
  s <item#> <qty>  sell potions
  t <loc#>         travel
  r <amount>       repay debt
  d                sleep until the next day
  h                this help
  q                quit`

// Model is the bubbletea model driving the whole front end.
type Model struct {
	session interfaces.GameSession
	state   sessionState
	input   textinput.Model
	status  string
	err     error
}

// NewModel builds the front end over a game session.
func NewModel(session interfaces.GameSession) Model {
	ti := textinput.New()
	ti.Placeholder = "slot 1-3"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 32

	return Model{
		session: session,
		state:   stateSlotSelect,
		input:   ti,
		status:  "Pick a save slot to begin.",
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit(strings.TrimSpace(m.input.Value()))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit(line string) (tea.Model, tea.Cmd) {
	m.input.Reset()
	if line == "" {
		return m, nil
	}
	if line == "q" {
		return m, tea.Quit
	}

	switch m.state {
	case stateSlotSelect:
		return m.submitSlot(line)
	case stateInEvent:
		return m.submitChoice(line)
	case stateGameOver:
		m.state = stateSlotSelect
		m.status = "Pick a save slot to begin."
		return m, nil
	default:
		return m.submitCommand(line)
	}
}

func (m Model) submitSlot(line string) (tea.Model, tea.Cmd) {
	slot, err := strconv.Atoi(line)
	if err != nil {
		m.status = "Enter a slot number."
		return m, nil
	}

	exists := false
	for _, info := range m.session.Slots() {
		if info.Slot == slot && info.Exists {
			exists = true
		}
	}

	if exists {
		_, err = m.session.Load(slot)
	} else {
		_, err = m.session.StartNew(slot)
	}
	if err != nil {
		m.err = err
		m.status = "Could not open that slot."
		return m, nil
	}

	m.state = statePlaying
	m.input.Placeholder = "command (h for help)"
	m.status = helpText
	return m, nil
}

func (m Model) submitChoice(line string) (tea.Model, tea.Cmd) {
	choice, err := strconv.Atoi(line)
	if err != nil {
		m.status = "Enter the number of your choice."
		return m, nil
	}
	_, result, derr := m.session.Dispatch(game.EventChoiceAction{Choice: choice - 1})
	m.err = derr
	m.status = result.Message
	m.refreshMode()
	return m, nil
}

func (m Model) submitCommand(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	state := m.session.State()

	var action game.Action
	switch fields[0] {
	case "h":
		m.status = helpText
		return m, nil

	case "b", "s":
		if len(fields) != 3 {
			m.status = "Usage: " + fields[0] + " <item#> <qty>"
			return m, nil
		}
		index, _ := strconv.Atoi(fields[1])
		qty, _ := strconv.Atoi(fields[2])
		prices := game.SelectPriceList(state)
		if index < 1 || index > len(prices) {
			m.status = "No such item."
			return m, nil
		}
		if fields[0] == "b" {
			action = game.BrewPotionAction{Potion: prices[index-1].Name, Quantity: qty}
		} else {
			action = game.SellPotionAction{Potion: prices[index-1].Name, Quantity: qty}
		}

	case "t":
		if len(fields) != 2 {
			m.status = "Usage: t <loc#>"
			return m, nil
		}
		index, _ := strconv.Atoi(fields[1])
		locations := m.session.Engine().Catalog().Locations
		if index < 1 || index > len(locations) {
			m.status = "No such place."
			return m, nil
		}
		action = game.TravelAction{Location: locations[index-1].Name}

	case "r":
		if len(fields) != 2 {
			m.status = "Usage: r <amount>"
			return m, nil
		}
		amount, _ := strconv.Atoi(fields[1])
		action = game.RepayDebtAction{Amount: amount}

	case "d":
		if _, _, err := m.session.Dispatch(game.UpdateWeatherAction{}); err != nil {
			m.err = err
		}
		action = game.AdvanceDayAction{TriggerEvent: true, TriggerDebt: state.Debt > 0}

	default:
		m.status = "Unknown command. Try h."
		return m, nil
	}

	_, result, err := m.session.Dispatch(action)
	m.err = err
	if result.Message != "" {
		m.status = result.Message
	}
	m.refreshMode()
	return m, nil
}

func (m *Model) refreshMode() {
	switch {
	case m.session.GameOver():
		m.state = stateGameOver
	case m.session.State().InEvent():
		m.state = stateInEvent
	default:
		m.state = statePlaying
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Potion Wars"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSlotSelect:
		for _, info := range m.session.Slots() {
			line := fmt.Sprintf("Slot %d: empty", info.Slot)
			if info.Exists {
				line = fmt.Sprintf("Slot %d: day %d, %d gold (%s)",
					info.Slot, info.State.Day, info.State.Cash, info.State.LastSave)
			}
			b.WriteString(statusStyle.Render(line) + "\n")
		}

	case stateGameOver:
		state := m.session.State()
		b.WriteString(messageStyle.Render(fmt.Sprintf(
			"Game over. Day %d, %d gold, %d debt.", state.Day, state.Cash, state.Debt)) + "\n")
		b.WriteString(helpStyle.Render("Press enter to return to the title.") + "\n")

	default:
		b.WriteString(m.viewStatus())
	}

	b.WriteString("\n" + messageStyle.Render(m.status) + "\n")
	if m.err != nil {
		b.WriteString(helpStyle.Render("save error: "+m.err.Error()) + "\n")
	}
	b.WriteString("\n" + m.input.View() + "\n")
	b.WriteString(helpStyle.Render("esc to quit"))
	return b.String()
}

func (m Model) viewStatus() string {
	state := m.session.State()
	var b strings.Builder

	day := game.SelectDayInfo(state, m.session.Engine().MaxDays())
	fmt.Fprintf(&b, "Day %d/%d | %s (%s) | HP %d | %dg cash | %dg debt\n\n",
		day.Current, day.Total, state.Location.Name, state.Weather, state.Health, state.Cash, state.Debt)

	b.WriteString("Prices:\n")
	for i, entry := range game.SelectPriceList(state) {
		fmt.Fprintf(&b, "  %d. %-22s %6dg  (held: %d)\n",
			i+1, entry.Name, entry.Price, game.SelectItemQuantity(state, entry.Name))
	}

	b.WriteString("Places:\n")
	for i, loc := range m.session.Engine().Catalog().Locations {
		fmt.Fprintf(&b, "  %d. %s (danger %d)\n", i+1, loc.Name, loc.DangerLevel)
	}

	if step, ok := game.SelectCurrentStep(state, m.session.Engine().Events()); ok {
		b.WriteString("\n" + step.Description + "\n")
		for i, choice := range step.Choices {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, choice.Text)
		}
	}

	return statusStyle.Render(b.String())
}
