package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#E11D48")).
			Padding(0, 1)

	coinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1C1917")).
			Background(lipgloss.Color("#FACC15")).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#30d158")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)
)

// Model defines the application state
type Model struct {
	mainMenu    list.Model
	dishList    list.Model
	orderList   list.Model
	rewardList  list.Model
	textInput   textinput.Model
	spinner     spinner.Model
	client      *ApiClient
	state       *ActionResult
	currentView string
	rateOrderID string
	status      string
	error       string
}

// item represents a main menu entry
type item struct {
	title, desc string
}

func (i item) FilterValue() string { return i.title }
func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }

// dishItem represents a dish in the menu list
type dishItem struct {
	id    string
	title string
	desc  string
}

func (i dishItem) Title() string       { return i.title }
func (i dishItem) Description() string { return i.desc }
func (i dishItem) FilterValue() string { return i.title }

// orderItem represents an order in the list
type orderItem struct {
	id     string
	title  string
	desc   string
	status string
	rated  bool
}

func (i orderItem) Title() string       { return i.title }
func (i orderItem) Description() string { return i.desc }
func (i orderItem) FilterValue() string { return i.title }

// rewardItem represents a reward in the store list
type rewardItem struct {
	id    string
	title string
	desc  string
}

func (i rewardItem) Title() string       { return i.title }
func (i rewardItem) Description() string { return i.desc }
func (i rewardItem) FilterValue() string { return i.title }

func initialModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	items := []list.Item{
		item{title: "Menu", desc: "Browse dishes and place an order"},
		item{title: "Orders", desc: "Track and advance current orders"},
		item{title: "Store", desc: "Spend coins on rewards"},
		item{title: "Achievements", desc: "See what you have unlocked"},
		item{title: "Exit", desc: "Exit the application"},
	}
	mainMenu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "DinnerDate CLI"

	dishList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	dishList.Title = "Menu"

	orderList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	orderList.Title = "Orders"

	rewardList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	rewardList.Title = "Reward Store"

	ti := textinput.New()
	ti.Placeholder = "rating 1-5, optional review: 5, best pasta ever"
	ti.CharLimit = 156
	ti.Width = 50

	return Model{
		mainMenu:    mainMenu,
		dishList:    dishList,
		orderList:   orderList,
		rewardList:  rewardList,
		textInput:   ti,
		spinner:     s,
		client:      NewApiClient(),
		currentView: "main",
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.EnterAltScreen, fetchState(m.client))
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.mainMenu.SetSize(msg.Width-h, msg.Height-v-2)
		m.dishList.SetSize(msg.Width-h, msg.Height-v-2)
		m.orderList.SetSize(msg.Width-h, msg.Height-v-2)
		m.rewardList.SetSize(msg.Width-h, msg.Height-v-2)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.currentView != "rate" {
				return m, tea.Quit
			}
		case "enter":
			return m.handleEnter()
		case "esc":
			if m.currentView != "main" {
				m.currentView = "main"
				m.error = ""
				m.status = ""
			}
			return m, fetchState(m.client)
		case "a":
			if m.currentView == "orders" {
				if selected, ok := m.orderList.SelectedItem().(orderItem); ok {
					return m, advanceOrder(m.client, selected.id)
				}
			}
		case "r":
			if m.currentView == "orders" {
				if selected, ok := m.orderList.SelectedItem().(orderItem); ok {
					if selected.rated {
						m.error = "Order already rated"
						return m, nil
					}
					m.currentView = "rate"
					m.rateOrderID = selected.id
					m.textInput.SetValue("")
					m.textInput.Focus()
					return m, nil
				}
			}
		}

	case stateMsg:
		m.state = msg.result
		m.orderList.SetItems(convertOrdersToItems(msg.result.Orders))
		m.rewardList.SetItems(convertRewardsToItems(msg.result.Rewards))
		return m, nil

	case menuMsg:
		m.dishList.SetItems(convertDishesToItems(msg.dishes))
		return m, nil

	case actionMsg:
		m.error = ""
		m.status = strings.Join(msg.result.Notifications, "  ")
		m.state = msg.result
		m.orderList.SetItems(convertOrdersToItems(msg.result.Orders))
		m.rewardList.SetItems(convertRewardsToItems(msg.result.Rewards))
		if m.currentView == "rate" {
			m.currentView = "orders"
		}
		return m, nil

	case errorMsg:
		m.error = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case "main":
		m.mainMenu, cmd = m.mainMenu.Update(msg)
	case "menu":
		m.dishList, cmd = m.dishList.Update(msg)
	case "orders":
		m.orderList, cmd = m.orderList.Update(msg)
	case "store":
		m.rewardList, cmd = m.rewardList.Update(msg)
	case "rate":
		m.textInput, cmd = m.textInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.currentView {
	case "main":
		selected, ok := m.mainMenu.SelectedItem().(item)
		if !ok {
			return m, nil
		}
		switch selected.title {
		case "Exit":
			return m, tea.Quit
		case "Menu":
			m.currentView = "menu"
			return m, fetchMenu(m.client)
		case "Orders":
			m.currentView = "orders"
			return m, fetchState(m.client)
		case "Store":
			m.currentView = "store"
			return m, fetchState(m.client)
		case "Achievements":
			m.currentView = "achievements"
			return m, fetchState(m.client)
		}
	case "menu":
		if selected, ok := m.dishList.SelectedItem().(dishItem); ok {
			return m, placeOrder(m.client, selected.id)
		}
	case "store":
		if selected, ok := m.rewardList.SelectedItem().(rewardItem); ok {
			return m, redeemReward(m.client, selected.id)
		}
	case "rate":
		rating, review, err := parseRating(m.textInput.Value())
		if err != nil {
			m.error = err.Error()
			return m, nil
		}
		return m, rateOrder(m.client, m.rateOrderID, rating, review)
	}
	return m, nil
}

// View renders the UI
func (m Model) View() string {
	header := ""
	if m.state != nil {
		header = coinStyle.Render(fmt.Sprintf("🪙 %d coins", m.state.Balance)) + "\n"
	}
	footer := ""
	if m.status != "" {
		footer += "\n" + successStyle.Render(m.status)
	}
	if m.error != "" {
		footer += "\n" + errorStyle.Render(m.error)
	}

	switch m.currentView {
	case "main":
		return docStyle.Render(header + m.mainMenu.View() + footer)
	case "menu":
		help := "\nPress 'enter' to order the selected dish, 'esc' to go back"
		return docStyle.Render(header + m.dishList.View() + help + footer)
	case "orders":
		help := "\nPress 'a' to advance, 'r' to rate, 'esc' to go back"
		return docStyle.Render(header + m.orderList.View() + help + footer)
	case "store":
		help := "\nPress 'enter' to redeem, 'esc' to go back"
		return docStyle.Render(header + m.rewardList.View() + help + footer)
	case "achievements":
		return docStyle.Render(header + achievementsView(m.state) + footer)
	case "rate":
		help := "\nPress 'enter' to submit, 'esc' to cancel"
		return docStyle.Render(header + titleStyle.Render("Rate Order") + "\n\n" + m.textInput.View() + help + footer)
	default:
		return "Loading..."
	}
}

// Custom message types for the tea.Model
type stateMsg struct {
	result *ActionResult
}

type menuMsg struct {
	dishes []Dish
}

type actionMsg struct {
	result *ActionResult
}

type errorMsg struct {
	err string
}

// parseRating splits "5, great" into the rating and optional review.
func parseRating(input string) (int, string, error) {
	parts := strings.SplitN(strings.TrimSpace(input), ",", 2)
	rating, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || rating < 1 || rating > 5 {
		return 0, "", fmt.Errorf("rating must be a number from 1 to 5")
	}
	review := ""
	if len(parts) == 2 {
		review = strings.TrimSpace(parts[1])
	}
	return rating, review, nil
}

func fetchState(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		state, err := client.GetState()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching state: %v", err)}
		}
		return stateMsg{result: state}
	}
}

func fetchMenu(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		dishes, err := client.GetMenu("")
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching menu: %v", err)}
		}
		return menuMsg{dishes: dishes}
	}
}

func placeOrder(client *ApiClient, dishID string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.PlaceOrder(dishID, "", "")
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error placing order: %v", err)}
		}
		return actionMsg{result: result}
	}
}

func advanceOrder(client *ApiClient, orderID string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.AdvanceOrder(orderID)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error advancing order: %v", err)}
		}
		return actionMsg{result: result}
	}
}

func rateOrder(client *ApiClient, orderID string, rating int, review string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.RateOrder(orderID, rating, review)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error rating order: %v", err)}
		}
		return actionMsg{result: result}
	}
}

func redeemReward(client *ApiClient, rewardID string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.RedeemReward(rewardID)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error redeeming reward: %v", err)}
		}
		return actionMsg{result: result}
	}
}

func convertDishesToItems(dishes []Dish) []list.Item {
	items := make([]list.Item, len(dishes))
	for i, dish := range dishes {
		title := dish.Name
		if dish.IsFavorite {
			title += " ❤️"
		}
		items[i] = dishItem{
			id:    dish.ID,
			title: title,
			desc:  fmt.Sprintf("%s - %s - %s", dish.Category, dish.Difficulty, strings.Join(dish.Tags, ", ")),
		}
	}
	return items
}

func convertOrdersToItems(orders []Order) []list.Item {
	items := make([]list.Item, len(orders))
	for i, order := range orders {
		desc := fmt.Sprintf("Status: %s - Chef: %s", order.Status, order.Chef)
		if order.Rating > 0 {
			desc += fmt.Sprintf(" - %s", strings.Repeat("⭐", order.Rating))
		}
		items[i] = orderItem{
			id:     order.ID,
			title:  order.DishName,
			desc:   desc,
			status: order.Status,
			rated:  order.Rating > 0,
		}
	}
	return items
}

func convertRewardsToItems(rewards []Reward) []list.Item {
	items := make([]list.Item, len(rewards))
	for i, reward := range rewards {
		desc := fmt.Sprintf("%d coins - %s", reward.Cost, reward.Description)
		if reward.RedeemedCount > 0 {
			desc += fmt.Sprintf(" (used x%d)", reward.RedeemedCount)
		}
		items[i] = rewardItem{
			id:    reward.ID,
			title: fmt.Sprintf("%s %s", reward.Icon, reward.Title),
			desc:  desc,
		}
	}
	return items
}

func achievementsView(state *ActionResult) string {
	view := titleStyle.Render("Achievements") + "\n\n"
	if state == nil {
		return view + "Loading...\n"
	}
	for _, a := range state.Achievements {
		mark := "🔒"
		if a.Unlocked {
			mark = a.Icon
		}
		view += fmt.Sprintf("%s %s - %s\n", mark, a.Title, a.Description)
	}
	view += "\nPress 'esc' to go back"
	return view
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}
