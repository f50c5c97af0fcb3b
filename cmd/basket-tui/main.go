package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/basketlab/copurchase/pkg/analytics"
	"github.com/basketlab/copurchase/pkg/category"
	"github.com/basketlab/copurchase/pkg/graph"
	"github.com/basketlab/copurchase/pkg/ingest"
	"github.com/basketlab/copurchase/pkg/visualization"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB000")).
			MarginLeft(2).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FFB000")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Padding(0, 2)

	contentStyle = lipgloss.NewStyle().
			MarginLeft(2).
			MarginTop(1)

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(1, 2).
			MarginRight(2)

	graphBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FFFF00")).
			Padding(1, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type view int

const (
	dashboardView view = iota
	itemView
	pairsView
	recommendView
	categoryView
	graphView
)

const viewCount = 6

type keyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Enter    key.Binding
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
}

var keys = keyMap{
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev view"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run query"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Enter},
		{k.Up, k.Down},
		{k.Quit},
	}
}

type model struct {
	store       *graph.Store
	index       *category.Index
	currentView view

	itemInput      textinput.Model
	recommendInput textinput.Model
	categoryInput  textinput.Model
	resultTable    table.Model
	pairsTable     table.Model

	help       help.Model
	keys       keyMap
	width      int
	height     int
	message    string
	messageErr bool
}

func initialModel(store *graph.Store, index *category.Index) model {
	itemInput := textinput.New()
	itemInput.Placeholder = "whole milk"
	itemInput.CharLimit = 100
	itemInput.Width = 40

	recommendInput := textinput.New()
	recommendInput.Placeholder = "whole milk, yogurt"
	recommendInput.CharLimit = 200
	recommendInput.Width = 50

	categoryInput := textinput.New()
	categoryInput.Placeholder = "dairy"
	categoryInput.CharLimit = 100
	categoryInput.Width = 40

	resultTable := newResultTable([]table.Column{
		{Title: "Item", Width: 30},
		{Title: "Count", Width: 10},
	})

	pairsTable := newResultTable([]table.Column{
		{Title: "Item A", Width: 25},
		{Title: "Item B", Width: 25},
		{Title: "Count", Width: 10},
	})

	m := model{
		store:          store,
		index:          index,
		currentView:    dashboardView,
		itemInput:      itemInput,
		recommendInput: recommendInput,
		categoryInput:  categoryInput,
		resultTable:    resultTable,
		pairsTable:     pairsTable,
		help:           help.New(),
		keys:           keys,
	}
	m.refreshPairsTable()
	return m
}

func newResultTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#00FFFF")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#FFB000")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			m.setView((m.currentView + 1) % viewCount)

		case key.Matches(msg, m.keys.ShiftTab):
			if m.currentView == 0 {
				m.setView(viewCount - 1)
			} else {
				m.setView(m.currentView - 1)
			}

		case key.Matches(msg, m.keys.Enter):
			m.runQuery()
		}
	}

	switch m.currentView {
	case itemView:
		m.itemInput, cmd = m.itemInput.Update(msg)
		cmds = append(cmds, cmd)
	case recommendView:
		m.recommendInput, cmd = m.recommendInput.Update(msg)
		cmds = append(cmds, cmd)
	case categoryView:
		m.categoryInput, cmd = m.categoryInput.Update(msg)
		cmds = append(cmds, cmd)
	case pairsView:
		m.pairsTable, cmd = m.pairsTable.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) setView(v view) {
	m.currentView = v
	m.message = ""

	m.itemInput.Blur()
	m.recommendInput.Blur()
	m.categoryInput.Blur()
	switch v {
	case itemView:
		m.itemInput.Focus()
	case recommendView:
		m.recommendInput.Focus()
	case categoryView:
		m.categoryInput.Focus()
	}
}

func (m *model) runQuery() {
	switch m.currentView {
	case itemView:
		m.runItemQuery()
	case recommendView:
		m.runRecommendQuery()
	case categoryView:
		m.runCategoryQuery()
	}
}

func (m *model) runItemQuery() {
	item := strings.TrimSpace(m.itemInput.Value())
	if item == "" {
		m.message = "Enter an item name"
		m.messageErr = true
		return
	}

	results := analytics.TopCoPurchase(m.store, item, analytics.DefaultTopN)
	if len(results) == 0 {
		m.message = fmt.Sprintf("No co-purchases recorded for %q", item)
		m.messageErr = true
		m.resultTable.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(results))
	for _, r := range results {
		rows = append(rows, table.Row{r.Item, fmt.Sprintf("%d", r.Count)})
	}
	m.resultTable.SetRows(rows)
	m.message = fmt.Sprintf("Top %d items bought with %q", len(results), item)
	m.messageErr = false
}

func (m *model) runRecommendQuery() {
	raw := strings.TrimSpace(m.recommendInput.Value())
	items := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		m.message = "Enter one or more item names, comma separated"
		m.messageErr = true
		return
	}

	results := analytics.Recommend(m.store, items, analytics.DefaultRecommendations)
	if len(results) == 0 {
		m.message = "No recommendations for that basket"
		m.messageErr = true
		m.resultTable.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(results))
	for _, r := range results {
		rows = append(rows, table.Row{r.Item, fmt.Sprintf("%d", r.Count)})
	}
	m.resultTable.SetRows(rows)
	m.message = fmt.Sprintf("%d recommendations for [%s]", len(results), strings.Join(items, ", "))
	m.messageErr = false
}

func (m *model) runCategoryQuery() {
	name := strings.TrimSpace(m.categoryInput.Value())
	if name == "" {
		m.message = "Enter a category name"
		m.messageErr = true
		return
	}

	filtered := analytics.FilterByCategory(m.store, m.index, name)
	if !m.index.Known(name) {
		m.message = fmt.Sprintf("Unknown category %q (known: %s)", name, strings.Join(m.index.Categories(), ", "))
		m.messageErr = true
		m.resultTable.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0)
	for _, item := range m.index.Items(name) {
		neighbors, ok := filtered[item]
		if !ok {
			continue
		}
		total := 0
		for _, count := range neighbors {
			total += count
		}
		rows = append(rows, table.Row{item, fmt.Sprintf("%d", total)})
	}
	m.resultTable.SetRows(rows)
	m.message = fmt.Sprintf("In-category co-purchase totals for %q", name)
	m.messageErr = false
}

func (m *model) refreshPairsTable() {
	pairs := analytics.TopPairs(m.store, 10)
	rows := make([]table.Row, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, table.Row{p.A, p.B, fmt.Sprintf("%d", p.Count)})
	}
	m.pairsTable.SetRows(rows)
}

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("🛒 Basket Explorer"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	switch m.currentView {
	case dashboardView:
		s.WriteString(m.renderDashboard())
	case itemView:
		s.WriteString(m.renderItemQuery())
	case pairsView:
		s.WriteString(m.renderPairs())
	case recommendView:
		s.WriteString(m.renderRecommend())
	case categoryView:
		s.WriteString(m.renderCategory())
	case graphView:
		s.WriteString(m.renderGraph())
	}

	if m.message != "" {
		s.WriteString("\n\n")
		if m.messageErr {
			s.WriteString(errorStyle.Render("✗ " + m.message))
		} else {
			s.WriteString(contentStyle.Render("✓ " + m.message))
		}
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return s.String()
}

func (m model) renderTabs() string {
	tabs := []string{"Dashboard", "Co-purchases", "Top Pairs", "Recommend", "Category", "Graph"}
	var renderedTabs []string

	for i, tab := range tabs {
		if view(i) == m.currentView {
			renderedTabs = append(renderedTabs, activeTabStyle.Render(tab))
		} else {
			renderedTabs = append(renderedTabs, inactiveTabStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)
}

func (m model) renderDashboard() string {
	stats := m.store.Stats()

	statsContent := fmt.Sprintf(`📊 Graph
━━━━━━━━━━━━━━━
Items:         %d
Pairs:         %d
Transactions:  %d
Categories:    %d`,
		stats.ItemCount,
		stats.PairCount,
		stats.TransactionCount,
		m.index.Len(),
	)

	var top strings.Builder
	top.WriteString("🏆 Most Purchased\n")
	top.WriteString("━━━━━━━━━━━━━━━\n")
	for _, entry := range m.store.TopByFrequency(5) {
		top.WriteString(fmt.Sprintf("%-25s %d\n", entry.Item, entry.Frequency))
	}

	statsBox := statsBoxStyle.Render(statsContent)
	topBox := statsBoxStyle.Render(top.String())

	return contentStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Top, statsBox, topBox),
	)
}

func (m model) renderItemQuery() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("Co-purchase Lookup"))
	s.WriteString("\n\n")
	s.WriteString("Which items are most often bought with:\n\n")
	s.WriteString(m.itemInput.View())
	s.WriteString("\n\n")
	s.WriteString(m.resultTable.View())

	return contentStyle.Render(s.String())
}

func (m model) renderPairs() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("Strongest Pairs"))
	s.WriteString("\n\n")
	s.WriteString(m.pairsTable.View())
	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Navigate with ↑/↓"))

	return contentStyle.Render(s.String())
}

func (m model) renderRecommend() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("Recommendations"))
	s.WriteString("\n\n")
	s.WriteString("Current basket (comma separated):\n\n")
	s.WriteString(m.recommendInput.View())
	s.WriteString("\n\n")
	s.WriteString(m.resultTable.View())

	return contentStyle.Render(s.String())
}

func (m model) renderCategory() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("Category Filter"))
	s.WriteString("\n\n")
	s.WriteString("Restrict the graph to one category:\n\n")
	s.WriteString(m.categoryInput.View())
	s.WriteString("\n\n")
	s.WriteString(m.resultTable.View())

	return contentStyle.Render(s.String())
}

func (m model) renderGraph() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("Graph Overview"))
	s.WriteString("\n\n")
	s.WriteString(graphBoxStyle.Render(m.generateGraphViz()))

	return contentStyle.Render(s.String())
}

func (m model) generateGraphViz() string {
	projection := visualization.Project(m.store, 8)
	if len(projection.Nodes) == 0 {
		return "No transactions loaded"
	}

	var s strings.Builder
	s.WriteString(fmt.Sprintf("Top %d items, %d edges between them\n\n", len(projection.Nodes), len(projection.Edges)))

	adjacency := make(map[string][]visualization.Edge)
	for _, edge := range projection.Edges {
		adjacency[edge.A] = append(adjacency[edge.A], edge)
	}

	for _, node := range projection.Nodes {
		s.WriteString(fmt.Sprintf("◉ %s (%d)\n", node.Item, node.Frequency))
		for _, edge := range adjacency[node.Item] {
			s.WriteString(fmt.Sprintf("  └─[%d]─ %s\n", edge.Weight, edge.B))
		}
	}

	return s.String()
}

func main() {
	csvPath := flag.String("csv", "", "Transaction CSV to explore")
	categoryFile := flag.String("categories", "", "YAML category table (optional)")
	flag.Parse()

	if *csvPath == "" {
		log.Fatal("Usage: basket-tui -csv transactions.csv [-categories categories.yaml]")
	}

	store := graph.New()
	txs, err := ingest.LoadCSVFile(*csvPath)
	if err != nil {
		log.Fatalf("Failed to load CSV: %v", err)
	}
	ingest.Feed(store, txs)

	index := category.Default()
	if *categoryFile != "" {
		index, err = category.LoadFile(*categoryFile)
		if err != nil {
			log.Fatalf("Failed to load category file: %v", err)
		}
	}

	p := tea.NewProgram(initialModel(store, index), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
