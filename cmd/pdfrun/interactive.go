package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/pdfium-runtime/document"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	pageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	doc      *document.Document
	filename string
	password string
	pages    []pageInfo
	meta     []metaEntry
	view     viewport.Model
	selected int
	width    int
	height   int
	state    modelState
}

type pageInfo struct {
	index  int
	width  float64
	height float64
}

type metaEntry struct {
	tag   string
	value string
}

type modelState int

const (
	stateSelectPage modelState = iota
	stateShowText
)

func newInteractiveModel(filename, password string) *interactiveModel {
	return &interactiveModel{
		filename: filename,
		password: password,
		state:    stateSelectPage,
	}
}

type loadedMsg struct {
	err   error
	doc   *document.Document
	pages []pageInfo
	meta  []metaEntry
}

type textMsg struct {
	err  error
	page int
	text string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadDocument
}

func (m *interactiveModel) loadDocument() tea.Msg {
	doc, err := document.Open(m.filename, m.password)
	if err != nil {
		return loadedMsg{err: err}
	}

	count := doc.PageCount()
	pages := make([]pageInfo, 0, count)
	for i := 0; i < count; i++ {
		page, err := doc.Page(i)
		if err != nil {
			doc.Close()
			return loadedMsg{err: err}
		}
		pages = append(pages, pageInfo{index: i, width: page.Width(), height: page.Height()})
		page.Close()
	}

	var meta []metaEntry
	for _, tag := range metaTags {
		if v := doc.Metadata(tag); v != "" {
			meta = append(meta, metaEntry{tag: tag, value: v})
		}
	}

	return loadedMsg{doc: doc, pages: pages, meta: meta}
}

func (m *interactiveModel) extractText() tea.Msg {
	page, err := m.doc.Page(m.selected)
	if err != nil {
		return textMsg{err: err, page: m.selected}
	}
	defer page.Close()

	text, err := page.Text()
	if err != nil {
		return textMsg{err: err, page: m.selected}
	}
	if strings.TrimSpace(text) == "" {
		text = "(no text on this page)"
	}
	return textMsg{page: m.selected, text: text}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Width = msg.Width
		m.view.Height = msg.Height - 4

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.doc != nil {
				m.doc.Close()
			}
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectPage && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectPage && m.selected < len(m.pages)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateSelectPage && len(m.pages) > 0 {
				return m, m.extractText
			}

		case "esc":
			if m.state == stateShowText {
				m.state = stateSelectPage
				m.err = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.doc = msg.doc
		m.pages = msg.pages
		m.meta = msg.meta

	case textMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.view = viewport.New(m.width, max(m.height-4, 5))
		m.view.SetContent(msg.text)
		m.state = stateShowText
	}

	if m.state == stateShowText {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state == stateSelectPage {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.doc == nil {
		return "Opening document..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("PDF Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectPage:
		for _, e := range m.meta {
			b.WriteString(dimStyle.Render(fmt.Sprintf("%-12s", e.tag+":")))
			b.WriteString(" " + e.value + "\n")
		}
		if len(m.meta) > 0 {
			b.WriteString("\n")
		}

		b.WriteString("Select a page to view its text:\n\n")
		for i, p := range m.pages {
			line := fmt.Sprintf("%s  %s",
				pageStyle.Render(fmt.Sprintf("page %d", p.index)),
				dimStyle.Render(fmt.Sprintf("%.0f x %.0f pt", p.width, p.height)))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> ") + line)
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter view text • q quit"))

	case stateShowText:
		b.WriteString(pageStyle.Render(fmt.Sprintf("Text of page %d", m.selected)))
		b.WriteString("\n\n")
		b.WriteString(m.view.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • q quit"))
	}

	return b.String()
}

func runInteractive(filename, password string) error {
	p := tea.NewProgram(newInteractiveModel(filename, password), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
