// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the styling for the chooser
type Styles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	Breadcrumb    lipgloss.Style
	Marked        lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		Breadcrumb: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		Marked: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
	}
}

// optionItem adapts an Option for the bubbles list
type optionItem struct {
	opt    Option
	marked bool
}

func (i optionItem) FilterValue() string { return i.opt.Label }

func (i optionItem) Title() string {
	if i.marked {
		return "● " + i.opt.Label
	}
	return i.opt.Label
}

func (i optionItem) Description() string {
	var parts []string
	if i.opt.Version != "" {
		parts = append(parts, i.opt.Version)
	}
	if i.opt.Kind != DepKindNone {
		parts = append(parts, i.opt.Kind.String())
	}
	if i.opt.Description != "" {
		parts = append(parts, i.opt.Description)
	}
	if len(parts) == 0 {
		return " "
	}
	return strings.Join(parts, " · ")
}

// TeaChooser is the Bubble Tea implementation of the Chooser interface.
// Each Choose call runs its own program and blocks until the user
// answers, which keeps the resolver walk synchronous.
type TeaChooser struct {
	styles *Styles
	glam   *glamour.TermRenderer
}

// NewTeaChooser builds the chooser with markdown rendering for the
// detail pane.
func NewTeaChooser() *TeaChooser {
	glam, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	return &TeaChooser{styles: NewStyles(), glam: glam}
}

// Choose presents the options and blocks for a single or multi
// selection. Esc or ctrl+c cancels with ErrSelectionAborted.
func (c *TeaChooser) Choose(prompt string, opts []Option) (Choice, error) {
	items := make([]list.Item, len(opts))
	for i, opt := range opts {
		items[i] = optionItem{opt: opt}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	model := chooseModel{
		prompt:  prompt,
		list:    l,
		detail:  viewport.New(0, 0),
		styles:  c.styles,
		glam:    c.glam,
		marked:  make(map[string]struct{}),
		order:   []string{},
		options: opts,
	}

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return Choice{}, err
	}
	m := final.(chooseModel)
	if m.aborted {
		return Choice{}, ErrSelectionAborted
	}
	if m.multi {
		return Choice{Multi: true, Marked: m.order}, nil
	}
	return Choice{Label: m.chosen}, nil
}

// Input asks for one free-form line of text.
func (c *TeaChooser) Input(prompt, placeholder string) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	model := inputModel{prompt: prompt, input: ti, styles: c.styles}
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.aborted {
		return "", ErrSelectionAborted
	}
	return m.value, nil
}

// chooseModel is the Bubble Tea state for one selection step
type chooseModel struct {
	prompt  string
	list    list.Model
	detail  viewport.Model
	styles  *Styles
	glam    *glamour.TermRenderer
	options []Option

	marked map[string]struct{}
	order  []string // marked labels in toggle order

	chosen  string
	multi   bool
	aborted bool
	ready   bool
	width   int
	height  int
}

func (m chooseModel) Init() tea.Cmd {
	return nil
}

func (m chooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Let the list's filter input consume keys while filtering.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if len(m.order) > 0 {
				m.multi = true
				return m, tea.Quit
			}
			if item, ok := m.list.SelectedItem().(optionItem); ok {
				m.chosen = item.opt.Label
				return m, tea.Quit
			}
		case " ", "tab":
			if item, ok := m.list.SelectedItem().(optionItem); ok {
				m.toggleMark(item.opt.Label)
				m.refreshItems()
			}
			return m, nil
		case "ctrl+s":
			// Submit the marked set as-is, possibly empty.
			m.multi = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listWidth := (m.width / 2) - 2
		m.list.SetSize(listWidth, m.height-6)
		m.detail.Width = m.width - listWidth - 6
		m.detail.Height = m.height - 6
		m.ready = true
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.updateDetail()
	return m, cmd
}

func (m *chooseModel) toggleMark(label string) {
	if _, ok := m.marked[label]; ok {
		delete(m.marked, label)
		for i, l := range m.order {
			if l == label {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
		return
	}
	m.marked[label] = struct{}{}
	m.order = append(m.order, label)
}

func (m *chooseModel) refreshItems() {
	items := make([]list.Item, len(m.options))
	for i, opt := range m.options {
		_, marked := m.marked[opt.Label]
		items[i] = optionItem{opt: opt, marked: marked}
	}
	m.list.SetItems(items)
}

// updateDetail renders the highlighted option's metadata in the side pane
func (m *chooseModel) updateDetail() {
	item, ok := m.list.SelectedItem().(optionItem)
	if !ok {
		m.detail.SetContent("")
		return
	}
	opt := item.opt

	var content strings.Builder
	content.WriteString(fmt.Sprintf("# %s\n\n", opt.Label))
	if opt.Version != "" {
		content.WriteString(fmt.Sprintf("**Version:** %s\n\n", opt.Version))
	}
	if opt.Kind != DepKindNone {
		content.WriteString(fmt.Sprintf("**Kind:** %s\n\n", opt.Kind.String()))
	}
	if opt.Description != "" {
		content.WriteString(opt.Description + "\n")
	}

	if rendered, err := m.glam.Render(content.String()); err == nil {
		m.detail.SetContent(rendered)
	} else {
		m.detail.SetContent(content.String())
	}
}

func (m chooseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 8 {
		return "Terminal too small. Please resize your terminal."
	}

	listWidth := (m.width / 2) - 2
	detailWidth := m.width - listWidth - 6

	listBox := m.styles.BorderFocused.
		Width(listWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Breadcrumb.Render(" "+m.prompt+" "),
			m.list.View(),
		))

	detailBox := m.styles.BorderBlurred.
		Width(detailWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" Details "),
			m.detail.View(),
		))

	main := lipgloss.JoinHorizontal(lipgloss.Top, listBox, detailBox)
	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderHelp())
}

func (m chooseModel) renderHelp() string {
	entries := [][2]string{
		{"enter", "choose"},
		{"space", "mark"},
		{"ctrl+s", "confirm marks"},
		{"/", "filter"},
		{"esc", "cancel"},
	}

	var parts []string
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s %s",
			m.styles.HelpKey.Render(e[0]),
			m.styles.HelpDesc.Render(e[1])))
	}
	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(parts, " • "))
}

// inputModel is the Bubble Tea state for one free-form text prompt
type inputModel struct {
	prompt  string
	input   textinput.Model
	styles  *Styles
	value   string
	aborted bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.value = m.input.Value()
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	return fmt.Sprintf("\n %s\n\n %s\n\n %s\n",
		m.styles.Breadcrumb.Render(m.prompt),
		m.input.View(),
		m.styles.HelpDesc.Render("enter confirm • esc cancel"))
}
