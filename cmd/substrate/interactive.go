package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/substrate-codec/internal/config"
)

type interactiveModel struct {
	err      error
	cfg      *config.C
	result   string
	ops      []opInfo
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

type opInfo struct {
	run    func(cfg *config.C, in []string) (string, error)
	name   string
	usage  string
	params []paramInfo
}

type paramInfo struct {
	name        string
	placeholder string
}

type modelState int

const (
	stateSelectOp modelState = iota
	stateInputArgs
	stateShowResult
)

var interactiveOps = []opInfo{
	{
		name:  "encode",
		usage: "values → SCALE",
		params: []paramInfo{
			{"values", "int:1000 str:hello"},
			{"hints", "u16,"},
		},
		run: func(_ *config.C, in []string) (string, error) {
			return encodeOp(strings.Fields(in[0]), in[1])
		},
	},
	{
		name:  "decode",
		usage: "SCALE → values",
		params: []paramInfo{
			{"data", "0xe803"},
			{"types", "int"},
			{"hints", "u16"},
			{"network", "42"},
		},
		run: func(cfg *config.C, in []string) (string, error) {
			version, err := networkInput(in[3], cfg)
			if err != nil {
				return "", err
			}
			lines, err := decodeOp(in[0], in[1], in[2], version, false)
			if err != nil {
				return "", err
			}
			return strings.Join(lines, "\n"), nil
		},
	},
	{
		name:  "account",
		usage: "public key ↔ SS58",
		params: []paramInfo{
			{"input", "0x<public key> or SS58"},
			{"network", "42"},
		},
		run: func(cfg *config.C, in []string) (string, error) {
			version, err := networkInput(in[1], cfg)
			if err != nil {
				return "", err
			}
			return accountOp(in[0], false, version)
		},
	},
	{
		name:  "storage-key",
		usage: "pallet, item → key",
		params: []paramInfo{
			{"pallet", "System"},
			{"item", "Number"},
		},
		run: func(_ *config.C, in []string) (string, error) {
			return storageKeyOp(in[0], in[1])
		},
	},
	{
		name:  "storage-map",
		usage: "pallet, item, keys → key",
		params: []paramInfo{
			{"pallet", "System"},
			{"item", "Account"},
			{"keys", "0x<key> [0x<key2>]"},
			{"pre-hashed", "false"},
		},
		run: func(_ *config.C, in []string) (string, error) {
			preHashed := false
			if in[3] != "" {
				b, err := strconv.ParseBool(in[3])
				if err != nil {
					return "", fmt.Errorf("pre-hashed: %w", err)
				}
				preHashed = b
			}
			return storageMapOp(in[0], in[1], strings.Fields(in[2]), preHashed, "")
		},
	},
}

func networkInput(s string, cfg *config.C) (int, error) {
	if s == "" {
		return cfg.SS58Version, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("network: %w", err)
	}
	return v, nil
}

func newInteractiveModel(cfg *config.C) *interactiveModel {
	return &interactiveModel{
		cfg:   cfg,
		ops:   interactiveOps,
		state: stateSelectOp,
	}
}

type opResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputArgs {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(m.ops)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				m.prepareInputs()
				m.state = stateInputArgs
				return m, nil

			case stateInputArgs:
				return m, m.runOp

			case stateShowResult:
				m.state = stateInputArgs
				m.result = ""
				m.err = nil
				return m, nil
			}

		case "tab", "shift+tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				step := 1
				if msg.String() == "shift+tab" {
					step = len(m.inputs) - 1
				}
				m.focusIdx = (m.focusIdx + step) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
				return m, nil
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectOp
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectOp
				m.inputs = nil
				m.result = ""
				m.err = nil
			}
			return m, nil
		}

	case opResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmd tea.Cmd
		m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	op := m.ops[m.selected]
	m.inputs = make([]textinput.Model, len(op.params))
	for i, p := range op.params {
		ti := textinput.New()
		ti.Placeholder = p.placeholder
		ti.Prompt = p.name + ": "
		ti.Width = 60
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) runOp() tea.Msg {
	op := m.ops[m.selected]
	in := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		in[i] = strings.TrimSpace(input.Value())
	}
	result, err := op.run(m.cfg, in)
	return opResultMsg{result: result, err: err}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Substrate Codec"))
	b.WriteString(" network ")
	b.WriteString(strconv.Itoa(m.cfg.SS58Version))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectOp:
		b.WriteString("Select an operation:\n\n")
		for i, op := range m.ops {
			line := opStyle.Render(op.name) + "  " + typeStyle.Render(op.usage)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + op.name + "  " + op.usage))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputArgs:
		op := m.ops[m.selected]
		b.WriteString(fmt.Sprintf("%s\n\n", opStyle.Render(op.name)))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter run • esc back"))

	case stateShowResult:
		op := m.ops[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", opStyle.Render(op.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter edit • esc menu • q quit"))
	}

	return b.String()
}

func runInteractive(cfg *config.C) error {
	p := tea.NewProgram(newInteractiveModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
