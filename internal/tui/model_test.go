package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kavia-common/simple-qa-assistant-34089-34098/internal/models"
)

// stubAsker is a canned Asker for TUI tests
type stubAsker struct {
	reply string
	calls int
}

func (s *stubAsker) AskText(question string) string {
	s.calls++
	return s.reply
}

// sized returns a model that has received its first WindowSizeMsg
func sized(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func TestNewChatModel(t *testing.T) {
	m := NewChatModel(&stubAsker{}, "http://localhost:3001/api/ask/")

	if m.loading {
		t.Error("new model should not be loading")
	}
	if m.log.Len() != 0 {
		t.Error("new model should have an empty transcript")
	}
	if m.ready {
		t.Error("model should not be ready before the first WindowSizeMsg")
	}
}

func TestSubmitQuestion(t *testing.T) {
	asker := &stubAsker{reply: "42"}
	m := sized(t, NewChatModel(asker, ""))

	m.textarea.SetValue("meaning?")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	// Optimistic echo: the user message is in the transcript before
	// any answer arrives
	msgs := m.log.Messages()
	if len(msgs) != 1 || msgs[0].Role != models.RoleUser || msgs[0].Content != "meaning?" {
		t.Fatalf("transcript after submit = %v", msgs)
	}
	if !m.loading {
		t.Error("model should be loading after submit")
	}
	if m.textarea.Value() != "" {
		t.Error("textarea should be cleared after submit")
	}
	if cmd == nil {
		t.Fatal("submit should produce a command")
	}
}

func TestSubmitBlockedWhileLoading(t *testing.T) {
	asker := &stubAsker{reply: "42"}
	m := sized(t, NewChatModel(asker, ""))

	m.textarea.SetValue("first")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	// A second submission while the first is pending must be rejected
	m.textarea.SetValue("second")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.log.Len() != 1 {
		t.Errorf("transcript length = %d, want 1 (second submit should be rejected)", m.log.Len())
	}
}

func TestSubmitIgnoresBlankInput(t *testing.T) {
	m := sized(t, NewChatModel(&stubAsker{}, ""))

	m.textarea.SetValue("   ")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.log.Len() != 0 || m.loading {
		t.Error("blank input should not submit")
	}
}

func TestAnswerAppendsAssistantMessage(t *testing.T) {
	m := sized(t, NewChatModel(&stubAsker{}, ""))
	m.loading = true
	m.log.Append(models.RoleUser, "meaning?")

	updated, _ := m.Update(answerMsg{text: "42"})
	m = updated.(Model)

	if m.loading {
		t.Error("model should stop loading when the answer arrives")
	}
	msgs := m.log.Messages()
	if len(msgs) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(msgs))
	}
	if msgs[1].Role != models.RoleAssistant || msgs[1].Content != "42" {
		t.Errorf("assistant message = %v/%q", msgs[1].Role, msgs[1].Content)
	}
}

func TestAskCmdUsesClient(t *testing.T) {
	asker := &stubAsker{reply: "the answer"}
	m := NewChatModel(asker, "")

	msg := m.askCmd("q")()

	answer, ok := msg.(answerMsg)
	if !ok {
		t.Fatalf("askCmd produced %T, want answerMsg", msg)
	}
	if answer.text != "the answer" {
		t.Errorf("answer text = %q", answer.text)
	}
	if asker.calls != 1 {
		t.Errorf("client called %d times, want 1", asker.calls)
	}
}

func TestExitCommands(t *testing.T) {
	for _, input := range []string{"exit", "quit", "/exit", "/quit"} {
		t.Run(input, func(t *testing.T) {
			m := sized(t, NewChatModel(&stubAsker{}, ""))
			m.textarea.SetValue(input)

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if msg := cmd(); msg != tea.Quit() {
				t.Errorf("cmd() = %v, want tea.QuitMsg", msg)
			}
		})
	}
}

func TestViewShowsTarget(t *testing.T) {
	m := sized(t, NewChatModel(&stubAsker{}, "http://localhost:3001/api/ask/"))

	view := m.View()
	if !strings.Contains(view, "QA Assistant") {
		t.Error("view should contain the title")
	}
	if !strings.Contains(view, "http://localhost:3001/api/ask/") {
		t.Error("view should show the resolved target")
	}
}
