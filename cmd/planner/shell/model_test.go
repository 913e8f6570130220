package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseplanner/internal/config"
)

func newTestModel() Model {
	cfg := config.DefaultConfig()
	cfg.DataFile = ""
	return New(cfg, nil)
}

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func pressEnter(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

// lastSaid returns the content of the most recent planner transcript entry.
func lastSaid(t *testing.T, m Model) string {
	t.Helper()
	for i := len(m.history) - 1; i >= 0; i-- {
		if m.history[i].Role == "planner" {
			return m.history[i].Content
		}
	}
	t.Fatal("no planner entry in transcript")
	return ""
}

func writeCourseFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.csv")
	content := "CSCI100,Introduction to Computer Science\n" +
		"CSCI200,Data Structures,CSCI100\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// loadFile drives the full option-1 flow: choose 1, type the path, submit,
// then deliver the resulting load message back into Update.
func loadFile(t *testing.T, m Model, path string) Model {
	t.Helper()

	m = typeString(t, m, "1")
	m, _ = pressEnter(t, m)
	require.Equal(t, ModeFilePrompt, m.mode)

	m = typeString(t, m, path)
	m, cmd := pressEnter(t, m)
	require.NotNil(t, cmd)
	require.True(t, m.isLoading)

	msg := extractLoadResult(t, cmd())
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// extractLoadResult digs the loadResultMsg out of a command result; the
// submit batches the spinner tick with the load itself.
func extractLoadResult(t *testing.T, msg tea.Msg) loadResultMsg {
	t.Helper()
	switch msg := msg.(type) {
	case loadResultMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if lr, ok := c().(loadResultMsg); ok {
				return lr
			}
		}
	}
	t.Fatalf("no loadResultMsg in %T", msg)
	return loadResultMsg{}
}

func TestListGuardedUntilLoad(t *testing.T) {
	m := newTestModel()

	m = typeString(t, m, "2")
	m, _ = pressEnter(t, m)

	assert.Contains(t, lastSaid(t, m), "Please load the data structure first")
	assert.False(t, m.Loaded())
}

func TestShowGuardedUntilLoad(t *testing.T) {
	m := newTestModel()

	m = typeString(t, m, "3")
	m, _ = pressEnter(t, m)

	assert.Contains(t, lastSaid(t, m), "Please load the data structure first")
	assert.Equal(t, ModeMenu, m.mode)
}

func TestInvalidChoice(t *testing.T) {
	m := newTestModel()

	m = typeString(t, m, "7")
	m, _ = pressEnter(t, m)

	assert.Contains(t, lastSaid(t, m), "Invalid choice")
	assert.Equal(t, ModeMenu, m.mode)
}

func TestLoadThenList(t *testing.T) {
	m := loadFile(t, newTestModel(), writeCourseFile(t))

	require.True(t, m.Loaded())
	assert.Contains(t, lastSaid(t, m), "Courses successfully loaded")

	m = typeString(t, m, "2")
	m, _ = pressEnter(t, m)

	listing := lastSaid(t, m)
	assert.Contains(t, listing, "CSCI100, Introduction to Computer Science")
	assert.Contains(t, listing, "CSCI200, Data Structures")
	// Ascending order
	assert.Less(t,
		strings.Index(listing, "CSCI100"),
		strings.Index(listing, "CSCI200"))
}

func TestLoadThenShowCourse(t *testing.T) {
	m := loadFile(t, newTestModel(), writeCourseFile(t))

	m = typeString(t, m, "3")
	m, _ = pressEnter(t, m)
	require.Equal(t, ModeCoursePrompt, m.mode)

	m = typeString(t, m, "csci200")
	m, _ = pressEnter(t, m)

	detail := lastSaid(t, m)
	assert.Contains(t, detail, "CSCI200, Data Structures")
	assert.Contains(t, detail, "CSCI100, Introduction to Computer Science")
	assert.Equal(t, ModeMenu, m.mode)
}

func TestEmptyCourseNumberReprompts(t *testing.T) {
	m := loadFile(t, newTestModel(), writeCourseFile(t))

	m = typeString(t, m, "3")
	m, _ = pressEnter(t, m)
	m, _ = pressEnter(t, m) // empty submit

	assert.Contains(t, lastSaid(t, m), "Course number cannot be empty")
	assert.Equal(t, ModeCoursePrompt, m.mode, "the prompt re-asks instead of bailing")
}

func TestFailedLoadLeavesStoreEmpty(t *testing.T) {
	m := loadFile(t, newTestModel(), filepath.Join(t.TempDir(), "missing.csv"))

	assert.False(t, m.Loaded())
	assert.Contains(t, lastSaid(t, m), "Error opening file")
	assert.Equal(t, 0, m.tree.Len())

	// Listing is still guarded.
	m = typeString(t, m, "2")
	m, _ = pressEnter(t, m)
	assert.Contains(t, lastSaid(t, m), "Please load the data structure first")
}

func TestReloadAfterFailureRecovers(t *testing.T) {
	m := loadFile(t, newTestModel(), filepath.Join(t.TempDir(), "missing.csv"))
	require.False(t, m.Loaded())

	m = loadFile(t, m, writeCourseFile(t))
	assert.True(t, m.Loaded())
	assert.Equal(t, 2, m.tree.Len())
}

func TestExitChoice(t *testing.T) {
	m := newTestModel()

	m = typeString(t, m, "9")
	m, cmd := pressEnter(t, m)

	require.NotNil(t, cmd)
	assert.Contains(t, lastSaid(t, m), "Goodbye")
	assert.True(t, m.quitting)
}

func TestEscBacksOutOfPrompt(t *testing.T) {
	m := newTestModel()

	m = typeString(t, m, "1")
	m, _ = pressEnter(t, m)
	require.Equal(t, ModeFilePrompt, m.mode)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	assert.Equal(t, ModeMenu, m.mode)
	assert.False(t, m.quitting)
}

func TestFilePromptUsesConfiguredDefault(t *testing.T) {
	path := writeCourseFile(t)
	cfg := config.DefaultConfig()
	cfg.DataFile = path
	m := New(cfg, nil)

	m = typeString(t, m, "1")
	m, _ = pressEnter(t, m)
	m, cmd := pressEnter(t, m) // empty submit falls back to the config default
	require.NotNil(t, cmd)

	msg := extractLoadResult(t, cmd())
	assert.Equal(t, path, msg.path)
	require.NoError(t, msg.err)
}
