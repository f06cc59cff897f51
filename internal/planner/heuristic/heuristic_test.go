package heuristic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quicktask/internal/model"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "json fence", in: "```json\n- Buy milk\n```", want: "- Buy milk"},
		{name: "bare fence", in: "```\n1. Plan trip\n```  ", want: "1. Plan trip"},
		{name: "no fence", in: "  1. Plan trip  \n", want: "1. Plan trip"},
		{name: "fence in the middle is kept", in: "intro\n```x```", want: "intro\n```x```"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.in))
		})
	}
}

func TestIsClarification(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "could you clarify", in: "Could you clarify your deadline?\n• What is your budget?", want: true},
		{name: "upper case", in: "PLEASE CLARIFY", want: true},
		{name: "capitalized pronoun", in: "Before I can generate tasks, tell me your budget.", want: true},
		{name: "a few questions", in: "I have a few questions first.", want: true},
		{name: "task list", in: "1. Research flights (High)\n2. Book hotel", want: false},
		{name: "empty", in: "   ", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsClarification(tt.in))
		})
	}
}

func TestExtractBulletLines(t *testing.T) {
	t.Run("clarification questions", func(t *testing.T) {
		text := "Could you clarify your deadline?\n• What is your budget?\n• What city?"
		assert.Equal(t, []string{"What is your budget?", "What city?"}, ExtractBulletLines(text))
	})

	t.Run("mixed markers keep order and duplicates", func(t *testing.T) {
		text := "- one\r\n* two\n1. numbered\n• one\nplain - text\n-nospace"
		assert.Equal(t, []string{"one", "two", "one"}, ExtractBulletLines(text))
	})

	t.Run("re-bulleting reproduces the count", func(t *testing.T) {
		text := "- a\n- b\n- c"
		first := ExtractBulletLines(text)
		require.Len(t, first, 3)

		again := ExtractBulletLines("- " + strings.Join(first, "\n- "))
		assert.Equal(t, first, again)
	})

	t.Run("sequence is restartable and stops early", func(t *testing.T) {
		seq := BulletLines("- a\n- b\n- c")

		var firstPass, secondPass []string
		for s := range seq {
			firstPass = append(firstPass, s)
		}
		for s := range seq {
			secondPass = append(secondPass, s)
			break
		}
		assert.Equal(t, []string{"a", "b", "c"}, firstPass)
		assert.Equal(t, []string{"a"}, secondPass)
	})

	t.Run("blank remainder is skipped", func(t *testing.T) {
		assert.Empty(t, ExtractBulletLines("-   \n*\t"))
	})

	t.Run("unicode space after the marker", func(t *testing.T) {
		text := "-\u00a0What is your budget?\n•\u3000Which city?"
		assert.Equal(t, []string{"What is your budget?", "Which city?"}, ExtractBulletLines(text))
	})
}

func TestParseTasks(t *testing.T) {
	t.Run("priority and description suffix", func(t *testing.T) {
		tasks, _ := ParseTasks("1. Research flights (High) - Compare prices\n2. Book hotel")
		require.Len(t, tasks, 2)

		assert.Equal(t, model.TaskDraft{
			Name:        "Research flights",
			Priority:    model.PriorityHigh,
			Description: "Compare prices",
			Status:      model.StatusPending,
		}, tasks[0])
		assert.Equal(t, model.TaskDraft{
			Name:     "Book hotel",
			Priority: model.PriorityMedium,
			Status:   model.StatusPending,
		}, tasks[1])
	})

	t.Run("continuation lines accumulate", func(t *testing.T) {
		tasks, _ := ParseTasks("- Task A\nMore info\n- Task B")
		require.Len(t, tasks, 2)
		assert.Equal(t, "More info", tasks[0].Description)
		assert.Empty(t, tasks[1].Description)
	})

	t.Run("continuation joins with spaces after a suffix", func(t *testing.T) {
		tasks, _ := ParseTasks("* Draft outline (Low) - Rough notes\n\n  keep it short  \nthen share")
		require.Len(t, tasks, 1)
		assert.Equal(t, model.PriorityLow, tasks[0].Priority)
		assert.Equal(t, "Rough notes keep it short then share", tasks[0].Description)
	})

	t.Run("lines before the list are ignored", func(t *testing.T) {
		tasks, _ := ParseTasks("Great goal! Here is a plan.\n• Warm up (Medium)\n• Run 5k (High)")
		require.Len(t, tasks, 2)
		assert.Equal(t, "Warm up", tasks[0].Name)
		assert.Equal(t, model.PriorityHigh, tasks[1].Priority)
		assert.Empty(t, tasks[0].Description)
	})

	t.Run("summary follows the last task", func(t *testing.T) {
		text := "Here you go:\n1. Book flights (High)\n2. Pack bags\nYou've got this, enjoy the trip!"
		tasks, summary := ParseTasks(text)
		require.Len(t, tasks, 2)
		assert.Equal(t, "You've got this, enjoy the trip!", summary)
		assert.Equal(t, "You've got this, enjoy the trip!", tasks[1].Description)
	})

	t.Run("unicode space after the marker", func(t *testing.T) {
		tasks, _ := ParseTasks("-\u00a0Book flights\u00a0(High)\u2003-\u00a0Compare prices\n2.\u3000Pack bags")
		require.Len(t, tasks, 2)
		assert.Equal(t, "Book flights", tasks[0].Name)
		assert.Equal(t, model.PriorityHigh, tasks[0].Priority)
		assert.Equal(t, "Compare prices", tasks[0].Description)
		assert.Equal(t, "Pack bags", tasks[1].Name)
	})

	t.Run("no list", func(t *testing.T) {
		tasks, summary := ParseTasks("Sounds like a fun weekend.")
		assert.Empty(t, tasks)
		assert.Empty(t, summary)
	})
}

func TestScanLines(t *testing.T) {
	t.Run("blank line closes the list", func(t *testing.T) {
		tasks := scanLines([]string{"- Task A", "", "not a description"})
		require.Len(t, tasks, 1)
		assert.Empty(t, tasks[0].Description)
	})

	t.Run("whitespace-only title yields an empty name", func(t *testing.T) {
		tasks := scanLines([]string{"- \u3000"})
		require.Len(t, tasks, 1)
		assert.Empty(t, tasks[0].Name)
	})
}

func TestInfoSufficiency(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantCore    bool
		wantMinimum bool
	}{
		{
			name:        "all four categories",
			text:        "i want to learn python in 3 weeks. i'm a beginner and prefer video courses.",
			wantCore:    true,
			wantMinimum: true,
		},
		{
			name:        "explicit lack of experience",
			text:        "i want to learn guitar within 2 months and have never tried an instrument",
			wantCore:    false,
			wantMinimum: true,
		},
		{
			name:        "no timeframe",
			text:        "i want to learn spanish, i'm a beginner and prefer books",
			wantCore:    false,
			wantMinimum: false,
		},
		{
			name:        "small talk",
			text:        "hello there",
			wantCore:    false,
			wantMinimum: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCore, HasCoreInfo(tt.text))
			assert.Equal(t, tt.wantMinimum, HasMinimumInfo(tt.text))
			if HasCoreInfo(tt.text) {
				assert.True(t, HasMinimumInfo(tt.text))
			}
		})
	}
}

func TestConversationText(t *testing.T) {
	history := []model.ConversationTurn{
		{Role: model.RoleUser, Content: "I want to BUILD an app"},
		{Role: model.RoleAssistant, Content: "What is your deadline?"},
	}
	got := ConversationText(history, "Two Weeks")
	assert.Equal(t, "i want to build an app\nwhat is your deadline?\ntwo weeks", got)
	assert.False(t, HasMinimumInfo(got))
}
