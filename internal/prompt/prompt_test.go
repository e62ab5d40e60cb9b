package prompt_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classkit/gradeport/internal/prompt"
	"github.com/classkit/gradeport/pkg/platform"
)

func prompter(input string) (*prompt.Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &prompt.Prompter{In: strings.NewReader(input), Out: out}, out
}

func TestPlatform(t *testing.T) {
	t.Run("accepts shorthand", func(t *testing.T) {
		p, _ := prompter("C\n")
		id, err := p.Platform()
		require.NoError(t, err)
		assert.Equal(t, platform.CodeHS, id)
	})

	t.Run("re-prompts on invalid input", func(t *testing.T) {
		p, out := prompter("X\nmaybe\nP\n")
		id, err := p.Platform()
		require.NoError(t, err)
		assert.Equal(t, platform.ProjectStem, id)
		assert.Equal(t, 2, strings.Count(out.String(), "Invalid input"))
	})

	t.Run("EOF is an error", func(t *testing.T) {
		p, _ := prompter("")
		_, err := p.Platform()
		require.Error(t, err)
	})
}

func TestExistingFile(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "roster.csv")
	require.NoError(t, os.WriteFile(real, []byte("x"), 0644))

	p, out := prompter(filepath.Join(dir, "nope.csv") + "\n" + real + "\n")
	got, err := p.ExistingFile("Enter the path to the roster file: ")
	require.NoError(t, err)
	assert.Equal(t, real, got)
	assert.Contains(t, out.String(), "File not found")
}

func TestRange(t *testing.T) {
	t.Run("empty means no range", func(t *testing.T) {
		p, _ := prompter("\n")
		got, err := p.Range(platform.ProjectStem)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("re-prompts until valid", func(t *testing.T) {
		p, out := prompter("5.8-5.4\n8.1.3-8.3.9\n")
		got, err := p.Range(platform.CodeHS)
		require.NoError(t, err)
		assert.Equal(t, "8.1.3-8.3.9", got)
		assert.Contains(t, out.String(), "Invalid format")
	})
}
