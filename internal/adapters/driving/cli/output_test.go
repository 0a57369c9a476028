package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestSnippet(t *testing.T) {
	assert.Equal(t, "a b c", snippet("  a \n b\tc ", 10))
	assert.Equal(t, "héllo...", snippet("héllo world", 5))
	assert.Equal(t, "", snippet("", 5))
}

func TestBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("█", 10), bar(5, 5, 10))
	assert.Equal(t, strings.Repeat("█", 5), bar(1, 2, 10))
	assert.Equal(t, "█", bar(1, 1000, 10), "non-zero counts get at least one cell")
	assert.Equal(t, "", bar(0, 10, 10))
	assert.Equal(t, "", bar(3, 0, 10))
}

func TestRender_PlainWhenNotTerminal(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(new(bytes.Buffer))

	assert.Equal(t, "Results:", render(cmd, headerStyle, "Results:"))
	assert.Equal(t, defaultWidth, termWidth(cmd))
}
