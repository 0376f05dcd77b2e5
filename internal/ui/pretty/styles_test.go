package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpad/internal/ui/pretty"
	"github.com/yaklabco/mdpad/pkg/theme"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	text := "test"
	assert.Equal(t, text, styles.Bold.Render(text), "No-color Bold should not add formatting")
	assert.Equal(t, text, styles.Heading.Render(text))
}

func TestNewThemedStyles(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	styles := pretty.NewThemedStyles(true, th)
	require.NotNil(t, styles)
	assert.Equal(t, th.Accent, styles.Heading.GetForeground())

	plain := pretty.NewThemedStyles(false, th)
	assert.Equal(t, "x", plain.Heading.Render("x"))
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, pretty.IsColorEnabled("always", &buf))
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout))
	assert.False(t, pretty.IsColorEnabled("auto", &buf), "bytes.Buffer is not a TTY")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout))
}
