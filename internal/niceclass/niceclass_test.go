package niceclass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabelKnownClasses(t *testing.T) {
	require.Equal(t, "9 (Scientific & electronic apparatus, software)", Label("9"))
	require.Equal(t, "25 (Clothing, footwear & headgear)", Label("25"))
	require.Equal(t, "45 (Legal & security services)", Label("45"))
}

func TestLabelUnknownClassReturnsBareCode(t *testing.T) {
	require.Equal(t, "99", Label("99"))
	require.Equal(t, "A", Label("A"))
}

func TestLabelTrimsWhitespace(t *testing.T) {
	require.Equal(t, "9 (Scientific & electronic apparatus, software)", Label(" 9 "))
}
