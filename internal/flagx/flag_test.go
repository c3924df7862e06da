package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	got := FilterArgs([]string{"-a", "http://localhost:8080", "-x", "1"}, []string{"-a"})
	require.Equal(t, []string{"-a", "http://localhost:8080"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	got := FilterArgs([]string{"--config=app.json", "-a=addr"}, []string{"--config"})
	require.Equal(t, []string{"--config=app.json"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	got := FilterArgs([]string{"-a", "-t", "5"}, []string{"-a", "-t"})
	require.Equal(t, []string{"-a", "-t", "5"}, got)
}

func TestFilterArgs_NothingAllowed(t *testing.T) {
	got := FilterArgs([]string{"-a", "x"}, nil)
	require.Empty(t, got)
	require.NotNil(t, got)
}
