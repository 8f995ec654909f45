package raffle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTabSetTwoTabsWrap(t *testing.T) {
	s := NewTabSet(TabHome, TabRoster)
	require.Equal(t, 0, s.Index())
	s.Next()
	require.Equal(t, 1, s.Index())
	s.Next()
	require.Equal(t, 0, s.Index())

	s.Previous()
	require.Equal(t, 1, s.Index())
	require.Equal(t, TabRoster, s.Active())
}

func TestTabSetDefaultOrder(t *testing.T) {
	s := NewTabSet(DefaultTabs()...)
	require.Equal(t, []string{"Home", "Participants", "Raffle"}, s.Titles())
	s.Previous()
	require.Equal(t, TabSpin, s.Active())
}

func TestTabSetSingleTab(t *testing.T) {
	s := NewTabSet(TabSpin)
	s.Next()
	s.Previous()
	require.Equal(t, TabSpin, s.Active())
}

func TestNewTabSetPanicsWhenEmpty(t *testing.T) {
	require.Panics(t, func() { NewTabSet() })
}
