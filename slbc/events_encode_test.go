package slbc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeEventsRoundTrip(t *testing.T) {
	for _, word := range []string{"dharma", "kṛṣṇa", "na ca", "108 dharma", "a~ gam"} {
		encoded, err := EncodeIAST(word, EncodeOptions{})
		require.NoError(t, err)

		events, err := DecodeToEvents(encoded)
		require.NoError(t, err)

		reencoded, err := EncodeEvents(events)
		require.NoError(t, err)
		require.Equal(t, encoded, reencoded)
	}
}

func TestEncodeEventsDropsFilteredEvents(t *testing.T) {
	encoded, err := EncodeIAST("na ca", EncodeOptions{})
	require.NoError(t, err)

	events, err := DecodeToEvents(encoded)
	require.NoError(t, err)

	var kept []Event
	for _, ev := range events {
		if ev.Kind == EvSpace {
			continue
		}
		kept = append(kept, ev)
	}

	out, err := EncodeEvents(kept)
	require.NoError(t, err)
	require.NotContains(t, out, Space)
}
