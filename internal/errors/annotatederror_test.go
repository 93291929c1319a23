package errors_test

import (
	"log/slog"
	"slices"
	"testing"

	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := errors.New("test error", slog.String("room", "Cozinha"))
	require.Equal(t, "test error", err.Error())

	// Two errors with the same message are distinct.
	require.NotErrorIs(t, err, errors.New("test error"))
}

func TestWrap(t *testing.T) {
	sentinel := errors.NewSentinel("input closed")
	wrapped := errors.Wrap(sentinel, "read choice", slog.String("room", "Jardim"))
	require.ErrorIs(t, wrapped, sentinel)
	require.Equal(t, "read choice: input closed", wrapped.Error())

	twice := errors.Wrap(wrapped, "explore")
	require.ErrorIs(t, twice, sentinel)
	require.Equal(t, "explore: read choice: input closed", twice.Error())

	require.NoError(t, errors.Wrap(nil, "nothing happened"))
}

func TestSlogError(t *testing.T) {
	err := errors.Wrap(errors.NewSentinel("boom"), "insert suspect", slog.String("clue", "Diário do mordomo"))

	attr := errors.SlogError(err)
	require.Equal(t, "error", attr.Key)

	group := attr.Value.Resolve().Group()
	require.Equal(t, "Diário do mordomo", groupValue(t, group, "clue"))
	require.Equal(t, "insert suspect: boom", groupValue(t, group, "msg"))
	require.Contains(t, groupValue(t, group, "source"), "annotatederror_test.go")

	plain := errors.SlogError(errors.NewSentinel("plain"))
	require.Equal(t, "error", plain.Key)
	require.Equal(t, "plain", plain.Value.String())
}

func groupValue(t *testing.T, group []slog.Attr, key string) string {
	t.Helper()
	idx := slices.IndexFunc(group, func(attr slog.Attr) bool {
		return attr.Key == key
	})
	require.NotEqual(t, -1, idx, "missing attribute %q", key)
	return group[idx].Value.String()
}
