package prompt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAborted(t *testing.T) {
	assert.True(t, IsAborted(promptui.ErrInterrupt))
	assert.True(t, IsAborted(promptui.ErrEOF))
	assert.True(t, IsAborted(fmt.Errorf("reading: %w", ErrAborted)))
	assert.False(t, IsAborted(promptui.ErrAbort))
	assert.False(t, IsAborted(errors.New("tty closed")))
	assert.False(t, IsAborted(nil))
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, wrapError(nil))
	assert.Equal(t, ErrAborted, wrapError(promptui.ErrInterrupt))

	other := errors.New("tty closed")
	assert.Equal(t, other, wrapError(other))
}

func TestParseConfirm(t *testing.T) {
	tests := []struct {
		name       string
		result     string
		err        error
		defaultYes bool
		want       bool
		wantErr    error
	}{
		{name: "Yes", result: "y", want: true},
		{name: "YesWord", result: "YES", want: true},
		{name: "EmptyUsesDefaultNo", result: ""},
		{name: "EmptyUsesDefaultYes", result: "", defaultYes: true, want: true},
		{name: "Other", result: "maybe"},
		{name: "AnsweredNo", result: "n", err: promptui.ErrAbort, defaultYes: true},
		{name: "Interrupted", err: promptui.ErrInterrupt, wantErr: ErrAborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseConfirm(tt.result, tt.err, tt.defaultYes)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirmOverwrite_NoPrompt(t *testing.T) {
	ok, err := ConfirmOverwrite("/tmp/world.yaml", false, false)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ConfirmOverwrite("/tmp/world.yaml", true, true)
	require.NoError(t, err)
	assert.True(t, ok)
}
