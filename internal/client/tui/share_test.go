package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShareDialog_CopyAndClose(t *testing.T) {
	var copied string
	orig := clipboardWriteAll
	clipboardWriteAll = func(s string) error { copied = s; return nil }
	defer func() { clipboardWriteAll = orig }()

	var s ShareDialog
	s.Show("http://localhost:5173/brain/share/abc")
	assert.True(t, s.Open())
	assert.Contains(t, s.View(), "brain/share/abc")

	s, cmd := s.Update(key("c"))
	for _, msg := range collect(cmd) {
		s, _ = s.Update(msg)
	}
	assert.Equal(t, "http://localhost:5173/brain/share/abc", copied)
	assert.Contains(t, s.View(), "Link copied to clipboard!")

	s, _ = s.Update(key("esc"))
	assert.False(t, s.Open())
	assert.Empty(t, s.View())
}

func TestShareDialog_CopyFailure(t *testing.T) {
	orig := clipboardWriteAll
	clipboardWriteAll = func(string) error { return errors.New("no clipboard") }
	defer func() { clipboardWriteAll = orig }()

	var s ShareDialog
	s.Show("u")
	s, cmd := s.Update(key("c"))
	s, _ = s.Update(collect(cmd)[0])
	assert.Contains(t, s.View(), "Could not copy: no clipboard")
	assert.True(t, s.Open())
}
