package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		code sdl.Scancode
		want Key
	}{
		{sdl.SCANCODE_TAB, KeyTab},
		{sdl.SCANCODE_R, KeyR},
		{sdl.SCANCODE_F12, KeyF12},
		{sdl.SCANCODE_ESCAPE, KeyEscape},
		{sdl.SCANCODE_SPACE, KeyNone},
		{sdl.SCANCODE_A, KeyNone},
	}
	for _, tt := range tests {
		if got := mapKey(tt.code); got != tt.want {
			t.Errorf("mapKey(%d) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestMapButton(t *testing.T) {
	tests := []struct {
		button uint8
		want   Button
	}{
		{sdl.BUTTON_LEFT, ButtonPrimary},
		{sdl.BUTTON_RIGHT, ButtonSecondary},
		{sdl.BUTTON_MIDDLE, ButtonMiddle},
		{sdl.BUTTON_X1, ButtonNone},
	}
	for _, tt := range tests {
		if got := mapButton(tt.button); got != tt.want {
			t.Errorf("mapButton(%d) = %d, want %d", tt.button, got, tt.want)
		}
	}
}
