package huhforms

import (
	"image/color"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/ocluk/caolan/internal/config/colors"
)

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestDetailFormThemeModeColor(t *testing.T) {
	scheme := *colors.Default()

	tests := []struct {
		name    string
		editing bool
		want    string
	}{
		{"new detail", false, scheme.Create},
		{"edit detail", true, scheme.Edit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			styles := DetailFormTheme(scheme, tt.editing).Theme(true)
			want := lipgloss.Color(tt.want)

			if got := styles.Focused.Base.GetBorderTopForeground(); !sameColor(got, want) {
				t.Errorf("focused border = %v, want %s", got, tt.want)
			}
			if got := styles.Focused.FocusedButton.GetBackground(); !sameColor(got, want) {
				t.Errorf("Save button background = %v, want %s", got, tt.want)
			}
			if got := styles.Focused.TextInput.Prompt.GetForeground(); !sameColor(got, want) {
				t.Errorf("input prompt = %v, want %s", got, tt.want)
			}
		})
	}
}

func TestDetailFormThemeDimsBlurredFields(t *testing.T) {
	scheme := *colors.Default()
	styles := DetailFormTheme(scheme, false).Theme(true)
	subtle := lipgloss.Color(scheme.Subtle)

	if got := styles.Blurred.Title.GetForeground(); !sameColor(got, subtle) {
		t.Errorf("blurred title = %v, want %s", got, scheme.Subtle)
	}
	if got := styles.Blurred.TextInput.Text.GetForeground(); !sameColor(got, subtle) {
		t.Errorf("blurred input text = %v, want %s", got, scheme.Subtle)
	}
}
