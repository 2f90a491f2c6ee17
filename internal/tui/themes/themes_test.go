package themes

import (
	"testing"
)

func TestDark(t *testing.T) {
	theme := Dark()
	if theme == nil {
		t.Fatal("expected non-nil theme")
	}
	if theme.Name != "dark" {
		t.Errorf("expected name 'dark', got %q", theme.Name)
	}
}

func TestLight(t *testing.T) {
	theme := Light()
	if theme == nil {
		t.Fatal("expected non-nil theme")
	}
	if theme.Name != "light" {
		t.Errorf("expected name 'light', got %q", theme.Name)
	}
}

func TestDetect(t *testing.T) {
	theme := Detect()
	if theme == nil {
		t.Fatal("expected non-nil theme")
	}
	if theme.Name != "dark" && theme.Name != "light" {
		t.Errorf("expected 'dark' or 'light', got %q", theme.Name)
	}
}

func TestDarkPalette(t *testing.T) {
	p := DarkPalette()

	if p.Primary.Dark == "" {
		t.Error("dark palette should set a dark primary color")
	}
	if p.Error.Dark == p.Success.Dark {
		t.Error("error and success colors should differ")
	}
}

func TestLightPalette(t *testing.T) {
	p := LightPalette()

	// Light palette pins both variants to the light-mode color.
	if p.Primary.Light != p.Primary.Dark {
		t.Errorf("light palette primary should not adapt: %q vs %q", p.Primary.Light, p.Primary.Dark)
	}
}

func TestThemesHaveStyles(t *testing.T) {
	for _, theme := range []*Theme{Dark(), Light()} {
		t.Run(theme.Name, func(t *testing.T) {
			if theme.Name == "" {
				t.Error("theme should have a name")
			}
			if theme.Title.GetBold() != true {
				t.Error("title style should be bold")
			}
			if theme.Pane.GetBorderStyle() != theme.PaneFocus.GetBorderStyle() {
				t.Error("pane and focused pane should share a border shape")
			}
		})
	}
}

func TestHuhTheme(t *testing.T) {
	ht := Dark().HuhTheme()
	if ht == nil {
		t.Fatal("expected non-nil huh theme")
	}
}
