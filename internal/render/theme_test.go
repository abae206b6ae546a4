package render

import "testing"

func TestXterm256ToRGBGrayscaleRamp(t *testing.T) {
	rgb := xterm256ToRGB(232)
	if rgb.R != 8 || rgb.G != 8 || rgb.B != 8 {
		t.Errorf("got %+v, want {8,8,8}", rgb)
	}
	rgb = xterm256ToRGB(255)
	if rgb.R != 238 || rgb.G != 238 || rgb.B != 238 {
		t.Errorf("got %+v, want {238,238,238}", rgb)
	}
}

func TestXterm256ToRGBColorCubeCorners(t *testing.T) {
	black := xterm256ToRGB(16)
	if black != (RGB{0, 0, 0}) {
		t.Errorf("idx 16 = %+v, want black", black)
	}
	white := xterm256ToRGB(231)
	if white != (RGB{255, 255, 255}) {
		t.Errorf("idx 231 = %+v, want white", white)
	}
}

func TestByNameFallsBackToDark(t *testing.T) {
	if ByName("light").Name != "light" {
		t.Errorf("expected light theme")
	}
	if ByName("nonsense").Name != "dark" {
		t.Errorf("expected dark fallback")
	}
	if ByName("").Name != "dark" {
		t.Errorf("expected dark default")
	}
}
