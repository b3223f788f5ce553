package inspect

import (
	"testing"

	"seehuhn.de/go/postscript/afm"
)

func TestAFMFaceInfo(t *testing.T) {
	info := afmFaceInfo(&afm.Metrics{
		FontName:     "Courier-BoldOblique",
		IsFixedPitch: true,
	})
	if info.Family != "Courier" {
		t.Errorf("expected family Courier, got %q", info.Family)
	}
	if info.Style != "oblique" {
		t.Errorf("expected oblique style, got %q", info.Style)
	}
	if info.Weight != "bold" {
		t.Errorf("expected bold weight, got %q", info.Weight)
	}
	if !info.Scalable {
		t.Error("expected AFM-described fonts to count as scalable")
	}
	if !info.FixedPitch {
		t.Error("expected fixed pitch to carry over")
	}
}

func TestAFMItalicAngleImpliesItalic(t *testing.T) {
	info := afmFaceInfo(&afm.Metrics{
		FontName:    "Slanty",
		ItalicAngle: -12,
	})
	if info.Style != "italic" {
		t.Errorf("expected a nonzero italic angle to mean italic, got %q", info.Style)
	}
}

func TestAFMSmallCapsVariant(t *testing.T) {
	info := afmFaceInfo(&afm.Metrics{FontName: "Fancy-Capitals"})
	if info.Variant != "small-caps" {
		t.Errorf("expected small-caps variant, got %q", info.Variant)
	}
	if info.Family != "Fancy" {
		t.Errorf("expected family Fancy, got %q", info.Family)
	}
}
