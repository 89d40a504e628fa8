package convert

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseBool_CaseInsensitive(t *testing.T) {
	for _, in := range []string{"true", "TRUE", "True", "tRuE"} {
		got, err := CanonicalBool(in)
		if err != nil || got != True {
			t.Fatalf("canonical %q: got %q (%v)", in, got, err)
		}
	}
	for _, in := range []string{"", "yes", "1", " true"} {
		if _, err := ParseBool(in); !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("parse %q: expected ErrInvalidEncoding, got %v", in, err)
		}
	}
}

func TestBooleanConverter_RoundTrip(t *testing.T) {
	custom, err := NewBooleanConverter("Oui", "Non")
	if err != nil {
		t.Fatalf("new converter: %v", err)
	}
	converters := []BooleanConverter{{}, custom}
	for _, c := range converters {
		for _, canonical := range []string{True, False} {
			display, err := c.Convert(canonical)
			if err != nil {
				t.Fatalf("convert %q: %v", canonical, err)
			}
			back, err := c.ConvertBack(display)
			if err != nil {
				t.Fatalf("convert back %q: %v", display, err)
			}
			if back != canonical {
				t.Fatalf("round trip %q: got %q", canonical, back)
			}
		}
	}
}

func TestNewBooleanConverter_RejectsIdenticalDisplays(t *testing.T) {
	cases := []struct {
		name         string
		trueDisplay  string
		falseDisplay string
	}{
		{name: "same custom tokens", trueDisplay: "Yes", falseDisplay: "Yes"},
		{name: "custom false equals default true", trueDisplay: "", falseDisplay: DefaultTrueDisplay},
		{name: "custom true equals default false", trueDisplay: DefaultFalseDisplay, falseDisplay: ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewBooleanConverter(tc.trueDisplay, tc.falseDisplay); !errors.Is(err, ErrAmbiguousDisplay) {
				t.Fatalf("expected ErrAmbiguousDisplay, got %v", err)
			}
		})
	}

	literal := BooleanConverter{TrueDisplay: "Yes", FalseDisplay: "Yes"}
	if _, err := literal.ConvertBack("Yes"); !errors.Is(err, ErrAmbiguousDisplay) {
		t.Fatalf("convert back with identical displays: expected ErrAmbiguousDisplay, got %v", err)
	}
}

func TestBooleanConverter_Defaults(t *testing.T) {
	var c BooleanConverter
	got, err := c.Convert("FALSE")
	if err != nil || got != DefaultFalseDisplay {
		t.Fatalf("convert FALSE: got %q (%v)", got, err)
	}
	if _, err := c.ConvertBack("maybe"); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
}

func TestFlagConverter_Scalar(t *testing.T) {
	c := FlagConverter{}
	got, err := c.Convert("false")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	display, ok := got.(string)
	if !ok || display != DefaultFalseDisplay {
		t.Fatalf("want scalar %q, got %#v", DefaultFalseDisplay, got)
	}
	back, err := c.ConvertBack(display)
	if err != nil || back != "false" {
		t.Fatalf("convert back: got %q (%v)", back, err)
	}
}

func TestFlagConverter_WellKnownValues(t *testing.T) {
	c := FlagConverter{}
	canonical := c.List.ConvertBack([]string{"true", "false", "true"})

	got, err := c.Convert(canonical)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	want := []string{"True", "False", "True"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("display mismatch (-want +got):\n%s", diff)
	}

	back, err := c.ConvertBack(got)
	if err != nil {
		t.Fatalf("convert back: %v", err)
	}
	if back != canonical {
		t.Fatalf("round trip: want %q, got %q", canonical, back)
	}
}

func TestFlagConverter_InvalidTokens(t *testing.T) {
	c := FlagConverter{}
	if _, err := c.Convert("maybe"); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("scalar: expected ErrInvalidEncoding, got %v", err)
	}
	if _, err := c.Convert(c.List.ConvertBack([]string{"true", "nope"})); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("list: expected ErrInvalidEncoding, got %v", err)
	}
	if _, err := c.ConvertBack([]string{"True", "nope"}); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("list back: expected ErrInvalidEncoding, got %v", err)
	}
	if _, err := c.ConvertBack(42); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("shape: expected ErrInvalidEncoding, got %v", err)
	}
}
