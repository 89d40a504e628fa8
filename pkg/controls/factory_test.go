package controls

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldcontrols/pkg/convert"
	"github.com/goliatone/go-fieldcontrols/pkg/schema"
)

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 123456789, time.UTC)

func newTestFactory() *Factory {
	return NewFactory(WithClock(func() time.Time { return fixedNow }))
}

func allKindsSchema() []schema.FieldDefinition {
	return []schema.FieldDefinition{
		{Key: "File", Kind: schema.KindFile, Visible: true},
		{Key: "RelativePath", Kind: schema.KindRelativePath, Visible: true},
		{Key: "Folder", Kind: schema.KindFolder, Visible: true},
		{Key: "Date", Kind: schema.KindDate, Visible: true},
		{Key: "Time", Kind: schema.KindTime, Visible: true},
		{Key: "DateTime", Kind: schema.KindDateTime, Visible: true},
		{Key: "UtcOffset", Kind: schema.KindUtcOffset, Visible: true},
		{Key: "ImageQuality", Kind: schema.KindImageQuality, Visible: true, Choices: []string{"Ok", "Dark", "Corrupted"}},
		{Key: "DeleteFlag", Kind: schema.KindDeleteFlag, Visible: true, DefaultValue: "false"},
		{Key: "Comment", Kind: schema.KindNote, Visible: true},
		{Key: "Deer", Kind: schema.KindCounter, Visible: true, DefaultValue: "0"},
		{Key: "Animal", Kind: schema.KindFixedChoice, Visible: true, Choices: []string{"Deer", "Fox", "Other"}},
		{Key: "Seen", Kind: schema.KindFlag, Visible: true, DefaultValue: "false"},
	}
}

func TestFactory_DispatchTable(t *testing.T) {
	widgets, err := newTestFactory().Build(allKindsSchema())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	got := make(map[string]Shape, len(widgets))
	for _, w := range widgets {
		got[w.Key()] = w.Shape()
	}
	want := map[string]Shape{
		"File":         ShapeText,
		"RelativePath": ShapeText,
		"Folder":       ShapeText,
		"Date":         ShapeText,
		"Time":         ShapeText,
		"DateTime":     ShapeDateTime,
		"UtcOffset":    ShapeUtcOffset,
		"ImageQuality": ShapeChoice,
		"DeleteFlag":   ShapeFlag,
		"Comment":      ShapeText,
		"Deer":         ShapeCounter,
		"Animal":       ShapeChoice,
		"Seen":         ShapeFlag,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("shape mismatch (-want +got):\n%s", diff)
	}

	for _, w := range widgets {
		var ok bool
		switch w.Shape() {
		case ShapeText:
			_, ok = w.(*TextWidget)
		case ShapeCounter:
			_, ok = w.(*CounterWidget)
		case ShapeFlag:
			_, ok = w.(*FlagWidget)
		case ShapeChoice:
			_, ok = w.(*ChoiceWidget)
		case ShapeDateTime:
			_, ok = w.(*DateTimeWidget)
		case ShapeUtcOffset:
			_, ok = w.(*UtcOffsetWidget)
		}
		if !ok {
			t.Fatalf("widget %q has shape %s but type %T", w.Key(), w.Shape(), w)
		}
	}
}

func TestFactory_PreservesOrder(t *testing.T) {
	defs := allKindsSchema()
	widgets, err := newTestFactory().Build(defs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for idx, w := range widgets {
		if w.Key() != defs[idx].Key {
			t.Fatalf("position %d: want %q, got %q", idx, defs[idx].Key, w.Key())
		}
	}
}

func TestFactory_IdentityFieldsAreReadOnly(t *testing.T) {
	widgets, err := newTestFactory().Build(allKindsSchema())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, w := range widgets {
		identity := w.Kind().IsIdentity()
		if w.ReadOnly() != identity {
			t.Fatalf("widget %q: read-only=%v, identity=%v", w.Key(), w.ReadOnly(), identity)
		}
		if identity {
			w.SetReadOnly(false)
			if !w.ReadOnly() {
				t.Fatalf("identity widget %q became editable", w.Key())
			}
		}
	}
}

func TestFactory_SkipsInvisible(t *testing.T) {
	defs := []schema.FieldDefinition{
		{Key: "Shown", Kind: schema.KindNote, Visible: true},
		{Key: "Hidden", Kind: schema.KindFlag, Visible: false},
	}
	widgets, err := newTestFactory().Build(defs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(widgets) != 1 || widgets[0].Key() != "Shown" {
		t.Fatalf("expected only the visible widget, got %d", len(widgets))
	}
}

func TestFactory_InvisibleCorruptRowsAbortBuild(t *testing.T) {
	cases := []struct {
		name string
		bad  schema.FieldDefinition
		want error
	}{
		{
			name: "unknown kind",
			bad:  schema.FieldDefinition{Key: "Broken", Kind: "Hologram", Visible: false},
			want: schema.ErrUnsupportedControlType,
		},
		{
			name: "choice without choices",
			bad:  schema.FieldDefinition{Key: "Animal", Kind: schema.KindFixedChoice, Visible: false},
			want: schema.ErrInvalidChoices,
		},
		{
			name: "choice default outside choices",
			bad:  schema.FieldDefinition{Key: "Animal", Kind: schema.KindFixedChoice, Visible: false, Choices: []string{"Deer"}, DefaultValue: "Bear"},
			want: ErrChoiceNotFound,
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			defs := []schema.FieldDefinition{
				{Key: "Comment", Kind: schema.KindNote, Visible: true},
				tc.bad,
			}
			widgets, err := newTestFactory().Build(defs)
			if !errors.Is(err, tc.want) {
				t.Fatalf("factory: expected %v, got %v", tc.want, err)
			}
			if widgets != nil {
				t.Fatalf("factory: expected no widgets, got %d", len(widgets))
			}
			if _, err := NewPreviewBuilder().Build(defs); !errors.Is(err, tc.want) {
				t.Fatalf("preview: expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestFactory_UnsupportedKindAbortsBuild(t *testing.T) {
	defs := []schema.FieldDefinition{
		{Key: "Comment", Kind: schema.KindNote, Visible: true},
		{Key: "Broken", Kind: "Slider", Visible: true},
		{Key: "Seen", Kind: schema.KindFlag, Visible: true},
	}
	widgets, err := newTestFactory().Build(defs)
	if !errors.Is(err, schema.ErrUnsupportedControlType) {
		t.Fatalf("expected ErrUnsupportedControlType, got %v", err)
	}
	if widgets != nil {
		t.Fatalf("expected no widgets, got %d", len(widgets))
	}
}

func TestFactory_InvalidDefinitions(t *testing.T) {
	cases := []struct {
		name string
		def  schema.FieldDefinition
		want error
	}{
		{
			name: "choice without choices",
			def:  schema.FieldDefinition{Key: "Animal", Kind: schema.KindFixedChoice, Visible: true},
			want: schema.ErrInvalidChoices,
		},
		{
			name: "choice default not a choice",
			def:  schema.FieldDefinition{Key: "Animal", Kind: schema.KindFixedChoice, Visible: true, Choices: []string{"Deer"}, DefaultValue: "Bear"},
			want: ErrChoiceNotFound,
		},
		{
			name: "flag default not a flag",
			def:  schema.FieldDefinition{Key: "Seen", Kind: schema.KindFlag, Visible: true, DefaultValue: "yes"},
			want: convert.ErrInvalidEncoding,
		},
		{
			name: "datetime default malformed",
			def:  schema.FieldDefinition{Key: "DateTime", Kind: schema.KindDateTime, Visible: true, DefaultValue: "yesterday"},
			want: convert.ErrInvalidEncoding,
		},
		{
			name: "utc offset default malformed",
			def:  schema.FieldDefinition{Key: "UtcOffset", Kind: schema.KindUtcOffset, Visible: true, DefaultValue: "5"},
			want: convert.ErrInvalidEncoding,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := newTestFactory().Build([]schema.FieldDefinition{tc.def})
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestFactory_Defaults(t *testing.T) {
	widgets, err := newTestFactory().Build(allKindsSchema())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	got := make(map[string]string, len(widgets))
	for _, w := range widgets {
		got[w.Key()] = w.Content()
	}
	want := map[string]string{
		"File":         "",
		"RelativePath": "",
		"Folder":       "",
		"Date":         "",
		"Time":         "",
		"DateTime":     "2024-05-06T07:08:09.123Z",
		"UtcOffset":    "+00:00",
		"ImageQuality": "Ok",
		"DeleteFlag":   "false",
		"Comment":      "",
		"Deer":         "0",
		"Animal":       "Deer",
		"Seen":         "false",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestFactory_SharedFocusAndCounterGroup(t *testing.T) {
	defs := []schema.FieldDefinition{
		{Key: "Deer", Kind: schema.KindCounter, Visible: true},
		{Key: "Fox", Kind: schema.KindCounter, Visible: true},
		{Key: "Comment", Kind: schema.KindNote, Visible: true},
	}
	widgets, err := newTestFactory().Build(defs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	deer := widgets[0].(*CounterWidget)
	fox := widgets[1].(*CounterWidget)

	deer.Select()
	if !deer.Selected() || fox.Selected() {
		t.Fatalf("deer should be the only selected counter")
	}
	fox.Select()
	if deer.Selected() || !fox.Selected() {
		t.Fatalf("selecting fox should clear deer")
	}

	widgets[2].Focus()
	if !widgets[2].Focused() || widgets[0].Focused() {
		t.Fatalf("focus should move to comment")
	}
	widgets[0].Focus()
	if widgets[2].Focused() || !widgets[0].Focused() {
		t.Fatalf("focus should move to deer")
	}
}

func TestFactory_SeparateBuildsDoNotShareState(t *testing.T) {
	defs := []schema.FieldDefinition{{Key: "Deer", Kind: schema.KindCounter, Visible: true}}
	f := newTestFactory()
	first, err := f.Build(defs)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := f.Build(defs)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	first[0].(*CounterWidget).Select()
	first[0].Focus()
	if second[0].(*CounterWidget).Selected() || second[0].Focused() {
		t.Fatalf("selection and focus leaked across builds")
	}
}

func TestFactory_UsesStyleWidths(t *testing.T) {
	style := DefaultStyle()
	style.Tokens["controls.width.flag"] = "33"
	defs := []schema.FieldDefinition{
		{Key: "Seen", Kind: schema.KindFlag, Visible: true},
		{Key: "Comment", Kind: schema.KindNote, Visible: true, Width: 250},
	}
	widgets, err := NewFactory(WithStyle(style)).Build(defs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if widgets[0].Width() != 33 {
		t.Fatalf("flag width: want 33, got %d", widgets[0].Width())
	}
	if widgets[1].Width() != 250 {
		t.Fatalf("definition width should win, got %d", widgets[1].Width())
	}
}
