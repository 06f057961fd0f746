package language

import (
	"slices"
	"testing"
)

func TestPairsOnlyReferenceCatalogCodes(t *testing.T) {
	for source, targets := range pairs {
		if !Known(source) {
			t.Errorf("source %q missing from catalog", source)
		}
		for _, target := range targets {
			if !Known(target) {
				t.Errorf("target %q of %q missing from catalog", target, source)
			}
		}
	}
}

func TestPermittedTargets(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{name: "english keeps registry order", source: "en", want: []string{"es", "ru", "zh", "hi", "ar", "fr"}},
		{name: "spanish has one target", source: "es", want: []string{"en"}},
		{name: "japanese", source: "ja", want: []string{"en", "es", "hi"}},
		{name: "catalog code without pairs", source: "ko", want: []string{}},
		{name: "unknown code", source: "xx", want: []string{}},
		{name: "empty code", source: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PermittedTargets(tt.source)
			if got == nil {
				t.Fatal("PermittedTargets returned nil, want empty slice")
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("PermittedTargets(%q) = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

func TestPermittedTargetsReturnsCopy(t *testing.T) {
	got := PermittedTargets("en")
	got[0] = "xx"

	if again := PermittedTargets("en"); again[0] != "es" {
		t.Errorf("registry mutated through returned slice: first = %q", again[0])
	}
}

func TestIsPermittedIsDirectional(t *testing.T) {
	if !IsPermitted("zh", "ja") {
		t.Error("zh→ja should be permitted")
	}
	if IsPermitted("ja", "zh") {
		t.Error("ja→zh should not be permitted")
	}
	if IsPermitted("es", "ru") {
		t.Error("es→ru should not be permitted")
	}
	if IsPermitted("en", "de") {
		t.Error("en→de should not be permitted")
	}
}

func TestDefaultTarget(t *testing.T) {
	if got := DefaultTarget("es"); got != "en" {
		t.Errorf("DefaultTarget(es) = %q, want en", got)
	}
	if got := DefaultTarget("ur"); got != "" {
		t.Errorf("DefaultTarget(ur) = %q, want empty", got)
	}
}

func TestTargetOptions(t *testing.T) {
	opts := TargetOptions("fr")
	codes := make([]string, len(opts))
	for i, o := range opts {
		codes[i] = o.Code
		if o.Label == "" || o.Flag == "" {
			t.Errorf("option %q missing label or flag", o.Code)
		}
	}
	if want := []string{"en", "zh", "hi"}; !slices.Equal(codes, want) {
		t.Errorf("TargetOptions(fr) codes = %v, want %v", codes, want)
	}
}

func TestDescribe(t *testing.T) {
	en := Describe("en")
	if en.Label != "English" || en.Native == "" {
		t.Errorf("Describe(en) = %+v", en)
	}

	unknown := Describe("tlh")
	if unknown.Label != "tlh" || unknown.Flag != fallbackFlag {
		t.Errorf("Describe(tlh) = %+v, want code label with globe flag", unknown)
	}
}

func TestCatalogOrder(t *testing.T) {
	cat := Catalog()
	if len(cat) != 12 {
		t.Fatalf("catalog size = %d, want 12", len(cat))
	}
	if cat[0].Code != "en" || cat[len(cat)-1].Code != "ur" {
		t.Errorf("catalog order changed: first %q last %q", cat[0].Code, cat[len(cat)-1].Code)
	}
}

func TestLocale(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "en-US"},
		{"es", "es-ES"},
		{"zh", "zh-CN"},
		{"hi", "hi-IN"},
		{"ur", "ur-PK"},
		{"ko", "ko-KR"},
		{"it", "it-IT"},
		{"xx", "en-US"},
		{"", "en-US"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := Locale(tt.code); got != tt.want {
				t.Errorf("Locale(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestDetector(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "english", text: "The patient reports a high fever and a persistent dry cough.", want: "en", wantOK: true},
		{name: "spanish", text: "El paciente tiene fiebre alta y tos seca persistente desde ayer.", want: "es", wantOK: true},
		{name: "too short", text: "ok", wantOK: false},
		{name: "blank", text: "   ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.Detect(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("Detect ok = %v, want %v (code %q)", ok, tt.wantOK, got)
			}
			if got != tt.want {
				t.Errorf("Detect = %q, want %q", got, tt.want)
			}
		})
	}
}
