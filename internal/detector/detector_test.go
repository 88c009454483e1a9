package detector

import (
	"testing"

	lingua "github.com/pemistahl/lingua-go"
)

// Shared across tests; building the preloaded models is slow.
var det = New()

func TestDetectISO(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"empty", "", "", false},
		{"unpunctuated english", "hello world this is great and i like it a lot", "EN", true},
		{"german", "Ich weiß nicht, aber es ist schon in Ordnung so.", "DE", true},
		{"spanish", "No sé qué quieres decir, pero creo que está bien.", "ES", true},
		{"ukrainian", "Я не знаю, що ти маєш на увазі, але все гаразд.", "UK", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := det.DetectISO(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("DetectISO(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if code != tt.want {
				t.Errorf("DetectISO(%q) = %q, want %q", tt.text, code, tt.want)
			}
		})
	}
}

func TestDetect_EmptyIsUnknown(t *testing.T) {
	lang, ok := det.Detect("")
	if ok || lang != lingua.Unknown {
		t.Errorf("Detect(\"\") = %v, %v; want Unknown, false", lang, ok)
	}
}

func TestIsEnglish(t *testing.T) {
	tests := []struct {
		text        string
		wantEnglish bool
		wantOK      bool
	}{
		{"i dont know what you mean but i think its fine", true, true},
		{"my name is john and i am from the city so we went home", true, true},
		{"Das ist ein ganz normaler deutscher Satz.", false, true},
		{"", false, false},
	}

	for _, tt := range tests {
		english, ok := det.IsEnglish(tt.text)
		if english != tt.wantEnglish || ok != tt.wantOK {
			t.Errorf("IsEnglish(%q) = %v, %v; want %v, %v", tt.text, english, ok, tt.wantEnglish, tt.wantOK)
		}
	}
}
