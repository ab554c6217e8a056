package styling

import (
	"strings"
	"testing"
)

func TestStyle(t *testing.T) {
	css := `
		.card {
			background: white;
			padding: 1rem;
		}
		.card.active {
			background: blue;
		}
	`

	style := Style(css)

	if !strings.HasPrefix(style.Hash, "_") || len(style.Hash) != 7 {
		t.Errorf("Hash = %q", style.Hash)
	}
	if style.Source != css {
		t.Error("source not kept")
	}
	if len(style.names) != 2 {
		t.Errorf("Expected 2 class names, got %d: %v", len(style.names), style.names)
	}

	card := style.Class("card")
	if card != style.Hash+"_card" {
		t.Errorf("Class(card) = %q", card)
	}
	if !strings.Contains(style.CSS, "."+card+"."+style.Class("active")+" {") {
		t.Errorf("compound selector not rewritten:\n%s", style.CSS)
	}
	if strings.Contains(style.CSS, " .card ") {
		t.Errorf("original selector left in output:\n%s", style.CSS)
	}
}

func TestStyle_Rewrite(t *testing.T) {
	tests := []struct {
		name    string
		css     string
		classes []string
		keep    []string
	}{
		{
			name:    "declarations untouched",
			css:     `.fade { transition: opacity 0.5s ease; opacity: .8; }`,
			classes: []string{"fade"},
			keep:    []string{"opacity 0.5s ease", "opacity: .8"},
		},
		{
			name:    "pseudo classes and combinators",
			css:     `.nav > .link:hover, .nav .link[data-active="true"] { color: #F59E0B; }`,
			classes: []string{"nav", "link"},
			keep:    []string{":hover", `[data-active="true"]`},
		},
		{
			name:    "media queries nest rules",
			css:     `@media (min-width: 768px) { .grid { display: grid; } }`,
			classes: []string{"grid"},
			keep:    []string{"@media (min-width: 768px)"},
		},
		{
			name:    "keyframes are not selectors",
			css:     `@keyframes pulse { 12.5% { opacity: 0; } to { opacity: 1; } } .dot { animation: pulse 2s; }`,
			classes: []string{"dot"},
			keep:    []string{"12.5% {", "animation: pulse 2s"},
		},
		{
			name:    "comments dropped",
			css:     `/* .ghost */ .real { color: red; }`,
			classes: []string{"real"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := Style(tt.css)
			if len(style.names) != len(tt.classes) {
				t.Errorf("names = %v, want %v", style.names, tt.classes)
			}
			for _, c := range tt.classes {
				if !style.Has(c) {
					t.Errorf("class %q not scoped", c)
				}
				if !strings.Contains(style.CSS, "."+style.Class(c)) {
					t.Errorf("%q missing from output:\n%s", style.Class(c), style.CSS)
				}
			}
			for _, k := range tt.keep {
				if !strings.Contains(style.CSS, k) {
					t.Errorf("output lost %q:\n%s", k, style.CSS)
				}
			}
		})
	}
}

func TestComponentStyle_Classes(t *testing.T) {
	style := Style(`
		.btn { padding: 1rem; }
		.primary { background: blue; }
	`)

	combined := style.Classes("btn", "", "primary", "container")
	parts := strings.Fields(combined)
	if len(parts) != 3 {
		t.Fatalf("Classes = %q", combined)
	}
	if parts[0] != style.Class("btn") || parts[1] != style.Class("primary") {
		t.Errorf("Classes = %q", combined)
	}
	if parts[2] != "container" {
		t.Errorf("undeclared class should pass through, got %q", parts[2])
	}

	var nilStyle *ComponentStyle
	if nilStyle.Class("x") != "x" || nilStyle.Has("x") || nilStyle.GetHash() != "" {
		t.Error("nil style should be inert")
	}
}

func TestStyleRegistry(t *testing.T) {
	Reset()
	defer Reset()

	style1 := Define(`.test1 { color: red; }`)
	_ = Define(`.test2 { color: blue; }`)

	allCSS := GetAllCSS()
	if !strings.Contains(allCSS, "color: red") || !strings.Contains(allCSS, "color: blue") {
		t.Errorf("registry missing sheets:\n%s", allCSS)
	}
	if !strings.Contains(allCSS, "."+style1.Class("test1")) {
		t.Error("registry should hold rewritten CSS")
	}

	if again := Define(`.test1 { color: red; }`); again.Hash != style1.Hash {
		t.Error("Expected same hash for identical CSS")
	}
	if GetAllCSS() != allCSS {
		t.Error("duplicate sheet changed the output")
	}
}

func TestStyleRegistry_Deterministic(t *testing.T) {
	sheets := []string{`.a { color: red; }`, `.b { color: green; }`, `.c { color: blue; }`}

	first := NewRegistry()
	for _, s := range sheets {
		first.Add(Style(s))
	}
	second := NewRegistry()
	for i := len(sheets) - 1; i >= 0; i-- {
		second.Add(Style(sheets[i]))
	}

	if first.CSS() != second.CSS() {
		t.Error("registration order changed output")
	}
	if first.Len() != 3 {
		t.Errorf("Len = %d", first.Len())
	}
	first.Add(nil)
	if first.Len() != 3 {
		t.Error("nil style registered")
	}
}
