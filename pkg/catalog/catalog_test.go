package catalog

import "testing"

func TestGenerate(t *testing.T) {
	products := Generate(DefaultSize)
	if len(products) != 30 {
		t.Fatalf("len = %d, want 30", len(products))
	}

	tests := []struct {
		idx      int
		id       string
		name     string
		category Category
	}{
		{0, "prod-1", "K-Tech Passive Series 101", Passive},
		{1, "prod-2", "K-Tech Sensors Series 102", Sensors},
		{4, "prod-5", "K-Tech Power Series 105", PowerManagement},
		{5, "prod-6", "K-Tech Semiconductors Series 106", Semiconductors},
		{29, "prod-30", "K-Tech Semiconductors Series 130", Semiconductors},
	}
	for _, tt := range tests {
		p := products[tt.idx]
		if p.ID != tt.id || p.Name != tt.name || p.Category != tt.category {
			t.Errorf("products[%d] = %s %q %s, want %s %q %s", tt.idx, p.ID, p.Name, p.Category, tt.id, tt.name, tt.category)
		}
	}

	p := products[3]
	if want := "High-performance iot modules solution for industrial and consumer electronics. Designed for durability and efficiency."; p.Description != want {
		t.Errorf("Description = %q", p.Description)
	}
	if want := "https://picsum.photos/400/300?random=4"; p.Image != want {
		t.Errorf("Image = %q", p.Image)
	}
	if len(p.Specs) != 3 || p.Specs[1] != "RoHS Compliant" {
		t.Errorf("Specs = %v", p.Specs)
	}

	perCategory := map[Category]int{}
	for _, p := range products {
		perCategory[p.Category]++
	}
	for _, c := range Categories {
		if perCategory[c] != 5 {
			t.Errorf("%s has %d products, want 5", c, perCategory[c])
		}
	}
}

func TestDefaultIsACopy(t *testing.T) {
	a := Default()
	a[0].Name = "changed"
	a[0].Specs[0] = "changed"
	if b := Default(); b[0].Name == "changed" || b[0].Specs[0] == "changed" {
		t.Error("Default() exposes the shared catalog")
	}
	if p, ok := ByID("prod-1"); !ok || p.Name != "K-Tech Passive Series 101" {
		t.Errorf("ByID(prod-1) = %+v, %v", p, ok)
	}
	if _, ok := ByID("prod-99"); ok {
		t.Error("ByID found a missing product")
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range append([]Category{All}, Categories...) {
		if !c.Valid() {
			t.Errorf("%q not valid", c)
		}
	}
	if Category("Vacuum Tubes").Valid() {
		t.Error("unknown category valid")
	}
}
