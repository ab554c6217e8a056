package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	site := Default()

	if len(site.Nav) != 5 {
		t.Fatalf("nav has %d links", len(site.Nav))
	}
	seen := map[string]bool{}
	for _, l := range site.Nav {
		if seen[l.Path] {
			t.Errorf("duplicate nav path %s", l.Path)
		}
		seen[l.Path] = true
	}
	if len(site.Services) != 4 || len(site.Capabilities) != 4 {
		t.Errorf("services = %d, capabilities = %d", len(site.Services), len(site.Capabilities))
	}
	if len(site.Features) != 3 {
		t.Errorf("features = %d", len(site.Features))
	}
	for i, f := range site.Features {
		if f.ID != i+1 {
			t.Errorf("feature %d has id %d", i, f.ID)
		}
	}
	if _, ok := site.Link("/products"); !ok {
		t.Error("products link missing")
	}
	if _, ok := site.Link("/blog"); ok {
		t.Error("unexpected link")
	}
}

func TestWhatsAppURL(t *testing.T) {
	c := Company{WhatsApp: "+91 98765 43210"}
	if got := c.WhatsAppURL(); got != "https://wa.me/919876543210" {
		t.Errorf("WhatsAppURL = %q", got)
	}
}

func TestLoad_BuiltIn(t *testing.T) {
	site, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	story := site.About.Story
	if !strings.Contains(story, "<h2") || !strings.Contains(story, "<em>supply chains fail.</em>") {
		t.Errorf("story not rendered:\n%s", story)
	}
	if !strings.Contains(story, "Founded in 2024, Korden Technologies") {
		t.Errorf("placeholders not expanded:\n%s", story)
	}
}

func TestLoad_Override(t *testing.T) {
	dir := t.TempDir()
	src := "# Hello {{city}}\n\n<script>alert(1)</script>\n"
	if err := os.WriteFile(filepath.Join(dir, AboutFile), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	site, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(site.About.Story, "Hello Mumbai, IN") {
		t.Errorf("override not used:\n%s", site.About.Story)
	}
	if strings.Contains(site.About.Story, "<script>") {
		t.Error("raw html passed through")
	}
}

func TestLoad_MissingOverrideFallsBack(t *testing.T) {
	site, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(site.About.Story, "supply chains fail") {
		t.Error("built-in story not used")
	}
}
