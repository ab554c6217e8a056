package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

//go:embed about.md
var aboutSource []byte

// AboutFile is the name of the override looked up in the content directory
const AboutFile = "about.md"

var md = goldmark.New(
	goldmark.WithExtensions(extension.Typographer),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Markdown renders src to HTML. Raw HTML in the source is dropped.
func Markdown(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// Load returns the site with the about story rendered. When dir holds an
// about.md it replaces the built-in story.
func Load(dir string) (*Site, error) {
	site := Default()

	src := aboutSource
	if dir != "" {
		override, err := os.ReadFile(filepath.Join(dir, AboutFile))
		switch {
		case err == nil:
			src = override
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("read %s: %w", AboutFile, err)
		}
	}

	story, err := Markdown(expand(src, site.Company))
	if err != nil {
		return nil, err
	}
	site.About.Story = story
	return site, nil
}

// MustLoad is Load for the built-in copy, which cannot fail
func MustLoad() *Site {
	site, err := Load("")
	if err != nil {
		panic(err)
	}
	return site
}

func expand(src []byte, c Company) []byte {
	r := strings.NewReplacer(
		"{{company}}", c.Name,
		"{{founded}}", strconv.Itoa(c.Founded),
		"{{city}}", c.City,
		"{{email}}", c.Email,
	)
	return []byte(r.Replace(string(src)))
}
