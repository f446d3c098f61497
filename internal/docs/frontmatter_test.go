package docs

import "testing"

func TestParseFrontMatterYAML(t *testing.T) {
	raw := "---\ntitle: Guide\ndescription: How to use the thing\n---\n# Heading\nbody\n"

	fm, body := parseFrontMatter(raw)
	if fm.Title != "Guide" {
		t.Errorf("Title = %q, want Guide", fm.Title)
	}
	if fm.Description != "How to use the thing" {
		t.Errorf("Description = %q", fm.Description)
	}
	if body != "# Heading\nbody\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParseFrontMatterTOML(t *testing.T) {
	raw := "+++\ntitle = \"Guide\"\ndescription = \"Short one\"\n+++\nbody\n"

	fm, body := parseFrontMatter(raw)
	if fm.Title != "Guide" || fm.Description != "Short one" {
		t.Errorf("fm = %+v", fm)
	}
	if body != "body\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParseFrontMatterAbsent(t *testing.T) {
	raw := "# Just a document\n\nNo front matter here.\n"
	fm, body := parseFrontMatter(raw)
	if fm.Title != "" || fm.Description != "" {
		t.Errorf("expected empty front matter, got %+v", fm)
	}
	if body != raw {
		t.Errorf("body must be unchanged, got %q", body)
	}
}

func TestParseFrontMatterMalformed(t *testing.T) {
	// Unclosed YAML block: the text stays part of the content.
	raw := "---\ntitle: Guide\n\n# Heading\n"
	fm, body := parseFrontMatter(raw)
	if fm.Title != "" {
		t.Errorf("malformed front matter must be ignored, got %+v", fm)
	}
	if body != raw {
		t.Errorf("body must be unchanged, got %q", body)
	}
}

func TestParseFrontMatterInvalidSyntax(t *testing.T) {
	raw := "---\n: : not yaml : :\n---\nbody\n"
	fm, body := parseFrontMatter(raw)
	if fm.Title != "" || fm.Description != "" {
		t.Errorf("invalid yaml must yield no overrides, got %+v", fm)
	}
	if body != raw {
		t.Errorf("invalid front matter keeps raw content, got %q", body)
	}
}
