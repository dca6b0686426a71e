// Package skills loads the markdown guidance documents that trigger rules
// point at. Documents live in .claude/skills/ next to the rule document and
// are matched to rules by frontmatter name, falling back to the filename.
//
// Documents are presentation-only: matching never requires them to exist,
// and an unreadable document simply has no preview.
package skills

import (
	"os"
	"path/filepath"
	"strings"
)

// Doc is one skill guidance document.
type Doc struct {
	Name        string // from frontmatter, or filename without extension
	Description string // short description from frontmatter
	Content     string // markdown body
	FilePath    string // source file, for diagnostics
}

// Library indexes the skill documents of one project.
type Library struct {
	docs map[string]Doc
}

// LoadLibrary reads all .md files from <cwd>/.claude/skills/. A missing
// directory yields an empty library, not an error.
func LoadLibrary(cwd string) *Library {
	lib := &Library{docs: make(map[string]Doc)}

	dir := filepath.Join(cwd, ".claude", "skills")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return lib
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		doc := parseDoc(string(data), path)
		if doc.Name == "" {
			doc.Name = strings.TrimSuffix(entry.Name(), ".md")
		}
		// First document wins on a name collision.
		if _, exists := lib.docs[doc.Name]; !exists {
			lib.docs[doc.Name] = doc
		}
	}
	return lib
}

// Lookup returns the document for a rule name.
func (l *Library) Lookup(name string) (Doc, bool) {
	doc, ok := l.docs[name]
	return doc, ok
}

// Len returns the number of indexed documents.
func (l *Library) Len() int { return len(l.docs) }

// parseDoc parses a markdown file with optional YAML frontmatter.
// Frontmatter is delimited by "---" lines at the top of the file.
func parseDoc(content, filePath string) Doc {
	d := Doc{FilePath: filePath}

	if !strings.HasPrefix(content, "---") {
		d.Content = strings.TrimSpace(content)
		return d
	}

	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		d.Content = strings.TrimSpace(content)
		return d
	}

	for _, line := range strings.Split(parts[1], "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "name":
			d.Name = strings.TrimSpace(value)
		case "description":
			d.Description = strings.TrimSpace(value)
		}
	}

	d.Content = strings.TrimSpace(parts[2])
	return d
}
