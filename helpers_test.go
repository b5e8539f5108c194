package resumaker

// Notes:
// - Shared fixtures and hand-written mocks for the package tests
// - Mocks record their inputs so tests can assert data flow between stages
// - sampleResumeJSON holds two variants (en, es) used by the generator scenarios

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

const sampleResumeJSON = `[
  {
    "language": {"name": "en", "keywords": ["Skills", "Experience", "Projects", "Links", "Social", "Present"]},
    "profile": {"name": "Ada", "lastName": "Lovelace", "pitch": "Builds **analytical** engines.", "email": "ada@example.com"},
    "skills": [{"name": "Go", "experience": "8 years"}, {"name": "SQL", "experience": "5 years"}],
    "jobs": [
      {"employer": "Babbage Ltd", "position": "Engineer", "description": "Wrote the first program.", "startDate": "2019-03", "endDate": null},
      {"employer": "Acme", "position": "Intern", "description": "Fixed bugs."}
    ],
    "projects": [{"name": "engine", "description": "Difference engine", "stack": "Go", "url": "https://example.com/engine"}],
    "devLinks": [{"name": "GitHub", "url": "https://github.com/ada"}],
    "favoriteColor": "blue"
  },
  {
    "language": {"name": "es", "keywords": ["Habilidades", "Experiencia"]},
    "profile": {"name": "Ada", "lastName": "Lovelace", "pitch": "Construye motores.", "email": "ada@example.com"},
    "skills": [],
    "jobs": []
  }
]`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func newTestLocator(t *testing.T, root string) *FSLocator {
	t.Helper()

	loc, err := NewFSLocator(root)
	if err != nil {
		t.Fatalf("NewFSLocator(%q) error = %v", root, err)
	}
	return loc
}

func strPtr(s string) *string {
	return &s
}

func sampleResume(lang string) Resume {
	return Resume{
		Language: Language{Name: lang, Keywords: []string{"Skills", "Experience"}},
		Profile:  Profile{Name: "Ada", LastName: "Lovelace", Pitch: "Builds *engines*.", Email: "ada@example.com"},
		Skills:   []Skill{{Name: "Go", Experience: "8 years"}},
		Jobs: []Job{
			{Employer: "Babbage Ltd", Position: "Engineer", Description: "First program.", StartDate: strPtr("2019-03")},
		},
	}
}

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

type mockResumeLocator struct {
	resumes []Resume
	err     error
	path    string
}

func (m *mockResumeLocator) GetResume(path string) ([]Resume, error) {
	m.path = path
	if m.err != nil {
		return nil, m.err
	}
	return m.resumes, nil
}

type mockRenderer struct {
	mu        sync.Mutex
	failFor   map[string]error
	templates []string
	languages []string
}

func (m *mockRenderer) Render(ctx context.Context, templateNameOrPath string, r Resume) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.templates = append(m.templates, templateNameOrPath)
	m.languages = append(m.languages, r.Language.Name)
	if err, ok := m.failFor[r.Language.Name]; ok {
		return "", err
	}
	return "<p>" + r.Language.Name + "</p>", nil
}

type mockConverter struct {
	mu       sync.Mutex
	failFor  map[string]error
	outPaths []string
	htmls    []string
	onCall   func()
}

func (m *mockConverter) Convert(ctx context.Context, htmlContent, outPath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.outPaths = append(m.outPaths, outPath)
	m.htmls = append(m.htmls, htmlContent)
	if m.onCall != nil {
		m.onCall()
	}
	for suffix, err := range m.failFor {
		if strings.HasSuffix(outPath, suffix) {
			return "", err
		}
	}
	return "/abs/" + strings.TrimPrefix(outPath, "./"), nil
}

type mockPDFRenderer struct {
	called   bool
	filePath string
	html     string
	page     *PageSettings
	output   []byte
	partial  []byte
	err      error
	closed   int
}

func (m *mockPDFRenderer) RenderFromFile(ctx context.Context, filePath string, page *PageSettings, w io.Writer) error {
	m.called = true
	m.filePath = filePath
	m.page = page
	if data, err := os.ReadFile(filePath); err == nil {
		m.html = string(data)
	}
	if m.partial != nil {
		_, _ = w.Write(m.partial)
	}
	if m.err != nil {
		return m.err
	}
	output := m.output
	if output == nil {
		output = []byte("%PDF-1.4 mock")
	}
	_, err := w.Write(output)
	return err
}

func (m *mockPDFRenderer) Close() error {
	m.closed++
	return nil
}
