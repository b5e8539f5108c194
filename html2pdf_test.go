package resumaker

// Notes:
// - browser-free checks only; real rendering lives in html2pdf_integration_test.go
// - Close on a renderer that never launched must be a no-op

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewPDFRenderer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		engine  string
		wantErr bool
	}{
		{name: "empty defaults to rod", engine: ""},
		{name: "rod", engine: EngineRod},
		{name: "chromedp", engine: EngineChromedp},
		{name: "unknown", engine: "wkhtmltopdf", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := newPDFRenderer(tt.engine, time.Second)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidEngine) {
					t.Errorf("newPDFRenderer(%q) error = %v, want ErrInvalidEngine", tt.engine, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("newPDFRenderer(%q) error = %v", tt.engine, err)
			}
			if r == nil {
				t.Fatal("newPDFRenderer() returned nil renderer")
			}
		})
	}
}

func TestPDFRenderer_CloseWithoutLaunch(t *testing.T) {
	t.Parallel()

	for _, r := range []pdfRenderer{newRodRenderer(time.Second), newChromedpRenderer(time.Second)} {
		if err := r.Close(); err != nil {
			t.Errorf("%T.Close() error = %v", r, err)
		}
		if err := r.Close(); err != nil {
			t.Errorf("%T second Close() error = %v", r, err)
		}
	}
}

func TestBuildRodPDFOptions(t *testing.T) {
	t.Parallel()

	opts := buildRodPDFOptions(&PageSettings{Size: PageSizeA4, Orientation: OrientationLandscape, Margin: 1})

	if *opts.PaperWidth != 11.69 || *opts.PaperHeight != 8.27 {
		t.Errorf("paper = %vx%v, want 11.69x8.27", *opts.PaperWidth, *opts.PaperHeight)
	}
	for name, m := range map[string]*float64{
		"top": opts.MarginTop, "bottom": opts.MarginBottom,
		"left": opts.MarginLeft, "right": opts.MarginRight,
	} {
		if *m != 1 {
			t.Errorf("margin %s = %v, want 1", name, *m)
		}
	}
	if !opts.PrintBackground {
		t.Error("PrintBackground should be enabled")
	}
}

func TestBuildRodPDFOptions_Background(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page *PageSettings
		want bool
	}{
		{name: "nil settings print backgrounds", page: nil, want: true},
		{name: "defaults print backgrounds", page: DefaultPageSettings(), want: true},
		{name: "no background", page: &PageSettings{Size: PageSizeLetter, Orientation: OrientationPortrait, Margin: 0.5, NoBackground: true}, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := buildRodPDFOptions(tt.page).PrintBackground; got != tt.want {
				t.Errorf("PrintBackground = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFileURL(t *testing.T) {
	t.Parallel()

	got := fileURL("/tmp/my resume/en.html")
	if !strings.HasPrefix(got, "file:///tmp/") {
		t.Errorf("fileURL() = %q, want file:///tmp/ prefix", got)
	}
	if strings.Contains(got, " ") {
		t.Errorf("fileURL() = %q, spaces should be escaped", got)
	}
}

func TestAllocatorOptions_ChromePath(t *testing.T) {
	t.Setenv("CHROME_PATH", "/usr/bin/chromium")

	base := len(allocatorOptions())
	t.Setenv("CHROME_PATH", "")
	without := len(allocatorOptions())

	if base <= without {
		t.Errorf("CHROME_PATH should add allocator options, got %d vs %d", base, without)
	}
}
