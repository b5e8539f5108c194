package resumaker

// Notes:
// - PageSettings validation covers each bound and enum
// - resolvePageDimensions falls back to defaults and swaps for landscape

import (
	"errors"
	"testing"
)

func TestPageSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    *PageSettings
		wantErr error
	}{
		{name: "nil uses defaults", page: nil},
		{name: "defaults", page: DefaultPageSettings()},
		{name: "a4 landscape", page: &PageSettings{Size: "a4", Orientation: "landscape", Margin: 1}},
		{name: "case insensitive", page: &PageSettings{Size: "LEGAL", Orientation: "Portrait", Margin: 0.5}},
		{name: "min margin", page: &PageSettings{Size: "letter", Orientation: "portrait", Margin: MinMargin}},
		{name: "max margin", page: &PageSettings{Size: "letter", Orientation: "portrait", Margin: MaxMargin}},
		{name: "unknown size", page: &PageSettings{Size: "a5", Orientation: "portrait", Margin: 0.5}, wantErr: ErrInvalidPageSize},
		{name: "empty size", page: &PageSettings{Orientation: "portrait", Margin: 0.5}, wantErr: ErrInvalidPageSize},
		{name: "unknown orientation", page: &PageSettings{Size: "a4", Orientation: "diagonal", Margin: 0.5}, wantErr: ErrInvalidOrientation},
		{name: "margin too small", page: &PageSettings{Size: "a4", Orientation: "portrait", Margin: 0.1}, wantErr: ErrInvalidMargin},
		{name: "margin too large", page: &PageSettings{Size: "a4", Orientation: "portrait", Margin: 3.5}, wantErr: ErrInvalidMargin},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.page.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolvePageDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                  string
		page                  *PageSettings
		wantW, wantH, wantMar float64
	}{
		{name: "nil", page: nil, wantW: 8.5, wantH: 11, wantMar: 0.5},
		{name: "a4 portrait", page: &PageSettings{Size: "a4", Orientation: "portrait", Margin: 1}, wantW: 8.27, wantH: 11.69, wantMar: 1},
		{name: "legal landscape", page: &PageSettings{Size: "legal", Orientation: "landscape", Margin: 0.75}, wantW: 14, wantH: 8.5, wantMar: 0.75},
		{name: "unknown size falls back", page: &PageSettings{Size: "tabloid", Margin: 1}, wantW: 8.5, wantH: 11, wantMar: 1},
		{name: "zero margin falls back", page: &PageSettings{Size: "letter"}, wantW: 8.5, wantH: 11, wantMar: DefaultMargin},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, h, m := resolvePageDimensions(tt.page)
			if w != tt.wantW || h != tt.wantH || m != tt.wantMar {
				t.Errorf("resolvePageDimensions() = (%v, %v, %v), want (%v, %v, %v)", w, h, m, tt.wantW, tt.wantH, tt.wantMar)
			}
		})
	}
}

func TestPageDimensions_CoverEverySize(t *testing.T) {
	t.Parallel()

	for _, size := range []string{PageSizeLetter, PageSizeA4, PageSizeLegal} {
		dims, ok := pageDimensions[size]
		if !ok {
			t.Errorf("pageDimensions missing %q", size)
			continue
		}
		if dims.width >= dims.height {
			t.Errorf("%q should be stored portrait, got %vx%v", size, dims.width, dims.height)
		}
	}
}

func TestDefaultGenerateParams(t *testing.T) {
	t.Parallel()

	p := DefaultGenerateParams()
	if p.OutDir != "./generated" {
		t.Errorf("OutDir = %q, want ./generated", p.OutDir)
	}
	if p.Template != "default.html" {
		t.Errorf("Template = %q, want default.html", p.Template)
	}
	if len(p.Languages) != 0 {
		t.Errorf("Languages = %v, want empty", p.Languages)
	}
}
