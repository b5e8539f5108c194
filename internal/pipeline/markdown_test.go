package pipeline

// Notes:
// - Goldmark output is checked by substring; exact whitespace is not asserted
// - Cancellation is tested with an already-cancelled context only; racing a
//   live conversion would make the test timing-dependent

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "emphasis",
			input:        "Built **fast** services",
			wantContains: []string{"<strong>fast</strong>"},
		},
		{
			name:         "list",
			input:        "- Go\n- Kotlin",
			wantContains: []string{"<ul>", "<li>Go</li>"},
		},
		{
			name:         "hard wraps",
			input:        "line one\nline two",
			wantContains: []string{"<br />"},
		},
		{
			name:         "GFM autolink",
			input:        "see https://example.com",
			wantContains: []string{`href="https://example.com"`},
		},
		{
			name:         "fenced code uses classes",
			input:        "```go\nfunc main() {}\n```",
			wantContains: []string{`class="chroma"`},
		},
		{
			name:         "raw HTML dropped",
			input:        "<script>alert(1)</script>",
			wantExcludes: []string{"<script>"},
		},
		{
			name:         "no document wrapper",
			input:        "plain",
			wantExcludes: []string{"<html", "<body"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML() = %q, want to contain %q", got, want)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("ToHTML() = %q, should not contain %q", got, exclude)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_Empty(t *testing.T) {
	t.Parallel()

	got, err := NewGoldmarkConverter().ToHTML(context.Background(), "")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if got != "" {
		t.Errorf("ToHTML(\"\") = %q, want empty", got)
	}
}

func TestGoldmarkConverter_ToHTML_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter().ToHTML(ctx, "text")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}
