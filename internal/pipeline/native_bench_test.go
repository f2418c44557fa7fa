//go:build bench

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// BenchmarkNativeConverter_ToHTML benchmarks the native block pipeline,
// the per-page step of a site build.
func BenchmarkNativeConverter_ToHTML(b *testing.B) {
	converter := NewNativeConverter(WithLinkOptions(LinkOptions{MarkdownToHTML: true}))
	ctx := context.Background()

	inputs := []struct {
		name    string
		content string
	}{
		{"minimal", "# Hello\n\nWorld"},
		{"paragraph", strings.Repeat("This is a paragraph with some text.\n\n", 10)},
		{"headings", generateHeadingsMarkdown(20)},
		{"inline_styles", generateInlineMarkdown(50)},
		{"lists", generateListMarkdown(20)},
		{"code_blocks", generateCodeBlocksMarkdown(10)},
		{"mixed_small", generateMixedMarkdown(10)},
		{"mixed_medium", generateMixedMarkdown(50)},
		{"mixed_large", generateMixedMarkdown(200)},
	}

	for _, input := range inputs {
		b.Run(input.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := converter.ToHTML(ctx, input.content); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkNativeConverter_BySize benchmarks conversion scaling with input size.
func BenchmarkNativeConverter_BySize(b *testing.B) {
	converter := NewNativeConverter()
	ctx := context.Background()

	for _, size := range []int{1, 10, 50, 100, 500} {
		content := generateMixedMarkdown(size)
		b.Run(fmt.Sprintf("sections_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := converter.ToHTML(ctx, content); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkNativeConverter_Parallel benchmarks concurrent conversion with a
// shared converter, as the build workers use it.
func BenchmarkNativeConverter_Parallel(b *testing.B) {
	converter := NewNativeConverter()
	ctx := context.Background()
	content := generateMixedMarkdown(20)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := converter.ToHTML(ctx, content); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// BenchmarkNativeConverter_Highlighting benchmarks fenced code rendered
// through chroma.
func BenchmarkNativeConverter_Highlighting(b *testing.B) {
	h, err := NewHighlighter("monokai")
	if err != nil {
		b.Fatal(err)
	}
	converter := NewNativeConverter(WithHighlighter(h))
	ctx := context.Background()

	for _, lang := range []string{"go", "python", "javascript", "rust", "sql"} {
		content := generateCodeBlockWithLanguage(lang, 50)
		b.Run(lang, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := converter.ToHTML(ctx, content); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkEngines compares the native and goldmark engines on one document.
func BenchmarkEngines(b *testing.B) {
	ctx := context.Background()
	content := generateMixedMarkdown(50)

	engines := []struct {
		name      string
		converter HTMLConverter
	}{
		{"native", NewNativeConverter()},
		{"goldmark", NewGoldmarkConverter("")},
	}

	for _, e := range engines {
		b.Run(e.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := e.converter.ToHTML(ctx, content); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// Helper functions for generating benchmark input

func generateHeadingsMarkdown(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		level := (i % 6) + 1
		sb.WriteString(strings.Repeat("#", level))
		sb.WriteString(fmt.Sprintf(" Heading %d\n\n", i+1))
		sb.WriteString("Some content under this heading.\n\n")
	}
	return sb.String()
}

func generateInlineMarkdown(lines int) string {
	var sb strings.Builder
	for i := 0; i < lines; i++ {
		sb.WriteString("Text with **bold**, *italic*, `code` and *mixed-**nested***.\n")
	}
	return sb.String()
}

func generateListMarkdown(items int) string {
	var sb strings.Builder
	for i := 0; i < items; i++ {
		sb.WriteString(fmt.Sprintf("* item %d with [a link](page%d.md)\n", i+1, i))
		sb.WriteString("continuation of the item\n")
	}
	sb.WriteString("\n")
	for i := 0; i < items; i++ {
		sb.WriteString(fmt.Sprintf("%d. ordered **%d**\n", i+1, i))
	}
	return sb.String()
}

func generateCodeBlocksMarkdown(count int) string {
	var sb strings.Builder
	code := `func example() {
    fmt.Println("Hello, World!")

    for i := 0; i < 10; i++ {
        process(i)
    }
}`
	for i := 0; i < count; i++ {
		sb.WriteString("## Code Example\n\n")
		sb.WriteString("```go\n")
		sb.WriteString(code)
		sb.WriteString("\n```\n\n")
	}
	return sb.String()
}

func generateCodeBlockWithLanguage(lang string, lines int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("```%s\n", lang))
	for i := 0; i < lines; i++ {
		sb.WriteString(fmt.Sprintf("// Line %d of code\n", i+1))
		sb.WriteString("func example() { return nil }\n")
	}
	sb.WriteString("```\n")
	return sb.String()
}

func generateMixedMarkdown(sections int) string {
	var sb strings.Builder
	sb.WriteString("# Document Title\n\n")
	sb.WriteString("Introduction paragraph with **bold** and *italic* text.\n\n")

	for i := 0; i < sections; i++ {
		sb.WriteString(fmt.Sprintf("## Section %d\n\n", i+1))
		sb.WriteString("This is a paragraph with some content. ")
		sb.WriteString("It includes [links](https://example.com) and `inline code`.\n\n")

		sb.WriteString("- Item one\n")
		sb.WriteString("- Item two\n")
		sb.WriteString("- Item three\n\n")

		sb.WriteString("> A quoted line\n> and another\n\n")

		if i%3 == 0 {
			sb.WriteString("```go\nfunc main() {\n    fmt.Println(\"Hello\")\n}\n```\n\n")
		}
	}

	return sb.String()
}
