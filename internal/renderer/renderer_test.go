package renderer

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// jpegBytes is not a real JPEG; the renderer inlines file contents verbatim.
var jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}

func writeFrame(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), jpegBytes, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRenderHTMLInlinesExistingFrames(t *testing.T) {
	framesDir := t.TempDir()
	writeFrame(t, framesDir, "frame_0001_10s.jpg")

	article := "# タイトル\n\n説明です。\n\n![設定画面](frames/frame_0001_10s.jpg)\n"
	html, err := RenderHTML(article, framesDir)
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}

	if !strings.Contains(html, "data:image/jpeg;base64,") {
		t.Error("output should contain a base64 data URI")
	}
	if strings.Contains(html, "frames/frame_0001_10s.jpg") {
		t.Error("resolved reference should leave no literal frames/ path")
	}
	if !strings.Contains(html, `alt="設定画面"`) {
		t.Error("alt text should be preserved")
	}
	if !strings.HasPrefix(html, "<!DOCTYPE html>") || !strings.Contains(html, "</html>") {
		t.Error("output should be a standalone document")
	}
	if !strings.Contains(html, "<style>") {
		t.Error("styling must be embedded for offline viewing")
	}
}

func TestRenderHTMLLeavesMissingFrames(t *testing.T) {
	framesDir := t.TempDir()

	article := "before ![x](frames/missing.jpg) after"
	html, err := RenderHTML(article, framesDir)
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}

	// goldmark renders the unresolved reference as an image pointing at the
	// original relative path, the portable-document flavor of "broken".
	if !strings.Contains(html, "frames/missing.jpg") {
		t.Error("unresolved reference should keep the original frames/ path")
	}
	if strings.Contains(html, "data:image") {
		t.Error("nothing should be inlined for a missing frame")
	}
}

func TestRenderHTMLExtensions(t *testing.T) {
	html, err := RenderHTML("| a | b |\n|---|---|\n| 1 | 2 |\n\nline one\nline two\n", t.TempDir())
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}

	if !strings.Contains(html, "<table>") {
		t.Error("tables extension should be enabled")
	}
	if !strings.Contains(html, "<br") {
		t.Error("newlines inside a paragraph should become line breaks")
	}
}

func TestDisplaySegmentsMissingFrame(t *testing.T) {
	segments := DisplaySegments("A ![x](frames/f.jpg) B", t.TempDir())

	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2: %+v", len(segments), segments)
	}
	if segments[0].Kind != KindText || segments[0].Text != "A " {
		t.Errorf("segments[0] = %+v, want text %q", segments[0], "A ")
	}
	if segments[1].Kind != KindText || segments[1].Text != " B" {
		t.Errorf("segments[1] = %+v, want text %q", segments[1], " B")
	}
}

func TestDisplaySegmentsExistingFrame(t *testing.T) {
	framesDir := t.TempDir()
	writeFrame(t, framesDir, "f.jpg")

	segments := DisplaySegments("A ![x](frames/f.jpg) B", framesDir)

	if len(segments) != 3 {
		t.Fatalf("got %d segments, want 3: %+v", len(segments), segments)
	}
	if segments[0].Text != "A " || segments[2].Text != " B" {
		t.Errorf("text chunks = %q, %q", segments[0].Text, segments[2].Text)
	}
	img := segments[1]
	if img.Kind != KindImage || img.Alt != "x" || img.Path != filepath.Join(framesDir, "f.jpg") {
		t.Errorf("image segment = %+v", img)
	}
}

func TestDisplaySegmentsWhitespaceOnlyTextDropped(t *testing.T) {
	framesDir := t.TempDir()
	writeFrame(t, framesDir, "a.jpg")
	writeFrame(t, framesDir, "b.jpg")

	segments := DisplaySegments("![1](frames/a.jpg)\n\n![2](frames/b.jpg)", framesDir)

	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2 images: %+v", len(segments), segments)
	}
	for _, s := range segments {
		if s.Kind != KindImage {
			t.Errorf("expected only image segments, got %+v", s)
		}
	}
}

func TestDisplaySegmentsNoPlaceholders(t *testing.T) {
	segments := DisplaySegments("plain markdown text", t.TempDir())
	if len(segments) != 1 || segments[0].Kind != KindText {
		t.Fatalf("segments = %+v", segments)
	}
}

// docxDocumentXML extracts word/document.xml from a written docx file.
func docxDocumentXML(t *testing.T, path string) string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open docx: %v", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatal(err)
		}
		return string(data)
	}

	t.Fatal("word/document.xml not found in docx")
	return ""
}

func TestRenderDocxInlinePlaceholder(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "article.docx")
	article := "手順は![設定画面](frames/frame_0001_10s.jpg)の通りです。\n\n![](frames/frame_0002_20s.jpg)だけの行。\n"

	if err := RenderDocx("demo", article, outPath); err != nil {
		t.Fatalf("RenderDocx() error = %v", err)
	}

	xml := docxDocumentXML(t, outPath)
	if strings.Contains(xml, "![") || strings.Contains(xml, "frames/") {
		t.Error("raw image markdown leaked into the document")
	}
	if !strings.Contains(xml, "[設定画面]") {
		t.Error("inline placeholder should be reduced to its alt text")
	}
	if !strings.Contains(xml, "の通りです") {
		t.Error("surrounding text should be preserved")
	}
}

func TestRenderDocx(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "article.docx")
	article := "# 見出し\n\n概要の段落です。\n\n![設定画面](frames/frame_0000_0s.jpg)\n\n1. 最初の手順\n2. **重要な**手順\n\n- 箇条書き\n\n> 補足ポイント\n"

	if err := RenderDocx("demo", article, outPath); err != nil {
		t.Fatalf("RenderDocx() error = %v", err)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("docx not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx file is empty")
	}
}
