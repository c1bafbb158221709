package renderer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// placeholderRe matches the fixed placeholder syntax ![alt](frames/<filename>)
// that binds article text to an extracted frame file.
var placeholderRe = regexp.MustCompile(`!\[([^\]]*)\]\(frames/([^)]+)\)`)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(ghtml.WithHardWraps()),
)

// RenderHTML converts the article into a self-contained HTML document.
// Placeholders whose frame file exists under framesDir are replaced with
// base64 data-URI images; unresolved references stay as literal markdown
// image syntax, which renders as a visibly broken link.
func RenderHTML(article, framesDir string) (string, error) {
	inlined := placeholderRe.ReplaceAllStringFunc(article, func(match string) string {
		m := placeholderRe.FindStringSubmatch(match)
		alt, filename := m[1], m[2]

		data, err := os.ReadFile(filepath.Join(framesDir, filepath.Base(filename)))
		if err != nil {
			return match
		}

		b64 := base64.StdEncoding.EncodeToString(data)
		return fmt.Sprintf("![%s](data:image/jpeg;base64,%s)", alt, b64)
	})

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(inlined), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	return htmlHeader + buf.String() + htmlFooter, nil
}

// DisplaySegments splits the article into alternating text and image chunks
// for structured live display. Image placeholders resolve against framesDir;
// a placeholder whose file is missing is dropped, and whitespace-only text
// chunks are skipped.
func DisplaySegments(article, framesDir string) []Segment {
	var segments []Segment

	appendText := func(text string) {
		if strings.TrimSpace(text) != "" {
			segments = append(segments, Segment{Kind: KindText, Text: text})
		}
	}

	pos := 0
	for _, loc := range placeholderRe.FindAllStringSubmatchIndex(article, -1) {
		appendText(article[pos:loc[0]])
		pos = loc[1]

		alt := article[loc[2]:loc[3]]
		filename := article[loc[4]:loc[5]]
		path := filepath.Join(framesDir, filepath.Base(filename))
		if _, err := os.Stat(path); err == nil {
			segments = append(segments, Segment{Kind: KindImage, Alt: alt, Path: path})
		}
	}
	appendText(article[pos:])

	return segments
}
