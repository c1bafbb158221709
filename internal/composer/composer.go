package composer

import (
	"context"
	"fmt"
	"strings"

	"github.com/bobucross-source/video-to-article/internal/media"
	"github.com/bobucross-source/video-to-article/internal/transcriber"
)

const articlePromptTemplate = `以下は教材動画「%s」の文字起こしとキーフレーム画像の情報です。
これを元に、動画を見なくても手順や内容がわかる説明記事（Markdown形式）を作成してください。

## 要件
1. 記事のタイトルをつけてください
2. 冒頭に概要セクションを設けてください
3. 動画の流れに沿って、適切な見出し（##, ###）で章立てしてください
4. 各手順やポイントには、対応するスクリーンショットを挿入してください
   - 画像は ` + "`![説明](frames/ファイル名)`" + ` の形式で挿入
   - 全てのフレームを使う必要はありません。内容の変化がある重要な場面のフレームだけを厳選してください
   - 同じような画面・似たような内容のフレームは1枚だけ選び、重複して貼らないでください
   - 連続するフレーム（例: frame_0010 と frame_0011）は画面がほぼ同じなので、どちらか一方だけ使ってください
5. 手順がある場合は番号付きリストで記載してください
6. 補足情報やポイントは引用ブロック（>）やボールドで強調してください
7. 文字起こしの口語表現は、読みやすい文語表現に変換してください
%s
## 利用可能なフレーム画像
%s

## 文字起こし（タイムスタンプ付き）
%s

## 出力
Markdown形式の記事を出力してください。コードブロックで囲わず、そのままMarkdownを出力してください。`

// Compose builds the single generation request and returns the raw Markdown
// article. Output is passed through unvalidated: a fenced or otherwise
// malformed response is the renderer's problem, which must tolerate
// unresolved placeholders.
func (c *implComposer) Compose(ctx context.Context, transcript transcriber.Transcript, frames []media.FrameRecord, videoTitle, customInstructions string) (string, error) {
	prompt := buildPrompt(transcript, frames, videoTitle, customInstructions)

	c.logger.Info(ctx, "Composing article for %q (%d frames, %d segments)",
		videoTitle, len(frames), len(transcript.Segments))

	article, err := c.client.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate article: %w", err)
	}

	c.logger.Info(ctx, "Article generated (%d characters)", len(article))
	return article, nil
}

func buildPrompt(transcript transcriber.Transcript, frames []media.FrameRecord, videoTitle, customInstructions string) string {
	var manifest strings.Builder
	for _, f := range frames {
		fmt.Fprintf(&manifest, "  - %s (タイムスタンプ: %s)\n", f.Filename, formatTimestamp(float64(f.Timestamp)))
	}

	var segments strings.Builder
	for _, s := range transcript.Segments {
		fmt.Fprintf(&segments, "[%s - %s] %s\n", formatTimestamp(s.Start), formatTimestamp(s.End), s.Text)
	}

	customSection := ""
	if trimmed := strings.TrimSpace(customInstructions); trimmed != "" {
		customSection = fmt.Sprintf("\n## 追加の要件\n%s\n", trimmed)
	}

	return fmt.Sprintf(articlePromptTemplate,
		videoTitle,
		customSection,
		strings.TrimRight(manifest.String(), "\n"),
		strings.TrimRight(segments.String(), "\n"),
	)
}

// formatTimestamp renders whole seconds as MM:SS.
func formatTimestamp(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
