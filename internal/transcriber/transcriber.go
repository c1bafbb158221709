package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const transcribePrompt = `この音声ファイルを文字起こししてください。
以下のJSON形式で出力してください。コードブロックで囲わず、JSONのみ出力してください。

{
  "full_text": "全体のテキスト",
  "segments": [
    {"start": 0.0, "end": 5.0, "text": "セグメントのテキスト"},
    {"start": 5.0, "end": 10.0, "text": "次のセグメントのテキスト"}
  ]
}

注意:
- 日本語で文字起こししてください
- セグメントは内容のまとまりごとに区切ってください（10〜30秒程度）
- start/endは秒数です
- 必ず有効なJSONで出力してください`

// Transcribe uploads the audio to the model with a fixed instruction prompt
// and parses the response into a timestamped transcript. An unparseable
// response degrades to a single-segment fallback rather than an error: once
// the audio has been consumed, a usable article can still be produced from
// the raw text. Transport failures still propagate.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (Transcript, error) {
	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return Transcript{}, fmt.Errorf("read audio file: %w", err)
	}

	t.logger.Info(ctx, "Transcribing audio (%d bytes): %s", len(audio), audioPath)

	response, err := t.client.GenerateWithAudio(ctx, audio, "audio/wav", transcribePrompt)
	if err != nil {
		return Transcript{}, fmt.Errorf("transcribe audio: %w", err)
	}

	raw := stripCodeFence(strings.TrimSpace(response))

	var transcript Transcript
	if err := json.Unmarshal([]byte(raw), &transcript); err != nil {
		t.logger.Warn(ctx, "Transcription response is not valid JSON, using raw text fallback")
		return Transcript{
			FullText: raw,
			Segments: []Segment{{Start: 0.0, End: 0.0, Text: raw}},
			Source:   SourceFallback,
		}, nil
	}

	transcript.Source = SourceParsed
	t.logger.Info(ctx, "Transcription parsed: %d segments", len(transcript.Segments))
	return transcript, nil
}

// stripCodeFence removes a surrounding markdown code fence the model may
// have added despite instructions. Detects a fence at the start and drops
// every line that is purely a fence delimiter.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}

	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
