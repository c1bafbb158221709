package media

import "errors"

// ErrExternalTool marks any transcoder failure: non-zero exit, missing
// binary, or unparseable probe output. Fatal to the current request.
var ErrExternalTool = errors.New("external media tool failed")

// FrameRecord describes one extracted keyframe. Index matches position in
// the produced sequence; Filename encodes both index and timestamp so the
// composer and renderer can resolve placeholders purely by name.
type FrameRecord struct {
	Index     int
	Timestamp int // seconds from the start of the video
	Filename  string
	Path      string
}
