package renderer

// Kind discriminates display segment variants.
type Kind int

const (
	// KindText is a markdown text chunk.
	KindText Kind = iota
	// KindImage is a resolved frame image reference.
	KindImage
)

// Segment is one chunk of the split article for live display: either a run
// of markdown text or an image that resolved to a file on disk. Image
// placeholders that do not resolve are dropped entirely, unlike the HTML
// rendering where they remain as visibly broken references. Both behaviors
// are deliberate for their consumption contexts.
type Segment struct {
	Kind Kind
	Text string // KindText: the markdown chunk
	Alt  string // KindImage: placeholder alt text
	Path string // KindImage: path of the frame file on disk
}
