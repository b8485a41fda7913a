package domain

// BlockKind identifies why an interval of time is reserved.
type BlockKind string

const (
	BlockSleep   BlockKind = "sleep"
	BlockBreak   BlockKind = "break"
	BlockMeeting BlockKind = "meeting"
	BlockOther   BlockKind = "blocked"
)

// ValidBlockKinds is the canonical set of accepted block kind strings.
var ValidBlockKinds = map[BlockKind]bool{
	BlockSleep:   true,
	BlockBreak:   true,
	BlockMeeting: true,
	BlockOther:   true,
}

// SourceGoogleDocs tags tasks derived from a synced Google Docs document.
const SourceGoogleDocs = "google_docs"
