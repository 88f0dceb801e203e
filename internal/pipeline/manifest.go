package pipeline

// Artifact slot names returned in the result manifest.
const (
	SlotEditedVideo     = "edited_video"
	SlotTranscriptPDF   = "transcript_pdf"
	SlotTranscriptDocx  = "transcript_docx"
	SlotGeneratedVideo  = "generated_video"
	SlotGeneratedSlides = "generated_slides"
	SlotSourceDocument  = "source_document"
	SlotSummary         = "summary"
)

// Manifest maps artifact slots to paths relative to the results root,
// or nil when a branch was skipped. A set slot always points at a file
// that exists on disk; the relative path doubles as the download URL
// under the static results mount.
type Manifest map[string]*string

// Set records a produced artifact.
func (m Manifest) Set(slot, relPath string) {
	m[slot] = &relPath
}

// SetAbsent marks a slot as deliberately skipped.
func (m Manifest) SetAbsent(slot string) {
	m[slot] = nil
}

// Path returns the artifact path and whether the slot holds one.
func (m Manifest) Path(slot string) (string, bool) {
	p, ok := m[slot]
	if !ok || p == nil {
		return "", false
	}
	return *p, true
}
