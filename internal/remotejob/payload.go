package remotejob

type videoPayload struct {
	VideoName      string    `json:"videoName"`
	VideoType      string    `json:"videoType"`
	Script         string    `json:"script"`
	AspectRatio    string    `json:"aspectRatio"`
	Language       string    `json:"language"`
	VoiceOver      voiceOver `json:"voiceOver"`
	AutoHighlights bool      `json:"autoHighlights"`
	AutoBranding   bool      `json:"autoBranding"`
}

type voiceOver struct {
	Enabled bool   `json:"enabled"`
	Voice   string `json:"voice"`
}

type slidesPayload struct {
	Title    string      `json:"title"`
	Language string      `json:"language"`
	Content  string      `json:"content"`
	Slides   slideBounds `json:"slides"`
	Style    string      `json:"style"`
}

type slideBounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}
