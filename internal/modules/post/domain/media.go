package domain

// Media is the closed set of attachment kinds a post can carry.
// Values are built once by the transport adapter.
type Media interface {
	Kind() MediaKind
	media()
}

// File holds the fields every downloadable attachment shares
type File struct {
	FileID string
	// Size is zero when unknown
	Size int64
}

// Photo carries every size variant Telegram offers, smallest first
type Photo struct {
	Sizes []File
}

type Video struct {
	File
	FileName string
}

type Animation struct {
	File
	FileName string
}

type Document struct {
	File
	FileName string
}

type Audio struct {
	File
	FileName string
}

type Voice struct {
	File
}

type VideoNote struct {
	File
}

type Sticker struct {
	File
	IsVideo bool
}

func (Photo) Kind() MediaKind     { return MediaKindPhoto }
func (Video) Kind() MediaKind     { return MediaKindVideo }
func (Animation) Kind() MediaKind { return MediaKindAnimation }
func (Document) Kind() MediaKind  { return MediaKindDocument }
func (Audio) Kind() MediaKind     { return MediaKindAudio }
func (Voice) Kind() MediaKind     { return MediaKindVoice }
func (VideoNote) Kind() MediaKind { return MediaKindVideoNote }
func (Sticker) Kind() MediaKind   { return MediaKindSticker }

func (Photo) media()     {}
func (Video) media()     {}
func (Animation) media() {}
func (Document) media()  {}
func (Audio) media()     {}
func (Voice) media()     {}
func (VideoNote) media() {}
func (Sticker) media()   {}

// Largest returns the last (largest) photo variant
func (p Photo) Largest() (File, bool) {
	if len(p.Sizes) == 0 {
		return File{}, false
	}
	return p.Sizes[len(p.Sizes)-1], true
}
