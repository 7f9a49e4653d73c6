package domain

// Post is an immutable snapshot of one inbound channel post
type Post struct {
	MessageID int64
	ChatID    int64
	ChatTitle string
	Text      string
	Caption   string
	// Entities belong to whichever of Text or Caption is the effective body
	Entities []Annotation
	Media    []Media
}

// Annotation is a formatting or link range over the post body.
// Offset and Length are measured in UTF-16 code units.
type Annotation struct {
	Kind     AnnotationKind
	Offset   int
	Length   int
	URL      string
	Language string
}

// Body returns the effective body: text when present, caption otherwise
func (p *Post) Body() string {
	if p.Text != "" {
		return p.Text
	}
	return p.Caption
}

// HasBody reports whether the post carries any text or caption
func (p *Post) HasBody() bool {
	return p.Body() != ""
}

// MediaDescriptor identifies the single attachment chosen for a post
type MediaDescriptor struct {
	Kind     MediaKind
	SourceID string
	Filename string
	// DeclaredSize is nil when the source did not report a size
	DeclaredSize *int64
}

// ExceedsLimit reports whether the declared size is known and above limit
func (d *MediaDescriptor) ExceedsLimit(limit int64) bool {
	return d.DeclaredSize != nil && *d.DeclaredSize > limit
}
