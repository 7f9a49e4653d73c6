//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// AnnotationKind represents a formatting or link range type
// ENUM(bold,italic,underline,strikethrough,code,pre,text_link,url)
type AnnotationKind string

// MediaKind represents the type of an inbound attachment
// ENUM(photo,video,animation,document,audio,voice,video_note,sticker)
type MediaKind string
