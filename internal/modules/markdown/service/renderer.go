package service

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/reshetovitsme/telegram-discord-bridge/internal/modules/post/domain"
)

// nestingPriority orders markers of spans over the same range. Lower values
// wrap higher ones: opens are emitted ascending, closes descending.
var nestingPriority = map[domain.AnnotationKind]int{
	domain.AnnotationKindPre:           0,
	domain.AnnotationKindBold:          1,
	domain.AnnotationKindItalic:        2,
	domain.AnnotationKindUnderline:     3,
	domain.AnnotationKindStrikethrough: 4,
	domain.AnnotationKindCode:          5,
	domain.AnnotationKindTextLink:      6,
}

// Priority returns the nesting priority of kind. Kinds that produce no
// markers (url, unknown) report false.
func Priority(kind domain.AnnotationKind) (int, bool) {
	p, ok := nestingPriority[kind]
	return p, ok
}

type marker struct {
	text     string
	priority int
	// native range of the span; the longer span wraps the shorter one
	start, end int
}

// Render converts a body and its annotations into Discord Markdown.
//
// Every annotation is mapped against the original text. Malformed ranges,
// unknown kinds and text links without a URL are dropped silently.
func Render(text string, annotations []domain.Annotation) string {
	if len(annotations) == 0 {
		return text
	}

	total := UTF16Len(text)
	opens := make(map[int][]marker)
	closes := make(map[int][]marker)

	for _, a := range annotations {
		priority, ok := Priority(a.Kind)
		if !ok {
			continue
		}
		if a.Kind == domain.AnnotationKindTextLink && a.URL == "" {
			continue
		}

		// Ranges reaching past the body are dropped whole, not clipped
		if a.Offset < 0 || a.Length <= 0 || a.Offset+a.Length > total {
			continue
		}

		start := MapOffset(text, a.Offset)
		end := MapOffset(text, a.Offset+a.Length)
		if start >= end || end > len(text) {
			continue
		}

		openText, closeText := markersFor(a)
		opens[start] = append(opens[start], marker{text: openText, priority: priority, start: start, end: end})
		closes[end] = append(closes[end], marker{text: closeText, priority: priority, start: start, end: end})
	}

	if len(opens) == 0 {
		return text
	}

	// Spans sharing an index nest by extent first: the span ending last opens
	// first, the span starting last closes first. Priority only orders spans
	// over the same range.
	for _, ms := range opens {
		slices.SortStableFunc(ms, func(a, b marker) int {
			if c := cmp.Compare(b.end, a.end); c != 0 {
				return c
			}
			return cmp.Compare(a.priority, b.priority)
		})
	}
	for _, ms := range closes {
		slices.SortStableFunc(ms, func(a, b marker) int {
			if c := cmp.Compare(b.start, a.start); c != 0 {
				return c
			}
			return cmp.Compare(b.priority, a.priority)
		})
	}

	var sb strings.Builder
	sb.Grow(len(text) + 8*len(annotations))

	for i := 0; i <= len(text); {
		for _, m := range closes[i] {
			sb.WriteString(m.text)
		}
		for _, m := range opens[i] {
			sb.WriteString(m.text)
		}
		if i == len(text) {
			break
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		sb.WriteString(text[i : i+size])
		i += size
	}

	return sb.String()
}

func markersFor(a domain.Annotation) (string, string) {
	switch a.Kind {
	case domain.AnnotationKindBold:
		return "**", "**"
	case domain.AnnotationKindItalic:
		return "*", "*"
	case domain.AnnotationKindUnderline:
		return "__", "__"
	case domain.AnnotationKindStrikethrough:
		return "~~", "~~"
	case domain.AnnotationKindCode:
		return "`", "`"
	case domain.AnnotationKindPre:
		return "```" + a.Language + "\n", "\n```"
	case domain.AnnotationKindTextLink:
		return "[", "](" + a.URL + ")"
	default:
		return "", ""
	}
}
