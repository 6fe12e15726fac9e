package editor

import "strings"

// Line, çok satırlı bir alanın görüntülenecek tek satırı.
type Line struct {
	Text   string
	Bullet bool
}

// DisplayLines, çok satırlı bir alan değerini satır-bazlı bullet
// konvansiyonu ile görüntü satırlarına çevirir: "•" veya "-" ile
// başlayan satırlar liste öğesi olarak işaretlenir, prefix atılır.
//
// Bu tamamen bir görüntüleme konvansiyonudur — saklanan veri değişmez,
// editör ham metni düzenler.
func DisplayLines(value string) []Line {
	if value == "" {
		return nil
	}

	raw := strings.Split(value, "\n")
	lines := make([]Line, 0, len(raw))

	for _, l := range raw {
		trimmed := strings.TrimSpace(l)
		if trimmed == "" {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "•"):
			lines = append(lines, Line{
				Text:   strings.TrimSpace(strings.TrimPrefix(trimmed, "•")),
				Bullet: true,
			})
		case strings.HasPrefix(trimmed, "-"):
			lines = append(lines, Line{
				Text:   strings.TrimSpace(strings.TrimPrefix(trimmed, "-")),
				Bullet: true,
			})
		default:
			lines = append(lines, Line{Text: trimmed})
		}
	}

	return lines
}
