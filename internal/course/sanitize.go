package course

import "strings"

const untitled = "untitled"

var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeName makes a file stem safe to use as an artifact name on every
// platform. Control characters are dropped and trailing dots and spaces are
// trimmed. An empty result becomes "untitled".
func SanitizeName(name string) string {
	name = fileNameReplacer.Replace(strings.TrimSpace(name))
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
	name = strings.TrimRight(strings.TrimSpace(name), ". ")
	if name == "" {
		return untitled
	}
	return name
}
