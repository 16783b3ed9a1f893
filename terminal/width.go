package terminal

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/yeeaiclub/overlaycounter"
)

const (
	widthCacheSize = 512
)

var (
	widthCache      = make(map[string]int)
	widthCacheMutex sync.RWMutex
	ansiCSIPattern  = regexp.MustCompile(`\x1b\[[0-9;]*[mGKHJ]`)
	ansiOSCPattern  = regexp.MustCompile(`\x1b\]8;;[^\x07]*\x07`)
)

// VisibleWidth is the number of cells s occupies, ignoring style tags
// and escape sequences.
func VisibleWidth(s string) int {
	if len(s) == 0 {
		return 0
	}

	widthCacheMutex.RLock()
	if cached, ok := widthCache[s]; ok {
		widthCacheMutex.RUnlock()
		return cached
	}
	widthCacheMutex.RUnlock()

	width := utf8.RuneCountInString(plain(s))

	widthCacheMutex.Lock()
	if len(widthCache) >= widthCacheSize {
		for key := range widthCache {
			delete(widthCache, key)
			break
		}
	}
	widthCache[s] = width
	widthCacheMutex.Unlock()

	return width
}

func plain(s string) string {
	clean := overlaycounter.StripTags(s, overlaycounter.CounterTags)
	if strings.Contains(clean, "\t") {
		clean = strings.ReplaceAll(clean, "\t", "   ")
	}
	if strings.Contains(clean, "\x1b") {
		clean = ansiCSIPattern.ReplaceAllString(clean, "")
		clean = ansiOSCPattern.ReplaceAllString(clean, "")
	}
	return clean
}

// WrapText splits text into lines no wider than width, breaking at
// spaces and splitting words that do not fit on their own.
func WrapText(text string, width int) []string {
	var result []string
	for _, line := range strings.Split(plain(text), "\n") {
		result = append(result, wrapSingleLine(line, width)...)
	}
	return result
}

func wrapSingleLine(line string, width int) []string {
	if width <= 0 || VisibleWidth(line) <= width {
		return []string{line}
	}

	var wrapped []string
	current := ""
	for _, word := range strings.Fields(line) {
		for VisibleWidth(word) > width {
			if current != "" {
				wrapped = append(wrapped, current)
				current = ""
			}
			runes := []rune(word)
			wrapped = append(wrapped, string(runes[:width]))
			word = string(runes[width:])
		}
		if word == "" {
			continue
		}

		switch {
		case current == "":
			current = word
		case VisibleWidth(current)+1+VisibleWidth(word) > width:
			wrapped = append(wrapped, current)
			current = word
		default:
			current += " " + word
		}
	}
	if current != "" || len(wrapped) == 0 {
		wrapped = append(wrapped, current)
	}
	return wrapped
}
