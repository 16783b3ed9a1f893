package overlaycounter

import (
	"slices"
	"strings"
)

// Tags names the styles applied to a piece of text, e.g. {"font": "mono-stroke-14"}.
type Tags map[string]string

// CounterTags is applied to every counter line.
var CounterTags = Tags{"font": "mono-stroke-14"}

// SetStringTags wraps text in the host markup for tags, outermost tag
// first in key order: [font="mono-stroke-14"]text[/font].
func SetStringTags(text string, tags Tags) string {
	keys := make([]string, 0, len(tags))
	for key := range tags {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString("[" + key + "=\"" + tags[key] + "\"]")
	}
	b.WriteString(text)
	for i := len(keys) - 1; i >= 0; i-- {
		b.WriteString("[/" + keys[i] + "]")
	}
	return b.String()
}

// StripTags removes the markup SetStringTags writes for tags. Other
// bracketed text is left alone.
func StripTags(text string, tags Tags) string {
	if len(tags) == 0 || !strings.Contains(text, "[") {
		return text
	}
	pairs := make([]string, 0, 4*len(tags))
	for key, value := range tags {
		pairs = append(pairs, "["+key+"=\""+value+"\"]", "", "[/"+key+"]", "")
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
