package fixtures

import (
	"fmt"
	"strings"
)

var sentences = []string{
	"The quick brown fox jumps over the lazy dog.",
	"Pack my box with five dozen liquor jugs.",
	"How vexingly quick daft zebras jump!",
	"Sphinx of black quartz, judge my vow.",
	"The five boxing wizards jump quickly.",
	"Jackdaws love my big sphinx of quartz.",
	"Mr. Jock, TV quiz PhD, bags few lynx.",
}

// ItemText returns deterministic filler text for the demo list. Item lengths
// vary so wrapped heights differ between items and change with terminal width.
func ItemText(idx int) string {
	numSentences := 1 + (idx*7)%4
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Item #%d: ", idx))
	for i := 0; i < numSentences; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sentences[(idx+i)%len(sentences)])
	}
	return b.String()
}
