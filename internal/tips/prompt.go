package tips

import (
	"fmt"
	"strings"
)

const tipSystemPrompt = `You are a cheerful abacus coach for children aged 6-12 who practise mental arithmetic with a soroban.`

func buildTipUserMessage(topic string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", topic)
	b.WriteString(`
Instructions:
Give one short, encouraging tip about the topic above.
1. At most 20 words, one sentence.
2. Plain ASCII text. No emoji, no markdown, no quotes around the tip.
3. Speak directly to the child.`)

	return b.String()
}
