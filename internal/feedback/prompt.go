package feedback

import (
	"fmt"
	"strings"

	"github.com/egfinancefx/exam/internal/attach"
	"github.com/egfinancefx/exam/internal/llm"
	"github.com/egfinancefx/exam/internal/quiz"
)

// noAnswer is the transcript placeholder for a question the trader
// skipped or never reached.
const noAnswer = "No answer given."

// Transcript is everything the analysis prompt is built from. Answers,
// Reasoning and Attachments are keyed by question position in the bank.
// Attachments hold data URLs as captured from the trader; malformed
// entries are dropped from the request rather than failing it.
type Transcript struct {
	Name        string
	Questions   []quiz.Question
	Answers     map[int]int
	Reasoning   map[int]string
	Attachments map[int]string
}

// instructions is the fixed analysis brief appended after the transcript.
const instructions = `You are a senior trading mentor reviewing a skills assessment for a trader named %s. Above is the full transcript of their answers.

Evaluate the trader with particular attention to Smart Money Concepts (SMC) and liquidity: market structure, liquidity sweeps, order blocks, fair value gaps, and risk discipline. Where the trader wrote reasoning, weigh the quality of that reasoning more heavily than whether the final choice was correct. Any attached chart images are the trader's own markups; assess them too.

Write your evaluation in English, very concise and professional, structured as exactly five sections with these bracketed tags, in this order:

[LEVEL]: a one-line classification of the trader's current level.
[STRENGTHS]: the trader's strongest skills, as short bullet points.
[WEAKNESSES]: the most important gaps, as short bullet points.
[ROADMAP]: a prioritized study plan for the next 30 days.
[PSYCHOLOGY]: a brief read of the trader's decision-making mindset.

Do not add any text before the first tag or after the last section.`

// BuildRequest assembles the single outbound model request for a finished
// quiz. Each question becomes a small transcript block; reasoning lines
// appear only where the trader wrote one. Valid attachments ride along as
// inline image parts; malformed data URLs are silently skipped.
func BuildRequest(t Transcript, temperature, topP float64) llm.Request {
	blocks := make([]string, 0, len(t.Questions))
	for i, q := range t.Questions {
		var b strings.Builder
		fmt.Fprintf(&b, "Question %d: %s\n", i+1, q.Text)

		sel, answered := t.Answers[i]
		if answered && sel >= 0 && sel < len(q.Options) {
			fmt.Fprintf(&b, "Trader's answer: %s\n", q.Options[sel])
			if sel == q.CorrectAnswer {
				b.WriteString("Result: Correct")
			} else {
				b.WriteString("Result: Incorrect")
			}
		} else {
			fmt.Fprintf(&b, "Trader's answer: %s\n", noAnswer)
			b.WriteString("Result: Incorrect")
		}

		if r := strings.TrimSpace(t.Reasoning[i]); r != "" {
			fmt.Fprintf(&b, "\nTrader's reasoning: %s", r)
		}
		blocks = append(blocks, b.String())
	}

	parts := []llm.Part{
		llm.TextPart(strings.Join(blocks, "\n\n") + "\n\n" + fmt.Sprintf(instructions, t.Name)),
	}

	for i := range t.Questions {
		raw, ok := t.Attachments[i]
		if !ok || raw == "" {
			continue
		}
		att, err := attach.ParseDataURL(raw)
		if err != nil {
			continue
		}
		parts = append(parts, llm.DataPart(att.MediaType, att.Data))
	}

	return llm.Request{
		Parts:       parts,
		Temperature: temperature,
		TopP:        topP,
	}
}
