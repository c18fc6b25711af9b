package pipeline

import (
	"fmt"
	"strings"
)

// stageOutput pairs a model with the text it contributed to a stage.
type stageOutput struct {
	ModelID string
	Text    string
}

// buildPeerReviewPrompt asks one model to revise its own answer after
// reading the other models' answers. ownText is the model's stage-1 output;
// peers holds the other models' stage-1 outputs in candidate order.
func buildPeerReviewPrompt(originalPrompt, ownText string, peers []stageOutput) string {
	var b strings.Builder
	b.WriteString("You previously answered the following prompt:\n\n")
	b.WriteString(originalPrompt)
	b.WriteString("\n\nYour answer was:\n\n")
	b.WriteString(ownText)
	b.WriteString("\n\nOther models answered the same prompt as follows:\n")
	for _, p := range peers {
		fmt.Fprintf(&b, "\n--- Answer from %s ---\n%s\n", p.ModelID, p.Text)
	}
	b.WriteString("\nReview the other answers critically. Where they are stronger, incorporate ")
	b.WriteString("their improvements; where they are wrong, do not adopt the error. ")
	b.WriteString("Produce a single revised answer to the original prompt.")
	return b.String()
}

// buildSynthesisPrompt asks the selected model to merge every available
// answer into one final response. inputs are the best available output per
// model (revised where the revision succeeded, initial otherwise), in
// candidate order.
func buildSynthesisPrompt(originalPrompt string, inputs []stageOutput) string {
	var b strings.Builder
	b.WriteString("Multiple independent models answered the following prompt:\n\n")
	b.WriteString(originalPrompt)
	b.WriteString("\n")
	for _, in := range inputs {
		fmt.Fprintf(&b, "\n--- Answer from %s ---\n%s\n", in.ModelID, in.Text)
	}
	b.WriteString("\nSynthesize these answers into one comprehensive final response. ")
	b.WriteString("Resolve disagreements explicitly rather than averaging them, keep the ")
	b.WriteString("strongest reasoning from each answer, and do not mention the individual ")
	b.WriteString("models or the synthesis process.")
	return b.String()
}
