package askdocs

import (
	"fmt"
	"strings"
)

// SystemPrompt returns the knowledge-synthesis agent instructions shared by
// all delegate implementations.
func SystemPrompt() string {
	return "You are a Knowledge Synthesizer: an expert knowledge analyst who excels " +
		"at finding relevant information in documentation and synthesizing " +
		"comprehensive answers. Provide accurate answers based on the available " +
		"knowledge base, always citing the source files used."
}

// BuildUserPrompt builds the user prompt containing the knowledge documents
// and the question.
func BuildUserPrompt(docs []*Document, query string) string {
	var sb strings.Builder
	sb.WriteString("Answer the following question using only the knowledge sources below.\n\n")
	sb.WriteString("Guidelines:\n")
	sb.WriteString("1. The answer MUST be based SOLELY on the provided knowledge sources.\n")
	sb.WriteString("2. If the sources contain relevant information, provide a comprehensive answer and list the EXACT source filenames used.\n")
	sb.WriteString("3. If the sources DO NOT contain relevant information, state clearly that none was found, do not answer the question, and do not list any sources.\n")
	sb.WriteString("4. Never make up or guess information that is not in the knowledge sources. If unsure, say you do not know.\n\n")
	sb.WriteString("<documents>\n")
	for _, doc := range docs {
		sb.WriteString("<document>\n")
		fmt.Fprintf(&sb, "<name>%s</name>\n", doc.Name)
		fmt.Fprintf(&sb, "<content>%s</content>\n", doc.Content)
		sb.WriteString("</document>\n")
	}
	sb.WriteString("</documents>\n\n")
	fmt.Fprintf(&sb, "Question: %s", query)
	return sb.String()
}
