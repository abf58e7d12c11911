package service

import (
	"fmt"
	"strings"
)

const systemPromptTemplate = `You are DevMate, an expert AI code reviewer specializing in %s programming. Your primary goal is to help developers improve their code by analyzing it for:
- Bugs or Logical Errors: identify potential issues that would cause incorrect behavior.
- Readability & Maintainability: suggest improvements for clarity, structure, and ease of understanding.
- Style & Best Practices: adhere to common conventions for the specified language.
- Optimization: propose ways to make the code more efficient, explaining the performance benefits.
- Security Vulnerabilities: point out any potential security risks or common insecure patterns.

Provide clear, concise, and actionable feedback. When suggesting changes, explain why it is an improvement. Do not execute the code. If no issues are found, state that the code looks good and briefly explain why, focusing on good practices observed.`

// SystemPrompt frames the model as a reviewer specialized in the declared
// language.
func SystemPrompt(language string) string {
	return fmt.Sprintf(systemPromptTemplate, language)
}

// BuildUserPrompt embeds the source inside a language-tagged fenced block and
// mandates the numbered, categorized, line-referenced output format.
func BuildUserPrompt(language, code string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Please review the following %s code. Focus on the points mentioned in your system prompt.\n\n", language)
	b.WriteString("Provide feedback as a numbered list where each item clearly states:\n")
	b.WriteString("[Category: Bug/Style/Readability/Optimization/Security] Line Number (if applicable): Description of the issue. Suggestion/Example of corrected code.\n\n")
	fmt.Fprintf(&b, "Code to review:\n\n```%s\n%s\n```", language, code)

	return b.String()
}
