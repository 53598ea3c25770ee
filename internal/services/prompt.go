package services

import (
	"fmt"
)

// DefaultChatPersona is the system prompt used when the session has no
// uploaded document.
const DefaultChatPersona = "You are KiitGPT, an AI assistant for KIIT students. You were developed by Arya Vats and team."

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionPrompt creates the interviewer prompt for a resume.
func (pb *PromptBuilder) BuildQuestionPrompt(resumeText string) []Message {
	prompt := fmt.Sprintf(`You are an AI HR interviewer. Based on this resume:
%s
Ask a job-specific technical or behavioral interview question.`, resumeText)

	return []Message{{Role: RoleSystem, Content: prompt}}
}

// BuildEvaluationPrompt asks for a rating and feedback on one answer.
func (pb *PromptBuilder) BuildEvaluationPrompt(question, response string) []Message {
	prompt := fmt.Sprintf(`Rate this response and provide feedback:

Question: %s
User Response: %s`, question, response)

	return []Message{{Role: RoleSystem, Content: prompt}}
}

// BuildChatSystemPrompt embeds the uploaded document verbatim when there is one.
func (pb *PromptBuilder) BuildChatSystemPrompt(documentText string) string {
	if documentText == "" {
		return DefaultChatPersona
	}

	return fmt.Sprintf(`You are KiitGPT, an AI assistant for KIIT students. Answer queries based on uploaded documents if available, or provide normal responses if no PDF is uploaded.

Uploaded PDF Content:

%s

`, documentText)
}

func (pb *PromptBuilder) BuildChatPrompt(documentText, userMessage string) []Message {
	return []Message{
		{Role: RoleSystem, Content: pb.BuildChatSystemPrompt(documentText)},
		{Role: RoleUser, Content: userMessage},
	}
}
