package prompt

import (
	"strings"
	"time"

	"ai-study-notebook-be/pkg/llm"
)

// Task selects one of the fixed instruction templates.
type Task string

const (
	TaskSummary    Task = "summary"
	TaskFlashcards Task = "flashcards"
	TaskQuiz       Task = "quiz"
	TaskStudyPlan  Task = "study-plan"
	TaskChat       Task = "chat"
)

// Templates are static data, not logic. The system line primes the model
// for the task; the instruction describes the desired output shape.
type template struct {
	system      string
	instruction string
}

var templates = map[Task]template{
	TaskSummary: {
		system:      "Summarize study notes for exams.",
		instruction: "You are an AI study assistant. Create a concise, exam-focused summary of the following content.",
	},
	TaskFlashcards: {
		system:      "Create flashcards for spaced repetition.",
		instruction: `Generate high-quality flashcards in JSON array format [{"front": "...", "back": "..."}] from the following exam notes.`,
	},
	TaskQuiz: {
		system:      "Create practice exam questions.",
		instruction: "Generate a set of exam-style questions as JSON with fields type, question, options (for MCQ), answer, explanation.",
	},
	TaskStudyPlan: {
		system:      "Plan an efficient exam study schedule.",
		instruction: "Create a detailed day-by-day study plan in JSON format for an upcoming university exam.",
	},
	TaskChat: {
		system:      "You are an AI study assistant helping a university student prepare for exams. Answer based only on the provided notebook context and conversation history when possible.",
		instruction: "",
	},
}

// All builders are pure: identical inputs always yield identical prompts.

// Build produces the prompt for tasks without extra parameters
// (summary, flashcards).
func Build(task Task, contextBlob, userText string) string {
	tpl := templates[task]
	return compose(tpl.system, tpl.instruction, contextBlob, userText)
}

// BuildQuiz embeds difficulty level and question type into the quiz
// instruction.
func BuildQuiz(contextBlob, userText, level, qtype string) string {
	tpl := templates[TaskQuiz]
	instruction := tpl.instruction + " Level: " + level + ". Type: " + qtype + "."
	return compose(tpl.system, instruction, contextBlob, userText)
}

// BuildStudyPlan embeds the exam date, or "unknown" when none was given.
func BuildStudyPlan(contextBlob, userText string, examDate *time.Time) string {
	dateStr := "unknown"
	if examDate != nil {
		dateStr = examDate.Format("2006-01-02")
	}
	tpl := templates[TaskStudyPlan]
	instruction := tpl.instruction + " Exam date: " + dateStr + ".\nReturn a JSON object with days and tasks."
	return compose(tpl.system, instruction, contextBlob, userText)
}

// BuildChat serializes the conversation history into a transcript prefix,
// each turn labeled by its uppercased role. No history compaction.
func BuildChat(contextBlob string, history []llm.Message) string {
	var transcript strings.Builder
	for _, m := range history {
		transcript.WriteString(strings.ToUpper(m.Role) + ": " + m.Content + "\n")
	}

	tpl := templates[TaskChat]
	userMessage := "Notebook context:\n" + contextBlob + "\n\nConversation:\n" + transcript.String()
	return tpl.system + "\n\nUser:\n" + userMessage
}

func compose(system, instruction, contextBlob, userText string) string {
	body := instruction + "\n\nContext:\n" + contextBlob + "\n\nText:\n" + userText
	return system + "\n\nUser:\n" + body
}
