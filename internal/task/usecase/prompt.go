package usecase

import (
	"fmt"
	"strings"
	"time"

	"campus-task-assistant/pkg/llmprovider"
)

const parseTaskTool = "parse_task"

const systemPromptTemplate = `You extract a single task from a student's message.

Today is %s. The user's timezone is %s.
Known members: %s.

Rules:
- title: a short imperative summary of the work.
- assignee_names: people the task is for, as written. Prefer names from the known members.
- due_date: copy the deadline phrase exactly as the user wrote it (for example "next Friday" or "by midnight"). Do not convert it to a date.
- priority: one of low, medium, high, urgent. Omit it when the message gives no hint.
- subtasks: concrete steps only when the message lists them.
- description: extra context that does not fit the other fields.

Call parse_task exactly once.`

// buildSystemPrompt embeds the caller's current date, timezone and roster.
func buildSystemPrompt(now time.Time, tzLabel string, members []string) string {
	roster := "none provided"
	if len(members) > 0 {
		roster = strings.Join(members, ", ")
	}
	return fmt.Sprintf(systemPromptTemplate, now.Format("Monday, January 2, 2006"), tzLabel, roster)
}

// parseTaskToolSpec is the function declaration the model must call.
func parseTaskToolSpec() llmprovider.Tool {
	return llmprovider.Tool{
		Name:        parseTaskTool,
		Description: "Record the task extracted from the user's message.",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Short task title",
				},
				"assignee_names": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Names of the people assigned",
				},
				"due_date": map[string]interface{}{
					"type":        "string",
					"description": "Deadline phrase in natural language, verbatim",
				},
				"priority": map[string]interface{}{
					"type": "string",
					"enum": []string{"low", "medium", "high", "urgent"},
				},
				"subtasks": map[string]interface{}{
					"type":  "array",
					"items": map[string]interface{}{"type": "string"},
				},
				"description": map[string]interface{}{
					"type": "string",
				},
			},
			"required": []string{"title"},
		},
	}
}
