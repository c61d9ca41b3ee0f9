package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/taskflowhq/taskflow-server/internal/domain/dto"
	"github.com/taskflowhq/taskflow-server/internal/domain/model"
)

const decompositionSystemPrompt = `You are a productivity assistant that breaks complex tasks into small, ` +
	`actionable subtasks. Reply with a single JSON object of this exact shape:
{
  "subtasks": [
    {
      "title": "string",
      "description": "string",
      "estimated_duration": 30,
      "priority": 3,
      "order": 0,
      "dependencies": ["title of an earlier subtask"]
    }
  ],
  "total_estimated_duration": 120,
  "completion_strategy": "string",
  "confidence": 0.9
}
Order subtasks so each depends only on earlier ones. Durations are minutes. Priority is 1-5, 5 highest.`

const prioritySystemPrompt = `You are a productivity assistant. Analyze tasks and suggest optimal ` +
	`priorities on a 1-5 scale, 5 being highest. Respond with only a number 1-5.`

const nextTaskSystemPrompt = `You are a productivity coach. Recommend the best next task based on ` +
	`urgency, importance and time available. Respond with the task id and a brief reason.`

const insightSystemPrompt = `You are a productivity coach. Analyze task completion patterns and ` +
	`provide three actionable insights.`

func buildDecompositionPrompt(req *dto.TaskDecompositionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task: %s\n", req.MainTask)
	if req.Description != "" {
		fmt.Fprintf(&b, "Details: %s\n", req.Description)
	}
	fmt.Fprintf(&b, "Category: %s\nDifficulty: %s\n", req.Category, req.DifficultyLevel)
	if req.EstimatedDuration != nil {
		fmt.Fprintf(&b, "Total time budget: %d minutes\n", *req.EstimatedDuration)
	}
	b.WriteString("Break this task into 3-8 subtasks.")
	return b.String()
}

func buildPriorityPrompt(task *model.Task, existing []*model.Task) string {
	// Keep the prompt small; ten tasks is enough ranking context.
	if len(existing) > 10 {
		existing = existing[:10]
	}
	payload := map[string]interface{}{
		"current_task":   taskContext(task),
		"existing_tasks": tasksContext(existing),
	}
	data, _ := json.Marshal(payload)
	return fmt.Sprintf("Analyze this task and suggest a priority (1-5): %s. Respond with only a number 1-5.", data)
}

func buildNextTaskPrompt(tasks []*model.Task) string {
	payload := map[string]interface{}{"tasks": tasksContext(tasks)}
	data, _ := json.Marshal(payload)
	return fmt.Sprintf("Given these open tasks, recommend the best next task to work on right now: %s", data)
}

func buildInsightPrompt(completed []*model.Task) string {
	payload := map[string]interface{}{"completed_tasks": tasksContext(completed)}
	data, _ := json.Marshal(payload)
	return fmt.Sprintf("Analyze these completed tasks and provide 3 actionable productivity insights: %s", data)
}

func taskContext(t *model.Task) map[string]interface{} {
	ctx := map[string]interface{}{
		"id":       t.ID,
		"title":    t.Title,
		"priority": t.Priority,
		"category": t.Category,
	}
	if t.Description != "" {
		ctx["description"] = t.Description
	}
	if t.DueDate != nil {
		ctx["due_date"] = t.DueDate
	}
	if t.EstimatedDuration != nil {
		ctx["estimated_duration"] = *t.EstimatedDuration
	}
	if t.CompletedAt != nil {
		ctx["completed_at"] = t.CompletedAt
	}
	return ctx
}

func tasksContext(tasks []*model.Task) []map[string]interface{} {
	out := make([]map[string]interface{}, len(tasks))
	for i, t := range tasks {
		out[i] = taskContext(t)
	}
	return out
}
