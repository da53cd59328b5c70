package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"ai-planning-service/internal/model"
	"ai-planning-service/internal/planning"
)

const taskPromptTemplate = `You are an expert project manager and event planner. Your task is to analyze an event and generate the MOST OPTIMAL list of tasks to accomplish it successfully.

EVENT: %s

EVENT INFORMATION: %s

Please generate a comprehensive, well-structured, and OPTIMAL list of tasks that will ensure the event's success. Consider:
1. Critical path items that must be completed
2. Logical sequence and dependencies
3. Resource allocation and time management
4. Risk mitigation tasks
5. Quality assurance steps
6. Post-event follow-up tasks

CRITICAL: You MUST return ONLY a valid JSON array. Do NOT include any markdown code blocks, explanations, or additional text. Start your response with [ and end with ].

Required JSON format:
[
    {
        "task": "Task name/title",
        "description": "Detailed description of what needs to be done",
        "priority": "high",
        "estimated_duration": {
            "quantity": 2,
            "unit": "days"
        }
    }
]

Requirements:
- Each task must have: task (string - short title), description (string - detailed description), priority (string: "high", "medium", or "low"), estimated_duration (object with "quantity" (number) and "unit" (string: "hours" or "days") or null)
- Task should be a short, clear title (2-5 words)
- Description should be detailed and explain what needs to be done
- Tasks should be specific, actionable, and measurable
- Prioritize tasks logically (high priority first)
- Aim for 5-15 tasks depending on event complexity
- Only include tasks that are truly necessary and impactful

Return ONLY the JSON array.`

const schedulePromptTemplate = `You are an expert project scheduler. Your task is to create an optimal schedule for an event by assigning tasks to the most suitable team members based on their expertise and experience.

EVENT: %s
EVENT INFORMATION: %s
EVENT DATE RANGE: %s to %s

AVAILABLE TASKS:
%s

AVAILABLE TEAM MEMBERS:
%s

RULES:
1. Match tasks to members who have relevant specialization and experience
2. Distribute workload fairly among team members
3. Schedule high priority tasks earlier
4. Allocate realistic time based on task duration
5. Schedule every task within the event date range: %s to %s
6. Respect dependencies between tasks

CRITICAL: You MUST return ONLY a valid JSON array. Do NOT include any markdown code blocks, explanations, or additional text. Start your response with [ and end with ].

Required JSON format:
[
    {
        "task_title": "Task name/title",
        "priority": "high",
        "duration": {
            "quantity": 2,
            "unit": "hours"
        },
        "owners": [
            {
                "id": 1234567890,
                "type": "person",
                "name": "John Doe"
            }
        ],
        "start_date_time": "2024-01-15T09:00:00",
        "end_date_time": "2024-01-15T11:00:00",
        "order": 1
    }
]

Requirements:
- owners is an array of one or more suitable members with id, type and name
- start_date_time must be before end_date_time, both in ISO 8601 format YYYY-MM-DDTHH:MM:SS
- order is an integer starting from 1

Return ONLY the JSON array.`

const titlePromptTemplate = `Given this task description, generate a short, concise task name/title (2-5 words maximum).

Task Description: %s

Requirements:
- Return ONLY the task name/title, nothing else
- Should be 2-5 words
- Should be clear and actionable
- No punctuation at the end
- Just the title, no explanation

Task Name:`

// BuildTaskPrompt builds the prompt for task generation.
func BuildTaskPrompt(event, eventInfo string) string {
	return fmt.Sprintf(taskPromptTemplate, event, eventInfo)
}

// BuildSchedulePrompt builds the prompt for schedule generation.
func BuildSchedulePrompt(input planning.GenerateScheduleInput) string {
	tasks := make([]string, 0, len(input.Tasks))
	for i, t := range input.Tasks {
		tasks = append(tasks, describeTask(i+1, t))
	}
	members := make([]string, 0, len(input.Members))
	for _, m := range input.Members {
		members = append(members, describeMember(m))
	}
	return fmt.Sprintf(schedulePromptTemplate,
		input.EventName, input.EventInfo,
		input.EventStartDate, input.EventEndDate,
		strings.Join(tasks, "\n"),
		strings.Join(members, "\n"),
		input.EventStartDate, input.EventEndDate,
	)
}

// BuildTitlePrompt builds the prompt used by TitleSummarizer.
func BuildTitlePrompt(description string) string {
	return fmt.Sprintf(titlePromptTemplate, description)
}

// describeTask renders "n. task - description (Priority: p) (Duration: q unit)".
func describeTask(n int, t map[string]any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s - %s", n, textOf(t["task"]), textOf(t["description"]))
	if p := textOf(t["priority"]); p != "" {
		fmt.Fprintf(&b, " (Priority: %s)", p)
	}
	if d, ok := t["estimated_duration"].(map[string]any); ok && len(d) > 0 {
		fmt.Fprintf(&b, " (Duration: %s %s)", textOf(d["quantity"]), textOf(d["unit"]))
	}
	return b.String()
}

// describeMember renders "- first last name (type)" plus specialization and experience when known.
func describeMember(m model.Member) string {
	kind := textOf(m["type"])
	if kind == "" {
		kind = "person"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "- %s %s %s (%s)", textOf(m["firstName"]), textOf(m["lastName"]), textOf(m["name"]), kind)
	if s := textOf(m["specializedIn"]); s != "" {
		fmt.Fprintf(&b, ", Specialized in: %s", s)
	}
	if e := textOf(m["experience"]); e != "" && e != "0" {
		fmt.Fprintf(&b, ", Experience: %s years", e)
	}
	return b.String()
}

// textOf formats a loosely-typed JSON value for a prompt. nil renders empty.
func textOf(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
