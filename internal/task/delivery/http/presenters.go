package http

import (
	"time"

	"campus-task-assistant/internal/model"
	"campus-task-assistant/internal/task"
)

// --- Request DTOs ---

type parseReq struct {
	Input       string   `json:"input"        binding:"max=2000"`
	MemberNames []string `json:"member_names" binding:"max=200"`
	Timezone    string   `json:"timezone"     binding:"max=64"`
}

func (r parseReq) toInput() task.ParseInput {
	return task.ParseInput{
		Input:       r.Input,
		MemberNames: r.MemberNames,
		Timezone:    r.Timezone,
	}
}

// ---

type parseDateReq struct {
	Phrase   string `json:"phrase"   binding:"max=200"`
	Timezone string `json:"timezone" binding:"max=64"`
}

func (r parseDateReq) toInput() task.ResolveDueDateInput {
	return task.ResolveDueDateInput{
		Phrase:   r.Phrase,
		Timezone: r.Timezone,
	}
}

// ---

type memberReq struct {
	ID   string `json:"id"   binding:"required"`
	Name string `json:"name" binding:"required"`
}

type createReq struct {
	OrganizationID string      `json:"organization_id"`
	Input          string      `json:"input"    binding:"max=2000"`
	Members        []memberReq `json:"members"  binding:"max=200,dive"`
	Timezone       string      `json:"timezone" binding:"max=64"`
}

func (r createReq) toInput() task.CreateInput {
	members := make([]task.Member, len(r.Members))
	for i, m := range r.Members {
		members[i] = task.Member{ID: m.ID, Name: m.Name}
	}
	return task.CreateInput{
		OrganizationID: r.OrganizationID,
		Input:          r.Input,
		Members:        members,
		Timezone:       r.Timezone,
	}
}

// ---

type listReq struct {
	OrganizationID string `form:"organization_id"`
	Limit          int    `form:"limit"`
	Offset         int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		OrganizationID: r.OrganizationID,
		Limit:          r.Limit,
		Offset:         r.Offset,
	}
}

// --- Response DTOs ---

type assigneeMatchResp struct {
	RequestedName string `json:"requested_name"`
	MatchedName   string `json:"matched_name,omitempty"`
	Confidence    string `json:"confidence"`
}

type parsedResp struct {
	Title           string              `json:"title"`
	AssigneeNames   []string            `json:"assignee_names,omitempty"`
	DueDate         string              `json:"due_date,omitempty"`
	Priority        string              `json:"priority,omitempty"`
	Subtasks        []string            `json:"subtasks,omitempty"`
	Description     string              `json:"description,omitempty"`
	AssigneeMatches []assigneeMatchResp `json:"assignee_matches"`
}

func newParsedResp(out task.ParseOutput) parsedResp {
	matches := make([]assigneeMatchResp, len(out.AssigneeMatches))
	for i, m := range out.AssigneeMatches {
		matches[i] = assigneeMatchResp{
			RequestedName: m.RequestedName,
			MatchedName:   m.MatchedName,
			Confidence:    string(m.Confidence),
		}
	}
	p := out.Parsed
	return parsedResp{
		Title:           p.Title,
		AssigneeNames:   p.AssigneeNames,
		DueDate:         p.DueDate,
		Priority:        p.Priority,
		Subtasks:        p.Subtasks,
		Description:     p.Description,
		AssigneeMatches: matches,
	}
}

// parseResp is the extractor envelope: success carries parsed and
// original_input, failure carries error.
type parseResp struct {
	Success       bool        `json:"success"`
	Parsed        *parsedResp `json:"parsed,omitempty"`
	OriginalInput string      `json:"original_input,omitempty"`
	Error         string      `json:"error,omitempty"`
}

func (h *handler) newParseResp(out task.ParseOutput) parseResp {
	parsed := newParsedResp(out)
	return parseResp{
		Success:       true,
		Parsed:        &parsed,
		OriginalInput: out.OriginalInput,
	}
}

type dueDateResp struct {
	Date          time.Time `json:"date"`
	ISODate       string    `json:"iso_date"`
	Display       string    `json:"display"`
	Confidence    string    `json:"confidence"`
	OriginalInput string    `json:"original_input"`
}

func newDueDateResp(out task.ResolveDueDateOutput) dueDateResp {
	return dueDateResp{
		Date:          out.Date,
		ISODate:       out.ISODate,
		Display:       out.Display,
		Confidence:    string(out.Confidence),
		OriginalInput: out.OriginalInput,
	}
}

type subtaskResp struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}

type assigneeResp struct {
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
}

type taskResp struct {
	ID             string         `json:"id"`
	OrganizationID string         `json:"organization_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	Priority       string         `json:"priority,omitempty"`
	DueDate        string         `json:"due_date,omitempty"`
	DueDatePhrase  string         `json:"due_date_phrase,omitempty"`
	Subtasks       []subtaskResp  `json:"subtasks"`
	Assignees      []assigneeResp `json:"assignees"`
	CalendarLink   string         `json:"calendar_link,omitempty"`
	CreatedBy      string         `json:"created_by,omitempty"`
	CreatedAt      string         `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	subtasks := make([]subtaskResp, len(t.Subtasks))
	for i, s := range t.Subtasks {
		subtasks[i] = subtaskResp{ID: s.ID, Title: s.Title, Position: s.Position}
	}
	assignees := make([]assigneeResp, len(t.Assignees))
	for i, a := range t.Assignees {
		assignees[i] = assigneeResp{MemberID: a.MemberID, Name: a.Name}
	}

	resp := taskResp{
		ID:             t.ID,
		OrganizationID: t.OrganizationID,
		Title:          t.Title,
		Description:    t.Description,
		Priority:       string(t.Priority),
		DueDatePhrase:  t.DueDatePhrase,
		Subtasks:       subtasks,
		Assignees:      assignees,
		CalendarLink:   t.CalendarLink,
		CreatedBy:      t.CreatedBy,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format(time.RFC3339)
	}
	return resp
}

type createResp struct {
	Task            taskResp     `json:"task"`
	Parsed          parsedResp   `json:"parsed"`
	DueDateResolved bool         `json:"due_date_resolved"`
	DueDate         *dueDateResp `json:"resolved_due_date,omitempty"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	resp := createResp{
		Task:            newTaskResp(out.Task),
		Parsed:          newParsedResp(out.Parsed),
		DueDateResolved: out.DueDateResolved,
	}
	if out.DueDate != nil {
		d := newDueDateResp(*out.DueDate)
		resp.DueDate = &d
	}
	return resp
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(t model.Task) detailResp {
	return detailResp{Task: newTaskResp(t)}
}
