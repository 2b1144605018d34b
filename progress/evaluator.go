// Package progress computes per-task completion and risk classification for
// the accepted interns of an internship. It is pure computation over a
// snapshot fetched by the caller; it performs no I/O of its own.
package progress

import (
	"internhub/models"
	"log"
	"math"
	"sort"
	"time"
)

// Per-task statuses
const (
	TaskCompleted       = "completed"
	TaskPending         = "pending"
	TaskRequiresChanges = "requires_changes"
	TaskRejected        = "rejected"
	TaskInProgress      = "in-progress"
	TaskOverdue         = "overdue"
)

// Aggregate intern statuses, in priority order
const (
	OverallBehind  = "behind"
	OverallAtRisk  = "at-risk"
	OverallOnTrack = "on-track"
)

// Policy holds the tunable at-risk thresholds.
type Policy struct {
	AtRiskProgressBelow int // progress % below which an intern can be at-risk
	AtRiskElapsedGap    int // elapsed % must exceed progress % by this many points
}

// DefaultPolicy returns the stock thresholds.
func DefaultPolicy() Policy {
	return Policy{AtRiskProgressBelow: 70, AtRiskElapsedGap: 20}
}

// Snapshot is everything the evaluator reads, fetched in one pass at the
// start of the request. Interns must be in application (arrival) order.
type Snapshot struct {
	Internship  models.Internship
	Tasks       []models.Task
	Interns     []models.User
	Submissions []models.Submission
	Adjustments []models.DeadlineAdjustment
}

// TaskReport is one intern's state on one task.
type TaskReport struct {
	TaskID   uint      `json:"taskId"`
	Title    string    `json:"title"`
	Order    int       `json:"order"`
	Status   string    `json:"status"`
	Deadline time.Time `json:"deadline"`
	Adjusted bool      `json:"adjusted"` // a per-user deadline adjustment applied
}

// InternReport aggregates one intern across all tasks.
type InternReport struct {
	ID                 uint         `json:"id"`
	Name               string       `json:"name"`
	Email              string       `json:"email"`
	Tasks              []TaskReport `json:"tasks"`
	ProgressPercentage int          `json:"progressPercentage"`
	OverallStatus      string       `json:"overallStatus"`
	CompletedTasks     int          `json:"completedTasks"`
	TotalTasks         int          `json:"totalTasks"`
	OverdueTasks       int          `json:"overdueTasks"`
	PendingReview      int          `json:"pendingReview"`
}

// Summary rolls the intern reports up for the dashboard header.
type Summary struct {
	TotalInterns    int `json:"totalInterns"`
	OnTrack         int `json:"onTrack"`
	AtRisk          int `json:"atRisk"`
	Behind          int `json:"behind"`
	AverageProgress int `json:"averageProgress"`
}

// Report is the evaluator output. DatesAssumed is set when the internship is
// missing its start or end date and "now" was substituted; risk
// classification is not meaningful in that case.
type Report struct {
	Interns      []InternReport `json:"interns"`
	Summary      Summary        `json:"summary"`
	DatesAssumed bool           `json:"datesAssumed"`
}

type userTask struct {
	userID uint
	taskID uint
}

// EffectiveDeadline resolves the deadline for one (user, task): the task's
// default offset in days from the internship start, unless an adjustment
// overrides it for this user.
func EffectiveDeadline(start time.Time, task models.Task, adj *models.DeadlineAdjustment) time.Time {
	offset := task.DeadlineOffset
	if adj != nil {
		offset = adj.NewDeadlineOffset
	}
	return start.AddDate(0, 0, offset)
}

// Evaluate produces the full progress report for a snapshot as of now.
func Evaluate(snap Snapshot, now time.Time, pol Policy) Report {
	tasks := make([]models.Task, len(snap.Tasks))
	copy(tasks, snap.Tasks)
	// OrderIndex is not guaranteed unique; ties fall back to insertion order
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].OrderIndex != tasks[j].OrderIndex {
			return tasks[i].OrderIndex < tasks[j].OrderIndex
		}
		return tasks[i].ID < tasks[j].ID
	})

	datesAssumed := false
	start := now
	if snap.Internship.StartDate != nil {
		start = *snap.Internship.StartDate
	} else {
		datesAssumed = true
	}
	end := now
	if snap.Internship.EndDate != nil {
		end = *snap.Internship.EndDate
	} else {
		datesAssumed = true
	}
	if datesAssumed {
		log.Printf("progress: internship %d has incomplete dates, substituting now; risk classification unreliable", snap.Internship.ID)
	}

	subs := make(map[userTask]models.Submission, len(snap.Submissions))
	for _, s := range snap.Submissions {
		if s.IsDeleted {
			continue
		}
		subs[userTask{s.UserID, s.TaskID}] = s
	}
	adjs := make(map[userTask]models.DeadlineAdjustment, len(snap.Adjustments))
	for _, a := range snap.Adjustments {
		if a.IsDeleted {
			continue
		}
		adjs[userTask{a.UserID, a.TaskID}] = a
	}

	elapsed := elapsedPercent(start, end, now)

	interns := make([]InternReport, 0, len(snap.Interns))
	for _, u := range snap.Interns {
		interns = append(interns, evaluateIntern(u, tasks, start, now, elapsed, subs, adjs, pol))
	}

	// behind first, then at-risk, then on-track; ties keep arrival order
	rank := map[string]int{OverallBehind: 0, OverallAtRisk: 1, OverallOnTrack: 2}
	sort.SliceStable(interns, func(i, j int) bool {
		return rank[interns[i].OverallStatus] < rank[interns[j].OverallStatus]
	})

	return Report{
		Interns:      interns,
		Summary:      summarize(interns),
		DatesAssumed: datesAssumed,
	}
}

func evaluateIntern(
	u models.User,
	tasks []models.Task,
	start, now time.Time,
	elapsed float64,
	subs map[userTask]models.Submission,
	adjs map[userTask]models.DeadlineAdjustment,
	pol Policy,
) InternReport {
	report := InternReport{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Tasks:      make([]TaskReport, 0, len(tasks)),
		TotalTasks: len(tasks),
	}

	for i, task := range tasks {
		var adj *models.DeadlineAdjustment
		if a, ok := adjs[userTask{u.ID, task.ID}]; ok {
			adj = &a
		}
		deadline := EffectiveDeadline(start, task, adj)

		sub, hasSub := subs[userTask{u.ID, task.ID}]

		// Gating reads the submission list directly, not the status computed
		// for the previous task in this pass.
		prevApproved := i == 0
		if i > 0 {
			prev, ok := subs[userTask{u.ID, tasks[i-1].ID}]
			prevApproved = ok && prev.Status == models.SubmissionApproved
		}

		status := taskStatus(sub, hasSub, deadline, now, prevApproved)

		switch status {
		case TaskCompleted:
			report.CompletedTasks++
		case TaskOverdue:
			report.OverdueTasks++
		}
		if hasSub && sub.Status == models.SubmissionPending {
			report.PendingReview++
		}

		report.Tasks = append(report.Tasks, TaskReport{
			TaskID:   task.ID,
			Title:    task.Title,
			Order:    task.OrderIndex,
			Status:   status,
			Deadline: deadline,
			Adjusted: adj != nil,
		})
	}

	if report.TotalTasks > 0 {
		report.ProgressPercentage = int(math.Round(100 * float64(report.CompletedTasks) / float64(report.TotalTasks)))
	}
	report.OverallStatus = overallStatus(report, elapsed, pol)

	return report
}

// taskStatus applies the status priority for one (intern, task) pair.
func taskStatus(sub models.Submission, hasSub bool, deadline, now time.Time, prevApproved bool) string {
	if !hasSub && now.After(deadline) {
		return TaskOverdue
	}
	if hasSub {
		switch sub.Status {
		case models.SubmissionApproved:
			return TaskCompleted
		case models.SubmissionRequiresChanges:
			return TaskRequiresChanges
		case models.SubmissionRejected:
			return TaskRejected
		default:
			return TaskPending
		}
	}
	if prevApproved {
		return TaskInProgress
	}
	return TaskPending
}

func overallStatus(r InternReport, elapsed float64, pol Policy) string {
	if r.OverdueTasks > 0 {
		return OverallBehind
	}
	if r.ProgressPercentage < pol.AtRiskProgressBelow &&
		elapsed > float64(r.ProgressPercentage+pol.AtRiskElapsedGap) {
		return OverallAtRisk
	}
	return OverallOnTrack
}

// elapsedPercent is how far through the internship window now falls, clamped
// to [0,100]. A non-positive window yields 0.
func elapsedPercent(start, end, now time.Time) float64 {
	total := end.Sub(start)
	if total <= 0 {
		return 0
	}
	pct := 100 * float64(now.Sub(start)) / float64(total)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func summarize(interns []InternReport) Summary {
	s := Summary{TotalInterns: len(interns)}
	if len(interns) == 0 {
		return s
	}
	sum := 0
	for _, it := range interns {
		sum += it.ProgressPercentage
		switch it.OverallStatus {
		case OverallOnTrack:
			s.OnTrack++
		case OverallAtRisk:
			s.AtRisk++
		case OverallBehind:
			s.Behind++
		}
	}
	s.AverageProgress = int(math.Round(float64(sum) / float64(len(interns))))
	return s
}
