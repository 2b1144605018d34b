package progress

import (
	"internhub/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var start = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return start.AddDate(0, 0, n)
}

func mkTask(id uint, order, offset int) models.Task {
	return models.Task{
		Model:          gorm.Model{ID: id},
		Title:          "Task",
		OrderIndex:     order,
		DeadlineOffset: offset,
	}
}

func mkUser(id uint, name string) models.User {
	return models.User{Model: gorm.Model{ID: id}, Name: name, Email: name + "@example.com"}
}

func mkSub(userID, taskID uint, status string) models.Submission {
	return models.Submission{UserID: userID, TaskID: taskID, Status: status}
}

func mkInternship(startDate, endDate *time.Time) models.Internship {
	return models.Internship{Model: gorm.Model{ID: 1}, Title: "Internship", StartDate: startDate, EndDate: endDate}
}

func window(days int) models.Internship {
	end := day(days)
	return mkInternship(&start, &end)
}

func TestTaskOverdueWhenNoSubmissionPastDeadline(t *testing.T) {
	snap := Snapshot{
		Internship: window(60),
		Tasks:      []models.Task{mkTask(1, 0, 7)},
		Interns:    []models.User{mkUser(10, "aida")},
	}

	report := Evaluate(snap, day(8), DefaultPolicy())

	require.Len(t, report.Interns, 1)
	require.Len(t, report.Interns[0].Tasks, 1)
	assert.Equal(t, TaskOverdue, report.Interns[0].Tasks[0].Status)
	assert.Equal(t, 1, report.Interns[0].OverdueTasks)
	assert.Equal(t, OverallBehind, report.Interns[0].OverallStatus)
}

func TestAdjustmentOverridesDeadlineForThatUserOnly(t *testing.T) {
	snap := Snapshot{
		Internship: window(60),
		Tasks:      []models.Task{mkTask(1, 0, 7)},
		Interns:    []models.User{mkUser(10, "aida"), mkUser(11, "bekzat")},
		Adjustments: []models.DeadlineAdjustment{
			{UserID: 10, TaskID: 1, NewDeadlineOffset: 14, Reason: "late start"},
		},
	}

	report := Evaluate(snap, day(8), DefaultPolicy())

	require.Len(t, report.Interns, 2)
	var adjusted, unadjusted InternReport
	for _, in := range report.Interns {
		if in.ID == 10 {
			adjusted = in
		} else {
			unadjusted = in
		}
	}

	assert.Equal(t, TaskInProgress, adjusted.Tasks[0].Status)
	assert.True(t, adjusted.Tasks[0].Adjusted)
	assert.Equal(t, day(14), adjusted.Tasks[0].Deadline)

	assert.Equal(t, TaskOverdue, unadjusted.Tasks[0].Status)
	assert.False(t, unadjusted.Tasks[0].Adjusted)
	assert.Equal(t, day(7), unadjusted.Tasks[0].Deadline)
}

func TestApprovedSubmissionCompletedRegardlessOfDeadline(t *testing.T) {
	snap := Snapshot{
		Internship:  window(60),
		Tasks:       []models.Task{mkTask(1, 0, 7)},
		Interns:     []models.User{mkUser(10, "aida")},
		Submissions: []models.Submission{mkSub(10, 1, models.SubmissionApproved)},
	}

	report := Evaluate(snap, day(30), DefaultPolicy())

	assert.Equal(t, TaskCompleted, report.Interns[0].Tasks[0].Status)
	assert.Equal(t, 1, report.Interns[0].CompletedTasks)
	assert.Equal(t, 0, report.Interns[0].OverdueTasks)
}

func TestFirstTaskInProgressWithoutPriorGating(t *testing.T) {
	snap := Snapshot{
		Internship: window(60),
		Tasks:      []models.Task{mkTask(1, 0, 7), mkTask(2, 1, 14)},
		Interns:    []models.User{mkUser(10, "aida")},
	}

	report := Evaluate(snap, day(2), DefaultPolicy())

	assert.Equal(t, TaskInProgress, report.Interns[0].Tasks[0].Status)
	// second task blocked until the first is approved
	assert.Equal(t, TaskPending, report.Interns[0].Tasks[1].Status)
}

func TestSequentialGatingUnlocksNextTask(t *testing.T) {
	snap := Snapshot{
		Internship:  window(60),
		Tasks:       []models.Task{mkTask(1, 0, 7), mkTask(2, 1, 14)},
		Interns:     []models.User{mkUser(10, "aida")},
		Submissions: []models.Submission{mkSub(10, 1, models.SubmissionApproved)},
	}

	report := Evaluate(snap, day(8), DefaultPolicy())

	assert.Equal(t, TaskCompleted, report.Interns[0].Tasks[0].Status)
	assert.Equal(t, TaskInProgress, report.Interns[0].Tasks[1].Status)
}

func TestSubmissionStatusMapping(t *testing.T) {
	snap := Snapshot{
		Internship: window(60),
		Tasks: []models.Task{
			mkTask(1, 0, 30), mkTask(2, 1, 30), mkTask(3, 2, 30), mkTask(4, 3, 30),
		},
		Interns: []models.User{mkUser(10, "aida")},
		Submissions: []models.Submission{
			mkSub(10, 1, models.SubmissionApproved),
			mkSub(10, 2, models.SubmissionPending),
			mkSub(10, 3, models.SubmissionRequiresChanges),
			mkSub(10, 4, models.SubmissionRejected),
		},
	}

	report := Evaluate(snap, day(5), DefaultPolicy())

	tasks := report.Interns[0].Tasks
	assert.Equal(t, TaskCompleted, tasks[0].Status)
	assert.Equal(t, TaskPending, tasks[1].Status)
	assert.Equal(t, TaskRequiresChanges, tasks[2].Status)
	assert.Equal(t, TaskRejected, tasks[3].Status)
	assert.Equal(t, 1, report.Interns[0].PendingReview)
}

func TestOrderTiesBreakByInsertionOrder(t *testing.T) {
	// two tasks share order rank 0; the lower ID gates the higher one
	snap := Snapshot{
		Internship:  window(60),
		Tasks:       []models.Task{mkTask(2, 0, 30), mkTask(1, 0, 30)},
		Interns:     []models.User{mkUser(10, "aida")},
		Submissions: []models.Submission{mkSub(10, 1, models.SubmissionApproved)},
	}

	report := Evaluate(snap, day(5), DefaultPolicy())

	tasks := report.Interns[0].Tasks
	require.Equal(t, uint(1), tasks[0].TaskID)
	require.Equal(t, uint(2), tasks[1].TaskID)
	assert.Equal(t, TaskCompleted, tasks[0].Status)
	assert.Equal(t, TaskInProgress, tasks[1].Status)
}

func TestProgressPercentageBoundsAndRounding(t *testing.T) {
	snap := Snapshot{
		Internship: window(60),
		Tasks:      []models.Task{mkTask(1, 0, 30), mkTask(2, 1, 30), mkTask(3, 2, 30)},
		Interns:    []models.User{mkUser(10, "aida")},
		Submissions: []models.Submission{
			mkSub(10, 1, models.SubmissionApproved),
		},
	}

	report := Evaluate(snap, day(5), DefaultPolicy())
	// 1 of 3 completed = 33.33..., rounds to 33
	assert.Equal(t, 33, report.Interns[0].ProgressPercentage)
	assert.GreaterOrEqual(t, report.Interns[0].ProgressPercentage, 0)
	assert.LessOrEqual(t, report.Interns[0].ProgressPercentage, 100)
}

func TestNoTasksYieldsZeroProgressNotError(t *testing.T) {
	snap := Snapshot{
		Internship: window(60),
		Interns:    []models.User{mkUser(10, "aida")},
	}

	report := Evaluate(snap, day(5), DefaultPolicy())

	require.Len(t, report.Interns, 1)
	assert.Equal(t, 0, report.Interns[0].ProgressPercentage)
	assert.Equal(t, 0, report.Interns[0].TotalTasks)
	assert.Empty(t, report.Interns[0].Tasks)
	assert.Equal(t, OverallOnTrack, report.Interns[0].OverallStatus)
}

func TestOnTrackWhenProgressAboveThreshold(t *testing.T) {
	// 4 tasks, 3 completed, halfway through the internship: 75% progress is
	// above the 70% threshold, so the elapsed-time gap never comes into play.
	snap := Snapshot{
		Internship: window(20),
		Tasks: []models.Task{
			mkTask(1, 0, 20), mkTask(2, 1, 20), mkTask(3, 2, 20), mkTask(4, 3, 20),
		},
		Interns: []models.User{mkUser(10, "aida")},
		Submissions: []models.Submission{
			mkSub(10, 1, models.SubmissionApproved),
			mkSub(10, 2, models.SubmissionApproved),
			mkSub(10, 3, models.SubmissionApproved),
		},
	}

	report := Evaluate(snap, day(10), DefaultPolicy())

	assert.Equal(t, 75, report.Interns[0].ProgressPercentage)
	assert.Equal(t, OverallOnTrack, report.Interns[0].OverallStatus)
}

func TestAtRiskWhenElapsedOutpacesProgress(t *testing.T) {
	// no completions, nothing overdue yet, 50% of the window elapsed:
	// 0 < 70 and 50 > 0+20
	snap := Snapshot{
		Internship: window(20),
		Tasks:      []models.Task{mkTask(1, 0, 20)},
		Interns:    []models.User{mkUser(10, "aida")},
	}

	report := Evaluate(snap, day(10), DefaultPolicy())

	assert.Equal(t, OverallAtRisk, report.Interns[0].OverallStatus)
}

func TestBehindOverridesAtRisk(t *testing.T) {
	snap := Snapshot{
		Internship: window(20),
		Tasks:      []models.Task{mkTask(1, 0, 5)},
		Interns:    []models.User{mkUser(10, "aida")},
	}

	report := Evaluate(snap, day(10), DefaultPolicy())

	assert.Equal(t, OverallBehind, report.Interns[0].OverallStatus)
}

func TestInternSortingIsStableByStatusPriority(t *testing.T) {
	snap := Snapshot{
		Internship: window(20),
		Tasks:      []models.Task{mkTask(1, 0, 5), mkTask(2, 1, 20)},
		Interns: []models.User{
			mkUser(10, "ontrack-first"),
			mkUser(11, "behind-first"),
			mkUser(12, "ontrack-second"),
			mkUser(13, "behind-second"),
		},
		Submissions: []models.Submission{
			// on-track interns completed everything
			mkSub(10, 1, models.SubmissionApproved), mkSub(10, 2, models.SubmissionApproved),
			mkSub(12, 1, models.SubmissionApproved), mkSub(12, 2, models.SubmissionApproved),
			// behind interns missed task 1 entirely
		},
	}

	report := Evaluate(snap, day(10), DefaultPolicy())

	require.Len(t, report.Interns, 4)
	assert.Equal(t, uint(11), report.Interns[0].ID)
	assert.Equal(t, uint(13), report.Interns[1].ID)
	assert.Equal(t, uint(10), report.Interns[2].ID)
	assert.Equal(t, uint(12), report.Interns[3].ID)
}

func TestMissingDatesSubstituteNowAndFlag(t *testing.T) {
	snap := Snapshot{
		Internship: mkInternship(nil, nil),
		Tasks:      []models.Task{mkTask(1, 0, 7)},
		Interns:    []models.User{mkUser(10, "aida")},
	}

	report := Evaluate(snap, day(100), DefaultPolicy())

	assert.True(t, report.DatesAssumed)
	// start falls back to now, so the deadline is now+7d and nothing is overdue
	assert.Equal(t, TaskInProgress, report.Interns[0].Tasks[0].Status)
	assert.Equal(t, day(107), report.Interns[0].Tasks[0].Deadline)
}

func TestSummaryCountsAndAverage(t *testing.T) {
	snap := Snapshot{
		Internship: window(20),
		Tasks:      []models.Task{mkTask(1, 0, 5), mkTask(2, 1, 20)},
		Interns:    []models.User{mkUser(10, "done"), mkUser(11, "missed")},
		Submissions: []models.Submission{
			mkSub(10, 1, models.SubmissionApproved), mkSub(10, 2, models.SubmissionApproved),
		},
	}

	report := Evaluate(snap, day(10), DefaultPolicy())

	assert.Equal(t, 2, report.Summary.TotalInterns)
	assert.Equal(t, 1, report.Summary.OnTrack)
	assert.Equal(t, 1, report.Summary.Behind)
	assert.Equal(t, 0, report.Summary.AtRisk)
	// (100 + 0) / 2
	assert.Equal(t, 50, report.Summary.AverageProgress)
}

func TestEffectiveDeadline(t *testing.T) {
	task := mkTask(1, 0, 7)

	assert.Equal(t, day(7), EffectiveDeadline(start, task, nil))

	adj := &models.DeadlineAdjustment{UserID: 10, TaskID: 1, NewDeadlineOffset: 14}
	assert.Equal(t, day(14), EffectiveDeadline(start, task, adj))
}
