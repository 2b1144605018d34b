package utils

import (
	"internhub/config"
	"internhub/database"
	"internhub/models"
	"internhub/progress"
	"log"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REMINDER-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

type taskKey struct {
	userID uint
	taskID uint
}

// RunDeadlineReminders walks every published internship and notifies interns
// whose unsubmitted tasks are due soon or went overdue within the last day.
func RunDeadlineReminders() {
	db := database.Database.Db
	currentTime := time.Now()
	today := now.With(currentTime).BeginningOfDay()
	window := time.Duration(config.AppConfig.ReminderWindowHours) * time.Hour

	var internships []models.Internship
	if err := db.Where("is_published = ? AND is_deleted = ? AND learning_path_id IS NOT NULL AND start_date IS NOT NULL", true, false).
		Find(&internships).Error; err != nil {
		logScheduler("Error fetching internships: " + err.Error())
		return
	}

	for _, internship := range internships {
		var tasks []models.Task
		if err := db.Where("learning_path_id = ? AND is_deleted = ?", *internship.LearningPathID, false).
			Order("order_index asc, id asc").Find(&tasks).Error; err != nil || len(tasks) == 0 {
			continue
		}

		var applications []models.Application
		if err := db.Preload("User").
			Where("internship_id = ? AND status = ? AND is_deleted = ?", internship.ID, models.ApplicationAccepted, false).
			Find(&applications).Error; err != nil {
			logScheduler("Error fetching applications: " + err.Error())
			continue
		}
		if len(applications) == 0 {
			continue
		}

		userIDs := make([]uint, 0, len(applications))
		for _, app := range applications {
			userIDs = append(userIDs, app.UserID)
		}

		submitted := make(map[taskKey]bool)
		var submissions []models.Submission
		db.Where("user_id IN ? AND is_deleted = ?", userIDs, false).Find(&submissions)
		for _, s := range submissions {
			submitted[taskKey{s.UserID, s.TaskID}] = true
		}

		adjustments := make(map[taskKey]models.DeadlineAdjustment)
		var adjs []models.DeadlineAdjustment
		db.Where("user_id IN ? AND is_deleted = ?", userIDs, false).Find(&adjs)
		for _, a := range adjs {
			adjustments[taskKey{a.UserID, a.TaskID}] = a
		}

		for _, app := range applications {
			for _, task := range tasks {
				if submitted[taskKey{app.UserID, task.ID}] {
					continue
				}

				var adj *models.DeadlineAdjustment
				if a, ok := adjustments[taskKey{app.UserID, task.ID}]; ok {
					adj = &a
				}
				deadline := progress.EffectiveDeadline(*internship.StartDate, task, adj)

				switch {
				case deadline.Before(today) && !deadline.Before(today.AddDate(0, 0, -1)):
					// went overdue yesterday, flag it once
					if app.User.Email != "" {
						SendDeadlineReminderEmail(app.User.Email, app.User.Name, task.Title, deadline, true)
					}
					PostWebhookEvent("task.overdue", map[string]interface{}{
						"user_id":       app.UserID,
						"task_id":       task.ID,
						"internship_id": internship.ID,
						"deadline":      deadline.Format(time.RFC3339),
					})
				case deadline.After(currentTime) && deadline.Sub(currentTime) <= window:
					if app.User.Email != "" {
						SendDeadlineReminderEmail(app.User.Email, app.User.Name, task.Title, deadline, false)
					}
				}
			}
		}
	}

	logScheduler("Deadline reminder pass completed")
}

// InitializeReminderScheduler starts the daily deadline reminder job
func InitializeReminderScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.ReminderCron, RunDeadlineReminders); err != nil {
		logScheduler("Invalid REMINDER_CRON expression, scheduler disabled: " + err.Error())
		return c
	}

	c.Start()
	logScheduler("Deadline reminder scheduler started with schedule " + config.AppConfig.ReminderCron)
	return c
}
