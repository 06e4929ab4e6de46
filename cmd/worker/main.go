package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"performup_api/internal/models"
	"performup_api/internal/services"
	"performup_api/internal/tasks"
)

const tickInterval = 5 * time.Minute

// taskLockTTL bounds how long a run lock can stick around if a worker dies
const taskLockTTL = 10 * time.Minute

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize Database
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := services.InitDB(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Initialize Redis for run locks
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	cache, err := services.NewRedisCache(redisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer cache.Close()

	// Register task handlers
	tasks.DefineTasks()

	log.Println("Worker started. Waiting for next tick...")

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down worker...")
		cancel()
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	// Run once immediately, then tick
	processScheduledTasks(ctx, db, cache)

	for {
		select {
		case <-ticker.C:
			processScheduledTasks(ctx, db, cache)
		case <-ctx.Done():
			return
		}
	}
}

func processScheduledTasks(ctx context.Context, db *gorm.DB, cache *services.RedisCache) {
	now := time.Now()

	var pendingTasks []models.ScheduledTask
	if err := db.Where("status = ? AND due <= ?", models.ScheduledTaskStatusActive, now).Find(&pendingTasks).Error; err != nil {
		log.Printf("Error fetching pending tasks: %v", err)
		return
	}

	if len(pendingTasks) == 0 {
		return
	}

	log.Printf("Found %d pending tasks.", len(pendingTasks))

	for _, task := range pendingTasks {
		if ctx.Err() != nil {
			return
		}

		executeTask(ctx, db, cache, task)
	}
}

func executeTask(ctx context.Context, db *gorm.DB, cache *services.RedisCache, task models.ScheduledTask) {
	// Take the run lock so overlapping workers don't double-run a task
	lockKey := "worker:lock:scheduled_task:" + task.TaskName
	acquired, err := cache.SetNX(ctx, lockKey, time.Now().Unix(), taskLockTTL)
	if err != nil {
		log.Printf("Error acquiring lock for task %s: %v", task.TaskName, err)
		return
	}
	if !acquired {
		log.Printf("Task %s is locked by another worker, skipping", task.TaskName)
		return
	}
	defer func() {
		if err := cache.Delete(ctx, lockKey); err != nil {
			log.Printf("Error releasing lock for task %s: %v", task.TaskName, err)
		}
	}()

	log.Printf("Processing task: %s (ID: %d)", task.TaskName, task.ID)

	handler, found := tasks.GetHandler(task.TaskName)
	if !found {
		log.Printf("Task handler not found for: %s. Marking as failure.", task.TaskName)

		now := time.Now()
		db.Model(&task).Updates(map[string]interface{}{
			"status":   models.ScheduledTaskStatusFailure,
			"last_run": &now,
		})

		history := models.ScheduledTaskHistory{
			ScheduledTaskID: task.ID,
			TaskName:        task.TaskName,
			RunAt:           now,
			Status:          "handler_not_found",
			AttemptNumber:   1,
			Arguments:       task.Arguments,
			Result:          map[string]interface{}{"error": "Handler not found"},
		}
		db.Create(&history)
		return
	}

	var lastErr error
	maxAttempt := task.MaxAttempt
	if maxAttempt < 1 {
		maxAttempt = 1
	}

	for attempt := 1; attempt <= maxAttempt; attempt++ {
		startTime := time.Now()
		result, err := handler(ctx, db, task)
		runtimeMs := int(time.Since(startTime).Milliseconds())

		status := "success"
		resultData := result
		if err != nil {
			status = "failure"
			resultData = map[string]interface{}{"error": err.Error()}
			log.Printf("Task %s attempt %d/%d failed: %v", task.TaskName, attempt, maxAttempt, err)
		}

		history := models.ScheduledTaskHistory{
			ScheduledTaskID: task.ID,
			TaskName:        task.TaskName,
			RunAt:           startTime,
			Runtime:         runtimeMs,
			Status:          status,
			AttemptNumber:   attempt,
			Arguments:       task.Arguments,
			Result:          resultData,
		}
		db.Create(&history)

		taskUpdates := map[string]interface{}{
			"last_run": &startTime,
		}

		lastErr = err
		if err == nil {
			log.Printf("Task %s completed successfully.", task.TaskName)

			switch task.TaskType {
			case models.ScheduledTaskTypeOneTime:
				taskUpdates["status"] = models.ScheduledTaskStatusDone
			case models.ScheduledTaskTypeRecurring:
				nextDue := task.NextDue()
				// keep the task active only if the rule yields a future run
				if nextDue.After(task.Due) {
					taskUpdates["status"] = models.ScheduledTaskStatusActive
					taskUpdates["due"] = nextDue
				} else {
					taskUpdates["status"] = models.ScheduledTaskStatusDone
				}
			}
			db.Model(&task).Updates(taskUpdates)
			return
		}

		if attempt == maxAttempt {
			taskUpdates["status"] = models.ScheduledTaskStatusFailure
			db.Model(&task).Updates(taskUpdates)
		}
	}

	if lastErr != nil {
		log.Printf("Task %s exhausted %d attempts, marked as failure", task.TaskName, maxAttempt)
	}
}
