package tasks

// DefineTasks registers all available tasks
func DefineTasks() {
	// Register lifecycle sweeps
	RegisterHandler(SweepOverdueSchedulesTask.TaskID(), SweepOverdueSchedulesTask.HandleExecution)
	RegisterHandler(ExpireQuotesTask.TaskID(), ExpireQuotesTask.HandleExecution)

	// Register notification tasks
	RegisterHandler(PaymentReminderTask.TaskID(), PaymentReminderTask.HandleExecution)
}
