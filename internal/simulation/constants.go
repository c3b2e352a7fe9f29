package simulation

// Log messages
const (
	LogMsgSaveLoaded     = "Save loaded"
	LogMsgDayComplete    = "Day complete"
	LogMsgActionFailed   = "Player action failed"
	LogMsgReturnToTitle  = "Returned to title"
	LogMsgDayFailed      = "Simulated day failed"
	LogMsgRunnerFinished = "Simulation finished"
)

// DayJobName identifies the day job to the scheduler
const DayJobName = "simulated_day"
