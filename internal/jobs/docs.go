// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OrderDispatchJob assigns queued orders to the first online delivery person
// without a delivery, the same way a merchant's "Choose Delivery Person"
// does. It runs on DISPATCH_SCHEDULE, e.g. "@every 10s", and is only
// started when that variable is set.
//
// # Usage
//
//	job := jobs.NewOrderDispatchJob(assignOrderHandler, "@every 30s", logger)
//	jobManager := jobs.NewJobManager(job)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// An empty queue and a roster with nobody free are expected and end the run
// quietly. Anything else is logged at error level; the next tick tries again.
package jobs
