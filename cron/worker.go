package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"handyhub/config"
	"handyhub/database/repository/bookingrepo"
	"handyhub/models"

	"github.com/hibiken/asynq"
)

const TypeBookingFollowUp = "booking:followup"

// FollowUpDelay is how long after submission the follow-up fires; the
// storefront promises contact within 15 minutes of booking.
const FollowUpDelay = 15 * time.Minute

// FollowUpPayload identifies the booking to follow up on.
type FollowUpPayload struct {
	BookingID string `json:"bookingId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}
}

// NewTaskClient returns the asynq client used to enqueue follow-up tasks.
func NewTaskClient() *asynq.Client {
	return asynq.NewClient(redisOpts())
}

// EnqueueFollowUp schedules the post-booking follow-up for a new booking.
func EnqueueFollowUp(client *asynq.Client, bookingID string) error {
	payload, err := json.Marshal(FollowUpPayload{BookingID: bookingID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeBookingFollowUp, payload)
	_, err = client.Enqueue(task, asynq.ProcessIn(FollowUpDelay), asynq.MaxRetry(3))
	return err
}

// InitFollowUpWorker runs the async worker in background.
func InitFollowUpWorker(repo bookingrepo.BookingRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingFollowUp, handleFollowUpTask(repo))

	// Start async worker with retry logic
	go func() {
		log.Println("[FollowUpWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[FollowUpWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[FollowUpWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleFollowUpTask marks a still-pending booking confirmed once the
// follow-up contact window has passed.
func handleFollowUpTask(repo bookingrepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p FollowUpPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[FollowUpHandler] invalid payload: %v", err)
			return err
		}

		if err := repo.UpdateStatus(ctx, p.BookingID, models.StatusConfirmed); err != nil {
			log.Printf("[FollowUpHandler] failed to confirm booking %s: %v", p.BookingID, err)
			return err
		}
		log.Printf("[FollowUpHandler] booking %s confirmed", p.BookingID)
		return nil
	}
}
