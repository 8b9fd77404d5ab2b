package main

import (
	"context"
	"log"
	"os"

	"outfitapi/dbhelper"
	"outfitapi/tasks"

	"github.com/hibiken/asynq"
)

func runScheduler(redis asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redis, &asynq.SchedulerOpts{
		LogLevel: asynq.InfoLevel,
	})

	sweep, err := tasks.NewNormalizeClosetTask("")
	if err != nil {
		log.Fatalf("Failed to build closet sweep task: %v", err)
	}
	entries := []struct {
		cron string
		task *asynq.Task
		desc string
	}{
		{
			cron: "30 3 * * *", // 03:30 daily
			task: sweep,
			desc: "Closet normalization sweep",
		},
	}

	for _, entry := range entries {
		entryID, err := scheduler.Register(entry.cron, entry.task, asynq.Queue(tasks.QueueCloset))
		if err != nil {
			log.Fatalf("Failed to register task '%s': %v", entry.desc, err)
		}
		log.Printf("Registered task '%s' with ID: %s, cron: %s", entry.desc, entryID, entry.cron)
	}

	log.Println("Starting scheduler...")
	if err := scheduler.Run(); err != nil {
		log.Fatalf("Scheduler failed: %v", err)
	}
}

func main() {
	redis := asynq.RedisClientOpt{Addr: os.Getenv("ASYNC_BROKER_ADDRESS")}
	srv := asynq.NewServer(redis, asynq.Config{
		Concurrency: 4,
		Queues: map[string]int{
			tasks.QueueCloset: 1,
		},
	})

	db := dbhelper.SetupDB()
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeClosetNormalize, func(ctx context.Context, t *asynq.Task) error {
		return tasks.HandleNormalizeClosetTask(ctx, t, db)
	})

	go runScheduler(redis)
	if err := srv.Run(mux); err != nil {
		log.Fatal(err)
	}
}
