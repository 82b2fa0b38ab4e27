package cmd

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "task-tracker.com/task-tracker/internal/configs"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
	model "task-tracker.com/task-tracker/pkg/models"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the demo user and demo tasks",
	Long:  "Creates a demo/demo account with one sample task per status",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)

		ctx := context.Background()

		passwordHash, err := services.NewPasswordHasher().Hash("demo")
		if err != nil {
			return err
		}

		user, err := userRepo.CreateUser(ctx, "demo", "demo@example.com", passwordHash)
		if err != nil {
			return err
		}
		log.Println("created demo user demo:demo")

		demoTasks := []struct {
			title       string
			description string
			status      model.TaskStatus
		}{
			{"Prepare presentation", "Put the slides together for the meeting.", model.StatusToDo},
			{"Call the client", "Confirm the delivery details.", model.StatusInProgress},
			{"Review documentation", "Check the state of the transport docs.", model.StatusCompleted},
			{"Send invoices", "Billing for last month.", model.StatusStandBy},
		}

		for _, seed := range demoTasks {
			if _, err := taskRepo.CreateTask(ctx, user.ID, seed.title, seed.description, seed.status); err != nil {
				return err
			}
		}
		log.Printf("created %d demo tasks", len(demoTasks))

		log.Println("the API can now be queried with a token for user 'demo' and password 'demo'")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
