package main

import (
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/joho/godotenv"

	"github.com/centavo/centavo-api/internal/container"
	"github.com/centavo/centavo-api/internal/reconciler"
	"github.com/centavo/centavo-api/internal/router"
)

func main() {
	_ = godotenv.Load()

	c := container.New()
	defer c.Publisher.Close()

	r := router.New(router.RouterConfig{
		UserHandler:        c.UserContainer.Handler,
		CategoryHandler:    c.CategoryContainer.Handler,
		TransactionHandler: c.TransactionContainer.Handler,
		BudgetHandler:      c.BudgetContainer.Handler,
		BillHandler:        c.BillContainer.Handler,
		SavingsGoalHandler: c.SavingsGoalContainer.Handler,
		DashboardHandler:   c.DashboardContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.New(r).ProxyWithContext)
		return
	}

	schedule := os.Getenv("SYNC_CRON")
	if schedule == "" {
		schedule = reconciler.DefaultSchedule
	}
	if err := c.Reconciler.Start(schedule); err != nil {
		log.Fatalf("failed to start reconciler: %v", err)
	}
	defer c.Reconciler.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
