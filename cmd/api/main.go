package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"bank-user-service/cmd/api/app"
	"bank-user-service/cmd/api/server"
)

func main() {
	application, err := app.New()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	ctx, stop := server.WithSignal(context.Background())
	defer stop()

	if err := application.Run(ctx); err != nil {
		application.Logger.Fatal("application exited with error", zap.Error(err))
	}
}
