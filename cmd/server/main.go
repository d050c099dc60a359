package main

import (
	"net/http"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/marcelfahle/pidro-backend-sub001/internal/server"
)

func main() {
	v := viper.New()
	v.SetEnvPrefix("pidro")
	v.AutomaticEnv()
	v.SetDefault("addr", ":8080")
	v.SetDefault("seed", 0)

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	addr := v.GetString("addr")
	seed := v.GetInt64("seed")

	mux := http.NewServeMux()
	mux.Handle("/ws", server.NewHandler(logger, seed))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	logger.Info("listening", zap.String("addr", addr), zap.Int64("seed", seed))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
