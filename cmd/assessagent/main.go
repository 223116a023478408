package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/assessagent/backend/internal/assess"
	"github.com/assessagent/backend/internal/handler"
	"github.com/assessagent/backend/internal/llm"
	"github.com/assessagent/backend/internal/llm/prompts"
	"github.com/assessagent/backend/internal/model"
	"github.com/assessagent/backend/internal/pdf"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "assessagent",
		Short: "Assessment generation and evaluation backend powered by LLMs",
	}

	serve := serveCmd()
	root.AddCommand(serve)

	// Make "serve" the default when no subcommand is given.
	root.RunE = serve.RunE

	// Register serve flags on root so bare `assessagent --addr ...` still works.
	root.Flags().AddFlagSet(serve.Flags())

	return root
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP assessment server",
		RunE:  runServe,
	}
	f := cmd.Flags()
	f.StringP("addr", "a", ":8080", "HTTP listen address")
	f.String("api-key", "", "API key for the completion service (or set ASSESSAGENT_API_KEY)")
	f.String("llm-url", "", "OpenAI-compatible API base URL (empty = provider default)")
	f.String("llm-model", "gpt-4o-mini", "LLM model name")
	f.StringSlice("cors-origins", []string{"*"}, "Allowed CORS origins")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
	return cmd
}

func setupLogging(cmd *cobra.Command) {
	v := viperForCmd(cmd)

	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
}

// viperForCmd binds a command's flags and environment to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("ASSESSAGENT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("assessagent")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/assessagent")
	v.AddConfigPath("/etc/assessagent")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Pick up a local .env before viper reads the environment.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded .env file")
	}

	setupLogging(cmd)
	v := viperForCmd(cmd)

	apiKey := v.GetString("api-key")
	if apiKey == "" {
		return fmt.Errorf("completion API key is required: set --api-key flag or ASSESSAGENT_API_KEY env var")
	}

	if err := prompts.Load(); err != nil {
		return fmt.Errorf("load prompt templates: %w", err)
	}

	llmClient := llm.New(v.GetString("llm-url"), apiKey, v.GetString("llm-model"))
	if err := llmClient.Ping(context.Background()); err != nil {
		return fmt.Errorf("LLM health check: %w", err)
	}
	slog.Info("LLM endpoint OK", "url", v.GetString("llm-url"), "model", v.GetString("llm-model"))

	cfg := model.ServiceConfig{
		Addr:        v.GetString("addr"),
		LLMURL:      v.GetString("llm-url"),
		LLMModel:    v.GetString("llm-model"),
		CORSOrigins: v.GetStringSlice("cors-origins"),
	}

	h := handler.New(assess.New(llmClient), pdf.FileExtractor{})

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	h.Routes(r)

	slog.Info("starting server",
		"addr", cfg.Addr,
		"model", cfg.LLMModel,
		"llm_url", cfg.LLMURL,
		"cors_origins", cfg.CORSOrigins,
	)
	return http.ListenAndServe(cfg.Addr, r)
}
