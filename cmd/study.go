package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdeck/internal/api"
	"github.com/abhisek/prepdeck/internal/app"
	"github.com/abhisek/prepdeck/internal/config"
	"github.com/abhisek/prepdeck/internal/logging"
	"github.com/abhisek/prepdeck/internal/store"
)

const (
	minDurationMins = 5
	maxDurationMins = 120
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Start a timed study session followed by a mock test",
	RunE: func(cmd *cobra.Command, args []string) error {
		topicID, _ := cmd.Flags().GetInt("topic")
		durationMins, _ := cmd.Flags().GetInt("duration")

		if topicID <= 0 {
			return fmt.Errorf("--topic must be a positive topic id")
		}
		if durationMins < minDurationMins || durationMins > maxDurationMins {
			return fmt.Errorf("--duration must be between %d and %d minutes", minDurationMins, maxDurationMins)
		}

		configFile, _ := cmd.Flags().GetString("config")
		loader, err := config.NewLoader(configFile)
		if err != nil {
			return fmt.Errorf("create config loader: %w", err)
		}
		cfg, err := loader.Load()
		if err != nil {
			return err
		}

		logPath, err := logging.DefaultLogPath()
		if err != nil {
			return fmt.Errorf("resolve log path: %w", err)
		}
		log, logFile, err := logging.Setup(cfg.Log.Level, logPath)
		if err != nil {
			return err
		}
		defer logFile.Close()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		client := api.New(cfg.Server.BaseURL, cfg.Server.Timeout())
		defer client.Close()

		log.Info().
			Int("topic_id", topicID).
			Int("duration_mins", durationMins).
			Str("base_url", cfg.Server.BaseURL).
			Msg("starting study run")

		return app.Run(app.Options{
			Service:       client,
			SeenRepo:      st.SeenRepo(),
			EventRepo:     st.EventRepo(),
			Logger:        log,
			TopicID:       topicID,
			DurationMins:  durationMins,
			PollInterval:  cfg.Study.PollInterval(),
			QuestionCount: cfg.Study.QuestionCount,
		})
	},
}

func init() {
	studyCmd.Flags().IntP("topic", "t", 0, "Topic id to study (required)")
	studyCmd.Flags().IntP("duration", "d", 45, "Planned session length in minutes")
	_ = studyCmd.MarkFlagRequired("topic")
}
