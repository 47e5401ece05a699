package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/transcribe/internal/audio"
	"github.com/nguyentantai21042004/transcribe/internal/config"
	"github.com/nguyentantai21042004/transcribe/internal/logger"
	"github.com/nguyentantai21042004/transcribe/internal/model"
	"github.com/nguyentantai21042004/transcribe/internal/processor"
	"github.com/nguyentantai21042004/transcribe/internal/resolver"
	"github.com/nguyentantai21042004/transcribe/internal/transcriber"
	"github.com/nguyentantai21042004/transcribe/pkg/executor"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.yaml"

var errUsage = errors.New("missing audio file argument")

type options struct {
	configPath     string
	configExplicit bool
	logLevel       string
}

func newRootCommand() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "transcribe <audio-file-or-glob>",
		Short: "Transcribe an audio file into a timestamped text transcript",
		Long: "Transcribe an audio file with the Whisper base model (Chinese) and write\n" +
			"<name>.txt next to it. A glob pattern selects its first match.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configExplicit = cmd.Flags().Changed("config")
			return run(cmd, opts, args)
		},
	}

	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "Configuration file path")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level override: debug, info, warn, error")

	return rootCmd
}

func run(cmd *cobra.Command, opts options, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if len(args) > 1 {
		log.Warn(ctx, "Ignoring %d extra argument(s); only %s is transcribed", len(args)-1, args[0])
	}

	// Initialize dependencies
	exec := executor.New()
	cache := model.New(cfg.Whisper.ModelsDir, cfg.Whisper.DownloadURL, nil, log)
	conv := audio.New(cfg.FFmpeg.BinaryPath, exec, log)

	tr, err := transcriber.New(cfg, cache, conv, exec, log)
	if err != nil {
		return fmt.Errorf("create transcriber: %w", err)
	}
	defer func() {
		if err := tr.Close(); err != nil {
			log.Warn(ctx, "Failed to release model: %v", err)
		}
	}()

	proc := processor.New(tr, log)
	if _, err := proc.Process(ctx, args[0]); err != nil {
		// A missing input is reported by the processor and is not a failed run.
		if errors.Is(err, resolver.ErrNotFound) {
			return nil
		}
		return err
	}

	return nil
}

func loadConfig(opts options) (*config.Config, error) {
	if opts.configExplicit {
		return config.Load(opts.configPath)
	}
	return config.LoadOptional(opts.configPath)
}
