package cmd

import (
	"io"
	"log"
	"os"
	"yatube/config"
	"yatube/db"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

// RootCmd runs the web server when no sub-command is given
var RootCmd = &cobra.Command{
	Use:               "yatube",
	Short:             "Yatube blogging platform",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) { _ = db.Close() },
	RunE:              runServe,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup configures logging and opens the database for every command
func setup(cmd *cobra.Command, args []string) error {
	if config.LOG_FILE != "" {
		out := io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   config.LOG_FILE,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
		log.SetOutput(out)
		gin.DefaultWriter = out
		gin.DefaultErrorWriter = out
	}
	if err := db.Init(); err != nil {
		return err
	}
	return models.Init()
}
