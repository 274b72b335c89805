package cmd

import (
	"log"
	"strings"
	"yatube/config"
	"yatube/routes"
	"yatube/storage"
	"yatube/utils"

	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const defaultSessionKey = "this is a long key"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
		if config.SESSION_KEY == defaultSessionKey {
			// sessions won't survive a restart, but nobody can forge them either
			log.Printf("SESSION_KEY is not set, using a random one")
			config.SESSION_KEY = utils.RandSecretBase62(32)
		}
	}
	if err := storage.Init(); err != nil {
		return err
	}
	router, err := routes.New(nil)
	if err != nil {
		return err
	}
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Printf("Server stopped: %v", err)
	return err
}
