// Package root contains the root command for the application
package root

import (
	"github.com/fayland/go-authorizenet-cim/internal/config"
	"github.com/fayland/go-authorizenet-cim/internal/export"
	"github.com/fayland/go-authorizenet-cim/internal/logging"
	"github.com/fayland/go-authorizenet-cim/pkg/cim"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	// Payload is the YAML request payload file used by create/update commands.
	Payload string

	// Output is the output file for commands that export data.
	Output string

	// RefID is the optional merchant reference echoed back by the gateway.
	RefID string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig is the merged configuration, loaded in PersistentPreRun
	AppConfig *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "cim-cli",
		Short: "A CLI tool to manage Authorize.Net CIM customer profiles and transactions.",
		Long: `cim-cli manages customer profiles, payment profiles, shipping addresses
and profile transactions on the Authorize.Net Customer Information Manager
gateway. Credentials come from the config file or the CIM_LOGIN and
CIM_TRANSACTION_KEY environment variables.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to cim-cli!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			AppConfig = cfg

			if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
				Log.SetLevel(level)
			}

			export.SetLogger(logging.NewLogrusAdapterFromLogger(Log))
			export.SetDelimiter([]rune(cfg.Export.Delimiter)[0])
		},
	}

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Payload, "payload", "p", "", "YAML request payload file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.RefID, "ref-id", "", "Merchant reference ID echoed back by the gateway")
}

// NewClient builds a gateway client from the loaded configuration.
func NewClient() (*cim.Client, error) {
	return cim.NewClient(cim.Config{
		Login:          AppConfig.Gateway.Login,
		TransactionKey: AppConfig.Gateway.TransactionKey,
		TestMode:       AppConfig.Gateway.TestMode,
		Debug:          AppConfig.Gateway.Debug,
		Timeout:        AppConfig.Timeout(),
		Logger:         logging.NewLogrusAdapterFromLogger(Log),
	})
}
