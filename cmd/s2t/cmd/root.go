package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"speech2text/cmd/s2t/cmd/serve"
	"speech2text/cmd/s2t/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "s2t",
	Short: "A speech-to-text microservice with transcript persistence",
	Long: `A speech-to-text microservice.
- Accepts audio uploads over HTTP and forwards them to a transcription provider
- Labels completed transcripts with a sentiment classification
- Persists every attempt, success or failure, to a relational store`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
