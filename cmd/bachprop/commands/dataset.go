package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kimberly-brown/bach-propagation/pkg/cli"
	"github.com/kimberly-brown/bach-propagation/pkg/datastore"
)

var (
	datasetStoreDir string
	datasetOutput   string
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Inspect datasets saved by preprocess",
}

var datasetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved datasets",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()
		metas, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		return cli.Output(metas, cli.OutputOptions{Format: cli.OutputFormat(datasetOutput)})
	},
}

var datasetShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved dataset's summary and sample tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()
		d, meta, err := store.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		// Decode a short prefix of the training stream for eyeballing.
		n := 16
		if len(d.TrainInputs) < n {
			n = len(d.TrainInputs)
		}
		preview := make([]string, n)
		for i := 0; i < n; i++ {
			preview[i] = d.Vocab.Token(d.TrainInputs[i])
		}

		out := struct {
			Meta     *datastore.Meta `yaml:"meta" json:"meta"`
			Starters int             `yaml:"starters" json:"starters"`
			Preview  []string        `yaml:"preview" json:"preview"`
		}{meta, len(d.Starters), preview}
		return cli.Output(out, cli.OutputOptions{Format: cli.OutputFormat(datasetOutput)})
	},
}

var datasetDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted dataset %q\n", args[0])
		return nil
	},
}

func openStore() (*datastore.Store, error) {
	if datasetStoreDir == "" {
		return nil, fmt.Errorf("--store-dir is required")
	}
	return datastore.Open(datastore.Options{Dir: datasetStoreDir})
}

func init() {
	datasetCmd.PersistentFlags().StringVar(&datasetStoreDir, "store-dir", "", "dataset store directory")
	datasetCmd.PersistentFlags().StringVarP(&datasetOutput, "output", "o", "yaml", "output format (yaml, json)")
	datasetCmd.AddCommand(datasetListCmd, datasetShowCmd, datasetDeleteCmd)
	rootCmd.AddCommand(datasetCmd)
}
