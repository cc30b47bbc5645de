package commands

import (
	"context"
	"fmt"
	"strconv"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/kimberly-brown/bach-propagation/pkg/cli"
	"github.com/kimberly-brown/bach-propagation/pkg/corpus"
	"github.com/kimberly-brown/bach-propagation/pkg/datastore"
	"github.com/kimberly-brown/bach-propagation/pkg/pipeline"
)

var (
	preprocessConfigFile string
	preprocessSaveName   string
	preprocessStoreDir   string
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Tokenize a MIDI corpus into a training dataset",
	Long: `Preprocess runs the full pipeline described by a YAML config:
load the corpus, transpose every piece to C, sample it onto the time
grid, and assemble the aligned train/test sequences.

With --save the dataset is persisted under the given name so it can be
inspected later with 'bachprop dataset'.`,
	RunE: runPreprocess,
}

func init() {
	preprocessCmd.Flags().StringVarP(&preprocessConfigFile, "file", "f", "", "pipeline config file (required)")
	preprocessCmd.Flags().StringVar(&preprocessSaveName, "save", "", "persist the dataset under this name")
	preprocessCmd.Flags().StringVar(&preprocessStoreDir, "store-dir", "", "dataset store directory (required with --save)")
	preprocessCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(preprocessCmd)
}

func runPreprocess(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := pipeline.LoadConfig(preprocessConfigFile)
	if err != nil {
		return err
	}
	if preprocessSaveName != "" && preprocessStoreDir == "" {
		return fmt.Errorf("--save requires --store-dir")
	}

	src, err := newSource(ctx, cfg)
	if err != nil {
		return err
	}
	res, err := pipeline.Run(ctx, cfg, src)
	if err != nil {
		return err
	}

	d := res.Dataset
	styles := cli.NewStyles(cli.DefaultTheme)
	fmt.Print(styles.RenderSummary("Preprocessing complete", []cli.Row{
		{Label: "pieces", Value: strconv.Itoa(res.Pieces)},
		{Label: "skipped", Value: strconv.Itoa(res.Skipped)},
		{Label: "train inputs", Value: strconv.Itoa(len(d.TrainInputs))},
		{Label: "train labels", Value: strconv.Itoa(len(d.TrainLabels))},
		{Label: "test inputs", Value: strconv.Itoa(len(d.TestInputs))},
		{Label: "test labels", Value: strconv.Itoa(len(d.TestLabels))},
		{Label: "vocabulary", Value: strconv.Itoa(d.Vocab.Size())},
	}))

	if preprocessSaveName == "" {
		return nil
	}
	store, err := datastore.Open(datastore.Options{Dir: preprocessStoreDir})
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Save(ctx, preprocessSaveName, d, res.Pieces); err != nil {
		return err
	}
	fmt.Printf("saved dataset %q to %s\n", preprocessSaveName, preprocessStoreDir)
	return nil
}

// newSource builds the corpus source the config points at, an S3 bucket
// or a local directory.
func newSource(ctx context.Context, cfg *pipeline.Config) (corpus.Source, error) {
	if cfg.S3 != nil {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return corpus.NewS3(s3.NewFromConfig(awsCfg), cfg.S3.Bucket, cfg.S3.Prefix), nil
	}
	return corpus.NewDir(cfg.CorpusRoot)
}
