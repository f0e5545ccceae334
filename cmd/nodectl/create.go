package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openchami/nodectl/internal/client"
	"github.com/openchami/nodectl/internal/config"
	"github.com/openchami/nodectl/internal/ingest"
)

func newCreateCmd(cfg *config.Config) *cobra.Command {
	var (
		data         string
		file         string
		csvFile      string
		csvEncoding  string
		csvDelimiter string
		concurrency  int
		strict       bool
	)

	cmd := &cobra.Command{
		Use:   "create <objectType>",
		Short: "Create object(s) on the remote API",
		Long: "Create one or more objects of the given type. Input is a JSON object,\n" +
			"a JSON array of objects, or a CSV inventory file. Array elements are\n" +
			"submitted as independent requests under a concurrency cap; one failing\n" +
			"item never aborts the rest of the batch.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireConfig(cfg); err != nil {
				return err
			}

			batch, err := loadBatch(data, file, csvFile, csvEncoding, csvDelimiter)
			if err != nil {
				return err
			}

			sender := client.NewSender(cfg.BaseURL, cfg.Token, cfg.Timeout)
			engine, err := ingest.NewEngine(sender, ingest.Options{
				ObjectType:  args[0],
				SchemaDir:   cfg.SchemaDir,
				Concurrency: concurrency,
			})
			if err != nil {
				return err
			}

			results := engine.Run(cmd.Context(), batch)
			for _, r := range results {
				if r.Status == ingest.StatusSucceeded {
					echoJSON(cmd, r.Response)
					continue
				}
				doc, _ := json.Marshal(r.Document)
				fmt.Fprintf(cmd.ErrOrStderr(), "Error creating object: %s\n", doc)
				fmt.Fprintln(cmd.ErrOrStderr(), r.String())
			}

			succeeded, rejected, failed := ingest.Summarize(results)
			fmt.Fprintf(cmd.ErrOrStderr(), "%d created, %d rejected, %d failed\n", succeeded, rejected, failed)

			if strict && rejected+failed > 0 {
				return fmt.Errorf("%d of %d objects were not created", rejected+failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "JSON string representing the object(s) to create")
	cmd.Flags().StringVar(&file, "file", "", "File containing JSON object(s) to create")
	cmd.Flags().StringVar(&csvFile, "csv", "", "CSV inventory file to create objects from")
	cmd.Flags().StringVar(&csvEncoding, "csv-encoding", "utf-8", "CSV file encoding (utf-8 or windows-1251)")
	cmd.Flags().StringVar(&csvDelimiter, "csv-delimiter", ",", "CSV field delimiter")
	cmd.Flags().IntVar(&concurrency, "concurrency", cfg.Concurrency, "Maximum number of in-flight requests")
	cmd.Flags().BoolVar(&strict, "strict", cfg.Strict, "Exit non-zero if any object fails to create")

	return cmd
}

// loadBatch picks the single configured input source and normalizes it to a
// batch of documents.
func loadBatch(data, file, csvFile, csvEncoding, csvDelimiter string) ([]ingest.Document, error) {
	sources := 0
	for _, s := range []string{data, file, csvFile} {
		if s != "" {
			sources++
		}
	}
	if sources == 0 {
		return nil, errors.New("no data provided for creation (use --data, --file or --csv)")
	}
	if sources > 1 {
		return nil, errors.New("only one of --data, --file and --csv may be given")
	}

	switch {
	case data != "":
		return ingest.ParseBatch([]byte(data))
	case file != "":
		return ingest.LoadBatchFile(file)
	default:
		return ingest.LoadBatchCSV(csvFile, ingest.CSVOptions{
			Encoding:  csvEncoding,
			Delimiter: csvDelimiter,
		})
	}
}

// echoJSON prints a decoded JSON value back out on stdout, one line per
// object, mirroring what the server answered.
func echoJSON(cmd *cobra.Command, v interface{}) {
	if v == nil {
		return
	}
	out, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
}
