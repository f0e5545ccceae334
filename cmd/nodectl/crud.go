package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/openchami/nodectl/internal/client"
	"github.com/openchami/nodectl/internal/config"
	"github.com/openchami/nodectl/internal/ingest"
	"github.com/openchami/nodectl/internal/schema"
)

func newGetCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "get <objectType> [id]",
		Short: "Retrieve object(s) from the remote API",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireConfig(cfg); err != nil {
				return err
			}
			id := ""
			if len(args) == 2 {
				id = args[1]
			}
			sender := client.NewSender(cfg.BaseURL, cfg.Token, cfg.Timeout)
			resp, err := sender.Do(cmd.Context(), http.MethodGet, args[0], id, nil)
			if err != nil {
				return err
			}
			echoJSON(cmd, resp.Body)
			return nil
		},
	}
}

func newUpdateCmd(cfg *config.Config) *cobra.Command {
	var (
		data string
		file string
	)

	cmd := &cobra.Command{
		Use:   "update <objectType> <id>",
		Short: "Update an object on the remote API",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireConfig(cfg); err != nil {
				return err
			}
			doc, err := loadSingleDocument(data, file)
			if err != nil {
				return err
			}
			if err := schema.Validate(cfg.SchemaDir, args[0], doc); err != nil {
				return err
			}
			sender := client.NewSender(cfg.BaseURL, cfg.Token, cfg.Timeout)
			resp, err := sender.Do(cmd.Context(), http.MethodPut, args[0], args[1], doc)
			if err != nil {
				return err
			}
			echoJSON(cmd, resp.Body)
			return nil
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "JSON string representing the object to update")
	cmd.Flags().StringVar(&file, "file", "", "File containing JSON object to update")

	return cmd
}

func newDeleteCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <objectType> <id>",
		Short: "Delete an object from the remote API",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireConfig(cfg); err != nil {
				return err
			}
			sender := client.NewSender(cfg.BaseURL, cfg.Token, cfg.Timeout)
			if _, err := sender.Do(cmd.Context(), http.MethodDelete, args[0], args[1], nil); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s with ID %s\n", args[0], args[1])
			return nil
		},
	}
}

// loadSingleDocument reads exactly one object from --data or --file.
func loadSingleDocument(data, file string) (ingest.Document, error) {
	var (
		batch []ingest.Document
		err   error
	)
	switch {
	case data != "" && file != "":
		return nil, errors.New("only one of --data and --file may be given")
	case data != "":
		batch, err = ingest.ParseBatch([]byte(data))
	case file != "":
		batch, err = ingest.LoadBatchFile(file)
	default:
		return nil, errors.New("no data provided (use --data or --file)")
	}
	if err != nil {
		return nil, err
	}
	if len(batch) != 1 {
		return nil, fmt.Errorf("expected a single object, got %d", len(batch))
	}
	return batch[0], nil
}
