package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openchami/nodectl/internal/fake"
	"github.com/openchami/nodectl/internal/schema"
	"github.com/openchami/nodectl/internal/token"
	"github.com/openchami/nodectl/internal/version"
)

func newTokenCmd() *cobra.Command {
	var (
		secret  string
		subject string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a short-lived test JWT",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := token.Mint([]byte(secret), token.DefaultClaims(subject))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "Shared HS256 secret")
	cmd.Flags().StringVar(&subject, "subject", "nodectl-user", "Subject claim")
	_ = cmd.MarkFlagRequired("secret")

	return cmd
}

func newSchemasCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "schemas",
		Short: "Generate JSON Schema files for the known object types",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := schema.WriteSchemas(dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schemas written to %s\n", dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "schemas/", "Directory to write JSON schemas into")

	return cmd
}

func newFakedataCmd() *cobra.Command {
	var (
		count int
		out   string
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "fakedata",
		Short: "Generate fake compute nodes for testing bulk creation",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := fake.NewGenerator(seed)
			data, err := json.MarshalIndent(gen.Nodes(count), "", "    ")
			if err != nil {
				return err
			}
			if out == "-" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("write fake data: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d nodes to %s\n", count, out)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "Number of nodes to generate")
	cmd.Flags().StringVar(&out, "out", "fake_compute_nodes.json", "Output file, or - for stdout")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible output")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
