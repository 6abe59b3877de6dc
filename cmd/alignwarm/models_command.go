package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"alignwarm/internal/alignmodels"
	"alignwarm/internal/language"
)

type modelView struct {
	Language    string `json:"language"`
	DisplayName string `json:"display_name"`
	Source      string `json:"source"`
	Model       string `json:"model"`
	Cached      bool   `json:"cached"`
}

func newModelsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var cachedOnly bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List default alignment models and whether they are cached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			dirs := alignmodels.ResolveCacheDirs(cfg.WhisperX.ModelDir)

			views := make([]modelView, 0)
			for _, entry := range alignmodels.All() {
				cached := dirs.Cached(entry)
				if cachedOnly && !cached {
					continue
				}
				views = append(views, modelView{
					Language:    entry.Language,
					DisplayName: language.DisplayName(entry.Language),
					Source:      string(entry.Source),
					Model:       entry.ModelID,
					Cached:      cached,
				})
			}

			if jsonOutput {
				return writeJSON(cmd, views)
			}

			out := cmd.OutOrStdout()
			if len(views) == 0 {
				fmt.Fprintln(out, "No alignment models cached")
				return nil
			}
			rows := make([][]string, 0, len(views))
			for _, v := range views {
				rows = append(rows, []string{v.Language, v.DisplayName, v.Source, v.Model, yesNo(v.Cached)})
			}
			fmt.Fprintln(out, renderTable([]string{"Language", "Name", "Source", "Model", "Cached"}, rows))
			if cfg.WhisperX.AlignModel != "" {
				fmt.Fprintf(out, "Configured override: whisperx.align_model = %s\n", cfg.WhisperX.AlignModel)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&cachedOnly, "cached", false, "Only list models already in the cache")
	return cmd
}
