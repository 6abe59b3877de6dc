package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"alignwarm/internal/deps"
	"alignwarm/internal/preflight"
)

type doctorReport struct {
	Dependencies []deps.Status      `json:"dependencies"`
	Checks       []preflight.Result `json:"checks"`
}

func (r doctorReport) problems() int {
	count := 0
	for _, d := range r.Dependencies {
		if !d.Available && !d.Optional {
			count++
		}
	}
	for _, c := range r.Checks {
		if !c.Passed {
			count++
		}
	}
	return count
}

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that models can be fetched and cached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			report := doctorReport{
				Dependencies: preflight.CheckSystemDeps(cmd.Context(), cfg),
				Checks:       preflight.RunAll(cmd.Context(), cfg),
			}

			if jsonOutput {
				if err := writeJSON(cmd, report); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				lines := renderSectionHeader("Dependencies", colorize)
				for _, d := range report.Dependencies {
					lines = append(lines, renderStatusLine(d.Name, dependencyKind(d), dependencyMessage(d), colorize))
				}
				lines = append(lines, "")
				lines = append(lines, renderSectionHeader("Environment", colorize)...)
				for _, c := range report.Checks {
					kind := statusOK
					if !c.Passed {
						kind = statusError
					}
					lines = append(lines, renderStatusLine(c.Name, kind, c.Detail, colorize))
				}
				fmt.Fprintln(out, strings.Join(lines, "\n"))
			}

			if n := report.problems(); n > 0 {
				return fmt.Errorf("doctor found %d problem(s)", n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func dependencyKind(d deps.Status) statusKind {
	switch {
	case d.Available:
		return statusOK
	case d.Optional:
		return statusWarn
	default:
		return statusError
	}
}

func dependencyMessage(d deps.Status) string {
	if !d.Available {
		return d.Detail
	}
	parts := []string{d.Command}
	if d.Version != "" {
		parts = append(parts, "("+d.Version+")")
	}
	if d.Detail != "" {
		parts = append(parts, "- "+d.Detail)
	}
	return strings.Join(parts, " ")
}
