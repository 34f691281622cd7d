package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/quantmind-br/resourcelist-go/internal/app"
	"github.com/quantmind-br/resourcelist-go/internal/state"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Show the registered lists",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		proj, err := loadProject(cmd, cfg)
		if err != nil {
			return err
		}

		output := cmd.OutOrStdout()
		cyan := color.New(color.FgCyan, color.Bold)

		if proj.registry.Len() == 0 {
			fmt.Fprintln(output, "No lists defined")
			return nil
		}

		w := tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LIST\tTASK\tSOURCE SET\tINCLUDE\tEXCLUDE\tMANIFEST")
		for list := range proj.registry.All() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cyan.Sprint(list.Name),
				list.TaskName(),
				list.SourceSet,
				patterns(list.Includes),
				patterns(list.Excludes),
				list.ManifestPath(proj.name()),
			)
		}
		return w.Flush()
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the outcome of the last run",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		proj, err := loadProject(cmd, cfg)
		if err != nil {
			return err
		}

		manager := state.NewManager(state.ManagerOptions{
			Fs:      afero.NewOsFs(),
			BaseDir: proj.buildDir,
			Project: proj.name(),
			Logger:  log,
		})

		output := cmd.OutOrStdout()
		if err := manager.Load(cmd.Context()); err != nil {
			if errors.Is(err, state.ErrStateNotFound) {
				fmt.Fprintln(output, "No previous run recorded")
				return nil
			}
			return fmt.Errorf("failed to read state: %w", err)
		}

		printStatus(output, manager.Snapshot(), proj.registry.Has)
		return nil
	},
}

// printStatus lists the recorded lists; defined reports whether a list is
// still registered
func printStatus(w io.Writer, st *state.RunState, defined func(string) bool) {
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Fprintf(w, "%s %s\n", cyan.Sprint("Project:"), st.Project)
	fmt.Fprintf(w, "%s %s\n", cyan.Sprint("Last run:"), st.LastRun.Local().Format("2006-01-02 15:04:05"))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LIST\tENTRIES\tDIGEST\tMANIFEST")
	for _, name := range st.Names() {
		list, _ := st.GetList(name)
		label := name
		if !defined(name) {
			label = yellow.Sprintf("%s (not defined)", name)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", label, list.Entries, shortDigest(list.Digest), list.OutputPath)
	}
	_ = tw.Flush()
}

// printReport writes the per-list summary of a run
func printReport(w io.Writer, report *app.Report, dryRun bool) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	for _, res := range report.Results {
		switch {
		case res.Error != nil:
			fmt.Fprintf(w, "%s %s: %v\n", red.Sprint("✗"), res.List, res.Error)
		case res.Result == nil:
			fmt.Fprintf(w, "%s %s: skipped\n", yellow.Sprint("-"), res.List)
		case res.Result.Changed && dryRun:
			fmt.Fprintf(w, "%s %s: would write %d entries to %s\n",
				yellow.Sprint("~"), res.List, res.Result.Entries, res.Result.OutputPath)
		case res.Result.Changed:
			fmt.Fprintf(w, "%s %s: wrote %d entries to %s\n",
				green.Sprint("✓"), res.List, res.Result.Entries, res.Result.OutputPath)
		default:
			fmt.Fprintf(w, "%s %s: up to date (%d entries)\n",
				green.Sprint("✓"), res.List, res.Result.Entries)
		}
	}

	summary := fmt.Sprintf("%d lists, %d changed, %d failed in %s",
		len(report.Results), report.Changed(), report.Failed(), report.Duration.Round(time.Millisecond))
	if report.Failed() > 0 {
		fmt.Fprintln(w, red.Sprint(summary))
		return
	}
	fmt.Fprintln(w, summary)
}

func patterns(p []string) string {
	if len(p) == 0 {
		return "-"
	}
	return strings.Join(p, ",")
}

func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}
