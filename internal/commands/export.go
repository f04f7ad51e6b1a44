package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"tarefas/internal/config"
	"tarefas/internal/exitcode"
	"tarefas/internal/output"
	"tarefas/internal/service"
	"tarefas/internal/view"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command. It writes the filtered and
// sorted task set, the same one list prints.
type ExportCmd struct {
	format string
	path   string
	filter string
	sort   string
}

// SetFormat sets the export format (for testing).
func (c *ExportCmd) SetFormat(format string) {
	c.format = format
}

// SetOutput sets the destination file (for testing).
func (c *ExportCmd) SetOutput(path string) {
	c.path = path
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Export tasks as JSON, CSV or PDF" }
func (c *ExportCmd) Usage() string {
	return "tarefas export [--format json|csv|pdf] [--output <path>] [--filter <f>] [--sort <s>]"
}
func (c *ExportCmd) NeedsService() bool { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", output.FormatJSON, "")
	fs.StringVar(&c.path, "output", "", "")
	fs.StringVar(&c.path, "o", "", "")
	fs.StringVar(&c.filter, "filter", "todas", "")
	fs.StringVar(&c.sort, "sort", "id", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		output.FormatError(errOut, "unexpected argument: "+args[0])
		return exitcode.UserError
	}

	format := strings.ToLower(c.format)
	if format == "" {
		format = output.FormatJSON
	}
	switch format {
	case output.FormatJSON, output.FormatCSV, output.FormatPDF:
	default:
		output.FormatError(errOut, "unknown export format: "+c.format)
		return exitcode.UserError
	}

	load, code := parseLoad(c.filter, c.sort, errOut)
	if code != exitcode.Success {
		return code
	}

	s := newController(cfg, svc).Dispatch(ctx, load)
	if s.Phase == view.PhaseError {
		return report(cfg, s, out, errOut)
	}

	w := out
	if c.path != "" {
		f, err := os.Create(c.path)
		if err != nil {
			output.FormatError(errOut, fmt.Sprintf("failed to create output file: %v", err))
			return exitcode.UserError
		}
		defer f.Close()
		w = f
	}

	if err := output.Export(w, format, s.Visible); err != nil {
		output.FormatError(errOut, fmt.Sprintf("export failed: %v", err))
		return exitcode.UserError
	}

	if c.path != "" && !cfg.Quiet {
		fmt.Fprintf(out, "Exported %d tasks to %s\n", len(s.Visible), c.path)
	}
	return exitcode.Success
}
