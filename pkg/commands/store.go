package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/runner/transfer"
	"tableflip.dev/planner/pkg/theme"
)

func addStore(topLevel *cobra.Command) {
	cmd := parentCmd("store", "Inspect, export and import the stored slots.")
	addStoreKeys(cmd)
	addStoreExport(cmd)
	addStoreImport(cmd)
	topLevel.AddCommand(cmd)
}

func requireStore(e *env) error {
	if e.store == nil {
		return fmt.Errorf("no store: backend %q keeps nothing", e.cfg.Backend())
	}
	return nil
}

func addStoreKeys(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the stored keys.",
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			if err := requireStore(e); err != nil {
				return err
			}
			keys := e.store.Keys(cmd.Context())
			return oo.Print(e.out, keys, func() {
				pp := e.printer(theme.Dashboard, false)
				pp.TitleWithCount(e.cfg.BasePath(), len(keys))
				for _, k := range keys {
					pp.Line("%s", k)
				}
			})
		}),
	}
	parent.AddCommand(cmd)
}

func addStoreExport(parent *cobra.Command) {
	var path string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every slot as one JSON object.",
		Example: `
planner store export --out planner.json
`,
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			if err := requireStore(e); err != nil {
				return err
			}
			var w io.Writer = e.out
			if path != "" && path != "-" {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			n, err := transfer.Export(cmd.Context(), e.store, w)
			e.log.Info("slots exported", "count", n, "out", path)
			return err
		}),
	}
	cmd.Flags().StringVarP(&path, "out", "o", "", "File to write, stdout by default.")
	parent.AddCommand(cmd)
}

func addStoreImport(parent *cobra.Command) {
	var prefix string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Load slots from a JSON object, such as a browser localStorage dump.",
		Example: `
planner store import localStorage.json --prefix planner
`,
		Args: cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			if err := requireStore(e); err != nil {
				return err
			}
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			res, err := transfer.Load(cmd.Context(), e.store, r, transfer.Options{Prefix: prefix, Log: e.log})
			if perr := oo.Print(e.out, res, func() {
				pp := e.printer(theme.Dashboard, false)
				pp.TitleWithCount("Importés", len(res.Written))
				for _, k := range res.Written {
					pp.Line("%s", k)
				}
				if len(res.Skipped) > 0 {
					pp.TitleWithCount("Ignorés", len(res.Skipped))
					for _, k := range res.Skipped {
						pp.Line("%s", k)
					}
				}
			}); perr != nil {
				return perr
			}
			return err
		}),
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "Only import keys starting with this prefix.")
	parent.AddCommand(cmd)
}
