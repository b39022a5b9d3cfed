package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/finance"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/theme"
)

func financeIDs(e *env) []string {
	var ids []string
	for _, en := range e.finance().Entries() {
		ids = append(ids, en.ID)
	}
	return ids
}

func entryRows(list []finance.Entry) [][]string {
	rows := make([][]string, 0, len(list))
	for _, en := range list {
		amount := en.Value()
		if en.Flow() == finance.Out {
			amount = amount.Neg()
		}
		cat := ""
		if info, ok := finance.Lookup(en.Category); ok {
			cat = info.Label
		}
		rows = append(rows, []string{en.ID, en.Date, en.Label, cat, finance.FormatSigned(amount)})
	}
	return rows
}

var entryHeaders = []string{"ID", "Date", "Libellé", "Catégorie", "Montant"}

func addFinance(topLevel *cobra.Command) {
	cmd := parentCmd("finance", "Track spending and income month by month.", "budget")
	addFinanceSummary(cmd)
	addFinanceAdd(cmd)
	addFinanceRemove(cmd)
	addFinanceStart(cmd)
	addFinanceHistory(cmd)
	addFinanceMonths(cmd)
	addFinanceCategories(cmd)
	topLevel.AddCommand(cmd)
}

func addFinanceSummary(parent *cobra.Command) {
	mo := &options.MonthOptions{}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the report of a month.",
		Example: `
planner finance summary --month 2024-03
`,
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			month, err := mo.Key(e.now())
			if err != nil {
				return err
			}
			sum := e.finance().Summarize(month)
			return oo.Print(e.out, sum, func() { printSummary(e.printer(theme.Finance, false), sum) })
		}),
	}
	options.AddMonthArgs(cmd, mo)
	parent.AddCommand(cmd)
}

func printSummary(pp *printers.PrettyPrint, sum finance.Summary) {
	pp.Title("Budget " + sum.Month)
	pp.Field("Solde de départ", finance.FormatCurrency(sum.StartingAmount))
	pp.Field("Revenus", finance.FormatCurrency(sum.TotalIncome))
	pp.Field("Dépenses", finance.FormatCurrency(sum.TotalSpent))
	pp.Field("Flux net", finance.FormatSigned(sum.NetCashflow))
	pp.Field("Solde de fin", finance.FormatCurrency(sum.EndingAmount))
	pp.Field("Épargné", fmt.Sprintf("%s (%s)", finance.FormatSigned(sum.SavedAmount), finance.FormatPercent(sum.SavingsPercentage)))
	pp.NewLine()

	if len(sum.Totals) > 0 {
		pp.Subtitle("Par catégorie")
		rows := make([][]string, 0, len(sum.Totals))
		for _, t := range sum.Totals {
			rows = append(rows, []string{t.Label, finance.FormatCurrency(t.Amount)})
		}
		pp.Table([]string{"Catégorie", "Total"}, rows)
	}
	for _, seg := range sum.Pie {
		pp.Bar(seg.Label, int((seg.EndAngle-seg.StartAngle)/360*100+0.5), finance.FormatCurrency(seg.Value))
	}
	if sum.Idea != nil {
		pp.NewLine()
		pp.Subtitle("Idée d'économie")
		pp.Line("%s : viser %s au lieu de %s, soit %s de gagné.", sum.Idea.Label,
			finance.FormatCurrency(sum.Idea.Target), finance.FormatCurrency(sum.Idea.Current), finance.FormatCurrency(sum.Idea.Saving))
	}
}

func addFinanceAdd(parent *cobra.Command) {
	var (
		d      finance.Draft
		income bool
		cat    string
		on     options.OnOptions
	)
	cmd := &cobra.Command{
		Use:   "add <amount> [label]",
		Short: "Record an expense, or income with --in.",
		Args:  cobra.MinimumNArgs(1),
		Example: `
planner finance add 12,50 "Marché" --category food
planner finance add 2100 Salaire --in --on 2024-3-1
`,
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			d.Amount = args[0]
			d.Label = strings.Join(args[1:], " ")
			d.Category = finance.Category(cat)
			d.Direction = finance.Out
			if income {
				d.Direction = finance.In
			}
			day, err := on.DayKey(e.now())
			if err != nil {
				return err
			}
			d.Date = day
			en, err := e.finance().Add(d)
			if err != nil {
				return err
			}
			return oo.Print(e.out, en, func() {
				e.printer(theme.Finance, true).Table(entryHeaders, entryRows([]finance.Entry{en}))
			})
		}),
	}
	cmd.Flags().BoolVar(&income, "in", false, "Record income instead of an expense.")
	cmd.Flags().StringVarP(&cat, "category", "c", "", "Expense category, see 'planner finance categories'.")
	_ = cmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var out []string
		for _, c := range finance.Categories {
			out = append(out, string(c.Category))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})
	options.AddOnArgs(cmd, &on, "Day of the entry, default today.")
	parent.AddCommand(cmd)
}

func addFinanceRemove(parent *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:               "rm <id>",
		Short:             "Remove an entry.",
		Aliases:           []string{"remove", "delete"},
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: idCompletions(financeIDs),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			ok, err := e.confirm(cmd.Context(), io.Yes, "Supprimer "+args[0])
			if err != nil || !ok {
				return err
			}
			return e.finance().Remove(args[0])
		}),
	}
	options.AddYesArg(cmd, io)
	parent.AddCommand(cmd)
}

func addFinanceStart(parent *cobra.Command) {
	mo := &options.MonthOptions{}
	cmd := &cobra.Command{
		Use:   "start [amount]",
		Short: "Set the balance a month starts with. No amount clears it.",
		Args:  cobra.MaximumNArgs(1),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			month, err := mo.Key(e.now())
			if err != nil {
				return err
			}
			raw := ""
			if len(args) == 1 {
				raw = args[0]
			}
			return e.finance().SetStartingAmount(month, raw)
		}),
	}
	options.AddMonthArgs(cmd, mo)
	parent.AddCommand(cmd)
}

func addFinanceHistory(parent *cobra.Command) {
	mo := &options.MonthOptions{}
	io := &options.IDOptions{}
	var all bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the entries of a month, newest first.",
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			month, err := mo.Key(e.now())
			if err != nil {
				return err
			}
			list, more := e.finance().History(month, all)
			return oo.Print(e.out, list, func() {
				pp := e.printer(theme.Finance, io.ShowID)
				pp.TitleWithCount("Historique "+month, len(list))
				pp.Table(entryHeaders, entryRows(list))
				if more {
					pp.Empty("… --all pour tout voir")
				}
			})
		}),
	}
	options.AddMonthArgs(cmd, mo)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&all, "all", false, "Show every entry of the month.")
	parent.AddCommand(cmd)
}

func addFinanceMonths(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "months",
		Short: "List the months with bookkeeping.",
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			months := e.finance().MonthOptions()
			return oo.Print(e.out, months, func() {
				for _, m := range months {
					fmt.Fprintln(e.out, m)
				}
			})
		}),
	}
	parent.AddCommand(cmd)
}

func addFinanceCategories(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the expense categories.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(oo.Print(cmd.OutOrStdout(), finance.Categories, func() {
				pp := printers.New(cmd.OutOrStdout(), theme.Finance)
				rows := make([][]string, 0, len(finance.Categories))
				for _, c := range finance.Categories {
					rows = append(rows, []string{string(c.Category), c.Label, c.Color})
				}
				pp.Table([]string{"Code", "Libellé", "Couleur"}, rows)
			}))
		},
	}
	parent.AddCommand(cmd)
}
