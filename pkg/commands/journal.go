package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/dialog"
	"tableflip.dev/planner/pkg/group"
	"tableflip.dev/planner/pkg/journal"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/theme"
)

func journalIDs(e *env) []string {
	var ids []string
	for _, en := range e.journal().List() {
		ids = append(ids, en.ID)
	}
	return ids
}

func addJournal(topLevel *cobra.Command) {
	cmd := parentCmd("journal", "Write dated journal pages, freely or through guided prompts.", "j")
	addJournalList(cmd)
	addJournalWrite(cmd)
	addJournalRemove(cmd)
	addJournalPrompts(cmd)
	topLevel.AddCommand(cmd)
}

func printJournalEntry(pp *printers.PrettyPrint, en journal.Entry) {
	feeling := string(en.Feeling)
	if info, ok := journal.LookupFeeling(en.Feeling); ok {
		feeling = info.Emoji + " " + info.Label
	}
	head := en.Mood + " · " + feeling
	if pp.ShowID {
		head = en.ID + "  " + head
	}
	pp.Subtitle(head)
	if en.FeelingReason != "" {
		pp.Wrapped("Pourquoi : "+en.FeelingReason, 2)
	}
	pp.Wrapped(en.Content, 2)
	pp.NewLine()
}

func addJournalList(parent *cobra.Command) {
	io := &options.IDOptions{}
	lo := &options.LastOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the journal by day, newest first.",
		Example: `
planner journal list --last 1w
`,
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			svc := e.journal()
			window, limited, err := lo.Window()
			if err != nil {
				return err
			}
			groups := svc.ByDate()
			if limited {
				groups = group.ByDate(svc.Since(e.now(), window), func(en journal.Entry) string { return en.Date }, group.Descending[journal.Entry]())
			}
			stats := svc.Stats()
			return oo.Print(e.out, map[string]any{"stats": stats, "days": groups}, func() {
				pp := e.printer(theme.Journal, io.ShowID)
				pp.Title("Journal")
				pp.Line("%d pages sur %d jours · dernière humeur %s %s", stats.Total, stats.ActiveDays, stats.Feeling.Emoji, stats.Mood)
				pp.NewLine()
				if len(groups) == 0 {
					pp.Empty("aucune page")
				}
				for _, g := range groups {
					pp.Title(g.Key)
					for _, en := range g.Items {
						printJournalEntry(pp, en)
					}
				}
			})
		}),
	}
	options.AddShowIDArgs(cmd, io)
	options.AddLastArgs(cmd, lo)
	parent.AddCommand(cmd)
}

// parsePairs turns id=value flags into a map. Repeated ids are appended.
func parsePairs(pairs []string) (map[string][]string, error) {
	out := make(map[string][]string, len(pairs))
	for _, p := range pairs {
		id, value, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("%q: want prompt-id=value", p)
		}
		id = strings.TrimSpace(id)
		out[id] = append(out[id], value)
	}
	return out, nil
}

func addJournalWrite(parent *cobra.Command) {
	var (
		d       journal.Draft
		on      options.OnOptions
		answers []string
		selects []string
		feeling string
	)
	i := &options.InteractiveOptions{}
	cmd := &cobra.Command{
		Use:   "write [free writing]",
		Short: "Write a journal page.",
		Example: `
planner journal write "Une belle journée au parc."
planner journal write --answer prompt-gratitude="Le soleil" --select prompt-money-affirmations="L'argent vient à moi facilement"
planner journal write -i
`,
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			day, err := on.DayKey(e.now())
			if err != nil {
				return err
			}
			if day == "" {
				day = e.today()
			}
			d.Date = day
			d.Feeling = journal.Feeling(feeling)
			if len(args) > 0 {
				d.FreeWriting = strings.Join(args, " ")
			}
			resp, err := parsePairs(answers)
			if err != nil {
				return err
			}
			d.Responses = make(map[string]string, len(resp))
			for id, v := range resp {
				d.Responses[id] = strings.Join(v, "\n")
			}
			if d.Selections, err = parsePairs(selects); err != nil {
				return err
			}
			if i.Interactive {
				if e.prompt == nil {
					return errors.New("--interactive needs a terminal")
				}
				if err := fillJournal(cmd.Context(), e.prompt, &d); err != nil {
					return err
				}
			}
			en, err := e.journal().Add(d)
			if err != nil {
				return err
			}
			return oo.Print(e.out, en, func() {
				pp := e.printer(theme.Journal, true)
				pp.Title(en.Date)
				printJournalEntry(pp, en)
			})
		}),
	}
	cmd.Flags().StringVar(&d.Mood, "mood", "", "Mood: "+strings.Join(journal.Moods, ", ")+".")
	cmd.Flags().StringVar(&feeling, "feeling", "", "Weather of the day: happy, pout, angry or tired.")
	cmd.Flags().StringVar(&d.FeelingReason, "reason", "", "Why you feel that way.")
	cmd.Flags().StringArrayVar(&answers, "answer", nil, "Answer a text prompt, prompt-id=text. Repeatable.")
	cmd.Flags().StringArrayVar(&selects, "select", nil, "Tick an option of a list prompt, prompt-id=option. Repeatable.")
	options.AddOnArgs(cmd, &on, "Day of the page, default today.")
	options.InteractiveArgs(cmd, i)
	parent.AddCommand(cmd)
}

// fillJournal walks the guided prompts, then asks for free writing, mood and
// feeling. Answers already in d are offered as defaults.
func fillJournal(ctx context.Context, p dialog.Prompter, d *journal.Draft) error {
	if d.Responses == nil {
		d.Responses = map[string]string{}
	}
	if d.Selections == nil {
		d.Selections = map[string][]string{}
	}
	for _, section := range journal.Prompts {
		for _, f := range section.Fields {
			switch f.Kind {
			case journal.Textarea:
				v, err := dialog.AskText(ctx, p, f.Label, d.Responses[f.ID])
				if err != nil {
					return err
				}
				if strings.TrimSpace(v) != "" {
					d.Responses[f.ID] = v
				}
			case journal.Checkboxes:
				for _, opt := range f.Options {
					ok, err := dialog.AskConfirm(ctx, p, opt)
					if err != nil {
						return err
					}
					if ok {
						d.Selections[f.ID] = append(d.Selections[f.ID], opt)
					}
				}
			}
		}
	}

	free, err := dialog.AskText(ctx, p, "Écriture libre", d.FreeWriting)
	if err != nil {
		return err
	}
	d.FreeWriting = free

	mood, err := dialog.Ask(ctx, p, dialog.Request{Kind: dialog.Select, Label: "Humeur", Items: journal.Moods})
	if err != nil {
		return err
	}
	d.Mood = mood.Value

	labels := make([]string, len(journal.Feelings))
	for i, f := range journal.Feelings {
		labels[i] = f.Label
	}
	feeling, err := dialog.Ask(ctx, p, dialog.Request{Kind: dialog.Select, Label: "Météo intérieure", Items: labels})
	if err != nil {
		return err
	}
	d.Feeling = journal.Feelings[feeling.Index].Value

	reason, err := dialog.AskText(ctx, p, "Pourquoi ?", d.FeelingReason)
	if err != nil {
		return err
	}
	d.FeelingReason = reason
	return nil
}

func addJournalRemove(parent *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:               "rm <id>",
		Short:             "Remove a page.",
		Aliases:           []string{"remove", "delete"},
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: idCompletions(journalIDs),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			ok, err := e.confirm(cmd.Context(), io.Yes, "Supprimer la page "+args[0])
			if err != nil || !ok {
				return err
			}
			return e.journal().Remove(args[0])
		}),
	}
	options.AddYesArg(cmd, io)
	parent.AddCommand(cmd)
}

func addJournalPrompts(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "List the guided prompts and their ids.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(oo.Print(cmd.OutOrStdout(), journal.Prompts, func() {
				pp := printers.New(cmd.OutOrStdout(), theme.Journal)
				for _, s := range journal.Prompts {
					pp.Title(s.Icon + " " + s.Title)
					rows := make([][]string, 0, len(s.Fields))
					for _, f := range s.Fields {
						rows = append(rows, []string{f.ID, string(f.Kind), f.Label})
					}
					pp.Table([]string{"Prompt", "Type", "Question"}, rows)
				}
			}))
		},
	}
	parent.AddCommand(cmd)
}
