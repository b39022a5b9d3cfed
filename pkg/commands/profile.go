package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/dialog"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/profile"
	"tableflip.dev/planner/pkg/theme"
	"tableflip.dev/planner/pkg/validation"
)

func addProfile(topLevel *cobra.Command) {
	cmd := parentCmd("profile", "The profile card and the notepad.", "me")
	addProfileShow(cmd)
	addProfileSet(cmd)
	addProfileEdit(cmd)
	addProfilePhoto(cmd)
	addProfileNote(cmd)
	addProfileProgress(cmd)
	topLevel.AddCommand(cmd)
}

func printProfile(pp *printers.PrettyPrint, p profile.Profile) {
	sign := p.Sign()
	pp.Title(p.DisplayName())
	pp.Field("Anniversaire", p.BirthdayLabel())
	pp.Field("Membre depuis", p.JoinedLabel())
	pp.Field("Signe", sign.Emoji+" "+sign.Value)
	if p.CustomPhoto() {
		pp.Field("Photo", "personnalisée")
	} else {
		pp.Field("Photo", p.Photo)
	}
}

func printNotepad(pp *printers.PrettyPrint, notes profile.Notes) {
	pp.Subtitle("Notes")
	for i, n := range notes {
		if n == "" {
			n = "…"
		}
		pp.Line("%d. %s", i+1, n)
	}
}

func addProfileShow(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the profile card and the notepad.",
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			svc := e.profile()
			p := svc.Profile()
			notes := svc.Notes()
			return oo.Print(e.out, map[string]any{"profile": p, "notes": notes}, func() {
				pp := e.printer(theme.Profile, false)
				printProfile(pp, p)
				pp.NewLine()
				printNotepad(pp, notes)
			})
		}),
	}
	parent.AddCommand(cmd)
}

func detailKeys() []string {
	out := make([]string, len(profile.DetailKeys))
	for i, k := range profile.DetailKeys {
		out[i] = string(k)
	}
	return out
}

func addProfileSet(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "set <detail> [value]",
		Short: "Set one detail. Dates are YYYY-MM-DD; no value clears it.",
		Example: `
planner profile set firstName Lina
planner profile set birthday 1994-07-14
planner profile set zodiacSign gemeaux
`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return detailKeys(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			p, err := e.profile().SetDetail(profile.DetailKey(args[0]), strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			return oo.Print(e.out, p, func() {
				printProfile(e.printer(theme.Profile, false), p)
			})
		}),
	}
	parent.AddCommand(cmd)
}

// fillProfile asks for every detail of the profile form, offering the
// current values as defaults.
func fillProfile(ctx context.Context, p dialog.Prompter, cur profile.Profile) (profile.Draft, error) {
	first, last := cur.Parts()
	d := profile.Draft{
		Birthday:   profile.DayFromISO(cur.Birthday),
		JoinedDate: profile.DayFromISO(cur.JoinedDate),
	}
	var err error
	if d.FirstName, err = dialog.AskText(ctx, p, "Prénom", first); err != nil {
		return d, err
	}
	if d.LastName, err = dialog.AskText(ctx, p, "Nom", last); err != nil {
		return d, err
	}
	if d.Birthday, err = dialog.AskText(ctx, p, "Anniversaire (AAAA-MM-JJ)", d.Birthday); err != nil {
		return d, err
	}
	if d.JoinedDate, err = dialog.AskText(ctx, p, "Membre depuis (AAAA-MM-JJ)", d.JoinedDate); err != nil {
		return d, err
	}
	labels := make([]string, len(profile.Signs))
	for i, s := range profile.Signs {
		labels[i] = s.Emoji + " " + s.Label
	}
	sign, err := dialog.Ask(ctx, p, dialog.Request{Kind: dialog.Select, Label: "Signe astrologique", Items: labels})
	if err != nil {
		return d, err
	}
	d.ZodiacSign = profile.Signs[sign.Index].Value
	return d, nil
}

func addProfileEdit(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Fill in the whole profile form interactively.",
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			if e.prompt == nil {
				return errors.New("edit needs a terminal, use \"planner profile set\"")
			}
			svc := e.profile()
			d, err := fillProfile(cmd.Context(), e.prompt, svc.Profile())
			if err != nil {
				return err
			}
			p, err := svc.Save(d)
			if err != nil {
				return err
			}
			return oo.Print(e.out, p, func() {
				printProfile(e.printer(theme.Profile, false), p)
			})
		}),
	}
	parent.AddCommand(cmd)
}

func addProfilePhoto(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "photo <image|reset>",
		Short: "Replace the profile picture with a local image, or restore the stock one.",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			svc := e.profile()
			if args[0] == "reset" {
				svc.ResetPhoto()
				return nil
			}
			url, err := e.readImage(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return svc.SetPhoto(url)
		}),
	}
	parent.AddCommand(cmd)
}

func noteSlot(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > profile.NoteSlots {
		return 0, validation.New("slot", "must be between 1 and %d", profile.NoteSlots)
	}
	return n - 1, nil
}

func addProfileNote(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "note <slot> [text]",
		Short: "Write a slot of the notepad. No text clears it.",
		Example: `
planner profile note 1 "Appeler maman"
planner profile note 1
`,
		Args: cobra.MinimumNArgs(1),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			i, err := noteSlot(args[0])
			if err != nil {
				return err
			}
			svc := e.profile()
			if text := strings.Join(args[1:], " "); text != "" {
				err = svc.SetNote(i, text)
			} else {
				err = svc.ClearNote(i)
			}
			if err != nil {
				return err
			}
			return oo.Print(e.out, svc.Notes(), func() {
				printNotepad(e.printer(theme.Profile, false), svc.Notes())
			})
		}),
	}
	parent.AddCommand(cmd)
}

func addProfileProgress(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "How far along the year, month and day are.",
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			periods := profile.Progress(e.now())
			return oo.Print(e.out, periods, func() {
				pp := e.printer(theme.Profile, false)
				for _, p := range periods {
					pp.Bar(p.Label, p.Percent, p.Meta)
				}
			})
		}),
	}
	parent.AddCommand(cmd)
}
