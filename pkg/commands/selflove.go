package commands

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/selflove"
	"tableflip.dev/planner/pkg/share"
	"tableflip.dev/planner/pkg/theme"
)

// certificateSlot names the certificate picture in the photo commands.
const certificateSlot = "certificate"

func qualityIDs(e *env) []string {
	var ids []string
	for _, n := range e.selflove().State().Qualities {
		ids = append(ids, n.ID)
	}
	return ids
}

func thoughtIDs(e *env) []string {
	var ids []string
	for _, n := range e.selflove().State().Thoughts {
		ids = append(ids, n.ID)
	}
	return ids
}

func photoSlots(e *env) []string {
	ids := []string{certificateSlot}
	for _, p := range e.selflove().State().Photos {
		ids = append(ids, p.ID)
	}
	return ids
}

func addSelfLove(topLevel *cobra.Command) {
	cmd := parentCmd("selflove", "Qualities, released thoughts, a small journal and photos.", "self-love", "love")
	addSelfLoveShow(cmd)
	addSelfLoveQuality(cmd)
	addSelfLoveThought(cmd)
	addSelfLoveJournal(cmd)
	addSelfLovePhoto(cmd)
	addSelfLoveCertificate(cmd)
	topLevel.AddCommand(cmd)
}

func printNotes(pp *printers.PrettyPrint, title string, notes []selflove.Note) {
	pp.TitleWithCount(title, len(notes))
	if len(notes) == 0 {
		pp.Empty("rien pour l'instant")
		return
	}
	for _, n := range notes {
		if pp.ShowID {
			pp.Line("%-12s %s", n.ID, n.Text)
			continue
		}
		pp.Line("• %s", n.Text)
	}
}

func addSelfLoveShow(parent *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the self-love board with the affirmation of the day.",
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			st := e.selflove().State()
			day := e.today()
			out := map[string]any{
				"state":       st,
				"affirmation": selflove.AffirmationOfDay(day),
				"quote":       selflove.QuoteOfDay(day),
			}
			return oo.Print(e.out, out, func() {
				pp := e.printer(theme.SelfLove, io.ShowID)
				pp.Panel("Affirmation du jour", selflove.AffirmationOfDay(day))
				pp.Wrapped("« "+selflove.QuoteOfDay(day)+" »", 2)
				pp.NewLine()
				printNotes(pp, "Qualités", st.Qualities)
				pp.NewLine()
				printNotes(pp, "Pensées à libérer", st.Thoughts)
				pp.NewLine()
				pp.TitleWithCount("Journal", len(st.Journal))
				for _, j := range st.Journal {
					pp.Subtitle(humanize.Time(j.CreatedAt))
					pp.Wrapped(j.Text, 2)
				}
				filled := 0
				for _, p := range st.Photos {
					if p.DataURL != nil && *p.DataURL != "" {
						filled++
					}
				}
				pp.NewLine()
				pp.Field("Photos", fmt.Sprintf("%d / %d", filled, len(st.Photos)))
			})
		}),
	}
	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

// addNoteCommands adds the add and remove pair of a note list.
func addNoteCommands(parent *cobra.Command, rmUse, rmShort string, add func(*selflove.Service, string) (selflove.Note, error), remove func(*selflove.Service, string) error, ids func(*env) []string) {
	parent.AddCommand(&cobra.Command{
		Use:   "add <text>",
		Short: "Add a note.",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			n, err := add(e.selflove(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return oo.Print(e.out, n, func() {
				e.printer(theme.SelfLove, false).Line("%s (%s)", n.Text, n.ID)
			})
		}),
	})
	parent.AddCommand(&cobra.Command{
		Use:               rmUse + " <id>",
		Short:             rmShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: idCompletions(ids),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			return remove(e.selflove(), args[0])
		}),
	})
}

func addSelfLoveQuality(parent *cobra.Command) {
	cmd := parentCmd("quality", "The qualities you love about yourself.", "qualities")
	addNoteCommands(cmd, "rm", "Remove a quality.", (*selflove.Service).AddQuality, (*selflove.Service).RemoveQuality, qualityIDs)
	parent.AddCommand(cmd)
}

func addSelfLoveThought(parent *cobra.Command) {
	cmd := parentCmd("thought", "Negative thoughts to let go of.", "thoughts")
	addNoteCommands(cmd, "release", "Let a thought go.", (*selflove.Service).AddThought, (*selflove.Service).ReleaseThought, thoughtIDs)
	parent.AddCommand(cmd)
}

func addSelfLoveJournal(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "journal <text>",
		Short: fmt.Sprintf("Write a short entry. Only the %d latest are kept.", selflove.JournalLimit),
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			entry, dropped, err := e.selflove().AddJournal(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return oo.Print(e.out, map[string]any{"entry": entry, "dropped": dropped}, func() {
				pp := e.printer(theme.SelfLove, false)
				pp.Line("Entrée ajoutée.")
				if dropped > 0 {
					pp.Line("%s, seules les %d dernières sont gardées.", english.Plural(dropped, "ancienne entrée retirée", "anciennes entrées retirées"), selflove.JournalLimit)
				}
			})
		}),
	}
	parent.AddCommand(cmd)
}

func addSelfLovePhoto(parent *cobra.Command) {
	cmd := parentCmd("photo", "Fill or clear the photo slots and the certificate picture.", "photos")
	cmd.AddCommand(&cobra.Command{
		Use:   "set <slot> <image>",
		Short: "Put a local picture in a slot, or \"" + certificateSlot + "\".",
		Example: `
planner selflove photo set photo-0 ~/Images/plage.jpg
planner selflove photo set certificate ~/Images/moi.png
`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: idCompletions(photoSlots),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			url, err := e.readImage(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			if args[0] == certificateSlot {
				return e.selflove().SetCertificatePhoto(url)
			}
			return e.selflove().SetPhoto(args[0], url)
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:               "clear <slot>",
		Short:             "Empty a slot, or \"" + certificateSlot + "\".",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: idCompletions(photoSlots),
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			if args[0] == certificateSlot {
				e.selflove().ClearCertificatePhoto()
				return nil
			}
			return e.selflove().ClearPhoto(args[0])
		}),
	})
	parent.AddCommand(cmd)
}

func addSelfLoveCertificate(parent *cobra.Command) {
	var copyText bool
	cmd := &cobra.Command{
		Use:   "certificate",
		Short: "Print the certificate of the day, or copy it with --copy.",
		RunE: run(func(cmd *cobra.Command, e *env, args []string) error {
			svc := e.selflove()
			text := svc.Certificate(e.today())
			image := svc.CertificateImage()
			if copyText {
				_, err := share.New().Text(e.out, text)
				return err
			}
			return oo.Print(e.out, map[string]any{"text": text, "image": image != ""}, func() {
				pp := e.printer(theme.SelfLove, false)
				pp.Panel("Certificat", text)
				if image == "" {
					pp.Empty("pas de photo")
				}
			})
		}),
	}
	cmd.Flags().BoolVar(&copyText, "copy", false, "Copy the text to the clipboard, or print it when there is none.")
	parent.AddCommand(cmd)
}
