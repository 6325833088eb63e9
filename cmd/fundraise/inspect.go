package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/utaipei/fundraising/pkg/catalog"
	"github.com/utaipei/fundraising/pkg/donation"
	"github.com/utaipei/fundraising/pkg/funding"
)

var errInvalid = errors.New("invalid value")

var validateCmd = &cobra.Command{
	Use:   "validate KIND VALUE",
	Short: "Check a donor form value",
	Long: `Runs the donor form rule for KIND against VALUE and prints the
localized result. KIND is one of name, email, phone or nationalId.

Example:
  fundraise validate nationalId A123456789
  fundraise validate email nobody --lang en`,
	Args: cobra.ExactArgs(2),
	RunE: runValidate,
}

var tierCmd = &cobra.Command{
	Use:   "tier AMOUNT",
	Short: "Show the recognition tier of a cumulative donation",
	Args:  cobra.ExactArgs(1),
	RunE:  runTier,
}

var progressCmd = &cobra.Command{
	Use:   "progress RAISED GOAL",
	Short: "Compute percent funded",
	Args:  cobra.ExactArgs(2),
	RunE:  runProgress,
}

var projectsCategory string

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List campaign projects and their progress",
	Args:  cobra.NoArgs,
	RunE:  runProjects,
}

func runValidate(cmd *cobra.Command, args []string) error {
	tr, err := newTranslator(commandContext(cmd), lang)
	if err != nil {
		return err
	}

	kind := donation.FieldKind(args[0])
	res := donation.Localize(donation.Validate(kind, args[1]), tr, lang)

	out := cmd.OutOrStdout()
	if !kind.Known() {
		fmt.Fprintf(out, "note: %q has no rule\n", kind)
	}
	if res.Valid {
		fmt.Fprintln(out, "valid")
		return nil
	}
	fmt.Fprintf(out, "invalid (%s): %s\n", res.Code, res.Message)
	return errInvalid
}

func runTier(cmd *cobra.Command, args []string) error {
	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	tr, err := newTranslator(commandContext(cmd), lang)
	if err != nil {
		return err
	}

	info := funding.Info(funding.RecognitionTier(amount))
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s (%s)\n", info.Icon, tr.T(lang, info.TranslationKey), info.Tier)
	if next, shortfall, ok := funding.NextTier(amount); ok {
		fmt.Fprintf(out, "%s more for %s\n", funding.FormatCurrency(shortfall), tr.T(lang, next.TranslationKey))
	}
	return nil
}

func runProgress(cmd *cobra.Command, args []string) error {
	raised, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	goal, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	p := funding.NewProgress(raised, goal)
	fmt.Fprintf(cmd.OutOrStdout(), "%d%% %s / %s, %s remaining\n",
		p.Percent,
		funding.FormatCurrency(p.Raised),
		funding.FormatCurrency(p.Goal),
		funding.FormatCurrency(p.Remaining),
	)
	return nil
}

func runProjects(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Default(commandContext(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range cat.ProjectsByCategory(projectsCategory) {
		prog := p.Progress()
		flag := ""
		if p.Urgent {
			flag = " !"
		}
		fmt.Fprintf(out, "%-24s %3d%%  %s / %s  %s%s\n",
			p.ID, prog.Percent,
			funding.FormatCurrency(prog.Raised), funding.FormatCurrency(prog.Goal),
			p.Name, flag,
		)
	}
	return nil
}

func parseAmount(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("amount %q must be a non-negative integer", s)
	}
	return n, nil
}
