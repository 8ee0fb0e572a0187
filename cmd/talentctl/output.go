package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/ogurasousui/codex-grpc-talent/internal/core/analysis"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/recommendation"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printNextToken(w io.Writer, token string) {
	if token != "" {
		fmt.Fprintf(w, "\nnext page: --page-token %s\n", token)
	}
}

func printUsers(w io.Writer, users []*user.User, next string) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tDEPARTMENT\tSTATUS\tSKILLS")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n", u.ID, u.Name, u.Email, u.Department, u.Status, len(u.Skills))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printNextToken(w, next)
	return nil
}

func printRoles(w io.Writer, roles []*role.Role, next string) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tDEPARTMENT\tEXPERIENCE\tSKILLS")
	for _, r := range roles {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1fy\t%s\n", r.ID, r.Title, r.Department, r.ExperienceYears, strings.Join(sortedKeys(r.RequiredSkills), ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printNextToken(w, next)
	return nil
}

func printProfile(w io.Writer, u *user.User) error {
	fmt.Fprintf(w, "%s <%s>\n", u.Name, u.Email)
	fmt.Fprintf(w, "id: %s  department: %s  status: %s\n", u.ID, u.Department, u.Status)
	fmt.Fprintf(w, "performance: %d  potential: %d  experience: %.1fy\n", u.Performance, u.Potential, u.ExperienceYears)
	if len(u.Education) > 0 {
		fmt.Fprintf(w, "education: %s\n", strings.Join(u.Education, ", "))
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "\nSKILL\tLEVEL\tVERIFIED")
	for _, name := range sortedKeys(u.Skills) {
		p := u.Skills[name]
		fmt.Fprintf(tw, "%s\t%d\t%t\n", name, p.Level, p.Verified)
	}
	return tw.Flush()
}

func printMatch(w io.Writer, m analysis.Match) {
	fmt.Fprintf(w, "skills %d%%  experience %d%%  education %d%%  overall %d%%  readiness %d%%\n",
		m.SkillsMatch, m.ExperienceMatch, m.EducationMatch, m.OverallMatch, m.Readiness)
}

func printGaps(w io.Writer, gaps map[string]analysis.Gap) error {
	if len(gaps) == 0 {
		fmt.Fprintln(w, "no skill gaps")
		return nil
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "SKILL\tCURRENT\tREQUIRED\tGAP\tPRIORITY")
	for _, g := range analysis.OrderGaps(gaps) {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", g.Skill, g.CurrentLevel, g.RequiredLevel, g.Gap, g.Priority)
	}
	return tw.Flush()
}

func printComparison(w io.Writer, cmp *recommendation.Comparison) error {
	fmt.Fprintf(w, "%s -> %s\n", cmp.User.Name, cmp.Role.Title)
	printMatch(w, cmp.Result.Match)
	fmt.Fprintf(w, "timeline: %d months  confidence: %.0f%%\n\n", cmp.Result.TimelineMonths, cmp.Result.Confidence*100)
	return printGaps(w, cmp.Result.Gaps)
}

func printRecommendation(w io.Writer, rec *recommendation.Recommendation) error {
	fmt.Fprintf(w, "recommendation %s (%s) for %s\n", rec.ID, rec.Status, rec.TargetRoleTitle)
	printMatch(w, rec.Match)
	fmt.Fprintf(w, "timeline: %d months  confidence: %.0f%%\n\n", rec.TimelineMonths, rec.Confidence*100)
	if err := printGaps(w, rec.SkillGaps); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return printLearningPath(w, rec.LearningPath)
}

func printLearningPath(w io.Writer, items []recommendation.LearningItem) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "MONTH\tITEM\tTYPE\tTITLE\tWEEKS\tSTATUS\tPROGRESS")
	for _, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%d%%\n", it.Month, it.ID, it.Type, it.Title, it.DurationWeeks, it.Status, it.Progress)
	}
	return tw.Flush()
}

func printRecommendations(w io.Writer, recs []*recommendation.Recommendation, next string) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tEMPLOYEE\tROLE\tSTATUS\tMONTHS\tREADINESS")
	for _, rec := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d%%\n", rec.ID, rec.EmployeeID, rec.TargetRoleTitle, rec.Status, rec.TimelineMonths, rec.Match.Readiness)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printNextToken(w, next)
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
