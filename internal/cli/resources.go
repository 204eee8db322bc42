package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ats-gateway/models"
)

func (a *App) group(use, short string, subs ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:         use,
		Short:       short,
		Annotations: map[string]string{annotationNoBackend: ""},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(subs...)
	return cmd
}

// ---- candidates ----

func (a *App) newCandidatesCmd() *cobra.Command {
	var filter models.CandidateFilter

	list := &cobra.Command{
		Use:   "list",
		Short: "List candidates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.services.Candidates.List(cmd.Context(), filter)
			if err != nil {
				return a.fail(err)
			}

			return a.show(page, func() {
				rows := make([][]string, 0, len(page.Items))
				for _, c := range page.Items {
					rows = append(rows, []string{c.ID, c.FullName(), c.Email, orDash(c.Source)})
				}
				table(a.out, []string{"ID", "NAME", "EMAIL", "SOURCE"}, rows)
				pageFooter(a.out, page.Page, page.PageSize, page.Total, page.HasNext())
			})
		},
	}
	list.Flags().StringVarP(&filter.Search, "search", "s", "", "Search by name or email")
	list.Flags().StringVar(&filter.Skill, "skill", "", "Filter by skill")
	bindPaging(list, &filter.Paging)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.services.Candidates.Get(cmd.Context(), args[0])
			if err != nil {
				return a.fail(err)
			}

			return a.show(c, func() {
				details(a.out, c.FullName(), [][2]string{
					{"ID", c.ID},
					{"Email", c.Email},
					{"Phone", orDash(c.Phone)},
					{"Skills", orDash(strings.Join(c.Skills, ", "))},
					{"Source", orDash(c.Source)},
					{"Resume", orDash(c.ResumeURL)},
					{"Created", formatTime(c.CreatedAt)},
				})
			})
		},
	}

	return a.group("candidates", "Browse candidates", list, get)
}

// ---- applications ----

func (a *App) newApplicationsCmd() *cobra.Command {
	var (
		filter models.ApplicationFilter
		status string
	)

	list := &cobra.Command{
		Use:   "list",
		Short: "List applications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter.Status = models.ApplicationStatus(status)

			var (
				page models.Page[models.Application]
				err  error
			)
			// A job-only filter uses the job's own listing.
			if filter.JobID != "" && filter.CandidateID == "" && filter.Status == "" {
				page, err = a.services.Applications.ListByJob(cmd.Context(), filter.JobID, filter.Paging)
			} else {
				page, err = a.services.Applications.List(cmd.Context(), filter)
			}
			if err != nil {
				return a.fail(err)
			}

			return a.show(page, func() {
				rows := make([][]string, 0, len(page.Items))
				for _, app := range page.Items {
					score := "-"
					if app.Score != nil {
						score = fmt.Sprintf("%.1f", *app.Score)
					}
					rows = append(rows, []string{app.ID, app.JobID, app.CandidateID, string(app.Status), score, formatTime(app.AppliedAt)})
				}
				table(a.out, []string{"ID", "JOB", "CANDIDATE", "STATUS", "SCORE", "APPLIED"}, rows)
				pageFooter(a.out, page.Page, page.PageSize, page.Total, page.HasNext())
			})
		},
	}
	list.Flags().StringVar(&filter.JobID, "job", "", "Filter by job id")
	list.Flags().StringVar(&filter.CandidateID, "candidate", "", "Filter by candidate id")
	list.Flags().StringVar(&status, "status", "", "Filter by status")
	bindPaging(list, &filter.Paging)

	var note string
	setStatus := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move an application to another pipeline stage",
		Example: `  atsctl applications status 42 interview
  atsctl applications status 42 rejected --note "position filled"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			update := models.ApplicationStatusUpdate{Status: models.ApplicationStatus(args[1]), Note: note}
			if err := a.validator.Validate(cmd.Context(), update); err != nil {
				return a.fail(err)
			}

			app, err := a.services.Applications.UpdateStatus(cmd.Context(), args[0], update)
			if err != nil {
				return a.fail(err)
			}
			a.toast(toastSuccess, "Application "+app.ID+" moved to "+string(app.Status))
			return nil
		},
	}
	setStatus.Flags().StringVar(&note, "note", "", "Note stored with the change")

	return a.group("applications", "Track applications through the pipeline", list, setStatus)
}

// ---- interviews ----

func (a *App) newInterviewsCmd() *cobra.Command {
	var (
		filter models.InterviewFilter
		status string
	)

	list := &cobra.Command{
		Use:   "list",
		Short: "List interviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter.Status = models.InterviewStatus(status)

			page, err := a.services.Interviews.List(cmd.Context(), filter)
			if err != nil {
				return a.fail(err)
			}

			return a.show(page, func() {
				rows := make([][]string, 0, len(page.Items))
				for _, i := range page.Items {
					rows = append(rows, []string{i.ID, i.ApplicationID, formatTime(i.ScheduledAt), fmt.Sprintf("%dm", i.DurationMinutes), i.Type, string(i.Status)})
				}
				table(a.out, []string{"ID", "APPLICATION", "SCHEDULED", "DURATION", "TYPE", "STATUS"}, rows)
				pageFooter(a.out, page.Page, page.PageSize, page.Total, page.HasNext())
			})
		},
	}
	list.Flags().StringVar(&filter.ApplicationID, "application", "", "Filter by application id")
	list.Flags().StringVar(&status, "status", "", "Filter by status")
	bindDateRange(list, &filter.From, &filter.To)
	bindPaging(list, &filter.Paging)

	return a.group("interviews", "Browse interviews", list)
}

// ---- catalog ----

func (a *App) newDepartmentsCmd() *cobra.Command {
	list := &cobra.Command{
		Use:   "list",
		Short: "List departments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			departments, err := a.services.Departments.List(cmd.Context())
			if err != nil {
				return a.fail(err)
			}

			return a.show(departments, func() {
				rows := make([][]string, 0, len(departments))
				for _, d := range departments {
					rows = append(rows, []string{d.ID, d.Name, orDash(d.ManagerID), orDash(d.Description)})
				}
				table(a.out, []string{"ID", "NAME", "MANAGER", "DESCRIPTION"}, rows)
			})
		},
	}

	return a.group("departments", "Browse departments", list)
}

func (a *App) newCategoriesCmd() *cobra.Command {
	list := &cobra.Command{
		Use:   "list",
		Short: "List job categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := a.services.Categories.List(cmd.Context())
			if err != nil {
				return a.fail(err)
			}

			return a.show(categories, func() {
				rows := make([][]string, 0, len(categories))
				for _, c := range categories {
					rows = append(rows, []string{c.ID, c.Name, orDash(c.Slug)})
				}
				table(a.out, []string{"ID", "NAME", "SLUG"}, rows)
			})
		},
	}

	return a.group("categories", "Browse job categories", list)
}

func (a *App) newEmailTemplatesCmd() *cobra.Command {
	var filter models.TemplateFilter

	list := &cobra.Command{
		Use:   "list",
		Short: "List email templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.services.EmailTemplates.List(cmd.Context(), filter)
			if err != nil {
				return a.fail(err)
			}

			return a.show(page, func() {
				rows := make([][]string, 0, len(page.Items))
				for _, t := range page.Items {
					rows = append(rows, []string{t.ID, t.Name, orDash(t.Type), t.Subject})
				}
				table(a.out, []string{"ID", "NAME", "TYPE", "SUBJECT"}, rows)
				pageFooter(a.out, page.Page, page.PageSize, page.Total, page.HasNext())
			})
		},
	}
	list.Flags().StringVar(&filter.Type, "type", "", "Filter by template type")
	bindPaging(list, &filter.Paging)

	var vars map[string]string
	preview := &cobra.Command{
		Use:     "preview <id>",
		Short:   "Render a template with sample variables",
		Example: `  atsctl email-templates preview 3 --var candidate_name=Ada --var job_title=SRE`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.services.EmailTemplates.Preview(cmd.Context(), args[0], vars)
			if err != nil {
				return a.fail(err)
			}

			return a.show(p, func() {
				fmt.Fprintln(a.out, titleStyle.Render(p.Subject))
				fmt.Fprintln(a.out)
				fmt.Fprintln(a.out, p.Body)
			})
		},
	}
	preview.Flags().StringToStringVar(&vars, "var", nil, "Template variable key=value; repeat for more")

	return a.group("email-templates", "Browse email templates", list, preview)
}

// ---- audit logs ----

func (a *App) newAuditLogsCmd() *cobra.Command {
	var filter models.AuditLogFilter

	list := &cobra.Command{
		Use:   "list",
		Short: "List audit log entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.services.AuditLogs.List(cmd.Context(), filter)
			if err != nil {
				return a.fail(err)
			}

			return a.show(page, func() {
				rows := make([][]string, 0, len(page.Items))
				for _, l := range page.Items {
					actor := l.Actor
					if actor == "" {
						actor = l.ActorID
					}
					rows = append(rows, []string{formatTime(l.At), actor, l.Action, l.Entity, orDash(l.EntityID)})
				}
				table(a.out, []string{"AT", "ACTOR", "ACTION", "ENTITY", "ENTITY ID"}, rows)
				pageFooter(a.out, page.Page, page.PageSize, page.Total, page.HasNext())
			})
		},
	}
	list.Flags().StringVar(&filter.ActorID, "actor", "", "Filter by actor id")
	list.Flags().StringVar(&filter.Entity, "entity", "", "Filter by entity type")
	list.Flags().StringVar(&filter.Action, "action", "", "Filter by action")
	bindDateRange(list, &filter.From, &filter.To)
	bindPaging(list, &filter.Paging)

	return a.group("audit-logs", "Browse the audit trail", list)
}
