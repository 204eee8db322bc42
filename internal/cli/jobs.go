package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ats-gateway/models"
)

func (a *App) newJobsCmd() *cobra.Command {
	return a.group("jobs", "Browse and manage job postings",
		a.newJobsListCmd(),
		a.newJobsGetCmd(),
		a.newJobsCreateCmd(),
		a.newJobsDeleteCmd(),
		a.newJobsStatusCmd("publish", "Open a job for applications", a.publishJob),
		a.newJobsStatusCmd("close", "Close a job", a.closeJob),
		a.newJobsAIGenerateCmd(),
	)
}

func (a *App) newJobsListCmd() *cobra.Command {
	var (
		filter models.JobFilter
		status string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List job postings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter.Status = models.JobStatus(status)

			page, err := a.services.Jobs.List(cmd.Context(), filter)
			if err != nil {
				return a.fail(err)
			}

			return a.show(page, func() {
				rows := make([][]string, 0, len(page.Items))
				for _, j := range page.Items {
					rows = append(rows, []string{j.ID, j.Title, string(j.Status), orDash(j.Location), formatSalary(j.SalaryMin, j.SalaryMax)})
				}
				table(a.out, []string{"ID", "TITLE", "STATUS", "LOCATION", "SALARY"}, rows)
				pageFooter(a.out, page.Page, page.PageSize, page.Total, page.HasNext())
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status: draft, open, paused, closed")
	cmd.Flags().StringVar(&filter.DepartmentID, "department", "", "Filter by department id")
	cmd.Flags().StringVar(&filter.CategoryID, "category", "", "Filter by category id")
	cmd.Flags().StringVarP(&filter.Search, "search", "s", "", "Full-text search")
	bindPaging(cmd, &filter.Paging)

	return cmd
}

func (a *App) newJobsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one job posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := a.services.Jobs.Get(cmd.Context(), args[0])
			if err != nil {
				return a.fail(err)
			}
			return a.show(job, func() { a.renderJob(job) })
		},
	}
}

func (a *App) newJobsCreateCmd() *cobra.Command {
	var (
		in                   models.JobInput
		status               string
		salaryMin, salaryMax int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a job posting",
		Example: `  atsctl jobs create --title "Site Reliability Engineer" \
    --description "Keep the platform up" --requirement Go --requirement Kubernetes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Status = models.JobStatus(status)
			in.SalaryMin = optionalInt(cmd, "salary-min", salaryMin)
			in.SalaryMax = optionalInt(cmd, "salary-max", salaryMax)
			if err := a.validator.Validate(cmd.Context(), in); err != nil {
				return a.fail(err)
			}

			job, err := a.services.Jobs.Create(cmd.Context(), in)
			if err != nil {
				return a.fail(err)
			}

			a.toast(toastSuccess, "Created job "+job.ID)
			return a.show(job, func() { a.renderJob(job) })
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "Job title")
	cmd.Flags().StringVar(&in.Description, "description", "", "Job description")
	cmd.Flags().StringArrayVar(&in.Requirements, "requirement", nil, "Requirement; repeat for more")
	cmd.Flags().StringVar(&in.DepartmentID, "department", "", "Department id")
	cmd.Flags().StringVar(&in.CategoryID, "category", "", "Category id")
	cmd.Flags().StringVar(&in.Location, "location", "", "Location")
	cmd.Flags().StringVar(&in.EmploymentType, "type", "", "Employment type, e.g. full_time")
	cmd.Flags().StringVar(&status, "status", "", "Initial status")
	cmd.Flags().IntVar(&salaryMin, "salary-min", 0, "Lower salary bound")
	cmd.Flags().IntVar(&salaryMax, "salary-max", 0, "Upper salary bound")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func (a *App) newJobsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a job posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.services.Jobs.Delete(cmd.Context(), args[0]); err != nil {
				return a.fail(err)
			}
			a.toast(toastSuccess, "Deleted job "+args[0])
			return nil
		},
	}
}

type jobTransition func(cmd *cobra.Command, id string) (models.Job, error)

func (a *App) publishJob(cmd *cobra.Command, id string) (models.Job, error) {
	return a.services.Jobs.Publish(cmd.Context(), id)
}

func (a *App) closeJob(cmd *cobra.Command, id string) (models.Job, error) {
	return a.services.Jobs.Close(cmd.Context(), id)
}

func (a *App) newJobsStatusCmd(use, short string, transition jobTransition) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := transition(cmd, args[0])
			if err != nil {
				return a.fail(err)
			}
			a.toast(toastSuccess, "Job "+job.ID+" is now "+string(job.Status))
			return nil
		},
	}
}

func (a *App) newJobsAIGenerateCmd() *cobra.Command {
	var (
		req  models.AIJobRequest
		save bool
	)

	cmd := &cobra.Command{
		Use:   "ai-generate",
		Short: "Draft a job description with the backend's AI assistant",
		Long: `Ask the backend to draft a description and requirements for a job title.
With --save the draft is stored as a new job in draft status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.validator.Validate(cmd.Context(), req); err != nil {
				return a.fail(err)
			}

			draft, err := a.services.Jobs.GenerateWithAI(cmd.Context(), req)
			if err != nil {
				return a.fail(err)
			}

			if !save {
				return a.show(draft, func() {
					details(a.out, draft.Title, [][2]string{
						{"Description", draft.Description},
						{"Requirements", strings.Join(draft.Requirements, ", ")},
					})
				})
			}

			in := draft.Input()
			in.DepartmentID = req.DepartmentID
			job, err := a.services.Jobs.Create(cmd.Context(), in)
			if err != nil {
				return a.fail(err)
			}
			a.toast(toastSuccess, "Saved draft as job "+job.ID)
			return a.show(job, func() { a.renderJob(job) })
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "Job title to draft for")
	cmd.Flags().StringVar(&req.DepartmentID, "department", "", "Department id")
	cmd.Flags().StringVar(&req.Seniority, "seniority", "", "Seniority, e.g. senior")
	cmd.Flags().StringArrayVar(&req.Keywords, "keyword", nil, "Keyword to include; repeat for more")
	cmd.Flags().BoolVar(&save, "save", false, "Create a draft job from the result")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func (a *App) renderJob(j models.Job) {
	details(a.out, j.Title, [][2]string{
		{"ID", j.ID},
		{"Status", string(j.Status)},
		{"Department", orDash(j.DepartmentID)},
		{"Category", orDash(j.CategoryID)},
		{"Location", orDash(j.Location)},
		{"Type", orDash(j.EmploymentType)},
		{"Salary", formatSalary(j.SalaryMin, j.SalaryMax)},
		{"Requirements", orDash(strings.Join(j.Requirements, ", "))},
		{"Created", formatTime(j.CreatedAt)},
		{"Updated", formatTime(j.UpdatedAt)},
	})
	if j.Description != "" {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, j.Description)
	}
}
