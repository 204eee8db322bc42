package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ats-gateway/models"
)

func bindDashboardFilter(cmd *cobra.Command, f *models.DashboardFilter) {
	bindDateRange(cmd, &f.From, &f.To)
	cmd.Flags().StringVar(&f.DepartmentID, "department", "", "Limit to a department")
	cmd.Flags().StringVar(&f.JobID, "job", "", "Limit to a job")
}

func (a *App) newDashboardCmd() *cobra.Command {
	var filter models.DashboardFilter

	overview := &cobra.Command{
		Use:   "overview",
		Short: "Show hiring manager key figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.services.Dashboard.Overview(cmd.Context(), filter)
			if err != nil {
				return a.fail(err)
			}

			return a.show(o, func() {
				details(a.out, "Overview", [][2]string{
					{"Open jobs", fmt.Sprint(o.OpenJobs)},
					{"Active candidates", fmt.Sprint(o.ActiveCandidates)},
					{"Applications", fmt.Sprint(o.ApplicationsTotal)},
					{"Upcoming interviews", fmt.Sprint(o.InterviewsUpcoming)},
					{"Pending offers", fmt.Sprint(o.OffersPending)},
					{"Hires", fmt.Sprint(o.HiresThisPeriod)},
					{"Avg. time to hire", fmt.Sprintf("%.1f days", o.AvgTimeToHireDays)},
				})
			})
		},
	}
	bindDashboardFilter(overview, &filter)

	pipeline := &cobra.Command{
		Use:   "pipeline",
		Short: "Show the application funnel by stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stages, err := a.services.Dashboard.Pipeline(cmd.Context(), filter)
			if err != nil {
				return a.fail(err)
			}

			return a.show(stages, func() {
				rows := make([][]string, 0, len(stages))
				for _, s := range stages {
					rows = append(rows, []string{string(s.Stage), fmt.Sprint(s.Count), fmt.Sprintf("%.0f%%", s.ConversionRate*100)})
				}
				table(a.out, []string{"STAGE", "COUNT", "CONVERSION"}, rows)
			})
		},
	}
	bindDashboardFilter(pipeline, &filter)

	timeToHire := &cobra.Command{
		Use:   "time-to-hire",
		Short: "Show average time to hire per period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := a.services.Dashboard.TimeToHire(cmd.Context(), filter)
			if err != nil {
				return a.fail(err)
			}

			return a.show(points, func() {
				rows := make([][]string, 0, len(points))
				for _, p := range points {
					rows = append(rows, []string{p.Period, fmt.Sprintf("%.1f", p.AvgDays), fmt.Sprint(p.Hires)})
				}
				table(a.out, []string{"PERIOD", "AVG DAYS", "HIRES"}, rows)
			})
		},
	}
	bindDashboardFilter(timeToHire, &filter)

	sources := &cobra.Command{
		Use:   "sources",
		Short: "Show where candidates come from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			breakdown, err := a.services.Dashboard.Sources(cmd.Context(), filter)
			if err != nil {
				return a.fail(err)
			}

			return a.show(breakdown, func() {
				rows := make([][]string, 0, len(breakdown))
				for _, s := range breakdown {
					rows = append(rows, []string{s.Source, fmt.Sprint(s.Count), fmt.Sprint(s.Hired)})
				}
				table(a.out, []string{"SOURCE", "CANDIDATES", "HIRED"}, rows)
			})
		},
	}
	bindDashboardFilter(sources, &filter)

	return a.group("dashboard", "Hiring analytics", overview, pipeline, timeToHire, sources)
}
