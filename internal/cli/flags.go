package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-ats-gateway/models"
)

// dateValue is a pflag.Value holding a calendar date in YYYY-MM-DD form.
type dateValue struct {
	t *time.Time
}

var _ pflag.Value = dateValue{}

func (d dateValue) String() string {
	if d.t == nil || d.t.IsZero() {
		return ""
	}
	return d.t.Format(time.DateOnly)
}

func (d dateValue) Set(s string) error {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	*d.t = t
	return nil
}

func (d dateValue) Type() string {
	return "date"
}

func bindDateRange(cmd *cobra.Command, from, to *time.Time) {
	cmd.Flags().Var(dateValue{from}, "from", "Start date (YYYY-MM-DD)")
	cmd.Flags().Var(dateValue{to}, "to", "End date (YYYY-MM-DD)")
}

func bindPaging(cmd *cobra.Command, p *models.Paging) {
	cmd.Flags().IntVar(&p.Page, "page", 0, "Page number, starting at 1")
	cmd.Flags().IntVar(&p.PageSize, "page-size", 0, "Items per page")
}

// optionalInt returns a pointer to the flag value when the flag was set.
func optionalInt(cmd *cobra.Command, name string, v int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}
