package profile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shubhmangal/backend/internal/domain"
)

// csvHeaders is the fixed export column order.
var csvHeaders = []string{
	"Name", "Email", "Mobile", "Age", "Gender", "Location",
	"Detail Location", "Hobbies", "Must Have", "Bihar/Bahi",
	"Caste", "Intercaste", "Status", "Created At",
}

// ExportCSV writes the profile list as CSV with standard quoting. Hobbies
// are joined with "; " so the cell survives comma-separated parsing.
func ExportCSV(w io.Writer, profiles []domain.Profile) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeaders); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, p := range profiles {
		age := ""
		if p.Age != nil {
			age = fmt.Sprintf("%d", *p.Age)
		}
		row := []string{
			p.FullName,
			p.Email,
			p.Mobile,
			age,
			p.Gender,
			p.Location,
			p.DetailLocation,
			strings.Join(p.Hobbies, "; "),
			p.MustHave,
			p.BiharBahi,
			p.Caste,
			p.Intercaste,
			string(p.Status),
			p.CreatedAt.Format("2006-01-02"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
