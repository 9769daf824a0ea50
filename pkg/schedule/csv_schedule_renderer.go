package schedule

import (
	"bytes"
	"encoding/csv"

	log "github.com/sirupsen/logrus"
)

// ScheduleRenderer turns a schedule into its tabular textual form.
type ScheduleRenderer interface {
	Render(schedule Schedule) (string, error)
}

type CsvScheduleRendererImpl struct {
}

func NewCsvScheduleRenderer() *CsvScheduleRendererImpl {
	return &CsvScheduleRendererImpl{}
}

// Render produces the header row {"Month","Salary","Bonus"} followed by one
// record per month, dates in day/month/year form.
func (r *CsvScheduleRendererImpl) Render(schedule Schedule) (string, error) {
	data := make([][]string, 0, len(schedule.Rows)+1)
	data = append(data, Header())
	for _, row := range schedule.Rows {
		data = append(data, []string{
			row.MonthName(),
			row.SalaryDate.Format(DateFormat),
			row.BonusDate.Format(DateFormat),
		})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, record := range data {
		err := writer.Write(record)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
