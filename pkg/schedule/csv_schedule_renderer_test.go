package schedule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCsvScheduleRendererImpl_Render(t *testing.T) {
	// given
	renderer := NewCsvScheduleRenderer()
	generated := Generate(2024)

	// when
	rendered, err := renderer.Render(generated)

	// then
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "Month,Salary,Bonus", lines[0])
	assert.Equal(t, "January,31/01/2024,15/01/2024", lines[1])
	assert.Equal(t, "June,28/06/2024,19/06/2024", lines[6])
	assert.Equal(t, "September,30/09/2024,18/09/2024", lines[9])
	assert.Equal(t, "December,31/12/2024,18/12/2024", lines[12])
}

func TestCsvScheduleRendererImpl_RenderEmptySchedule(t *testing.T) {
	renderer := NewCsvScheduleRenderer()

	rendered, err := renderer.Render(Schedule{Year: 2024})

	require.NoError(t, err)
	assert.Equal(t, "Month,Salary,Bonus\n", rendered)
}
