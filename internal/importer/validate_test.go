package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRow() Row {
	return Row{Line: 2, Date: "2024-03-04", StartTime: "09:00", EndTime: "10:00", Project: "Thesis"}
}

func TestValidateRows_Valid(t *testing.T) {
	assert.Empty(t, ValidateRows([]Row{validRow()}))
}

func TestValidateRows_CollectsAllErrors(t *testing.T) {
	r := Row{Line: 7, Date: "04/03/2024", StartTime: "9am", EndTime: "", Mood: "11"}
	errs := ValidateRows([]Row{r})
	assert.Len(t, errs, 5)
	for _, err := range errs {
		assert.Contains(t, err.Error(), "line 7")
	}
}

func TestValidateRows_ProjectIDAloneIsEnough(t *testing.T) {
	r := validRow()
	r.Project = ""
	r.ProjectID = "p1"
	assert.Empty(t, ValidateRows([]Row{r}))
}

func TestValidateRows_MoodNotNumber(t *testing.T) {
	r := validRow()
	r.Mood = "great"
	errs := ValidateRows([]Row{r})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "not a number")
}
