package colleges

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageAnnualFee(t *testing.T) {
	college := &College{
		Programs: ProgramList{
			{Name: "B.Tech", AnnualFee: 100000},
			{Name: "B.Sc.", AnnualFee: 50000},
		},
	}
	assert.Equal(t, float64(75000), college.AverageAnnualFee())
}

func TestAverageAnnualFee_NoPrograms(t *testing.T) {
	college := &College{}
	assert.Zero(t, college.AverageAnnualFee())
}

func TestHasStreamProgram(t *testing.T) {
	college := &College{
		Programs: ProgramList{
			{Name: "B.Com", Stream: "Commerce"},
		},
	}

	assert.True(t, college.HasStreamProgram("Commerce"))
	assert.False(t, college.HasStreamProgram("Science"))
}

func TestHasStreamProgram_AllMatchesEveryStream(t *testing.T) {
	college := &College{
		Programs: ProgramList{
			{Name: "Foundation", Stream: "All"},
		},
	}

	assert.True(t, college.HasStreamProgram("Science"))
	assert.True(t, college.HasStreamProgram("Arts"))
}
