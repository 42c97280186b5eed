package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cedepro/oferta/internal/dataset"
)

func TestCompareUnionKeepsEveryKey(t *testing.T) {
	snap := &dataset.Snapshot{
		Offerings: []dataset.Offering{
			offering("GUAYAS", "Artes", "UG", "MAESTRÍA"),
		},
		Enrollment: []dataset.Enrollment{
			enrollment(2020, "MAESTRÍA", "EDUCACION", "GUAYAS", 90),
		},
		Graduates: []dataset.Graduate{
			graduate(2024, "DERECHO", "GUAYAS", 15),
		},
	}

	merged := Compare(snap, "", "2020", "")
	require.Len(t, merged, 3)

	byField := map[string]MergedRow{}
	for _, row := range merged {
		byField[row.Field] = row
	}

	// Offering-only key.
	artes := byField["Artes"]
	assert.Equal(t, 1, artes.Offerings)
	assert.Zero(t, artes.Enrolled)

	// Enrollment-only key keeps the enrollment label.
	educacion := byField["EDUCACION"]
	assert.Equal(t, 90, educacion.Enrolled)
	assert.Zero(t, educacion.Offerings)

	// Graduate-only key falls back to the canonical key as label.
	derecho := byField["DERECHO"]
	require.NotNil(t, derecho.Graduates)
	assert.Equal(t, 15, *derecho.Graduates)
	assert.Zero(t, derecho.Offerings)
	assert.Zero(t, derecho.Enrolled)
}

func TestCompareCohortOffset(t *testing.T) {
	snap := testSnapshot()

	merged := Compare(snap, "", "2020", "")
	require.NotEmpty(t, merged)
	for _, row := range merged {
		require.NotNil(t, row.GraduationYear)
		assert.Equal(t, 2024, *row.GraduationYear)
	}

	byField := map[string]MergedRow{}
	for _, row := range merged {
		byField[row.Field] = row
	}
	// Cohort 2020 counts only graduates of 2024.
	require.NotNil(t, byField["Educación"].Graduates)
	assert.Equal(t, 40, *byField["Educación"].Graduates)
	require.NotNil(t, byField["Salud"].Graduates)
	assert.Zero(t, *byField["Salud"].Graduates)
}

func TestCompareAllYearsOmitsGraduates(t *testing.T) {
	merged := Compare(testSnapshot(), "", "ALL", "")
	require.NotEmpty(t, merged)
	for _, row := range merged {
		assert.Nil(t, row.Graduates)
		assert.Nil(t, row.GraduationYear)
	}

	// The omitted fields disappear from the JSON entirely.
	data, err := json.Marshal(merged[0])
	require.NoError(t, err)
	assert.NotContains(t, string(data), "titulados")
	assert.NotContains(t, string(data), "anio_titulacion")
}

func TestCompareSortPolicies(t *testing.T) {
	snap := &dataset.Snapshot{
		Offerings: []dataset.Offering{
			offering("GUAYAS", "Artes", "UG", "MAESTRÍA"),
			offering("GUAYAS", "Artes", "UC", "MAESTRÍA"),
			offering("GUAYAS", "Salud", "UG", "MAESTRÍA"),
		},
		Enrollment: []dataset.Enrollment{
			enrollment(2020, "MAESTRÍA", "ARTES", "GUAYAS", 10),
			enrollment(2020, "MAESTRÍA", "SALUD", "GUAYAS", 500),
		},
	}

	t.Run("specific year is offering first", func(t *testing.T) {
		merged := Compare(snap, "", "2020", "")
		require.Len(t, merged, 2)
		assert.Equal(t, "Artes", merged[0].Field)
		assert.Equal(t, "Salud", merged[1].Field)
	})

	t.Run("historical view is enrollment first", func(t *testing.T) {
		merged := Compare(snap, "", "ALL", "")
		require.Len(t, merged, 2)
		assert.Equal(t, "Salud", merged[0].Field)
		assert.Equal(t, "Artes", merged[1].Field)
	})

	t.Run("non-numeric year still sorts offering first", func(t *testing.T) {
		// The enrollment filter ignores the unparseable year, but the sort
		// policy still treats it as a specific-period request.
		merged := Compare(snap, "", "2020-II", "")
		require.Len(t, merged, 2)
		assert.Equal(t, "Artes", merged[0].Field)
		// No numeric cohort, so no graduate columns.
		assert.Nil(t, merged[0].Graduates)
	})
}

func TestCompareEmptySnapshot(t *testing.T) {
	merged := Compare(dataset.Empty(), "GUAYAS", "2020", "MAESTRÍA")
	assert.Empty(t, merged)
}

func TestCompareAccentVariantsCollapse(t *testing.T) {
	snap := &dataset.Snapshot{
		Offerings: []dataset.Offering{
			offering("GUAYAS", "Educación", "UG", "MAESTRÍA"),
			offering("GUAYAS", "EDUCACION", "UC", "MAESTRÍA"),
		},
	}

	merged := Compare(snap, "", "", "")
	require.Len(t, merged, 1)
	// Both spellings land on one key; the counts sum.
	assert.Equal(t, 2, merged[0].Offerings)
}
