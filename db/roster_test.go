package db

import (
	"strings"
	"testing"

	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rollcall-roster-go/models"
)

func TestInsertCountsUpToCapacity(t *testing.T) {
	r := NewRoster()
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, models.Capacity, r.Cap())

	for i := 1; i <= models.Capacity; i++ {
		require.NoError(t, r.Insert(i, "Student", models.GradeC))
		assert.Equal(t, i, r.Len())
	}
}

func TestInsertBeyondCapacity(t *testing.T) {
	r := NewRoster()
	for i := 1; i <= models.Capacity; i++ {
		require.NoError(t, r.Insert(i, "Student", models.GradeB))
	}
	before := r.Students()

	err := r.Insert(17, "Overflow", models.GradeA)
	assert.ErrorIs(t, err, ErrRosterFull)
	assert.Equal(t, models.Capacity, r.Len())
	assert.Equal(t, before, r.Students())
	assert.Nil(t, r.FindByID(17))
}

func TestFindByID(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.Insert(5, "First", models.GradeA))
	require.NoError(t, r.Insert(6, "Other", models.GradeB))
	require.NoError(t, r.Insert(5, "Second", models.GradeF))

	found := r.FindByID(5)
	require.NotNil(t, found)
	assert.Equal(t, "First", found.Name)
	assert.Equal(t, models.GradeA, found.Grade)

	found = r.FindByID(6)
	require.NotNil(t, found)
	assert.Equal(t, "Other", found.Name)

	assert.Nil(t, r.FindByID(99))
}

func TestEmptyRoster(t *testing.T) {
	r := NewRoster()
	assert.Nil(t, r.FindByID(0))
	assert.Nil(t, r.FindByID(1))
	assert.Empty(t, r.Students())
	assert.Equal(t, "", RenderAll(r))
}

func TestStudentsReturnsCopy(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.Insert(1, "Allison", models.GradeA))

	students := r.Students()
	students[0].Name = "Changed"
	assert.Equal(t, "Allison", r.FindByID(1).Name)
}

func TestInsertTruncatesName(t *testing.T) {
	r := NewRoster()
	long := strings.Repeat("x", 60)
	exact := strings.Repeat("y", models.MaxNameLength)

	require.NoError(t, r.Insert(1, long, models.GradeA))
	require.NoError(t, r.Insert(2, exact, models.GradeB))
	require.NoError(t, r.Insert(3, "Bob", models.GradeC))

	assert.Equal(t, strings.Repeat("x", models.MaxNameLength), r.FindByID(1).Name)
	assert.Equal(t, exact, r.FindByID(2).Name)
	assert.Equal(t, "Bob", r.FindByID(3).Name)
}

func TestTruncateNameGraphemes(t *testing.T) {
	// "e" + combining acute accent is one visible character
	accented := strings.Repeat("e\u0301", 60)
	got := TruncateName(accented)
	assert.Equal(t, models.MaxNameLength, uniseg.GraphemeClusterCount(got))
	assert.Equal(t, strings.Repeat("e\u0301", models.MaxNameLength), got)

	cjk := strings.Repeat("张", 50)
	assert.Equal(t, strings.Repeat("张", models.MaxNameLength), TruncateName(cjk))

	assert.Equal(t, "", TruncateName(""))
}
