package db

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rollcall-roster-go/models"
)

const seedOutput = `ID: 1
Name: Allison
Grade: A

ID: 2
Name: Bob
Grade: B

ID: 3
Name: Charlie
Grade: C

ID: 4
Name: Diana
Grade: A

ID: 5
Name: Eve
Grade: B

ID: 6
Name: Frank
Grade: F

ID: 7
Name: Grace
Grade: D

ID: 8
Name: Hannah
Grade: C

ID: 9
Name: Ian
Grade: A

ID: 10
Name: Jack
Grade: B

`

func TestRenderStudent(t *testing.T) {
	got := RenderStudent(models.Student{ID: 6, Name: "Frank", Grade: models.GradeF})
	assert.Equal(t, "ID: 6\nName: Frank\nGrade: F\n", got)
}

func TestRenderAllSeed(t *testing.T) {
	r := NewRoster()
	require.Equal(t, len(SeedStudents), Seed(r))
	assert.Equal(t, seedOutput, RenderAll(r))
}

func TestWriteAll(t *testing.T) {
	r := NewRoster()
	Seed(r)

	var buf bytes.Buffer
	require.NoError(t, WriteAll(&buf, r))
	assert.Equal(t, seedOutput, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteAllError(t *testing.T) {
	r := NewRoster()
	Seed(r)
	assert.Error(t, WriteAll(failingWriter{}, r))
}

func TestSeedSkipsWhenFull(t *testing.T) {
	r := NewRoster()
	for i := 0; i < models.Capacity-3; i++ {
		require.NoError(t, r.Insert(100+i, "Filler", models.GradeD))
	}

	assert.Equal(t, 3, Seed(r))
	assert.Equal(t, models.Capacity, r.Len())
	assert.NotNil(t, r.FindByID(3))
	assert.Nil(t, r.FindByID(4))
}
