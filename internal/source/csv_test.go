package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, src *CSV) []Row {
	t.Helper()

	var rows []Row

	require.NoError(t, src.Each(func(r Row) { rows = append(rows, r) }))

	return rows
}

func TestNewReader_Rows(t *testing.T) {
	data := "name,salary_from,area_name\n" +
		"Engineer,100,Moscow\n" +
		"Analyst,200,Kazan\n"

	src, err := NewReader(strings.NewReader(data))
	require.NoError(t, err)

	rows := collect(t, src)
	require.Len(t, rows, 2)
	assert.Equal(t, Row{"name": "Engineer", "salary_from": "100", "area_name": "Moscow"}, rows[0])
	assert.Equal(t, "Kazan", rows[1]["area_name"])
	assert.Equal(t, Stats{Read: 2, Skipped: 0}, src.Stats())
}

func TestNewReader_SkipsIncompleteRows(t *testing.T) {
	data := "name,salary_from,salary_to\n" +
		"Engineer,100,200\n" +
		"Analyst,100,\n" +
		"Tester,100\n" +
		"Manager,100,200,extra\n" +
		"Lead,300,400\n"

	src, err := NewReader(strings.NewReader(data))
	require.NoError(t, err)

	rows := collect(t, src)
	require.Len(t, rows, 2)
	assert.Equal(t, "Engineer", rows[0]["name"])
	assert.Equal(t, "Lead", rows[1]["name"])
	assert.Equal(t, Stats{Read: 5, Skipped: 3}, src.Stats())
}

func TestNewReader_QuotedFields(t *testing.T) {
	data := "name,area_name\n" +
		"\"Engineer, senior\",\"Saint\nPetersburg\"\n"

	src, err := NewReader(strings.NewReader(data))
	require.NoError(t, err)

	rows := collect(t, src)
	require.Len(t, rows, 1)
	assert.Equal(t, "Engineer, senior", rows[0]["name"])
	assert.Equal(t, "Saint\nPetersburg", rows[0]["area_name"])
}

func TestNewReader_StripsBOM(t *testing.T) {
	src, err := NewReader(strings.NewReader("\uFEFFname,area_name\nA,B\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "area_name"}, src.Headers())
}

func TestNewReader_Empty(t *testing.T) {
	_, err := NewReader(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOpenInput))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vacancies.csv")
	require.NoError(t, os.WriteFile(path, []byte("name\nEngineer\n"), 0644))

	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	rows := collect(t, src)
	require.Len(t, rows, 1)
	assert.Equal(t, "Engineer", rows[0]["name"])
}
