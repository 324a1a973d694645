package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV(t *testing.T) {
	t.Parallel()
	out, err := CSV(
		[]string{"name", "email"},
		[][]string{
			{"Asha", "asha@example.com"},
			{"Ravi, Jr.", "ravi@example.com"},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, "name,email\nAsha,asha@example.com\n\"Ravi, Jr.\",ravi@example.com\n", string(out))
}

func TestListPDF(t *testing.T) {
	t.Parallel()
	out, err := ListPDF("Attendance Report", []string{"1. Asha - 2024-03-10 - present"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
