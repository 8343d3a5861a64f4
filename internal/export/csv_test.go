package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteProfilesToCSV(t *testing.T) {
	records := []ProfileRecord{
		{
			CustomerProfileID:  "10000",
			MerchantCustomerID: "cust-1",
			Description:        "first customer",
			Email:              "one@example.com",
		},
		{
			CustomerProfileID: "10001",
		},
	}

	csvFile := filepath.Join(t.TempDir(), "profiles.csv")
	require.NoError(t, WriteProfilesToCSV(records, csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "CustomerProfileId,MerchantCustomerId,Description,Email")
	assert.Contains(t, content, "10000,cust-1,first customer,one@example.com")
	assert.Contains(t, content, "10001,,,")
}

func TestWriteProfilesToCSVCreatesDirectory(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "nested", "dir", "profiles.csv")
	require.NoError(t, WriteProfilesToCSV([]ProfileRecord{{CustomerProfileID: "1"}}, csvFile))

	_, err := os.Stat(csvFile)
	assert.NoError(t, err)
}

func TestWriteProfilesToCSVNilRecords(t *testing.T) {
	err := WriteProfilesToCSV(nil, filepath.Join(t.TempDir(), "profiles.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil records")
}

func TestReadProfilesFromCSVRoundTrip(t *testing.T) {
	records := []ProfileRecord{
		{CustomerProfileID: "10000", Email: "one@example.com"},
		{CustomerProfileID: "10001", Email: "two@example.com"},
	}

	csvFile := filepath.Join(t.TempDir(), "profiles.csv")
	require.NoError(t, WriteProfilesToCSV(records, csvFile))

	got, err := ReadProfilesFromCSV(csvFile)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestReadProfilesFromCSVMissingFile(t *testing.T) {
	_, err := ReadProfilesFromCSV(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}

func TestIDsToRecords(t *testing.T) {
	assert.Empty(t, IDsToRecords(nil))

	records := IDsToRecords([]string{"1", "2"})
	require.Len(t, records, 2)
	assert.Equal(t, "1", records[0].CustomerProfileID)
	assert.Equal(t, "2", records[1].CustomerProfileID)
}
