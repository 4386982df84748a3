package validation

import (
	"testing"

	"bizops-dashboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructReportsJSONPaths(t *testing.T) {
	err := Struct(&model.Vendor{Brand: "acme", Status: "gone"})
	require.Error(t, err)

	byPath := map[string]FieldError{}
	for _, fe := range Describe(err) {
		byPath[fe.Path[0]] = fe
	}
	assert.Equal(t, "invalid_enum_value", byPath["brand"].Code)
	assert.Equal(t, "invalid_type", byPath["name"].Code)
	assert.Equal(t, "invalid_type", byPath["category"].Code)
	assert.Equal(t, "invalid_enum_value", byPath["status"].Code)
}

func TestPartialOnlyChecksNamedFields(t *testing.T) {
	// Name and Category are required but absent; only Status is checked.
	assert.NoError(t, Partial(&model.Vendor{Status: model.VendorInactive}, "Status"))

	err := Partial(&model.Vendor{Status: "bogus"}, "Status")
	require.Error(t, err)
	fes := Describe(err)
	require.Len(t, fes, 1)
	assert.Equal(t, []string{"status"}, fes[0].Path)
}

func TestPartialWithNoFields(t *testing.T) {
	assert.NoError(t, Partial(&model.Vendor{}))
}

func TestDescribeIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, Describe(assert.AnError))
}
