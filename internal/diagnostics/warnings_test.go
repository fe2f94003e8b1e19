package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_KeepsEmissionOrder(t *testing.T) {
	c := NewCollector()
	c.FieldMissing("dCompet", "infNFSe.DPS.infDPS.dCompet", "-")
	c.MunicipalityNotFound("infNFSe.cLocIncid")
	c.FieldMissing("dCompet", "infNFSe.DPS.infDPS.dCompet", "-")
	c.TemplatePlaceholderEmpty("{{UNUSED}}")

	got := c.Warnings()
	require.Len(t, got, 4)
	assert.Equal(t, FieldMissing, got[0].Kind)
	assert.Equal(t, MunicipalityNotFound, got[1].Kind)
	assert.Equal(t, FieldMissing, got[2].Kind)
	assert.Equal(t, TemplatePlaceholderEmpty, got[3].Kind)
	assert.Equal(t, "{{UNUSED}}", got[3].Path)

	// duplicates are kept
	assert.Equal(t, 2, c.Count(FieldMissing))
}

func TestCollector_WarningsReturnsCopy(t *testing.T) {
	c := NewCollector()
	c.FieldMissing("a", "", "-")

	got := c.Warnings()
	got[0].Message = "changed"

	assert.NotEqual(t, "changed", c.Warnings()[0].Message)
}

func TestWarning_String(t *testing.T) {
	w := Warning{Kind: FieldMissing, Message: "field x missing; using '-'", Path: "a.b"}
	assert.Equal(t, "[NFSE_FIELD_MISSING] field x missing; using '-' (Path: a.b)", w.String())

	w.Path = ""
	assert.Equal(t, "[NFSE_FIELD_MISSING] field x missing; using '-'", w.String())
}

func TestKind_Code(t *testing.T) {
	assert.Equal(t, "MUNICIPIO_NOT_FOUND", MunicipalityNotFound.Code())
	assert.Equal(t, "TEMPLATE_PLACEHOLDER_EMPTY", TemplatePlaceholderEmpty.Code())
	assert.Equal(t, "UNKNOWN", Kind(99).Code())
}
