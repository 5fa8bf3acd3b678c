package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folhita/catalogo/internal/domain"
)

func testSubmission(t *testing.T) *domain.Submission {
	t.Helper()
	f := domain.NewCatalogForm()
	require.NoError(t, f.SetValidUntil("Julho"))
	p := f.Plans()[0]
	require.NoError(t, f.UpdateField(p.ID, domain.FieldDuration, "15 SEG"))
	require.NoError(t, f.UpdateField(p.ID, domain.FieldLocation, "EUNÁPOLIS/BA - BR101"))
	require.NoError(t, f.UpdateField(p.ID, domain.FieldContractTime, "12 meses"))
	require.NoError(t, f.UpdateField(p.ID, domain.FieldValue, "1200"))

	sub, err := f.Submit(time.Date(2026, 7, 9, 10, 0, 0, 0, time.Local))
	require.NoError(t, err)
	return sub
}

// pageCount counts page objects in the PDF output. Each page contributes a
// "/Type /Page" entry; the page tree root contributes one "/Type /Pages".
func pageCount(out []byte) int {
	return bytes.Count(out, []byte("/Type /Page")) - bytes.Count(out, []byte("/Type /Pages"))
}

func TestRender_ProducesFivePages(t *testing.T) {
	sub := testSubmission(t)

	out, err := NewRenderer(2026).Render(sub)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Equal(t, 5, pageCount(out))
}

func TestRender_EndToEndExample(t *testing.T) {
	sub := testSubmission(t)
	assert.Equal(t, "Eunápolis - BA", sub.Location)
	assert.Equal(t, "R$ 1200", sub.Plans[0].Value, "pre-render value keeps raw text")
	assert.Equal(t, "R$ 1.200,00", FormatCurrency(sub.Plans[0].Value), "table cell is locale formatted")

	out, err := NewRenderer(2026).Render(sub)
	require.NoError(t, err)
	assert.Equal(t, 5, pageCount(out))
}

func TestRender_DeterministicForSameInput(t *testing.T) {
	sub := testSubmission(t)
	r := NewRenderer(2026)

	first, err := r.Render(sub)
	require.NoError(t, err)
	second, err := r.Render(sub)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical input must produce identical bytes")
}

func TestRender_RowPerPlanInOrder(t *testing.T) {
	f := domain.NewCatalogForm()
	require.NoError(t, f.SetValidUntil("Março"))
	first := f.Plans()[0]
	require.NoError(t, f.UpdateField(first.ID, domain.FieldLocation, domain.Locations[0]))
	require.NoError(t, f.UpdateField(first.ID, domain.FieldValue, "500"))
	for i := 0; i < 3; i++ {
		p := f.AddPlan()
		require.NoError(t, f.UpdateField(p.ID, domain.FieldLocation, domain.Locations[1]))
		require.NoError(t, f.UpdateField(p.ID, domain.FieldValue, "900"))
	}

	sub, err := f.Submit(time.Now())
	require.NoError(t, err)
	require.Len(t, sub.Plans, 4)

	out, err := NewRenderer(2026).Render(sub)
	require.NoError(t, err)
	assert.Equal(t, 5, pageCount(out), "extra rows never add pages")
}

func TestRender_WithClientRecord(t *testing.T) {
	sub := testSubmission(t)
	sub.Client = &domain.ClientRecord{
		CNPJ:      "11.222.333/0001-81",
		LegalName: "ACME COMERCIO LTDA",
		TradeName: "ACME",
	}

	out, err := NewRenderer(2026).Render(sub)
	require.NoError(t, err)
	assert.Equal(t, 5, pageCount(out))
}
