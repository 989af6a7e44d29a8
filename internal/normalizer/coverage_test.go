package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearline-health/eligo/internal/core/domain"
)

func sampleCoverageDoc() domain.Document {
	return domain.Document{
		"CopayCoInsuranceDetails": map[string]any{
			"individual": map[string]any{
				"inNetwork": map[string]any{
					"found": true,
					"services": []any{
						map[string]any{
							"found":              true,
							"text":               "Office Visit",
							"status":             "Active",
							"coPayAmount":        "25",
							"coPayFrequency":     "/visit",
							"coInsurancePercent": "20",
							"messages": map[string]any{
								"deductibles": map[string]any{
									"found":   true,
									"message": []any{"Applies to deductible", "In-network only"},
								},
								"benefitsAllowed": map[string]any{
									"found":   true,
									"message": []any{"30 visits per year"},
									"limitationInfo": []any{
										map[string]any{
											"lmtPeriod":         "Calendar Year",
											"lmtType":           "Visits",
											"lmtOccurPerPeriod": "30",
											"message":           []any{"Combined with chiropractic"},
										},
									},
								},
							},
						},
						map[string]any{"found": false, "text": "Skipped"},
					},
				},
				"outOfNetwork": map[string]any{
					"found": true,
					"services": []any{
						map[string]any{"found": true, "service": "ER"},
					},
				},
			},
		},
		"vendorCoverageDetails": map[string]any{
			"found": true,
			"vendorServices": []any{
				map[string]any{"text": "Vision", "vendorName": "Spectera", "url": "https://spectera.example"},
			},
		},
	}
}

func TestCoverage(t *testing.T) {
	c := Coverage(sampleCoverageDoc())

	require.Len(t, c.InNetwork, 1)
	line := c.InNetwork[0]
	assert.Equal(t, "Office Visit", line.Service)
	assert.Equal(t, "Active", line.Status)
	assert.Equal(t, "$25/visit", line.Copay)
	assert.Equal(t, "20%", line.Coinsurance)
	assert.Equal(t, "Applies to deductible; In-network only", line.Deductible)

	require.Len(t, c.OutOfNetwork, 1)
	assert.Equal(t, "ER", c.OutOfNetwork[0].Service)
	assert.Equal(t, "$0", c.OutOfNetwork[0].Copay)
	assert.Equal(t, "0%", c.OutOfNetwork[0].Coinsurance)
	assert.Equal(t, "N/A", c.OutOfNetwork[0].Deductible)

	require.Len(t, c.Benefits, 1)
	b := c.Benefits[0]
	assert.Equal(t, "Office Visit", b.Service)
	assert.Equal(t, []string{"30 visits per year"}, b.Messages)
	require.Len(t, b.Limitations, 1)
	assert.Equal(t, "Calendar Year", b.Limitations[0].Period)
	assert.Equal(t, "30", b.Limitations[0].OccurrencePerPeriod)
	assert.Equal(t, "N/A", b.Limitations[0].DollarPerPeriod)

	require.Len(t, c.Vendors, 1)
	assert.Equal(t, "Spectera", c.Vendors[0].VendorName)
}

func TestCoverageEmptyDocument(t *testing.T) {
	c := Coverage(domain.Document{})
	assert.Empty(t, c.InNetwork)
	assert.Empty(t, c.OutOfNetwork)
	assert.Empty(t, c.Benefits)
	assert.Empty(t, c.Vendors)
}

func TestCoverageTierNotFound(t *testing.T) {
	doc := domain.Document{
		"CopayCoInsuranceDetails": map[string]any{
			"individual": map[string]any{
				"inNetwork": map[string]any{
					"found":    false,
					"services": []any{map[string]any{"found": true, "text": "Hidden"}},
				},
			},
		},
	}
	c := Coverage(doc)
	assert.Empty(t, c.InNetwork)
}

func TestServiceNamePreference(t *testing.T) {
	assert.Equal(t, "Display", serviceName(map[string]any{"text": "Display", "service": "CODE"}))
	assert.Equal(t, "CODE", serviceName(map[string]any{"service": "CODE"}))
	assert.Equal(t, "Unknown", serviceName(map[string]any{}))
}
