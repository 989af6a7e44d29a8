package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearline-health/eligo/internal/core/domain"
)

func TestMoneyRowsSingleLeaf(t *testing.T) {
	section := map[string]any{
		"found": true,
		"individual": map[string]any{
			"found": true,
			"inNetwork": map[string]any{
				"found":              true,
				"planAmount":         "25",
				"planAmountFrequency": "/visit",
				"remainingAmount":    "0",
				"metYtdAmount":       "25",
			},
		},
	}

	rows := MoneyRows(section, "Policy 1")
	require.Len(t, rows, 1)
	assert.Equal(t, domain.MoneyRow{
		PolicyLabel: "Policy 1",
		Type:        "Individual In-Network",
		PlanAmount:  "$25/visit",
		Remaining:   "$0",
		MetYTD:      "$25",
	}, rows[0])
}

func TestMoneyRowsAllLeaves(t *testing.T) {
	leaf := func(amount string) map[string]any {
		return map[string]any{"found": true, "planAmount": amount}
	}
	section := map[string]any{
		"found": true,
		"individual": map[string]any{
			"found":        true,
			"inNetwork":    leaf("100"),
			"outOfNetwork": leaf("200"),
		},
		"family": map[string]any{
			"found":        true,
			"inNetwork":    leaf("300"),
			"outOfNetwork": leaf("400"),
		},
	}

	rows := MoneyRows(section, "Policy 2")
	require.Len(t, rows, 4)

	// Fixed ordering: individual before family, in-network before out.
	assert.Equal(t, "Individual In-Network", rows[0].Type)
	assert.Equal(t, "Individual Out-of-Network", rows[1].Type)
	assert.Equal(t, "Family In-Network", rows[2].Type)
	assert.Equal(t, "Family Out-of-Network", rows[3].Type)
	assert.Equal(t, "$300", rows[2].PlanAmount)
}

func TestMoneyRowsZeroDefaults(t *testing.T) {
	section := map[string]any{
		"found": true,
		"family": map[string]any{
			"found":        true,
			"outOfNetwork": map[string]any{"found": true},
		},
	}

	rows := MoneyRows(section, "Policy 1")
	require.Len(t, rows, 1)
	assert.Equal(t, "$0", rows[0].PlanAmount)
	assert.Equal(t, "$0", rows[0].Remaining)
	assert.Equal(t, "$0", rows[0].MetYTD)
}

func TestMoneyRowsNotFound(t *testing.T) {
	assert.Nil(t, MoneyRows(nil, "Policy 1"))
	assert.Nil(t, MoneyRows(map[string]any{"found": false}, "Policy 1"))

	// Section found, but no scope is.
	section := map[string]any{
		"found":      true,
		"individual": map[string]any{"found": false},
	}
	assert.Empty(t, MoneyRows(section, "Policy 1"))
}

func TestMoneyRowsStringFoundFlag(t *testing.T) {
	section := map[string]any{
		"found": "true",
		"individual": map[string]any{
			"found": "true",
			"inNetwork": map[string]any{
				"found":      "true",
				"planAmount": "50",
			},
		},
	}
	rows := MoneyRows(section, "Policy 1")
	require.Len(t, rows, 1)
	assert.Equal(t, "$50", rows[0].PlanAmount)
}

func TestMoneyRowsNumericAmounts(t *testing.T) {
	section := map[string]any{
		"found": true,
		"individual": map[string]any{
			"found": true,
			"inNetwork": map[string]any{
				"found":           true,
				"planAmount":      float64(1500),
				"remainingAmount": 750.5,
			},
		},
	}
	rows := MoneyRows(section, "Policy 1")
	require.Len(t, rows, 1)
	assert.Equal(t, "$1500", rows[0].PlanAmount)
	assert.Equal(t, "$750.5", rows[0].Remaining)
}

func TestSectionMessage(t *testing.T) {
	assert.Equal(t, "", sectionMessage(nil))
	assert.Equal(t, "", sectionMessage(map[string]any{"found": true}))
	// A message can ride on a section that is otherwise not found.
	assert.Equal(t, "No deductible applies",
		sectionMessage(map[string]any{"found": false, "message": "No deductible applies"}))
}
