package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearline-health/eligo/internal/core/domain"
)

func networkArgs() []string {
	return []string{
		"network",
		"--member-id", "M123",
		"--dob", "03/24/1985",
		"--provider-last-name", "SMITH",
		"--service-start", "01/01/2024",
		"--service-end", "01/31/2024",
	}
}

func TestNetworkRendersFlattenedFields(t *testing.T) {
	_, lookup, cleanup := setupTestServices()
	defer cleanup()
	lookup.networkDoc = domain.Document{
		"networkStatusCode": "INN",
		"providerName":      "SMITH, JOHN",
		"transactionId":     "txn-9",
	}

	out, err := execute(networkArgs()...)
	require.NoError(t, err)
	assert.Contains(t, out, "INN")
	assert.Contains(t, out, "SMITH, JOHN")
	assert.Contains(t, out, "txn-9")
}

func TestNetworkStatusShownOnceWhenBothKeysPresent(t *testing.T) {
	_, lookup, cleanup := setupTestServices()
	defer cleanup()
	lookup.networkDoc = domain.Document{
		"networkStatusCode": "INN",
		"networkStatus":     "In Network",
	}

	out, err := execute(networkArgs()...)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "Network status"))
	assert.Contains(t, out, "INN")
	assert.NotContains(t, out, "In Network")
}

func TestNetworkFallsBackToJSON(t *testing.T) {
	_, lookup, cleanup := setupTestServices()
	defer cleanup()
	lookup.networkDoc = domain.Document{"unexpected": map[string]any{"shape": true}}

	out, err := execute(networkArgs()...)
	require.NoError(t, err)
	assert.Contains(t, out, `"unexpected"`)
}
