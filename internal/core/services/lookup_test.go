package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearline-health/eligo/internal/core/domain"
)

// fakeGateway returns canned documents per operation.
type fakeGateway struct {
	searchDoc   domain.Document
	searchErr   error
	networkDoc  domain.Document
	networkErr  error
	coverageDoc domain.Document
	coverageErr error
	cardRes     *domain.CardResult
	cardErr     error

	coverageQueries []domain.CoverageQuery
}

func (f *fakeGateway) SearchEligibility(ctx context.Context, q domain.EligibilityQuery) (domain.Document, error) {
	return f.searchDoc, f.searchErr
}

func (f *fakeGateway) CheckNetworkStatus(ctx context.Context, q domain.NetworkStatusQuery) (domain.Document, error) {
	return f.networkDoc, f.networkErr
}

func (f *fakeGateway) GetCopayCoinsurance(ctx context.Context, q domain.CoverageQuery) (domain.Document, error) {
	f.coverageQueries = append(f.coverageQueries, q)
	return f.coverageDoc, f.coverageErr
}

func (f *fakeGateway) GetMemberCardImage(ctx context.Context, req domain.MemberCardRequest) (*domain.CardResult, error) {
	return f.cardRes, f.cardErr
}

// fakeHistory records appended entries.
type fakeHistory struct {
	records []domain.LookupRecord
}

func (f *fakeHistory) Record(ctx context.Context, rec domain.LookupRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeHistory) List(ctx context.Context, limit int) ([]domain.LookupRecord, error) {
	return f.records, nil
}

func (f *fakeHistory) Clear(ctx context.Context) error {
	f.records = nil
	return nil
}

func (f *fakeHistory) Close() error { return nil }

func searchDocWithIdentifiers() domain.Document {
	return domain.Document{
		"memberId": "M123",
		"memberPolicies": []any{
			map[string]any{
				"transactionId": "txn-1",
				"patientInfo": []any{
					map[string]any{"patientKey": "pk-1", "firstName": "Jane", "dateOfBirth": "1985-03-24"},
				},
				"insuranceInfo": map[string]any{"memberId": "M123", "payerId": "87726"},
			},
		},
	}
}

func TestSearchFetchesCoverageAutomatically(t *testing.T) {
	gw := &fakeGateway{
		searchDoc: searchDocWithIdentifiers(),
		coverageDoc: domain.Document{
			"CopayCoInsuranceDetails": map[string]any{
				"individual": map[string]any{
					"inNetwork": map[string]any{
						"found": true,
						"services": []any{
							map[string]any{"found": true, "text": "Office Visit"},
						},
					},
				},
			},
		},
	}
	hist := &fakeHistory{}
	s := NewLookupService(gw, hist)

	res, err := s.Search(context.Background(), domain.EligibilityQuery{MemberID: "M123", DateOfBirth: "1985-03-24"})
	require.NoError(t, err)

	assert.Equal(t, "pk-1", res.Identifiers.PatientKey)
	assert.Empty(t, res.CoverageWarning)
	require.NotNil(t, res.Coverage)
	require.Len(t, res.Coverage.InNetwork, 1)
	assert.Equal(t, "Office Visit", res.Coverage.InNetwork[0].Service)

	// The automatic fetch uses the enhanced endpoint.
	require.Len(t, gw.coverageQueries, 1)
	assert.True(t, gw.coverageQueries[0].Enhanced)
	assert.Equal(t, "pk-1", gw.coverageQueries[0].PatientKey)

	// Both operations land in history.
	require.Len(t, hist.records, 2)
	assert.Equal(t, domain.OpEligibilitySearch, hist.records[0].Operation)
	assert.Equal(t, domain.OpCoverageDetail, hist.records[1].Operation)
	assert.True(t, hist.records[0].OK)
	assert.NotEmpty(t, hist.records[0].ID)
}

func TestSearchMissingIdentifiersWarns(t *testing.T) {
	gw := &fakeGateway{searchDoc: domain.Document{"searchStatus": "NotFound"}}
	s := NewLookupService(gw, nil)

	res, err := s.Search(context.Background(), domain.EligibilityQuery{MemberID: "M123", DateOfBirth: "1985-03-24"})
	require.NoError(t, err)

	assert.Nil(t, res.Coverage)
	assert.Contains(t, res.CoverageWarning, "patient key")
	assert.Empty(t, gw.coverageQueries)
}

func TestSearchCoverageFailureWarnsNotFails(t *testing.T) {
	gw := &fakeGateway{
		searchDoc:   searchDocWithIdentifiers(),
		coverageErr: &domain.APIError{Kind: domain.KindAPI, StatusCode: 500, Body: domain.Document{"message": "upstream down"}},
	}
	hist := &fakeHistory{}
	s := NewLookupService(gw, hist)

	res, err := s.Search(context.Background(), domain.EligibilityQuery{MemberID: "M123", DateOfBirth: "1985-03-24"})
	require.NoError(t, err)

	assert.Nil(t, res.Coverage)
	assert.Contains(t, res.CoverageWarning, "upstream down")

	require.Len(t, hist.records, 2)
	assert.False(t, hist.records[1].OK)
	assert.Equal(t, 500, hist.records[1].StatusCode)
}

func TestSearchErrorRecorded(t *testing.T) {
	gw := &fakeGateway{searchErr: domain.NewTimeoutError()}
	hist := &fakeHistory{}
	s := NewLookupService(gw, hist)

	_, err := s.Search(context.Background(), domain.EligibilityQuery{MemberID: "M123", DateOfBirth: "1985-03-24"})
	require.True(t, domain.IsTimeout(err))

	require.Len(t, hist.records, 1)
	assert.False(t, hist.records[0].OK)
	assert.Equal(t, 408, hist.records[0].StatusCode)
}

func TestNetworkStatus(t *testing.T) {
	gw := &fakeGateway{networkDoc: domain.Document{"networkStatus": "IN"}}
	hist := &fakeHistory{}
	s := NewLookupService(gw, hist)

	doc, err := s.NetworkStatus(context.Background(), domain.NetworkStatusQuery{MemberID: "M123", TransactionID: "txn-1"})
	require.NoError(t, err)
	assert.Equal(t, "IN", doc["networkStatus"])

	require.Len(t, hist.records, 1)
	assert.Equal(t, domain.OpNetworkStatus, hist.records[0].Operation)
	assert.Equal(t, "txn-1", hist.records[0].TransactionID)
}

func TestCoverage(t *testing.T) {
	gw := &fakeGateway{coverageDoc: domain.Document{}}
	s := NewLookupService(gw, nil)

	doc, detail, err := s.Coverage(context.Background(), domain.CoverageQuery{PatientKey: "pk", TransactionID: "txn"})
	require.NoError(t, err)
	assert.NotNil(t, doc)
	require.NotNil(t, detail)
	assert.Empty(t, detail.InNetwork)
}

func TestMemberCard(t *testing.T) {
	gw := &fakeGateway{cardRes: &domain.CardResult{Image: []byte{0x89, 'P', 'N', 'G'}, ContentType: "image/png"}}
	hist := &fakeHistory{}
	s := NewLookupService(gw, hist)

	res, err := s.MemberCard(context.Background(), domain.MemberCardRequest{
		TransactionID: "txn-1", MemberID: "M123", DateOfBirth: "1985-03-24", PayerID: "87726", FirstName: "Jane",
	})
	require.NoError(t, err)
	assert.True(t, res.IsImage())

	require.Len(t, hist.records, 1)
	assert.Equal(t, domain.OpMemberCard, hist.records[0].Operation)
}
