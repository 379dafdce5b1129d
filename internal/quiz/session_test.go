package quiz

import (
	"fmt"
	"testing"

	"temperament/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newCatalog(t *testing.T, n int) *catalog.Catalog {
	t.Helper()
	statements := make([]catalog.Statement, n)
	for i := range statements {
		statements[i] = catalog.Statement{
			ID:       i + 1,
			Text:     fmt.Sprintf("trait %d", i+1),
			Category: catalog.Categories[i%4],
		}
	}
	c, err := catalog.New(statements)
	require.NoError(t, err)
	return c
}

func assertFresh(t *testing.T, s *Session) {
	t.Helper()
	assert.Equal(t, 0, s.Page())
	assert.Equal(t, ModeAnswering, s.Mode())
	assert.Empty(t, s.Selected())
	assert.Nil(t, s.Result())
}

func TestNewSession_InitialState(t *testing.T) {
	s := NewSession(newCatalog(t, 25))
	assertFresh(t, s)
	assert.Equal(t, 3, s.TotalPages())
	assert.Equal(t, catalog.DefaultPageSize, s.PageSize())
}

func TestToggle_RoundTrip(t *testing.T) {
	s := NewSession(newCatalog(t, 25))

	assert.True(t, s.Toggle(4))
	assert.True(t, s.IsSelected(4))
	assert.False(t, s.Toggle(4))
	assert.False(t, s.IsSelected(4))
	assert.Empty(t, s.Selected())

	s.Toggle(2)
	s.Toggle(9)
	before := s.Selected()
	s.Toggle(9)
	s.Toggle(9)
	assert.Equal(t, before, s.Selected())
}

func TestToggle_UnknownIDIgnored(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := NewSession(newCatalog(t, 5), WithLogger(zap.New(core)))

	assert.False(t, s.Toggle(77))
	assert.Empty(t, s.Selected())
	assert.Equal(t, 1, logs.FilterMessage("ignoring toggle of unknown statement").Len())
}

func TestToggle_SelectionOnOtherPagesPersists(t *testing.T) {
	s := NewSession(newCatalog(t, 25))
	s.Toggle(1)
	require.NoError(t, s.NextPage())
	s.Toggle(15)
	s.PreviousPage()

	assert.Equal(t, []int{1, 15}, s.Selected())
	assert.Equal(t, 2, s.SelectedCount())
}

func TestPagination_PageSizes(t *testing.T) {
	s := NewSession(newCatalog(t, 25))

	assert.Len(t, s.CurrentPageItems(), 10)
	require.NoError(t, s.NextPage())
	assert.Len(t, s.CurrentPageItems(), 10)
	require.NoError(t, s.NextPage())
	assert.Len(t, s.CurrentPageItems(), 5)
	assert.True(t, s.IsLastPage())
	assert.Equal(t, 21, s.CurrentPageItems()[0].ID)
}

func TestPreviousPage_ClampsAtZero(t *testing.T) {
	s := NewSession(newCatalog(t, 25))
	s.PreviousPage()
	s.PreviousPage()
	assert.Equal(t, 0, s.Page())

	require.NoError(t, s.NextPage())
	s.PreviousPage()
	assert.Equal(t, 0, s.Page())
}

func TestNextPage_LastPageShowsResults(t *testing.T) {
	s := NewSession(newCatalog(t, 25))
	s.Toggle(1)
	s.Toggle(5)
	s.Toggle(9)
	s.Toggle(2)

	require.NoError(t, s.NextPage())
	require.NoError(t, s.NextPage())
	assert.Equal(t, ModeAnswering, s.Mode())
	require.NoError(t, s.NextPage())

	assert.Equal(t, ModeShowingResults, s.Mode())
	res := s.Result()
	require.NotNil(t, res)
	assert.Equal(t, catalog.Choleric, res.Dominant)
	assert.Equal(t, 75, res.Percentages[catalog.Choleric])
	assert.Equal(t, 25, res.Percentages[catalog.Sanguine])
}

func TestShowingResults_IsTerminalUntilRestart(t *testing.T) {
	s := NewSession(newCatalog(t, 12))
	s.Toggle(3)
	require.NoError(t, s.NextPage())
	require.NoError(t, s.NextPage())
	require.Equal(t, ModeShowingResults, s.Mode())

	res := s.Result()
	page := s.Page()

	s.PreviousPage()
	require.NoError(t, s.NextPage())
	s.Toggle(3)
	s.Toggle(4)

	assert.Equal(t, ModeShowingResults, s.Mode())
	assert.Equal(t, page, s.Page())
	assert.Same(t, res, s.Result())
	assert.Equal(t, []int{3}, s.Selected())

	s.Restart()
	assertFresh(t, s)
}

func TestRestart_FromAnyState(t *testing.T) {
	s := NewSession(newCatalog(t, 25))
	s.Restart()
	assertFresh(t, s)

	s.Toggle(7)
	require.NoError(t, s.NextPage())
	s.Restart()
	assertFresh(t, s)
}

func TestEmptySelectionResults(t *testing.T) {
	s := NewSession(newCatalog(t, 3))
	require.NoError(t, s.NextPage())

	res := s.Result()
	require.NotNil(t, res)
	assert.Equal(t, catalog.Undetermined, res.Dominant)
	for _, c := range catalog.Categories {
		assert.Zero(t, res.Percentages[c])
	}
}

func TestWithPageSize(t *testing.T) {
	s := NewSession(newCatalog(t, 25), WithPageSize(4), WithPageSize(0))
	assert.Equal(t, 4, s.PageSize())
	assert.Equal(t, 7, s.TotalPages())
}

func TestNextPage_LogsCompletion(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := NewSession(newCatalog(t, 4), WithLogger(zap.New(core)))
	s.Toggle(2)
	require.NoError(t, s.NextPage())

	entries := logs.FilterMessage("questionnaire completed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "sanguine", entries[0].ContextMap()["dominant"])
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "answering", ModeAnswering.String())
	assert.Equal(t, "showing_results", ModeShowingResults.String())
	assert.Equal(t, "mode(9)", Mode(9).String())
}
