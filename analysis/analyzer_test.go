package analysis

import (
	"context"
	"errors"
	"testing"

	"inflammation/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type fakeSource struct {
	tables []defs.Table
	err    error
}

func (f *fakeSource) LoadAll(_ context.Context) ([]defs.Table, error) {
	return f.tables, f.err
}

type AnalyzerTestSuite struct {
	suite.Suite
}

func TestAnalyzerTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyzerTestSuite))
}

func (suite *AnalyzerTestSuite) TestAnalyze() {
	an := &Analyzer{
		Source: &fakeSource{tables: []defs.Table{
			{{1, 2}},
			{{3, 4}},
		}},
		Logger: zap.NewExample(),
	}

	days, err := an.Analyze(context.Background())
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), defs.DailySeries{1, 1}, days)
}

func (suite *AnalyzerTestSuite) TestAnalyzeSourceError() {
	srcErr := errors.New("backend unavailable")
	an := &Analyzer{
		Source: &fakeSource{err: srcErr},
		Logger: zap.NewExample(),
	}

	_, err := an.Analyze(context.Background())
	assert.ErrorIs(suite.T(), err, srcErr, "source failures should surface unchanged")
}

func (suite *AnalyzerTestSuite) TestAnalyzeMismatchedDatasets() {
	an := &Analyzer{
		Source: &fakeSource{tables: []defs.Table{
			{{1, 2, 3}},
			{{1, 2}},
		}},
		Logger: zap.NewExample(),
	}

	_, err := an.Analyze(context.Background())
	assert.ErrorIs(suite.T(), err, defs.ErrShape)
}
