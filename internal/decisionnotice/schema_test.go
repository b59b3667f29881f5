// internal/decisionnotice/schema_test.go
package decisionnotice

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tribunal-workers/internal/common/validation"
)

const schemaFixture = `{
	"caseId": "1234567890",
	"benefit": "ESA",
	"generateNotice": "Yes",
	"wcaAppeal": true,
	"supportGroupOnlyAppeal": null,
	"physicalDisabilities": ["mobilisingUnaided"],
	"mentalAssessment": null,
	"activityAnswers": {"mobilisingUnaided": "mobilisingUnaided1b"},
	"workCapabilityRisk": "No",
	"workRelatedActivities": null,
	"startDate": "2026-01-01",
	"processStartedBy": "caseworker"
}`

func decodeFixture(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	var vars map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &vars))
	return vars
}

func TestCaseSchema(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(vars map[string]interface{})
		errorField string
	}{
		{
			name:   "valid answers",
			mutate: func(map[string]interface{}) {},
		},
		{
			name:       "missing benefit",
			mutate:     func(v map[string]interface{}) { delete(v, "benefit") },
			errorField: "benefit",
		},
		{
			name:       "unsupported benefit",
			mutate:     func(v map[string]interface{}) { v["benefit"] = "PIP" },
			errorField: "benefit",
		},
		{
			name:       "yes/no outside vocabulary",
			mutate:     func(v map[string]interface{}) { v["generateNotice"] = "Maybe" },
			errorField: "generateNotice",
		},
		{
			name: "malformed answer key",
			mutate: func(v map[string]interface{}) {
				v["activityAnswers"] = map[string]interface{}{"mobilisingUnaided": "b"}
			},
			errorField: "activityAnswers.mobilisingUnaided",
		},
		{
			name:       "wca appeal as text",
			mutate:     func(v map[string]interface{}) { v["wcaAppeal"] = "Yes" },
			errorField: "wcaAppeal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := decodeFixture(t, schemaFixture)
			tt.mutate(vars)

			result := validation.ValidateInput(vars, CaseSchema())
			if tt.errorField == "" {
				assert.True(t, result.Valid, "errors: %v", result.GetErrorMessages())
				return
			}
			assert.False(t, result.Valid)
			assert.True(t, result.HasErrors(tt.errorField), "errors: %v", result.GetErrorMessages())
		})
	}
}

func TestCaseSchema_FixtureDecodes(t *testing.T) {
	var c CaseAnswers
	require.NoError(t, json.Unmarshal([]byte(schemaFixture), &c))

	e := createTestEngine(t)
	res, err := e.MidEvent(&c)
	require.NoError(t, err)
	assert.Equal(t, 9, res.PointsTotal)
	assert.True(t, res.ShowRegulationPage)
	assert.True(t, res.Valid())
}
