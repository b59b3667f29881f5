// internal/workers/data-access/record-decision-outcome/handler_test.go
package recorddecisionoutcome

import (
	"context"
	"database/sql"
	stderrors "errors"
	"net"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"tribunal-workers/internal/common/database"
	"tribunal-workers/internal/common/errors"
	"tribunal-workers/internal/common/logger"
)

// ==========================
// Test Helper Functions
// ==========================

const (
	testTable        = "decision_notice_outcomes"
	testEvaluationID = "5f0c6d4e-3b1a-4c55-9f0e-2d7b8a6c1e90"
	testGuardKey     = "decision-outcome:" + testEvaluationID
)

var (
	insertQuery = regexp.QuoteMeta(`INSERT INTO "` + testTable + `"`)
	selectQuery = regexp.QuoteMeta(`SELECT id FROM "` + testTable + `" WHERE evaluation_id = $1`)
)

func createTestConfig() *Config {
	return &Config{
		Timeout: 5 * time.Second,
		Table:   testTable,
	}
}

func createTestLogger(t *testing.T) logger.Logger {
	return logger.NewZapAdapter(zaptest.NewLogger(t))
}

func createTestHandler(t *testing.T, db *sql.DB, redisClient *redis.Client) *Handler {
	guard := database.NewGuard(redisClient, "decision-outcome", time.Hour)
	return NewHandler(createTestConfig(), db, guard, createTestLogger(t))
}

func createTestInput() *Input {
	return &Input{
		EvaluationID:       testEvaluationID,
		CaseID:             "1234567890123456",
		Benefit:            "ESA",
		Generated:          true,
		IsValid:            true,
		PointsTotal:        9,
		PointsConditionID:  "LOW_POINTS_REGULATION_29_DOES_NOT_APPLY",
		OutcomeConditionID: "REFUSED_NON_SUPPORT_GROUP_ONLY",
		Award:              "noAward",
		Scenario:           "SCENARIO_1",
	}
}

// ==========================
// Execute Tests
// ==========================

func TestHandler_Execute_FirstWrite(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	redisClient, redisMock := redismock.NewClientMock()

	redisMock.ExpectSetNX(testGuardKey, testEvaluationID, time.Hour).SetVal(true)
	mock.ExpectQuery(insertQuery).
		WithArgs(
			sqlmock.AnyArg(), testEvaluationID, "1234567890123456", "ESA", true, true, 9,
			"LOW_POINTS_REGULATION_29_DOES_NOT_APPLY", "REFUSED_NON_SUPPORT_GROUP_ONLY", "noAward", "SCENARIO_1", false,
			[]byte("[]"), sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("row-1"))

	output, err := createTestHandler(t, db, redisClient).Execute(context.Background(), createTestInput())
	require.NoError(t, err)
	assert.Equal(t, "row-1", output.AuditID)
	assert.Equal(t, testEvaluationID, output.EvaluationID)
	assert.False(t, output.Duplicate)

	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_Execute_Duplicates(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock, redisMock redismock.ClientMock)
		expectID  string
		expectDup bool
	}{
		{
			name: "guard held and row present",
			setup: func(mock sqlmock.Sqlmock, redisMock redismock.ClientMock) {
				redisMock.ExpectSetNX(testGuardKey, testEvaluationID, time.Hour).SetVal(false)
				mock.ExpectQuery(selectQuery).
					WithArgs(testEvaluationID).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("row-1"))
			},
			expectID:  "row-1",
			expectDup: true,
		},
		{
			name: "guard held but row missing",
			setup: func(mock sqlmock.Sqlmock, redisMock redismock.ClientMock) {
				redisMock.ExpectSetNX(testGuardKey, testEvaluationID, time.Hour).SetVal(false)
				mock.ExpectQuery(selectQuery).
					WithArgs(testEvaluationID).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectQuery(insertQuery).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("row-2"))
			},
			expectID:  "row-2",
			expectDup: false,
		},
		{
			name: "guard expired but row present",
			setup: func(mock sqlmock.Sqlmock, redisMock redismock.ClientMock) {
				redisMock.ExpectSetNX(testGuardKey, testEvaluationID, time.Hour).SetVal(true)
				mock.ExpectQuery(insertQuery).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectQuery(selectQuery).
					WithArgs(testEvaluationID).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("row-1"))
			},
			expectID:  "row-1",
			expectDup: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			redisClient, redisMock := redismock.NewClientMock()
			tt.setup(mock, redisMock)

			output, err := createTestHandler(t, db, redisClient).Execute(context.Background(), createTestInput())
			require.NoError(t, err)
			assert.Equal(t, tt.expectID, output.AuditID)
			assert.Equal(t, tt.expectDup, output.Duplicate)

			assert.NoError(t, mock.ExpectationsWereMet())
			assert.NoError(t, redisMock.ExpectationsWereMet())
		})
	}
}

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name         string
		timeout      time.Duration
		setup        func(mock sqlmock.Sqlmock, redisMock redismock.ClientMock)
		expectedCode errors.ErrorCode
	}{
		{
			name: "guard unavailable",
			setup: func(mock sqlmock.Sqlmock, redisMock redismock.ClientMock) {
				redisMock.ExpectSetNX(testGuardKey, testEvaluationID, time.Hour).SetErr(stderrors.New("connection refused"))
			},
			expectedCode: errors.ErrCodeAuditGuardFailed,
		},
		{
			name: "insert fails and releases the guard",
			setup: func(mock sqlmock.Sqlmock, redisMock redismock.ClientMock) {
				redisMock.ExpectSetNX(testGuardKey, testEvaluationID, time.Hour).SetVal(true)
				mock.ExpectQuery(insertQuery).WillReturnError(stderrors.New("relation does not exist"))
				redisMock.ExpectDel(testGuardKey).SetVal(1)
			},
			expectedCode: errors.ErrCodeAuditInsertFailed,
		},
		{
			name: "lookup fails",
			setup: func(mock sqlmock.Sqlmock, redisMock redismock.ClientMock) {
				redisMock.ExpectSetNX(testGuardKey, testEvaluationID, time.Hour).SetVal(false)
				mock.ExpectQuery(selectQuery).WillReturnError(sql.ErrConnDone)
			},
			expectedCode: errors.ErrCodeDatabaseConnectionFailed,
		},
		{
			name: "connection dropped during insert",
			setup: func(mock sqlmock.Sqlmock, redisMock redismock.ClientMock) {
				redisMock.ExpectSetNX(testGuardKey, testEvaluationID, time.Hour).SetVal(true)
				mock.ExpectQuery(insertQuery).WillReturnError(&net.OpError{Op: "read", Net: "tcp", Err: stderrors.New("connection reset by peer")})
				redisMock.ExpectDel(testGuardKey).SetVal(1)
			},
			expectedCode: errors.ErrCodeDatabaseConnectionFailed,
		},
		{
			name:    "insert times out",
			timeout: 20 * time.Millisecond,
			setup: func(mock sqlmock.Sqlmock, redisMock redismock.ClientMock) {
				redisMock.ExpectSetNX(testGuardKey, testEvaluationID, time.Hour).SetVal(true)
				mock.ExpectQuery(insertQuery).
					WillDelayFor(time.Second).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("row-1"))
				redisMock.ExpectDel(testGuardKey).SetVal(1)
			},
			expectedCode: errors.ErrCodeStoreTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			redisClient, redisMock := redismock.NewClientMock()
			tt.setup(mock, redisMock)

			ctx := context.Background()
			if tt.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, tt.timeout)
				defer cancel()
			}

			_, err = createTestHandler(t, db, redisClient).Execute(ctx, createTestInput())
			require.Error(t, err)
			stdErr := errors.Normalize(err)
			assert.Equal(t, tt.expectedCode, stdErr.Code)
			assert.True(t, stdErr.Retryable)
			assert.NoError(t, redisMock.ExpectationsWereMet())
		})
	}
}

// ==========================
// Input Parsing Tests
// ==========================

func TestHandler_ParseInput(t *testing.T) {
	tests := []struct {
		name        string
		variables   string
		expectError bool
	}{
		{
			name:      "preview variables",
			variables: `{"evaluationId":"` + testEvaluationID + `","caseId":"1","benefit":"UC","isValid":true,"generated":true,"pointsTotal":15,"scenario":"SCENARIO_5","descriptors":[{"activityQuestionKey":"mobilisingUnaided"}],"wcaAppeal":true}`,
		},
		{
			name:      "invalid answers",
			variables: `{"evaluationId":"` + testEvaluationID + `","caseId":"1","benefit":"ESA","isValid":false,"validationErrors":["fix it"],"scenario":null}`,
		},
		{
			name:        "evaluation id is not a uuid",
			variables:   `{"evaluationId":"abc","caseId":"1","benefit":"ESA","isValid":true}`,
			expectError: true,
		},
		{
			name:        "unsupported benefit",
			variables:   `{"evaluationId":"` + testEvaluationID + `","caseId":"1","benefit":"PIP","isValid":true}`,
			expectError: true,
		},
		{
			name:        "missing validity",
			variables:   `{"evaluationId":"` + testEvaluationID + `","caseId":"1","benefit":"ESA"}`,
			expectError: true,
		},
	}

	h := createTestHandler(t, nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := entities.Job{ActivatedJob: &pb.ActivatedJob{Key: 1, Type: TaskType, Variables: tt.variables}}
			input, err := h.parseInput(job)
			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, errors.ErrCodeInputSchemaInvalid, errors.Normalize(err).Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testEvaluationID, input.EvaluationID)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	assert.Equal(t, "decision_notice_outcomes", LoadConfig("").Table)
	assert.Equal(t, "outcomes_v2", LoadConfig("outcomes_v2").Table)
}
