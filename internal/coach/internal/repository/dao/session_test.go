// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGORMCoachSessionDAO_UpdateMessages(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "更新成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("^UPDATE `coach_sessions` SET").
					WillReturnResult(sqlmock.NewResult(0, 1))
				return mockDB
			},
		},
		{
			name: "会话已经结束",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("^UPDATE `coach_sessions` SET").
					WillReturnResult(sqlmock.NewResult(0, 0))
				return mockDB
			},
			wantErr: ErrSessionInactive,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMCoachSessionDAO(newDB(t, tc.mock(t)))
			err := d.UpdateMessages(context.Background(), 1, "sn1", []Message{{Role: "user", Content: "hi"}})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGORMCoachSessionDAO_Close(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("^UPDATE `coach_sessions` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	d := NewGORMCoachSessionDAO(newDB(t, mockDB))
	err = d.Close(context.Background(), 1, "not-exist")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestGORMCoachSessionDAO_CloseIdle(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("^UPDATE `coach_sessions` SET .* WHERE status = \\? AND utime < \\?").
		WillReturnResult(sqlmock.NewResult(0, 3))
	d := NewGORMCoachSessionDAO(newDB(t, mockDB))
	cnt, err := d.CloseIdle(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cnt)
}

func newDB(t *testing.T, mockDB *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}
