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
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGORMJobDAO_FindBySkills(t *testing.T) {
	testCases := []struct {
		name    string
		skills  []string
		mock    func(t *testing.T) *sql.DB
		wantRes []Job
		wantErr error
	}{
		{
			name:   "没有技能不查询",
			skills: nil,
			mock: func(t *testing.T) *sql.DB {
				mockDB, _, err := sqlmock.New()
				require.NoError(t, err)
				return mockDB
			},
			wantRes: []Job{},
		},
		{
			name:   "只有空白技能不查询",
			skills: []string{"", ""},
			mock: func(t *testing.T) *sql.DB {
				mockDB, _, err := sqlmock.New()
				require.NoError(t, err)
				return mockDB
			},
			wantRes: []Job{},
		},
		{
			name:   "按照技能模糊查询，转义通配符",
			skills: []string{"Go", "C_Sharp"},
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "title", "requirements"}).
					AddRow(1, "Go Developer", []byte(`["Go"]`))
				mock.ExpectQuery("^SELECT \\* FROM `jobs` WHERE .*LOWER\\(title\\) LIKE \\?.*JSON_SEARCH\\(LOWER\\(requirements\\), 'one', \\?\\) IS NOT NULL.* ORDER BY id ASC").
					WithArgs("%go%", "%go%", "%go%", "%c\\_sharp%", "%c\\_sharp%", "%c\\_sharp%").
					WillReturnRows(rows)
				return mockDB
			},
			wantRes: []Job{
				{Id: 1, Title: "Go Developer", Requirements: sqlx.JsonColumn[[]string]{Val: []string{"Go"}, Valid: true}},
			},
		},
		{
			name:   "数据库错误",
			skills: []string{"Go"},
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectQuery("^SELECT \\* FROM `jobs`").WillReturnError(errors.New("数据库错误"))
				return mockDB
			},
			wantErr: errors.New("数据库错误"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, err := gorm.Open(gormMysql.New(gormMysql.Config{
				Conn:                      tc.mock(t),
				SkipInitializeWithVersion: true,
			}), &gorm.Config{
				DisableAutomaticPing:   true,
				SkipDefaultTransaction: true,
			})
			require.NoError(t, err)
			d := NewGORMJobDAO(db)
			res, err := d.FindBySkills(context.Background(), tc.skills)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestGORMJobDAO_FindById(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("^SELECT \\* FROM `jobs` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	_, err = NewGORMJobDAO(db).FindById(context.Background(), 9)
	assert.ErrorIs(t, err, ErrDataNotFound)
}
