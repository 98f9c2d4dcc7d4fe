package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryCreative, ParseCategory("creative"))
	assert.Equal(t, CategoryEntryLevel, ParseCategory("entry_level"))
	assert.Equal(t, CategoryProfessional, ParseCategory(""))
	assert.Equal(t, CategoryProfessional, ParseCategory("modern"))
}

func TestNewContent(t *testing.T) {
	data := map[string]any{"name": "Tom"}
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	res := NewContent(data, now)
	assert.Equal(t, map[string]any{
		"name":         "Tom",
		GeneratedAtKey: "2024-01-02T03:04:05Z",
	}, res)
	// 不会修改原本的数据
	assert.Equal(t, map[string]any{"name": "Tom"}, data)
}
