package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_Offset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		page   Page
		valid  bool
		offset int
	}{
		{name: "first page", page: Page{Number: 1, Size: 10}, valid: true, offset: 0},
		{name: "third page", page: Page{Number: 3, Size: 10}, valid: true, offset: 20},
		{name: "zero page", page: Page{Number: 0, Size: 10}, valid: false, offset: 0},
		{name: "negative page", page: Page{Number: -4, Size: 10}, valid: false, offset: 0},
		{name: "zero size", page: Page{Number: 2, Size: 0}, valid: false, offset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.valid, tt.page.Valid())
			assert.Equal(t, tt.offset, tt.page.Offset())
		})
	}
}

func TestPageResult_HasNext(t *testing.T) {
	t.Parallel()

	assert.True(t, PageResult[int]{Page: 1, Size: 10, Total: 11}.HasNext())
	assert.False(t, PageResult[int]{Page: 2, Size: 10, Total: 20}.HasNext())
	assert.False(t, PageResult[int]{Page: 0, Size: 10, Total: 20}.HasNext())
}
