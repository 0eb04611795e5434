package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsBuy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		operation string
		want      bool
	}{
		{"Acquisition", true},
		{"ACHAT d'actions", true},
		{"Souscription", true},
		{"Cession", false},
		{"Vente", false},
		{"", false},
	}
	for _, tt := range tests {
		r := TradeRecord{Operation: tt.operation}
		assert.Equal(t, tt.want, r.IsBuy(), "operation %q", tt.operation)
	}
}

func TestIsSell(t *testing.T) {
	t.Parallel()

	assert.True(t, TradeRecord{Operation: "Cession d'actions"}.IsSell())
	assert.True(t, TradeRecord{Operation: "VENTE"}.IsSell())
	assert.False(t, TradeRecord{Operation: "Acquisition"}.IsSell())
}

func TestParsedOperationDate(t *testing.T) {
	t.Parallel()

	d := "15/07/2025"
	r := TradeRecord{OperationDate: &d}
	got, ok := r.ParsedOperationDate()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), got)

	bad := "2025-07-15"
	r.OperationDate = &bad
	_, ok = r.ParsedOperationDate()
	assert.False(t, ok)

	r.OperationDate = nil
	_, ok = r.ParsedOperationDate()
	assert.False(t, ok)
}

func TestParsedDeclarationDate(t *testing.T) {
	t.Parallel()

	r := TradeRecord{DeclarationDate: "01/02/2025"}
	got, ok := r.ParsedDeclarationDate()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), got)

	_, ok = TradeRecord{}.ParsedDeclarationDate()
	assert.False(t, ok)
}
