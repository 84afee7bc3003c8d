package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	oldTokens := []string{"a", "b"}
	newTokens := []string{"a", "c"}

	tests := []struct {
		name    string
		entries []Entry
		wantErr string // empty means valid
	}{
		{
			name: "valid",
			entries: []Entry{
				{Op: OpEqual, OldPos: 1, NewPos: 1, OldText: "a", NewText: "a"},
				{Op: OpDelete, OldPos: 2, OldText: "b"},
				{Op: OpInsert, NewPos: 2, NewText: "c"},
			},
		},
		{
			name: "valid modify",
			entries: []Entry{
				{Op: OpEqual, OldPos: 1, NewPos: 1, OldText: "a", NewText: "a"},
				{Op: OpModify, OldPos: 2, NewPos: 2, OldText: "b", NewText: "c"},
			},
		},
		{
			name: "equal with different text",
			entries: []Entry{
				{Op: OpEqual, OldPos: 1, NewPos: 1, OldText: "a", NewText: "x"},
			},
			wantErr: "entry[0]: OpEqual requires OldText==NewText",
		},
		{
			name: "insert with old position",
			entries: []Entry{
				{Op: OpInsert, OldPos: 1, NewPos: 1, NewText: "a"},
			},
			wantErr: "entry[0]: OpInsert requires OldPos==0 and OldText==\"\"",
		},
		{
			name: "skipped old position",
			entries: []Entry{
				{Op: OpDelete, OldPos: 2, OldText: "b"},
			},
			wantErr: "entry[0]: OldPos=2, want 1",
		},
		{
			name: "wrong text",
			entries: []Entry{
				{Op: OpDelete, OldPos: 1, OldText: "z"},
			},
			wantErr: "entry[0]: OldText does not match old token 1",
		},
		{
			name: "incomplete",
			entries: []Entry{
				{Op: OpEqual, OldPos: 1, NewPos: 1, OldText: "a", NewText: "a"},
				{Op: OpInsert, NewPos: 2, NewText: "c"},
			},
			wantErr: "entries do not reconstruct the old sequence",
		},
		{
			name: "unknown op",
			entries: []Entry{
				{Op: Op(9)},
			},
			wantErr: "entry[0]: unknown op Op(9)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.entries, oldTokens, newTokens)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
