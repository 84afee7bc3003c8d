package diff

import (
	"errors"
	"fmt"
)

// validate checks the Entry invariants of entries against the token sequences they were computed from and returns an error on the first violation.
func validate(entries []Entry, oldTokens, newTokens []string) error {
	nextOld, nextNew := 1, 1
	for i, e := range entries {
		switch e.Op {
		case OpEqual:
			if e.OldPos == 0 || e.NewPos == 0 {
				return fmt.Errorf("entry[%d]: OpEqual requires OldPos and NewPos", i)
			}
			if e.OldText != e.NewText {
				return fmt.Errorf("entry[%d]: OpEqual requires OldText==NewText", i)
			}
		case OpInsert:
			if e.OldPos != 0 || e.OldText != "" {
				return fmt.Errorf("entry[%d]: OpInsert requires OldPos==0 and OldText==\"\"", i)
			}
		case OpDelete:
			if e.NewPos != 0 || e.NewText != "" {
				return fmt.Errorf("entry[%d]: OpDelete requires NewPos==0 and NewText==\"\"", i)
			}
		case OpModify:
			if e.OldPos == 0 || e.NewPos == 0 {
				return fmt.Errorf("entry[%d]: OpModify requires OldPos and NewPos", i)
			}
		default:
			return fmt.Errorf("entry[%d]: unknown op %v", i, e.Op)
		}

		if e.hasOld() {
			if e.OldPos != nextOld {
				return fmt.Errorf("entry[%d]: OldPos=%d, want %d", i, e.OldPos, nextOld)
			}
			if e.OldPos > len(oldTokens) || oldTokens[e.OldPos-1] != e.OldText {
				return fmt.Errorf("entry[%d]: OldText does not match old token %d", i, e.OldPos)
			}
			nextOld++
		}
		if e.hasNew() {
			if e.NewPos != nextNew {
				return fmt.Errorf("entry[%d]: NewPos=%d, want %d", i, e.NewPos, nextNew)
			}
			if e.NewPos > len(newTokens) || newTokens[e.NewPos-1] != e.NewText {
				return fmt.Errorf("entry[%d]: NewText does not match new token %d", i, e.NewPos)
			}
			nextNew++
		}
	}

	if nextOld-1 != len(oldTokens) {
		return errors.New("entries do not reconstruct the old sequence")
	}
	if nextNew-1 != len(newTokens) {
		return errors.New("entries do not reconstruct the new sequence")
	}
	return nil
}
