// internal/strategyfactory/factory_test.go
package strategyfactory

import (
	"testing"

	"github.com/mwiater/linegrep/internal/search"
)

func TestNewSelectsCaseSensitiveByDefault(t *testing.T) {
	if _, ok := New(false).(search.CaseSensitive); !ok {
		t.Fatalf("New(false) = %T, want search.CaseSensitive", New(false))
	}
}

func TestNewSelectsCaseInsensitiveWhenIgnoringCase(t *testing.T) {
	if _, ok := New(true).(search.CaseInsensitive); !ok {
		t.Fatalf("New(true) = %T, want search.CaseInsensitive", New(true))
	}
}
