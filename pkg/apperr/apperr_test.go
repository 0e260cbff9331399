package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	require.Equal(t, NotFound, KindOf(E(NotFound, "gone")))
	require.Equal(t, Validation, KindOf(Ef(Validation, "bad %s", "field")))

	// error ธรรมดาที่ไม่รู้จักต้องกลายเป็น Server ไม่ใช่ panic
	require.Equal(t, Server, KindOf(errors.New("boom")))

	// wrap ซ้อนด้วย fmt.Errorf แล้วยังหา kind เจอ
	wrapped := fmt.Errorf("context: %w", E(Conflict, "cart busy"))
	require.Equal(t, Conflict, KindOf(wrapped))
	require.True(t, IsKind(wrapped, Conflict))
}

func TestMessage(t *testing.T) {
	err := Wrap(Network, "order service unreachable", errors.New("dial tcp: refused"))
	require.Equal(t, "order service unreachable", Message(err))
	require.Contains(t, err.Error(), "refused")
}
