package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarizeWorkedExample(t *testing.T) {
	// ตะกร้า [{19.98 x1}, {3.99 x2}] → subtotal 27.96
	subtotal := 19.98*1 + 3.99*2
	s := Summarize(subtotal)

	require.InDelta(t, 27.96, s.Subtotal, 1e-9)
	require.InDelta(t, 40.0, s.DeliveryFee, 1e-9)
	require.InDelta(t, 1.398, s.Tax, 1e-9)
	require.InDelta(t, 69.358, s.Total, 1e-9)

	d := s.Displayed()
	require.Equal(t, "27.96", d.Subtotal)
	require.Equal(t, "40.00", d.DeliveryFee)
	require.Equal(t, "1.40", d.Tax)
	require.Equal(t, "69.36", d.Total)
}

func TestSummarizeEmptyCart(t *testing.T) {
	// ตะกร้าว่างต้องเป็นศูนย์หมด ไม่ใช่โชว์ค่าส่ง 40 ทั้งที่ยังไม่มีของ
	s := Summarize(0)
	require.Equal(t, Summary{}, s)

	d := s.Displayed()
	require.Equal(t, "0.00", d.DeliveryFee)
	require.Equal(t, "0.00", d.Total)
}

func TestSummarizeConsistency(t *testing.T) {
	for _, subtotal := range []float64{0.01, 10, 99.99, 1234.567} {
		s := Summarize(subtotal)
		require.InDelta(t, subtotal+DeliveryFee+subtotal*TaxRate, s.Total, 1e-9)
		// เรียกกี่ครั้งก็ต้องได้ค่าเดิมเป๊ะ ๆ (bit-for-bit ทุกหน้าจอ)
		require.Equal(t, s, Summarize(subtotal))
	}
}

func TestDisplayRounding(t *testing.T) {
	require.Equal(t, "0.00", Display(0))
	require.Equal(t, "69.36", Display(69.358))
	require.Equal(t, "1.40", Display(1.398))
	require.Equal(t, "2.00", Display(1.995))
}
