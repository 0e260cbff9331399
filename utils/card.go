package utils

// ValidCardNumber ตรวจเลขบัตรแบบ Luhn (กันพิมพ์ผิด ไม่ใช่ตรวจกับธนาคาร)
func ValidCardNumber(number string) bool {
	digits := make([]int, 0, len(number))
	for _, r := range number {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == ' ' || r == '-':
			// ยอมให้คั่นกลุ่มตัวเลขได้
		default:
			return false
		}
	}
	if len(digits) < 12 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
