package utils

import "fmt"

// FormatCents renders an integer cent amount as a dollar string, e.g.
// 125000 -> "$1,250.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	dollars := cents / 100
	rem := cents % 100
	return fmt.Sprintf("%s$%s.%02d", sign, formatThousand(dollars), rem)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := fmt.Sprintf("%d", n)
	var out []byte
	for i := 0; i < len(str); i++ {
		if i != 0 && (len(str)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, str[i])
	}
	return string(out)
}
