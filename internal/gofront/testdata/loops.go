package p

func loop(items []string) int {
	n := 0
	for i := 0; i < 3; i++ {
		n += i
	}
	for _, s := range items {
		if len(s) > 1 {
			n++
		}
	}
	switch n {
	case 1, 2:
		return 1
	default:
	}
	return n
}
