package p

var counter = 0

const debug = false

func helper(x int) {
	println(x)
}

func run(a, b int) (err error) {
	total := a + 1
	if debug {
		println("debug")
	} else if total > 2 {
		counter = total
	}
	inc := func() {
		total = total + 1
	}
	inc()
	return
}

type T struct{ n int }

func (t *T) Get() int { return t.n }
