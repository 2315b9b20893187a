package a

var first = second // want `AST010: variable second is used in global before definition`

var second = 1 // want `AST000: variable second defined in global is never used`

var unused = 2 // want `AST000: variable unused defined in global is never used`

var hits int

const debug = false

func sum(a, b int) int { // want `AST000: variable b defined in sum is never used`
	if debug { // want `AST030: condition False is always false`
		println("debug")
	}
	return a + first
}

func count(items []string) int {
	n := 0
	bump := func() {
		n++
		hits = hits + 1
	}
	for range items {
		bump()
	}
	return n
}
